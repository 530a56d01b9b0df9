package gocord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocord/gocord/config"
	"github.com/gocord/gocord/pkg/command"
	"github.com/gocord/gocord/pkg/model"
)

func testConfigs() config.Configs {
	return config.Configs{
		Bot: config.BotConfigs{Token: "token", Prefix: "!"},
		Api: config.ApiConfigs{URL: "https://discord.test/api"},
	}
}

func TestClientRecordsMeOnReady(t *testing.T) {
	c := New(testConfigs())
	require.Nil(t, c.Me())

	c.dispatcher.Dispatch(context.Background(), "READY", map[string]any{
		"v":          6,
		"session_id": "abc123",
		"user": map[string]any{
			"id": "80351110224678912", "username": "bot", "discriminator": "0007", "bot": true,
		},
	})

	me := c.Me()
	require.NotNil(t, me)
	require.Equal(t, "bot#0007", me.CoreUser().Tag())
}

func TestClientRoutesMessagesToCommands(t *testing.T) {
	c := New(testConfigs())

	var gotArgs command.Args
	err := c.Command("echo", "*|text/str|", func(ctx context.Context, msg model.MessageModel, args command.Args) {
		gotArgs = args
	})
	require.NoError(t, err)

	c.dispatcher.Dispatch(context.Background(), "MESSAGE_CREATE", map[string]any{
		"id":         "334385199974967042",
		"channel_id": "290926798999357250",
		"author": map[string]any{
			"id": "80351110224678912", "username": "Nelly", "discriminator": "1337",
		},
		"content":   "!echo hello world",
		"timestamp": "2017-07-11T17:27:07.299000+00:00",
	})

	require.Equal(t, command.Args{"text": "hello world"}, gotArgs)
}

func TestClientSubstitutedModelReachesHandlers(t *testing.T) {
	type ticketMessage struct {
		model.Message
	}

	c := New(testConfigs())
	require.NoError(t, c.Registry().Register(model.KindMessage, func() any { return &ticketMessage{} }))

	var got any
	c.On("MESSAGE_CREATE", func(ctx context.Context, event string, data any) {
		got = data
	})

	c.dispatcher.Dispatch(context.Background(), "MESSAGE_CREATE", map[string]any{
		"id":         "334385199974967042",
		"channel_id": "290926798999357250",
		"author": map[string]any{
			"id": "80351110224678912", "username": "Nelly", "discriminator": "1337",
		},
		"content":   "need help",
		"timestamp": "2017-07-11T17:27:07.299000+00:00",
	})

	require.IsType(t, &ticketMessage{}, got)
}

func TestClientRejectsDuplicateCommands(t *testing.T) {
	c := New(testConfigs())

	noop := func(ctx context.Context, msg model.MessageModel, args command.Args) {}
	require.NoError(t, c.Command("ping", "", noop))
	require.Error(t, c.Command("ping", "", noop))
}
