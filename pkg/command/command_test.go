package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/gocord/gocord/pkg/model"
)

func message(content string) *model.Message {
	return &model.Message{
		Content: content,
		Author:  &model.User{ID: 80351110224678912, Username: "Nelly"},
	}
}

func TestSetDispatch(t *testing.T) {
	set := NewSet("!")

	var gotArgs Args
	var gotMsg model.MessageModel
	cmd, err := NewCommand("kick", "*|mention/str| |time/int|",
		func(ctx context.Context, msg model.MessageModel, args Args) {
			gotMsg = msg
			gotArgs = args
		})
	require.NoError(t, err)
	require.NoError(t, set.Register(cmd))

	require.True(t, set.Dispatch(context.Background(), message("!kick bob 10")))
	require.Equal(t, Args{"mention": "bob", "time": 10}, gotArgs)
	require.Equal(t, "Nelly", gotMsg.CoreMessage().Author.CoreUser().Username)
}

func TestSetDispatchBareCommand(t *testing.T) {
	set := NewSet("!")

	invoked := false
	cmd, err := NewCommand("ping", "", func(ctx context.Context, msg model.MessageModel, args Args) {
		invoked = true
	})
	require.NoError(t, err)
	require.NoError(t, set.Register(cmd))

	require.True(t, set.Dispatch(context.Background(), message("!ping")))
	require.True(t, invoked)

	invoked = false
	require.True(t, set.Dispatch(context.Background(), message("!ping extra")))
	require.False(t, invoked) // named the command but with unexpected arguments
}

func TestSetDispatchIgnoresNonCommands(t *testing.T) {
	set := NewSet("!")

	cmd, err := NewCommand("ping", "", func(ctx context.Context, msg model.MessageModel, args Args) {
		t.Fatal("should not be invoked")
	})
	require.NoError(t, err)
	require.NoError(t, set.Register(cmd))

	require.False(t, set.Dispatch(context.Background(), message("hello there")))
	require.False(t, set.Dispatch(context.Background(), message("!pong")))
	require.False(t, set.Dispatch(context.Background(), message("ping")))
}

func TestSetDispatchIgnoresBots(t *testing.T) {
	set := NewSet("!")

	cmd, err := NewCommand("ping", "", func(ctx context.Context, msg model.MessageModel, args Args) {
		t.Fatal("should not be invoked")
	})
	require.NoError(t, err)
	require.NoError(t, set.Register(cmd))

	msg := message("!ping")
	msg.Author.CoreUser().Bot = true
	require.False(t, set.Dispatch(context.Background(), msg))
}

func TestSetRejectsReusedName(t *testing.T) {
	set := NewSet("!")

	first, err := NewCommand("ping", "", func(ctx context.Context, msg model.MessageModel, args Args) {})
	require.NoError(t, err)
	require.NoError(t, set.Register(first))

	second, err := NewCommand("ping", "", func(ctx context.Context, msg model.MessageModel, args Args) {})
	require.NoError(t, err)

	err = set.Register(second)
	requireCode(t, err, errorx.ReusedCommandName)
}

func TestSetDispatchCastFailureStillMatches(t *testing.T) {
	set := NewSet("!")

	invoked := false
	cmd, err := NewCommand("remind", "*|minutes/int|",
		func(ctx context.Context, msg model.MessageModel, args Args) {
			invoked = true
		})
	require.NoError(t, err)
	require.NoError(t, set.Register(cmd))

	require.True(t, set.Dispatch(context.Background(), message("!remind soon")))
	require.False(t, invoked)
}
