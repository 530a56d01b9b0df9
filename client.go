// Package gocord is a Discord bot client. It connects a gateway session,
// a command set and the REST endpoint around a shared model registry, so
// an application can swap any Discord data model for its own type in one
// place.
package gocord

import (
	"context"
	"sync"

	"github.com/gocord/gocord/config"
	"github.com/gocord/gocord/pkg/command"
	"github.com/gocord/gocord/pkg/dispatcher"
	"github.com/gocord/gocord/pkg/gateway"
	"github.com/gocord/gocord/pkg/logger"
	"github.com/gocord/gocord/pkg/model"
	"github.com/gocord/gocord/pkg/rest"
	"github.com/gocord/gocord/pkg/xcontext"
)

type Client struct {
	cfg    config.Configs
	logger logger.Logger

	registry   *model.Registry
	rest       rest.IEndpoint
	dispatcher *dispatcher.Dispatcher
	commands   *command.Set

	meMutex sync.Mutex
	me      model.UserModel
}

// New builds a client with its own registry, so substitutions of one bot
// do not leak into another running in the same process.
func New(cfg config.Configs) *Client {
	registry := model.NewRegistry()

	c := &Client{
		cfg:        cfg,
		logger:     logger.NewLogger(logger.ParseLevel(cfg.Log.Level)),
		registry:   registry,
		rest:       rest.New(cfg.Api, cfg.Bot.Token, registry),
		dispatcher: dispatcher.New(registry),
		commands:   command.NewSet(cfg.Bot.Prefix),
	}

	c.dispatcher.On("READY", func(ctx context.Context, event string, data any) {
		c.recordMe(ctx, data)
	})

	c.dispatcher.On("MESSAGE_CREATE", func(ctx context.Context, event string, data any) {
		if msg, ok := data.(model.MessageModel); ok {
			c.commands.Dispatch(ctx, msg)
		}
	})

	return c
}

// Registry exposes the client's model registry. Substitute models here
// before calling Start; the registry freezes once models are constructed.
func (c *Client) Registry() *model.Registry {
	return c.registry
}

// Rest exposes the HTTP endpoint for direct API calls.
func (c *Client) Rest() rest.IEndpoint {
	return c.rest
}

// On subscribes a handler to a gateway event, or to every event with
// dispatcher.Any.
func (c *Client) On(event string, handler dispatcher.Handler) {
	c.dispatcher.On(event, handler)
}

// Command registers a prefix command. The selector describes the expected
// arguments, see the command package for its syntax.
func (c *Client) Command(name, selector string, callback command.Callback) error {
	cmd, err := command.NewCommand(name, selector, callback)
	if err != nil {
		return err
	}

	return c.commands.Register(cmd)
}

// Me returns the bot's own user, nil until the first READY arrives.
func (c *Client) Me() model.UserModel {
	c.meMutex.Lock()
	defer c.meMutex.Unlock()

	return c.me
}

// Start connects to the gateway and blocks until the context is cancelled
// or the connection fails beyond recovery. The gateway address comes from
// the config when set, otherwise it is resolved through the REST API.
func (c *Client) Start(ctx context.Context) error {
	ctx = xcontext.WithLogger(ctx, c.logger)

	gatewayCfg := c.cfg.Gateway
	if gatewayCfg.URL == "" {
		url, shards, err := c.rest.GetGatewayURL(ctx)
		if err != nil {
			return err
		}

		gatewayCfg.URL = url
		if gatewayCfg.ShardCount < shards {
			c.logger.Warnf("Discord recommends %d shards, running with %d", shards, gatewayCfg.ShardCount)
		}
	}

	gate := gateway.New(gatewayCfg, c.cfg.Bot.Token, c.dispatcher.Dispatch)
	return gate.Run(ctx)
}

func (c *Client) recordMe(ctx context.Context, data any) {
	ready, ok := data.(map[string]any)
	if !ok {
		return
	}

	payload, ok := ready["user"].(map[string]any)
	if !ok {
		return
	}

	me, err := model.BuildAs[model.UserModel](c.registry, model.KindUser, payload)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot build own user from READY: %v", err)
		return
	}

	c.meMutex.Lock()
	c.me = me
	c.meMutex.Unlock()
}
