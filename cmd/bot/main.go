package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/gocord/gocord"
	"github.com/gocord/gocord/config"
	"github.com/gocord/gocord/pkg/command"
	"github.com/gocord/gocord/pkg/model"
	"github.com/gocord/gocord/pkg/rest"
)

func main() {
	app := cli.NewApp()
	app.Name = "gocord"
	app.Usage = "a Discord bot runtime"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the bot configuration file",
			Value:   "bot.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      run,
			Name:        "run",
			Usage:       "Start the bot",
			Description: `Connects to the gateway and serves the built-in demo commands until interrupted.`,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return err
	}

	client := gocord.New(*cfg)

	err = client.Command("ping", "", func(ctx context.Context, msg model.MessageModel, args command.Args) {
		core := msg.CoreMessage()
		_, err := client.Rest().CreateMessage(ctx, core.ChannelID, rest.OutgoingMessage{Content: "pong"})
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot answer ping: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	err = client.Command("remind", "*|what/str| in |minutes/int|",
		func(ctx context.Context, msg model.MessageModel, args command.Args) {
			core := msg.CoreMessage()
			reply := fmt.Sprintf("will remind you about %v in %v minutes", args["what"], args["minutes"])
			if _, err := client.Rest().CreateMessage(ctx, core.ChannelID, rest.OutgoingMessage{Content: reply}); err != nil {
				fmt.Fprintf(os.Stderr, "cannot answer remind: %v\n", err)
			}
		})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return client.Start(ctx)
}
