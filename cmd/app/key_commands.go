package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sindri-dev/secrets/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "keygen",
			Usage: "Generate a new age master key file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Key file path (default: MASTER_KEY_FILE)",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite an existing key file",
				},
				&cli.BoolFlag{
					Name:  "keyring",
					Usage: "Also store the key in the OS keyring",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, container := newContainer()
				defer commands.CloseContainer(container)

				output := cmd.String("output")
				if output == "" {
					output = cfg.MasterKeyFile
				}

				return commands.RunKeygen(
					ctx,
					container.MasterKeyStore(),
					container.Logger(),
					commands.DefaultIO(),
					output,
					cmd.Bool("force"),
					cmd.Bool("keyring"),
				)
			},
		},
		{
			Name:  "rotate",
			Usage: "Rotate every stored secret to a new master key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "new-key",
					Required: true,
					Usage:    "New master key file (create it with keygen)",
				},
				&cli.StringFlag{
					Name:  "old-key",
					Usage: "Current master key file (default: the configured master key)",
				},
				&cli.BoolFlag{
					Name:  "add-only",
					Usage: "Add the new key as a recipient and keep the old key valid",
				},
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Skip the confirmation prompt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				_, container := newContainer()
				defer commands.CloseContainer(container)

				rotationUseCase, err := container.RotationUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotate(
					ctx,
					rotationUseCase,
					container.MasterKeyStore(),
					container.Logger(),
					commands.DefaultIO(),
					commands.RotateOptions{
						NewKey:  cmd.String("new-key"),
						OldKey:  cmd.String("old-key"),
						AddOnly: cmd.Bool("add-only"),
						Yes:     cmd.Bool("yes"),
					},
				)
			},
		},
	}
}
