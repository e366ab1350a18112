package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sindri-dev/secrets/cmd/app/commands"
	"github.com/sindri-dev/secrets/internal/config"
)

func getResolveCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "validate",
			Usage: "Check that every manifest secret can be resolved",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Fail when optional secrets are unresolved too",
				},
				formatFlag(),
			}, manifestFlags...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, container := newContainer()
				defer commands.CloseContainer(container)

				m, rctx, err := loadManifest(cfg, cmd)
				if err != nil {
					return err
				}

				resolver, err := container.ResolverUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					resolver,
					container.Logger(),
					commands.DefaultIO(),
					m,
					rctx,
					cmd.Bool("strict"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "manifest",
			Usage: "Show the secrets declared in the manifest",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "source",
					Aliases: []string{"s"},
					Usage:   "Only show secrets of this source (env, file, vault, s3)",
				},
				formatFlag(),
			}, manifestFlags...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				m, _, err := loadManifest(config.Load(), cmd)
				if err != nil {
					return err
				}

				return commands.RunManifest(commands.DefaultIO(), m, cmd.String("source"), cmd.String("format"))
			},
		},
		{
			Name:  "test-vault",
			Usage: "Check the Vault connection with the configured address and credentials",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, container := newContainer()
				defer commands.CloseContainer(container)

				client, err := container.VaultClient()
				if err != nil {
					return err
				}

				return commands.RunTestVault(
					ctx,
					client,
					container.Logger(),
					commands.DefaultIO(),
					cfg.VaultAddr,
					string(client.Method()),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "encode-file",
			Usage:     "Base64-encode a file for use as an env secret",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write to this file instead of stdout",
				},
				&cli.BoolFlag{
					Name:  "newline",
					Value: true,
					Usage: "Add a newline at the end",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				path, err := requiredArg(cmd, "FILE")
				if err != nil {
					return err
				}
				return commands.RunEncodeFile(commands.DefaultIO(), path, cmd.String("output"), cmd.Bool("newline"))
			},
		},
	}
}

func getCacheCommands() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and maintain the local secret cache",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show cache statistics",
				Flags: []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, container := newContainer()
					defer commands.CloseContainer(container)

					secretCache, err := container.Cache()
					if err != nil {
						return err
					}
					dir, err := container.CacheDir()
					if err != nil {
						return err
					}

					return commands.RunCacheStats(secretCache, commands.DefaultIO(), dir, cmd.String("format"))
				},
			},
			{
				Name:  "clear",
				Usage: "Remove every cached secret",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, container := newContainer()
					defer commands.CloseContainer(container)

					secretCache, err := container.Cache()
					if err != nil {
						return err
					}

					return commands.RunCacheClear(secretCache, container.Logger(), commands.DefaultIO())
				},
			},
			{
				Name:  "cleanup",
				Usage: "Remove expired cached secrets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, container := newContainer()
					defer commands.CloseContainer(container)

					secretCache, err := container.Cache()
					if err != nil {
						return err
					}

					return commands.RunCacheCleanup(secretCache, container.Logger(), commands.DefaultIO())
				},
			},
		},
	}
}
