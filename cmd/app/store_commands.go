package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sindri-dev/secrets/cmd/app/commands"
)

var s3PathFlag = &cli.StringFlag{
	Name:  "s3-path",
	Usage: "Object path under S3_PREFIX (default: the secret name)",
}

func getStoreCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "init",
			Usage: "Prepare the S3 bucket and master key for encrypted storage",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "bucket",
					Usage: "S3 bucket name (overrides S3_BUCKET)",
				},
				&cli.StringFlag{
					Name:  "region",
					Usage: "S3 region (overrides S3_REGION)",
				},
				&cli.StringFlag{
					Name:  "endpoint",
					Usage: "Custom S3 endpoint for S3-compatible storage (overrides S3_ENDPOINT)",
				},
				&cli.StringFlag{
					Name:  "key-file",
					Usage: "Master key file to use or create (overrides MASTER_KEY_FILE)",
				},
				&cli.BoolFlag{
					Name:  "create-bucket",
					Usage: "Create the bucket when it does not exist",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the .env settings to this file instead of stdout",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, container := newContainer()
				defer commands.CloseContainer(container)

				if bucket := cmd.String("bucket"); bucket != "" {
					cfg.S3Bucket = bucket
				}
				if region := cmd.String("region"); region != "" {
					cfg.S3Region = region
				}
				if endpoint := cmd.String("endpoint"); endpoint != "" {
					cfg.S3Endpoint = endpoint
					cfg.S3ForcePathStyle = true
				}
				if keyFile := cmd.String("key-file"); keyFile != "" {
					cfg.MasterKeyFile = keyFile
				}

				repo, err := container.S3Repository()
				if err != nil {
					return err
				}

				return commands.RunInit(
					ctx,
					repo,
					container.MasterKeyStore(),
					container.Logger(),
					commands.DefaultIO(),
					commands.InitOptions{
						Region:       cfg.S3Region,
						Endpoint:     cfg.S3Endpoint,
						KeyFile:      cfg.MasterKeyFile,
						CreateBucket: cmd.Bool("create-bucket"),
						Output:       cmd.String("output"),
					},
				)
			},
		},
		{
			Name:      "push",
			Usage:     "Encrypt a secret and upload it to S3",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "Secret value (prefer --stdin to keep it out of shell history)",
				},
				&cli.StringFlag{
					Name:  "from-file",
					Usage: "Read the secret value from a file",
				},
				&cli.BoolFlag{
					Name:  "stdin",
					Usage: "Read the secret value from stdin",
				},
				s3PathFlag,
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite an existing secret",
				},
				&cli.StringSliceFlag{
					Name:  "recipient",
					Usage: "Additional age public key that may decrypt the secret (repeatable)",
				},
				&cli.StringFlag{
					Name:  "description",
					Usage: "Description stored in the record metadata",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				name, err := requiredArg(cmd, "NAME")
				if err != nil {
					return err
				}

				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunPush(ctx, storeUseCase, container.Logger(), commands.DefaultIO(), name,
					commands.PushOptions{
						Value:       cmd.String("value"),
						FromFile:    cmd.String("from-file"),
						Stdin:       cmd.Bool("stdin"),
						S3Path:      cmd.String("s3-path"),
						Force:       cmd.Bool("force"),
						Recipients:  cmd.StringSlice("recipient"),
						Description: cmd.String("description"),
					},
				)
			},
		},
		{
			Name:      "pull",
			Usage:     "Download and decrypt a secret from S3",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				s3PathFlag,
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the value to this file (mode 0600)",
				},
				&cli.BoolFlag{
					Name:  "export",
					Usage: "Format the value as a shell export line",
				},
				&cli.BoolFlag{
					Name:  "show",
					Usage: "Print the plaintext value (insecure)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				name, err := requiredArg(cmd, "NAME")
				if err != nil {
					return err
				}

				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunPull(ctx, storeUseCase, container.Logger(), commands.DefaultIO(), name,
					commands.PullOptions{
						S3Path: cmd.String("s3-path"),
						Output: cmd.String("output"),
						Export: cmd.Bool("export"),
						Show:   cmd.Bool("show"),
					},
				)
			},
		},
		{
			Name:  "sync",
			Usage: "Reconcile the manifest's S3 secrets with the bucket",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Usage:   "Show what would change without changing anything",
				},
				&cli.StringFlag{
					Name:    "direction",
					Aliases: []string{"d"},
					Value:   "both",
					Usage:   "Sync direction: push, pull or both",
				},
				&cli.BoolFlag{
					Name:  "delete-remote",
					Usage: "Delete remote secrets missing from the manifest (push only)",
				},
			}, manifestFlags...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, container := newContainer()
				defer commands.CloseContainer(container)

				m, rctx, err := loadManifest(cfg, cmd)
				if err != nil {
					return err
				}

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}
				resolver, err := container.ResolverUseCase()
				if err != nil {
					return err
				}

				return commands.RunSync(ctx, storeUseCase, resolver, container.Logger(), commands.DefaultIO(), m, rctx,
					commands.SyncOptions{
						Direction:    cmd.String("direction"),
						DryRun:       cmd.Bool("dry-run"),
						DeleteRemote: cmd.Bool("delete-remote"),
					},
				)
			},
		},
		{
			Name:  "list",
			Usage: "List stored secrets",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "filter",
					Usage: "Glob filter on secret paths, e.g. 'prod/**'",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunList(ctx, storeUseCase, container.Logger(), commands.DefaultIO(),
					cmd.String("filter"), cmd.String("format"))
			},
		},
		{
			Name:      "history",
			Usage:     "Show the stored versions of a secret",
			ArgsUsage: "NAME",
			Flags:     []cli.Flag{s3PathFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				name, err := requiredArg(cmd, "NAME")
				if err != nil {
					return err
				}

				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunHistory(ctx, storeUseCase, container.Logger(), commands.DefaultIO(),
					name, cmd.String("s3-path"))
			},
		},
		{
			Name:      "rollback",
			Usage:     "Restore a previous version of a secret",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				s3PathFlag,
				&cli.StringFlag{
					Name:     "version",
					Required: true,
					Usage:    "Version ID to restore (see history)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				name, err := requiredArg(cmd, "NAME")
				if err != nil {
					return err
				}

				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunRollback(ctx, storeUseCase, container.Logger(), commands.DefaultIO(),
					name, cmd.String("s3-path"), cmd.String("version"))
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a stored secret",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				s3PathFlag,
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Skip the confirmation prompt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				name, err := requiredArg(cmd, "NAME")
				if err != nil {
					return err
				}

				_, container := newContainer()
				defer commands.CloseContainer(container)

				storeUseCase, err := container.StoreUseCase()
				if err != nil {
					return err
				}

				return commands.RunDelete(ctx, storeUseCase, container.Logger(), commands.DefaultIO(),
					name, cmd.String("s3-path"), cmd.Bool("yes"))
			},
		},
	}
}
