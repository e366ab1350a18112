package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sindri-dev/secrets/internal/app"
	"github.com/sindri-dev/secrets/internal/config"
	"github.com/sindri-dev/secrets/internal/manifest"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getResolveCommands()...)
	cmds = append(cmds, getStoreCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getCacheCommands())
	return cmds
}

// newContainer loads the configuration and creates the DI container.
func newContainer() (*config.Config, *app.Container) {
	cfg := config.Load()
	return cfg, app.NewContainer(cfg)
}

var manifestFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Manifest file (default: $CONFIG_DIR/$MANIFEST_FILE)",
	},
	&cli.StringFlag{
		Name:  "config-dir",
		Usage: "Directory holding the manifest, .env and .env.local (overrides CONFIG_DIR)",
	},
	&cli.StringFlag{
		Name:  "env-file",
		Usage: "Env file to read instead of .env.local and .env",
	},
}

// loadManifest reads the manifest selected by the manifest flags and returns the
// resolution context rooted at the config directory.
func loadManifest(cfg *config.Config, cmd *cli.Command) (*manifest.Manifest, secretsDomain.ResolutionContext, error) {
	if dir := cmd.String("config-dir"); dir != "" {
		cfg.ConfigDir = dir
	}

	path := cmd.String("manifest")
	if path == "" {
		path = cfg.ManifestPath()
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, secretsDomain.ResolutionContext{}, err
	}

	rctx := secretsDomain.NewResolutionContext(cfg.ConfigDir)
	rctx.CustomEnvFile = cmd.String("env-file")
	return m, rctx, nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// requiredArg returns the first positional argument or an error naming it.
func requiredArg(cmd *cli.Command, name string) (string, error) {
	value := cmd.Args().First()
	if value == "" {
		return "", fmt.Errorf("missing required argument %s", name)
	}
	return value, nil
}
