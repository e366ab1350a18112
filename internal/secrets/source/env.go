// Package source implements the Env, File, Vault and S3 secret sources.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

const (
	envLocalFile = ".env.local"
	envFile      = ".env"
)

// LookupFunc reads a variable from the process environment.
type LookupFunc func(key string) (string, bool)

// EnvSource resolves secrets from the shell environment, .env files and from_file.
type EnvSource struct {
	lookup LookupFunc
}

// NewEnvSource creates an EnvSource. A nil lookup uses os.LookupEnv.
func NewEnvSource(lookup LookupFunc) *EnvSource {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvSource{lookup: lookup}
}

// Resolve tries the shell environment, then the env files, then from_file.
func (s *EnvSource) Resolve(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
	}

	if value, ok := s.lookup(descriptor.Name); ok {
		return secretsDomain.NewSecretValue([]byte(value), secretsDomain.FromShellEnv), nil
	}

	for _, candidate := range envFiles(rctx) {
		value, ok, err := readEnvFile(candidate.path, descriptor.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			return secretsDomain.NewSecretValue(value, candidate.from), nil
		}
	}

	if descriptor.FromFile != "" {
		value, ok, err := readFromFile(resolvePath(rctx.ConfigDir, descriptor.FromFile))
		if err != nil {
			return nil, err
		}
		if ok {
			return secretsDomain.NewSecretValue(value, secretsDomain.FromFromFile), nil
		}
	}

	return nil, fmt.Errorf("%w: %s not set in environment or env files", secretsDomain.ErrSecretNotFound, descriptor.Name)
}

type envCandidate struct {
	path string
	from secretsDomain.ResolvedFrom
}

func envFiles(rctx secretsDomain.ResolutionContext) []envCandidate {
	if rctx.CustomEnvFile != "" {
		return []envCandidate{{
			path: resolvePath(rctx.ConfigDir, rctx.CustomEnvFile),
			from: secretsDomain.FromCustomEnvFile,
		}}
	}
	return []envCandidate{
		{path: resolvePath(rctx.ConfigDir, envLocalFile), from: secretsDomain.FromEnvLocalFile},
		{path: resolvePath(rctx.ConfigDir, envFile), from: secretsDomain.FromEnvFile},
	}
}

// readEnvFile parses path and returns the value of name. A missing file is skipped.
func readEnvFile(path, name string) ([]byte, bool, error) {
	content, err := os.ReadFile(path) //nolint:gosec // env file path comes from the resolution context
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to read env file %s: %v", secretsDomain.ErrConfig, path, err)
	}
	defer cryptoDomain.Zero(content)

	values, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to parse env file %s: %v", secretsDomain.ErrConfig, path, err)
	}

	value, ok := values[name]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// readFromFile returns the trimmed content of path. A missing file is skipped.
func readFromFile(path string) ([]byte, bool, error) {
	content, err := os.ReadFile(path) //nolint:gosec // from_file is declared in the manifest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, false, fmt.Errorf("%w: cannot read %s", secretsDomain.ErrPermission, path)
		}
		return nil, false, fmt.Errorf("%w: failed to read %s: %v", secretsDomain.ErrConfig, path, err)
	}
	defer cryptoDomain.Zero(content)

	trimmed := bytes.TrimSpace(content)
	value := make([]byte, len(trimmed))
	copy(value, trimmed)
	return value, true, nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
