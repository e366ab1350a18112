package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	validation "github.com/jellydator/validation"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	customValidation "github.com/sindri-dev/secrets/internal/validation"
)

// FileSource checks file secrets and returns their mount metadata.
// File content is never read into memory.
type FileSource struct{}

// NewFileSource creates a FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Resolve validates the path and permissions and returns a metadata-only value.
func (s *FileSource) Resolve(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
	}

	descriptor = descriptor.WithDefaults()

	if customValidation.HasTraversal(descriptor.Path) {
		return nil, fmt.Errorf("%w: path %q contains a parent directory reference", secretsDomain.ErrPermission, descriptor.Path)
	}
	if err := validation.Validate(descriptor.Permissions, customValidation.OctalPermissions); err != nil {
		return nil, fmt.Errorf("%w: invalid permissions %q for %s", secretsDomain.ErrPermission, descriptor.Permissions, descriptor.Name)
	}

	path := resolvePath(rctx.ConfigDir, descriptor.Path)
	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: file %s does not exist", secretsDomain.ErrSecretNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: cannot access %s", secretsDomain.ErrPermission, path)
		default:
			return nil, fmt.Errorf("%w: failed to stat %s: %v", secretsDomain.ErrConfig, path, err)
		}
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", secretsDomain.ErrPermission, path)
	}

	file, err := os.Open(path) //nolint:gosec // path is checked for traversal above
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s", secretsDomain.ErrPermission, path)
	}
	_ = file.Close()

	return secretsDomain.NewFileSecretValue(secretsDomain.FileMetadata{
		Path:        path,
		MountPath:   descriptor.MountPath,
		Permissions: descriptor.Permissions,
	}), nil
}
