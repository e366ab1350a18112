package vault

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/vault/api"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// classify maps Vault client errors onto the secret error taxonomy.
// Authentication failures are kept distinct from missing secrets.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, api.ErrSecretNotFound) {
		return fmt.Errorf("%w: %v", secretsDomain.ErrSecretNotFound, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
	}

	var apiErr *api.ResponseError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %v", secretsDomain.ErrSecretNotFound, err)
		case apiErr.StatusCode == http.StatusUnauthorized, apiErr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("%w: %v", secretsDomain.ErrAuthentication, err)
		case apiErr.StatusCode == http.StatusBadRequest:
			return fmt.Errorf("%w: %v", secretsDomain.ErrConfig, err)
		}
	}

	return fmt.Errorf("%w: %v", secretsDomain.ErrUnavailable, err)
}

func isRetryable(err error) bool {
	return errors.Is(err, secretsDomain.ErrUnavailable)
}

func errorsIsConfig(err error) bool {
	return errors.Is(err, secretsDomain.ErrConfig)
}
