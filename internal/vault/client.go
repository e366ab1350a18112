// Package vault provides a HashiCorp Vault KV v2 client with token, AppRole and
// Kubernetes authentication, token renewal and retries.
package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/vault/api"
	"github.com/hashicorp/vault/api/auth/approle"
	"github.com/hashicorp/vault/api/auth/kubernetes"

	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

const (
	// DefaultK8sJWTPath is where Kubernetes mounts the service account token.
	DefaultK8sJWTPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"

	defaultRenewThreshold  = time.Hour
	defaultRetryAttempts   = 3
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxInterval     = 10 * time.Second
)

// Config holds Vault connection and authentication settings.
type Config struct {
	Address    string
	Token      string
	Namespace  string
	Timeout    time.Duration
	SkipVerify bool

	RoleID           string
	SecretID         string
	AppRoleMountPath string

	K8sRole      string
	K8sJWTPath   string
	K8sMountPath string

	RetryMaxAttempts     int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RenewThreshold       time.Duration
}

// AuthMethod names the selected authentication method.
type AuthMethod string

const (
	AuthToken      AuthMethod = "token"
	AuthAppRole    AuthMethod = "approle"
	AuthKubernetes AuthMethod = "kubernetes"
	AuthNone       AuthMethod = "none"
)

// Method returns the authentication method selected by the configuration.
func (c Config) Method() AuthMethod {
	switch {
	case c.Token != "":
		return AuthToken
	case c.RoleID != "" && c.SecretID != "":
		return AuthAppRole
	case c.K8sRole != "":
		return AuthKubernetes
	default:
		return AuthNone
	}
}

// Client reads secrets from Vault. It is safe for concurrent use and shares one
// HTTP connection pool across every read.
type Client struct {
	config Config
	api    *api.Client
	logger *slog.Logger

	mu            sync.Mutex
	authenticated bool
}

// NewClient creates a client. Authentication is deferred until the first read.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	apiConfig := api.DefaultConfig()
	if apiConfig.Error != nil {
		return nil, fmt.Errorf("%w: invalid vault environment: %v", secretsDomain.ErrConfig, apiConfig.Error)
	}
	if cfg.Address != "" {
		apiConfig.Address = cfg.Address
	}
	if cfg.Timeout > 0 {
		apiConfig.Timeout = cfg.Timeout
	}
	if cfg.SkipVerify {
		if err := apiConfig.ConfigureTLS(&api.TLSConfig{Insecure: true}); err != nil {
			return nil, fmt.Errorf("%w: failed to configure vault tls: %v", secretsDomain.ErrConfig, err)
		}
	}
	// Retries are handled by ReadKV so they can stop on non-transient errors.
	apiConfig.MaxRetries = 0

	client, err := api.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create vault client: %v", secretsDomain.ErrConfig, err)
	}
	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}
	client.ClearToken()

	if cfg.RetryMaxAttempts <= 0 {
		cfg.RetryMaxAttempts = defaultRetryAttempts
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = defaultInitialInterval
	}
	if cfg.RetryMaxInterval <= 0 {
		cfg.RetryMaxInterval = defaultMaxInterval
	}
	if cfg.RenewThreshold <= 0 {
		cfg.RenewThreshold = defaultRenewThreshold
	}
	if cfg.K8sJWTPath == "" {
		cfg.K8sJWTPath = DefaultK8sJWTPath
	}

	return &Client{config: cfg, api: client, logger: logger}, nil
}

// ReadKV reads key from the KV v2 secret at mount/data/path.
// Non-string values are returned JSON-encoded.
func (c *Client) ReadKV(ctx context.Context, mount, path, key string) ([]byte, error) {
	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}
	c.renewIfNeeded(ctx)

	var value []byte
	operation := func() error {
		secret, err := c.api.KVv2(mount).Get(ctx, path)
		if err != nil {
			classified := classify(err)
			if !isRetryable(classified) || ctx.Err() != nil {
				return backoff.Permanent(classified)
			}
			c.logger.Debug("vault read failed, retrying",
				slog.String("mount", mount),
				slog.String("path", path),
				slog.Any("error", err),
			)
			return classified
		}
		if secret == nil || secret.Data == nil {
			return backoff.Permanent(fmt.Errorf("%w: %s/%s", secretsDomain.ErrSecretNotFound, mount, path))
		}

		raw, ok := secret.Data[key]
		if !ok || raw == nil {
			return backoff.Permanent(fmt.Errorf("%w: key %q not present at %s/%s",
				secretsDomain.ErrSecretNotFound, key, mount, path))
		}

		switch v := raw.(type) {
		case string:
			value = []byte(v)
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("%w: failed to encode vault value: %v", secretsDomain.ErrConfig, err))
			}
			value = encoded
		}
		return nil
	}

	if err := backoff.Retry(operation, c.retryPolicy(ctx)); err != nil {
		return nil, err
	}
	return value, nil
}

// Health checks that Vault is initialized and unsealed.
func (c *Client) Health(ctx context.Context) error {
	health, err := c.api.Sys().HealthWithContext(ctx)
	if err != nil {
		return classify(err)
	}
	if !health.Initialized || health.Sealed {
		return fmt.Errorf("%w: vault is sealed or not initialized", secretsDomain.ErrUnavailable)
	}
	return nil
}

// Method returns the configured authentication method.
func (c *Client) Method() AuthMethod {
	return c.config.Method()
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOffContext {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = c.config.RetryInitialInterval
	exponential.MaxInterval = c.config.RetryMaxInterval
	exponential.MaxElapsedTime = 0

	return backoff.WithContext(
		backoff.WithMaxRetries(exponential, uint64(c.config.RetryMaxAttempts-1)),
		ctx,
	)
}

// authenticate selects token, AppRole or Kubernetes auth and logs in once.
func (c *Client) authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.authenticated {
		return nil
	}

	method := c.config.Method()
	switch method {
	case AuthToken:
		c.api.SetToken(c.config.Token)
	case AuthAppRole:
		opts := []approle.LoginOption{}
		if c.config.AppRoleMountPath != "" {
			opts = append(opts, approle.WithMountPath(c.config.AppRoleMountPath))
		}
		auth, err := approle.NewAppRoleAuth(c.config.RoleID, &approle.SecretID{FromString: c.config.SecretID}, opts...)
		if err != nil {
			return fmt.Errorf("%w: invalid approle configuration: %v", secretsDomain.ErrConfig, err)
		}
		if err := c.login(ctx, auth); err != nil {
			return err
		}
	case AuthKubernetes:
		opts := []kubernetes.LoginOption{kubernetes.WithServiceAccountTokenPath(c.config.K8sJWTPath)}
		if c.config.K8sMountPath != "" {
			opts = append(opts, kubernetes.WithMountPath(c.config.K8sMountPath))
		}
		auth, err := kubernetes.NewKubernetesAuth(c.config.K8sRole, opts...)
		if err != nil {
			return fmt.Errorf("%w: invalid kubernetes auth configuration: %v", secretsDomain.ErrConfig, err)
		}
		if err := c.login(ctx, auth); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: no vault authentication configured (set VAULT_TOKEN, VAULT_ROLE_ID/VAULT_SECRET_ID or VAULT_K8S_ROLE)",
			secretsDomain.ErrAuthentication)
	}

	c.logger.Debug("vault authenticated", slog.String("method", string(method)))
	c.authenticated = true
	return nil
}

func (c *Client) login(ctx context.Context, auth api.AuthMethod) error {
	secret, err := c.api.Auth().Login(ctx, auth)
	if err != nil {
		classified := classify(err)
		if errorsIsConfig(classified) {
			return classified
		}
		return fmt.Errorf("%w: vault login failed: %v", secretsDomain.ErrAuthentication, err)
	}
	if secret == nil || secret.Auth == nil {
		return fmt.Errorf("%w: vault login returned no token", secretsDomain.ErrAuthentication)
	}
	return nil
}

// renewIfNeeded renews a renewable token whose remaining TTL is under the threshold.
// Lookup and renewal failures are logged; the read decides whether the token still works.
func (c *Client) renewIfNeeded(ctx context.Context) {
	secret, err := c.api.Auth().Token().LookupSelfWithContext(ctx)
	if err != nil || secret == nil {
		c.logger.Debug("vault token lookup failed", slog.Any("error", err))
		return
	}

	renewable, err := secret.TokenIsRenewable()
	if err != nil || !renewable {
		return
	}
	ttl, err := secret.TokenTTL()
	if err != nil || ttl <= 0 || ttl >= c.config.RenewThreshold {
		return
	}

	if _, err := c.api.Auth().Token().RenewSelfWithContext(ctx, 0); err != nil {
		c.logger.Warn("vault token renewal failed", slog.Any("error", err))
		return
	}
	c.logger.Debug("vault token renewed", slog.Duration("previous_ttl", ttl))
}
