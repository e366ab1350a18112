package vault

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// fakeVault serves the subset of the Vault HTTP API used by Client.
type fakeVault struct {
	mu           sync.Mutex
	secrets      map[string]map[string]any
	forbidden    map[string]bool
	unavailable  int
	tokenTTL     int
	renewable    bool
	sealed       bool
	readCalls    int
	renewCalls   int
	loginCalls   int
	seenTokens   []string
	approleToken string
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		secrets: map[string]map[string]any{
			"app/db": {"password": "hunter2", "port": 5432},
		},
		forbidden:    map[string]bool{},
		tokenTTL:     7200,
		renewable:    true,
		approleToken: "s.approle-token",
	}
}

func (f *fakeVault) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	writeJSON := func(status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	switch {
	case r.URL.Path == "/v1/sys/health":
		writeJSON(http.StatusOK, map[string]any{"initialized": true, "sealed": f.sealed, "standby": false})
	case r.URL.Path == "/v1/auth/approle/login":
		f.loginCalls++
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["role_id"] != "role" || body["secret_id"] != "secret" {
			writeJSON(http.StatusBadRequest, map[string]any{"errors": []string{"invalid role or secret ID"}})
			return
		}
		writeJSON(http.StatusOK, map[string]any{
			"auth": map[string]any{"client_token": f.approleToken, "renewable": true, "lease_duration": 3600},
		})
	case r.URL.Path == "/v1/auth/token/lookup-self":
		writeJSON(http.StatusOK, map[string]any{"data": map[string]any{"ttl": f.tokenTTL, "renewable": f.renewable}})
	case r.URL.Path == "/v1/auth/token/renew-self":
		f.renewCalls++
		writeJSON(http.StatusOK, map[string]any{"auth": map[string]any{"client_token": "renewed", "lease_duration": 7200}})
	default:
		f.readCalls++
		f.seenTokens = append(f.seenTokens, r.Header.Get("X-Vault-Token"))
		path := r.URL.Path[len("/v1/secret/data/"):]
		if f.unavailable > 0 {
			f.unavailable--
			writeJSON(http.StatusServiceUnavailable, map[string]any{"errors": []string{"Vault is sealed"}})
			return
		}
		if f.forbidden[path] {
			writeJSON(http.StatusForbidden, map[string]any{"errors": []string{"permission denied"}})
			return
		}
		data, ok := f.secrets[path]
		if !ok {
			writeJSON(http.StatusNotFound, map[string]any{"errors": []string{}})
			return
		}
		writeJSON(http.StatusOK, map[string]any{
			"data": map[string]any{
				"data": data,
				"metadata": map[string]any{
					"created_time":  "2026-01-02T03:04:05Z",
					"deletion_time": "",
					"destroyed":     false,
					"version":       1,
				},
			},
		})
	}
}

func newTestClient(t *testing.T, fake *fakeVault, cfg Config) *Client {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg.Address = server.URL
	cfg.RetryInitialInterval = time.Millisecond
	cfg.RetryMaxInterval = 5 * time.Millisecond

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

func TestConfig_Method(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected AuthMethod
	}{
		{"token wins over approle", Config{Token: "t", RoleID: "r", SecretID: "s"}, AuthToken},
		{"approle needs both ids", Config{RoleID: "r"}, AuthNone},
		{"approle", Config{RoleID: "r", SecretID: "s", K8sRole: "k"}, AuthAppRole},
		{"kubernetes", Config{K8sRole: "deployer"}, AuthKubernetes},
		{"none", Config{}, AuthNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.Method())
		})
	}
}

func TestClient_ReadKV(t *testing.T) {
	ctx := context.Background()

	t.Run("reads string value with token auth", func(t *testing.T) {
		fake := newFakeVault()
		client := newTestClient(t, fake, Config{Token: "s.root"})

		value, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.NoError(t, err)
		assert.Equal(t, "hunter2", string(value))
		assert.Equal(t, []string{"s.root"}, fake.seenTokens)
	})

	t.Run("encodes non-string values as json", func(t *testing.T) {
		client := newTestClient(t, newFakeVault(), Config{Token: "s.root"})

		value, err := client.ReadKV(ctx, "secret", "app/db", "port")
		require.NoError(t, err)
		assert.Equal(t, "5432", string(value))
	})

	t.Run("missing path is not found", func(t *testing.T) {
		client := newTestClient(t, newFakeVault(), Config{Token: "s.root"})

		_, err := client.ReadKV(ctx, "secret", "app/missing", "password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrSecretNotFound))
	})

	t.Run("missing key is not found", func(t *testing.T) {
		client := newTestClient(t, newFakeVault(), Config{Token: "s.root"})

		_, err := client.ReadKV(ctx, "secret", "app/db", "username")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrSecretNotFound))
	})

	t.Run("forbidden is authentication failure not not found", func(t *testing.T) {
		fake := newFakeVault()
		fake.forbidden["app/db"] = true
		client := newTestClient(t, fake, Config{Token: "s.bad"})

		_, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrAuthentication))
		assert.False(t, errors.Is(err, secretsDomain.ErrSecretNotFound))
		assert.Equal(t, 1, fake.readCalls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		fake := newFakeVault()
		fake.unavailable = 2
		client := newTestClient(t, fake, Config{Token: "s.root"})

		value, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.NoError(t, err)
		assert.Equal(t, "hunter2", string(value))
		assert.Equal(t, 3, fake.readCalls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		fake := newFakeVault()
		fake.unavailable = 10
		client := newTestClient(t, fake, Config{Token: "s.root", RetryMaxAttempts: 3})

		_, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrUnavailable))
		assert.Equal(t, 3, fake.readCalls)
	})

	t.Run("no auth configured", func(t *testing.T) {
		fake := newFakeVault()
		client := newTestClient(t, fake, Config{})

		_, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrAuthentication))
		assert.Zero(t, fake.readCalls)
	})
}

func TestClient_AppRole(t *testing.T) {
	ctx := context.Background()

	t.Run("logs in once and uses the issued token", func(t *testing.T) {
		fake := newFakeVault()
		client := newTestClient(t, fake, Config{RoleID: "role", SecretID: "secret"})

		for range 2 {
			_, err := client.ReadKV(ctx, "secret", "app/db", "password")
			require.NoError(t, err)
		}
		assert.Equal(t, 1, fake.loginCalls)
		assert.Equal(t, []string{"s.approle-token", "s.approle-token"}, fake.seenTokens)
	})

	t.Run("rejected credentials are authentication failures", func(t *testing.T) {
		fake := newFakeVault()
		client := newTestClient(t, fake, Config{RoleID: "role", SecretID: "wrong"})

		_, err := client.ReadKV(ctx, "secret", "app/db", "password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrAuthentication) || errors.Is(err, secretsDomain.ErrConfig))
		assert.Zero(t, fake.readCalls)
	})
}

func TestClient_TokenRenewal(t *testing.T) {
	tests := []struct {
		name          string
		ttl           int
		renewable     bool
		expectedRenew int
	}{
		{"renews short lived renewable token", 600, true, 1},
		{"skips long lived token", 7200, true, 0},
		{"skips non renewable token", 600, false, 0},
		{"skips tokens without ttl", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeVault()
			fake.tokenTTL = tt.ttl
			fake.renewable = tt.renewable
			client := newTestClient(t, fake, Config{Token: "s.root"})

			_, err := client.ReadKV(context.Background(), "secret", "app/db", "password")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRenew, fake.renewCalls)
		})
	}
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := newTestClient(t, newFakeVault(), Config{Token: "s.root"})
		assert.NoError(t, client.Health(context.Background()))
	})

	t.Run("sealed", func(t *testing.T) {
		fake := newFakeVault()
		fake.sealed = true
		client := newTestClient(t, fake, Config{Token: "s.root"})

		err := client.Health(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrUnavailable))
	})
}
