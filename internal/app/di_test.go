package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sindri-dev/secrets/internal/config"
	apperrors "github.com/sindri-dev/secrets/internal/errors"
	"github.com/sindri-dev/secrets/internal/metrics"
	"github.com/sindri-dev/secrets/internal/secrets/cache"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		LogLevel:           "info",
		ConfigDir:          ".",
		ManifestFile:       "sindri.yaml",
		CacheEnabled:       true,
		CacheTTL:           time.Hour,
		ResolveTimeout:     30 * time.Second,
		ResolveConcurrency: 10,
	}

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "debug",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "invalid",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

// TestContainerInitializationErrors verifies that initialization errors are stored and returned again.
func TestContainerInitializationErrors(t *testing.T) {
	container := NewContainer(&config.Config{})

	_, err1 := container.S3Client()
	if err1 == nil {
		t.Fatal("expected error without S3_BUCKET")
	}
	if !apperrors.Is(err1, secretsDomain.ErrConfig) {
		t.Errorf("expected config error, got %v", err1)
	}

	_, err2 := container.S3Client()
	if err2 == nil {
		t.Fatal("expected stored error on second call")
	}

	if _, err := container.StoreUseCase(); err == nil {
		t.Error("expected store use case to fail without S3")
	}
	if _, err := container.RotationUseCase(); err == nil {
		t.Error("expected rotation use case to fail without S3")
	}
	if _, err := container.VaultClient(); err == nil {
		t.Error("expected error without VAULT_ADDR")
	}
}

// TestContainerLazyInitialization verifies that components are only created when first accessed.
func TestContainerLazyInitialization(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "info"})

	if container.logger != nil {
		t.Error("logger should not be initialized before first access")
	}
	if container.envelope != nil {
		t.Error("envelope should not be initialized before first access")
	}

	_ = container.Logger()
	_ = container.Envelope()

	if container.logger == nil {
		t.Error("logger should be initialized after first access")
	}
	if container.envelope == nil {
		t.Error("envelope should be initialized after first access")
	}
	if container.masterKeyStore != nil {
		t.Error("master key store should stay uninitialized")
	}
}

// TestContainerCache verifies the cache selection for enabled and disabled caching.
func TestContainerCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		container := NewContainer(&config.Config{CacheEnabled: false})

		c, err := container.Cache()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.(*cache.Noop); !ok {
			t.Errorf("expected noop cache, got %T", c)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cache")
		container := NewContainer(&config.Config{CacheEnabled: true, CacheDir: dir, CacheTTL: time.Minute})

		c, err := container.Cache()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fileCache, ok := c.(*cache.FileCache)
		if !ok {
			t.Fatalf("expected file cache, got %T", c)
		}
		if fileCache.Dir() != dir {
			t.Errorf("expected cache dir %s, got %s", dir, fileCache.Dir())
		}

		lockDir, err := container.CacheDir()
		if err != nil || lockDir != dir {
			t.Errorf("expected cache dir %s, got %s (%v)", dir, lockDir, err)
		}
	})
}

// TestContainerSources verifies which sources are registered for a configuration.
func TestContainerSources(t *testing.T) {
	t.Run("local only", func(t *testing.T) {
		container := NewContainer(&config.Config{})

		sources, err := container.Sources()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 2 {
			t.Fatalf("expected env and file sources, got %d", len(sources))
		}
		if _, ok := sources[secretsDomain.SourceEnv]; !ok {
			t.Error("expected env source")
		}
		if _, ok := sources[secretsDomain.SourceFile]; !ok {
			t.Error("expected file source")
		}
	})

	t.Run("vault configured", func(t *testing.T) {
		container := NewContainer(&config.Config{
			LogLevel:     "info",
			VaultAddr:    "http://127.0.0.1:8200",
			VaultToken:   "test-token",
			VaultTimeout: time.Second,
		})

		sources, err := container.Sources()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := sources[secretsDomain.SourceVault]; !ok {
			t.Error("expected vault source")
		}
		if _, ok := sources[secretsDomain.SourceS3]; ok {
			t.Error("s3 source should not be registered without a bucket")
		}
	})
}

// TestContainerResolverUseCase verifies that the assembled resolver reads the shell environment.
func TestContainerResolverUseCase(t *testing.T) {
	t.Setenv("DI_TEST_TOKEN", "s3cr3t")

	for _, metricsEnabled := range []bool{false, true} {
		container := NewContainer(&config.Config{
			LogLevel:           "error",
			ResolveTimeout:     5 * time.Second,
			ResolveConcurrency: 2,
			MetricsEnabled:     metricsEnabled,
			MetricsNamespace:   "di_test",
		})

		resolver, err := container.ResolverUseCase()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		secrets, err := resolver.ResolveAll(
			context.Background(),
			[]secretsDomain.SecretDescriptor{
				{Name: "DI_TEST_TOKEN", Source: secretsDomain.SourceEnv, Required: true},
			},
			secretsDomain.NewResolutionContext(t.TempDir()),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := string(secrets["DI_TEST_TOKEN"].Bytes()); got != "s3cr3t" {
			t.Errorf("expected resolved value, got %q", got)
		}
		secrets.Close()

		if err := container.Shutdown(context.Background()); err != nil {
			t.Errorf("unexpected shutdown error: %v", err)
		}
	}
}

// TestContainerMetrics verifies metrics wiring and the textfile written at shutdown.
func TestContainerMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		container := NewContainer(&config.Config{MetricsEnabled: false})

		provider, err := container.MetricsProvider()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider != nil {
			t.Error("expected nil provider when metrics are disabled")
		}

		if _, err := container.OperationMetrics(); err != nil {
			t.Errorf("expected no-op operation metrics, got %v", err)
		}
	})

	t.Run("textfile written on shutdown", func(t *testing.T) {
		textfile := filepath.Join(t.TempDir(), "metrics", "sindri.prom")
		container := NewContainer(&config.Config{
			MetricsEnabled:   true,
			MetricsNamespace: "di_test",
			MetricsTextfile:  textfile,
		})

		operationMetrics, err := container.OperationMetrics()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		operationMetrics.RecordOperation(context.Background(), metrics.ComponentResolver, "resolve_all", metrics.StatusSuccess, time.Millisecond)

		if err := container.Shutdown(context.Background()); err != nil {
			t.Fatalf("unexpected shutdown error: %v", err)
		}

		if _, err := os.Stat(textfile); err != nil {
			t.Errorf("expected metrics textfile: %v", err)
		}
	})
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "info"})

	// Shutdown should not fail even if no components are initialized
	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
