// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/sindri-dev/secrets/internal/config"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
	"github.com/sindri-dev/secrets/internal/metrics"
	"github.com/sindri-dev/secrets/internal/secrets/cache"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsRepository "github.com/sindri-dev/secrets/internal/secrets/repository"
	secretsSource "github.com/sindri-dev/secrets/internal/secrets/source"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
	"github.com/sindri-dev/secrets/internal/vault"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger           *slog.Logger
	metricsProvider  *metrics.Provider
	operationMetrics metrics.OperationMetrics
	sourceMetrics    metrics.SourceMetrics

	// Crypto
	kmsService     cryptoService.KMSService
	masterKeyStore cryptoService.MasterKeyStore
	envelope       cryptoService.EnvelopeService

	// Storage and backends
	cache        cache.Cache
	s3Client     secretsRepository.S3API
	s3Repository *secretsRepository.S3RecordRepository
	vaultClient  *vault.Client
	s3Source     *secretsSource.S3Source
	sources      map[secretsDomain.Source]secretsUseCase.Source

	// Use Cases
	resolverUseCase secretsUseCase.ResolverUseCase
	storeUseCase    secretsUseCase.StoreUseCase
	rotationUseCase secretsUseCase.RotationUseCase

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	metricsProviderInit  sync.Once
	operationMetricsInit sync.Once
	sourceMetricsInit    sync.Once
	kmsServiceInit       sync.Once
	masterKeyStoreInit   sync.Once
	envelopeInit         sync.Once
	cacheInit            sync.Once
	s3ClientInit         sync.Once
	s3RepositoryInit     sync.Once
	vaultClientInit      sync.Once
	s3SourceInit         sync.Once
	sourcesInit          sync.Once
	resolverUseCaseInit  sync.Once
	storeUseCaseInit     sync.Once
	rotationUseCaseInit  sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider. It is nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// OperationMetrics returns the operation metrics recorder, a no-op when metrics are disabled.
func (c *Container) OperationMetrics() (metrics.OperationMetrics, error) {
	var err error
	c.operationMetricsInit.Do(func() {
		c.operationMetrics, err = c.initOperationMetrics()
		if err != nil {
			c.initErrors["operationMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["operationMetrics"]; exists {
		return nil, storedErr
	}
	return c.operationMetrics, nil
}

// SourceMetrics returns the source lookup recorder, a no-op when metrics are disabled.
func (c *Container) SourceMetrics() (metrics.SourceMetrics, error) {
	var err error
	c.sourceMetricsInit.Do(func() {
		c.sourceMetrics, err = c.initSourceMetrics()
		if err != nil {
			c.initErrors["sourceMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sourceMetrics"]; exists {
		return nil, storedErr
	}
	return c.sourceMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if path := c.config.MetricsTextfile; path != "" {
			if err := c.metricsProvider.WriteTextfile(path); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics textfile: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
// Logs go to stderr so command output on stdout stays machine readable.
func (c *Container) initLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.config.GetLogLevel(),
	})

	return slog.New(handler)
}

// initMetricsProvider creates the OpenTelemetry provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initOperationMetrics creates the operation metrics recorder.
func (c *Container) initOperationMetrics() (metrics.OperationMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for operation metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpOperationMetrics(), nil
	}
	return metrics.NewOperationMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initSourceMetrics creates the source lookup recorder.
func (c *Container) initSourceMetrics() (metrics.SourceMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for source metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpSourceMetrics(), nil
	}
	return metrics.NewSourceMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}
