package app

import (
	"context"
	"fmt"

	"github.com/sindri-dev/secrets/internal/secrets/cache"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsRepository "github.com/sindri-dev/secrets/internal/secrets/repository"
	secretsSource "github.com/sindri-dev/secrets/internal/secrets/source"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
	"github.com/sindri-dev/secrets/internal/vault"
)

// Cache returns the local plaintext cache, a no-op cache when caching is disabled.
func (c *Container) Cache() (cache.Cache, error) {
	var err error
	c.cacheInit.Do(func() {
		c.cache, err = c.initCache()
		if err != nil {
			c.initErrors["cache"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cache"]; exists {
		return nil, storedErr
	}
	return c.cache, nil
}

// CacheDir returns the configured cache directory or the per-user default.
func (c *Container) CacheDir() (string, error) {
	if c.config.CacheDir != "" {
		return c.config.CacheDir, nil
	}
	return cache.DefaultDir()
}

// S3Client returns the S3 API client.
func (c *Container) S3Client() (secretsRepository.S3API, error) {
	var err error
	c.s3ClientInit.Do(func() {
		c.s3Client, err = c.initS3Client()
		if err != nil {
			c.initErrors["s3Client"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["s3Client"]; exists {
		return nil, storedErr
	}
	return c.s3Client, nil
}

// S3Repository returns the encrypted record repository.
func (c *Container) S3Repository() (*secretsRepository.S3RecordRepository, error) {
	var err error
	c.s3RepositoryInit.Do(func() {
		c.s3Repository, err = c.initS3Repository()
		if err != nil {
			c.initErrors["s3Repository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["s3Repository"]; exists {
		return nil, storedErr
	}
	return c.s3Repository, nil
}

// VaultClient returns the Vault KV client.
func (c *Container) VaultClient() (*vault.Client, error) {
	var err error
	c.vaultClientInit.Do(func() {
		c.vaultClient, err = c.initVaultClient()
		if err != nil {
			c.initErrors["vaultClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultClient"]; exists {
		return nil, storedErr
	}
	return c.vaultClient, nil
}

// S3Source returns the cache-aware S3 source.
func (c *Container) S3Source() (*secretsSource.S3Source, error) {
	var err error
	c.s3SourceInit.Do(func() {
		c.s3Source, err = c.initS3Source()
		if err != nil {
			c.initErrors["s3Source"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["s3Source"]; exists {
		return nil, storedErr
	}
	return c.s3Source, nil
}

// Sources returns the resolution sources keyed by kind.
// Vault and S3 are only present when configured.
func (c *Container) Sources() (map[secretsDomain.Source]secretsUseCase.Source, error) {
	var err error
	c.sourcesInit.Do(func() {
		c.sources, err = c.initSources()
		if err != nil {
			c.initErrors["sources"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sources"]; exists {
		return nil, storedErr
	}
	return c.sources, nil
}

// ResolverUseCase returns the resolver use case.
func (c *Container) ResolverUseCase() (secretsUseCase.ResolverUseCase, error) {
	var err error
	c.resolverUseCaseInit.Do(func() {
		c.resolverUseCase, err = c.initResolverUseCase()
		if err != nil {
			c.initErrors["resolverUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["resolverUseCase"]; exists {
		return nil, storedErr
	}
	return c.resolverUseCase, nil
}

// StoreUseCase returns the encrypted store use case.
func (c *Container) StoreUseCase() (secretsUseCase.StoreUseCase, error) {
	var err error
	c.storeUseCaseInit.Do(func() {
		c.storeUseCase, err = c.initStoreUseCase()
		if err != nil {
			c.initErrors["storeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["storeUseCase"]; exists {
		return nil, storedErr
	}
	return c.storeUseCase, nil
}

// RotationUseCase returns the key rotation use case.
func (c *Container) RotationUseCase() (secretsUseCase.RotationUseCase, error) {
	var err error
	c.rotationUseCaseInit.Do(func() {
		c.rotationUseCase, err = c.initRotationUseCase()
		if err != nil {
			c.initErrors["rotationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rotationUseCase"]; exists {
		return nil, storedErr
	}
	return c.rotationUseCase, nil
}

// initCache creates the file cache, or a no-op cache when caching is disabled.
func (c *Container) initCache() (cache.Cache, error) {
	if !c.config.CacheEnabled {
		return cache.NewNoop(), nil
	}

	dir, err := c.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
	}

	fileCache, err := cache.New(dir, cache.WithTTL(c.config.CacheTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return fileCache, nil
}

func (c *Container) s3Config() secretsRepository.S3Config {
	return secretsRepository.S3Config{
		Bucket:          c.config.S3Bucket,
		Region:          c.config.S3Region,
		Prefix:          c.config.S3Prefix,
		Endpoint:        c.config.S3Endpoint,
		ForcePathStyle:  c.config.S3ForcePathStyle,
		Profile:         c.config.S3Profile,
		AccessKeyID:     c.config.S3AccessKeyID,
		SecretAccessKey: c.config.S3SecretAccessKey,
	}
}

// initS3Client creates the S3 client from the AWS credential chain.
func (c *Container) initS3Client() (secretsRepository.S3API, error) {
	if !c.config.S3Configured() {
		return nil, fmt.Errorf("%w: S3_BUCKET is not set", secretsDomain.ErrConfig)
	}

	client, err := secretsRepository.NewS3Client(context.Background(), c.s3Config())
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return client, nil
}

// initS3Repository creates the record repository on top of the S3 client.
func (c *Container) initS3Repository() (*secretsRepository.S3RecordRepository, error) {
	client, err := c.S3Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 client for repository: %w", err)
	}
	return secretsRepository.NewS3RecordRepository(client, c.s3Config()), nil
}

// initVaultClient creates the Vault client. Authentication happens on first read.
func (c *Container) initVaultClient() (*vault.Client, error) {
	if !c.config.VaultConfigured() {
		return nil, fmt.Errorf("%w: VAULT_ADDR is not set", secretsDomain.ErrConfig)
	}

	client, err := vault.NewClient(vault.Config{
		Address:          c.config.VaultAddr,
		Token:            c.config.VaultToken,
		Namespace:        c.config.VaultNamespace,
		Timeout:          c.config.VaultTimeout,
		SkipVerify:       c.config.VaultSkipVerify,
		RoleID:           c.config.VaultRoleID,
		SecretID:         c.config.VaultSecretID,
		K8sRole:          c.config.VaultK8sRole,
		K8sJWTPath:       c.config.VaultK8sJWTPath,
		RetryMaxAttempts: c.config.VaultRetryMaxAttempts,
	}, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	return client, nil
}

// initS3Source creates the S3 source with the envelope, the cache and the master key store.
func (c *Container) initS3Source() (*secretsSource.S3Source, error) {
	repo, err := c.S3Repository()
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 repository for s3 source: %w", err)
	}

	secretCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for s3 source: %w", err)
	}

	return secretsSource.NewS3Source(repo, c.Envelope(), secretCache, c.MasterKeyStore(), c.Logger()), nil
}

// initSources assembles the source map. Unconfigured backends are left out; descriptors that
// need them fail as unavailable at resolution time, so a declared fallback still runs.
func (c *Container) initSources() (map[secretsDomain.Source]secretsUseCase.Source, error) {
	sources := map[secretsDomain.Source]secretsUseCase.Source{
		secretsDomain.SourceEnv:  secretsSource.NewEnvSource(nil),
		secretsDomain.SourceFile: secretsSource.NewFileSource(),
	}

	if c.config.VaultConfigured() {
		client, err := c.VaultClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get vault client for sources: %w", err)
		}
		sources[secretsDomain.SourceVault] = secretsSource.NewVaultSource(client)
	}

	if c.config.S3Configured() {
		s3Source, err := c.S3Source()
		if err != nil {
			return nil, fmt.Errorf("failed to get s3 source for sources: %w", err)
		}
		sources[secretsDomain.SourceS3] = s3Source
	}

	if c.config.MetricsEnabled {
		sourceMetrics, err := c.SourceMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get source metrics: %w", err)
		}
		for kind, source := range sources {
			sources[kind] = secretsUseCase.NewSourceWithMetrics(kind, source, sourceMetrics)
		}
	}

	return sources, nil
}

// initResolverUseCase creates the resolver use case.
func (c *Container) initResolverUseCase() (secretsUseCase.ResolverUseCase, error) {
	sources, err := c.Sources()
	if err != nil {
		return nil, fmt.Errorf("failed to get sources for resolver use case: %w", err)
	}

	baseUseCase := secretsUseCase.NewResolverUseCase(sources, secretsUseCase.ResolverConfig{
		Timeout:     c.config.ResolveTimeout,
		Concurrency: c.config.ResolveConcurrency,
		RateLimit:   c.config.ResolveRateLimitPerSec,
		RateBurst:   c.config.ResolveRateLimitBurst,
	}, c.Logger())

	if c.config.MetricsEnabled {
		operationMetrics, err := c.OperationMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get operation metrics for resolver use case: %w", err)
		}
		return secretsUseCase.NewResolverUseCaseWithMetrics(baseUseCase, operationMetrics), nil
	}

	return baseUseCase, nil
}

// initStoreUseCase creates the store use case.
func (c *Container) initStoreUseCase() (secretsUseCase.StoreUseCase, error) {
	repo, err := c.S3Repository()
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 repository for store use case: %w", err)
	}

	secretCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for store use case: %w", err)
	}

	fetcher, err := c.S3Source()
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 source for store use case: %w", err)
	}

	baseUseCase := secretsUseCase.NewStoreUseCase(
		repo,
		c.Envelope(),
		secretCache,
		c.MasterKeyStore(),
		fetcher,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		operationMetrics, err := c.OperationMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get operation metrics for store use case: %w", err)
		}
		return secretsUseCase.NewStoreUseCaseWithMetrics(baseUseCase, operationMetrics), nil
	}

	return baseUseCase, nil
}

// initRotationUseCase creates the rotation use case. The advisory lock lives in the cache directory.
func (c *Container) initRotationUseCase() (secretsUseCase.RotationUseCase, error) {
	repo, err := c.S3Repository()
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 repository for rotation use case: %w", err)
	}

	secretCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for rotation use case: %w", err)
	}

	lockDir, err := c.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve lock directory for rotation use case: %w", err)
	}

	baseUseCase := secretsUseCase.NewRotationUseCase(repo, c.Envelope(), secretCache, lockDir, c.Logger())

	if c.config.MetricsEnabled {
		operationMetrics, err := c.OperationMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get operation metrics for rotation use case: %w", err)
		}
		return secretsUseCase.NewRotationUseCaseWithMetrics(baseUseCase, operationMetrics), nil
	}

	return baseUseCase, nil
}
