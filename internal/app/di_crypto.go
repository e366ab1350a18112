package app

import (
	"context"
	"fmt"
	"time"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = c.initKMSService()
	})
	return c.kmsService
}

// MasterKeyStore returns the master key store configured for env, keyring and file lookup.
func (c *Container) MasterKeyStore() cryptoService.MasterKeyStore {
	c.masterKeyStoreInit.Do(func() {
		c.masterKeyStore = c.initMasterKeyStore()
	})
	return c.masterKeyStore
}

// Envelope returns the envelope encryption service.
func (c *Container) Envelope() cryptoService.EnvelopeService {
	c.envelopeInit.Do(func() {
		c.envelope = c.initEnvelope()
	})
	return c.envelope
}

// LoadMasterKey loads the active master key through the master key store.
func (c *Container) LoadMasterKey(ctx context.Context) (*cryptoDomain.MasterKey, error) {
	key, err := c.MasterKeyStore().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load master key: %w", err)
	}
	return key, nil
}

// initKMSService creates the KMS service for sealing and unsealing master key files.
func (c *Container) initKMSService() cryptoService.KMSService {
	return cryptoService.NewKMSService()
}

// initMasterKeyStore creates the master key store using the KMS service.
func (c *Container) initMasterKeyStore() cryptoService.MasterKeyStore {
	return cryptoService.NewMasterKeyStore(
		cryptoService.MasterKeyStoreConfig{
			KeyFile:    c.config.MasterKeyFile,
			UseKeyring: c.config.MasterKeyKeyring,
			KMSKeyURI:  c.config.MasterKeyKMSURI,
		},
		c.KMSService(),
		c.Logger(),
	)
}

// initEnvelope creates the envelope service with age key wrapping.
func (c *Container) initEnvelope() cryptoService.EnvelopeService {
	return cryptoService.NewEnvelopeService(cryptoService.NewAgeKeyWrapper(), time.Now)
}
