package domain

// Algorithm represents the AEAD used to encrypt secret values.
//
// Secret values are always encrypted with an authenticated cipher so that any
// modification of the stored ciphertext, nonce or tag is detected on decrypt.
type Algorithm string

const (
	// ChaCha20Poly1305 is the only value cipher written to new records.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20Poly1305 Algorithm = "chacha20poly1305"
)

// KeyDerivation identifies how the per-secret DEK is wrapped for recipients.
type KeyDerivation string

const (
	// AgeX25519 wraps the DEK with age using X25519 recipients.
	AgeX25519 KeyDerivation = "age-x25519"
)

const (
	// RecordVersion is the wire format version of EncryptedSecretRecord.
	RecordVersion = "1.0"

	// DEKSize is the size in bytes of a data encryption key.
	DEKSize = 32

	// NonceSize is the size in bytes of a ChaCha20-Poly1305 nonce.
	NonceSize = 12

	// TagSize is the size in bytes of a Poly1305 authentication tag.
	TagSize = 16
)
