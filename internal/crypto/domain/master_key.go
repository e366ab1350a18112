package domain

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"filippo.io/age"
)

const secretKeyPrefix = "AGE-SECRET-KEY-1"

// MasterKey is an age X25519 keypair used only to wrap and unwrap DEKs.
//
// The private half (identity) unwraps DEKs of records listing the public half
// (recipient). Master keys are generated by keygen and rotated, never silently
// regenerated. String never exposes the private key.
type MasterKey struct {
	identity *age.X25519Identity
}

// GenerateMasterKey creates a new random X25519 master key.
func GenerateMasterKey() (*MasterKey, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("failed to generate master key: %w", err)
	}
	return &MasterKey{identity: identity}, nil
}

// ParseMasterKey parses a bare AGE-SECRET-KEY-1 string or an age identity file.
// Blank lines and lines starting with '#' are ignored; the first key line wins.
func ParseMasterKey(raw string) (*MasterKey, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, secretKeyPrefix) {
			return nil, fmt.Errorf("%w: unexpected line in identity", ErrInvalidMasterKey)
		}
		identity, err := age.ParseX25519Identity(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMasterKey, err)
		}
		return &MasterKey{identity: identity}, nil
	}
	return nil, fmt.Errorf("%w: no secret key found", ErrInvalidMasterKey)
}

// ParseRecipient parses an age1... public key.
func ParseRecipient(publicKey string) (*age.X25519Recipient, error) {
	recipient, err := age.ParseX25519Recipient(strings.TrimSpace(publicKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	return recipient, nil
}

// Identity returns the private identity used to unwrap DEKs.
func (m *MasterKey) Identity() age.Identity {
	return m.identity
}

// Recipient returns the public recipient used to wrap DEKs.
func (m *MasterKey) Recipient() *age.X25519Recipient {
	return m.identity.Recipient()
}

// PublicKey returns the age1... encoding of the recipient.
func (m *MasterKey) PublicKey() string {
	return m.identity.Recipient().String()
}

// SecretKey returns the AGE-SECRET-KEY-1... encoding of the identity.
func (m *MasterKey) SecretKey() string {
	return m.identity.String()
}

// Encode renders the key in age identity file format.
func (m *MasterKey) Encode(createdAt time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# created: %s\n", createdAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "# public key: %s\n", m.PublicKey())
	b.WriteString(m.SecretKey())
	b.WriteString("\n")
	return []byte(b.String())
}

// String returns a description containing only the public key.
func (m *MasterKey) String() string {
	return fmt.Sprintf("MasterKey(%s)", m.PublicKey())
}
