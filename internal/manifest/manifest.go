// Package manifest loads secret descriptors from the project YAML manifest.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// DefaultFile is the manifest looked up in the config directory.
const DefaultFile = "sindri.yaml"

// Manifest is the parsed secrets section of a project manifest.
type Manifest struct {
	Secrets []secretsDomain.SecretDescriptor
}

// document is the top-level shape. Keys other than secrets belong to other tools.
type document struct {
	Secrets []yaml.Node `yaml:"secrets"`
}

// secretEntry mirrors one list item. Defaults are applied by the descriptor.
type secretEntry struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	Required    bool   `yaml:"required"`
	Fallback    string `yaml:"fallback"`
	FromFile    string `yaml:"fromFile"`
	Path        string `yaml:"path"`
	MountPath   string `yaml:"mountPath"`
	Permissions string `yaml:"permissions"`
	VaultPath   string `yaml:"vaultPath"`
	VaultKey    string `yaml:"vaultKey"`
	VaultMount  string `yaml:"vaultMount"`
	S3Path      string `yaml:"s3Path"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	//nolint:gosec // manifest path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: manifest %s not found", secretsDomain.ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: failed to read manifest %s: %v", secretsDomain.ErrConfig, path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. Every secret is validated; names must be unique.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{Secrets: []secretsDomain.SecretDescriptor{}}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid manifest: %v", secretsDomain.ErrConfig, err)
	}

	for i := range doc.Secrets {
		descriptor, err := decodeSecret(&doc.Secrets[i])
		if err != nil {
			return nil, fmt.Errorf("%w: secrets[%d] (line %d): %v",
				secretsDomain.ErrConfig, i, doc.Secrets[i].Line, err)
		}
		m.Secrets = append(m.Secrets, descriptor)
	}

	if err := secretsDomain.ValidateUniqueNames(m.Secrets); err != nil {
		return nil, err
	}
	return m, nil
}

// Filter returns the descriptors resolved from source.
func (m *Manifest) Filter(source secretsDomain.Source) []secretsDomain.SecretDescriptor {
	filtered := []secretsDomain.SecretDescriptor{}
	for _, descriptor := range m.Secrets {
		if descriptor.Source == source {
			filtered = append(filtered, descriptor)
		}
	}
	return filtered
}

func decodeSecret(node *yaml.Node) (secretsDomain.SecretDescriptor, error) {
	if node.Kind != yaml.MappingNode {
		return secretsDomain.SecretDescriptor{}, errors.New("expected a mapping")
	}
	if err := checkKnownFields(node); err != nil {
		return secretsDomain.SecretDescriptor{}, err
	}

	var entry secretEntry
	if err := node.Decode(&entry); err != nil {
		return secretsDomain.SecretDescriptor{}, err
	}

	source, err := secretsDomain.ParseSource(entry.Source)
	if err != nil {
		return secretsDomain.SecretDescriptor{}, err
	}

	descriptor := secretsDomain.SecretDescriptor{
		Name:        entry.Name,
		Source:      source,
		Required:    entry.Required,
		FromFile:    entry.FromFile,
		Path:        entry.Path,
		MountPath:   entry.MountPath,
		Permissions: entry.Permissions,
		VaultPath:   entry.VaultPath,
		VaultKey:    entry.VaultKey,
		VaultMount:  entry.VaultMount,
		S3Path:      entry.S3Path,
	}
	if entry.Fallback != "" {
		fallback, err := secretsDomain.ParseSource(entry.Fallback)
		if err != nil {
			return secretsDomain.SecretDescriptor{}, err
		}
		descriptor.Fallback = &fallback
	}

	descriptor = descriptor.WithDefaults()
	if err := descriptor.Validate(); err != nil {
		return secretsDomain.SecretDescriptor{}, err
	}
	return descriptor, nil
}

var knownFields = map[string]struct{}{
	"name": {}, "source": {}, "required": {}, "fallback": {}, "fromFile": {},
	"path": {}, "mountPath": {}, "permissions": {},
	"vaultPath": {}, "vaultKey": {}, "vaultMount": {}, "s3Path": {},
}

// checkKnownFields rejects keys the descriptor does not declare, as
// yaml.Decoder.KnownFields does for whole documents.
func checkKnownFields(node *yaml.Node) error {
	var unknown []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, ok := knownFields[key]; !ok {
			unknown = append(unknown, fmt.Sprintf("%q (line %d)", key, node.Content[i].Line))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unknown keys %s", strings.Join(unknown, ", "))
}
