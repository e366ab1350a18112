package commands

import (
	"fmt"

	"github.com/sindri-dev/secrets/internal/manifest"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

type descriptorJSON struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Required bool   `json:"required"`
	Fallback string `json:"fallback,omitempty"`
	Location string `json:"location,omitempty"`
}

// RunManifest prints the secrets declared in a manifest, optionally only those of one source.
func RunManifest(tuple IOTuple, m *manifest.Manifest, source string, format string) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	descriptors := m.Secrets
	if source != "" {
		kind, err := secretsDomain.ParseSource(source)
		if err != nil {
			return err
		}
		descriptors = m.Filter(kind)
	}

	if format == FormatJSON {
		out := make([]descriptorJSON, 0, len(descriptors))
		for _, d := range descriptors {
			entry := descriptorJSON{
				Name:     d.Name,
				Source:   string(d.Source),
				Required: d.Required,
				Location: location(d),
			}
			if d.Fallback != nil {
				entry.Fallback = string(*d.Fallback)
			}
			out = append(out, entry)
		}
		return writeJSON(tuple.Writer, out)
	}

	if len(descriptors) == 0 {
		_, _ = fmt.Fprintln(tuple.Writer, "No secrets configured")
		return nil
	}

	_, _ = fmt.Fprintf(tuple.Writer, "Configured secrets (%d total)\n", len(descriptors))
	for _, d := range descriptors {
		required := "optional"
		if d.Required {
			required = "required"
		}
		line := fmt.Sprintf("  %-24s %-6s %s", d.Name, d.Source, required)
		if loc := location(d); loc != "" {
			line += "  " + loc
		}
		if d.Fallback != nil {
			line += fmt.Sprintf("  (fallback: %s)", *d.Fallback)
		}
		_, _ = fmt.Fprintln(tuple.Writer, line)
	}
	return nil
}

// location describes where a descriptor's value lives, without any value.
func location(d secretsDomain.SecretDescriptor) string {
	switch d.Source {
	case secretsDomain.SourceFile:
		return fmt.Sprintf("%s -> %s", d.Path, d.MountPath)
	case secretsDomain.SourceVault:
		return fmt.Sprintf("%s/%s#%s", d.VaultMount, d.VaultPath, d.VaultKey)
	case secretsDomain.SourceS3:
		return d.S3Path
	case secretsDomain.SourceEnv:
		if d.FromFile != "" {
			return "from " + d.FromFile
		}
	}
	return ""
}
