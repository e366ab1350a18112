package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindri-dev/secrets/internal/manifest"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

type validationJSON struct {
	Name         string `json:"name"`
	Source       string `json:"source"`
	Required     bool   `json:"required"`
	OK           bool   `json:"ok"`
	ResolvedFrom string `json:"resolved_from,omitempty"`
	Error        string `json:"error,omitempty"`
}

// RunValidate resolves every manifest secret without keeping any value and reports the
// outcome per secret. Required failures always fail the command; strict mode fails on
// optional ones too.
func RunValidate(
	ctx context.Context,
	resolver secretsUseCase.ResolverUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	m *manifest.Manifest,
	rctx secretsDomain.ResolutionContext,
	strict bool,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	if len(m.Secrets) == 0 {
		_, _ = fmt.Fprintln(tuple.Writer, "No secrets configured")
		return nil
	}

	rctx.AllowOptionalFailures = !strict
	report, validateErr := resolver.Validate(ctx, m.Secrets, rctx)
	if report == nil {
		if validateErr == nil {
			validateErr = fmt.Errorf("resolver returned no report")
		}
		return fmt.Errorf("failed to validate secrets: %w", validateErr)
	}

	if format == FormatJSON {
		entries := make([]validationJSON, 0, len(report.Entries))
		for _, entry := range report.Entries {
			entries = append(entries, validationJSON{
				Name:         entry.Name,
				Source:       string(entry.Source),
				Required:     entry.Required,
				OK:           entry.OK,
				ResolvedFrom: string(entry.ResolvedFrom),
				Error:        entry.Error,
			})
		}
		if err := writeJSON(tuple.Writer, entries); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(tuple.Writer, "Validating %d secret(s)\n", len(report.Entries))
		for _, entry := range report.Entries {
			if entry.OK {
				_, _ = fmt.Fprintf(tuple.Writer, "  ok      %s (%s)\n", entry.Name, entry.ResolvedFrom)
				continue
			}
			label := "missing"
			if entry.Required {
				label = "FAILED "
			}
			_, _ = fmt.Fprintf(tuple.Writer, "  %s %s: %s\n", label, entry.Name, entry.Error)
		}
	}

	failed := report.Failed()
	logger.Info("validation finished",
		slog.Int("secrets", len(report.Entries)),
		slog.Int("failed", len(failed)),
	)

	if validateErr != nil {
		return fmt.Errorf("secret validation failed: %d of %d secret(s) unresolved: %w",
			len(failed), len(report.Entries), validateErr)
	}
	if !report.Passed() || (strict && len(failed) > 0) {
		return fmt.Errorf("secret validation failed: %d of %d secret(s) unresolved", len(failed), len(report.Entries))
	}
	if format == FormatText {
		_, _ = fmt.Fprintln(tuple.Writer, "All required secrets resolved")
	}
	return nil
}
