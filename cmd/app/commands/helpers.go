// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sindri-dev/secrets/internal/app"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
	// ErrWriter receives warnings that must not mix with command output.
	ErrWriter io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin, os.Stdout and os.Stderr.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container) {
	if err := container.Shutdown(context.Background()); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}

// parseFormat validates the --format flag value.
func parseFormat(format string) (string, error) {
	switch format {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}

// confirm asks a yes/no question on the tuple's writer and reads the answer.
// Anything other than y or yes is a refusal.
func confirm(tuple IOTuple, prompt string) bool {
	_, _ = fmt.Fprintf(tuple.Writer, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(tuple.Reader)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// secretPath returns the S3 path for a secret, defaulting to its name.
func secretPath(name, s3Path string) string {
	if s3Path != "" {
		return s3Path
	}
	return name
}

// errWriter returns the tuple's error writer, falling back to its writer.
func (t IOTuple) errWriter() io.Writer {
	if t.ErrWriter != nil {
		return t.ErrWriter
	}
	return t.Writer
}
