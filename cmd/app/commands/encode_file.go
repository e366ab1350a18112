package commands

import (
	"encoding/base64"
	"fmt"
	"os"
)

// RunEncodeFile base64-encodes a file for use as an env secret value. The result goes
// to output when set, otherwise to the writer.
func RunEncodeFile(tuple IOTuple, path, output string, newline bool) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	encoded := base64.StdEncoding.EncodeToString(contents)
	if newline {
		encoded += "\n"
	}

	if output == "" {
		_, _ = fmt.Fprint(tuple.Writer, encoded)
		return nil
	}

	if err := os.WriteFile(output, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	_, _ = fmt.Fprintf(tuple.Writer, "Encoded %d bytes to %s\n", len(contents), output)
	return nil
}
