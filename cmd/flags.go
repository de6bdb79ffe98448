/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go holds the persistent flags every lned command accepts and the
// output helpers extensions use to honour them.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// envDir names the environment variable that stands in for --dir.
const envDir = "LNED_DIR"

var validOutputFormats = []string{"json"}

var (
	output string
	dir    string

	// out is where commands write. Tests may swap it with SetOut.
	out io.Writer = os.Stdout
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&output, "output", "o", "", "Output format: json")
	flags.StringVar(&dir, "dir", "", "Run as if started in this directory (or set "+envDir+")")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

// checkOutput rejects an unknown --output value.
func checkOutput() error {
	if output == "" || slices.Contains(validOutputFormats, output) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
}

// Out returns the writer commands print to.
func Out() io.Writer { return out }

// SetOut redirects command output.
func SetOut(w io.Writer) { out = w }

// Output returns the --output value.
func Output() string { return output }

// JSON reports whether --output json was given.
func JSON() bool { return output == "json" }

// Dir returns the directory to run in: --dir, then $LNED_DIR, else "".
func Dir() string {
	if dir != "" {
		return dir
	}
	return os.Getenv(envDir)
}

// PrintJSON writes v as one line of JSON. It does nothing unless JSON
// output was requested, so callers can use it unconditionally.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return nil
}

// PrintJSONError reports err as {"error": ...} in JSON mode and returns nil
// so cobra does not print it again. Otherwise err is returned unchanged.
func PrintJSONError(err error) error {
	if !JSON() || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}
