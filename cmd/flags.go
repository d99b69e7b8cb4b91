/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are package-level variables bound to the root command.
// Values fall back to the environment and then to config, so a script can
// force JSON with CACHEDIR_OUTPUT without touching config files.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jpl-au/cachedir/internal/config"
	"github.com/spf13/cobra"
)

// EnvOutput overrides output.format when -o is not given.
const EnvOutput = "CACHEDIR_OUTPUT"

var (
	output string
	author string
)

// out is the output writer for results. Defaults to os.Stdout.
// errOut receives diagnostics and the is-tagged message. Defaults to os.Stderr.
// Tests can replace both to capture output.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

// settings returns the loaded config. A broken config file is reported once
// and defaults are used: checks must not fail because of presentation
// settings.
func settings() *config.Config {
	cfgOnce.Do(func() {
		c, err := config.Load()
		if err != nil {
			fmt.Fprintf(errOut, "warning: %v\n", err)
			c = &config.Config{}
		}
		cfg = c
	})
	return cfg
}

// Exported accessors for extensions.

// Out returns the output writer.
func Out() io.Writer { return out }

// ErrOut returns the diagnostic writer.
func ErrOut() io.Writer { return errOut }

// Author returns the author flag value, or the configured author.name.
func Author() string { return author }

// Output returns the resolved output format.
// Priority: --output flag > CACHEDIR_OUTPUT env var > output.format config > text.
func Output() string {
	if output != "" {
		return output
	}
	if v := os.Getenv(EnvOutput); v != "" {
		return v
	}
	return settings().OutputFormat()
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetErrOut sets the diagnostic writer (for testing).
func SetErrOut(w io.Writer) { errOut = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return Output() == config.FormatJSON }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns an already-reported ExitFailure if the error was printed, or the
// original error if not.
func PrintJSONError(err error) error {
	if !JSON() || err == nil {
		return err
	}
	if jsonErr := PrintJSON(map[string]string{"error": err.Error()}); jsonErr != nil {
		return err
	}
	return Exit(ExitFailure)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: text, json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Name recorded in the audit log")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.ValidFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
