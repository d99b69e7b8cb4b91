/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag state.
//
// Design: cobra's own error printing is silenced. Commands either report
// their outcome themselves and return an *ExitError carrying the code, or
// return a plain error which Execute prints once and maps to ExitFailure.
// This keeps exit codes 0/1/2 meaningful for scripts.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/cachedir/internal/config"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cachedir",
	Short: "Check directories for CACHEDIR.TAG cache markers",
	Long: `Check whether a directory is tagged as a cache directory with a CACHEDIR.TAG file
(Cache Directory Tagging Specification, https://bford.info/cachedir/).

Exit codes for is-tagged and state:
  0  the directory is tagged
  1  the directory is not tagged
  2  the check failed (missing directory, permission denied, I/O error, bad usage)`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if f := Output(); !slices.Contains(config.ValidFormats, f) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", f, config.ValidFormats)
		}

		// Detect author if not explicitly set
		if author == "" {
			author = settings().Author.Name
		}
		return nil
	},
}

// Execute runs the root command and exits the process with the code the
// command produced.
func Execute() {
	registerExtensions()

	if settings().LogEnabled() {
		// Audit logging is best-effort.
		if err := log.Open(); err != nil {
			fmt.Fprintf(errOut, "warning: audit log unavailable: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	report(err)

	log.Close()
	os.Exit(Code(err))
}

// report prints err unless the command already reported its outcome.
func report(err error) {
	if err == nil || Reported(err) {
		return
	}
	if JSON() {
		if jsonErr := PrintJSON(map[string]string{"error": err.Error()}); jsonErr == nil {
			return
		}
	}
	fmt.Fprintf(errOut, "Error: %v\nRun '%s --help' for usage.\n", err, rootCmd.Name())
}
