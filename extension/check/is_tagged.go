// is_tagged.go implements the "cachedir is-tagged" command.
//
// The human-readable line goes to stderr so stdout stays empty for scripts
// that only look at the exit code.

package check

import (
	"fmt"

	"github.com/jpl-au/cachedir/cmd"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/jpl-au/cachedir/tag"
	"github.com/spf13/cobra"
)

func newIsTaggedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-tagged DIRECTORY",
		Short: "Check if the directory is tagged or not",
		Long: `Check whether DIRECTORY contains a CACHEDIR.TAG file starting with the
cache directory signature.

  cachedir is-tagged target     # exit 0: tagged
  cachedir is-tagged .          # exit 1: not tagged
  cachedir is-tagged missing    # exit 2: error`,
		Args: cobra.ExactArgs(1),
		RunE: runIsTagged,
	}
}

func runIsTagged(_ *cobra.Command, args []string) error {
	dir := args[0]
	r := tag.Check(dir)

	l := log.Event("check:is-tagged", "check").Author(cmd.Author()).Path(dir)
	if r.Err != nil {
		l.Detail("kind", r.Err.Kind.String()).Write(r.Err)
	} else {
		l.Result(r.Outcome.String()).Write(nil)
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(resultReport(dir, r)); err != nil {
			return err
		}
		return exit(outcomeCode(r.Outcome))
	}

	fmt.Fprintln(cmd.ErrOut(), message(dir, r))
	return exit(outcomeCode(r.Outcome))
}

// message returns the line printed for a check result.
func message(dir string, r tag.Result) string {
	switch r.Outcome {
	case tag.Tagged:
		return fmt.Sprintf("%s is tagged with %s", dir, tag.Filename)
	case tag.NotTagged:
		return fmt.Sprintf("%s is not tagged with %s", dir, tag.Filename)
	default:
		return r.Err.Error()
	}
}
