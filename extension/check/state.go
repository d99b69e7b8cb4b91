// state.go implements the "cachedir state" command.
//
// Unlike is-tagged it separates a missing tag file from one with the wrong
// content, and --explain shows where a wrong header diverges.

package check

import (
	"fmt"

	"github.com/jpl-au/cachedir/cmd"
	"github.com/jpl-au/cachedir/extension"
	"github.com/jpl-au/cachedir/internal/explain"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/jpl-au/cachedir/tag"
	"github.com/spf13/cobra"
)

func newStateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "state DIRECTORY",
		Short: "Show the CACHEDIR.TAG state of a directory",
		Long: `Print the tag state of DIRECTORY:

  present       CACHEDIR.TAG starts with the signature
  absent        no CACHEDIR.TAG file
  wrong-header  CACHEDIR.TAG exists but does not start with the signature

Exit codes match is-tagged. Use --explain to diff a wrong header against
the signature.`,
		Args: cobra.ExactArgs(1),
		RunE: runState,
	}
	c.Flags().BoolP(extension.FlagExplain, "e", false, "Show how the header differs from the signature")
	return c
}

func runState(c *cobra.Command, args []string) error {
	dir := args[0]
	withExplain, _ := c.Flags().GetBool(extension.FlagExplain)

	r, err := tag.Inspect(dir)

	l := log.Event("check:state", "inspect").Author(cmd.Author()).Path(dir)
	if err != nil {
		l.Write(err)
	} else {
		l.Result(r.State.String()).Write(nil)
	}

	code := stateCode(r, err)

	if cmd.JSON() {
		if jsonErr := cmd.PrintJSON(stateReport(dir, r, err, withExplain)); jsonErr != nil {
			return jsonErr
		}
		return exit(code)
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOut(), err)
		return exit(code)
	}

	fmt.Fprintln(cmd.Out(), r.State)
	if withExplain && r.State != tag.Absent {
		text := explain.Header(r.Header).String()
		if cmd.Terminal() {
			text = explain.Colourise(text)
		}
		fmt.Fprint(cmd.Out(), text)
	}
	return exit(code)
}

// stateCode maps an inspection to the process exit code.
func stateCode(r tag.Report, err error) int {
	switch {
	case err != nil:
		return cmd.ExitFailure
	case r.Tagged():
		return cmd.ExitTagged
	default:
		return cmd.ExitNotTagged
	}
}
