// guide.go implements the "cachedir guide" command for documentation access.
//
// Separated from extension.go to isolate documentation rendering logic
// including terminal detection and glamour markdown formatting.
//
// Design: Guides are embedded in the binary via the guide package. Terminal
// output gets glamour rendering for readability; pipe/redirect gets raw
// markdown.

package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/cachedir/cmd"
	"github.com/jpl-au/cachedir/guide"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the cachedir usage guide",
		Long: `Outputs the cachedir guide.

  cachedir guide            # main guide
  cachedir guide format     # the CACHEDIR.TAG file format
  cachedir guide is-tagged  # checking directories`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Author(cmd.Author()).Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if cmd.Terminal() {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
