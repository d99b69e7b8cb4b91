// config.go implements the "cachedir config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.cachedir/config.yaml) takes precedence over global (~/.cachedir/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/cachedir/cmd"
	"github.com/jpl-au/cachedir/extension"
	"github.com/jpl-au/cachedir/internal/config"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  cachedir config                    # show config
  cachedir config output.format      # show output.format value
  cachedir config output.format json # set output.format

Configuration locations:
  Global: ~/.cachedir/config.yaml
  Local:  .cachedir/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.cachedir/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Author(cmd.Author()).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := config.ValidKeys()
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Author(cmd.Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Detail("scope", cfg.Scope().String()).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		v, _ := cfg.Get(args[0])
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v, "scope": cfg.Scope().String()})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], v, cfg.Scope())
	}
	return nil
}
