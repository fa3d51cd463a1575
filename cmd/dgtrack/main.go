// Command dgtrack extracts the boundary of a 2D shape given as a text grid.
//
// Usage:
//
//	dgtrack contours [-f config.yaml] [--format surfels|pointels|inner|freeman] [grid.txt]
//	dgtrack distance [-f config.yaml] [--max-distance d] [grid.txt]
//
// A grid is read from the file argument or stdin: one line per row, row i
// being y = i, column j being x = j. Characters listed in the inside set
// ("#1" by default) are shape points, anything else is background.
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("dgtrack")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "dgtrack",
		Short:        "Digital boundary tracking on text grids",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "f", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newContoursCommand(g), newDistanceCommand(g))

	return root
}

// settings loads the config file, applies the flags set on cmd over it and
// installs the logging backend.
func (g *globalFlags) settings(cmd *cobra.Command) (Config, error) {
	cfg, err := LoadConfig(g.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"format":    &cfg.Format,
		"adjacency": &cfg.Adjacency,
		"inside":    &cfg.Inside,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return cfg, fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	if flags.Changed("max-distance") {
		if cfg.MaxDistance, err = flags.GetFloat64("max-distance"); err != nil {
			return cfg, fmt.Errorf("flag --max-distance: %w", err)
		}
	}
	if g.verbose {
		cfg.Verbose = true
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	initLogging(cmd.ErrOrStderr(), cfg.Verbose)
	log.Debugf("settings: %+v", cfg)

	return cfg, nil
}
