package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elombardi2/DGtal/boundary"
	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/freeman"
	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

func newContoursCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contours [grid]",
		Short: "Print every closed contour of the shape, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.settings(cmd)
			if err != nil {
				return err
			}
			in, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			set, err := readGrid(in, cfg.Inside)
			if err != nil {
				return err
			}
			return writeContours(cmd.OutOrStdout(), set, cfg)
		},
	}
	def := DefaultConfig()
	cmd.Flags().String("format", def.Format, "output: surfels, pointels, inner or freeman")
	cmd.Flags().String("adjacency", def.Adjacency, "surfel adjacency: interior or exterior")
	cmd.Flags().String("inside", def.Inside, "grid characters read as shape points")

	return cmd
}

// writeContours prints the contours of set in cfg.Format.
func writeContours(w io.Writer, set *domain.DigitalSet, cfg Config) error {
	d := set.Domain()
	ks, err := kspace.New(d.Lower(), d.Upper())
	if err != nil {
		return err
	}
	adj := kspace.NewSurfelAdjacency(2, cfg.Adjacency == "interior")

	var lines []string
	switch cfg.Format {
	case FormatSurfels:
		contours, err := boundary.ExtractAll2DSCellContours(ks, adj, set)
		if err != nil {
			return err
		}
		for _, c := range contours {
			lines = append(lines, joinCells(c))
		}
	case FormatPointels, FormatFreeman:
		contours, err := boundary.ExtractAllPointContours4C(ks, adj, set)
		if err != nil {
			return err
		}
		for _, c := range contours {
			if cfg.Format == FormatPointels {
				lines = append(lines, joinPoints(c))
				continue
			}
			chain, err := freeman.FromPoints(c)
			if err != nil {
				return err
			}
			lines = append(lines, chain.String())
		}
	case FormatInner:
		contours, err := boundary.ExtractAllInnerContours(ks, adj, set)
		if err != nil {
			return err
		}
		for _, c := range contours {
			lines = append(lines, joinPoints(c))
		}
	default:
		return fmt.Errorf("%w: format %q", errBadConfig, cfg.Format)
	}
	if len(lines) == 0 {
		log.Warning("no contour: the shape is empty or fills no cell")
	}
	for _, l := range lines {
		if _, err = fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}

func joinCells(cells []kspace.SCell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func joinPoints(pts []space.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
