package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/fmm"
	"github.com/elombardi2/DGtal/space"
)

func newDistanceCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance [grid]",
		Short: "Print the distance of every shape point to the background",
		Long:  "Print the fast marching distance of every shape point to the nearest background point.\nCells outside the grid count as background.",
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
			return writeDistance(cmd.OutOrStdout(), set, cfg)
		},
	}
	def := DefaultConfig()
	cmd.Flags().String("inside", def.Inside, "grid characters read as shape points")
	cmd.Flags().Float64("max-distance", def.MaxDistance, "stop the front beyond this distance")

	return cmd
}

// writeDistance marches from the background points touching the shape and
// prints one row per grid line: the distance of each shape point, "." for
// background and "-" for shape points beyond max-distance. Cells around the
// grid count as background.
func writeDistance(w io.Writer, set *domain.DigitalSet, cfg Config) error {
	d := set.Domain()
	one := space.Diagonal(d.Dimension(), 1)
	framed, err := domain.New(d.Lower().Sub(one), d.Upper().Add(one))
	if err != nil {
		return err
	}
	seeds := make(map[space.Point]float64)
	for p := range framed.All() {
		if set.Contains(p) {
			continue
		}
		for k := 0; k < 2; k++ {
			if set.Contains(p.Shift(k, 1)) || set.Contains(p.Shift(k, -1)) {
				seeds[p] = 0
			}
		}
	}
	if len(seeds) == 0 {
		log.Warning("the grid holds no shape point")
		return nil
	}

	dist, err := fmm.Compute(framed, seeds, set, fmm.WithMaxDistance(cfg.MaxDistance))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	lo, hi := d.Lower(), d.Upper()
	for y := lo.At(1); y <= hi.At(1); y++ {
		for x := lo.At(0); x <= hi.At(0); x++ {
			if x > lo.At(0) {
				bw.WriteByte(' ')
			}
			p := space.MustPoint(x, y)
			v, reached := dist[p]
			switch {
			case !set.Contains(p):
				fmt.Fprintf(bw, "%5s", ".")
			case !reached:
				fmt.Fprintf(bw, "%5s", "-")
			default:
				fmt.Fprintf(bw, "%5.2f", v)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
