package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elombardi2/DGtal/freeman"
	"github.com/elombardi2/DGtal/space"
)

// block is a 3x3 square inside a 7x7 grid.
const block = `.......
.......
..###..
..###..
..###..
.......
.......
`

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestReadGrid(t *testing.T) {
	set, err := readGrid(strings.NewReader("#.\n.1\n\n"), "#1")
	require.NoError(t, err)
	assert.Equal(t, space.MustPoint(1, 1), set.Domain().Upper())
	assert.Equal(t, []space.Point{space.MustPoint(0, 0), space.MustPoint(1, 1)}, set.Points())

	_, err = readGrid(strings.NewReader("##\n#\n"), "#")
	assert.ErrorIs(t, err, errRaggedGrid)
	_, err = readGrid(strings.NewReader("\n\n"), "#")
	assert.ErrorIs(t, err, errEmptyGrid)
}

func TestContours_Block(t *testing.T) {
	out, err := run(t, block, "contours")
	require.NoError(t, err)
	require.Len(t, lines(out), 1)
	assert.Len(t, strings.Fields(out), 12)

	out, err = run(t, block, "contours", "--format", "inner")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 8)

	out, err = run(t, block, "contours", "--format", "pointels")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 12)

	out, err = run(t, block, "contours", "--format", "freeman")
	require.NoError(t, err)
	chain, err := freeman.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, 12, chain.Len())
	assert.True(t, chain.IsClosed())
	assert.Equal(t, 9, abs(chain.Area()))
}

// TestContours_Adjacency uses two diagonal pixels: one contour of 8 linels
// under interior adjacency, two of 4 under exterior adjacency.
func TestContours_Adjacency(t *testing.T) {
	grid := "....\n.#..\n..#.\n....\n"

	out, err := run(t, grid, "contours", "--adjacency", "interior")
	require.NoError(t, err)
	require.Len(t, lines(out), 1)
	assert.Len(t, strings.Fields(out), 8)

	out, err = run(t, grid, "contours", "--adjacency", "exterior")
	require.NoError(t, err)
	require.Len(t, lines(out), 2)
	for _, l := range lines(out) {
		assert.Len(t, strings.Fields(l), 4)
	}
}

func TestContours_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dgtrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: inner\ninside: \"x\"\n"), 0o644))

	grid := strings.ReplaceAll(block, "#", "x")
	out, err := run(t, grid, "contours", "-f", path)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 8)

	out, err = run(t, grid, "contours", "-f", path, "--format", "pointels")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 12, "flags override the file")

	gridPath := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(gridPath, []byte(block), 0o644))
	out, err = run(t, "", "contours", gridPath)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 12)
}

func TestContours_Errors(t *testing.T) {
	_, err := run(t, block, "contours", "--format", "svg")
	assert.ErrorIs(t, err, errBadConfig)

	_, err = run(t, block, "contours", "--adjacency", "diagonal")
	assert.ErrorIs(t, err, errBadConfig)

	_, err = run(t, block, "contours", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [\n"), 0o644))
	_, err = run(t, block, "contours", "-f", path)
	assert.ErrorIs(t, err, errBadConfig)

	out, err := run(t, ".....\n.....\n", "contours")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDistance(t *testing.T) {
	grid := ".....\n.###.\n.###.\n.###.\n.....\n"
	out, err := run(t, grid, "distance")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{".", ".", ".", ".", "."}, strings.Fields(rows[0]))

	values := map[[2]int]float64{}
	for y := 1; y <= 3; y++ {
		fields := strings.Fields(rows[y])
		require.Len(t, fields, 5)
		for x := 1; x <= 3; x++ {
			v, err := strconv.ParseFloat(fields[x], 64)
			require.NoError(t, err)
			values[[2]int{x, y}] = v
		}
	}
	assert.InDelta(t, math.Sqrt2/2, values[[2]int{1, 1}], 0.01)
	for p, v := range values {
		if p != [2]int{2, 2} {
			assert.Less(t, v, values[[2]int{2, 2}], "center is the farthest point, got %v at %v", v, p)
		}
	}

	out, err = run(t, grid, "distance", "--max-distance", "0.8")
	require.NoError(t, err)
	assert.Equal(t, []string{".", "0.71", "-", "0.71", "."}, strings.Fields(lines(out)[1]))
}

func TestDistance_FullGrid(t *testing.T) {
	out, err := run(t, "###\n###\n###\n", "distance")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 3)

	grid := make([][]float64, 3)
	for y, row := range rows {
		fields := strings.Fields(row)
		require.Len(t, fields, 3)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err, "every cell is measured, got %q", f)
			grid[y] = append(grid[y], v)
		}
	}
	center := grid[1][1]
	assert.InDelta(t, math.Sqrt2/2, grid[0][0], 0.01)
	assert.InDelta(t, math.Sqrt2/2, grid[2][2], 0.01)
	for y := range grid {
		for x, v := range grid[y] {
			if x != 1 || y != 1 {
				assert.Less(t, v, center, "(%d,%d)", x, y)
			}
		}
	}
}

func TestSettings_FlagErrors(t *testing.T) {
	cmd := &cobra.Command{Use: "typed"}
	cmd.Flags().Int("format", 0, "")
	require.NoError(t, cmd.Flags().Set("format", "3"))

	_, err := (&globalFlags{}).settings(cmd)
	assert.ErrorContains(t, err, "--format")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Format, cfg.Format)
	assert.True(t, math.IsInf(cfg.MaxDistance, 1))
	assert.NoError(t, cfg.Validate())

	cfg.MaxDistance = -1
	assert.ErrorIs(t, cfg.Validate(), errBadConfig)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
