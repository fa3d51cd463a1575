package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

var (
	errEmptyGrid  = errors.New("dgtrack: empty grid")
	errRaggedGrid = errors.New("dgtrack: grid rows differ in length")
)

// readGrid parses a text grid into a set over [0,W-1]x[0,H-1]. Trailing
// blank lines are ignored.
func readGrid(r io.Reader, inside string) (*domain.DigitalSet, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dgtrack: read grid: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errEmptyGrid
	}

	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", errRaggedGrid, i, len(row), w)
		}
	}
	d, err := domain.New(space.MustPoint(0, 0), space.MustPoint(w-1, len(rows)-1))
	if err != nil {
		return nil, err
	}
	set := domain.NewDigitalSet(d)
	for y, row := range rows {
		for x := 0; x < w; x++ {
			if strings.IndexByte(inside, row[x]) >= 0 {
				if err = set.Insert(space.MustPoint(x, y)); err != nil {
					return nil, err
				}
			}
		}
	}
	log.Debugf("grid %dx%d, %d inside points", w, len(rows), set.Size())

	return set, nil
}

// openInput returns the named file, or in for no argument or "-".
func openInput(args []string, in io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(in), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("dgtrack: %w", err)
	}
	return f, nil
}
