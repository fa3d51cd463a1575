package freeman

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/elombardi2/DGtal/space"
)

// Sentinel errors for chain construction and parsing.
var (
	// ErrEmpty indicates a chain built from no point.
	ErrEmpty = errors.New("freeman: no point")

	// ErrNotConnected indicates consecutive points that are not 4-adjacent.
	ErrNotConnected = errors.New("freeman: points are not 4-connected")

	// ErrDimensionMismatch indicates a point that is not 2D.
	ErrDimensionMismatch = errors.New("freeman: point is not 2D")

	// ErrSyntax indicates a malformed chain text.
	ErrSyntax = errors.New("freeman: malformed chain")
)

// steps maps a code to its displacement.
var steps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Chain is a Freeman chain code.
type Chain struct {
	X0, Y0 int
	Codes  []byte
}

// FromPoints encodes the path through pts. When the last point is
// 4-adjacent to the first, the closing step is encoded too, so a cyclic
// contour yields a closed chain.
// Returns ErrEmpty, ErrDimensionMismatch or ErrNotConnected.
func FromPoints(pts []space.Point) (Chain, error) {
	if len(pts) == 0 {
		return Chain{}, ErrEmpty
	}
	for _, p := range pts {
		if p.Dim() != 2 {
			return Chain{}, fmt.Errorf("%w: %v", ErrDimensionMismatch, p)
		}
	}
	c := Chain{X0: pts[0].At(0), Y0: pts[0].At(1), Codes: make([]byte, 0, len(pts))}
	for i := 1; i < len(pts); i++ {
		code, ok := codeOf(pts[i-1], pts[i])
		if !ok {
			return Chain{}, fmt.Errorf("%w: %v -> %v", ErrNotConnected, pts[i-1], pts[i])
		}
		c.Codes = append(c.Codes, code)
	}
	if len(pts) > 2 {
		if code, ok := codeOf(pts[len(pts)-1], pts[0]); ok {
			c.Codes = append(c.Codes, code)
		}
	}

	return c, nil
}

func codeOf(p, q space.Point) (byte, bool) {
	dx, dy := q.At(0)-p.At(0), q.At(1)-p.At(1)
	for code, s := range steps {
		if s[0] == dx && s[1] == dy {
			return byte(code), true
		}
	}
	return 0, false
}

// Len returns the number of codes.
func (c Chain) Len() int { return len(c.Codes) }

// Points returns the start point followed by the point reached after each code.
func (c Chain) Points() []space.Point {
	out := make([]space.Point, 0, len(c.Codes)+1)
	x, y := c.X0, c.Y0
	out = append(out, space.MustPoint(x, y))
	for _, code := range c.Codes {
		s := steps[code&3]
		x, y = x+s[0], y+s[1]
		out = append(out, space.MustPoint(x, y))
	}
	return out
}

// End returns the point reached after the last code.
func (c Chain) End() space.Point {
	x, y := c.X0, c.Y0
	for _, code := range c.Codes {
		s := steps[code&3]
		x, y = x+s[0], y+s[1]
	}
	return space.MustPoint(x, y)
}

// IsClosed reports whether the chain is non-empty and ends at its start.
func (c Chain) IsClosed() bool {
	return len(c.Codes) > 0 && c.End() == space.MustPoint(c.X0, c.Y0)
}

// Area returns the signed area enclosed by a closed chain: positive when
// the chain turns counterclockwise (x right, y up).
func (c Chain) Area() int {
	twice := 0
	x, y := c.X0, c.Y0
	for _, code := range c.Codes {
		s := steps[code&3]
		nx, ny := x+s[0], y+s[1]
		twice += x*ny - nx*y
		x, y = nx, ny
	}
	return twice / 2
}

// String returns "x0 y0 codes", e.g. "0 0 0123".
func (c Chain) String() string {
	var b strings.Builder
	b.Grow(len(c.Codes) + 16)
	b.WriteString(strconv.Itoa(c.X0))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(c.Y0))
	b.WriteByte(' ')
	for _, code := range c.Codes {
		b.WriteByte('0' + code&3)
	}
	return b.String()
}

// Parse reads the text form produced by String.
func Parse(s string) (Chain, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return Chain{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	x0, err := strconv.Atoi(fields[0])
	if err != nil {
		return Chain{}, fmt.Errorf("%w: x0: %v", ErrSyntax, err)
	}
	y0, err := strconv.Atoi(fields[1])
	if err != nil {
		return Chain{}, fmt.Errorf("%w: y0: %v", ErrSyntax, err)
	}
	c := Chain{X0: x0, Y0: y0}
	if len(fields) == 3 {
		c.Codes = make([]byte, 0, len(fields[2]))
		for _, r := range fields[2] {
			if r < '0' || r > '3' {
				return Chain{}, fmt.Errorf("%w: code %q", ErrSyntax, r)
			}
			c.Codes = append(c.Codes, byte(r-'0'))
		}
	}
	return c, nil
}
