package tileboard

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board construction and solution decoding.
var (
	// ErrBadDimension indicates a board dimension below 1.
	ErrBadDimension = errors.New("tileboard: dimension must be at least 1")
	// ErrTileCount indicates the tile multiset does not cover the board exactly.
	ErrTileCount = errors.New("tileboard: tile count must equal dim*dim")
	// ErrBadTerminal indicates a terminal not on a matching border edge.
	ErrBadTerminal = errors.New("tileboard: terminal must sit on a border edge")
	// ErrUnsolved indicates a solution decode on a board whose CSP is
	// not fully assigned.
	ErrUnsolved = errors.New("tileboard: board is not solved")
)

// Side is a bitmask of the four tile edges.
type Side uint8

const (
	North Side = 1 << iota
	East
	South
	West
)

// sideNames is ordered to match the bit order above.
var sideNames = [...]string{"N", "E", "S", "W"}

// Has reports whether s contains side b.
func (s Side) Has(b Side) bool { return s&b != 0 }

// Rotate turns the mask by quarters clockwise quarter-turns.
func (s Side) Rotate(quarters int) Side {
	q := quarters % 4
	if q < 0 {
		q += 4
	}
	// One clockwise quarter maps N->E, E->S, S->W, W->N.
	rotated := (s << Side(q)) | (s >> Side(4-q))

	return rotated & (North | East | South | West)
}

// Opposite returns the facing edge of a single-bit side.
func (s Side) Opposite() Side { return s.Rotate(2) }

// String implements fmt.Stringer, rendering e.g. "N|E".
func (s Side) String() string {
	if s == 0 {
		return "-"
	}
	parts := make([]string, 0, 4)
	for i, name := range sideNames {
		if s.Has(1 << Side(i)) {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}

// Kind enumerates tile shapes by the path ends they carve.
type Kind uint8

const (
	// Empty has no path ends.
	Empty Kind = iota
	// Line connects two opposite edges.
	Line
	// Corner connects two adjacent edges.
	Corner
	// Tee connects three edges.
	Tee
	// Cross connects all four edges.
	Cross
)

// kindEdges holds each kind's canonical, unrotated edge mask.
var kindEdges = map[Kind]Side{
	Empty:  0,
	Line:   North | South,
	Corner: North | East,
	Tee:    North | East | West,
	Cross:  North | East | South | West,
}

// kindNames renders kinds for diagnostics.
var kindNames = map[Kind]string{
	Empty:  "Empty",
	Line:   "Line",
	Corner: "Corner",
	Tee:    "Tee",
	Cross:  "Cross",
}

// Edges returns the kind's canonical edge mask.
func (k Kind) Edges() Side { return kindEdges[k] }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Tile is one physical tile: an identity plus a shape. Each tile is
// placed exactly once.
type Tile struct {
	ID   int
	Kind Kind
}

// Placement is one way of putting one tile into one cell: the tile
// identity, its kind and the rotated edge mask. Placement is the CSP
// Value of every cell Variable, so it must stay a comparable struct.
type Placement struct {
	Tile  int
	Kind  Kind
	Edges Side
}

// String implements fmt.Stringer.
func (p Placement) String() string {
	return fmt.Sprintf("%s#%d[%s]", p.Kind, p.Tile, p.Edges)
}

// Terminal declares a border edge where a path must leave the board.
// Side must be a single bit pointing off the board from (Row, Col).
type Terminal struct {
	Row, Col int
	Side     Side
}
