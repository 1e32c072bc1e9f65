package tileboard

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/csolve/csp"
)

// Board is a compiled puzzle instance: the CSP plus the cell grid
// needed to decode a solution.
type Board struct {
	// CSP is the compiled problem, ready for search.Solve.
	CSP *csp.CSP

	dim   int
	tiles []Tile
	cells [][]*csp.Variable
}

// CreateTiles builds a tile multiset from per-kind counts, with
// sequential IDs in a fixed kind order so boards are reproducible.
func CreateTiles(counts map[Kind]int) []Tile {
	tiles := make([]Tile, 0)
	for _, k := range []Kind{Empty, Line, Corner, Tee, Cross} {
		for i := 0; i < counts[k]; i++ {
			tiles = append(tiles, Tile{ID: len(tiles), Kind: k})
		}
	}

	return tiles
}

// placements lists every distinct rotation of t. A Line has two, a
// Corner or Tee four, Empty and Cross one.
func placements(t Tile) []Placement {
	all := lo.Map([]int{0, 1, 2, 3}, func(q, _ int) Placement {
		return Placement{Tile: t.ID, Kind: t.Kind, Edges: t.Kind.Edges().Rotate(q)}
	})

	return lo.Uniq(all)
}

// New compiles a dim x dim board with the given tiles and terminals
// into a CSP. len(tiles) must equal dim*dim, and every terminal must
// name a border edge.
func New(name string, dim int, tiles []Tile, terminals []Terminal) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
	if len(tiles) != dim*dim {
		return nil, fmt.Errorf("%w: %d tiles on a %dx%d board", ErrTileCount, len(tiles), dim, dim)
	}
	for _, t := range terminals {
		if !onBorder(t, dim) {
			return nil, fmt.Errorf("%w: (%d,%d) side %s", ErrBadTerminal, t.Row, t.Col, t.Side)
		}
	}

	cs, err := csp.New(name)
	if err != nil {
		return nil, err
	}
	b := &Board{CSP: cs, dim: dim, tiles: tiles}

	// Every cell shares one domain: all placements of all tiles.
	domain := lo.FlatMap(tiles, func(t Tile, _ int) []Placement {
		return placements(t)
	})

	// 1. One Variable per cell
	b.cells = make([][]*csp.Variable, dim)
	for r := 0; r < dim; r++ {
		b.cells[r] = make([]*csp.Variable, dim)
		for c := 0; c < dim; c++ {
			v := csp.NewVariable(fmt.Sprintf("cell(%d,%d)", r, c))
			for _, p := range domain {
				v.AddDomainValues(p)
			}
			if err = cs.AddVariable(v); err != nil {
				return nil, err
			}
			b.cells[r][c] = v
		}
	}

	// 2. Edge matching between horizontal and vertical neighbors
	if err = b.addAdjacency(); err != nil {
		return nil, err
	}

	// 3. Each physical tile used at most once (pairwise distinctness)
	if err = b.addDistinct(); err != nil {
		return nil, err
	}

	// 4. Border edges: terminals require a path end, all others forbid one
	if err = b.addBorder(terminals); err != nil {
		return nil, err
	}

	return b, nil
}

// onBorder reports whether t names a single side pointing off the board.
func onBorder(t Terminal, dim int) bool {
	if t.Row < 0 || t.Row >= dim || t.Col < 0 || t.Col >= dim {
		return false
	}
	switch t.Side {
	case North:
		return t.Row == 0
	case South:
		return t.Row == dim-1
	case West:
		return t.Col == 0
	case East:
		return t.Col == dim-1
	default:
		return false
	}
}

// matchPredicate requires the facing edges of two neighbors to agree:
// a path end on side of the first iff one on the opposite side of the
// second.
func matchPredicate(side Side) csp.PredicateFunc {
	opp := side.Opposite()

	return func(vals []csp.Value) bool {
		a := vals[0].(Placement)
		b := vals[1].(Placement)

		return a.Edges.Has(side) == b.Edges.Has(opp)
	}
}

func (b *Board) addAdjacency() error {
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if c+1 < b.dim {
				con, err := csp.NewConstraint(
					fmt.Sprintf("match(%d,%d)E", r, c),
					[]*csp.Variable{b.cells[r][c], b.cells[r][c+1]},
					matchPredicate(East))
				if err != nil {
					return err
				}
				if err = b.CSP.AddConstraint(con); err != nil {
					return err
				}
			}
			if r+1 < b.dim {
				con, err := csp.NewConstraint(
					fmt.Sprintf("match(%d,%d)S", r, c),
					[]*csp.Variable{b.cells[r][c], b.cells[r+1][c]},
					matchPredicate(South))
				if err != nil {
					return err
				}
				if err = b.CSP.AddConstraint(con); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// distinctTiles accepts two placements of different physical tiles.
var distinctTiles = csp.PredicateFunc(func(vals []csp.Value) bool {
	return vals[0].(Placement).Tile != vals[1].(Placement).Tile
})

func (b *Board) addDistinct() error {
	vars := b.CSP.Variables()
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			con, err := csp.NewConstraint(
				fmt.Sprintf("distinct(%s,%s)", vars[i].Name(), vars[j].Name()),
				[]*csp.Variable{vars[i], vars[j]},
				distinctTiles)
			if err != nil {
				return err
			}
			if err = b.CSP.AddConstraint(con); err != nil {
				return err
			}
		}
	}

	return nil
}

func (b *Board) addBorder(terminals []Terminal) error {
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			for _, side := range []Side{North, East, South, West} {
				if onBorder(Terminal{Row: r, Col: c, Side: side}, b.dim) {
					if err := b.addBorderEdge(r, c, side, terminals); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// addBorderEdge constrains one off-board edge: a path end is required
// there if a terminal declares it, forbidden otherwise.
func (b *Board) addBorderEdge(r, c int, side Side, terminals []Terminal) error {
	want := lo.ContainsBy(terminals, func(t Terminal) bool {
		return t.Row == r && t.Col == c && t.Side == side
	})
	con, err := csp.NewConstraint(
		fmt.Sprintf("border(%d,%d)%s", r, c, side),
		[]*csp.Variable{b.cells[r][c]},
		csp.PredicateFunc(func(vals []csp.Value) bool {
			return vals[0].(Placement).Edges.Has(side) == want
		}))
	if err != nil {
		return err
	}

	return b.CSP.AddConstraint(con)
}

// Dim returns the board dimension.
func (b *Board) Dim() int { return b.dim }

// Tiles returns a copy of the tile multiset.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)

	return out
}

// Cell returns the Variable of cell (r, c).
func (b *Board) Cell(r, c int) *csp.Variable { return b.cells[r][c] }

// Placements decodes the solved board into a grid of placements.
// Returns ErrUnsolved unless every cell is assigned.
func (b *Board) Placements() ([][]Placement, error) {
	out := make([][]Placement, b.dim)
	for r := 0; r < b.dim; r++ {
		out[r] = make([]Placement, b.dim)
		for c := 0; c < b.dim; c++ {
			val, ok := b.cells[r][c].AssignedValue()
			if !ok {
				return nil, fmt.Errorf("%w: cell(%d,%d) unassigned", ErrUnsolved, r, c)
			}
			out[r][c] = val.(Placement)
		}
	}

	return out, nil
}
