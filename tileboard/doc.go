// Package tileboard compiles a tile-matching path puzzle into a CSP
// solvable by github.com/katalvlaran/csolve.
//
// The puzzle: a dim x dim board must be fully covered by a given
// multiset of square tiles. Each tile kind carves path ends into some
// of its four edges (Empty none, Line two opposite, Corner two
// adjacent, Tee three, Cross all four) and may be rotated freely.
// Adjacent tiles must agree edge to edge: a path end on one side of a
// shared border requires a path end on the other. Paths may leave the
// board only at declared terminals; every other border edge must be
// path-free.
//
// The compilation follows the engine's construction contract: one
// Variable per board cell whose domain is every (tile, rotation)
// placement, binary matching constraints between neighboring cells,
// pairwise distinctness constraints so each physical tile is used
// once, and unary border constraints for terminals. The resulting CSP
// is solved with any of the propagators in package propagate.
package tileboard
