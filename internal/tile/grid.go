// Package tile places copies of a source image on a grid covering a canvas.
//
// The grid starts at the canvas origin and steps by the tile size on each
// axis. Tiles never overlap; tiles on the right and bottom edges are clipped
// to the canvas bounds.
package tile

import (
	"errors"
	"image"
)

// ErrEmptyTile is returned when a tile has zero or negative width or height.
var ErrEmptyTile = errors.New("tile: empty tile size")

// Grid describes the tile placements over a canvas.
//
// Thread safety: Grid is an immutable value and safe for concurrent use.
type Grid struct {
	canvas image.Rectangle
	tileW  int
	tileH  int
	cols   int
	rows   int
}

// NewGrid computes the grid of tileW x tileH tiles over canvas.
// An empty canvas yields a grid with no positions.
func NewGrid(canvas image.Rectangle, tileW, tileH int) (Grid, error) {
	if tileW <= 0 || tileH <= 0 {
		return Grid{}, ErrEmptyTile
	}

	g := Grid{canvas: canvas.Canon(), tileW: tileW, tileH: tileH}
	if !g.canvas.Empty() {
		g.cols = ceilDiv(g.canvas.Dx(), tileW)
		g.rows = ceilDiv(g.canvas.Dy(), tileH)
	}
	return g, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Cols returns the number of tile columns.
func (g Grid) Cols() int { return g.cols }

// Rows returns the number of tile rows.
func (g Grid) Rows() int { return g.rows }

// Count returns the total number of tile placements.
func (g Grid) Count() int { return g.cols * g.rows }

// TileSize returns the unclipped tile dimensions.
func (g Grid) TileSize() (w, h int) { return g.tileW, g.tileH }

// Row returns the top-left corners of the tiles in row j, left to right.
// Returns nil if j is out of range.
func (g Grid) Row(j int) []image.Point {
	if j < 0 || j >= g.rows {
		return nil
	}
	y := g.canvas.Min.Y + j*g.tileH
	pts := make([]image.Point, g.cols)
	for k := range g.cols {
		pts[k] = image.Pt(g.canvas.Min.X+k*g.tileW, y)
	}
	return pts
}

// Positions returns every tile corner in row-major order.
func (g Grid) Positions() []image.Point {
	pts := make([]image.Point, 0, g.Count())
	for j := range g.rows {
		pts = append(pts, g.Row(j)...)
	}
	return pts
}

// Clip returns the visible part of the tile whose top-left corner is p.
// The result is at most tileW x tileH and never extends past the canvas.
func (g Grid) Clip(p image.Point) image.Rectangle {
	r := image.Rectangle{Min: p, Max: p.Add(image.Pt(g.tileW, g.tileH))}
	return r.Intersect(g.canvas)
}
