package game

import (
	"errors"
	"fmt"
	"math"
)

// CellKind is the occupancy of a single grid cell.
type CellKind uint8

const (
	CellOpen CellKind = iota
	CellWall
)

func (k CellKind) String() string {
	switch k {
	case CellOpen:
		return "open"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Tile is an integer grid coordinate.
type Tile struct {
	X, Y int
}

// Add returns t offset by d.
func (t Tile) Add(d Tile) Tile { return Tile{t.X + d.X, t.Y + d.Y} }

// Manhattan returns the 4-connected grid distance between t and o.
func (t Tile) Manhattan(o Tile) int {
	dx := t.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := t.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Errors returned by NewGridMap.
var (
	ErrEmptyMap    = errors.New("grid map: no cells")
	ErrRaggedMap   = errors.New("grid map: rows differ in length")
	ErrBadTileSize = errors.New("grid map: tile size must be positive")
	ErrBadCell     = errors.New("grid map: cell value must be 0 or 1")
)

// DefaultLayout is the stock arena: 1 = wall, 0 = open.
var DefaultLayout = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 0, 1, 0, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

// GridMap is the immutable tile occupancy grid. Anything outside the grid is
// treated as wall.
type GridMap struct {
	cols     int
	rows     int
	tileSize float64
	cells    []CellKind
}

// NewGridMap validates a row-major layout (0 = open, 1 = wall) and builds the
// grid. The layout is copied; later edits to it have no effect.
func NewGridMap(layout [][]int, tileSize float64) (*GridMap, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadTileSize, tileSize)
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyMap
	}
	cols := len(layout[0])
	gm := &GridMap{
		cols:     cols,
		rows:     len(layout),
		tileSize: tileSize,
		cells:    make([]CellKind, cols*len(layout)),
	}
	for y, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(row), cols)
		}
		for x, v := range row {
			switch v {
			case 0:
				gm.cells[y*cols+x] = CellOpen
			case 1:
				gm.cells[y*cols+x] = CellWall
			default:
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrBadCell, x, y, v)
			}
		}
	}
	return gm, nil
}

// MustGridMap is NewGridMap for layouts known to be valid at compile time.
func MustGridMap(layout [][]int, tileSize float64) *GridMap {
	gm, err := NewGridMap(layout, tileSize)
	if err != nil {
		panic(err)
	}
	return gm
}

// Cols returns the grid width in tiles.
func (gm *GridMap) Cols() int { return gm.cols }

// Rows returns the grid height in tiles.
func (gm *GridMap) Rows() int { return gm.rows }

// TileSize returns the world size of one tile edge.
func (gm *GridMap) TileSize() float64 { return gm.tileSize }

// InBounds reports whether t lies inside the grid.
func (gm *GridMap) InBounds(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < gm.cols && t.Y < gm.rows
}

// CellKind returns the kind of the cell at (tx, ty). Out-of-range is wall.
func (gm *GridMap) CellKind(tx, ty int) CellKind {
	if tx < 0 || ty < 0 || tx >= gm.cols || ty >= gm.rows {
		return CellWall
	}
	return gm.cells[ty*gm.cols+tx]
}

// IsOpen reports whether t is an in-bounds open cell.
func (gm *GridMap) IsOpen(t Tile) bool {
	return gm.CellKind(t.X, t.Y) == CellOpen
}

// WorldToTile floor-divides a world point into its tile.
func (gm *GridMap) WorldToTile(x, y float64) Tile {
	return Tile{
		X: int(math.Floor(x / gm.tileSize)),
		Y: int(math.Floor(y / gm.tileSize)),
	}
}

// TileCenter returns the world-space centre of t.
func (gm *GridMap) TileCenter(t Tile) (float64, float64) {
	return float64(t.X)*gm.tileSize + gm.tileSize/2, float64(t.Y)*gm.tileSize + gm.tileSize/2
}

// IsWallAtWorldPoint reports whether the world point (x, y) lies in a wall
// tile or outside the grid. NaN coordinates count as outside.
func (gm *GridMap) IsWallAtWorldPoint(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	fx := math.Floor(x / gm.tileSize)
	fy := math.Floor(y / gm.tileSize)
	if fx < 0 || fy < 0 || fx >= float64(gm.cols) || fy >= float64(gm.rows) {
		return true
	}
	return gm.cells[int(fy)*gm.cols+int(fx)] == CellWall
}

// OpenTiles returns every open tile in row-major order.
func (gm *GridMap) OpenTiles() []Tile {
	var out []Tile
	for y := 0; y < gm.rows; y++ {
		for x := 0; x < gm.cols; x++ {
			if gm.cells[y*gm.cols+x] == CellOpen {
				out = append(out, Tile{x, y})
			}
		}
	}
	return out
}
