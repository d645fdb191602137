package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewGridMap_DefaultLayout(t *testing.T) {
	gm := MustGridMap(DefaultLayout, 64)
	if gm.Cols() != 8 || gm.Rows() != 5 {
		t.Fatalf("expected 8x5, got %dx%d", gm.Cols(), gm.Rows())
	}
	if gm.CellKind(0, 0) != CellWall {
		t.Fatal("corner should be wall")
	}
	if gm.CellKind(1, 1) != CellOpen {
		t.Fatal("(1,1) should be open")
	}
	if gm.CellKind(2, 2) != CellWall {
		t.Fatal("(2,2) should be an interior pillar")
	}
}

func TestNewGridMap_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		layout [][]int
		tile   float64
		want   error
	}{
		{"empty", nil, 64, ErrEmptyMap},
		{"empty row", [][]int{{}}, 64, ErrEmptyMap},
		{"ragged", [][]int{{1, 1}, {1}}, 64, ErrRaggedMap},
		{"zero tile", [][]int{{0}}, 0, ErrBadTileSize},
		{"negative tile", [][]int{{0}}, -3, ErrBadTileSize},
		{"bad cell", [][]int{{0, 2}}, 64, ErrBadCell},
	}
	for _, c := range cases {
		_, err := NewGridMap(c.layout, c.tile)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestGridMap_CopiesLayout(t *testing.T) {
	layout := [][]int{{0, 0}, {0, 0}}
	gm := MustGridMap(layout, 10)
	layout[0][0] = 1
	if gm.CellKind(0, 0) != CellOpen {
		t.Fatal("grid should not alias the caller's layout")
	}
}

func TestGridMap_OutOfBoundsIsWall(t *testing.T) {
	gm := MustGridMap([][]int{{0, 0}, {0, 0}}, 10)
	for _, tc := range []Tile{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, -5}, {100, 100}} {
		if gm.CellKind(tc.X, tc.Y) != CellWall {
			t.Fatalf("out-of-bounds %v should be wall", tc)
		}
		if gm.IsOpen(tc) {
			t.Fatalf("out-of-bounds %v should not be open", tc)
		}
	}
}

func TestGridMap_WorldToTileFloors(t *testing.T) {
	gm := MustGridMap(DefaultLayout, 64)
	cases := []struct {
		x, y float64
		want Tile
	}{
		{0, 0, Tile{0, 0}},
		{63.9, 64, Tile{0, 1}},
		{100, 100, Tile{1, 1}},
		{-0.5, 10, Tile{-1, 0}},
		{-64, -64.1, Tile{-1, -2}},
	}
	for _, c := range cases {
		if got := gm.WorldToTile(c.x, c.y); got != c.want {
			t.Fatalf("WorldToTile(%v,%v)=%v want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGridMap_TileCenter(t *testing.T) {
	gm := MustGridMap(DefaultLayout, 64)
	x, y := gm.TileCenter(Tile{2, 1})
	if x != 160 || y != 96 {
		t.Fatalf("expected (160,96), got (%.0f,%.0f)", x, y)
	}
}

func TestIsWallAtWorldPoint_RandomSamples(t *testing.T) {
	gm := MustGridMap(DefaultLayout, 64)
	rng := rand.New(rand.NewSource(7))
	w := float64(gm.Cols()) * gm.TileSize()
	h := float64(gm.Rows()) * gm.TileSize()
	for i := 0; i < 5000; i++ {
		x := rng.Float64()*(w+256) - 128
		y := rng.Float64()*(h+256) - 128
		tx := int(math.Floor(x / 64))
		ty := int(math.Floor(y / 64))
		want := tx < 0 || ty < 0 || tx >= gm.Cols() || ty >= gm.Rows() || DefaultLayout[ty][tx] == 1
		if got := gm.IsWallAtWorldPoint(x, y); got != want {
			t.Fatalf("IsWallAtWorldPoint(%.2f,%.2f)=%v want %v (tile %d,%d)", x, y, got, want, tx, ty)
		}
	}
}

func TestIsWallAtWorldPoint_NaNIsWall(t *testing.T) {
	gm := MustGridMap(DefaultLayout, 64)
	if !gm.IsWallAtWorldPoint(math.NaN(), 100) {
		t.Fatal("NaN coordinates should be treated as wall")
	}
	if !gm.IsWallAtWorldPoint(math.Inf(1), 100) {
		t.Fatal("infinite coordinates should be out of bounds")
	}
}

func TestGridMap_OpenTiles(t *testing.T) {
	gm := MustGridMap([][]int{{1, 0}, {0, 1}}, 8)
	open := gm.OpenTiles()
	if len(open) != 2 || open[0] != (Tile{1, 0}) || open[1] != (Tile{0, 1}) {
		t.Fatalf("unexpected open tiles %v", open)
	}
}
