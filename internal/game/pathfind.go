package game

import "container/heap"

// --- A* pathfinding ---

type pathNode struct {
	tile  Tile
	g, f  int
	seq   int // insertion order, breaks f ties
	index int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	if ol[i].f != ol[j].f {
		return ol[i].f < ol[j].f
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// dirs4 is the neighbour expansion order: up, down, left, right.
var dirs4 = [4]Tile{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// nearDirs is the search order for NearestWalkableTile: self, the four
// orthogonals, then the four diagonals.
var nearDirs = [9]Tile{
	{0, 0},
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// FindPath returns the shortest 4-connected path of open tiles from start to
// goal, both ends included. start == goal yields [start]; an unreachable goal
// yields an empty path. The start tile itself is not required to be open.
func (gm *GridMap) FindPath(start, goal Tile) []Tile {
	if start == goal {
		return []Tile{start}
	}
	if !gm.IsOpen(goal) {
		return nil
	}

	// Only start can lie outside the grid; it gets key -1.
	keyOf := func(t Tile) int {
		if !gm.InBounds(t) {
			return -1
		}
		return t.Y*gm.cols + t.X
	}

	gScore := map[int]int{}
	cameFrom := map[int]Tile{}
	closed := map[int]bool{}

	seq := 0
	startKey := keyOf(start)
	gScore[startKey] = 0
	ol := &openList{{tile: start, g: 0, f: start.Manhattan(goal), seq: seq}}
	heap.Init(ol)

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		ck := keyOf(cur.tile)
		if closed[ck] || cur.g != gScore[ck] {
			continue // stale entry
		}
		if cur.tile == goal {
			return reconstructPath(cameFrom, cur.tile, start, keyOf)
		}
		closed[ck] = true

		for _, d := range dirs4 {
			next := cur.tile.Add(d)
			if !gm.IsOpen(next) {
				continue
			}
			nk := keyOf(next)
			if closed[nk] {
				continue
			}
			tentative := cur.g + 1
			if prev, ok := gScore[nk]; ok && tentative >= prev {
				continue
			}
			gScore[nk] = tentative
			cameFrom[nk] = cur.tile
			seq++
			heap.Push(ol, &pathNode{tile: next, g: tentative, f: tentative + next.Manhattan(goal), seq: seq})
		}
	}
	return nil
}

func reconstructPath(cameFrom map[int]Tile, end, start Tile, keyOf func(Tile) int) []Tile {
	path := []Tile{end}
	cur := end
	for cur != start {
		prev, ok := cameFrom[keyOf(cur)]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NearestWalkableTile checks center and its 3x3 neighbourhood and returns the
// first open tile, or center itself when the whole neighbourhood is blocked.
func (gm *GridMap) NearestWalkableTile(center Tile) Tile {
	for _, d := range nearDirs {
		if t := center.Add(d); gm.IsOpen(t) {
			return t
		}
	}
	return center
}
