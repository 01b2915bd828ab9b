package core

// step is a BFS back-pointer: the cell we came from and the move taken.
type step struct {
	from Coord
	dir  Direction
}

// ShortestPath finds the shortest route from one cell to another for
// traveller u, moving only through cells accessible to u. The starting cell
// itself does not need to be accessible.
//
// Neighbours are explored North, East, South, West, so among equally short
// routes the result is always the same.
//
// Returns false if either coordinate is off the board or no route exists.
// A zero-length path (from == to) is a valid result.
func ShortestPath(b *Board, from, to Coord, u *Unit) ([]Direction, bool) {
	if !b.InBounds(from) || !b.InBounds(to) {
		return nil, false
	}
	if from == to {
		return []Direction{}, true
	}

	prev := map[Coord]step{from: {from: from}}
	queue := []Coord{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			next, ok := b.Neighbor(cur, d)
			if !ok {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			if !b.Accessible(next, u) {
				continue
			}
			prev[next] = step{from: cur, dir: d}
			if next == to {
				return unwind(prev, from, to), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

// unwind rebuilds the path from BFS back-pointers.
func unwind(prev map[Coord]step, from, to Coord) []Direction {
	var rev []Direction
	for at := to; at != from; {
		s := prev[at]
		rev = append(rev, s.dir)
		at = s.from
	}
	path := make([]Direction, len(rev))
	for i, d := range rev {
		path[len(rev)-1-i] = d
	}
	return path
}

// FirstStep returns the first move of the shortest route from one cell to
// another. Returns false when no move brings u closer: unreachable target,
// off-board coordinates, or already standing on the target.
func FirstStep(b *Board, from, to Coord, u *Unit) (Direction, bool) {
	path, ok := ShortestPath(b, from, to, u)
	if !ok || len(path) == 0 {
		return 0, false
	}
	return path[0], true
}

// FindNearest returns the placed unit closest to from (in grid steps,
// ignoring walls) for which match returns true. Units on the same cell are
// checked in arrival order.
func FindNearest(b *Board, from Coord, match func(*Unit) bool) (*Unit, bool) {
	var found *Unit
	flood(b, from, func(c Coord) bool {
		for _, u := range b.Occupants(c) {
			if match(u) {
				found = u
				return true
			}
		}
		return false
	})
	return found, found != nil
}

// NearestAccessible clamps c onto the board and returns the closest cell
// (in grid steps) that u may enter. Returns false if no cell is accessible.
func NearestAccessible(b *Board, c Coord, u *Unit) (Coord, bool) {
	start := C(clamp(c.X, 0, b.w-1), clamp(c.Y, 0, b.h-1))
	var found Coord
	ok := false
	flood(b, start, func(at Coord) bool {
		if b.Accessible(at, u) {
			found, ok = at, true
		}
		return ok
	})
	return found, ok
}

// flood visits every board cell in breadth-first order from start, walls
// included, until visit returns true.
func flood(b *Board, start Coord, visit func(Coord) bool) {
	if !b.InBounds(start) {
		return
	}
	seen := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visit(cur) {
			return
		}
		for _, d := range Directions {
			next, ok := b.Neighbor(cur, d)
			if !ok || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
}
