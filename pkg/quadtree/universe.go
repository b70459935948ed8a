package quadtree

// Universe holds one simulation's mutable root and generation counter on
// top of a shared Arena and Cache (§3). Coordinate (0,0) is always the
// center of the root by construction; the root is kept centered as it
// grows, so no separate origin offset needs tracking.
type Universe struct {
	Arena *Arena
	Cache *Cache

	// Metrics, if set, receives the generation gauge update on every step.
	// A nil Metrics (the default) disables this.
	Metrics *Metrics

	root       Handle
	generation uint64
}

// NewUniverse builds an empty universe at the smallest root level capable
// of holding a call to Evolve (MinLevel+1).
func NewUniverse(arena *Arena, cache *Cache) *Universe {
	return &Universe{
		Arena: arena,
		Cache: cache,
		root:  arena.Empty(MinLevel + 1),
	}
}

// Root returns the current root handle.
func (u *Universe) Root() Handle { return u.root }

// Generation returns the number of generations simulated so far.
func (u *Universe) Generation() uint64 { return u.generation }

// bounds returns the half-open [min, max) square the current root covers.
func (u *Universe) bounds() (min, max int64) {
	level := u.Arena.Level(u.root)
	half := int64(1) << uint(level-1)
	return -half, half
}

// Get reports whether the cell at (x, y) is alive. Coordinates outside the
// current root are dead.
func (u *Universe) Get(x, y int64) bool {
	min, max := u.bounds()
	if x < min || x >= max || y < min || y >= max {
		return false
	}
	return getAt(u.Arena, u.root, min, min, x, y)
}

func getAt(arena *Arena, h Handle, minX, minY, x, y int64) bool {
	level := arena.Level(h)
	if level == MinLevel {
		word := arena.LeafWord(h)
		return leafGet(word, int(x-minX), int(y-minY))
	}
	half := int64(1) << uint(level-1)
	midX, midY := minX+half, minY+half
	switch {
	case x < midX && y < midY:
		return getAt(arena, arena.Child(h, NW), minX, minY, x, y)
	case x >= midX && y < midY:
		return getAt(arena, arena.Child(h, NE), midX, minY, x, y)
	case x < midX && y >= midY:
		return getAt(arena, arena.Child(h, SW), minX, midY, x, y)
	default:
		return getAt(arena, arena.Child(h, SE), midX, midY, x, y)
	}
}

// Set writes the cell at (x, y), expanding the root first if necessary, and
// path-copies from root to the affected leaf, interning along the way.
func (u *Universe) Set(x, y int64, alive bool) error {
	if err := u.ExpandToContain(x, y); err != nil {
		return err
	}
	min, _ := u.bounds()
	root, err := setAt(u.Arena, u.root, min, min, x, y, alive)
	if err != nil {
		return err
	}
	u.root = root
	return nil
}

func setAt(arena *Arena, h Handle, minX, minY, x, y int64, alive bool) (Handle, error) {
	level := arena.Level(h)
	if level == MinLevel {
		word := leafSet(arena.LeafWord(h), int(x-minX), int(y-minY), alive)
		return arena.InternLeaf(word)
	}
	half := int64(1) << uint(level-1)
	midX, midY := minX+half, minY+half
	nw, ne, sw, se := arena.Child(h, NW), arena.Child(h, NE), arena.Child(h, SW), arena.Child(h, SE)
	var err error
	switch {
	case x < midX && y < midY:
		nw, err = setAt(arena, nw, minX, minY, x, y, alive)
	case x >= midX && y < midY:
		ne, err = setAt(arena, ne, midX, minY, x, y, alive)
	case x < midX && y >= midY:
		sw, err = setAt(arena, sw, minX, midY, x, y, alive)
	default:
		se, err = setAt(arena, se, midX, midY, x, y, alive)
	}
	if err != nil {
		return Invalid, err
	}
	return arena.InternInner(nw, ne, sw, se)
}

// ExpandOnce wraps the current root as the center of a new root one level
// taller, preserving the old contents at identical (x, y): each quadrant of
// the old root is placed in the opposite sub-quadrant of the new root's
// matching quadrant, with empty siblings elsewhere (§4.3).
func (u *Universe) ExpandOnce() error {
	level := u.Arena.Level(u.root)
	empty := u.Arena.Empty(level - 1)

	nw, ne, sw, se := u.Arena.Child(u.root, NW), u.Arena.Child(u.root, NE), u.Arena.Child(u.root, SW), u.Arena.Child(u.root, SE)

	newNW, err := u.Arena.InternInner(empty, empty, empty, nw)
	if err != nil {
		return err
	}
	newNE, err := u.Arena.InternInner(empty, empty, ne, empty)
	if err != nil {
		return err
	}
	newSW, err := u.Arena.InternInner(empty, sw, empty, empty)
	if err != nil {
		return err
	}
	newSE, err := u.Arena.InternInner(se, empty, empty, empty)
	if err != nil {
		return err
	}
	root, err := u.Arena.InternInner(newNW, newNE, newSW, newSE)
	if err != nil {
		return err
	}
	u.root = root
	return nil
}

// ExpandToContain grows the root until (x, y) lies strictly inside it.
func (u *Universe) ExpandToContain(x, y int64) error {
	for {
		min, max := u.bounds()
		if x >= min && x < max && y >= min && y < max {
			return nil
		}
		if err := u.ExpandOnce(); err != nil {
			return err
		}
	}
}

// BoundingBox reports the smallest axis-aligned box containing every live
// cell, or ok=false for an empty universe. Grounded on the `boundary`
// method `original_source/src/universe.rs` uses internally to decide how
// far simulate must expand before a jump.
func (u *Universe) BoundingBox() (minX, minY, maxX, maxY int64, ok bool) {
	if u.Arena.Population(u.root) == 0 {
		return 0, 0, 0, 0, false
	}
	min, _ := u.bounds()
	minX, minY = 1<<62, 1<<62
	maxX, maxY = -(1 << 62), -(1 << 62)
	boundingBoxAt(u.Arena, u.root, min, min, &minX, &minY, &maxX, &maxY)
	return minX, minY, maxX, maxY, true
}

func boundingBoxAt(arena *Arena, h Handle, minX, minY int64, outMinX, outMinY, outMaxX, outMaxY *int64) {
	if arena.Population(h) == 0 {
		return
	}
	level := arena.Level(h)
	if level == MinLevel {
		word := arena.LeafWord(h)
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if leafGet(word, col, row) {
					x, y := minX+int64(col), minY+int64(row)
					if x < *outMinX {
						*outMinX = x
					}
					if x > *outMaxX {
						*outMaxX = x
					}
					if y < *outMinY {
						*outMinY = y
					}
					if y > *outMaxY {
						*outMaxY = y
					}
				}
			}
		}
		return
	}
	half := int64(1) << uint(level-1)
	boundingBoxAt(arena, arena.Child(h, NW), minX, minY, outMinX, outMinY, outMaxX, outMaxY)
	boundingBoxAt(arena, arena.Child(h, NE), minX+half, minY, outMinX, outMinY, outMaxX, outMaxY)
	boundingBoxAt(arena, arena.Child(h, SW), minX, minY+half, outMinX, outMinY, outMaxX, outMaxY)
	boundingBoxAt(arena, arena.Child(h, SE), minX+half, minY+half, outMinX, outMinY, outMaxX, outMaxY)
}

// DepthCensus walks the live quadtree and reports, per level, the number of
// distinct reachable nodes at that level. Grounded on `original_source/src/universe.rs`'s
// `debug` diagnostic.
func (u *Universe) DepthCensus() map[int]int64 {
	census := make(map[int]int64)
	seen := make(map[Handle]bool)
	censusAt(u.Arena, u.root, census, seen)
	return census
}

func censusAt(arena *Arena, h Handle, census map[int]int64, seen map[Handle]bool) {
	if seen[h] {
		return
	}
	seen[h] = true
	census[arena.Level(h)]++
	if arena.IsLeaf(h) {
		return
	}
	censusAt(arena, arena.Child(h, NW), census, seen)
	censusAt(arena, arena.Child(h, NE), census, seen)
	censusAt(arena, arena.Child(h, SW), census, seen)
	censusAt(arena, arena.Child(h, SE), census, seen)
}
