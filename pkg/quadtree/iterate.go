package quadtree

// Viewport is a world-coordinate rectangle: [X0, X0+W) x [Y0, Y0+H).
type Viewport struct {
	X0, Y0 int64
	W, H   int64
}

func (v Viewport) intersects(minX, minY, side int64) bool {
	maxX, maxY := minX+side, minY+side
	return minX < v.X0+v.W && maxX > v.X0 && minY < v.Y0+v.H && maxY > v.Y0
}

// ForEachLiveBlock visits every 8x8 leaf block that intersects viewport and
// has at least one live cell (§4.7). (x, y) delivered to visit is the
// world coordinate of the block's NW corner; block is its leaf word. The
// recursion prunes subtrees outside viewport and subtrees with zero
// population. Visitation order is unspecified.
func (u *Universe) ForEachLiveBlock(viewport Viewport, visit func(x, y int64, block uint64)) {
	min, _ := u.bounds()
	walkLiveBlocks(u.Arena, u.root, min, min, viewport, visit)
}

func walkLiveBlocks(arena *Arena, h Handle, minX, minY int64, viewport Viewport, visit func(x, y int64, block uint64)) {
	if arena.Population(h) == 0 {
		return
	}
	level := arena.Level(h)
	side := int64(1) << uint(level)
	if !viewport.intersects(minX, minY, side) {
		return
	}
	if level == MinLevel {
		visit(minX, minY, arena.LeafWord(h))
		return
	}
	half := side / 2
	walkLiveBlocks(arena, arena.Child(h, NW), minX, minY, viewport, visit)
	walkLiveBlocks(arena, arena.Child(h, NE), minX+half, minY, viewport, visit)
	walkLiveBlocks(arena, arena.Child(h, SW), minX, minY+half, viewport, visit)
	walkLiveBlocks(arena, arena.Child(h, SE), minX+half, minY+half, viewport, visit)
}
