// Package life implements a naive, directly-indexed Game of Life grid. It
// exists to serve as a differential-testing oracle for pkg/quadtree's
// HashLife evolution kernel: both boundary modes it supports (toroidal
// wrapping and an open, always-dead boundary) can be driven over the same
// pattern and compared cell-for-cell against a quadtree.Universe advanced
// by Simulate(1).
package life

// Boundary selects how out-of-grid neighbors are treated.
type Boundary int

const (
	// Toroidal wraps neighbor lookups around the grid edges.
	Toroidal Boundary = iota
	// Open treats every out-of-grid neighbor as dead, matching the
	// infinite-plane semantics pkg/quadtree implements.
	Open
)

// Size describes the dimensions of a grid.
type Size struct {
	W, H int
}

// Life is a flat toroidal-or-open Game of Life board.
type Life struct {
	w, h     int
	boundary Boundary
	cur      []uint8
	nxt      []uint8
}

// New returns a Life board with the provided dimensions and boundary mode.
func New(w, h int, boundary Boundary) *Life {
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, boundary: boundary, cur: cells, nxt: make([]uint8, len(cells))}
}

// Size returns the grid dimensions.
func (l *Life) Size() Size { return Size{W: l.w, H: l.h} }

// Cells exposes the current grid values, row-major, one byte per cell.
func (l *Life) Cells() []uint8 { return l.cur }

// Set writes a single cell.
func (l *Life) Set(x, y int, alive bool) {
	v := uint8(0)
	if alive {
		v = 1
	}
	l.cur[y*l.w+x] = v
}

// Get reads a single cell.
func (l *Life) Get(x, y int) bool {
	return l.cur[y*l.w+x] != 0
}

// Step advances the board by one generation under the standard B3/S23 rule.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := l.liveNeighbors(x, y)
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			switch l.boundary {
			case Toroidal:
				nx = (nx + l.w) % l.w
				ny = (ny + l.h) % l.h
			case Open:
				if nx < 0 || nx >= l.w || ny < 0 || ny >= l.h {
					continue
				}
			}
			n += int(l.cur[ny*l.w+nx])
		}
	}
	return n
}
