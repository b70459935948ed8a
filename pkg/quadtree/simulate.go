package quadtree

import "math/bits"

// Simulate advances the universe by exactly n generations (§4.6). n is
// decomposed into its set bits, processed lowest first; each selected
// exponent k is applied as one padded Evolve call. The post-state for a
// fixed total n is independent of how it was split into simulate calls or
// of cache warmth (§5 ordering guarantee).
func (u *Universe) Simulate(n uint64) error {
	for n > 0 {
		k := bits.TrailingZeros64(n)
		if err := u.step(k); err != nil {
			return err
		}
		n &^= uint64(1) << uint(k)
	}
	return nil
}

// step ensures the root is tall and padded enough for a single Evolve(root, k)
// call to give a faithful center-half result, performs that call, and
// promotes the result to the new root.
func (u *Universe) step(k int) error {
	if err := u.padForStep(k); err != nil {
		return err
	}
	result, err := Evolve(u.Arena, u.Cache, u.root, k)
	if err != nil {
		return err
	}
	u.root = result
	u.generation += uint64(1) << uint(k)
	if u.Metrics != nil {
		u.Metrics.Generation.Set(float64(u.generation))
	}
	return nil
}

// padForStep expands the root until level >= k+2 and every live cell lies
// in the root's central quarter (see marginSafe). Life patterns spread into
// empty space by at most one cell every two generations, so within
// 2^k <= 2^(level-2) generations no cell can leave the center half that
// Evolve returns (§4.6 step 3).
func (u *Universe) padForStep(k int) error {
	for {
		level := u.Arena.Level(u.root)
		if level >= k+2 && level >= MinLevel+2 && marginSafe(u.Arena, u.root) {
			return nil
		}
		if err := u.ExpandOnce(); err != nil {
			return err
		}
	}
}

// marginSafe reports whether every live cell of root lies in its central
// quarter: for each child, all of its population sits in the great-grandchild
// of root that touches root's center. Roots below MinLevel+3 never qualify.
func marginSafe(arena *Arena, root Handle) bool {
	if arena.Level(root) < MinLevel+3 {
		return false
	}
	nw, ne, sw, se := arena.Child(root, NW), arena.Child(root, NE), arena.Child(root, SW), arena.Child(root, SE)

	inner := func(child Handle, toward Quadrant) bool {
		return arena.Population(child) == arena.Population(arena.Child(arena.Child(child, toward), toward))
	}

	return inner(nw, SE) && inner(ne, SW) && inner(sw, NE) && inner(se, NW)
}
