package quadtree

// Evolve advances the center half of the node referenced by h by exactly
// 2^k generations and returns the resulting level-(L-1) node, where
// L = arena.Level(h). It requires L >= 4; k is clamped down to L-2 if it
// exceeds it, matching the "advance as far as this node can answer for"
// contract used by the step driver (§4.6).
//
// The cache is consulted before any recursion and populated before
// returning, per §4.4. A (h, k) pair whose entry the cache has evicted or
// not admitted is computed again, with the same result.
func Evolve(arena *Arena, cache *Cache, h Handle, k int) (Handle, error) {
	level := arena.Level(h)
	if level < MinLevel+1 {
		panic("quadtree: Evolve requires a node above leaf level")
	}
	if max := level - 2; k > max {
		k = max
	}
	if k < 0 {
		k = 0
	}
	if result, ok := cache.Get(h, k); ok {
		return result, nil
	}

	var result Handle
	var err error
	if level == MinLevel+1 {
		result, err = evolveL4(arena, h, k)
	} else {
		result, err = evolveInner(arena, cache, h, k)
	}
	if err != nil {
		return Invalid, err
	}
	cache.Set(h, k, result)
	return result, nil
}

// evolveL4 handles L=4: the node's four children are level-3 leaves, so
// every intermediate quantity in the recursion (§4.5) is a raw bit pattern
// rather than an arena handle, since the level one below a leaf (a "4x4
// node") has no handle representation.
func evolveL4(arena *Arena, h Handle, k int) (Handle, error) {
	nwW := arena.LeafWord(arena.Child(h, NW))
	neW := arena.LeafWord(arena.Child(h, NE))
	swW := arena.LeafWord(arena.Child(h, SW))
	seW := arena.LeafWord(arena.Child(h, SE))

	n, e, s, w, c, nwC, neC, swC, seC := compose9(nwW, neW, swW, seW)
	squares := [9]uint64{nwC, n, neC, w, c, e, swC, s, seC}

	kPrime := minInt(k, MinLevel-2)
	var quarters [9]uint16
	for i, sq := range squares {
		quarters[i] = evolveLeafWord(sq, kPrime)
	}
	// Row-major 3x3 indices: 0=NW 1=N 2=NE 3=W 4=C 5=E 6=SW 7=S 8=SE.

	var resultWord uint64
	if k == MinLevel-1 { // k == level-2 == 2
		nw2 := quad4(quarters[0], 0, 0) | quad4(quarters[1], 4, 0) | quad4(quarters[3], 0, 4) | quad4(quarters[4], 4, 4)
		ne2 := quad4(quarters[1], 0, 0) | quad4(quarters[2], 4, 0) | quad4(quarters[4], 0, 4) | quad4(quarters[5], 4, 4)
		sw2 := quad4(quarters[3], 0, 0) | quad4(quarters[4], 4, 0) | quad4(quarters[6], 0, 4) | quad4(quarters[7], 4, 4)
		se2 := quad4(quarters[4], 0, 0) | quad4(quarters[5], 4, 0) | quad4(quarters[7], 0, 4) | quad4(quarters[8], 4, 4)
		finalNW := evolveLeafWord(nw2, kPrime)
		finalNE := evolveLeafWord(ne2, kPrime)
		finalSW := evolveLeafWord(sw2, kPrime)
		finalSE := evolveLeafWord(se2, kPrime)
		resultWord = quad4(finalNW, 0, 0) | quad4(finalNE, 4, 0) | quad4(finalSW, 0, 4) | quad4(finalSE, 4, 4)
	} else {
		nwQ := packQuarterFromCorners(
			quarterCorner(quarters[0], 2, 2), quarterCorner(quarters[1], 0, 2),
			quarterCorner(quarters[3], 2, 0), quarterCorner(quarters[4], 0, 0),
		)
		neQ := packQuarterFromCorners(
			quarterCorner(quarters[1], 2, 2), quarterCorner(quarters[2], 0, 2),
			quarterCorner(quarters[4], 2, 0), quarterCorner(quarters[5], 0, 0),
		)
		swQ := packQuarterFromCorners(
			quarterCorner(quarters[3], 2, 2), quarterCorner(quarters[4], 0, 2),
			quarterCorner(quarters[6], 2, 0), quarterCorner(quarters[7], 0, 0),
		)
		seQ := packQuarterFromCorners(
			quarterCorner(quarters[4], 2, 2), quarterCorner(quarters[5], 0, 2),
			quarterCorner(quarters[7], 2, 0), quarterCorner(quarters[8], 0, 0),
		)
		resultWord = quad4(nwQ, 0, 0) | quad4(neQ, 4, 0) | quad4(swQ, 0, 4) | quad4(seQ, 4, 4)
	}
	return arena.InternLeaf(resultWord)
}

// evolveInner handles L >= 5, where every intermediate quantity is a real
// arena node (possibly itself a level-3 leaf, when L=5).
func evolveInner(arena *Arena, cache *Cache, h Handle, k int) (Handle, error) {
	nw := arena.Child(h, NW)
	ne := arena.Child(h, NE)
	sw := arena.Child(h, SW)
	se := arena.Child(h, SE)

	n, e, s, w, c, err := compose9Handles(arena, nw, ne, sw, se)
	if err != nil {
		return Invalid, err
	}
	squares := [9]Handle{nw, n, ne, w, c, e, sw, s, se}

	kPrime := minInt(k, arena.Level(nw)-2)
	var results [9]Handle
	for i, sq := range squares {
		r, err := Evolve(arena, cache, sq, kPrime)
		if err != nil {
			return Invalid, err
		}
		results[i] = r
	}

	var nwR, neR, swR, seR Handle
	level := arena.Level(h)
	if k == level-2 {
		nwR, err = combineDirect(arena, cache, results[0], results[1], results[3], results[4], k)
		if err != nil {
			return Invalid, err
		}
		neR, err = combineDirect(arena, cache, results[1], results[2], results[4], results[5], k)
		if err != nil {
			return Invalid, err
		}
		swR, err = combineDirect(arena, cache, results[3], results[4], results[6], results[7], k)
		if err != nil {
			return Invalid, err
		}
		seR, err = combineDirect(arena, cache, results[4], results[5], results[7], results[8], k)
		if err != nil {
			return Invalid, err
		}
	} else {
		nwR, err = combineCorners(arena, results[0], results[1], results[3], results[4], SE, SW, NE, NW)
		if err != nil {
			return Invalid, err
		}
		neR, err = combineCorners(arena, results[1], results[2], results[4], results[5], SE, SW, NE, NW)
		if err != nil {
			return Invalid, err
		}
		swR, err = combineCorners(arena, results[3], results[4], results[6], results[7], SE, SW, NE, NW)
		if err != nil {
			return Invalid, err
		}
		seR, err = combineCorners(arena, results[4], results[5], results[7], results[8], SE, SW, NE, NW)
		if err != nil {
			return Invalid, err
		}
	}
	return arena.InternInner(nwR, neR, swR, seR)
}

// compose9Handles is the handle-level analog of compose9 (§4.2): it
// synthesizes the composite squares N, E, S, W, C that straddle the
// boundaries of the four children. The corner squares (NW, NE, SW, SE)
// are the children themselves, unchanged, so the caller reuses them.
func compose9Handles(arena *Arena, nw, ne, sw, se Handle) (n, e, s, w, c Handle, err error) {
	n, err = arena.InternInner(arena.Child(nw, NE), arena.Child(ne, NW), arena.Child(nw, SE), arena.Child(ne, SW))
	if err != nil {
		return
	}
	e, err = arena.InternInner(arena.Child(ne, SW), arena.Child(ne, SE), arena.Child(se, NW), arena.Child(se, NE))
	if err != nil {
		return
	}
	s, err = arena.InternInner(arena.Child(sw, NE), arena.Child(se, NW), arena.Child(sw, SE), arena.Child(se, SW))
	if err != nil {
		return
	}
	w, err = arena.InternInner(arena.Child(nw, SW), arena.Child(nw, SE), arena.Child(sw, NW), arena.Child(sw, NE))
	if err != nil {
		return
	}
	c, err = arena.InternInner(arena.Child(nw, SE), arena.Child(ne, SW), arena.Child(sw, NE), arena.Child(se, NW))
	return
}

// combineDirect assembles a, b, c, d directly as the four children of a new
// node one level up, then evolves that node by k (internally reclamped to
// its own L-2). Used for the max-jump branch: phase one already advanced
// a..d as far as they could individually answer for, and this second phase
// advances the sibling-level node they form by the same amount again,
// doubling the total jump to 2^k (§4.5).
func combineDirect(arena *Arena, cache *Cache, a, b, c, d Handle, k int) (Handle, error) {
	pre, err := arena.InternInner(a, b, c, d)
	if err != nil {
		return Invalid, err
	}
	return Evolve(arena, cache, pre, k)
}

// combineCorners re-centers a, b, c, d: it takes the quadrant of each that
// borders the true center and assembles a fresh node from those four
// quadrants, one level below a..d. Used for the non-max branch, where a..d
// were already advanced by the full requested k in phase one and only need
// realignment, not a further jump (§4.5).
func combineCorners(arena *Arena, a, b, c, d Handle, qa, qb, qc, qd Quadrant) (Handle, error) {
	if arena.IsLeaf(a) {
		word := quad4(leafQuadrantOf(arena.LeafWord(a), qa), 0, 0) |
			quad4(leafQuadrantOf(arena.LeafWord(b), qb), 4, 0) |
			quad4(leafQuadrantOf(arena.LeafWord(c), qc), 0, 4) |
			quad4(leafQuadrantOf(arena.LeafWord(d), qd), 4, 4)
		return arena.InternLeaf(word)
	}
	return arena.InternInner(
		arena.Child(a, qa),
		arena.Child(b, qb),
		arena.Child(c, qc),
		arena.Child(d, qd),
	)
}

func leafQuadrantOf(word uint64, q Quadrant) uint16 {
	switch q {
	case NW:
		return leafQuadrant(word, 0, 0)
	case NE:
		return leafQuadrant(word, 4, 0)
	case SW:
		return leafQuadrant(word, 0, 4)
	case SE:
		return leafQuadrant(word, 4, 4)
	default:
		panic("quadtree: invalid quadrant")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
