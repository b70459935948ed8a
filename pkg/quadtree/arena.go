package quadtree

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Invalid is the zero Handle; no interned node ever receives it.
const Invalid Handle = 0

// innerKey is the structural key for a non-leaf node: four child handles
// that must all share a common level.
type innerKey struct {
	nw, ne, sw, se Handle
}

// bucket entries resolve hash collisions in Arena's hand-rolled intern
// tables. The arena intentionally does not delegate to a plain Go map
// keyed by struct value: keying by a mixed 64-bit digest (via xxhash)
// plus an explicit equality check on collision keeps the identity
// contract in §4.1 explicit rather than incidental to runtime map hashing.
type leafBucket struct {
	word   uint64
	handle Handle
}

type innerBucket struct {
	key    innerKey
	handle Handle
}

// Arena is the node arena and intern table: it guarantees exactly one
// handle per structurally distinct node and exposes O(1) accessors.
//
// MaxNodes, if non-zero, caps the number of distinct interned nodes. Once
// the cap is reached, InternLeaf and InternInner return ErrOutOfMemory
// instead of growing the arena further.
type Arena struct {
	MaxNodes int

	nodes []node // index 0 unused; Handle(i) == index i

	leafTable  map[uint64][]leafBucket
	innerTable map[uint64][]innerBucket

	emptyChain []Handle // emptyChain[l] is empty(level l); index 0..2 unused

	metrics *Metrics
}

// NewArena constructs an empty arena. A nil Metrics disables instrumentation.
func NewArena(m *Metrics) *Arena {
	a := &Arena{
		nodes:      make([]node, 1, 1024),
		leafTable:  make(map[uint64][]leafBucket),
		innerTable: make(map[uint64][]innerBucket),
		emptyChain: make([]Handle, MinLevel),
		metrics:    m,
	}
	return a
}

func (a *Arena) full() bool {
	return a.MaxNodes > 0 && len(a.nodes)-1 >= a.MaxNodes
}

func (a *Arena) alloc(n node) Handle {
	a.nodes = append(a.nodes, n)
	h := Handle(len(a.nodes) - 1)
	if a.metrics != nil {
		a.metrics.ArenaSize.Set(float64(len(a.nodes) - 1))
	}
	return h
}

// InternLeaf returns the unique handle for an 8x8 patch encoded as word.
func (a *Arena) InternLeaf(word uint64) (Handle, error) {
	digest := xxhash.Sum64(leafKeyBytes(word))
	for _, b := range a.leafTable[digest] {
		if b.word == word {
			return b.handle, nil
		}
	}
	if a.full() {
		return Invalid, ErrOutOfMemory
	}
	pop := uint64(bits.OnesCount64(word))
	h := a.alloc(node{level: MinLevel, pop: pop, word: word})
	a.leafTable[digest] = append(a.leafTable[digest], leafBucket{word: word, handle: h})
	return h, nil
}

// InternInner returns the unique handle for a non-leaf node assembled
// from four children, which must all share the same level >= MinLevel.
// The returned node is at level+1 of its children.
func (a *Arena) InternInner(nw, ne, sw, se Handle) (Handle, error) {
	lvl := a.nodes[nw].level
	key := innerKey{nw: nw, ne: ne, sw: sw, se: se}
	digest := xxhash.Sum64(innerKeyBytes(key))
	for _, b := range a.innerTable[digest] {
		if b.key == key {
			return b.handle, nil
		}
	}
	if a.full() {
		return Invalid, ErrOutOfMemory
	}
	pop := a.nodes[nw].pop + a.nodes[ne].pop + a.nodes[sw].pop + a.nodes[se].pop
	h := a.alloc(node{level: lvl + 1, pop: pop, nw: nw, ne: ne, sw: sw, se: se})
	a.innerTable[digest] = append(a.innerTable[digest], innerBucket{key: key, handle: h})
	return h, nil
}

// Empty returns the canonical all-dead node at the given level >= MinLevel.
// empty(MinLevel) is the zero leaf word; empty(L) for L > MinLevel is
// built once and cached in a canonical chain.
func (a *Arena) Empty(level int) Handle {
	for len(a.emptyChain) <= level {
		a.emptyChain = append(a.emptyChain, Invalid)
	}
	if a.emptyChain[level] != Invalid {
		return a.emptyChain[level]
	}
	if level == MinLevel {
		h, err := a.InternLeaf(0)
		if err != nil {
			// Interning the zero leaf fails only when the arena is
			// already at MaxNodes.
			panic(err)
		}
		a.emptyChain[level] = h
		return h
	}
	child := a.Empty(level - 1)
	h, err := a.InternInner(child, child, child, child)
	if err != nil {
		panic(err)
	}
	a.emptyChain[level] = h
	return h
}

// Level returns the level of the node referenced by h.
func (a *Arena) Level(h Handle) int { return a.nodes[h].level }

// Population returns the live-cell count of the node referenced by h.
func (a *Arena) Population(h Handle) uint64 { return a.nodes[h].pop }

// IsLeaf reports whether h refers to a level-MinLevel leaf.
func (a *Arena) IsLeaf(h Handle) bool { return a.nodes[h].isLeaf() }

// LeafWord returns the 64-bit payload of a leaf node. It panics if h is
// not a leaf.
func (a *Arena) LeafWord(h Handle) uint64 {
	n := &a.nodes[h]
	if !n.isLeaf() {
		panic("quadtree: LeafWord on non-leaf node")
	}
	return n.word
}

// Child returns the handle of the requested quadrant of a non-leaf node.
// It panics if h is a leaf.
func (a *Arena) Child(h Handle, q Quadrant) Handle {
	n := &a.nodes[h]
	if n.isLeaf() {
		panic("quadtree: Child on leaf node")
	}
	switch q {
	case NW:
		return n.nw
	case NE:
		return n.ne
	case SW:
		return n.sw
	case SE:
		return n.se
	default:
		panic("quadtree: invalid quadrant")
	}
}

// NumNodes reports the number of distinct interned nodes currently held.
func (a *Arena) NumNodes() int { return len(a.nodes) - 1 }

func leafKeyBytes(word uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], word)
	return b[:]
}

func innerKeyBytes(k innerKey) []byte {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:8], uint64(k.nw))
	binary.LittleEndian.PutUint64(b[8:16], uint64(k.ne))
	binary.LittleEndian.PutUint64(b[16:24], uint64(k.sw))
	binary.LittleEndian.PutUint64(b[24:32], uint64(k.se))
	return b[:]
}
