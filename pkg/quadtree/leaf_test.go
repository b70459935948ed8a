package quadtree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveStepFull applies B3/S23 to every cell of an 8x8 word, treating all
// cells outside the word as dead - the same semantics stepLeafFull claims.
func naiveStepFull(word uint64) uint64 {
	var out uint64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					c, r := col+dx, row+dy
					if c < 0 || c >= 8 || r < 0 || r >= 8 {
						continue
					}
					if word&(1<<uint(r*8+c)) != 0 {
						n++
					}
				}
			}
			alive := word&(1<<uint(row*8+col)) != 0
			next := (alive && (n == 2 || n == 3)) || (!alive && n == 3)
			if next {
				out |= 1 << uint(row*8+col)
			}
		}
	}
	return out
}

// TestLeafKernelExhaustiveNeighborhoods checks B3/S23's cell-update rule
// against every one of the 2^9 possible 3x3 neighborhoods of a single
// cell, independent of any leaf-word packing.
func TestLeafKernelExhaustiveNeighborhoods(t *testing.T) {
	for mask := 0; mask < 512; mask++ {
		// bit 4 (center) is the cell itself; the other 8 bits are its ring.
		center := mask&(1<<4) != 0
		n := 0
		for bit := 0; bit < 9; bit++ {
			if bit == 4 {
				continue
			}
			if mask&(1<<bit) != 0 {
				n++
			}
		}
		want := (center && (n == 2 || n == 3)) || (!center && n == 3)

		word := neighborhoodToLeafWord(mask)
		got := leafGet(stepLeafFullWord(word), 3, 3)
		assert.Equal(t, want, got, "mask=%09b center=%v n=%d", mask, center, n)
	}
}

// neighborhoodToLeafWord places a 3x3 neighborhood mask (bit order
// row-major, bit 4 is the center) centered at (3,3) of an 8x8 leaf so
// every neighbor stays in bounds.
func neighborhoodToLeafWord(mask int) uint64 {
	var word uint64
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if mask&(1<<i) != 0 {
				word = leafSet(word, 3+dx, 3+dy, true)
			}
			i++
		}
	}
	return word
}

func stepLeafFullWord(word uint64) uint64 { return stepLeafFull(word) }

func TestStepLeafCenterMatchesNaiveOnRandomPatches(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		word := rng.Uint64()
		got := stepLeafCenter(word)
		want := naiveStepFull(word)
		for row := 2; row < 6; row++ {
			for col := 2; col < 6; col++ {
				wantBit := want&(1<<uint(row*8+col)) != 0
				gotBit := got&(1<<uint((row-2)*4+(col-2))) != 0
				assert.Equal(t, wantBit, gotBit, "trial=%d row=%d col=%d", trial, row, col)
			}
		}
	}
}

func TestEvolveLeafWordKEqualsOneMatchesTwoFullSteps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	for trial := 0; trial < 50; trial++ {
		word := rng.Uint64()
		got := evolveLeafWord(word, 1)
		want := naiveStepFull(naiveStepFull(word))
		for row := 3; row < 5; row++ {
			for col := 3; col < 5; col++ {
				wantBit := want&(1<<uint(row*8+col)) != 0
				gotBit := quarterGet(got, col-2, row-2)
				assert.Equal(t, wantBit, gotBit, "trial=%d row=%d col=%d", trial, row, col)
			}
		}
	}
}

func TestLeafSetGetRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			word := leafSet(0, col, row, true)
			assert.True(t, leafGet(word, col, row))
			word = leafSet(word, col, row, false)
			assert.False(t, leafGet(word, col, row))
		}
	}
}

func TestQuarterCornerPackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	q := uint16(rng.Uint32() & 0xFFFF)
	nw := quarterCorner(q, 0, 0)
	ne := quarterCorner(q, 2, 0)
	sw := quarterCorner(q, 0, 2)
	se := quarterCorner(q, 2, 2)
	assert.Equal(t, q, packQuarterFromCorners(nw, ne, sw, se))
}
