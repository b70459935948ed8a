package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachLiveBlockVisitsAllLiveCells(t *testing.T) {
	u := newTestUniverse(t)
	setCells(t, u, [][2]int64{{-10, -10}, {0, 0}, {15, 15}, {3, -7}})

	seen := map[[2]int64]bool{}
	u.ForEachLiveBlock(Viewport{X0: -100, Y0: -100, W: 200, H: 200}, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if block&(1<<uint(row*8+col)) != 0 {
					seen[[2]int64{bx + int64(col), by + int64(row)}] = true
				}
			}
		}
	})

	assert.True(t, seen[[2]int64{-10, -10}])
	assert.True(t, seen[[2]int64{0, 0}])
	assert.True(t, seen[[2]int64{15, 15}])
	assert.True(t, seen[[2]int64{3, -7}])
	assert.Len(t, seen, 4)
}

func TestForEachLiveBlockPrunesOutsideViewport(t *testing.T) {
	u := newTestUniverse(t)
	setCells(t, u, [][2]int64{{-50, -50}, {1, 1}})

	seen := map[[2]int64]bool{}
	u.ForEachLiveBlock(Viewport{X0: 0, Y0: 0, W: 8, H: 8}, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if block&(1<<uint(row*8+col)) != 0 {
					seen[[2]int64{bx + int64(col), by + int64(row)}] = true
				}
			}
		}
	})

	assert.True(t, seen[[2]int64{1, 1}])
	assert.False(t, seen[[2]int64{-50, -50}])
}

func TestForEachLiveBlockSkipsEmptyUniverse(t *testing.T) {
	u := newTestUniverse(t)
	called := false
	u.ForEachLiveBlock(Viewport{X0: -10, Y0: -10, W: 20, H: 20}, func(bx, by int64, block uint64) {
		called = true
	})
	assert.False(t, called)
}

func TestViewportIntersects(t *testing.T) {
	v := Viewport{X0: 0, Y0: 0, W: 8, H: 8}
	assert.True(t, v.intersects(0, 0, 8))
	assert.True(t, v.intersects(-4, -4, 8))
	assert.False(t, v.intersects(8, 8, 8))
	require.False(t, v.intersects(-8, 0, 8))
}
