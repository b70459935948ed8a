package rle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveSet collects every live cell in u within a margin of its bounding box.
func liveSet(t *testing.T, uni interface {
	Get(x, y int64) bool
	BoundingBox() (minX, minY, maxX, maxY int64, ok bool)
}) map[[2]int64]bool {
	t.Helper()
	minX, minY, maxX, maxY, ok := uni.BoundingBox()
	got := map[[2]int64]bool{}
	if !ok {
		return got
	}
	for y := minY - 1; y <= maxY+1; y++ {
		for x := minX - 1; x <= maxX+1; x++ {
			if uni.Get(x, y) {
				got[[2]int64{x, y}] = true
			}
		}
	}
	return got
}

// TestReadBlinker checks the one testable property spec.md §8 Scenario 1
// names: a blinker read from RLE is centered on the origin, and oscillates
// between its horizontal and vertical phases through the origin.
func TestReadBlinker(t *testing.T) {
	src := "x = 3, y = 1, rule = B3/S23\n3o!\n"
	uni, err := Read(src)
	require.NoError(t, err)

	assert.Equal(t, map[[2]int64]bool{
		{-1, 0}: true, {0, 0}: true, {1, 0}: true,
	}, liveSet(t, uni))

	require.NoError(t, uni.Simulate(1))
	assert.Equal(t, map[[2]int64]bool{
		{0, -1}: true, {0, 0}: true, {0, 1}: true,
	}, liveSet(t, uni))

	require.NoError(t, uni.Simulate(1))
	assert.Equal(t, map[[2]int64]bool{
		{-1, 0}: true, {0, 0}: true, {1, 0}: true,
	}, liveSet(t, uni))
}

func TestReadGlider(t *testing.T) {
	src := "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"
	uni, err := Read(src)
	require.NoError(t, err)

	want := map[[2]int64]bool{
		{0, -1}: true,
		{1, 0}:  true,
		{-1, 1}: true, {0, 1}: true, {1, 1}: true,
	}
	assert.Equal(t, want, liveSet(t, uni))
}

func TestReadMissingBang(t *testing.T) {
	src := "x = 1, y = 1, rule = B3/S23\no"
	_, err := Read(src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, Body, perr.Kind)
}

func TestReadMalformedHeader(t *testing.T) {
	src := "x = 1, rule = B3/S23\no!\n"
	_, err := Read(src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, Header, perr.Kind)
}

func TestReadUnsupportedRule(t *testing.T) {
	src := "x = 1, y = 1, rule = B36/S23\no!\n"
	_, err := Read(src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, Header, perr.Kind)
}

func TestWriteRoundTripBlock(t *testing.T) {
	src := "x = 2, y = 2, rule = B3/S23\n2o$2o!\n"
	uni, err := Read(src)
	require.NoError(t, err)

	out, err := Write(uni)
	require.NoError(t, err)

	roundTrip, err := Read(out)
	require.NoError(t, err)

	for y := int64(0); y < 2; y++ {
		for x := int64(0); x < 2; x++ {
			assert.Equal(t, uni.Get(x, y), roundTrip.Get(x, y))
		}
	}
}

func TestWriteEmptyUniverse(t *testing.T) {
	uni, err := Read("x = 1, y = 1, rule = B3/S23\nb!\n")
	require.NoError(t, err)

	out, err := Write(uni)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "x = 0, y = 0"))
}

func TestReadIgnoresCommentLines(t *testing.T) {
	src := "#C a comment\nx = 3, y = 1, rule = B3/S23\n3o!\n"
	uni, err := Read(src)
	require.NoError(t, err)
	assert.True(t, uni.Get(-1, 0))
	assert.True(t, uni.Get(0, 0))
	assert.True(t, uni.Get(1, 0))
}
