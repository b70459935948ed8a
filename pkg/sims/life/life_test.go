package life

import "testing"

func TestOpenBoundaryKillsEdgeNeighbors(t *testing.T) {
	l := New(3, 3, Open)
	// A vertical bar touching the top edge: under Open boundary it has no
	// neighbors above row 0, so it decays differently than under Toroidal.
	l.Set(1, 0, true)
	l.Set(1, 1, true)
	l.Set(1, 2, true)
	l.Step()
	if l.Get(0, 0) || l.Get(2, 0) {
		t.Fatalf("corner cells should stay dead under Open boundary")
	}
}

func TestToroidalWrapsNeighbors(t *testing.T) {
	l := New(3, 3, Toroidal)
	l.Set(1, 0, true)
	l.Set(1, 1, true)
	l.Set(1, 2, true)
	l.Step()
	if !l.Get(1, 0) {
		t.Fatalf("blinker's center column should persist under toroidal wrap")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5, Open)
	cells := life.Cells()
	for i := range cells {
		cells[i] = 0
	}

	w := life.Size().W
	set := func(x, y int) { life.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	cells = life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}
