package quadtree

import "testing"

// BenchmarkBreeder exercises the same "advance a small seed pattern by a
// large generation count" shape as original_source/algo/benches/breeder.rs,
// substituting the R-pentomino (whose fixture pattern this module does not
// carry) for the breeder ship.
func BenchmarkBreeder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		arena := NewArena(nil)
		cache, err := NewCache(1<<20, nil)
		if err != nil {
			b.Fatal(err)
		}
		u := NewUniverse(arena, cache)
		cells := [][2]int64{
			{1, 0}, {2, 0},
			{0, 1}, {1, 1},
			{1, 2},
		}
		for _, c := range cells {
			if err := u.Set(c[0], c[1], true); err != nil {
				b.Fatal(err)
			}
		}
		if err := u.Simulate(100000); err != nil {
			b.Fatal(err)
		}
		cache.Close()
	}
}

// BenchmarkEvolveWarmCache isolates steady-state Evolve cost once the
// result cache is already populated for a stable pattern, separate from
// the cold-cache cost BenchmarkBreeder also pays.
func BenchmarkEvolveWarmCache(b *testing.B) {
	arena := NewArena(nil)
	cache, err := NewCache(1<<20, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer cache.Close()
	u := NewUniverse(arena, cache)
	cells := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, c := range cells {
		if err := u.Set(c[0], c[1], true); err != nil {
			b.Fatal(err)
		}
	}
	if err := u.Simulate(1); err != nil { // warm
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evolve(arena, cache, u.root, 0); err != nil {
			b.Fatal(err)
		}
	}
}
