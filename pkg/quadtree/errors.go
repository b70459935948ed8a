package quadtree

import "errors"

// ErrOutOfMemory is returned by any mutating operation once the arena has
// reached its configured MaxNodes ceiling (§7). The result cache never
// returns it: at its capacity it evicts entries instead. It is fatal for
// the call that produced it; there is no partial-progress recovery within
// a single Simulate call.
var ErrOutOfMemory = errors.New("quadtree: arena or cache capacity exceeded")
