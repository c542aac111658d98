// Package beam simulates a light beam travelling through a field of mirrors
// and splitters, and searches every boundary entry for the one that
// energizes the most cells.
//
// What
//
//   - Field: an immutable grid.Grid[Tile] parsed from text. The tile alphabet
//     is closed: '.' empty, '/' and '\' mirrors, '|' and '-' splitters.
//   - Energize / Trace: a breadth-first walk over (position, direction)
//     states from one entry state, returning the number of distinct cells
//     touched by any beam.
//   - Configurations / Best / MaxEnergized: every inward-pointing boundary
//     entry, simulated independently and reduced to a maximum.
//
// Tile behaviour
//
//	'.'  pass straight through
//	'\'  Right↔Down, Left↔Up
//	'/'  Right↔Up,   Left↔Down
//	'|'  horizontal beams split Up and Down; vertical beams pass
//	'-'  vertical beams split Left and Right; horizontal beams pass
//
// Termination
//
//	A walk records every (position, direction) it has processed and drops
//	repeats, so mirror loops terminate. At most 4×W×H states are processed.
//
// Concurrency
//
//	Each walk owns its visited and energized records; nothing survives the
//	call. The Field is only read. MaxEnergized therefore fans the 2×(W+H)
//	configurations out to a bounded errgroup and reduces the integers once
//	all of them are in. The answer does not depend on completion order.
//
// Complexity (W×H field)
//
//   - Energize:     O(W×H) time, O(W×H) memory.
//   - MaxEnergized: O((W+H)×W×H) time, O(workers×W×H) memory.
//
// Usage
//
//	f, err := beam.ReadField(r)
//	if err != nil {
//		// grid.ErrEmptyGrid, grid.ErrNonRectangular or beam.ErrUnknownTile
//	}
//	n, _ := beam.Energize(f, grid.Vec(0, 0), beam.Right)
//	best, _ := beam.MaxEnergized(f, beam.WithWorkers(8))
//
// Options
//
//   - WithContext(ctx):     cancel a running search.
//   - WithWorkers(n):       bound concurrent walks; 0 means GOMAXPROCS.
//   - WithOnResult(fn):     observe each finished configuration.
//
// Errors
//
//   - ErrFieldNil           if the field pointer is nil.
//   - ErrUnknownTile        if the input holds a symbol outside the alphabet.
//   - ErrInvalidDirection   if a walk is seeded with an undefined Direction.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative workers).
package beam
