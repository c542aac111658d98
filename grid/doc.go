// Package grid provides an immutable rectangular lattice of cells addressed
// by integer 2D vectors.
//
// What:
//
//   - Vector is a value-type (x, y) point with component-wise Add/Sub.
//   - Grid[T] wraps a rectangular [][]T, deep-copied at construction.
//   - Bounds testing, checked (Get) and unchecked (At) access.
//   - Row-major Index/Coordinate mapping for flat per-call bookkeeping.
//   - 4- or 8-direction neighbour enumeration.
//
// Why:
//
//   - Puzzle fields, game maps and simulations that are parsed once and then
//     read concurrently by many independent walks.
//
// Complexity:
//
//   - New / Parse:  O(W×H) time and memory.
//   - InBounds, Get, At, Index, Coordinate: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//
// Concurrency:
//
//	A Grid is never mutated after construction, so any number of goroutines
//	may read it without locking.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: Get called with a vector outside the grid.
package grid
