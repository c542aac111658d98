// Package beamgrid simulates light beams bouncing through a 2D field of
// mirrors and splitters.
//
// Packages:
//
//	grid/          — immutable rectangular Grid[T], Vector, bounds and neighbours
//	beam/          — tiles, directions, single-entry walk (Energize/Trace)
//	                 and the parallel boundary search (Best/MaxEnergized)
//	internal/      — CLI flag parsing, YAML config, logging
//	cmd/beamgrid/  — the command: prints "Part 1" and "Part 2" for a field
//
// Quick ASCII example:
//
//	field      energized
//	..\.       ###.
//	....       ..#.
//	..-.       ####
//
// A beam entering the top-left corner heading right is turned down by '\'
// and split towards both side edges by '-', energizing 8 of the 12 cells.
//
//	go run ./cmd/beamgrid input/16.txt
package beamgrid
