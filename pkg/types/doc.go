// Package types defines the cargo container variants, the Ship that carries
// them, the id Sequencer, and the standard error types for shipyard.
//
// Containers are built standalone from a Sequencer, loaded and emptied
// through the Container interface, and then registered on a Ship. The Ship
// reads container loads for its weight totals but never changes them.
package types
