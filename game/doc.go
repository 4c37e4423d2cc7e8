// Package game holds the snake state machine: board and snake model, food
// placement, move resolution, key mapping and the turn-based loop.
//
// The package does no I/O of its own. Rendering and key input are supplied by
// the caller through Renderer and KeySource; randomness through *rand.Rand.
package game
