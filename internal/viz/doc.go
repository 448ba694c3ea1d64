// Package viz hosts a particle world in the terminal.
//
// The package implements the live view using the Bubble Tea framework:
//
//   - [Model]: steps the world on a ticker, maps the mouse to the pointer and
//     respawns the population when the terminal is resized
//   - [App]: preset picker that hands over to a [Model]
//   - [Canvas]: Braille dot canvas that implements world.Renderer
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Respawn bodies at the current size
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help
//
// # Recording
//
// The live view can record the canvas as a GIF animation using the G key.
// Each Braille dot becomes a small square in its body colour.
package viz
