// Package world owns the simulated population and advances it one frame at a
// time.
//
// A [World] holds the ordered bodies, the viewport bounds and the input state
// (pointer position and press state). Hosts feed input through [World.SetPointer],
// [World.Press] and [World.Release], call [World.Reinitialize] when the viewport
// changes size, and call [World.Step] once per frame with a [Renderer].
//
// # Example
//
//	w, _ := world.New(960, 360, world.WithBodies(400), world.WithSeed(1))
//	for {
//	    w.Step(renderer)
//	}
//
// # Thread Safety
//
// World instances are NOT thread-safe. Input updates, resizes and steps must be
// serialized by the host; every host in this module does so by running them on
// a single loop.
package world
