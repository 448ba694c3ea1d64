// Package physics provides the per-body rules of the particle simulation.
//
// A [Body] is plain data; the rules that act on it are free functions the
// world applies once per frame, in this order:
//
//   - [ApplyPointer]: repulsive impulse from a nearby pointer
//   - [ApplyBoundary]: wall restitution against the viewport edges
//   - [ResolveCollision]: 2D elastic collision between two overlapping bodies
//
// Velocities are in units per frame. Nothing here knows about time steps,
// rendering or input delivery.
//
// # Collision Model
//
// Collisions only exchange momentum along the line of centers. Both velocities
// are rotated into the contact frame, the 1-D mass-weighted elastic formula is
// applied to the rotated x components, and the result is rotated back:
//
//	if physics.Overlapping(a, b) {
//	    physics.ResolveCollision(a, b)
//	}
//
// Overlap is never corrected positionally.
package physics
