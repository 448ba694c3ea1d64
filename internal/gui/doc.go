// Package gui hosts a particle world in a native raylib window.
//
// The window size is the viewport: resizing the window respawns the
// population, the mouse drives the pointer and holding the left button
// doubles the push.
package gui
