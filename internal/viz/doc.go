// Package viz renders heat solutions for the terminal and for image files.
//
// Everything here is a read-only consumer of a [heat.Solution]:
//
//   - [Heatmap]: colored space-time map, x across, time down
//   - [Profile], [Profiles]: asciigraph line plots of temperature columns
//   - [SavePNG]: gonum/plot heat map written to disk
//   - [Replay]: Bubble Tea program that scrubs through time steps
//
// # Key Bindings (Replay)
//
//	Space - Play/Pause
//	[ ]   - Step backward/forward
//	R     - Rewind to t = 0
//	T     - Cycle color themes
//	Q     - Quit
package viz
