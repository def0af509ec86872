// Package gameclock implements the game clock domain model.
//
// The game clock is a free-running frame counter (Ticks) that advances at a
// fixed rate while the game runs, 60 ticks per second on the original
// hardware. This package provides the two pure operations derived from it:
//   - ComputeDisplayTime: decompose a tick count into the hours/minutes/seconds
//     shown on screen, saturating at 999:59:59
//   - SelectByParity: pick one of two values (2 or 3) from the parity of the
//     display seconds
//
// Both functions are pure; obtaining the current tick count from a running
// clock is the job of the source implementations (internal/local,
// internal/remote), and binding the two together happens in the collector.
//
// Example usage:
//
//	d := gameclock.ComputeDisplayTime(ticks, gameclock.DefaultTicksPerSecond)
//	fmt.Printf("play time %s, parity value %d\n", d, gameclock.SelectByParity(d))
package gameclock
