// Package local implements a free-running local game clock source.
//
// The tick count is derived from wall time: elapsed time since a configured
// epoch multiplied by the tick rate. No state is kept beyond the epoch, so
// reads are cheap and the source never fails except on context cancelation.
//
// Example usage:
//
//	src := local.NewSource(time.Time{}, gameclock.DefaultTicksPerSecond)
//	ticks, _ := src.ReadTicks(ctx)
package local
