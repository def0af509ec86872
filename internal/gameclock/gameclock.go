package gameclock

import "fmt"

// Ticks is an opaque game clock value: a frame counter that advances at a
// fixed rate while the game runs. Arithmetic wraps at 2^32 like the
// original counter.
type Ticks uint32

// DefaultTicksPerSecond is the rate of the original clock, which advances
// once per rendered frame at 60 frames per second.
const DefaultTicksPerSecond = 60

// MaxDisplayHours is the largest hour value the display can show. Once the
// clock passes it, the whole display saturates at 999:59:59.
const MaxDisplayHours = 999

// DisplayTime is the hours/minutes/seconds decomposition of a clock value
// for on-screen presentation.
type DisplayTime struct {
	Hours   uint16
	Minutes uint16
	Seconds uint16
}

// ComputeDisplayTime decomposes a clock value into display time components.
// A ticksPerSecond of 0 falls back to DefaultTicksPerSecond.
func ComputeDisplayTime(t Ticks, ticksPerSecond uint32) DisplayTime {
	rate := ticksPerSecond
	if rate == 0 {
		rate = DefaultTicksPerSecond
	}

	total := uint64(t) / uint64(rate)

	hours := total / 3600
	if hours > MaxDisplayHours {
		return DisplayTime{Hours: MaxDisplayHours, Minutes: 59, Seconds: 59}
	}

	return DisplayTime{
		Hours:   uint16(hours),
		Minutes: uint16(total / 60 % 60),
		Seconds: uint16(total % 60),
	}
}

// String formats the display time the way the status screen shows it, e.g. "12:05:09"
func (d DisplayTime) String() string {
	return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}
