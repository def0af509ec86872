package local

import (
	"context"
	"fmt"
	"time"

	"github.com/mkrell/gameclock-exporter/internal/clock"
	"github.com/mkrell/gameclock-exporter/internal/gameclock"
	"github.com/mkrell/gameclock-exporter/internal/source"
)

// Source is a free-running game clock: the tick count is the wall time
// elapsed since the epoch multiplied by the tick rate. It implements
// source.TickSource without any I/O.
type Source struct {
	epoch time.Time
	rate  uint32
	clock clock.Clock // Time provider for testing
}

// Verify that Source implements source.TickSource
var _ source.TickSource = (*Source)(nil)

// NewSource creates a local clock source. A zero epoch starts the clock at
// the moment of the call; a zero rate falls back to the default 60 ticks
// per second.
func NewSource(epoch time.Time, ticksPerSecond uint32) *Source {
	return newSource(epoch, ticksPerSecond, clock.RealClock{})
}

func newSource(epoch time.Time, ticksPerSecond uint32, clk clock.Clock) *Source {
	if epoch.IsZero() {
		epoch = clk.Now()
	}
	if ticksPerSecond == 0 {
		ticksPerSecond = gameclock.DefaultTicksPerSecond
	}
	return &Source{
		epoch: epoch,
		rate:  ticksPerSecond,
		clock: clk,
	}
}

// Name returns the source kind
func (s *Source) Name() source.SourceType {
	return source.SourceLocal
}

// TicksPerSecond returns the configured tick rate
func (s *Source) TicksPerSecond() uint32 {
	return s.rate
}

// ReadTicks derives the current tick count from elapsed wall time.
// An epoch in the future reads as zero; the count wraps at 2^32 like the
// original counter.
func (s *Source) ReadTicks(ctx context.Context) (gameclock.Ticks, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("local clock read canceled: %w", err)
	}

	elapsed := s.clock.Since(s.epoch)
	if elapsed < 0 {
		return 0, nil
	}

	ticks := uint64(elapsed) * uint64(s.rate) / uint64(time.Second)
	return gameclock.Ticks(ticks), nil
}
