package source

import (
	"context"

	"github.com/mkrell/gameclock-exporter/internal/gameclock"
)

// SourceType represents a kind of game clock source
type SourceType string

// Supported source kinds
const (
	SourceLocal  SourceType = "local"
	SourceRemote SourceType = "remote"
)

// TickSource is the interface that all game clock sources must implement
type TickSource interface {
	// ReadTicks obtains the current clock value from the source
	ReadTicks(ctx context.Context) (gameclock.Ticks, error)

	// Name returns the source kind (local, remote)
	Name() SourceType

	// TicksPerSecond returns the rate at which the source's clock advances
	TicksPerSecond() uint32
}
