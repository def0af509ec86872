// Package source defines the game clock source abstraction layer.
//
// This package provides a generic interface for obtaining the current game
// clock value from different backends. It allows the collector to poll a
// clock without knowing where the ticks come from.
//
// The TickSource interface must be implemented by each backend package:
//
//	type TickSource interface {
//		ReadTicks(ctx context.Context) (gameclock.Ticks, error)
//		Name() SourceType
//		TicksPerSecond() uint32
//	}
//
// Two implementations ship with the exporter:
//   - internal/local: a free-running counter derived from wall time elapsed
//     since a configured epoch
//   - internal/remote: an HTTP client that reads the tick count from a game
//     server's clock endpoint
//
// Errors from ReadTicks are propagated untouched; sources perform no local
// recovery beyond the remote client's bounded retry.
package source
