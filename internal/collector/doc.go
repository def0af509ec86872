// Package collector implements a Prometheus collector for game clock metrics.
//
// This package provides a Prometheus-compatible collector that periodically
// reads the game clock from a source, derives the display time and parity
// value, and exposes the results as metrics. It implements the
// prometheus.Collector interface and manages background refresh cycles.
//
// The collector exposes the following metrics:
//   - game_clock_ticks: Current raw tick count with source label
//   - game_clock_display_hours|minutes|seconds: Display time components
//   - game_clock_parity_value: 2 when the display seconds are even, 3 when odd
//   - up: Health status (1 = success, 0 = failure) with source label
//   - game_clock_exporter_read_duration_seconds: Duration of the last clock read
//   - game_clock_exporter_read_errors_total: Total number of read errors
//   - game_clock_exporter_last_read_timestamp_seconds: Unix timestamp of last successful read
//   - game_clock_exporter_build_info: Build version information
//
// The main type is GameClockCollector, which:
//   - Reads the clock source in the background at configurable intervals
//   - Caches the last snapshot to serve Prometheus scrapes quickly
//   - Provides thread-safe access via RWMutex
//   - Works with any source.TickSource implementation
//
// Example usage:
//
//	src := local.NewSource(time.Time{}, 60)
//	collector := collector.NewGameClockCollector(src, cfg, log)
//
//	// Register with Prometheus
//	prometheus.MustRegister(collector)
//
//	// Start background refresh
//	ctx := context.Background()
//	collector.StartBackgroundRefresh(ctx)
//
//	// Check readiness
//	if snap, ok := collector.Snapshot(); ok {
//		fmt.Printf("play time %s, parity value %d\n", snap.Display, snap.ParityValue)
//	}
package collector
