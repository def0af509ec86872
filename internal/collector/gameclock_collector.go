package collector

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkrell/gameclock-exporter/internal/clock"
	"github.com/mkrell/gameclock-exporter/internal/config"
	"github.com/mkrell/gameclock-exporter/internal/gameclock"
	"github.com/mkrell/gameclock-exporter/internal/logger"
	"github.com/mkrell/gameclock-exporter/internal/source"
	"github.com/mkrell/gameclock-exporter/internal/version"
)

// Snapshot is the last successful clock reading with its derived values
type Snapshot struct {
	Ticks       gameclock.Ticks
	Display     gameclock.DisplayTime
	ParityValue int
	ReadAt      time.Time
}

// GameClockCollector implements prometheus.Collector for game clock metrics
type GameClockCollector struct {
	tickSource source.TickSource
	cfg        *config.Config
	logger     *logger.Logger
	clock      clock.Clock // Time provider for testing

	// Metrics
	ticksMetric        *prometheus.Desc
	hoursMetric        *prometheus.Desc
	minutesMetric      *prometheus.Desc
	secondsMetric      *prometheus.Desc
	parityMetric       *prometheus.Desc
	upMetric           *prometheus.Desc
	readDurationMetric *prometheus.Desc
	readErrorsTotal    *prometheus.CounterVec
	lastReadTimeMetric *prometheus.Desc
	buildInfo          *prometheus.GaugeVec

	// State
	mu               sync.RWMutex
	last             Snapshot
	lastError        error
	lastReadDuration time.Duration
	refreshStarted   atomic.Bool // Prevent multiple refresh goroutines
	isReady          bool
}

// NewGameClockCollector creates a new GameClockCollector
func NewGameClockCollector(tickSource source.TickSource, cfg *config.Config, log *logger.Logger) *GameClockCollector {
	// Create proper counter metric for read errors
	readErrorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_clock_exporter_read_errors_total",
			Help: "Total number of game clock read errors since startup",
		},
		[]string{"source"},
	)

	// Create build info metric
	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "game_clock_exporter_build_info",
			Help: "Build version information",
		},
		[]string{"version", "git_commit", "build_date", "go_version"},
	)

	// Set build info to 1 with version labels
	versionInfo := version.Info()
	buildInfo.With(prometheus.Labels{
		"version":    versionInfo["version"],
		"git_commit": versionInfo["git_commit"],
		"build_date": versionInfo["build_date"],
		"go_version": versionInfo["go_version"],
	}).Set(1)

	return &GameClockCollector{
		tickSource: tickSource,
		cfg:        cfg,
		logger:     log,
		clock:      clock.RealClock{}, // Use real system time by default
		ticksMetric: prometheus.NewDesc(
			"game_clock_ticks",
			"Current game clock value (raw tick count)",
			[]string{"source"},
			nil,
		),
		hoursMetric: prometheus.NewDesc(
			"game_clock_display_hours",
			"Hours component of the display time",
			[]string{"source"},
			nil,
		),
		minutesMetric: prometheus.NewDesc(
			"game_clock_display_minutes",
			"Minutes component of the display time",
			[]string{"source"},
			nil,
		),
		secondsMetric: prometheus.NewDesc(
			"game_clock_display_seconds",
			"Seconds component of the display time",
			[]string{"source"},
			nil,
		),
		parityMetric: prometheus.NewDesc(
			"game_clock_parity_value",
			"Value selected from the parity of the display seconds (2 = even, 3 = odd)",
			[]string{"source"},
			nil,
		),
		upMetric: prometheus.NewDesc(
			"up",
			"Was the last game clock read successful (1 = success, 0 = failure)",
			[]string{"source"},
			nil,
		),
		readDurationMetric: prometheus.NewDesc(
			"game_clock_exporter_read_duration_seconds",
			"Duration of the last game clock read in seconds",
			[]string{"source"},
			nil,
		),
		readErrorsTotal: readErrorsTotal,
		lastReadTimeMetric: prometheus.NewDesc(
			"game_clock_exporter_last_read_timestamp_seconds",
			"Unix timestamp of the last successful clock read",
			[]string{"source"},
			nil,
		),
		buildInfo: buildInfo,
	}
}

// Describe implements prometheus.Collector
func (c *GameClockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.ticksMetric
	ch <- c.hoursMetric
	ch <- c.minutesMetric
	ch <- c.secondsMetric
	ch <- c.parityMetric
	ch <- c.upMetric
	ch <- c.readDurationMetric
	c.readErrorsTotal.Describe(ch) // Describe the counter
	ch <- c.lastReadTimeMetric
	c.buildInfo.Describe(ch) // Describe build info
}

// Collect implements prometheus.Collector
func (c *GameClockCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sourceName := string(c.tickSource.Name())

	if c.isReady {
		ch <- prometheus.MustNewConstMetric(
			c.ticksMetric,
			prometheus.GaugeValue,
			float64(c.last.Ticks),
			sourceName,
		)
		ch <- prometheus.MustNewConstMetric(
			c.hoursMetric,
			prometheus.GaugeValue,
			float64(c.last.Display.Hours),
			sourceName,
		)
		ch <- prometheus.MustNewConstMetric(
			c.minutesMetric,
			prometheus.GaugeValue,
			float64(c.last.Display.Minutes),
			sourceName,
		)
		ch <- prometheus.MustNewConstMetric(
			c.secondsMetric,
			prometheus.GaugeValue,
			float64(c.last.Display.Seconds),
			sourceName,
		)
		ch <- prometheus.MustNewConstMetric(
			c.parityMetric,
			prometheus.GaugeValue,
			float64(c.last.ParityValue),
			sourceName,
		)
	}

	// Send up metric
	upValue := 0.0
	if c.lastError == nil && c.isReady {
		upValue = 1.0
	}
	ch <- prometheus.MustNewConstMetric(
		c.upMetric,
		prometheus.GaugeValue,
		upValue,
		sourceName,
	)

	// Send read duration metric
	ch <- prometheus.MustNewConstMetric(
		c.readDurationMetric,
		prometheus.GaugeValue,
		c.lastReadDuration.Seconds(),
		sourceName,
	)

	// Collect read errors counter (proper counter that survives across reads)
	c.readErrorsTotal.Collect(ch)

	// Send last read time metric
	if !c.last.ReadAt.IsZero() {
		ch <- prometheus.MustNewConstMetric(
			c.lastReadTimeMetric,
			prometheus.GaugeValue,
			float64(c.last.ReadAt.Unix()),
			sourceName,
		)
	}

	// Collect build info metric
	c.buildInfo.Collect(ch)
}

// StartBackgroundRefresh starts a goroutine that periodically reads the clock
// Uses atomic flag to prevent multiple refresh goroutines
func (c *GameClockCollector) StartBackgroundRefresh(ctx context.Context) {
	// Prevent multiple refresh goroutines
	if !c.refreshStarted.CompareAndSwap(false, true) {
		c.logger.Warn("Background refresh already started, skipping")
		return
	}

	// Initial read
	c.refresh(ctx)

	// Background refresh loop
	ticker := time.NewTicker(time.Duration(c.cfg.RefreshInterval) * time.Second)
	go func() {
		defer ticker.Stop()
		defer c.refreshStarted.Store(false) // Reset on exit
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Stopping background refresh")
				return
			case <-ticker.C:
				c.refresh(ctx)
			}
		}
	}()
}

// refresh reads the clock source and updates the cached snapshot
func (c *GameClockCollector) refresh(ctx context.Context) {
	sourceName := c.tickSource.Name()
	start := time.Now()

	ticks, err := c.tickSource.ReadTicks(ctx)
	duration := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastReadDuration = duration
	c.lastError = err

	if err != nil {
		c.readErrorsTotal.With(prometheus.Labels{"source": string(sourceName)}).Inc()
		c.logger.Error("Failed to read game clock", "source", sourceName, "error", err)
		c.isReady = false
		return
	}

	display := gameclock.ComputeDisplayTime(ticks, c.tickSource.TicksPerSecond())
	c.last = Snapshot{
		Ticks:       ticks,
		Display:     display,
		ParityValue: gameclock.SelectByParity(display),
		ReadAt:      c.clock.Now(),
	}
	c.isReady = true

	c.logger.Debug("Read game clock",
		"source", sourceName,
		"ticks", uint32(ticks),
		"play_time", display.String(),
		"parity_value", c.last.ParityValue,
		"duration_seconds", duration.Seconds())
}

// IsReady returns true if the collector has successfully read the clock at least once
func (c *GameClockCollector) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// LastError returns the last error encountered during refresh
func (c *GameClockCollector) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// LastReadTime returns the time of the last successful clock read
func (c *GameClockCollector) LastReadTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last.ReadAt
}

// Snapshot returns the last successful reading; ok is false before the first one
func (c *GameClockCollector) Snapshot() (snap Snapshot, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, c.isReady
}
