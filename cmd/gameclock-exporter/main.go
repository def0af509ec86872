package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkrell/gameclock-exporter/internal/collector"
	"github.com/mkrell/gameclock-exporter/internal/config"
	"github.com/mkrell/gameclock-exporter/internal/local"
	"github.com/mkrell/gameclock-exporter/internal/logger"
	"github.com/mkrell/gameclock-exporter/internal/remote"
	"github.com/mkrell/gameclock-exporter/internal/server"
	"github.com/mkrell/gameclock-exporter/internal/source"
	"github.com/mkrell/gameclock-exporter/internal/version"
)

const (
	// DefaultShutdownTimeout is the maximum time to wait for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

var (
	configPath  = flag.String("config", "config.yaml", "Path to configuration file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load configuration first (need log level from config)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Game Clock Exporter starting",
		"version", version.Version,
		"config_path", *configPath)

	logger.Info("Configuration loaded successfully",
		"source", cfg.Source,
		"tick_rate", cfg.TickRate,
		"refresh_interval_seconds", cfg.RefreshInterval,
		"http_port", cfg.HTTPPort,
		"read_timeout_seconds", cfg.ReadTimeout)

	// Create the clock source
	var tickSource source.TickSource
	switch cfg.Source {
	case "remote":
		logger.Info("Using remote clock source", "url", cfg.Remote.URL)
		tickSource = remote.NewClient(cfg, logger)
	default:
		epoch, err := cfg.EpochTime()
		if err != nil {
			logger.Error("Failed to parse local epoch", "error", err)
			os.Exit(1)
		}
		logger.Info("Using local clock source", "epoch", cfg.Local.Epoch)
		tickSource = local.NewSource(epoch, uint32(cfg.TickRate))
	}

	// Create game clock collector
	logger.Info("Creating Prometheus collector")
	clockCollector := collector.NewGameClockCollector(tickSource, cfg, logger)

	// Register collector with Prometheus
	if err := prometheus.Register(clockCollector); err != nil {
		logger.Error("Failed to register collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector registered with Prometheus")

	// Register Go runtime metrics (memory, goroutines, GC stats)
	if err := prometheus.Register(prometheus.NewGoCollector()); err != nil {
		logger.Warn("Failed to register Go collector", "error", err)
	} else {
		logger.Info("Go runtime metrics registered")
	}

	// Register process metrics (CPU, memory, file descriptors)
	if err := prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{})); err != nil {
		logger.Warn("Failed to register process collector", "error", err)
	} else {
		logger.Info("Process metrics registered")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background clock reads
	logger.Info("Starting background clock refresh")
	clockCollector.StartBackgroundRefresh(ctx)

	// Create and start HTTP server
	logger.Info("Creating HTTP server", "port", cfg.HTTPPort)
	srv := server.NewServer(cfg, clockCollector, logger)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("Server error", "error", err)
		os.Exit(1)

	case sig := <-shutdown:
		logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig.String())

		// Cancel background refresh
		cancel()

		// Shutdown server with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during server shutdown", "error", err)
			// Force shutdown
			os.Exit(1)
		}

		logger.Info("Server stopped gracefully")
	}
}
