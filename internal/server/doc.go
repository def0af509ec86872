// Package server provides the HTTP surface of the game clock exporter.
//
// This package implements an HTTP server with endpoints for Prometheus
// metrics, health checks, the current display time, and a small status page.
// It provides graceful shutdown support and configurable timeouts.
//
// Available endpoints:
//   - /          : Status page showing the current play time and parity value
//   - /metrics   : Prometheus metrics endpoint
//   - /v1/time   : Current display time, tick count, and parity value as JSON
//   - /health    : Liveness probe (always returns 200)
//   - /ready     : Readiness probe (returns 200 only after the first clock read)
//
// The server is configured with sensible timeout defaults:
//   - Read timeout: 15 seconds
//   - Write timeout: 15 seconds
//   - Idle timeout: 60 seconds
//
// Example usage:
//
//	srv := server.NewServer(cfg, collector, log)
//
//	serverErrors := make(chan error, 1)
//	go func() {
//		serverErrors <- srv.Start()
//	}()
//
//	shutdown := make(chan os.Signal, 1)
//	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
//
//	select {
//	case err := <-serverErrors:
//		log.Error("server error", "error", err)
//	case <-shutdown:
//		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//		defer cancel()
//		if err := srv.Shutdown(ctx); err != nil {
//			log.Error("shutdown error", "error", err)
//		}
//	}
package server
