// Package remote provides an HTTP client for a game server's clock endpoint.
//
// This package implements a source.TickSource that reads the current game
// clock value over HTTP. It handles:
//   - Per-read timeouts from configuration
//   - Exponential-backoff retry for transient failures
//   - Response parsing and 32-bit range validation
//
// The endpoint contract is a GET returning a JSON body:
//
//	{"ticks": 123456}
//
// Example usage:
//
//	cfg := &config.Config{
//		Remote:      config.RemoteSource{URL: "http://gameserver:9090/clock"},
//		TickRate:    60,
//		ReadTimeout: 10,
//	}
//
//	client := remote.NewClient(cfg, log)
//	ticks, err := client.ReadTicks(context.Background())
//	if err != nil {
//		log.Error("clock read failed", "error", err)
//	}
package remote
