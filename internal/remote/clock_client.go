package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mkrell/gameclock-exporter/internal/config"
	"github.com/mkrell/gameclock-exporter/internal/gameclock"
	"github.com/mkrell/gameclock-exporter/internal/logger"
	"github.com/mkrell/gameclock-exporter/internal/source"
)

// Remote read retry constants
const (
	// MaxRetryElapsedTime is the maximum time to spend retrying a failed read
	MaxRetryElapsedTime = 10 * time.Second

	// InitialRetryInterval is the initial backoff interval for retries
	InitialRetryInterval = 100 * time.Millisecond

	// MaxRetryInterval is the maximum backoff interval between retries
	MaxRetryInterval = 2 * time.Second
)

// MaxResponseBytes caps how much of the clock endpoint response is read
const MaxResponseBytes = 4096

// clockResponse is the JSON body served by the game server's clock endpoint
type clockResponse struct {
	Ticks *uint64 `json:"ticks"`
}

// Client reads the game clock from a game server's HTTP clock endpoint and
// implements source.TickSource
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     *logger.Logger
}

// Verify that Client implements source.TickSource
var _ source.TickSource = (*Client)(nil)

// NewClient creates a new remote clock client
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		logger:     log,
	}
}

// Name returns the source kind
func (c *Client) Name() source.SourceType {
	return source.SourceRemote
}

// TicksPerSecond returns the configured tick rate of the remote clock
func (c *Client) TicksPerSecond() uint32 {
	return uint32(c.cfg.TickRate)
}

// ReadTicks obtains the current clock value from the game server with retry logic
func (c *Client) ReadTicks(ctx context.Context) (gameclock.Ticks, error) {
	var result gameclock.Ticks

	// Configure exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = InitialRetryInterval
	bo.MaxInterval = MaxRetryInterval
	bo.MaxElapsedTime = MaxRetryElapsedTime

	operation := func() error {
		ticks, err := c.readTicksInternal(ctx)
		if err != nil {
			c.logger.Debug("Clock endpoint read failed, will retry",
				"url", c.cfg.Remote.URL,
				"error", err)
			return err
		}
		result = ticks
		return nil
	}

	// Retry with exponential backoff
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return 0, fmt.Errorf("clock endpoint %s failed after retries: %w", c.cfg.Remote.URL, err)
	}

	return result, nil
}

// readTicksInternal performs the actual HTTP read without retry logic
func (c *Client) readTicksInternal(ctx context.Context) (gameclock.Ticks, error) {
	// Create context with timeout for the read (from config)
	readTimeout := time.Duration(c.cfg.ReadTimeout) * time.Second
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Remote.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build clock request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("clock request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to read clock response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("clock endpoint returned status %d", resp.StatusCode)
	}

	return parseClockResponse(body)
}

// parseClockResponse decodes a clock endpoint body into a tick count
func parseClockResponse(body []byte) (gameclock.Ticks, error) {
	var cr clockResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return 0, fmt.Errorf("failed to parse clock response: %w", err)
	}

	if cr.Ticks == nil {
		return 0, fmt.Errorf("clock response missing \"ticks\" field")
	}

	// The game clock is a 32-bit counter; anything larger is a server bug
	if *cr.Ticks > math.MaxUint32 {
		return 0, fmt.Errorf("tick value %d out of 32-bit range", *cr.Ticks)
	}

	return gameclock.Ticks(*cr.Ticks), nil
}
