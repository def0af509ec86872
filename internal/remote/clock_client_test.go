package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mkrell/gameclock-exporter/internal/config"
	"github.com/mkrell/gameclock-exporter/internal/gameclock"
	"github.com/mkrell/gameclock-exporter/internal/logger"
	"github.com/mkrell/gameclock-exporter/internal/source"
)

// testLogger creates a logger for testing (error level to suppress test output)
func testLogger() *logger.Logger {
	return logger.New("error", "text")
}

// testClient builds a client pointed at the given test server URL
func testClient(url string) *Client {
	cfg := &config.Config{
		Source:      "remote",
		TickRate:    60,
		Remote:      config.RemoteSource{URL: url},
		ReadTimeout: 2,
	}
	return NewClient(cfg, testLogger())
}

func TestReadTicks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %v, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"ticks": 216000}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	got, err := client.ReadTicks(context.Background())
	if err != nil {
		t.Fatalf("ReadTicks() error = %v, want nil", err)
	}
	if got != gameclock.Ticks(216000) {
		t.Errorf("ReadTicks() = %d, want 216000", got)
	}
}

func TestReadTicks_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail the first two reads, then succeed
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if _, err := w.Write([]byte(`{"ticks": 42}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	got, err := client.ReadTicks(context.Background())
	if err != nil {
		t.Fatalf("ReadTicks() error = %v, want nil after retries", err)
	}
	if got != gameclock.Ticks(42) {
		t.Errorf("ReadTicks() = %d, want 42", got)
	}
	if calls.Load() != 3 {
		t.Errorf("endpoint called %d times, want 3", calls.Load())
	}
}

func TestReadTicks_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.ReadTicks(ctx); err == nil {
		t.Error("ReadTicks() with canceled context should return an error")
	}
}

func TestParseClockResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    gameclock.Ticks
		wantErr bool
	}{
		{"valid", `{"ticks": 3600}`, 3600, false},
		{"zero", `{"ticks": 0}`, 0, false},
		{"max 32-bit", `{"ticks": 4294967295}`, 4294967295, false},
		{"out of range", `{"ticks": 4294967296}`, 0, true},
		{"missing field", `{"frames": 10}`, 0, true},
		{"not json", `ticks=10`, 0, true},
		{"negative", `{"ticks": -1}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClockResponse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseClockResponse(%s) error = nil, want error", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClockResponse(%s) error = %v, want nil", tt.body, err)
			}
			if got != tt.want {
				t.Errorf("parseClockResponse(%s) = %d, want %d", tt.body, got, tt.want)
			}
		})
	}
}

func TestName_ReportsRemote(t *testing.T) {
	client := testClient("http://gameserver:9090/clock")

	if client.Name() != source.SourceRemote {
		t.Errorf("Name() = %v, want %v", client.Name(), source.SourceRemote)
	}
	if client.TicksPerSecond() != 60 {
		t.Errorf("TicksPerSecond() = %d, want 60", client.TicksPerSecond())
	}
}
