package local

import (
	"context"
	"testing"
	"time"

	"github.com/mkrell/gameclock-exporter/internal/gameclock"
	"github.com/mkrell/gameclock-exporter/internal/source"
)

// fakeClock is a pinned wall clock for testing
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Since(t time.Time) time.Duration {
	return f.now.Sub(t)
}

func TestReadTicks_ElapsedTime(t *testing.T) {
	epoch := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		rate uint32
		want gameclock.Ticks
	}{
		{"at epoch", epoch, 60, 0},
		{"one second in", epoch.Add(time.Second), 60, 60},
		{"half a second in", epoch.Add(500 * time.Millisecond), 60, 30},
		{"one minute in", epoch.Add(time.Minute), 60, 3600},
		{"custom rate", epoch.Add(2 * time.Second), 1000, 2000},
		{"epoch in the future", epoch.Add(-time.Hour), 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSource(epoch, tt.rate, &fakeClock{now: tt.now})

			got, err := src.ReadTicks(context.Background())
			if err != nil {
				t.Fatalf("ReadTicks() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("ReadTicks() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadTicks_CanceledContext(t *testing.T) {
	src := NewSource(time.Time{}, 60)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.ReadTicks(ctx); err == nil {
		t.Error("ReadTicks() with canceled context should return an error")
	}
}

func TestNewSource_Defaults(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	src := newSource(time.Time{}, 0, clk)

	if src.Name() != source.SourceLocal {
		t.Errorf("Name() = %v, want %v", src.Name(), source.SourceLocal)
	}
	if src.TicksPerSecond() != gameclock.DefaultTicksPerSecond {
		t.Errorf("TicksPerSecond() = %d, want %d", src.TicksPerSecond(), gameclock.DefaultTicksPerSecond)
	}

	// Zero epoch pins the clock start to the moment of creation
	got, err := src.ReadTicks(context.Background())
	if err != nil {
		t.Fatalf("ReadTicks() error = %v", err)
	}
	if got != 0 {
		t.Errorf("ReadTicks() right after creation = %d, want 0", got)
	}

	clk.now = clk.now.Add(3 * time.Second)
	got, err = src.ReadTicks(context.Background())
	if err != nil {
		t.Fatalf("ReadTicks() error = %v", err)
	}
	if got != 3*gameclock.DefaultTicksPerSecond {
		t.Errorf("ReadTicks() after 3s = %d, want %d", got, 3*gameclock.DefaultTicksPerSecond)
	}
}
