//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host       HostConfig
	Hz         int
	Ticks      uint64
	StepBudget int
	// PeekEvery toggles the quick-view panel every so many seconds; zero
	// leaves it hidden.
	PeekEvery int
}

// RunHeadless runs the face without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Host)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	peekTicks := uint64(cfg.PeekEvery) * uint64(cfg.Hz)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			tick++
			if peekTicks > 0 && tick%peekTicks == 0 {
				h.peek.Toggle()
				h.logger.WriteLineString(fmt.Sprintf("hal: quick view peeking=%v", h.peek.Peeking()))
			}
			h.peek.advance()
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
