//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var events []image.Rectangle
	newApp := func(h HAL) func() error {
		obs := h.Obstruction()
		return func() error {
			steps++
			for {
				select {
				case r := <-obs.Events():
					events = append(events, r)
				default:
					return nil
				}
			}
		}
	}

	cfg := HeadlessConfig{
		Host:      HostConfig{Screen: Screen{Width: 144, Height: 168}},
		Hz:        1000,
		Ticks:     1020,
		PeekEvery: 1,
	}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless() = %v", err)
	}
	if steps != 1020 {
		t.Fatalf("steps = %d, want 1020", steps)
	}
	if len(events) == 0 {
		t.Fatalf("no obstruction events after PeekEvery elapsed")
	}
	if got, want := events[len(events)-1], image.Rect(0, 0, 144, 117); got != want {
		t.Fatalf("last event = %v, want %v", got, want)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) func() error {
		return func() error { return boom }
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless() = %v, want %v", err, context.Canceled)
	}
}
