package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/session"
)

func TestSimulate(t *testing.T) {
	sess, err := session.New(session.Config{Width: 8, Height: 8, Density: 0.4, Seed: 3, Start: "random"})
	if err != nil {
		t.Fatal(err)
	}

	logger := log.New(io.Discard)
	if err := simulate(context.Background(), sess, 25, 5, logger); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if sess.Generation() != 25 {
		t.Errorf("Generation() = %d, expected 25", sess.Generation())
	}
}

func TestSimulateStopsOnCancel(t *testing.T) {
	sess, err := session.New(session.Config{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = simulate(ctx, sess, 100, 0, log.New(io.Discard))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("simulate() error = %v, expected context.Canceled", err)
	}
	if sess.Generation() != 0 {
		t.Errorf("Generation() = %d, expected 0", sess.Generation())
	}
}
