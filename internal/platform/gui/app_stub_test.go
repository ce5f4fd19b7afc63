//go:build !ebiten

package gui

import (
	"errors"
	"testing"
)

func TestRunUnavailable(t *testing.T) {
	if err := Run(Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, expected ErrUnavailable", err)
	}
}
