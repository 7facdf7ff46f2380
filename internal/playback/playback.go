// Package playback sends rendered containers to an audio output.
package playback

import (
	"context"
	"errors"

	"github.com/tphakala/go-uisound/internal/pcm"
)

var (
	// ErrNoDevice indicates no audio output is available on this system.
	ErrNoDevice = errors.New("no audio output available")

	// ErrRateMismatch indicates a container whose rate differs from the
	// rate the output was opened at.
	ErrRateMismatch = errors.New("sample rate mismatch")
)

// Player plays a container to completion or until ctx is cancelled.
type Player interface {
	Play(ctx context.Context, c *pcm.Container) error
	Close() error
}

// Noop discards everything. Use it when playback is disabled.
type Noop struct{}

// Play does nothing.
func (Noop) Play(context.Context, *pcm.Container) error { return nil }

// Close does nothing.
func (Noop) Close() error { return nil }

// Open returns a device player at rate, falling back to the system
// command player when the device cannot be opened.
func Open(rate int) (Player, error) {
	dev, devErr := NewOtoPlayer(rate)
	if devErr == nil {
		return dev, nil
	}
	cmd, err := NewCommandPlayer()
	if err != nil {
		return nil, errors.Join(devErr, err)
	}
	return cmd, nil
}
