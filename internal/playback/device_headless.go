//go:build headless

package playback

import (
	"context"

	"github.com/tphakala/go-uisound/internal/pcm"
)

// OtoPlayer is unavailable in headless builds.
type OtoPlayer struct{}

// NewOtoPlayer always fails in headless builds.
func NewOtoPlayer(int) (*OtoPlayer, error) {
	return nil, ErrNoDevice
}

// Play always fails in headless builds.
func (*OtoPlayer) Play(context.Context, *pcm.Container) error {
	return ErrNoDevice
}

// Close is a no-op.
func (*OtoPlayer) Close() error {
	return nil
}
