//go:build !headless

package playback

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/tphakala/go-uisound/internal/pcm"
)

const (
	pollInterval = 10 * time.Millisecond
	bufferSize   = 50 * time.Millisecond
)

// OtoPlayer plays through the default output device. oto allows a
// single context per process, so one OtoPlayer should be shared.
type OtoPlayer struct {
	ctx   *oto.Context
	rate  int
	mutex sync.Mutex
}

// NewOtoPlayer opens the output device for mono 16-bit audio at rate.
func NewOtoPlayer(rate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	<-ready

	return &OtoPlayer{ctx: ctx, rate: rate}, nil
}

// Play blocks until c has been played or ctx is done.
func (dp *OtoPlayer) Play(ctx context.Context, c *pcm.Container) error {
	if c.SampleRate() != dp.rate {
		return fmt.Errorf("%w: container %d Hz, device %d Hz", ErrRateMismatch, c.SampleRate(), dp.rate)
	}

	dp.mutex.Lock()
	defer dp.mutex.Unlock()

	data := c.Bytes()[pcm.HeaderSize:]
	player := dp.ctx.NewPlayer(bytes.NewReader(data))
	defer player.Close()
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return player.Err()
}

// Close suspends the device context.
func (dp *OtoPlayer) Close() error {
	return dp.ctx.Suspend()
}
