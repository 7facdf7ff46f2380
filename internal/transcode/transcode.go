// Package transcode converts rendered WAV files to a lossy format with an
// external encoder. Failures here never invalidate the WAV file.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var (
	// ErrUnavailable indicates the encoder binary could not be found.
	ErrUnavailable = errors.New("transcoder unavailable")

	// ErrFailed indicates the encoder ran and reported an error.
	ErrFailed = errors.New("transcoding failed")
)

// Encoder defaults
const (
	DefaultBinary  = "ffmpeg"
	DefaultCodec   = "libmp3lame"
	DefaultBitrate = "128k"

	// DefaultExtension is the file extension matching DefaultCodec.
	DefaultExtension = "mp3"

	maxStderrTail = 512
)

// Transcoder converts the file at inPath into outPath.
type Transcoder interface {
	Transcode(ctx context.Context, inPath, outPath string) error
}

// FFmpeg drives the ffmpeg command line encoder.
type FFmpeg struct {
	Binary     string
	Codec      string
	Bitrate    string
	SampleRate int // 0 keeps the input rate
}

// NewFFmpeg returns an MP3 encoder at 128 kbit/s.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		Binary:  DefaultBinary,
		Codec:   DefaultCodec,
		Bitrate: DefaultBitrate,
	}
}

// Available reports ErrUnavailable if the binary is not on PATH.
func (f *FFmpeg) Available() error {
	if _, err := exec.LookPath(f.Binary); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, f.Binary, err)
	}
	return nil
}

// Args returns the encoder arguments for one conversion.
func (f *FFmpeg) Args(inPath, outPath string) []string {
	args := []string{"-y", "-loglevel", "error", "-i", inPath, "-codec:a", f.Codec, "-b:a", f.Bitrate}
	if f.SampleRate > 0 {
		args = append(args, "-ar", strconv.Itoa(f.SampleRate))
	}
	return append(args, outPath)
}

// Transcode runs the encoder. It returns ErrUnavailable when the binary is
// missing and ErrFailed when it exits with an error.
func (f *FFmpeg) Transcode(ctx context.Context, inPath, outPath string) error {
	if err := f.Available(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, f.Binary, f.Args(inPath, outPath)...) //nolint:gosec // binary is caller configuration
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w%s", ErrFailed, f.Binary, err, tail(stderr.String()))
	}
	return nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) > maxStderrTail {
		s = s[len(s)-maxStderrTail:]
	}
	return ": " + s
}
