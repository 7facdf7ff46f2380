package pcm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// Decode reads a mono 16-bit WAV stream.
func Decode(r io.ReadSeeker) (*Container, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV stream", ErrUnsupported)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels != monoChannels {
		return nil, fmt.Errorf("%w: expected mono audio", ErrUnsupported)
	}
	if decoder.BitDepth != bitsPerSample {
		return nil, fmt.Errorf("%w: expected 16-bit samples, got %d", ErrUnsupported, decoder.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return NewContainer(samples, buf.Format.SampleRate)
}

// DecodeBytes decodes an in-memory WAV file.
func DecodeBytes(data []byte) (*Container, error) {
	return Decode(bytes.NewReader(data))
}
