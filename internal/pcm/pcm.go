// Package pcm quantizes sample buffers to signed 16-bit integers and
// serializes them as a mono RIFF/WAVE container.
package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/tphakala/go-uisound/internal/mathutil"
	"github.com/tphakala/go-uisound/internal/sample"
)

// ErrUnsupported indicates a decoded file that is not mono 16-bit PCM.
var ErrUnsupported = errors.New("unsupported PCM format")

// Quantize maps each sample to round(clamp(s, -1, 1)·32767). clipped counts
// the samples that had to be clamped; a non-zero value means something
// upstream failed to normalize.
func Quantize(buf sample.Buffer) (out []int16, clipped int) {
	out = make([]int16, buf.Len())
	for i, s := range buf.Samples {
		if s > 1 || s < -1 || math.IsNaN(s) {
			clipped++
		}
		if math.IsNaN(s) {
			s = 0
		}
		out[i] = int16(math.Round(mathutil.Clamp(s, -1, 1) * maxInt16))
	}
	return out, clipped
}

// Dequantize maps 16-bit samples back to [-1, 1].
func Dequantize(samples []int16, rate float64) (sample.Buffer, error) {
	buf, err := sample.New(len(samples), rate)
	if err != nil {
		return sample.Buffer{}, err
	}
	for i, s := range samples {
		buf.Samples[i] = float64(s) / maxInt16
	}
	return buf, nil
}

// Container is an immutable mono 16-bit PCM sound.
type Container struct {
	rate    int
	samples []int16
}

// NewContainer copies samples into a container at rate Hz.
func NewContainer(samples []int16, rate int) (*Container, error) {
	if rate < minRate || rate > maxRate {
		return nil, fmt.Errorf("%w: container sample rate out of range: %d", sample.ErrInvalidConfig, rate)
	}
	if int64(len(samples))*bytesPerSample > maxDataSize {
		return nil, fmt.Errorf("%w: %d samples do not fit a RIFF container", sample.ErrInvalidConfig, len(samples))
	}
	own := make([]int16, len(samples))
	copy(own, samples)
	return &Container{rate: rate, samples: own}, nil
}

// Encode quantizes buf and wraps the result in a container. The buffer rate
// must be a whole number of Hz.
func Encode(buf sample.Buffer) (c *Container, clipped int, err error) {
	if err := sample.ValidateShape(buf.Len(), buf.Rate); err != nil {
		return nil, 0, err
	}
	if buf.Rate != math.Trunc(buf.Rate) {
		return nil, 0, fmt.Errorf("%w: container sample rate must be integral, got %v", sample.ErrInvalidConfig, buf.Rate)
	}
	quantized, clipped := Quantize(buf)
	c, err = NewContainer(quantized, int(buf.Rate))
	if err != nil {
		return nil, 0, err
	}
	return c, clipped, nil
}

// SampleRate returns the rate in Hz.
func (c *Container) SampleRate() int { return c.rate }

// Len returns the number of samples.
func (c *Container) Len() int { return len(c.samples) }

// Samples returns a copy of the quantized samples.
func (c *Container) Samples() []int16 {
	out := make([]int16, len(c.samples))
	copy(out, c.samples)
	return out
}

// DataSize returns the payload size in bytes.
func (c *Container) DataSize() int {
	return len(c.samples) * bytesPerSample
}

// Bytes returns the complete file: 44-byte header followed by the payload.
func (c *Container) Bytes() []byte {
	out := make([]byte, HeaderSize+c.DataSize())
	putHeader(out[:HeaderSize], c.rate, c.DataSize())
	payload := out[HeaderSize:]
	for i, s := range c.samples {
		binary.LittleEndian.PutUint16(payload[i*bytesPerSample:], uint16(s))
	}
	return out
}

// WriteTo implements io.WriterTo.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// IntBuffer converts the container to a go-audio buffer.
func (c *Container) IntBuffer() *audio.IntBuffer {
	data := make([]int, len(c.samples))
	for i, s := range c.samples {
		data[i] = int(s)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: c.rate},
		Data:           data,
		SourceBitDepth: bitsPerSample,
	}
}

// Buffer converts the container back to floating point samples.
func (c *Container) Buffer() (sample.Buffer, error) {
	return Dequantize(c.samples, float64(c.rate))
}

// EncodeContainer serializes samples at rate into a RIFF/WAVE byte stream.
func EncodeContainer(samples []int16, rate int) ([]byte, error) {
	c, err := NewContainer(samples, rate)
	if err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

func putHeader(header []byte, rate, dataSize int) {
	byteRate := rate * monoChannels * bytesPerSample
	blockAlign := monoChannels * bytesPerSample

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffHeaderSize+dataSize))
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], pcmSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormatTag)
	binary.LittleEndian.PutUint16(header[22:24], monoChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))
}
