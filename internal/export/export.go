// Package export persists rendered sounds and optionally transcodes them.
// A failure for one sound is recorded in its Result and never stops the
// others.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	uisound "github.com/tphakala/go-uisound"
	"github.com/tphakala/go-uisound/internal/pcm"
	"github.com/tphakala/go-uisound/internal/transcode"
)

// Status classifies the outcome of one export.
type Status int

const (
	// StatusOK means the WAV file, and the encoded file if requested, were
	// written.
	StatusOK Status = iota

	// StatusConfigError means the sound could not be rendered.
	StatusConfigError

	// StatusWriteError means the WAV file could not be written.
	StatusWriteError

	// StatusCollaboratorFailure means the WAV file was written but the
	// transcoder was unavailable or failed.
	StatusCollaboratorFailure
)

var statusNames = map[Status]string{
	StatusOK:                  "ok",
	StatusConfigError:         "config-error",
	StatusWriteError:          "write-error",
	StatusCollaboratorFailure: "transcode-failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

const (
	wavExtension = ".wav"
	dirPerm      = 0o755
	filePerm     = 0o644
)

// Result reports one exported sound.
type Result struct {
	Name        string
	WAVPath     string // empty unless the WAV file was written
	EncodedPath string // empty unless transcoding succeeded
	Status      Status
	Err         error
}

// Exporter writes sounds as <Dir>/<name>.wav.
type Exporter struct {
	Dir string

	// Transcoder, when set, converts each WAV file to <name>.<Extension>.
	Transcoder transcode.Transcoder
	Extension  string
}

// New returns an exporter writing WAV files only.
func New(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// WithTranscoder enables transcoding to files with extension ext.
func (e *Exporter) WithTranscoder(t transcode.Transcoder, ext string) *Exporter {
	e.Transcoder = t
	e.Extension = strings.TrimPrefix(ext, ".")
	return e
}

// Export writes c under name.
func (e *Exporter) Export(ctx context.Context, name string, c *pcm.Container) Result {
	res := Result{Name: name}
	if name == "" || name != filepath.Base(name) {
		res.Status = StatusWriteError
		res.Err = fmt.Errorf("invalid file name %q", name)
		return res
	}

	if err := os.MkdirAll(e.Dir, dirPerm); err != nil {
		res.Status = StatusWriteError
		res.Err = fmt.Errorf("create output directory: %w", err)
		return res
	}

	wavPath := filepath.Join(e.Dir, name+wavExtension)
	if err := writeFile(wavPath, c); err != nil {
		res.Status = StatusWriteError
		res.Err = err
		return res
	}
	res.WAVPath = wavPath

	if e.Transcoder == nil {
		return res
	}
	encPath := filepath.Join(e.Dir, name+"."+e.extension())
	if err := e.Transcoder.Transcode(ctx, wavPath, encPath); err != nil {
		res.Status = StatusCollaboratorFailure
		res.Err = err
		return res
	}
	res.EncodedPath = encPath
	return res
}

// ExportAll exports every successfully rendered sound and carries render
// failures through as StatusConfigError.
func (e *Exporter) ExportAll(ctx context.Context, rendered []uisound.Result) []Result {
	out := make([]Result, 0, len(rendered))
	for _, r := range rendered {
		if r.Err != nil {
			out = append(out, Result{Name: r.Name, Status: StatusConfigError, Err: r.Err})
			continue
		}
		out = append(out, e.Export(ctx, r.Sound.Name, r.Sound.Container))
	}
	return out
}

// Failed reports whether any sound is missing its WAV file. Transcoder
// failures do not count; the WAV file is the deliverable.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusConfigError || r.Status == StatusWriteError {
			return true
		}
	}
	return false
}

// IsCollaboratorFailure reports whether err came from the transcoder.
func IsCollaboratorFailure(err error) bool {
	return errors.Is(err, transcode.ErrUnavailable) || errors.Is(err, transcode.ErrFailed)
}

func (e *Exporter) extension() string {
	if e.Extension == "" {
		return transcode.DefaultExtension
	}
	return e.Extension
}

// writeFile writes through a temporary file in the same directory so a
// failed write never leaves a truncated WAV behind.
func writeFile(path string, c *pcm.Container) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".uisound-*"+wavExtension)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := c.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
