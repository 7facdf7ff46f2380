package playback

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/tphakala/go-uisound/internal/pcm"
)

// CommandPlayer plays through the platform's audio command line tool.
type CommandPlayer struct {
	command string
	args    []string
}

// NewCommandPlayer detects a player for the current platform.
func NewCommandPlayer() (*CommandPlayer, error) {
	cmd, args := detectCommand()
	if cmd == "" {
		return nil, fmt.Errorf("%w: no player command on %s", ErrNoDevice, runtime.GOOS)
	}
	return &CommandPlayer{command: cmd, args: args}, nil
}

// NewCommandPlayerWith uses the given command. The WAV path is appended
// to args.
func NewCommandPlayerWith(command string, args ...string) (*CommandPlayer, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return &CommandPlayer{command: path, args: args}, nil
}

// Command returns the resolved player binary.
func (p *CommandPlayer) Command() string { return p.command }

// Play writes c to a temporary file and runs the player on it.
func (p *CommandPlayer) Play(ctx context.Context, c *pcm.Container) error {
	tmpFile, err := os.CreateTemp("", "uisound-*.wav")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // best effort cleanup

	if _, err := c.WriteTo(tmpFile); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.command, p.buildArgs(tmpPath)...) //nolint:gosec // command resolved at construction
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", p.command, err)
	}
	return nil
}

// Close does nothing; each Play runs its own process.
func (p *CommandPlayer) Close() error { return nil }

// buildArgs returns a fresh slice so concurrent plays never share one.
func (p *CommandPlayer) buildArgs(path string) []string {
	if runtime.GOOS == "windows" && len(p.args) == 0 {
		return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)}
	}
	args := make([]string, len(p.args)+1)
	copy(args, p.args)
	args[len(args)-1] = path
	return args
}

// detectCommand returns the player binary and its base arguments, or an
// empty command if none is installed.
func detectCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}
		}
	case "windows":
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil
		}
	}
	return "", nil
}
