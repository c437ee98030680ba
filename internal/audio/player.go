package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrNoPlayer is returned by NewExecPlayer when no player program is found.
var ErrNoPlayer = errors.New("no audio player found on PATH")

// Player starts playback of audio files.
type Player interface {
	// Play starts playing path at volume (0 to 1) and returns immediately.
	Play(ctx context.Context, path string, volume float64) (Playback, error)
}

// Playback is one running playback.
type Playback interface {
	// Wait blocks until playback ends on its own or is stopped.
	Wait() error

	// Stop ends playback early. Calling Stop more than once is allowed.
	Stop() error
}

// NopPlayer plays nothing. Its playbacks are finished as soon as they start.
type NopPlayer struct{}

// Play implements Player.
func (NopPlayer) Play(context.Context, string, float64) (Playback, error) {
	return nopPlayback{}, nil
}

type nopPlayback struct{}

func (nopPlayback) Wait() error { return nil }
func (nopPlayback) Stop() error { return nil }

// knownPlayers are tried in order when no command is configured.
var knownPlayers = []string{"ffplay", "paplay", "afplay", "aplay"}

// ExecPlayer plays files by running an external program.
type ExecPlayer struct {
	command string
}

// NewExecPlayer creates an ExecPlayer for command. An empty command picks
// the first of ffplay, paplay, afplay and aplay found on PATH.
func NewExecPlayer(command string) (*ExecPlayer, error) {
	if command != "" {
		path, err := exec.LookPath(command)
		if err != nil {
			return nil, fmt.Errorf("audio player %q: %w", command, err)
		}
		return &ExecPlayer{command: path}, nil
	}

	for _, name := range knownPlayers {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecPlayer{command: path}, nil
		}
	}
	return nil, ErrNoPlayer
}

// Command returns the resolved player program.
func (p *ExecPlayer) Command() string {
	return p.command
}

// Play implements Player.
func (p *ExecPlayer) Play(ctx context.Context, path string, volume float64) (Playback, error) {
	cmd := exec.CommandContext(ctx, p.command, playerArgs(p.command, path, volume)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", filepath.Base(p.command), err)
	}
	return &execPlayback{cmd: cmd}, nil
}

// playerArgs builds the argument list understood by each known player.
func playerArgs(command, path string, volume float64) []string {
	volume = min(max(volume, 0), 1)

	switch strings.TrimSuffix(filepath.Base(command), ".exe") {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet",
			"-volume", strconv.Itoa(int(volume * 100)), path}
	case "paplay":
		return []string{"--volume=" + strconv.Itoa(int(volume*65536)), path}
	case "afplay":
		return []string{"-v", strconv.FormatFloat(volume, 'f', 2, 64), path}
	case "aplay":
		return []string{"-q", path}
	default:
		return []string{path}
	}
}

type execPlayback struct {
	cmd *exec.Cmd

	waitOnce sync.Once
	waitErr  error

	mu      sync.Mutex
	stopped bool
}

func (p *execPlayback) Wait() error {
	p.waitOnce.Do(func() {
		p.waitErr = p.cmd.Wait()
	})

	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()
	if stopped {
		// Being killed by Stop is the expected way to end early.
		return nil
	}
	return p.waitErr
}

func (p *execPlayback) Stop() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return p.Wait()
}
