package audio

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/handiism/game-manager/internal/app"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayer records plays. Playbacks last until stopped unless finish is set.
type fakePlayer struct {
	mu     sync.Mutex
	played []string
	live   []*fakePlayback
	finish bool
}

func (p *fakePlayer) Play(_ context.Context, path string, _ float64) (Playback, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pb := &fakePlayback{done: make(chan struct{})}
	if p.finish {
		close(pb.done)
	}
	p.played = append(p.played, path)
	p.live = append(p.live, pb)
	return pb, nil
}

func (p *fakePlayer) plays() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.played...)
}

type fakePlayback struct {
	once    sync.Once
	done    chan struct{}
	stopped bool
}

func (p *fakePlayback) Wait() error {
	<-p.done
	return nil
}

func (p *fakePlayback) Stop() error {
	p.once.Do(func() {
		p.stopped = true
		select {
		case <-p.done:
		default:
			close(p.done)
		}
	})
	return nil
}

func writeWAV(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF\x24\x00\x00\x00WAVEfmt "), 0644))
	return path
}

func TestPlayerArgs(t *testing.T) {
	tests := []struct {
		command string
		volume  float64
		want    []string
	}{
		{"/usr/bin/ffplay", 0.5, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", "50", "a.wav"}},
		{"paplay", 1, []string{"--volume=65536", "a.wav"}},
		{"afplay", 0.25, []string{"-v", "0.25", "a.wav"}},
		{"aplay", 0.5, []string{"-q", "a.wav"}},
		{"ffplay", 3, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", "100", "a.wav"}},
		{"mpv", 0.5, []string{"a.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.want, playerArgs(tt.command, "a.wav", tt.volume))
		})
	}
}

func TestNewExecPlayer_UnknownCommand(t *testing.T) {
	_, err := NewExecPlayer("definitely-not-a-real-player-binary")
	assert.Error(t, err)
}

func TestSession_StartStopsPrevious(t *testing.T) {
	player := &fakePlayer{}
	s := NewSession(player, zerolog.Nop())

	require.NoError(t, s.Start(context.Background(), "first.wav", 0.5))
	require.NoError(t, s.Start(context.Background(), "Menu 2.wav", 0.5))

	require.Len(t, player.live, 2)
	assert.True(t, player.live[0].stopped)
	assert.False(t, player.live[1].stopped)

	info, ok := s.NowPlaying()
	require.True(t, ok)
	assert.Equal(t, "Menu 2", info.Title)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, player.live[1].stopped)

	_, ok = s.NowPlaying()
	assert.False(t, ok)
}

func TestSession_TrackEndingOnItsOwnIsForgotten(t *testing.T) {
	player := &fakePlayer{finish: true}
	s := NewSession(player, zerolog.Nop())

	require.NoError(t, s.Start(context.Background(), "Menu 2.wav", 0.5))

	assert.Eventually(t, func() bool {
		_, ok := s.NowPlaying()
		return !ok
	}, time.Second, 5*time.Millisecond)
	assert.NoError(t, s.Close())
}

func TestSession_FinishedTrackDoesNotClearNewerOne(t *testing.T) {
	player := &fakePlayer{}
	s := NewSession(player, zerolog.Nop())
	defer s.Close()

	require.NoError(t, s.Start(context.Background(), "first.wav", 0.5))
	require.NoError(t, s.Start(context.Background(), "second.wav", 0.5))

	// Give the watcher of the stopped first track time to run.
	time.Sleep(20 * time.Millisecond)

	info, ok := s.NowPlaying()
	require.True(t, ok)
	assert.Equal(t, "second", info.Title)
}

func TestReadTrackInfo_Untagged(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "Menu 2.wav")

	info := ReadTrackInfo(path)
	assert.Equal(t, "Menu 2", info.Title)
	assert.Empty(t, info.Artist)
	assert.Equal(t, "Menu 2", info.String())

	missing := ReadTrackInfo(filepath.Join(t.TempDir(), "gone.mp3"))
	assert.Equal(t, "gone", missing.Title)
}

func TestTrackInfo_String(t *testing.T) {
	assert.Equal(t, "Theme - Band", TrackInfo{Title: "Theme", Artist: "Band"}.String())
}

func TestLoadCues_DisablesMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, CueSuccess.FileName())
	writeWAV(t, dir, CueSelect.FileName())
	require.NoError(t, os.WriteFile(filepath.Join(dir, CueError.FileName()), []byte("not audio"), 0644))

	cues, err := LoadCues(context.Background(), &fakePlayer{}, dir, 1, 0, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, map[Cue]string{
		CueSuccess: filepath.Join(dir, CueSuccess.FileName()),
		CueSelect:  filepath.Join(dir, CueSelect.FileName()),
	}, cues.files)
}

func TestLoadCues_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadCues(ctx, NopPlayer{}, t.TempDir(), 1, 0, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCues_PlayHoldStopsLongSounds(t *testing.T) {
	dir := t.TempDir()
	path := writeWAV(t, dir, CueSelect.FileName())
	player := &fakePlayer{}

	cues, err := LoadCues(context.Background(), player, dir, 1, 20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)

	start := time.Now()
	cues.Play(context.Background(), CueSelect)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	assert.Equal(t, []string{path}, player.plays())
	assert.True(t, player.live[0].stopped)

	cues.Play(context.Background(), CueBack)
	assert.Len(t, player.plays(), 1, "disabled cue must not play")
}

func TestCues_PlayReturnsWhenSoundEnds(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, CueMessage.FileName())
	player := &fakePlayer{finish: true}

	cues, err := LoadCues(context.Background(), player, dir, 1, time.Hour, zerolog.Nop())
	require.NoError(t, err)

	cues.Play(context.Background(), CueMessage)
	assert.Len(t, player.plays(), 1)
	assert.False(t, player.live[0].stopped)
}

func TestNilCuesAreSilent(t *testing.T) {
	var cues *Cues
	cues.Play(context.Background(), CueSuccess)
	cues.Notify(app.Result{Outcome: app.OutcomeNotFound})
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name   string
		res    app.Result
		want   Cue
		wantOK bool
	}{
		{"added", app.Result{Command: app.CommandAdd, Outcome: app.OutcomeSuccess}, CueSuccess, true},
		{"removed", app.Result{Command: app.CommandRemove, Outcome: app.OutcomeSuccess}, CueSuccess, true},
		{"bad price", app.Result{Command: app.CommandAdd, Outcome: app.OutcomeInvalidInput}, CueError, true},
		{"not found", app.Result{Command: app.CommandRemove, Outcome: app.OutcomeNotFound}, CueError, true},
		{"empty", app.Result{Command: app.CommandCheapest, Outcome: app.OutcomeEmptyCatalog}, CueError, true},
		{"list", app.Result{Command: app.CommandList, Outcome: app.OutcomeSuccess}, 0, false},
		{"cheapest", app.Result{Command: app.CommandCheapest, Outcome: app.OutcomeSuccess}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.res)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
