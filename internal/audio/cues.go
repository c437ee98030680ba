package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/handiism/game-manager/internal/app"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Cue is a short feedback sound.
type Cue int

const (
	CueSuccess Cue = iota + 1
	CueError
	CueSelect
	CueBack
	CueMessage
)

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	return []Cue{CueSuccess, CueError, CueSelect, CueBack, CueMessage}
}

// FileName returns the default sound file of the cue.
func (c Cue) FileName() string {
	switch c {
	case CueSuccess:
		return "Success.wav"
	case CueError:
		return "Error.wav"
	case CueSelect:
		return "Select.wav"
	case CueBack:
		return "Back.wav"
	case CueMessage:
		return "Message.wav"
	default:
		return ""
	}
}

func (c Cue) String() string {
	switch c {
	case CueSuccess:
		return "success"
	case CueError:
		return "error"
	case CueSelect:
		return "select"
	case CueBack:
		return "back"
	case CueMessage:
		return "message"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// ErrUnsupportedAudio is recorded for cue files whose header is not a
// known audio format.
var ErrUnsupportedAudio = errors.New("unsupported audio file")

// probeLimit bounds how many cue files are inspected at once.
const probeLimit = 4

// Cues plays feedback sounds.
//
// A cue whose file is missing or unreadable is disabled; playing it does
// nothing. A nil *Cues is valid and silent.
type Cues struct {
	player Player
	volume float64
	hold   time.Duration
	logger zerolog.Logger

	files map[Cue]string
}

// LoadCues looks for the default cue files in dir and checks each one in
// parallel. Only cancellation of ctx makes it fail.
//
// hold is how long Play lets a cue sound before stopping it; zero lets
// every cue play to the end.
func LoadCues(ctx context.Context, player Player, dir string, volume float64, hold time.Duration, logger zerolog.Logger) (*Cues, error) {
	if player == nil {
		player = NopPlayer{}
	}
	c := &Cues{
		player: player,
		volume: volume,
		hold:   hold,
		logger: logger,
		files:  make(map[Cue]string),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeLimit)

	for _, cue := range AllCues() {
		path := filepath.Join(dir, cue.FileName())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := probe(path)
			switch {
			case err == nil:
				mu.Lock()
				c.files[cue] = path
				mu.Unlock()
			case errors.Is(err, fs.ErrNotExist):
				logger.Debug().Stringer("cue", cue).Str("file", path).Msg("cue file missing, cue disabled")
			default:
				logger.Warn().Err(err).Stringer("cue", cue).Str("file", path).Msg("cue file unusable, cue disabled")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("enabled", len(c.files)).Msg("cues loaded")
	return c, nil
}

// Play sounds cue and blocks until it has finished or the hold time has
// passed, whichever comes first.
func (c *Cues) Play(ctx context.Context, cue Cue) {
	if c == nil {
		return
	}
	path, ok := c.files[cue]
	if !ok {
		return
	}

	pb, err := c.player.Play(ctx, path, c.volume)
	if err != nil {
		c.logger.Debug().Err(err).Stringer("cue", cue).Msg("failed to play cue")
		return
	}

	done := make(chan error, 1)
	go func() {
		done <- pb.Wait()
	}()

	var timeout <-chan time.Time
	if c.hold > 0 {
		timer := time.NewTimer(c.hold)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-done:
		return
	case <-timeout:
	case <-ctx.Done():
	}
	_ = pb.Stop()
	<-done
}

// Notify plays the success cue after a successful add or remove and the
// error cue after any failed command. It implements app.Notifier.
func (c *Cues) Notify(res app.Result) {
	if cue, ok := CueFor(res); ok {
		c.Play(context.Background(), cue)
	}
}

// CueFor picks the cue that acknowledges res, if any.
func CueFor(res app.Result) (Cue, bool) {
	switch {
	case !res.Outcome.OK():
		return CueError, true
	case res.Command.Mutates():
		return CueSuccess, true
	default:
		return 0, false
	}
}

// audioMagic holds the leading bytes of supported formats.
var audioMagic = [][]byte{
	[]byte("RIFF"), // WAV
	[]byte("ID3"),  // MP3 with ID3v2 tag
	[]byte("OggS"), // Ogg Vorbis
	[]byte("fLaC"), // FLAC
}

// probe checks that path is a readable file starting with a known audio
// header.
func probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedAudio, err)
	}

	for _, magic := range audioMagic {
		if bytes.HasPrefix(header, magic) {
			return nil
		}
	}
	// Bare MPEG frame sync.
	if header[0] == 0xFF && header[1]&0xE0 == 0xE0 {
		return nil
	}
	return ErrUnsupportedAudio
}
