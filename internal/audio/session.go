package audio

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Session owns the background music. At most one track plays at a time.
type Session struct {
	player Player
	logger zerolog.Logger

	mu      sync.Mutex
	current Playback
	track   TrackInfo
}

// NewSession creates a Session that plays through player.
func NewSession(player Player, logger zerolog.Logger) *Session {
	if player == nil {
		player = NopPlayer{}
	}
	return &Session{player: player, logger: logger}
}

// Start stops and releases any current track, then starts path.
func (s *Session) Start(ctx context.Context, path string, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	pb, err := s.player.Play(ctx, path, volume)
	if err != nil {
		s.logger.Warn().Err(err).Str("track", path).Msg("failed to start music")
		return err
	}

	s.current = pb
	s.track = ReadTrackInfo(path)
	s.logger.Debug().Str("track", path).Float64("volume", volume).Msg("music started")

	go s.watch(pb)
	return nil
}

// watch reaps pb when it ends and forgets it if it is still current.
func (s *Session) watch(pb Playback) {
	err := pb.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != pb {
		return
	}
	s.current = nil
	s.track = TrackInfo{}

	if err != nil {
		s.logger.Debug().Err(err).Msg("music ended with error")
		return
	}
	s.logger.Debug().Msg("music finished")
}

// NowPlaying describes the current track. ok is false when nothing plays.
func (s *Session) NowPlaying() (info TrackInfo, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track, s.current != nil
}

// Stop stops the current track, if any.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Close releases the session. It is safe to call more than once.
func (s *Session) Close() error {
	s.Stop()
	return nil
}

func (s *Session) stopLocked() {
	if s.current == nil {
		return
	}
	if err := s.current.Stop(); err != nil {
		s.logger.Debug().Err(err).Msg("music stopped with error")
	}
	s.current = nil
	s.track = TrackInfo{}
}
