package store

import (
	"bytes"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/game-manager/internal/io"
	"github.com/handiism/game-manager/internal/model"
	"github.com/kjk/common/atomicfile"
	"github.com/rs/zerolog"
)

// Store owns one catalog file.
//
// Store keeps no catalog in memory between calls: each operation reads the
// file, and Add and Remove write it back in full. A missing file reads as
// an empty catalog.
type Store struct {
	path   string
	codec  Codec
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCodec forces a document format instead of the one implied by the
// file extension.
func WithCodec(codec Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// New creates a Store for the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		codec:  CodecFor(path),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("catalog", path).Str("format", s.codec.Name()).Logger()
	return s
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// Codec returns the document format in use.
func (s *Store) Codec() Codec {
	return s.codec
}

// Init makes sure the catalog file exists, creating its directory and an
// empty catalog when it does not. An existing file is left untouched.
func (s *Store) Init() error {
	exists, err := ioutils.Exists(s.path)
	if err != nil {
		return &StorageError{Op: "init", Path: s.path, Err: err}
	}
	if exists {
		s.logger.Debug().Msg("catalog file already exists")
		return nil
	}

	if err := ioutils.EnsureDir(filepath.Dir(s.path)); err != nil {
		return &StorageError{Op: "init", Path: s.path, Err: err}
	}
	if err := s.Save(model.Catalog{}); err != nil {
		return err
	}
	s.logger.Info().Msg("created empty catalog")
	return nil
}

// Load reads the whole catalog from disk.
func (s *Store) Load() (model.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Msg("catalog file missing, using empty catalog")
			return model.Catalog{}, nil
		}
		s.logger.Error().Err(err).Msg("failed to read catalog")
		return model.Catalog{}, &StorageError{Op: "load", Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return model.Catalog{}, nil
	}

	c, err := s.codec.Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Error().Err(err).Msg("malformed catalog document")
		return model.Catalog{}, &StorageError{Op: "load", Path: s.path, Err: err}
	}

	s.logger.Debug().Int("games", c.Len()).Msg("catalog loaded")
	return c, nil
}

// Save replaces the catalog file with c.
//
// The document is written to a temporary file that is renamed over the
// catalog only once it is complete, so on any failure the previous file is
// left as it was.
func (s *Store) Save(c model.Catalog) error {
	if err := s.write(c); err != nil {
		s.logger.Error().Err(err).Msg("failed to write catalog")
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	s.logger.Debug().Int("games", c.Len()).Msg("catalog saved")
	return nil
}

func (s *Store) write(c model.Catalog) error {
	f, err := atomicfile.New(s.path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if err := s.codec.Encode(f, c); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Temporary files are created 0600.
	if err := os.Chmod(s.path, ioutils.FileMode); err != nil {
		s.logger.Warn().Err(err).Msg("failed to set catalog permissions")
	}
	return nil
}

// Add appends a game to the end of the catalog and saves it.
//
// priceText is parsed before anything else; if it is not a number a
// *PriceError matching ErrInvalidInput is returned and the file is neither
// read nor written. Names may repeat.
func (s *Store) Add(name, genre, priceText string) (model.Game, error) {
	price, err := model.ParsePrice(priceText)
	if err != nil {
		s.logger.Debug().Str("price", priceText).Msg("rejected price")
		return model.Game{}, &PriceError{Text: priceText, Err: err}
	}

	c, err := s.Load()
	if err != nil {
		return model.Game{}, err
	}

	game := model.NewGame(name, genre, price)
	c.Append(game)
	if err := s.Save(c); err != nil {
		return model.Game{}, err
	}

	s.logger.Info().Str("name", name).Float64("price", price).Msg("game added")
	return game, nil
}

// Remove deletes the first game whose name equals name exactly and saves
// the catalog. When nothing matches, a *NotFoundError matching ErrNotFound
// is returned and the file is not written.
func (s *Store) Remove(name string) (model.Game, error) {
	c, err := s.Load()
	if err != nil {
		return model.Game{}, err
	}

	i := c.IndexOf(name)
	if i < 0 {
		return model.Game{}, &NotFoundError{Name: name}
	}

	removed := c.RemoveAt(i)
	if err := s.Save(c); err != nil {
		return model.Game{}, err
	}

	s.logger.Info().Str("name", name).Int("index", i).Msg("game removed")
	return removed, nil
}

// Find returns the first game whose name equals name exactly.
func (s *Store) Find(name string) (model.Game, error) {
	c, err := s.Load()
	if err != nil {
		return model.Game{}, err
	}

	i := c.IndexOf(name)
	if i < 0 {
		return model.Game{}, &NotFoundError{Name: name}
	}
	return c.Games[i], nil
}

// List reads the catalog and returns its games in stored order.
//
// The file is read once, when List is called; the returned sequence walks
// that snapshot. Call List again to observe later changes.
func (s *Store) List() (iter.Seq[model.Game], error) {
	c, err := s.Load()
	if err != nil {
		return nil, err
	}
	return c.All(), nil
}

// MostExpensive returns the game with the highest price, the earliest one
// on ties. It returns ErrEmptyCatalog when there are no games.
func (s *Store) MostExpensive() (model.Game, error) {
	return s.extreme((*model.Catalog).MostExpensive)
}

// Cheapest returns the game with the lowest price, the earliest one on
// ties. It returns ErrEmptyCatalog when there are no games.
func (s *Store) Cheapest() (model.Game, error) {
	return s.extreme((*model.Catalog).Cheapest)
}

func (s *Store) extreme(pick func(*model.Catalog) (model.Game, bool)) (model.Game, error) {
	c, err := s.Load()
	if err != nil {
		return model.Game{}, err
	}

	g, ok := pick(&c)
	if !ok {
		return model.Game{}, ErrEmptyCatalog
	}
	return g, nil
}
