package app

import (
	"fmt"
	"slices"

	"github.com/handiism/game-manager/internal/model"
	"github.com/handiism/game-manager/internal/store"
	"github.com/rs/zerolog"
)

// User-facing messages.
const (
	MsgAdded         = "Game added successfully."
	MsgRemoved       = "Game erased successfully."
	MsgInvalidPrice  = "Invalid number format."
	MsgNotFound      = "Sorry, game not found."
	MsgNoGames       = "Sorry, there are no saved games."
	MsgEmptyList     = "There are no saved games yet."
	MsgGoodbye       = "See you next time, take care user."
	MsgWrongKey      = "Wrong key, you must use numbers"
	MsgOutOfRange    = "User you must choose from 1 to 6."
	msgStorageFormat = "Could not access the game database: %v"
)

// Notifier is told about every executed command.
type Notifier interface {
	Notify(Result)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Result)

// Notify calls f(r).
func (f NotifierFunc) Notify(r Result) {
	f(r)
}

// Service executes menu commands against a catalog store.
type Service struct {
	store    *store.Store
	notifier Notifier
	logger   zerolog.Logger
}

// NewService creates a Service. notifier may be nil.
func NewService(st *store.Store, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Init prepares the catalog file.
func (s *Service) Init() error {
	return s.store.Init()
}

// Execute runs one request. Failures are reported through the Result.
func (s *Service) Execute(req Request) Result {
	res := s.execute(req)
	res.Command = req.Command
	if res.Err != nil {
		res.Outcome = Classify(res.Err)
		if res.Message == "" {
			res.Message = failureMessage(res.Outcome, res.Err)
		}
	}

	event := s.logger.Debug()
	if res.Outcome == OutcomeStorageFailure {
		event = s.logger.Error().Err(res.Err)
	}
	event.Str("command", req.Command.String()).Stringer("outcome", res.Outcome).Msg("command executed")

	if s.notifier != nil {
		s.notifier.Notify(res)
	}
	return res
}

func (s *Service) execute(req Request) Result {
	switch req.Command {
	case CommandAdd:
		g, err := s.store.Add(req.Name, req.Genre, req.Price)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Message: MsgAdded, Games: []model.Game{g}}

	case CommandRemove:
		g, err := s.store.Remove(req.Name)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Message: MsgRemoved, Games: []model.Game{g}}

	case CommandList:
		seq, err := s.store.List()
		if err != nil {
			return Result{Err: err}
		}
		games := slices.Collect(seq)
		if len(games) == 0 {
			return Result{Message: MsgEmptyList}
		}
		return Result{Message: fmt.Sprintf("%d saved game(s).", len(games)), Games: games}

	case CommandMostExpensive:
		g, err := s.store.MostExpensive()
		if err != nil {
			return Result{Err: err}
		}
		return Result{
			Message: fmt.Sprintf("Most expensive game: %s\nPrice: %s", g.Name, g.PriceText()),
			Games:   []model.Game{g},
		}

	case CommandCheapest:
		g, err := s.store.Cheapest()
		if err != nil {
			return Result{Err: err}
		}
		return Result{
			Message: fmt.Sprintf("Cheapest game: %s\nPrice: %s", g.Name, g.PriceText()),
			Games:   []model.Game{g},
		}

	case CommandExit:
		return Result{Message: MsgGoodbye}

	default:
		return Result{Err: ErrUnknownCommand, Message: MsgOutOfRange}
	}
}

func failureMessage(o Outcome, err error) string {
	switch o {
	case OutcomeInvalidInput:
		return MsgInvalidPrice
	case OutcomeNotFound:
		return MsgNotFound
	case OutcomeEmptyCatalog:
		return MsgNoGames
	default:
		return fmt.Sprintf(msgStorageFormat, err)
	}
}
