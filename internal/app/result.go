package app

import (
	"errors"

	"github.com/handiism/game-manager/internal/model"
	"github.com/handiism/game-manager/internal/store"
)

// Outcome classifies how a command ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeInvalidInput
	OutcomeNotFound
	OutcomeEmptyCatalog
	OutcomeStorageFailure
)

// String returns a short lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeEmptyCatalog:
		return "empty_catalog"
	case OutcomeStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o == OutcomeSuccess
}

// Classify maps an error returned by the store to an Outcome.
// Unrecognised errors count as storage failures.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrNotANumber):
		return OutcomeInvalidInput
	case errors.Is(err, store.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, store.ErrEmptyCatalog):
		return OutcomeEmptyCatalog
	default:
		return OutcomeStorageFailure
	}
}

// Request is a command together with the raw text the user typed for it.
// Only the fields the command needs are read.
type Request struct {
	Command Command
	Name    string
	Genre   string
	Price   string
}

// Result describes what happened when a Request was executed.
type Result struct {
	Command Command
	Outcome Outcome

	// Message is a user-facing sentence describing the result.
	Message string

	// Games holds the listed games for CommandList, the selected game for
	// the price queries and the added or removed game for mutations.
	Games []model.Game

	// Err is the underlying error, nil on success.
	Err error
}

// Game returns the first game of the result, if any.
func (r Result) Game() (model.Game, bool) {
	if len(r.Games) == 0 {
		return model.Game{}, false
	}
	return r.Games[0], true
}
