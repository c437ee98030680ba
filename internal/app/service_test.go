package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/game-manager/internal/model"
	"github.com/handiism/game-manager/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	results []Result
}

func (r *recorder) Notify(res Result) {
	r.results = append(r.results, res)
}

func newTestService(t *testing.T) (*Service, *recorder) {
	t.Helper()
	rec := &recorder{}
	svc := NewService(store.New(filepath.Join(t.TempDir(), "games.xml")), rec, zerolog.Nop())
	require.NoError(t, svc.Init())
	return svc, rec
}

func TestParseMenuChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr error
	}{
		{"1", CommandAdd, nil},
		{"2", CommandRemove, nil},
		{"3", CommandList, nil},
		{"4", CommandMostExpensive, nil},
		{"5", CommandCheapest, nil},
		{" 6 ", CommandExit, nil},
		{"0", 0, ErrUnknownCommand},
		{"7", 0, ErrUnknownCommand},
		{"-1", 0, ErrUnknownCommand},
		{"a", 0, ErrNotANumber},
		{"", 0, ErrNotANumber},
		{"1.5", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, err := ParseMenuChoice(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandNames(t *testing.T) {
	seen := make(map[string]bool)
	for i, c := range Commands() {
		assert.Equal(t, Command(i+1), c, "menu number")
		assert.NotEqual(t, "Unknown", c.Title())
		assert.False(t, seen[c.String()], "duplicate name %q", c.String())
		seen[c.String()] = true
	}
	assert.Equal(t, "unknown", Command(42).String())

	assert.True(t, CommandAdd.Mutates())
	assert.True(t, CommandRemove.Mutates())
	assert.False(t, CommandList.Mutates())
	assert.False(t, CommandCheapest.Mutates())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeSuccess},
		{"price", &store.PriceError{Text: "x", Err: errors.New("bad")}, OutcomeInvalidInput},
		{"not found", &store.NotFoundError{Name: "x"}, OutcomeNotFound},
		{"wrapped not found", fmt.Errorf("remove: %w", &store.NotFoundError{Name: "x"}), OutcomeNotFound},
		{"empty", store.ErrEmptyCatalog, OutcomeEmptyCatalog},
		{"storage", &store.StorageError{Op: "load", Path: "p", Err: os.ErrPermission}, OutcomeStorageFailure},
		{"unknown command", ErrUnknownCommand, OutcomeInvalidInput},
		{"other", errors.New("disk on fire"), OutcomeStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestExecute_Add(t *testing.T) {
	svc, rec := newTestService(t)

	res := svc.Execute(Request{Command: CommandAdd, Name: "Chess", Genre: "Strategy", Price: "9.99"})
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, MsgAdded, res.Message)
	assert.NoError(t, res.Err)

	g, ok := res.Game()
	require.True(t, ok)
	assert.Equal(t, model.NewGame("Chess", "Strategy", 9.99), g)

	require.Len(t, rec.results, 1)
	assert.Equal(t, CommandAdd, rec.results[0].Command)
}

func TestExecute_AddInvalidPrice(t *testing.T) {
	svc, rec := newTestService(t)

	res := svc.Execute(Request{Command: CommandAdd, Name: "Chess", Genre: "Strategy", Price: "free"})
	assert.Equal(t, OutcomeInvalidInput, res.Outcome)
	assert.Equal(t, MsgInvalidPrice, res.Message)
	assert.ErrorIs(t, res.Err, store.ErrInvalidInput)
	require.Len(t, rec.results, 1)
	assert.Equal(t, OutcomeInvalidInput, rec.results[0].Outcome)

	list := svc.Execute(Request{Command: CommandList})
	assert.Empty(t, list.Games)
}

func TestExecute_Remove(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Execute(Request{Command: CommandAdd, Name: "Chess", Genre: "Strategy", Price: "9.99"})

	res := svc.Execute(Request{Command: CommandRemove, Name: "Checkers"})
	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Equal(t, MsgNotFound, res.Message)

	res = svc.Execute(Request{Command: CommandRemove, Name: "Chess"})
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, MsgRemoved, res.Message)
}

func TestExecute_ListAndQueries(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Execute(Request{Command: CommandList})
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, MsgEmptyList, res.Message)
	assert.Empty(t, res.Games)

	for _, cmd := range []Command{CommandMostExpensive, CommandCheapest} {
		res := svc.Execute(Request{Command: cmd})
		assert.Equal(t, OutcomeEmptyCatalog, res.Outcome, cmd.String())
		assert.Equal(t, MsgNoGames, res.Message)
	}

	svc.Execute(Request{Command: CommandAdd, Name: "Chess", Genre: "Strategy", Price: "9.99"})
	svc.Execute(Request{Command: CommandAdd, Name: "Go", Genre: "Strategy", Price: "5.00"})

	res = svc.Execute(Request{Command: CommandList})
	require.Len(t, res.Games, 2)
	assert.Equal(t, "Chess", res.Games[0].Name)
	assert.Equal(t, "Go", res.Games[1].Name)

	res = svc.Execute(Request{Command: CommandCheapest})
	assert.Equal(t, "Cheapest game: Go\nPrice: 5", res.Message)

	res = svc.Execute(Request{Command: CommandMostExpensive})
	assert.Equal(t, "Most expensive game: Chess\nPrice: 9.99", res.Message)
}

func TestExecute_ExitAndUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Execute(Request{Command: CommandExit})
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, MsgGoodbye, res.Message)

	res = svc.Execute(Request{Command: Command(42)})
	assert.Equal(t, OutcomeInvalidInput, res.Outcome)
	assert.Equal(t, MsgOutOfRange, res.Message)
}

func TestExecute_StorageFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.xml")
	require.NoError(t, os.WriteFile(path, []byte("<broken"), 0644))
	svc := NewService(store.New(path), nil, zerolog.Nop())

	res := svc.Execute(Request{Command: CommandList})
	assert.Equal(t, OutcomeStorageFailure, res.Outcome)
	assert.ErrorIs(t, res.Err, store.ErrStorage)
	assert.Contains(t, res.Message, "Could not access the game database")
}

func TestNotifierFunc(t *testing.T) {
	var got []Outcome
	svc := NewService(
		store.New(filepath.Join(t.TempDir(), "games.xml")),
		NotifierFunc(func(r Result) { got = append(got, r.Outcome) }),
		zerolog.Nop(),
	)

	svc.Execute(Request{Command: CommandCheapest})
	svc.Execute(Request{Command: CommandAdd, Name: "Go", Price: "5"})

	assert.Equal(t, []Outcome{OutcomeEmptyCatalog, OutcomeSuccess}, got)
}
