package app

import (
	"errors"
	"strconv"
	"strings"
)

// Command is one entry of the main menu.
//
// The numeric values match the menu numbering shown to the user.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandRemove
	CommandList
	CommandMostExpensive
	CommandCheapest
	CommandExit
)

var (
	// ErrNotANumber is returned by ParseMenuChoice for input that is not an integer.
	ErrNotANumber = errors.New("menu choice is not a number")

	// ErrUnknownCommand is returned for menu numbers with no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// Commands returns all commands in menu order.
func Commands() []Command {
	return []Command{
		CommandAdd,
		CommandRemove,
		CommandList,
		CommandMostExpensive,
		CommandCheapest,
		CommandExit,
	}
}

// Title returns the menu label.
func (c Command) Title() string {
	switch c {
	case CommandAdd:
		return "Add game"
	case CommandRemove:
		return "Remove game"
	case CommandList:
		return "All games"
	case CommandMostExpensive:
		return "Most expensive game"
	case CommandCheapest:
		return "Cheapest game"
	case CommandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// String returns the command-line name of the command.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandRemove:
		return "remove"
	case CommandList:
		return "list"
	case CommandMostExpensive:
		return "most-expensive"
	case CommandCheapest:
		return "cheapest"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Mutates reports whether the command can change the catalog file.
func (c Command) Mutates() bool {
	return c == CommandAdd || c == CommandRemove
}

// ParseCommand maps a menu number (1-6) to its command.
func ParseCommand(choice int) (Command, error) {
	c := Command(choice)
	if c < CommandAdd || c > CommandExit {
		return 0, ErrUnknownCommand
	}
	return c, nil
}

// ParseMenuChoice parses the text typed at the menu prompt.
func ParseMenuChoice(text string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrNotANumber
	}
	return ParseCommand(n)
}
