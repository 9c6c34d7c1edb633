package render

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidInput = errors.New("invalid input, enter two integers separated by a space (e.g. '3 4'), 'new' or 'quit'")

type CommandKind byte

const (
	CommandMove = CommandKind(iota)
	CommandNew
	CommandQuit
)

type Command struct {
	Kind CommandKind
	Row  int
	Col  int
}

// ParseCommand reads one line of player input. Coordinates are typed
// 1-indexed and returned 0-indexed.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	switch {
	case len(fields) == 1 && (fields[0] == "quit" || fields[0] == "q" || fields[0] == "exit"):
		return Command{Kind: CommandQuit}, nil
	case len(fields) == 1 && (fields[0] == "new" || fields[0] == "n"):
		return Command{Kind: CommandNew}, nil
	case len(fields) != 2:
		return Command{}, ErrInvalidInput
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, errors.WithMessage(ErrInvalidInput, err.Error())
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, errors.WithMessage(ErrInvalidInput, err.Error())
	}
	return Command{Kind: CommandMove, Row: row - 1, Col: col - 1}, nil
}
