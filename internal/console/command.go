// internal/console/command.go
package console

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrEmptyScript    = errors.New("empty command script")
)

// Command is one step of a member script.
type Command string

const (
	CommandActivate   Command = "activate"
	CommandDeactivate Command = "deactivate"
	CommandReset      Command = "reset"
	CommandAttend     Command = "attend"
	CommandDisplay    Command = "display"
	CommandJSON       Command = "json"
)

var knownCommands = map[Command]struct{}{
	CommandActivate:   {},
	CommandDeactivate: {},
	CommandReset:      {},
	CommandAttend:     {},
	CommandDisplay:    {},
	CommandJSON:       {},
}

// Parse turns raw arguments into commands. Tokens are trimmed and matched
// case-insensitively.
func Parse(args []string) ([]Command, error) {
	if len(args) == 0 {
		return nil, ErrEmptyScript
	}

	cmds := make([]Command, 0, len(args))
	for _, arg := range args {
		cmd := Command(strings.ToLower(strings.TrimSpace(arg)))
		if _, ok := knownCommands[cmd]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, arg)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
