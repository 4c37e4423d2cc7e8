package game

import "unicode"

// Command is the logical meaning of one key press
type Command uint8

const (
	CommandNone Command = iota // Unrecognized key, the tick is a wait
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MapKey translates a raw key, case-insensitive
// wasd and ijkl are both accepted
func MapKey(r rune) Command {
	switch unicode.ToLower(r) {
	case 'w', 'i':
		return CommandUp
	case 's', 'k':
		return CommandDown
	case 'd', 'l':
		return CommandRight
	case 'a', 'j':
		return CommandLeft
	case 'q':
		return CommandQuit
	default:
		return CommandNone
	}
}

// Direction returns the move for a movement command, ok is false otherwise
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return DirUp, true
	case CommandDown:
		return DirDown, true
	case CommandLeft:
		return DirLeft, true
	case CommandRight:
		return DirRight, true
	default:
		return 0, false
	}
}
