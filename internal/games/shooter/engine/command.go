package engine

import "fmt"

// CommandKind names an engine operation.
type CommandKind uint8

const (
	CmdTick CommandKind = iota + 1
	CmdSpawn
	CmdMoveTo
	CmdMoveBy
	CmdPress
	CmdRelease
	CmdShoot
	CmdRestart
)

var commandNames = map[CommandKind]string{
	CmdTick:    "tick",
	CmdSpawn:   "spawn",
	CmdMoveTo:  "move_to",
	CmdMoveBy:  "move_by",
	CmdPress:   "press",
	CmdRelease: "release",
	CmdShoot:   "shoot",
	CmdRestart: "restart",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// ParseCommandKind returns the kind with the given name.
func ParseCommandKind(name string) (CommandKind, error) {
	for k, n := range commandNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("engine: unknown command %q", name)
}

// Command is one mutation of the engine. Every public engine operation is
// expressed as a command, so a recorded command stream replays exactly.
//
// Epoch is only read by CmdTick and CmdSpawn. Value holds the x for
// CmdMoveTo, the dx for CmdMoveBy and the Direction for CmdPress and
// CmdRelease.
type Command struct {
	Kind  CommandKind
	Epoch uint64
	Value float64
}

func (c Command) String() string {
	switch c.Kind {
	case CmdTick, CmdSpawn:
		return fmt.Sprintf("%s@%d", c.Kind, c.Epoch)
	case CmdMoveTo, CmdMoveBy:
		return fmt.Sprintf("%s(%g)", c.Kind, c.Value)
	case CmdPress, CmdRelease:
		return fmt.Sprintf("%s(%s)", c.Kind, Direction(c.Value))
	default:
		return c.Kind.String()
	}
}

// Recorder observes every command an engine dispatches.
type Recorder interface {
	Record(Command)
}
