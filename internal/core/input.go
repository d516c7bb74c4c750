package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move the cursor up
	ActionDown           // move the cursor down
	ActionLeft           // move the cursor left
	ActionRight          // move the cursor right
	ActionPlace          // place the next pipe, or set a tile in the editor
	ActionSkip           // discard the next pipe
	ActionUndo           // take back the last placement
	ActionRotate         // rotate the source
	ActionNext           // continue to the next level
	ActionRestart        // start the level again
	ActionHelp           // toggle the full help
	ActionQuit           // leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionSkip:
		return "Skip"
	case ActionUndo:
		return "Undo"
	case ActionRotate:
		return "Rotate"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
