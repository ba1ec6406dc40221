package core

// Key names delivered by the input collaborator. Only these are recognized;
// every other key is ignored.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
)

// Action is a semantic game input, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // ArrowUp
	ActionDown          // ArrowDown
	ActionLeft          // ArrowLeft
	ActionRight         // ArrowRight
	ActionToggle        // Space: start, pause, resume and restart
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
	case ActionToggle:
		return "Toggle"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// ActionForKey maps a raw key name to its action. Unknown keys map to ActionNone.
func ActionForKey(key string) Action {
	switch key {
	case KeyArrowUp:
		return ActionUp
	case KeyArrowDown:
		return ActionDown
	case KeyArrowLeft:
		return ActionLeft
	case KeyArrowRight:
		return ActionRight
	case KeySpace:
		return ActionToggle
	}
	return ActionNone
}
