package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the engine to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start the run from the tutorial screen
	ActionRestart        // R key - retry after game over
	ActionBack           // B, Escape - leave to the launcher
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionExert          // Space held - keyboard fallback for full exertion
	ActionEasy           // 1 - select easy difficulty (tutorial only)
	ActionMedium         // 2 - select medium difficulty (tutorial only)
	ActionHard           // 3 - select hard difficulty (tutorial only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionExert:
		return "Exert"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// InputFrame represents everything the engine consumes during one
// simulation tick: the raw exertion intensity derived from the latest
// pose sample plus any discrete actions triggered this frame.
type InputFrame struct {
	// Intensity is the raw exertion signal in [0,1] for this frame.
	Intensity float64

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the intensity for the next frame.
func (f *InputFrame) Clear() {
	f.Intensity = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
