package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone             Action = iota
	ActionUp                      // Move cursor up
	ActionDown                    // Move cursor down
	ActionLeft                    // Move cursor left
	ActionRight                   // Move cursor right
	ActionUse                     // Apply the selected tool at the cursor
	ActionToolPlant               // Select the planting tool
	ActionToolHarvest             // Select the harvesting tool
	ActionToolPesticide           // Select the pesticide tool
	ActionCrop1                   // Select the first crop in the catalog
	ActionCrop2                   // Select the second crop
	ActionCrop3                   // Select the third crop
	ActionCrop4                   // Select the fourth crop
	ActionToggleIndicators        // Show or hide hp and growth bars
	ActionConfirm                 // Enter - confirm selection in menu
	ActionBack                    // Escape - go back to menu
	ActionRestart                 // Start a new run
	ActionQuit                    // Exit game/session
	ActionPause                   // Pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:             "None",
	ActionUp:               "Up",
	ActionDown:             "Down",
	ActionLeft:             "Left",
	ActionRight:            "Right",
	ActionUse:              "Use",
	ActionToolPlant:        "ToolPlant",
	ActionToolHarvest:      "ToolHarvest",
	ActionToolPesticide:    "ToolPesticide",
	ActionCrop1:            "Crop1",
	ActionCrop2:            "Crop2",
	ActionCrop3:            "Crop3",
	ActionCrop4:            "Crop4",
	ActionToggleIndicators: "ToggleIndicators",
	ActionConfirm:          "Confirm",
	ActionBack:             "Back",
	ActionRestart:          "Restart",
	ActionQuit:             "Quit",
	ActionPause:            "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// CropSlot returns the zero-based catalog index for ActionCrop1..ActionCrop4.
func (a Action) CropSlot() (int, bool) {
	if a >= ActionCrop1 && a <= ActionCrop4 {
		return int(a - ActionCrop1), true
	}
	return 0, false
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
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

// Empty returns true if no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
