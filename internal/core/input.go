package core

// Action is a host command derived from a key press.
// Hosts map physical keys to actions, then actions to engine calls.
type Action int

const (
	ActionNone          Action = iota
	ActionTogglePause          // Space, p - pause/resume stepping
	ActionStep                 // n - single generation while paused
	ActionReset                // r - re-randomize all cells
	ActionResetAll             // R - re-randomize and restore default rules
	ActionClear                // c - kill every cell
	ActionTrim                 // t - resize to the viewport, discarding overflow
	ActionToggleRecency        // v - recency colours on/off
	ActionBrushDraw            // d - brush paints live cells
	ActionBrushErase           // e - brush erases cells
	ActionBrushOff             // x - brush inactive
	ActionBrushGrow            // ] - widen brush
	ActionBrushShrink          // [ - narrow brush
	ActionFaster               // + - shorter frame length
	ActionSlower               // - - longer frame length
	ActionZoomIn               // > - bigger cells
	ActionZoomOut              // < - smaller cells
	ActionNextPreset           // tab - cycle rule presets
	ActionPrompt               // : - open command prompt
	ActionHelp                 // ? - toggle full help
	ActionQuit                 // q, ctrl+c - exit
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionTogglePause:   "TogglePause",
	ActionStep:          "Step",
	ActionReset:         "Reset",
	ActionResetAll:      "ResetAll",
	ActionClear:         "Clear",
	ActionTrim:          "Trim",
	ActionToggleRecency: "ToggleRecency",
	ActionBrushDraw:     "BrushDraw",
	ActionBrushErase:    "BrushErase",
	ActionBrushOff:      "BrushOff",
	ActionBrushGrow:     "BrushGrow",
	ActionBrushShrink:   "BrushShrink",
	ActionFaster:        "Faster",
	ActionSlower:        "Slower",
	ActionZoomIn:        "ZoomIn",
	ActionZoomOut:       "ZoomOut",
	ActionNextPreset:    "NextPreset",
	ActionPrompt:        "Prompt",
	ActionHelp:          "Help",
	ActionQuit:          "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
)

// PointerEvent is a pointer update in viewport pixel coordinates.
// Only the primary button is reported.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}
