package component

// Intents is one poll of the input source.
type Intents struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
}

// Input is the per-tick logical input state.
type Input struct {
	Left         bool
	Right        bool
	JumpHeld     bool
	JumpPressed  bool
	JumpReleased bool
	// Suppressed holds jump edges until the key has been released once,
	// so a key held through a modal does not fire on resume.
	Suppressed bool
}

// Clear drops every held intent.
func (in *Input) Clear() {
	if in == nil {
		return
	}
	held := in.JumpHeld
	*in = Input{Suppressed: held}
}
