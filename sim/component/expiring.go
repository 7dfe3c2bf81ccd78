package component

// Expiring is a display flag visible while the tick counter is below Until.
type Expiring struct {
	Text  string
	Until uint64
}

func (e Expiring) Visible(tick uint64) bool {
	return e.Text != "" && tick < e.Until
}

// Show replaces any previous text and deadline.
func (e *Expiring) Show(text string, tick uint64, frames int) {
	if e == nil {
		return
	}
	e.Text = text
	e.Until = tick + uint64(frames)
}

func (e *Expiring) Clear() {
	if e == nil {
		return
	}
	*e = Expiring{}
}
