package sim

// GameState is the top-level flag guarding the tick.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateLore
	StateQuiz
	StateGameOver
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLore:
		return "lore"
	case StateQuiz:
		return "quiz"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the playthrough has ended.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}
