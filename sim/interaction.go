package sim

import (
	"errors"

	"github.com/milk9111/middlechamber/levels"
)

type InteractionKind int

const (
	KindDialogue InteractionKind = iota
	KindQuiz
)

func (k InteractionKind) String() string {
	if k == KindQuiz {
		return "quiz"
	}
	return "dialogue"
}

// Subject identifies which gate raised an interaction.
type Subject int

const (
	SubjectGreeting Subject = iota
	SubjectInvestiture
	SubjectStaircase
	SubjectPickup
	SubjectVirtue
)

func (s Subject) String() string {
	switch s {
	case SubjectGreeting:
		return "greeting"
	case SubjectInvestiture:
		return "investiture"
	case SubjectStaircase:
		return "staircase"
	case SubjectPickup:
		return "pickup"
	case SubjectVirtue:
		return "virtue"
	default:
		return "unknown"
	}
}

// Interaction is the single pending modal. Dialogues resolve with
// OutcomeContinue; quizzes with OutcomeCorrect or OutcomeIncorrect.
type Interaction struct {
	Kind      InteractionKind
	Subject   Subject
	Speaker   string
	SpriteKey string
	Body      string
	Question  levels.Question
	// TargetID is the pickup or virtue id for those subjects.
	TargetID int
}

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

var (
	ErrNoInteraction     = errors.New("sim: no pending interaction")
	ErrOutcomeMismatch   = errors.New("sim: outcome does not match interaction kind")
	ErrInteractionActive = errors.New("sim: an interaction is already pending")
	ErrNotPlaying        = errors.New("sim: world is not playing")
)
