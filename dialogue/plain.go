// Package dialogue produces the lines NPCs speak and the short notices shown
// over the playfield.
package dialogue

import (
	"fmt"

	"github.com/milk9111/middlechamber/sim/component"
)

// Plain is the built-in narrator. Script falls back to it whenever a script
// call fails.
type Plain struct{}

func (Plain) Greeting(id component.Identity) string {
	switch id.GrandOfficer {
	case component.HonorYes:
		return fmt.Sprintf("Whom have you there? A Grand Lodge Officer! I am honoured to admit you, %s. The Senior Warden awaits to invest you.", id.Name)
	case component.HonorNo:
		return "Whom have you there? You seek advancement in Freemasonry. The Senior Warden awaits to invest you with the badge of a Fellow Craft."
	default:
		return fmt.Sprintf("Whom have you there? Brother %s %s, who was initiated on %s. The Senior Warden awaits to invest you with the badge of a Fellow Craft.", id.Rank, id.Name, id.InitiationDate)
	}
}

func (Plain) Investiture() string {
	return "Brother, I invest you with the distinguishing badge of a Fellow Craft Freemason. It points out that as a Craftsman you are expected to make the liberal arts and sciences your future study. Now ascend the Winding Staircase to the Middle Chamber."
}

func (Plain) StaircasePrompt(progress, total int) string {
	if progress == 0 {
		return "Brother, before you proceed further, I must ask you a few questions regarding your entrance into the Lodge."
	}
	return fmt.Sprintf("Brother, you have answered %d of %d. Attend to the next question.", progress, total)
}

func (Plain) VirtueIntro(name, blurb string, first bool) string {
	if blurb == "" {
		blurb = "One of the four cardinal virtues."
	}
	if !first {
		return blurb
	}
	return fmt.Sprintf("You have discovered the first of FOUR TASSELS, representing the Four Cardinal Virtues of Freemasonry. This tassel represents %s. %s Collect all four for a Perfect Ashlar Bonus!", name, blurb)
}

func (Plain) GoalWarning(collected, total int) string {
	return fmt.Sprintf(`Grand Master: "The door to the Fellow Craft degree remains sealed. You have collected %d of %d Working Tools. Return when you have proven your proficiency."`, collected, total)
}

func (Plain) CheckpointReached(index, total int) string {
	return fmt.Sprintf("Checkpoint %d of %d reached", index, total)
}
