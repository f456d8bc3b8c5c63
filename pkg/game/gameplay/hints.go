package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"noir/pkg/game/state"
)

// maxHints is how many hints a case shows before the detective is on their own.
const maxHints = 3

// NextHint returns advice on what to do next, or "" once the case is closed.
func NextHint(g *state.Game) string {
	if g.Over() {
		return ""
	}

	body := g.Story.Victim.Body
	if body != nil && !body.FullyExamined() {
		return gotext.Get("Examine the body of %s.", g.Story.Victim.Name)
	}
	for _, c := range g.Story.Clues {
		if !c.FullyExamined() {
			return gotext.Get("Look closer at the %s.", c.Name)
		}
	}
	for _, c := range g.Story.Connections {
		if g.Notes.Has(c.From) && g.Notes.Has(c.To) {
			return gotext.Get("Two of your notes belong together.")
		}
	}
	if !g.Notes.CanAccuse() {
		return gotext.Get("Question the suspects.")
	}
	return gotext.Get("You can accuse a suspect now.")
}

// ShowHint adds the next hint to the messages. Only the first few are shown.
func ShowHint(g *state.Game) {
	if g.HintsShown >= maxHints {
		return
	}
	if hint := NextHint(g); hint != "" {
		g.HintsShown++
		g.AddMessage(hint)
	}
}
