package gameplay

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"noir/pkg/engine/world"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
	"noir/pkg/game/state"
)

var (
	ErrCannotAccuse   = errors.New("no deduction made yet")
	ErrCaseClosed     = errors.New("case already closed")
	ErrUnknownSuspect = errors.New("no such suspect")
)

// Examine opens clue in the examination panel.
func Examine(g *state.Game, clue *entities.Clue) {
	g.Examining = clue
	logMessage(g, "You examine the %s.", clue.Name)
}

// StopExamining closes the examination panel.
func StopExamining(g *state.Game) {
	g.Examining = nil
}

// RevealAt reveals the marker of clue within reach of the cursor at p and adds
// its note to the player's notes. Returns false when no marker is in reach.
// Revealing the same marker twice adds nothing.
func RevealAt(g *state.Game, clue *entities.Clue, p world.Point) (notes.Note, bool) {
	i, ok := clue.MarkerAt(p)
	if !ok {
		return notes.Note{}, false
	}
	n, _ := clue.RevealMarker(i)
	discover(g, n)
	return n, true
}

// Talk asks suspect the dialogue option at index i. Each question takes a minute.
func Talk(g *state.Game, suspect *entities.Suspect, i int) (entities.DialogueOption, bool) {
	if i < 0 || i >= len(suspect.Dialogue) {
		return entities.DialogueOption{}, false
	}
	opt := suspect.Dialogue[i]
	g.Talking = suspect

	g.Clock.AdvanceMinute()
	g.LogMessage(state.SpeakerPlayer, opt.Prompt, catalog.ColorText)
	g.LogMessage(suspect.Name, opt.Response, suspect.Color)
	if opt.Unlocks != nil {
		discover(g, *opt.Unlocks)
	}
	return opt, true
}

// LinkNotes presents the notes with ids together. A match adds the deduced note
// and offers the accusation.
func LinkNotes(g *state.Game, ids ...notes.ID) notes.MatchResult {
	return afterMatch(g, g.Notes.Match(&g.Story.Connections, ids...))
}

// LinkSelected presents the notes currently selected in the notes panel.
func LinkSelected(g *state.Game) notes.MatchResult {
	return afterMatch(g, g.Notes.AttemptMatch(&g.Story.Connections))
}

func afterMatch(g *state.Game, r notes.MatchResult) notes.MatchResult {
	if !r.Matched {
		g.AddMessage(r.Message)
		return r
	}
	g.LogMessage(state.SpeakerGame, r.Message, catalog.ColorDeduction)
	if g.Notes.CanAccuse() && !g.Options.Has(state.KeyAccuse) {
		g.Options.Add(state.KeyAccuse, gotext.Get("Accuse"))
	}
	return r
}

// Accuse names the suspect at index i as the killer and closes the case.
func Accuse(g *state.Game, i int) (state.Outcome, error) {
	if g.Over() {
		return g.Outcome, ErrCaseClosed
	}
	if !g.Notes.CanAccuse() {
		return state.OutcomeOpen, ErrCannotAccuse
	}
	suspect := g.Story.Suspect(i)
	if suspect == nil {
		return state.OutcomeOpen, fmt.Errorf("suspect %d: %w", i, ErrUnknownSuspect)
	}

	g.Accused = suspect
	g.LogMessage(state.SpeakerPlayer, gotext.Get("%s, you are under arrest!", suspect.Name), catalog.ColorText)
	if suspect.IsKiller {
		g.Outcome = state.OutcomeSolved
		g.LogMessage(state.SpeakerGame, gotext.Get("%s confesses to the murder of %s. Case closed.", suspect.Name, g.Story.Victim.Name), catalog.ColorDeduction)
	} else {
		g.Outcome = state.OutcomeWrongSuspect
		g.LogMessage(state.SpeakerGame, gotext.Get("%s was innocent. The killer was %s.", suspect.Name, g.Story.Killer().Name), catalog.ColorKiller)
	}
	g.Options.Remove(state.KeyAccuse)
	return g.Outcome, nil
}

func discover(g *state.Game, n notes.Note) {
	if !g.Notes.Discover(n) {
		return
	}
	g.LogMessage(state.SpeakerGame, gotext.Get("New note: %s", n.Text()), catalog.ColorGameMessage)
	logMessage(g, "You write down a new note.")
}

// logMessage adds a formatted message to the game's message list
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
