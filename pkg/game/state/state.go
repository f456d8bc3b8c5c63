// Package state holds the state of one play session.
package state

import (
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
	"noir/pkg/game/story"
)

// Speakers used in the log.
const (
	SpeakerGame   = "Game"
	SpeakerPlayer = "You"
)

// Outcome is how the case ended.
type Outcome int

const (
	OutcomeOpen         Outcome = iota // Still investigating
	OutcomeSolved                      // The killer was accused
	OutcomeWrongSuspect                // An innocent suspect was accused
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOpen:
		return "Open"
	case OutcomeSolved:
		return "Solved"
	case OutcomeWrongSuspect:
		return "WrongSuspect"
	default:
		return "Unknown"
	}
}

// Game is a play session: the mystery being investigated and everything the
// detective has done so far.
type Game struct {
	Story     *story.Story
	Notes     *notes.Tracker
	Generator *story.Generator
	Seed      int64 // Seed the story was drawn from

	Examining *entities.Clue    // Clue open in the examination panel
	Talking   *entities.Suspect // Suspect being questioned

	Log     *Log
	Clock   Clock
	Options *Options

	Outcome Outcome
	Accused *entities.Suspect

	Messages   []string
	HintsShown int
}

// NewGame starts a session on s with the welcome lines logged.
func NewGame(s *story.Story) *Game {
	g := &Game{
		Story:    s,
		Notes:    notes.NewTracker(),
		Log:      NewLog(),
		Clock:    NewClock(),
		Options:  NewOptions(),
		Messages: make([]string, 0),
	}
	g.LogMessage(SpeakerGame, gotext.Get("Hello Detective. Welcome to Noir!"), catalog.ColorText)
	g.LogMessage(SpeakerGame, gotext.Get("Use arrow keys to move around."), catalog.ColorHighlight)
	return g
}

// LogMessage records a line in the log, stamped with the current time.
func (g *Game) LogMessage(speaker, content string, c color.RGBColor) {
	g.Log.Add(g.Clock.String(), speaker, content, c)
}

// AddMessage adds a transient status message, keeping only the latest few.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all status messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Over reports whether an accusation has ended the case.
func (g *Game) Over() bool {
	return g.Outcome != OutcomeOpen
}
