package state

import (
	"slices"
	"testing"

	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/story"
)

func TestNewGame_WelcomeLines(t *testing.T) {
	g := NewGame(story.Generate(random.New(1)))

	if g.Log.Len() != 2 {
		t.Fatalf("log has %d lines, want 2", g.Log.Len())
	}
	msgs := g.Log.Messages()
	want := []string{
		"Day 1, 08:00 | Game: Use arrow keys to move around.",
		"Day 1, 08:00 | Game: Hello Detective. Welcome to Noir!",
	}
	for i, w := range want {
		if got := msgs[i].String(); got != w {
			t.Errorf("log[%d] = %q, want %q", i, got, w)
		}
	}
	if g.Outcome != OutcomeOpen || g.Over() {
		t.Errorf("new game outcome = %s, over = %v", g.Outcome, g.Over())
	}
	if g.Notes.Len() != 0 {
		t.Errorf("new game starts with %d notes", g.Notes.Len())
	}
}

func TestClock(t *testing.T) {
	c := NewClock()
	if got := c.String(); got != "Day 1, 08:00" {
		t.Errorf("NewClock = %q", got)
	}

	c.AdvanceMinute()
	if got := c.Time(); got != "08:01" {
		t.Errorf("Time after a minute = %q, want 08:01", got)
	}

	c = Clock{Day: 1, Hour: 23, Minute: 59}
	c.AdvanceMinute()
	if c != (Clock{Day: 2, Hour: 0, Minute: 0}) {
		t.Errorf("midnight rollover = %+v, want day 2 00:00", c)
	}
	if got := c.String(); got != "Day 2, 00:00" {
		t.Errorf("String = %q", got)
	}
}

func TestLog_NewestFirstAndBounded(t *testing.T) {
	l := NewLog()
	if _, ok := l.Latest(); ok {
		t.Error("empty log has a latest message")
	}

	for i := 0; i < MaxLogMessages+10; i++ {
		l.Add("Day 1, 08:00", SpeakerPlayer, "hello", catalog.ColorText)
	}
	l.Add("Day 1, 08:01", SpeakerPlayer, "last", catalog.ColorText)

	if l.Len() != MaxLogMessages {
		t.Errorf("log holds %d messages, want %d", l.Len(), MaxLogMessages)
	}
	latest, ok := l.Latest()
	if !ok || latest.Content != "last" {
		t.Errorf("Latest = %q, %v; want last", latest.Content, ok)
	}
}

func TestLog_LinesWrap(t *testing.T) {
	l := NewLog()
	l.Add("Day 1, 08:00", SpeakerGame, "Hello Detective. Welcome to Noir!", catalog.ColorText)

	want := []string{"Day 1, 08:00 | Game: Hello Detective. Welcome to Noir!"}
	if got := l.Lines(0); !slices.Equal(got, want) {
		t.Errorf("Lines(0) = %q, want %q", got, want)
	}

	wrapped := l.Lines(20)
	if len(wrapped) < 2 {
		t.Fatalf("Lines(20) = %q, want several lines", wrapped)
	}
	for _, line := range wrapped {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
}

func TestOptions(t *testing.T) {
	o := NewOptions()
	if got, want := o.Lines(), []string{"L - View Log", "N - Notes", "P - Pause"}; !slices.Equal(got, want) {
		t.Errorf("Lines = %q, want %q", got, want)
	}
	if o.Has(KeyAccuse) {
		t.Error("accuse offered before any deduction")
	}

	o.Add(KeyAccuse, "Accuse")
	if got, want := o.Keys(), []rune{'A', 'L', 'N', 'P'}; !slices.Equal(got, want) {
		t.Errorf("Keys = %q, want %q", got, want)
	}
	if got := o.Label(KeyAccuse); got != "Accuse" {
		t.Errorf("Label = %q, want Accuse", got)
	}

	o.Remove(KeyAccuse)
	if o.Has(KeyAccuse) {
		t.Error("accuse still offered after Remove")
	}
}

func TestAddMessage_KeepsLatest(t *testing.T) {
	g := &Game{}
	for _, m := range []string{"a", "b", "c", "d", "e", "f"} {
		g.AddMessage(m)
	}
	if want := []string{"b", "c", "d", "e", "f"}; !slices.Equal(g.Messages, want) {
		t.Errorf("Messages = %q, want %q", g.Messages, want)
	}

	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("Messages = %q after clear", g.Messages)
	}
}

func TestOutcome_String(t *testing.T) {
	if got := OutcomeSolved.String(); got != "Solved" {
		t.Errorf("OutcomeSolved = %q", got)
	}
	if got := OutcomeWrongSuspect.String(); got != "WrongSuspect" {
		t.Errorf("OutcomeWrongSuspect = %q", got)
	}
}
