package state

import (
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"
)

// MaxLogMessages bounds the log; older messages are dropped.
const MaxLogMessages = 200

// Message is one line of the log.
type Message struct {
	Timestamp string
	Speaker   string
	Content   string
	Color     color.RGBColor
}

// String formats the message as "Day 1, 08:00 | Speaker: content".
func (m Message) String() string {
	return m.Timestamp + " | " + m.Speaker + ": " + m.Content
}

// Log is the session log, newest message first.
type Log struct {
	messages []Message
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Add puts a message at the top of the log.
func (l *Log) Add(timestamp, speaker, content string, c color.RGBColor) {
	l.messages = append([]Message{{
		Timestamp: timestamp,
		Speaker:   speaker,
		Content:   content,
		Color:     c,
	}}, l.messages...)
	if len(l.messages) > MaxLogMessages {
		l.messages = l.messages[:MaxLogMessages]
	}
}

// Messages returns the messages, newest first.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// Latest returns the newest message.
func (l *Log) Latest() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[0], true
}

// Lines returns the formatted messages wrapped to width, newest first.
// A width of zero or less disables wrapping.
func (l *Log) Lines(width int) []string {
	var lines []string
	for _, m := range l.messages {
		text := m.String()
		if width > 0 {
			text = wordwrap.String(text, width)
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}
	return lines
}
