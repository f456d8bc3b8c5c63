package state

import (
	"fmt"
	"slices"

	"github.com/leonelquinteros/gotext"
)

// Option hotkeys.
const (
	KeyPause  = 'P'
	KeyNotes  = 'N'
	KeyLog    = 'L'
	KeyAccuse = 'A'
)

// Options maps hotkeys to the actions currently offered in the sidebar.
type Options struct {
	entries map[rune]string
}

// NewOptions returns the options every session starts with.
func NewOptions() *Options {
	return &Options{entries: map[rune]string{
		KeyPause: gotext.Get("Pause"),
		KeyNotes: gotext.Get("Notes"),
		KeyLog:   gotext.Get("View Log"),
	}}
}

// Add offers an action under key, replacing any previous one.
func (o *Options) Add(key rune, label string) {
	o.entries[key] = label
}

// Remove withdraws the action under key.
func (o *Options) Remove(key rune) {
	delete(o.entries, key)
}

// Has reports whether an action is offered under key.
func (o *Options) Has(key rune) bool {
	_, ok := o.entries[key]
	return ok
}

// Label returns the label of the action under key.
func (o *Options) Label(key rune) string {
	return o.entries[key]
}

// Keys returns the hotkeys in ascending order.
func (o *Options) Keys() []rune {
	keys := make([]rune, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lines returns the sidebar entries, e.g. "A - Accuse", in key order.
func (o *Options) Lines() []string {
	keys := o.Keys()
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%c - %s", k, o.entries[k])
	}
	return lines
}
