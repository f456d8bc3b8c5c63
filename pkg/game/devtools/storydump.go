// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"noir/pkg/engine/terminal"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
	"noir/pkg/game/story"
)

const storyDumpFilename = "story.txt"

// DumpOptions controls how a story is written.
type DumpOptions struct {
	Width int  // Wrap width; zero or less disables wrapping
	Color bool // Emit ANSI colors
}

// DumpStory writes a readable summary of s to w, the whole solution included.
// Colors and wrapping follow the terminal behind w.
func DumpStory(w io.Writer, s *story.Story) error {
	return DumpStoryWith(w, s, DumpOptions{
		Width: terminal.Width(w),
		Color: terminal.IsTerminal(w),
	})
}

// DumpStoryToFile writes the summary of s without colors to story.txt in the
// working directory and returns its absolute path.
func DumpStoryToFile(s *story.Story) (string, error) {
	absPath, err := filepath.Abs(storyDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := writeAndClose(f, s); err != nil {
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	return absPath, nil
}

// writeAndClose dumps s to wc and closes it. A failed close is reported even
// when the write succeeded.
func writeAndClose(wc io.WriteCloser, s *story.Story) error {
	err := DumpStoryWith(wc, s, DumpOptions{Width: terminal.DefaultWidth})
	return errors.Join(err, wc.Close())
}

// DumpStoryWith writes the summary of s to w using opts.
func DumpStoryWith(w io.Writer, s *story.Story, opts DumpOptions) error {
	d := &dumper{opts: opts}

	d.line("=== STORY DUMP ===")
	d.line("")
	d.line("--- Metadata ---")
	d.linef("story_id: %s", s.ID)
	d.linef("connections_left: %d", len(s.Connections))
	d.line("")

	v := s.Victim
	d.line("--- Victim ---")
	d.linef("name: %s", v.Name)
	d.linef("age: %d", v.Age)
	d.linef("weapon_used: %s", v.WeaponUsed)
	d.linef("hair_found: %s", v.HairFound)
	d.linef("shoe_print: %s", v.ShoePrint)
	if v.Body != nil {
		d.markers(v.Body)
	}
	d.line("")

	d.line("--- Suspects ---")
	for i, sp := range s.Suspects {
		role := "innocent"
		if sp.IsKiller {
			role = "KILLER"
		}
		d.linef("  [%d] %s (%d) %s hair: %s shoes: %s", i, d.paint(sp.Name, sp.Color), sp.Age, role, sp.HairColor, sp.ShoeSize)
		for _, n := range sp.Testimony() {
			d.note("      ", n)
		}
	}
	d.line("")

	d.line("--- Clues ---")
	for i, c := range s.Clues {
		weapon := ""
		if c.IsMurderWeapon {
			weapon = " MURDER WEAPON"
		}
		d.linef("  [%d] %s%s", i, d.paint(c.Heading(), c.Color), weapon)
		d.markers(c)
	}
	d.line("")

	d.line("--- Connections ---")
	for _, c := range s.Connections {
		d.linef("  %d <-> %d %s", c.From, c.To, c.Type)
		d.note("      ", c.Note)
	}

	_, err := io.WriteString(w, d.sb.String())
	return err
}

type dumper struct {
	opts DumpOptions
	sb   strings.Builder
}

func (d *dumper) line(s string) {
	d.sb.WriteString(s)
	d.sb.WriteByte('\n')
}

func (d *dumper) linef(format string, a ...any) {
	d.line(fmt.Sprintf(format, a...))
}

func (d *dumper) paint(s string, c color.RGBColor) string {
	if !d.opts.Color {
		return s
	}
	return c.Sprint(s)
}

func (d *dumper) markers(c *entities.Clue) {
	for _, m := range c.Markers {
		line := fmt.Sprintf("    marker %d,%d hidden %s", m.Pos.X, m.Pos.Y, m.Note.Connection)
		if m.Revealed {
			line = fmt.Sprintf("    marker %d,%d revealed %s", m.Pos.X, m.Pos.Y, m.Note.Connection)
		} else {
			// Markers the player has not found yet are dimmed.
			line = d.paint(line, catalog.ColorSubtle)
		}
		d.line(line)
		d.note("      ", m.Note)
	}
}

// note writes n wrapped to the dump width under prefix.
func (d *dumper) note(prefix string, n notes.Note) {
	text := n.Text()
	if d.opts.Color {
		text = n.Styled()
	}
	text = fmt.Sprintf("#%d %s", n.ID, text)
	if width := d.opts.Width - len(prefix); d.opts.Width > 0 && width > 0 {
		text = wordwrap.String(text, width)
	}
	d.line(indent.String(text, uint(len(prefix))))
}
