package generator

import (
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
	"noir/pkg/game/setup"
)

// Suspects draws cfg.SuspectCount suspects. The first one is the killer.
//
// Attributes are drawn freely, then the killer is made to match the traces on
// the victim. Unless cfg.AllowIncidentalOverlap is set, innocent suspects are
// redrawn away from those traces. Dialogue is built last so testimony reflects
// the final attributes.
func Suspects(src random.Source, ids *notes.IDAllocator, victim *entities.Victim, cfg Config) []*entities.Suspect {
	title := cases.Title(language.English)
	usedNames := mapset.New[string]()

	suspects := make([]*entities.Suspect, cfg.SuspectCount)
	for i := range suspects {
		suspects[i] = &entities.Suspect{
			Name:      title.String(drawDistinct(src, catalog.SuspectNames, usedNames)),
			Age:       random.Range(src, catalog.AgeMin, catalog.AgeMax),
			IsKiller:  i == 0,
			HairColor: random.Pick(src, catalog.HairColors),
			ShoeSize:  random.Pick(src, catalog.ShoeSizes),
		}
	}

	setup.ApplyKillerTraces(victim, suspects)
	if !cfg.AllowIncidentalOverlap {
		setup.AvoidIncidentalOverlap(src, victim, suspects)
	}

	for _, s := range suspects {
		s.Color = suspectColor(s, cfg)
		s.Dialogue = dialogue(ids, s, cfg)
	}
	return suspects
}

func suspectColor(s *entities.Suspect, cfg Config) color.RGBColor {
	if cfg.KillerTell && s.IsKiller {
		return catalog.ColorKiller
	}
	return catalog.ColorSuspect
}

// dialogue returns the fixed questions a suspect answers. The hair and shoe
// answers are recorded as testimony notes.
func dialogue(ids *notes.IDAllocator, s *entities.Suspect, cfg Config) []entities.DialogueOption {
	innocence := gotext.Get("I am innocent!")
	if cfg.HonestSuspects && s.IsKiller {
		innocence = gotext.Get("I am guilty!")
	}

	hair := ids.New(notes.EvidenceHair, s.HairColor,
		notes.Colored(s.Name, s.Color),
		notes.Plain(gotext.Get(" has ")),
		notes.Highlight(gotext.Get("%s hair", s.HairColor)),
		notes.Plain("."))
	shoes := ids.New(notes.EvidenceShoeSize, s.ShoeSize,
		notes.Colored(s.Name, s.Color),
		notes.Plain(gotext.Get(" wears ")),
		notes.Highlight(gotext.Get("%s shoes", s.ShoeSize)),
		notes.Plain("."))

	return []entities.DialogueOption{
		{
			Prompt:   gotext.Get("Hello. What is your name?"),
			Response: gotext.Get("My name is %s.", s.Name),
		},
		{
			Prompt:   gotext.Get("Are you innocent?"),
			Response: innocence,
		},
		{
			Prompt:   gotext.Get("What color is your hair?"),
			Response: gotext.Get("My hair is %s.", s.HairColor),
			Unlocks:  &hair,
		},
		{
			Prompt:   gotext.Get("What size shoes do you wear?"),
			Response: gotext.Get("I wear %s shoes.", s.ShoeSize),
			Unlocks:  &shoes,
		},
	}
}
