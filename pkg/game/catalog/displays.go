package catalog

import (
	"github.com/muesli/reflow/ansi"

	"noir/pkg/engine/world"
)

// BodyKey is the display key of the victim's body.
const BodyKey = "body"

var displays = map[string][]string{
	Knife: {
		`          ______________________`,
		`  ______/                     /`,
		` |  o  |=====================<`,
		` |_____|\                     \`,
		`         \_____________________\`,
	},
	Gun: {
		`  _______________________`,
		` |  ___________________  |==`,
		` | |___________________| |`,
		` |_______    ____________|`,
		`        /   /|`,
		`       /___/ |`,
		`      |____|/`,
	},
	Wrench: {
		`  __                              __`,
		` /  \____________________________/  \`,
		`|  _ ____________________________ _  |`,
		` \__/                            \__/`,
	},
	Poison: {
		`    ___`,
		`   |___|`,
		`   /   \`,
		`  / x x \`,
		` |  ___  |`,
		` | |POI| |`,
		` | |SON| |`,
		` |_______|`,
	},
	BodyKey: {
		`        ___`,
		`       /   \`,
		`       \___/`,
		`     ___| |___`,
		`    /         \`,
		`   / /|     |\ \`,
		`  /_/ |     | \_\`,
		`      |  _  |`,
		`      | | | |`,
		`      |_| |_|`,
	},
}

// Display returns a copy of the ASCII block for key.
// Unknown keys get an empty placeholder rather than an error: displays are cosmetic.
func Display(key string) []string {
	rows, ok := displays[key]
	if !ok {
		return []string{}
	}
	out := make([]string, len(rows))
	copy(out, rows)
	return out
}

// DisplayBounds returns the bounding box of display centered in the examination panel,
// matching how the panel prints each row centered on its own width.
func DisplayBounds(display []string) world.Box {
	width := 0
	for _, row := range display {
		if w := ansi.PrintableRuneWidth(row); w > width {
			width = w
		}
	}
	return world.CenteredIn(ExamPanelWidth, ExamPanelHeight, width, len(display))
}
