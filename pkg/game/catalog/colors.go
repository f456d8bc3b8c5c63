package catalog

import (
	"github.com/gookit/color"
)

// Fixed palette. Colors are compared by value, so they are safe to store on notes.
var (
	ColorText        = color.RGB(255, 255, 255)
	ColorHighlight   = color.RGB(255, 105, 180)
	ColorSubtle      = color.RGB(128, 128, 128)
	ColorSuspect     = color.RGB(255, 255, 0)
	ColorKiller      = color.RGB(255, 0, 0)
	ColorMurderClue  = color.RGB(128, 0, 128)
	ColorClue        = color.RGB(0, 255, 255)
	ColorBody        = color.RGB(192, 192, 192)
	ColorDeduction   = color.RGB(0, 255, 0)
	ColorGameMessage = color.RGB(255, 255, 255)
)
