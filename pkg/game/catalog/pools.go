// Package catalog holds the fixed tables every mystery is drawn from: name and
// trace pools, weapon displays, colors, and the player-facing phrasing of evidence.
package catalog

import (
	"github.com/leonelquinteros/gotext"
)

// None marks a trace that was not left at the scene.
const None = "none"

// Weapon keys. Clue names and Victim.WeaponUsed are always one of these.
const (
	Knife  = "knife"
	Gun    = "gun"
	Wrench = "wrench"
	Poison = "poison"
)

// Age bounds for victims and suspects, [AgeMin, AgeMax).
const (
	AgeMin = 22
	AgeMax = 65
)

// Examination panel size. Displays are centered in it and markers live inside it.
const (
	ExamPanelWidth  = 60
	ExamPanelHeight = 30
)

var (
	// VictimNames is the pool victim names are drawn from.
	VictimNames = []string{"Hercule", "Sherlock", "Johnny"}
	// SuspectNames is the pool suspect names are drawn from.
	SuspectNames = []string{"Adam", "Barry", "Charles"}
	// Weapons is the pool of murder weapons and clue names.
	Weapons = []string{Knife, Gun, Wrench, Poison}

	// HairTraces may be found on the murder weapon; None means no hair was left.
	HairTraces = []string{None, "black", "blonde", "red"}
	// ShoeTraces may be found next to the body; None means no print was left.
	ShoeTraces = []string{None, "small", "average", "large"}

	// HairColors is the pool of suspect hair colors.
	HairColors = []string{"black", "blonde", "red"}
	// ShoeSizes is the pool of suspect shoe sizes.
	ShoeSizes = []string{"small", "average", "large"}
)

func init() {
	for name, pool := range map[string][]string{
		"VictimNames":  VictimNames,
		"SuspectNames": SuspectNames,
		"Weapons":      Weapons,
		"HairTraces":   HairTraces,
		"ShoeTraces":   ShoeTraces,
		"HairColors":   HairColors,
		"ShoeSizes":    ShoeSizes,
	} {
		if len(pool) == 0 {
			panic("catalog: empty pool " + name)
		}
	}
}

// IsWeapon reports whether key names a weapon in the pool.
func IsWeapon(key string) bool {
	for _, w := range Weapons {
		if w == key {
			return true
		}
	}
	return false
}

// CauseOfDeath returns how the body shows the given weapon was used.
// Unknown weapons get a generic phrase.
func CauseOfDeath(weapon string) string {
	switch weapon {
	case Knife:
		return gotext.Get("stab wounds")
	case Gun:
		return gotext.Get("a gunshot wound")
	case Wrench:
		return gotext.Get("blunt force trauma")
	case Poison:
		return gotext.Get("signs of poisoning")
	default:
		return gotext.Get("unexplained injuries")
	}
}

// WeaponTrace returns what the murder weapon carries that ties it to the body.
func WeaponTrace(weapon string) string {
	switch weapon {
	case Gun:
		return gotext.Get("gunpowder residue")
	case Poison:
		return gotext.Get("a missing dose")
	default:
		return gotext.Get("blood")
	}
}
