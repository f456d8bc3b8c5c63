// Package locale selects the language of player-facing text.
package locale

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain of the game's messages.
const Domain = "default"

// Setup points gotext at the catalogs under path for lang. Message IDs are the
// English text, so a missing catalog leaves the game in English.
// Returns false when no catalog exists for lang.
func Setup(path, lang string) bool {
	gotext.Configure(path, lang, Domain)
	_, err := os.Stat(filepath.Join(path, lang))
	return err == nil
}
