package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"noir/internal/config"
	"noir/internal/locale"
	"noir/internal/logger"
	"noir/pkg/game/devtools"
	"noir/pkg/game/gameplay"
)

func main() {
	seed := flag.Int64("seed", 0, "story seed, overrides NOIR_SEED (0 keeps the configured seed)")
	envFile := flag.String("env", ".env", "env file to load before reading the environment")
	toFile := flag.Bool("file", false, "write the story to story.txt instead of stdout")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log := logger.Setup(cfg)
	if !locale.Setup(cfg.LocalePath, cfg.Language) {
		log.Debug("no catalog for language, using English", slog.String("language", cfg.Language))
	}

	g := gameplay.NewGame(cfg, log)
	log = logger.ForCase(log, g.Story.ID, g.Seed)
	log.Info("case opened", slog.String("victim", g.Story.Victim.Name))

	if *toFile {
		path, err := devtools.DumpStoryToFile(g.Story)
		if err != nil {
			log.Error("dumping story", logger.Err(err))
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if err := devtools.DumpStory(os.Stdout, g.Story); err != nil {
		log.Error("dumping story", logger.Err(err))
		os.Exit(1)
	}
}
