package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/window"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	settings, err := config.LoadSettings(os.Getenv("PONG_SETTINGS"))
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	if err := window.Run(game.NewSeeded(settings, config.GetSeed())); err != nil {
		log.Fatal("window error", "err", err)
	}
}
