package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	settings, err := config.LoadSettings(os.Getenv("PONG_SETTINGS"))
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("failed to enable raw mode", "err", err)
	}

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Settings: settings,
		Seed:     config.GetSeed(),
	})
	_ = term.Restore(fd, oldState)
	if err != nil {
		log.Fatal("game error", "err", err)
	}
}
