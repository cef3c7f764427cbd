package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/04pril/go-minefield/internal/config"
	"github.com/04pril/go-minefield/internal/session"
	"github.com/04pril/go-minefield/internal/theme"
)

func main() {
	log := logrus.New()
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}
	log.SetLevel(cfg.LogLevel)

	opts := []session.Option{session.WithLogger(log)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	s, err := session.New(cfg.Difficulty, opts...)
	if err != nil {
		log.WithError(err).Fatal("cannot start game")
	}

	// Load has already rejected unknown names.
	ti, _ := theme.Index(cfg.Theme)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	g := newGame(s, ti, log)
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop")
	}
}
