//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"psyca/internal/app"
	"psyca/internal/sims/psychedelic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
	log.SetPrefix("[ERROR] ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg.ResolveSeed(time.Now())

	board := psychedelic.NewWithConfig(cfg.Board())
	game := app.New(board, cfg)

	ebiten.SetWindowTitle("Automaton")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)

	game.Start()
	err := ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
