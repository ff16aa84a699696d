package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/tui"
	"snake-arcade/ui"
	"snake-arcade/web"
)

// Frontend couples a display with its input source.
type Frontend interface {
	game.Renderer
	game.InputSource
	Close()
}

func main() {
	mode := flag.String("mode", "ui", "frontend: ui (window) or tui (terminal)")
	dataDir := flag.String("data", ".", "directory for saves and the high score")
	listen := flag.String("listen", "", "optional web spectator address, e.g. :8080")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 derives one from the clock")
	difficulty := flag.String("difficulty", "easy", "starting difficulty: easy, medium or hard")
	theme := flag.String("theme", "classic", "starting theme: classic, dark or neon")
	twoPlayer := flag.Bool("two", false, "start in two-player mode")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *seed == 0 {
		if env := os.Getenv("SNAKE_SEED"); env != "" {
			if v, err := strconv.ParseUint(env, 10, 64); err == nil {
				*seed = v
			}
		}
	}

	board := types.Board{Width: types.DefaultBoardWidth, Height: types.DefaultBoardHeight}

	var sink game.AudioSink = game.NopAudio{}
	if !*mute {
		if s, err := audio.NewSink(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			sink = s
		}
	}

	sess := game.NewSession(game.Config{
		Board:      board,
		Difficulty: *difficulty,
		Theme:      *theme,
		TwoPlayer:  *twoPlayer,
		DataDir:    *dataDir,
		Seed:       *seed,
		Audio:      sink,
	})

	var front Frontend
	switch *mode {
	case "tui":
		f, err := tui.New(board)
		if err != nil {
			log.Fatalf("terminal init failed: %v", err)
		}
		front = f
	default:
		front = ui.New(board)
	}
	defer front.Close()

	var viewer *web.Viewer
	if *listen != "" {
		viewer = web.NewViewer(*listen)
	}

	for !sess.Done() {
		sess.Apply(front.Poll())
		sess.Update()
		snap := sess.Snapshot()
		front.Render(snap)
		if viewer != nil {
			viewer.Render(snap)
		}
	}
}
