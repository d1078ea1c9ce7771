package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"walkgen/internal/app"
	"walkgen/internal/core"
	"walkgen/internal/sims/drunkard"
	"walkgen/internal/term"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdRegenerate
	cmdNewSeed
	cmdTogglePause
	cmdResize
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gen := cfg.Generator()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	err = run(screen, gen, cfg.TPS)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, gen drunkard.Config, tps int) error {
	commands := make(chan command, 8)
	go pollInput(screen, commands)

	pacer := core.NewFixedStep(tps)
	for {
		renderer := term.New(screen, gen.Width, gen.Height)
		screen.Clear()
		counts := &tally{}
		engine, err := drunkard.New(gen, drunkard.Observers{renderer, counts})
		if err != nil {
			return err
		}

		next, err := generate(screen, renderer, engine, counts, pacer, commands)
		if err != nil {
			return err
		}
		switch next {
		case cmdQuit:
			return nil
		case cmdNewSeed:
			gen.Seed = time.Now().UnixNano()
		case cmdRegenerate:
			gen.Seed = engine.Seed()
		}
	}
}

// generate steps the engine until it finishes, then waits for the user. It
// returns the command that ended the run.
func generate(screen tcell.Screen, r *term.Renderer, e *drunkard.Engine, counts *tally, pacer *core.FixedStep, commands <-chan command) (command, error) {
	paused := false
	status := ""
	redraw := func() {
		screen.Sync()
		spawn, ok := e.SpawnPoint()
		r.Redraw(e.Grid(), spawn, ok)
		r.Status(status)
		r.Flush()
	}

	for res, err := range e.Ticks() {
		if err != nil {
			if !errors.Is(err, drunkard.ErrTickBudget) {
				return cmdQuit, err
			}
			status = fmt.Sprintf("gave up after %d ticks (fill %.3f); r: retry  s: new seed  q: quit", res.Tick, res.FillRatio)
			r.Status(status)
			r.Flush()
			break
		}
		status = statusLine(e, counts, res, paused)
		r.Status(status)
		r.Flush()
		if res.Added {
			pacer.Wait()
		}

		for {
			cmd := poll(commands, paused)
			switch cmd {
			case cmdQuit, cmdRegenerate, cmdNewSeed:
				return cmd, nil
			case cmdTogglePause:
				paused = !paused
				status = statusLine(e, counts, res, paused)
				r.Status(status)
				r.Flush()
				continue
			case cmdResize:
				redraw()
				continue
			}
			if !paused {
				break
			}
		}
	}

	for {
		switch cmd := <-commands; cmd {
		case cmdQuit, cmdRegenerate, cmdNewSeed:
			return cmd, nil
		case cmdResize:
			redraw()
		}
	}
}

// poll returns the next pending command, blocking only while paused.
func poll(commands <-chan command, paused bool) command {
	if paused {
		return <-commands
	}
	select {
	case cmd := <-commands:
		return cmd
	default:
		return cmdNone
	}
}

func statusLine(e *drunkard.Engine, counts *tally, res drunkard.TickResult, paused bool) string {
	g := e.Grid()
	if e.Done() {
		spawn := "spawn set"
		if !counts.spawn {
			spawn = "no spawn"
		}
		return fmt.Sprintf("seed %d  done in %d ticks  floor %d  walls %d  %s  r: again  s: new seed  q: quit",
			e.Seed(), e.Tick(), counts.carved, counts.walls, spawn)
	}
	state := "space: pause"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("seed %d  tick %d  walkers %d  fill %.3f/%.2f  %s  q: quit",
		e.Seed(), e.Tick(), res.Walkers, g.FillRatio(), e.Config().FillPercentage, state)
}

func pollInput(screen tcell.Screen, commands chan<- command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			commands <- cmdResize
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				commands <- cmdQuit
			case ev.Rune() == 'r':
				commands <- cmdRegenerate
			case ev.Rune() == 's':
				commands <- cmdNewSeed
			case ev.Rune() == ' ':
				commands <- cmdTogglePause
			}
		}
	}
}
