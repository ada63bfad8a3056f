package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/xgalaga/audio"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/game"
	"github.com/lixenwraith/xgalaga/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config (default ./xgalaga.toml, then built-in)")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config seed or the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Log to logs/xgalaga.log and show metrics")
	fpsFlag    = flag.Int("fps", 60, "Simulation and render rate")
	volumeFlag = flag.Float64("volume", 0.6, "Master volume 0..1")
)

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "xgalaga needs an interactive terminal")
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, source, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config loaded from %s source", source)

	registry := status.NewRegistry()
	opts := []game.Option{game.WithStatus(registry)}
	if *seedFlag != 0 {
		opts = append(opts, game.WithSeed(*seedFlag))
	}
	g, err := game.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager(*volumeFlag)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	var debug *status.Registry
	if *debugFlag {
		debug = registry
	}

	run(screen, g, sound, debug, max(*fpsFlag, 1))
}

// run owns the screen until quit, one Step per tick
func run(screen tcell.Screen, g *game.Game, sound *audio.SoundManager, debug *status.Registry, fps int) {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var keys keyState
	var msg banner
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handleKey(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if keys.takeMute() {
				sound.SetMuted(!sound.Muted())
			}

			dt := now.Sub(last).Seconds()
			last = now
			fx := g.Step(dt, keys.sample(now))
			if fx.Quit {
				log.Printf("quit at score %d", fx.Snapshot.Score)
				return
			}

			for _, ev := range fx.Events {
				logEvent(ev)
				if text := bannerFor(ev); text != "" {
					msg = banner{text: text, until: now.Add(bannerLength)}
				}
			}
			sound.HandleEvents(fx.Events)
			draw(screen, &fx.Snapshot, msg, now, debug)
		}
	}
}

func logEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWaveStarted, event.EventWaveCompleted, event.EventLevelCompleted,
		event.EventVictory, event.EventGameOver, event.EventGameReset:
		if ev.Payload != nil {
			log.Printf("frame %d: %s %+v", ev.Frame, ev.Type, ev.Payload)
		} else {
			log.Printf("frame %d: %s", ev.Frame, ev.Type)
		}
	}
}
