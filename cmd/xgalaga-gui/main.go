package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/xgalaga/audio"
	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/game"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config (default ./xgalaga.toml, then built-in)")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config seed or the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	scaleFlag  = flag.Float64("scale", 1, "Window scale")
)

// bannerTicks is how long an event message stays up
const bannerTicks = 120

type window struct {
	game  *game.Game
	sound *audio.SoundManager

	last   game.TickEffects
	banner string
	shown  int
}

// readInput samples the keyboard, edges for one-shot keys
func readInput() game.Input {
	return game.Input{
		MoveLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
		PauseToggle: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.sound.SetMuted(!w.sound.Muted())
	}

	fx := w.game.Step(1/float64(ebiten.TPS()), readInput())
	if fx.Quit {
		return ebiten.Termination
	}

	for _, ev := range fx.Events {
		if text := bannerText(ev); text != "" {
			w.banner, w.shown = text, bannerTicks
		}
	}
	if w.shown > 0 {
		w.shown--
	}
	w.sound.HandleEvents(fx.Events)
	w.last = fx
	return nil
}

// toScreen converts playfield coordinates (origin centered, y up) to pixels
func toScreen(pos core.Vec2, width, height float64) (float32, float32) {
	return float32(pos.X + width/2), float32(height/2 - pos.Y)
}

func entityColor(v game.EntityView) color.Color {
	switch v.Kind {
	case game.KindShip:
		return colornames.Cyan
	case game.KindSoldier:
		return colornames.Limegreen
	case game.KindBoss:
		return colornames.Magenta
	case game.KindPlayerProjectile:
		return colornames.Yellow
	case game.KindEnemyProjectile:
		return colornames.Red
	case game.KindPickup:
		switch v.Pickup.Kind {
		case component.PickupExtraLife:
			return colornames.Pink
		case component.PickupSkipWave:
			return colornames.Gold
		}
		return colornames.White
	case game.KindExplosion:
		return colornames.Orange
	}
	return colornames.Silver
}

func bannerText(ev event.GameEvent) string {
	switch ev.Type {
	case event.EventLevelCompleted:
		if p, ok := ev.Payload.(*event.WavePayload); ok {
			return fmt.Sprintf("LEVEL %d COMPLETE", p.Level)
		}
	case event.EventWaveCompleted:
		if p, ok := ev.Payload.(*event.WaveCompletedPayload); ok && p.Perfect {
			return "GOOD JOB"
		}
	}
	return ""
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	cfg := w.game.Config()
	snap := &w.last.Snapshot
	width, height := snap.Width, snap.Height

	for _, v := range snap.Entities {
		x, y := toScreen(v.Pos, width, height)
		clr := entityColor(v)
		switch v.Kind {
		case game.KindShip:
			sw, sh := float32(cfg.Ship.Width), float32(cfg.Ship.Height)
			vector.DrawFilledRect(screen, x-sw/2, y-sh/2, sw, sh, clr, true)
		case game.KindSoldier:
			vector.DrawFilledCircle(screen, x, y, float32(cfg.Enemy.Size/2), clr, true)
		case game.KindBoss:
			vector.DrawFilledCircle(screen, x, y, float32(cfg.Enemy.Size*cfg.Enemy.BossScale/2), clr, true)
		case game.KindPlayerProjectile:
			bw, bh := float32(cfg.Weapon.BulletWidth), float32(cfg.Weapon.BulletHeight)
			vector.DrawFilledRect(screen, x-bw/2, y-bh/2, bw, bh, clr, true)
		case game.KindEnemyProjectile:
			vector.DrawFilledCircle(screen, x, y, 4, clr, true)
		case game.KindPickup:
			vector.StrokeCircle(screen, x, y, 10, 2, clr, true)
		case game.KindExplosion:
			r := float32(30 * (1 - v.Life/cfg.Effect.ExplosionDuration))
			vector.StrokeCircle(screen, x, y, max(r, 2), 2, clr, true)
		case game.KindFloatingScore:
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(v.Value), int(x), int(y))
		}
	}

	hud := fmt.Sprintf("SCORE %d  LIVES %d  LEVEL %d WAVE %d  %s", snap.Score, snap.Lives, snap.Level, snap.Wave, snap.Weapon)
	if snap.RapidRemaining > 0 {
		hud += fmt.Sprintf(" x%d", snap.RapidRemaining)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)

	msg := ""
	switch {
	case snap.Victory:
		msg = "VICTORY  (r restart, q quit)"
	case snap.GameOver:
		msg = "GAME OVER  (r restart, q quit)"
	case snap.Paused:
		msg = "PAUSE"
	case w.shown > 0:
		msg = w.banner
	}
	if msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, int(width)/2-len(msg)*3, int(height)/2)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return int(cfg.Playfield.Width), int(cfg.Playfield.Height)
}

func main() {
	flag.Parse()

	cfg, source, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config loaded from %s source", source)

	var opts []game.Option
	if *seedFlag != 0 {
		opts = append(opts, game.WithSeed(*seedFlag))
	}
	g, err := game.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(0.6)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	w := &window{game: g, sound: sound, last: g.Step(0, game.Input{})}

	ebiten.SetWindowTitle("xgalaga")
	ebiten.SetWindowSize(int(cfg.Playfield.Width*(*scaleFlag)), int(cfg.Playfield.Height*(*scaleFlag)))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
