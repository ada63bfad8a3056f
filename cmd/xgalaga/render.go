package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/game"
	"github.com/lixenwraith/xgalaga/status"
)

const (
	hudRows      = 1
	bannerLength = 2 * time.Second
)

var (
	styleDefault = tcell.StyleDefault
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleSoldier = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBoom    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleScore   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDebug   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// project maps a playfield position (origin centered, y up) to a screen cell below the HUD
func project(pos core.Vec2, width, height float64, cols, rows int) (int, int, bool) {
	fieldRows := rows - hudRows
	if cols <= 0 || fieldRows <= 0 {
		return 0, 0, false
	}
	x := int((pos.X + width/2) / width * float64(cols))
	y := int((height/2 - pos.Y) / height * float64(fieldRows))
	if x < 0 || x >= cols || y < 0 || y >= fieldRows {
		return 0, 0, false
	}
	return x, y + hudRows, true
}

// glyph returns the rune and style for one entity
func glyph(v game.EntityView) (rune, tcell.Style) {
	switch v.Kind {
	case game.KindShip:
		return 'A', styleShip
	case game.KindSoldier:
		return 'W', styleSoldier
	case game.KindBoss:
		return 'M', styleBoss
	case game.KindPlayerProjectile:
		return '|', styleShot
	case game.KindEnemyProjectile:
		return '.', styleBullet
	case game.KindPickup:
		switch v.Pickup.Kind {
		case component.PickupExtraLife:
			return '+', stylePickup
		case component.PickupSkipWave:
			return '>', stylePickup
		}
		return '?', stylePickup
	case game.KindExplosion:
		return '*', styleBoom
	}
	return ' ', styleDefault
}

// banner is a timed centered message raised by events
type banner struct {
	text  string
	until time.Time
}

// bannerFor picks the message an event raises, empty for none
func bannerFor(ev event.GameEvent) string {
	switch ev.Type {
	case event.EventLevelCompleted:
		if p, ok := ev.Payload.(*event.WavePayload); ok {
			return fmt.Sprintf("LEVEL %d COMPLETE", p.Level)
		}
	case event.EventWaveCompleted:
		if p, ok := ev.Payload.(*event.WaveCompletedPayload); ok && p.Perfect {
			return "GOOD JOB"
		}
	case event.EventWaveStarted:
		if p, ok := ev.Payload.(*event.WavePayload); ok {
			return fmt.Sprintf("WAVE %d-%d", p.Level, p.Wave)
		}
	}
	return ""
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	cols, _ := s.Size()
	drawText(s, (cols-len(text))/2, y, style, text)
}

// draw renders one snapshot with HUD and overlays
func draw(s tcell.Screen, snap *game.Snapshot, b banner, now time.Time, debug *status.Registry) {
	s.Clear()
	cols, rows := s.Size()

	for _, v := range snap.Entities {
		x, y, ok := project(v.Pos, snap.Width, snap.Height, cols, rows)
		if !ok {
			continue
		}
		if v.Kind == game.KindFloatingScore {
			drawText(s, x, y, styleScore, strconv.Itoa(v.Value))
			continue
		}
		r, style := glyph(v)
		s.SetContent(x, y, r, nil, style)
	}

	hud := fmt.Sprintf(" SCORE %-7d LIVES %d  LEVEL %d WAVE %d  %s", snap.Score, snap.Lives, snap.Level, snap.Wave, snap.Weapon)
	if snap.RapidRemaining > 0 {
		hud += fmt.Sprintf(" x%d", snap.RapidRemaining)
	}
	for x := 0; x < cols; x++ {
		s.SetContent(x, 0, ' ', nil, styleHUD)
	}
	drawText(s, 0, 0, styleHUD, hud)

	mid := rows / 2
	switch {
	case snap.Victory:
		drawCentered(s, mid, styleBanner, "VICTORY")
		drawCentered(s, mid+1, styleDefault, "r restart  q quit")
	case snap.GameOver:
		drawCentered(s, mid, styleBanner, "GAME OVER")
		drawCentered(s, mid+1, styleDefault, "r restart  q quit")
	case snap.Paused:
		drawCentered(s, mid, styleBanner, "PAUSE")
	case now.Before(b.until):
		drawCentered(s, mid, styleBanner, b.text)
	}

	if debug != nil {
		drawText(s, 0, rows-1, styleDebug, debug.Summary())
	}
	s.Show()
}
