package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/gemhop/internal/application/session"
	"github.com/younwookim/gemhop/internal/application/state"
	"github.com/younwookim/gemhop/internal/domain/entity"
)

// Colors for rendering
var (
	colorSky      = color.RGBA{120, 180, 230, 255}
	colorHills    = color.RGBA{90, 150, 200, 255}
	colorGrass    = color.RGBA{80, 170, 70, 255}
	colorBlock    = color.RGBA{150, 110, 70, 255}
	colorFlag     = color.RGBA{230, 60, 60, 255}
	colorPole     = color.RGBA{200, 200, 200, 255}
	colorGem      = color.RGBA{60, 220, 220, 255}
	colorGround   = color.RGBA{200, 100, 100, 255}
	colorLedge    = color.RGBA{220, 140, 60, 255}
	colorFlying   = color.RGBA{240, 240, 250, 255}
	colorHero     = color.RGBA{100, 200, 100, 255}
	colorHeart    = color.RGBA{220, 40, 60, 255}
	colorHeartBG  = color.RGBA{60, 60, 60, 255}
	colorGrid     = color.RGBA{0, 0, 0, 80}
	colorOverlay  = color.RGBA{0, 0, 0, 140}
	colorLoseTint = color.RGBA{100, 0, 0, 180}
)

const (
	heartSize  = 16
	blinkTicks = 4
)

type rectCmd struct {
	X, Y, W, H float64
	Color      color.Color
}

type lineCmd struct {
	X1, Y1, X2, Y2 float64
	Color          color.Color
}

type textCmd struct {
	Text string
	X, Y int
}

// frame is the list of primitives for one screen, in paint order
type frame struct {
	rects []rectCmd
	lines []lineCmd
	texts []textCmd
}

func (f frame) draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	for _, r := range f.rects {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, r.Color)
	}
	for _, l := range f.lines {
		ebitenutil.DrawLine(screen, l.X1, l.Y1, l.X2, l.Y2, l.Color)
	}
	for _, t := range f.texts {
		ebitenutil.DebugPrintAt(screen, t.Text, t.X, t.Y)
	}
}

// buildFrame lays out a snapshot in screen coordinates.
// The world is drawn bottom-aligned so short levels sit on the screen floor.
func buildFrame(snap session.Snapshot, screenW, screenH int) frame {
	var f frame
	offsetY := float64(screenH) - snap.WorldHeight

	f.background(snap, screenW, screenH)

	for _, s := range snap.Sprites {
		if s.Blink && (snap.Tick/blinkTicks)%2 == 1 {
			continue
		}
		c := spriteColor(s)
		if c == nil {
			continue
		}
		f.rects = append(f.rects, rectCmd{
			X: s.Rect.X - snap.CameraX, Y: s.Rect.Y + offsetY,
			W: s.Rect.W, H: s.Rect.H,
			Color: c,
		})
		if s.Kind == entity.KindHero {
			f.rects = append(f.rects, eyeOf(s, snap.CameraX, offsetY))
		}
	}

	if snap.DebugGrid {
		f.grid(snap, screenH, offsetY)
	}

	f.hud(snap)
	f.overlay(snap, screenW, screenH)
	return f
}

// background draws two copies of the hill band so the wrap never shows a gap
func (f *frame) background(snap session.Snapshot, screenW, screenH int) {
	bandH := float64(screenH) / 3
	y := float64(screenH) - bandH
	w := float64(screenW)
	for i := 0; i < 2; i++ {
		x := snap.BackgroundX + float64(i)*w
		f.rects = append(f.rects,
			rectCmd{X: x, Y: y, W: w / 2, H: bandH, Color: colorHills},
			rectCmd{X: x + w/2, Y: y + bandH/3, W: w / 2, H: bandH * 2 / 3, Color: colorHills},
		)
	}
}

func spriteColor(s session.Sprite) color.Color {
	var base color.RGBA
	switch s.Kind {
	case entity.KindPlatform, entity.KindGoal:
		switch s.Tile {
		case entity.TileGrass:
			base = colorGrass
		case entity.TileBlock:
			base = colorBlock
		case entity.TileFlag:
			base = colorFlag
		case entity.TilePole:
			base = colorPole
		default:
			return nil
		}
	case entity.KindGem:
		base = colorGem
	case entity.KindGroundPatroller:
		base = colorGround
	case entity.KindLedgePatroller:
		base = colorLedge
	case entity.KindFlyingPatroller:
		base = colorFlying
	case entity.KindHero:
		base = colorHero
	default:
		return nil
	}
	return shade(base, s.Frame)
}

// shade darkens odd animation frames so motion is visible without art
func shade(c color.RGBA, frameIdx int) color.RGBA {
	if frameIdx%2 == 0 {
		return c
	}
	return color.RGBA{dim(c.R), dim(c.G), dim(c.B), c.A}
}

func dim(v uint8) uint8 {
	return uint8(uint16(v) * 7 / 8)
}

func eyeOf(s session.Sprite, camX, offsetY float64) rectCmd {
	size := s.Rect.W / 8
	x := s.Rect.X + s.Rect.W*3/4 - size/2
	if s.Facing == entity.FacingLeft {
		x = s.Rect.X + s.Rect.W/4 - size/2
	}
	return rectCmd{
		X: x - camX, Y: s.Rect.Y + s.Rect.H/4 + offsetY,
		W: size, H: size,
		Color: color.Black,
	}
}

func (f *frame) grid(snap session.Snapshot, screenH int, offsetY float64) {
	ts := snap.TileSize
	if ts <= 0 {
		return
	}
	cols := int(math.Ceil(snap.WorldWidth / ts))
	rows := int(math.Ceil(snap.WorldHeight / ts))

	for x := 0; x <= cols; x++ {
		sx := float64(x)*ts - snap.CameraX
		f.lines = append(f.lines, lineCmd{X1: sx, Y1: offsetY, X2: sx, Y2: float64(screenH), Color: colorGrid})
	}
	for y := 0; y <= rows; y++ {
		sy := float64(y)*ts + offsetY
		f.lines = append(f.lines, lineCmd{X1: -snap.CameraX, Y1: sy, X2: snap.WorldWidth - snap.CameraX, Y2: sy, Color: colorGrid})
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			f.texts = append(f.texts, textCmd{
				Text: fmt.Sprintf("(%d,%d)", x, y),
				X:    int(float64(x)*ts-snap.CameraX) + 4,
				Y:    int(float64(y)*ts+offsetY) + 4,
			})
		}
	}
}

func (f *frame) hud(snap session.Snapshot) {
	for i := 0; i < snap.HUD.Hearts; i++ {
		f.rects = append(f.rects, rectCmd{
			X: 10 + float64(i)*(heartSize+6), Y: 10,
			W: heartSize, H: heartSize,
			Color: colorHeart,
		})
	}
	if snap.HUD.Hearts == 0 {
		f.rects = append(f.rects, rectCmd{X: 10, Y: 10, W: heartSize, H: heartSize, Color: colorHeartBG})
	}
	f.texts = append(f.texts,
		textCmd{Text: fmt.Sprintf("Gems: %d  Score: %d", snap.HUD.Gems, snap.HUD.Score), X: 10, Y: 32},
		textCmd{Text: fmt.Sprintf("Level %d: %s", snap.Level+1, snap.LevelName), X: 10, Y: 48},
	)
}

func (f *frame) overlay(snap session.Snapshot, screenW, screenH int) {
	var lines []string
	tint := colorOverlay

	switch snap.Stage {
	case state.StatePlaying:
		return
	case state.StateStart:
		lines = []string{"Gem Hop", "press any key"}
	case state.StateLose:
		lines = []string{"Game over", "press R to restart"}
		tint = colorLoseTint
	case state.StateLevelComplete:
		lines = []string{"Level complete!"}
	case state.StateWin:
		lines = []string{"You win!", fmt.Sprintf("score %d", snap.HUD.Score), "press R to play again"}
	}

	f.rects = append(f.rects, rectCmd{W: float64(screenW), H: float64(screenH), Color: tint})
	text := strings.Join(lines, "\n")
	f.texts = append(f.texts, textCmd{Text: text, X: screenW/2 - 60, Y: screenH/2 - 20})
}
