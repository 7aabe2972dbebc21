package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/enclose/model"
)

var (
	COLOR_BACKGROUND = color.RGBA{0x10, 0x10, 0x18, 0xff}
	COLOR_SOLID      = color.RGBA{0x2c, 0x5d, 0x8a, 0xff}
	COLOR_TRAIL      = color.RGBA{0xed, 0xbc, 0x1e, 0xff}
	COLOR_PLAYER     = color.RGBA{0xfa, 0xfa, 0xfa, 0xff}
	COLOR_DRAWING    = color.RGBA{0x0a, 0xbd, 0x38, 0xff}
	COLOR_ENEMY      = color.RGBA{0xfa, 0x36, 0x36, 0xff}
)

var keyDirections = []struct {
	keys []ebiten.Key
	dir  model.Direction
}{
	{[]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, model.Left},
	{[]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, model.Right},
	{[]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, model.Up},
	{[]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, model.Down},
}

var keyIntents = []struct {
	key    ebiten.Key
	intent model.Intent
}{
	{ebiten.KeyP, model.IntentTogglePause},
	{ebiten.KeyR, model.IntentRestart},
	{ebiten.KeyN, model.IntentAdvance},
	{ebiten.KeyEnter, model.IntentContinue},
}

type Game struct {
	src   Source
	snap  model.Snapshot
	Panel *Nine
	Font  font.Face
	Small font.Face

	Tweens       map[*gween.Tween]*Action
	claimTween   *gween.Tween
	shownClaimed float32
	flash        float32
	lastLives    int
	lastClaimed  float64
}

func newFaces() (font.Face, font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, nil, err
	}
	const dpi = 72
	big := truetype.NewFace(tt, &truetype.Options{Size: 32, DPI: dpi, Hinting: font.HintingFull})
	small := truetype.NewFace(tt, &truetype.Options{Size: 14, DPI: dpi, Hinting: font.HintingFull})
	return big, small, nil
}

func NewGame(src Source) (*Game, error) {
	big, small, err := newFaces()
	if err != nil {
		return nil, err
	}
	panel, err := NewFrameNine(.5)
	if err != nil {
		return nil, err
	}
	snap := src.Snapshot()
	return &Game{
		src:       src,
		snap:      snap,
		Panel:     panel,
		Font:      big,
		Small:     small,
		Tweens:    make(map[*gween.Tween]*Action),
		lastLives: snap.Lives,
	}, nil
}

func (g *Game) readInput() {
	for _, kd := range keyDirections {
		for _, k := range kd.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.src.Send(model.DirectionMessage(kd.dir))
			}
		}
	}
	for _, ki := range keyIntents {
		if inpututil.IsKeyJustPressed(ki.key) {
			g.src.Send(model.ClientMessage{Intent: ki.intent})
		}
	}
}

// follow picks up the newest snapshot and starts HUD effects for what changed.
func (g *Game) follow() {
	snap := g.src.Snapshot()
	if snap.Lives < g.lastLives {
		g.flashLifeLost()
	}
	if snap.Claimed != g.lastClaimed {
		g.countClaimed(snap.Claimed)
	}
	if snap.Phase != g.snap.Phase {
		log.Debugf("client phase %s", snap.Phase.Name())
	}
	g.lastLives = snap.Lives
	g.lastClaimed = snap.Claimed
	g.snap = snap
}

func (g *Game) update(screen *ebiten.Image) error {
	g.readInput()
	g.follow()
	g.updateTweens()

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	if err := screen.Fill(COLOR_BACKGROUND); err != nil {
		log.Warnf("fill %v", err)
	}
	g.drawField(screen)
	g.drawHud(screen)
	return nil
}

func (g *Game) drawField(screen *ebiten.Image) {
	s := &g.snap
	for c := 0; c < s.Cols; c++ {
		for r := 0; r < s.Rows; r++ {
			x, y := float64(c*cellSize), float64(hudHeight+r*cellSize)
			switch s.Cells[c][r] {
			case model.Solid:
				ebitenutil.DrawRect(screen, x, y, cellSize, cellSize, COLOR_SOLID)
			case model.Trail:
				ebitenutil.DrawRect(screen, x+1, y+1, cellSize-2, cellSize-2, COLOR_TRAIL)
			}
		}
	}

	for _, e := range s.Enemies {
		x, y := e.X*cellSize, hudHeight+e.Y*cellSize
		ebitenutil.DrawRect(screen, x-cellSize/2, y-cellSize/2, cellSize, cellSize, COLOR_ENEMY)
	}

	pc := COLOR_PLAYER
	if s.Player.Drawing {
		pc = COLOR_DRAWING
	}
	px, py := float64(s.Player.Col*cellSize), float64(hudHeight+s.Player.Row*cellSize)
	ebitenutil.DrawRect(screen, px-1, py-1, cellSize+2, cellSize+2, pc)

	if g.flash > 0 {
		w, h := screen.Size()
		ebitenutil.DrawRect(screen, 0, hudHeight, float64(w), float64(h-hudHeight), color.NRGBA{0xfa, 0x36, 0x36, uint8(255 * g.flash)})
	}
}

func (g *Game) drawHud(screen *ebiten.Image) {
	w, h := screen.Size()
	g.Panel.SetTint(1, 1, 1, 1)
	g.Panel.SetBounds(0, 0, w, hudHeight)
	g.Panel.Draw(screen)

	hud := fmt.Sprintf("LIVES %d   SCORE %05d   LEVEL %d   %4.1f%% / %.0f%%",
		g.snap.Lives, g.snap.Score, g.snap.Level, g.shownClaimed, g.snap.Target)
	text.Draw(screen, hud, g.Small, 12, 26, color.White)

	banner, hint := "", ""
	switch g.snap.Phase {
	case model.Paused:
		banner, hint = "PAUSED", "P to resume"
		g.Panel.SetTint(.6, .6, 1, .9)
	case model.LevelCleared:
		banner, hint = "LEVEL CLEAR", "N or Enter for the next level"
		g.Panel.SetTint(.4, 1, .5, .9)
	case model.GameOver:
		banner, hint = "GAME OVER", "R or Enter to play again"
		g.Panel.SetTint(1, .4, .4, .9)
	}
	if banner == "" {
		return
	}
	bw, bh := 320, 100
	bx, by := (w-bw)/2, hudHeight+(h-hudHeight-bh)/2
	g.Panel.SetBounds(bx, by, bw, bh)
	g.Panel.Draw(screen)
	text.Draw(screen, banner, g.Font, bx+24, by+48, color.White)
	text.Draw(screen, hint, g.Small, bx+24, by+78, color.White)
}

func main() {
	cc, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	src, err := cc.Open()
	if err != nil {
		log.Fatalf("open game: %v", err)
	}
	defer src.Close()

	g, err := NewGame(src)
	if err != nil {
		log.Fatal(err)
	}
	width, height := g.snap.Cols*cellSize, hudHeight+g.snap.Rows*cellSize
	if err := ebiten.Run(g.update, width, height, cc.Scale, "Enclose"); err != nil {
		log.Fatal(err)
	}
}
