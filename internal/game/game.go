package game

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 24

// bannerScale is the integer upscale factor applied to the outcome banner.
const bannerScale = 4

// Game is the Ebiten host around a Session. It forwards clicks to the
// waypoint, drives fixed-rate simulation ticks through a fractional speed
// accumulator, and draws each entity from the shape/position/size/colour
// the core reports. The core itself never draws.
type Game struct {
	session *Session
	cfg     Config

	width  int // window width
	height int // window height
	offX   int // pixel offset from window left to arena left
	offY   int

	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Offscreen buffer for banner text — rendered at 1x then blitted scaled.
	bannerBuf *ebiten.Image

	playerHeading float64 // host-side facing for the turtle icon
	copyFrames    int     // frames left to show the "report copied" note
}

// New creates a windowed game with the default arena.
func New() *Game {
	g, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid; this is unreachable short of a
		// programming error in DefaultConfig itself.
		log.Fatal(err)
	}
	return g
}

// NewWithConfig creates a windowed game around a fresh session.
func NewWithConfig(cfg Config) (*Game, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		session:  session,
		cfg:      cfg,
		width:    cfg.ArenaWidth + 2*borderWidth,
		height:   cfg.ArenaHeight + 2*borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		simSpeed: 1.0,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.bannerBuf = ebiten.NewImage(g.width/bannerScale, g.height/bannerScale)
	return g, nil
}

// Session exposes the current session, mainly for the host process and tests.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Update() error {
	g.handleInput()

	if g.session.Outcome().Terminal() || g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.session.AdvanceTick()
		if g.session.Outcome().Terminal() {
			g.tickAccum = 0
			break
		}
	}

	// Face the turtle toward the waypoint while one is active.
	if wx, wy, ok := g.session.Waypoint().Target(); ok {
		px, py := g.session.Player().Pos()
		g.playerHeading = HeadingTo(px, py, wx, wy)
	}
	return nil
}

// handleInput processes clicks and edge-triggered key presses.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Left click inside the arena places the waypoint.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		wx := float64(mx - g.offX)
		wy := float64(my - g.offY)
		if wx >= 0 && wx <= float64(g.cfg.ArenaWidth) && wy >= 0 && wy <= float64(g.cfg.ArenaHeight) {
			g.session.Click(wx, wy)
		}
	}
	g.prevMouseLeft = mouseLeft

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	if pressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if pressed(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if pressed(ebiten.KeyPeriod) {
		for i, s := range speeds {
			if s <= g.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > g.simSpeed {
					g.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	// R: restart. A win advances to the next level; a loss retries it.
	if pressed(ebiten.KeyR) && g.session.Outcome().Terminal() {
		cfg := g.cfg
		if g.session.Outcome() == OutcomeWin {
			cfg.Level++
		}
		if next, err := NewSession(cfg); err == nil {
			g.cfg = cfg
			g.session = next
			g.tickAccum = 0
			g.playerHeading = 0
		}
	}

	// C: copy a debug report of the recent ticks to the clipboard.
	if pressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.session.DebugReport(240)); err == nil {
			g.copyFrames = 120
		}
	}
	if g.copyFrames > 0 {
		g.copyFrames--
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Window background, darker than the arena.
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	ox := float32(g.offX)
	oy := float32(g.offY)
	aw := float32(g.cfg.ArenaWidth)
	ah := float32(g.cfg.ArenaHeight)

	// Arena ground and border frame.
	vector.FillRect(screen, ox, oy, aw, ah, color.RGBA{R: 26, G: 32, B: 26, A: 255}, false)
	borderCol := color.RGBA{R: 65, G: 90, B: 65, A: 255}
	vector.StrokeRect(screen, ox-1, oy-1, aw+2, ah+2, 2.0, borderCol, false)
	vector.StrokeRect(screen, ox-3, oy-3, aw+6, ah+6, 1.0, color.RGBA{R: 40, G: 65, B: 40, A: 100}, false)

	for _, e := range g.session.Entities() {
		g.drawEntity(screen, e)
	}

	g.drawHUD(screen)

	if g.session.Outcome().Terminal() {
		g.drawBanner(screen)
	}
}

// drawEntity renders one entity from the geometry the core reports.
func (g *Game) drawEntity(screen *ebiten.Image, e Entity) {
	x, y := e.Pos()
	sx := float32(g.offX) + float32(x)
	sy := float32(g.offY) + float32(y)
	half := float32(e.Size()) / 2
	col := e.Color()

	switch e.Shape() {
	case ShapeRect:
		vector.StrokeRect(screen, sx-half, sy-half, half*2, half*2, 2.0, col, false)

	case ShapeCross:
		if !g.session.Waypoint().Active() {
			return
		}
		vector.StrokeLine(screen, sx-half, sy-half, sx+half, sy+half, 2.0, col, false)
		vector.StrokeLine(screen, sx-half, sy+half, sx+half, sy-half, 2.0, col, false)

	case ShapeCircle:
		vector.StrokeCircle(screen, sx, sy, half, 2.0, col, true)

	case ShapeTurtle:
		// Oriented triangle: nose along the current heading.
		nose := float64(half) * 1.4
		back := float64(half) * 0.9
		a := g.playerHeading
		nx := sx + float32(math.Cos(a)*nose)
		ny := sy + float32(math.Sin(a)*nose)
		lx := sx + float32(math.Cos(a+2.5)*back)
		ly := sy + float32(math.Sin(a+2.5)*back)
		rx := sx + float32(math.Cos(a-2.5)*back)
		ry := sy + float32(math.Sin(a-2.5)*back)

		var path vector.Path
		path.MoveTo(nx, ny)
		path.LineTo(lx, ly)
		path.LineTo(rx, ry)
		path.Close()
		fillOpts := &vector.DrawPathOptions{AntiAlias: true}
		fillOpts.ColorScale.ScaleWithColor(col)
		vector.FillPath(screen, &path, nil, fillOpts)
	}
}

// drawHUD renders the level banner line and the key legend.
func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	level := fmt.Sprintf("Level %d", g.session.Level())
	text.Draw(screen, level, face, g.width/2-len(level)*7/2, 16,
		color.RGBA{R: 160, G: 160, B: 160, A: 255})

	speedStr := fmt.Sprintf("%.1fx", g.simSpeed)
	if g.simSpeed == 0 {
		speedStr = "PAUSED"
	}
	hud := fmt.Sprintf("T=%d  enemies=%d  sim: %s  P=pause ,/.=speed  C=copy report",
		g.session.Tick(), len(g.session.Enemies()), speedStr)
	ebitenutil.DebugPrintAt(screen, hud, g.offX, g.height-18)

	if g.copyFrames > 0 {
		ebitenutil.DebugPrintAt(screen, "report copied to clipboard", g.offX, g.height-34)
	}
}

// drawBanner renders the win/lose text at bannerScale via an offscreen
// buffer so the bitmap face stays crisp when enlarged.
func (g *Game) drawBanner(screen *ebiten.Image) {
	rep := g.session.Report()
	msg := "YOU LOSE"
	col := color.RGBA{R: 220, G: 50, B: 50, A: 255}
	if rep.Outcome == OutcomeWin {
		msg = "YOU WIN"
		col = color.RGBA{R: 60, G: 200, B: 60, A: 255}
	}
	sub := fmt.Sprintf("Level %d - press R", rep.Level)

	face := basicfont.Face7x13
	bw := g.width / bannerScale
	bh := g.height / bannerScale

	g.bannerBuf.Clear()
	text.Draw(g.bannerBuf, msg, face, bw/2-len(msg)*7/2, bh/2, col)
	text.Draw(g.bannerBuf, sub, face, bw/2-len(sub)*7/2, bh/2+14,
		color.RGBA{R: 200, G: 200, B: 200, A: 255})

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(bannerScale, bannerScale)
	screen.DrawImage(g.bannerBuf, opts)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
