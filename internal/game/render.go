package game

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/draw"
)

// HUD receives the numbers shown next to the road every frame.
type HUD interface {
	SetSpeed(speed int)
	SetScore(score int)
}

// Colors and stroke styles of the scene.
var (
	roadColor   = core.Color("#1b2033")
	playerColor = core.Color("#3b5cff")

	laneStroke   = draw.Stroke{Paint: draw.Solid("#f7f7f7"), Width: 6, Dash: 25, Gap: 20}
	borderStroke = draw.Stroke{Paint: draw.Solid(core.ColorYellow), Width: 10}

	stripePaint  = draw.RGBA(255, 255, 255, 0.5)
	overlayPaint = draw.RGBA(0, 0, 0, 0.7)
	textPaint    = draw.Solid(core.ColorWhite)
)

// Car decoration in pixels, relative to the car's top-left corner.
const (
	stripeInset   = 8
	stripeHeight  = 12
	frontStripeY  = 10
	rearStripeY   = 40
	titleFontSize = 46
	hintFontSize  = 20
)

// Overlay text shown after a crash.
const (
	CrashTitle = "Crash!"
	CrashHint  = "Press R to restart"
)

// Renderer draws a State. It never modifies the state.
type Renderer struct {
	speedReadout float64
}

// NewRenderer creates a renderer using the config's HUD speed scale.
func NewRenderer(cfg config.Config) Renderer {
	return Renderer{speedReadout: cfg.Tuning.SpeedReadout}
}

// DrawRoad draws the road surface, the dashed lane dividers and the border.
func (r Renderer) DrawRoad(dst draw.Surface, road Roadway) {
	_, h := dst.Size()
	width := road.Right - road.Left

	dst.FillRect(core.NewBox(road.Left, road.Top, width, road.Bottom), draw.Solid(roadColor))

	for i := 1; i < road.LaneCount; i++ {
		x := road.Left + road.LaneWidth()*float64(i)
		dst.Line(x, 0, x, h, laneStroke)
	}

	dst.StrokeRect(core.NewBox(road.Left, 0, width, h), borderStroke)
}

// DrawScene draws traffic, the player and, after a crash, the overlay.
// The HUD is updated every frame whether or not the game is over.
func (r Renderer) DrawScene(dst draw.Surface, s *State, hud HUD) {
	for _, o := range s.Obstacles {
		drawCar(dst, o.Box(), o.Color)
	}
	drawCar(dst, s.Player.Box(), playerColor)

	if hud != nil {
		hud.SetSpeed(r.SpeedReadout(s.GameSpeed))
		hud.SetScore(ScoreReadout(s.Score))
	}

	if s.GameOver {
		w, h := dst.Size()
		dst.FillRect(core.NewBox(0, 0, w, h), overlayPaint)
		dst.Text(w/2, h/2-20, CrashTitle, draw.Font{Size: titleFontSize, Bold: true}, textPaint)
		dst.Text(w/2, h/2+20, CrashHint, draw.Font{Size: hintFontSize}, textPaint)
	}
}

// SpeedReadout converts a game speed to the HUD's integer speed.
func (r Renderer) SpeedReadout(gameSpeed float64) int {
	return int(math.Round(gameSpeed * r.speedReadout))
}

// ScoreReadout converts the running score to the HUD's integer score.
func ScoreReadout(score float64) int {
	return int(math.Floor(score))
}

// drawCar draws a body with two translucent window stripes.
func drawCar(dst draw.Surface, b core.Box, body core.Color) {
	dst.FillRect(b, draw.Solid(body))
	dst.FillRect(core.NewBox(b.X+stripeInset, b.Y+frontStripeY, b.W-2*stripeInset, stripeHeight), stripePaint)
	dst.FillRect(core.NewBox(b.X+stripeInset, b.Y+rearStripeY, b.W-2*stripeInset, stripeHeight), stripePaint)
}
