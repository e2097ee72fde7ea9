package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '▼'
	BulletChar = '│'
	RuleChar   = '─'
	BarFull    = '█'
	BarEmpty   = '░'
)

const (
	hudRows        = 2  // score/health line plus separator
	healthBarWidth = 10 // cells
	minScreenW     = 20
	minScreenH     = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	snap := g.eng.Snapshot()
	view := newViewport(snap, dst.Width(), dst.Height())

	g.renderHUD(dst, snap)
	for _, b := range snap.Bullets {
		view.fill(dst, b.Body, BulletChar, core.ColorBrightYellow)
	}
	for _, e := range snap.Enemies {
		view.fill(dst, e.Body, EnemyChar, core.ColorRed)
	}
	view.fill(dst, snap.Player, PlayerChar, core.ColorCyan)

	if snap.GameOver() {
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d - press R to restart", snap.Score))
	}
}

// renderHUD draws score and the health bar on row 0 and a rule on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	ratio := snap.HealthRatio()
	bar := HealthBar(ratio, healthBarWidth)
	label := fmt.Sprintf(" %d/%d", snap.Health, snap.MaxHealth)

	x := dst.Width() - len([]rune(bar)) - len(label) - 4
	dst.DrawText(x, 0, "HP ")
	dst.DrawTextColored(x+3, 0, bar, core.HealthColor(ratio))
	dst.DrawText(x+3+len([]rune(bar)), 0, label)

	for col := range dst.Width() {
		dst.SetColored(col, 1, RuleChar, core.ColorGray)
	}
}

// HealthBar returns a bar of width cells with the filled share matching ratio.
func HealthBar(ratio float64, width int) string {
	filled := int(math.Round(core.Clamp(ratio, 0, 1) * float64(width)))
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

// drawCenteredBox draws a message box in the center of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// viewport scales playfield units onto the screen area below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	bottom int
	width  int
}

func newViewport(snap engine.Snapshot, screenW, screenH int) viewport {
	return viewport{
		sx:     float64(screenW) / snap.Width,
		sy:     float64(screenH-hudRows) / snap.Height,
		top:    hudRows,
		bottom: screenH,
		width:  screenW,
	}
}

// cells converts a playfield rectangle to screen cells. Every visible body
// covers at least one cell.
func (v viewport) cells(r core.Rect[float64]) core.Rect[int] {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(r.Y*v.sy)) + v.top
	y1 := int(math.Ceil(r.Bottom()*v.sy)) + v.top
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (v viewport) fill(dst *core.Screen, r core.Rect[float64], ch rune, c core.Color) {
	cell := v.cells(r)
	for y := max(cell.Y, v.top); y < min(cell.Bottom(), v.bottom); y++ {
		for x := max(cell.X, 0); x < min(cell.Right(), v.width); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}
