package soccer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	AgentChar  = '●'
	PlayerChar = '@'
	GoalChar   = '░'
)

// World units covered by one terminal cell. Cells are roughly twice as
// tall as wide, so the vertical scale is doubled to keep the field
// visually square.
const (
	unitsPerCellX = 8.0
	unitsPerCellY = 16.0
)

// Render draws a camera-following viewport of the field plus a HUD row.
// The camera centers on the user agent (clamped to the field), so only a
// window of the full 1920x1080 world is visible at a time.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.match == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	cam := g.match.CameraTarget()

	// World coordinates of a cell center.
	worldX := func(x int) float64 {
		return cam.X + (float64(x)-float64(w)/2+0.5)*unitsPerCellX
	}
	worldY := func(y int) float64 {
		return cam.Y + (float64(y)-float64(h)/2+0.5)*unitsPerCellY
	}

	leftGoal := g.match.leftGoal.Rect()
	rightGoal := g.match.rightGoal.Rect()

	// Background pass: boundary lines, center line, goal zones.
	for y := 0; y < h; y++ {
		wy := worldY(y)
		for x := 0; x < w; x++ {
			wx := worldX(x)

			nearX := math.Abs(math.Abs(wx)-FieldHalfWidth) <= unitsPerCellX/2
			nearY := math.Abs(math.Abs(wy)-FieldHalfHeight) <= unitsPerCellY/2
			insideX := math.Abs(wx) <= FieldHalfWidth+unitsPerCellX/2
			insideY := math.Abs(wy) <= FieldHalfHeight+unitsPerCellY/2

			switch {
			case nearX && nearY:
				dst.SetCell(x, y, '┼', core.ColorWhite)
			case nearX && insideY:
				dst.SetCell(x, y, '│', core.ColorWhite)
			case nearY && insideX:
				dst.SetCell(x, y, '─', core.ColorWhite)
			case leftGoal.Contains(core.V(wx, wy)) || rightGoal.Contains(core.V(wx, wy)):
				dst.SetCell(x, y, GoalChar, core.ColorYellow)
			case math.Abs(wx) <= unitsPerCellX/2 && insideY:
				// Halfway line
				dst.SetCell(x, y, '·', core.ColorGray)
			}
		}
	}

	// Screen position of a world point.
	toScreen := func(p core.Vec2) (int, int) {
		sx := int(math.Round((p.X-cam.X)/unitsPerCellX + float64(w)/2 - 0.5))
		sy := int(math.Round((p.Y-cam.Y)/unitsPerCellY + float64(h)/2 - 0.5))
		return sx, sy
	}

	// Agents, user agent drawn last so it stays visible in a crowd.
	for _, a := range g.match.Agents() {
		if _, ok := a.(*UserAgent); ok {
			continue
		}
		x, y := toScreen(a.Position())
		if a.Team() == TeamBlue {
			dst.SetCell(x, y, AgentChar, core.ColorBlue)
		} else {
			dst.SetCell(x, y, AgentChar, core.ColorRed)
		}
	}
	ux, uy := toScreen(g.match.User().Position())
	dst.SetCell(ux, uy, PlayerChar, core.ColorBrightBlue)

	bx, by := toScreen(g.match.Ball().Position)
	dst.SetCell(bx, by, BallChar, core.ColorBrightWhite)

	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, g.fullTimeTitle(),
			fmt.Sprintf("%d - %d  |  Press R to restart", g.match.PlayerScore(), g.match.AIScore()))
	}
}

// renderHUD draws the score and clock on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf(" YOU %d - %d CPU ", g.match.PlayerScore(), g.match.AIScore())
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	var clock string
	if left := g.Remaining(); left >= 0 {
		total := int(left)
		clock = fmt.Sprintf(" %02d:%02d ", total/60, total%60)
	} else {
		clock = fmt.Sprintf(" %d:%02d ", int(g.elapsed)/60, int(g.elapsed)%60)
	}
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, core.ColorBrightYellow)
}

// fullTimeTitle summarizes the result for the full-time overlay.
func (g *Game) fullTimeTitle() string {
	switch {
	case g.match.PlayerScore() > g.match.AIScore():
		return "FULL TIME - YOU WIN!"
	case g.match.PlayerScore() < g.match.AIScore():
		return "FULL TIME - CPU WINS!"
	default:
		return "FULL TIME - DRAW"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
