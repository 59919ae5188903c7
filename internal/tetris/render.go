package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per board cell
	panelGap   = 2  // Columns between board frame and side panel
	panelWidth = 38 // Widest side panel line

	defaultHistoryShown = 5
)

// Hints are the key descriptions drawn in the side panel.
type Hints struct {
	Controls []string // One line per control, shown while playing
	GameOver string   // Restart/exit prompt shown after game over
}

// DefaultHints describes the default key bindings.
func DefaultHints() Hints {
	return Hints{
		Controls: []string{
			"Left/Right  move",
			"Down        soft drop",
			"Up          rotate",
			"Space       hard drop",
			"P           pause",
		},
		GameOver: "Press R to Restart | Press Q to Exit",
	}
}

// frame returns the rectangle of the board border.
func (g *Game) frame() core.Rect {
	return core.NewRect(0, 0, g.board.Width()*cellWidth+2, g.board.Height()+2)
}

// tooSmall reports whether the screen cannot hold the board and side panel.
func (g *Game) tooSmall() bool {
	f := g.frame()
	return g.screenW < f.W+panelGap+panelWidth || g.screenH < f.H
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		return
	}

	if g.tooSmall() {
		g.renderTooSmall(dst)
		return
	}

	f := g.frame()
	dst.DrawBox(f, core.ColorGray)
	g.renderBoard(dst, f)
	g.renderPiece(dst, f)
	g.renderPanel(dst, f.Right()+panelGap)
	g.renderBanner(dst, f)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws settled blocks and the empty-cell grid.
func (g *Game) renderBoard(dst *core.Screen, f core.Rect) {
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			sx, sy := f.X+1+x*cellWidth, f.Y+1+y
			if c := g.board.At(x, y); c != core.ColorDefault {
				drawBlock(dst, sx, sy, c)
				continue
			}
			dst.SetCell(sx, sy, ' ', core.ColorGray)
			dst.SetCell(sx+1, sy, '·', core.ColorGray)
		}
	}
}

// renderPiece draws the falling piece over the board.
func (g *Game) renderPiece(dst *core.Screen, f core.Rect) {
	if g.phase == PhaseExited {
		return
	}
	for _, c := range g.current.Cells() {
		if c.Y < 0 {
			continue
		}
		drawBlock(dst, f.X+1+c.X*cellWidth, f.Y+1+c.Y, g.current.Color)
	}
}

// drawBlock draws one bordered cell.
func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetCell(x, y, '[', c)
	dst.SetCell(x+1, y, ']', c)
}

// renderPanel draws scores, key hints and the game-over summary.
func (g *Game) renderPanel(dst *core.Screen, x int) {
	dst.DrawTextColor(x, 1, "T E T R I S", core.ColorBrightCyan)
	dst.DrawText(x, 3, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x, 4, fmt.Sprintf("High Score (Current Game): %d", g.sessionHigh))
	dst.DrawText(x, 5, fmt.Sprintf("High Score (All Time): %d", g.allTimeHigh))

	y := 7
	dst.DrawTextColor(x, y, "Controls:", core.ColorGray)
	for _, line := range g.hints.Controls {
		y++
		dst.DrawTextColor(x, y, line, core.ColorGray)
	}

	if g.phase != PhaseGameOver {
		return
	}

	y += 2
	dst.DrawTextColor(x, y, "Game Over", core.ColorBrightRed)
	y++
	dst.DrawText(x, y, g.hints.GameOver)
	y++
	for i, score := range g.History(g.historyShown) {
		y++
		dst.DrawText(x, y, fmt.Sprintf("Game %d: %d", i+1, score))
	}
}

// renderBanner centers a PAUSED or GAME OVER label on the board.
func (g *Game) renderBanner(dst *core.Screen, f core.Rect) {
	var text string
	var color core.Color
	switch g.phase {
	case PhasePaused:
		text, color = " PAUSED ", core.ColorBrightYellow
	case PhaseGameOver:
		text, color = " GAME OVER ", core.ColorBrightRed
	default:
		return
	}
	cx, cy := f.Center()
	dst.DrawTextColor(cx-len(text)/2, cy, text, color)
}
