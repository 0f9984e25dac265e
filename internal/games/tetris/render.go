package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Board layout in terminal cells.
const (
	cellW      = 2 // Each board cell is two columns wide
	hudHeight  = 2 // HUD line plus a blank row
	boardW     = core.Width*cellW + 2
	boardH     = core.Height + 2
	MinScreenW = boardW
	MinScreenH = boardH + hudHeight
)

var blockColors = [core.ColorCount]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorPurple: platformcore.ColorPurple,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorCyan:   platformcore.ColorCyan,
	core.ColorPink:   platformcore.ColorPink,
}

// screenColor maps a block color to a terminal color.
func screenColor(c core.BlockColor) platformcore.Color {
	if c >= core.ColorCount {
		return platformcore.ColorDefault
	}
	return blockColors[c]
}

// boardRect returns the framed board area, centered horizontally below the HUD.
func (g *Game) boardRect() platformcore.Rect {
	x := platformcore.Clamp((g.screenW-boardW)/2, 0, g.screenW)
	return platformcore.NewRect(x, hudHeight, boardW, boardH)
}

// Render draws the HUD, the board and any status overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, g.screenW, g.screenH))
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)

	switch g.session.Status() {
	case core.StatusStartup:
		g.renderOverlay(dst, "TETRIS", "Press Enter to start")
	case core.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case core.StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.session.Score()))
	}
}

// renderHUD draws the status line above the board.
func (g *Game) renderHUD(dst *platformcore.Screen, board platformcore.Rect) {
	piece := g.session.ActivePiece()
	hud := fmt.Sprintf("Score %d  %s  Piece %s  Fall %dms", g.session.Score(), g.session.Status(),
		piece.Shape(), g.session.FallPeriod().Milliseconds())
	dst.DrawTextColored(board.X, 0, hud, platformcore.ColorWhite)
}

// renderBoard draws the frame, empty-cell dots and every occupied cell.
func (g *Game) renderBoard(dst *platformcore.Screen, board platformcore.Rect) {
	dst.DrawBox(board, platformcore.ColorGray)

	for y := range core.Height {
		for x := range core.Width {
			dst.SetColored(board.X+1+x*cellW+1, board.Y+1+y, '·', platformcore.ColorGray)
		}
	}

	for c := range g.session.GridView() {
		r := '█'
		if c.Status == core.CellFrozen {
			r = '▓'
		}
		px := board.X + 1 + c.X*cellW
		py := board.Y + 1 + c.Y
		color := screenColor(c.Color)
		dst.SetColored(px, py, r, color)
		dst.SetColored(px+1, py, r, color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.CenteredIn(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
