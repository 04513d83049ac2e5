package farmer

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
)

const (
	cellWidth  = 9 // Width of each cell (including the left border)
	cellHeight = 3 // Height of each cell (including the top border)
	hudHeight  = 3
	minWidth   = 60
)

// minSize returns the smallest screen that fits the board, HUD and status.
func (g *Game) minSize() (int, int) {
	boardW := g.cfg.Grid.Cols*cellWidth + 1
	boardH := g.cfg.Grid.Rows*cellHeight + 1
	return core.Max(boardW, minWidth), hudHeight + 1 + boardH + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.sim.Snapshot()
	boardW := snap.Cols*cellWidth + 1
	boardH := snap.Rows*cellHeight + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap, boardX, boardY)
	g.renderStatus(dst, snap, boardY+boardH+1)
	g.renderOverlays(dst, snap, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH), core.ColorDim)
}

// renderHUD draws the title, the economy line and the tool bar.
func (g *Game) renderHUD(dst *core.Screen, snap farm.Snapshot) {
	dst.DrawTextCentered(0, g.title, core.ColorText)

	d := snap.Director
	line := []segment{
		{fmt.Sprintf("$%d", snap.Economy.Money), core.ColorMoney},
		{fmt.Sprintf("  Harvested %d", snap.Economy.Harvested), core.ColorReady},
		{fmt.Sprintf("  Cured %d", snap.Economy.Eliminated), core.ColorText},
		{fmt.Sprintf("  Plague %d/%d", d.Live, d.Cap), core.ColorPlague},
		{fmt.Sprintf("  Lost %d", d.Consumed), core.ColorDeadSoil},
	}
	drawSegmentsCentered(dst, 1, line)

	var tools []segment
	for _, t := range toolLabels {
		tools = append(tools, toolSegment(t.label, t.action == snap.Economy.SelectedAction))
	}
	tools = append(tools, segment{"  ", core.ColorDefault})
	for i, c := range g.cfg.Crops {
		if i >= 4 {
			break
		}
		label := fmt.Sprintf("%d %s $%d", i+1, c.Name, c.PlantingCost)
		tools = append(tools, toolSegment(label, farm.CropKind(c.Kind) == snap.Economy.SelectedKind))
	}
	drawSegmentsCentered(dst, 2, tools)
}

var toolLabels = []struct {
	action farm.Action
	label  string
}{
	{farm.ActionPlant, "Z Plant"},
	{farm.ActionHarvest, "X Harvest"},
	{farm.ActionPesticide, "C Cure"},
}

// segment is a run of text in one color.
type segment struct {
	text  string
	color core.Color
}

func toolSegment(label string, selected bool) segment {
	if selected {
		return segment{"[" + label + "]", core.ColorCursor}
	}
	return segment{" " + label + " ", core.ColorDim}
}

func drawSegmentsCentered(dst *core.Screen, y int, segs []segment) {
	width := 0
	for _, s := range segs {
		width += utf8.RuneCountInString(s.text)
	}
	x := (dst.Width() - width) / 2
	for _, s := range segs {
		dst.DrawTextColored(x, y, s.text, s.color)
		x += utf8.RuneCountInString(s.text)
	}
}

// renderBoard draws the grid lines, the cells, the cursor and plague links.
func (g *Game) renderBoard(dst *core.Screen, snap farm.Snapshot, boardX, boardY int) {
	rows, cols := snap.Rows, snap.Cols
	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorDim)

			if x < cols {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorDim)
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorDim)
				}
			}
		}
	}

	for _, cell := range snap.Cells {
		x := boardX + cell.Pos.Col*cellWidth + 1
		y := boardY + cell.Pos.Row*cellHeight + 1
		g.renderCell(dst, snap, cell, x, y)
	}

	cx := boardX + g.cursor.Col*cellWidth
	cy := boardY + g.cursor.Row*cellHeight
	dst.DrawBox(core.NewRect(cx, cy, cellWidth+1, cellHeight+1), core.ColorCursor)

	// Cooperating agents are linked across their shared border. Each pair
	// is drawn once, from the upper or left agent.
	for _, a := range snap.Agents {
		for _, n := range a.Neighbours {
			switch {
			case n.Row == a.Pos.Row && n.Col == a.Pos.Col+1:
				dst.SetColored(boardX+n.Col*cellWidth, boardY+a.Pos.Row*cellHeight+1, '≈', core.ColorPlague)
			case n.Col == a.Pos.Col && n.Row == a.Pos.Row+1:
				dst.SetColored(boardX+a.Pos.Col*cellWidth+cellWidth/2, boardY+n.Row*cellHeight, '≈', core.ColorPlague)
			}
		}
	}
}

// renderCell draws one cell interior at (x, y).
func (g *Game) renderCell(dst *core.Screen, snap farm.Snapshot, cell farm.CellView, x, y int) {
	inner := cellWidth - 1
	if !cell.Alive {
		dst.DrawRect(core.NewRect(x, y, inner, cellHeight-1), '▒', core.ColorDeadSoil)
		return
	}
	c := cell.Crop
	if c == nil {
		dst.SetColored(x+inner/2, y, '·', core.ColorSoil)
		return
	}

	color := stageColor(c.Stage)
	dst.SetColored(x, y, stageGlyph(c.Stage), color)
	if a, ok := snap.AgentAt(cell.Pos); ok {
		dst.DrawTextColored(x+2, y, fmt.Sprintf("@x%.1f", a.Multiplier), core.ColorPlague)
	} else {
		dst.DrawTextColored(x+2, y, truncate(c.Name, inner-2), color)
	}

	if g.showIndicators {
		half := inner / 2
		dst.DrawBar(x, y+1, half, c.HP/c.MaxHP, core.ColorHP)
		progress := c.Progress
		if c.Stage == farm.StageReady {
			progress = 1
		}
		dst.DrawBar(x+half, y+1, inner-half, progress, core.ColorProgress)
	}
}

// renderStatus draws the feedback line and the spawn countdown.
func (g *Game) renderStatus(dst *core.Screen, snap farm.Snapshot, y int) {
	if g.messageLeft > 0 && g.message != "" {
		dst.DrawTextCentered(y, g.message, core.ColorText)
	} else {
		d := snap.Director
		var hint string
		if d.Live >= d.Cap {
			hint = "The plague is at full strength"
		} else {
			hint = fmt.Sprintf("Next plague in %.1fs", d.SpawnCooldown-d.SpawnTimer)
		}
		dst.DrawTextCentered(y, hint, core.ColorDim)
	}
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorDim)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, snap farm.Snapshot, centerX, centerY int) {
	if snap.GameOver {
		drawOverlay(dst, centerX, centerY, core.ColorWarning,
			"THE FARM IS LOST",
			fmt.Sprintf("Harvested %d  Cured %d", snap.Economy.Harvested, snap.Economy.Eliminated),
			"Press R to restart")
		return
	}
	if g.paused {
		drawOverlay(dst, centerX, centerY, core.ColorText, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

func stageGlyph(s farm.Stage) rune {
	switch s {
	case farm.StageSeedling:
		return '.'
	case farm.StageGrowing:
		return 'v'
	case farm.StageMature:
		return 'Y'
	default:
		return '*'
	}
}

func stageColor(s farm.Stage) core.Color {
	switch s {
	case farm.StageSeedling:
		return core.ColorSeedling
	case farm.StageGrowing:
		return core.ColorGrowing
	case farm.StageMature:
		return core.ColorMature
	default:
		return core.ColorReady
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Use | Z/X/C: Tool | 1-4: Crop | Tab: Bars | P: Pause"
}
