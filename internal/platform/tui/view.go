package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Visual characters for rendering
const (
	PlayerChar   = '▲'
	AirChar      = '△'
	ShadowChar   = '·'
	ObstacleChar = '▓'
	CoinChar     = '●'
	EdgeChar     = '│'
	DividerChar  = '┊'
)

// View depth in world units.
const (
	viewAhead  = 90.0
	viewBehind = 8.0
)

// frame is everything needed to draw one screen.
type frame struct {
	snap    runner.Snapshot
	cfg     config.RunnerConfig
	bursts  []Burst
	newBest bool
	player  string
}

// draw renders f into dst.
func draw(dst *core.Screen, f frame) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 10 {
		dst.DrawText(0, 0, "too small")
		return
	}

	switch f.snap.State {
	case runner.StateIntro:
		drawIntro(dst, f)
	case runner.StateMenu:
		drawMenu(dst, f)
	case runner.StatePlaying:
		drawTrack(dst, f)
		drawHUD(dst, f)
	case runner.StateGameOver:
		drawTrack(dst, f)
		drawHUD(dst, f)
		drawGameOver(dst, f)
	}
}

// trackLayout maps world coordinates to screen cells.
type trackLayout struct {
	top, bottom int // first and last track row
	playerRow   int
	left        int // x of the leftmost edge
	laneCols    int // columns per lane, edge included
	lanes       int
	laneWidth   float64
	middle      int
}

func layoutFor(dst *core.Screen, track config.TrackConfig) trackLayout {
	lanes := max(track.Lanes, 1)
	laneCols := core.Clamp((dst.Width()-4)/lanes, 4, 12)
	l := trackLayout{
		top:       2,
		bottom:    dst.Height() - 1,
		laneCols:  laneCols,
		lanes:     lanes,
		laneWidth: track.LaneWidth,
		middle:    track.MiddleLane(),
	}
	l.left = (dst.Width() - laneCols*lanes - 1) / 2
	l.playerRow = l.bottom - 2
	return l
}

// row maps a distance ahead of the player to a screen row.
func (l trackLayout) row(ahead float64) (int, bool) {
	if ahead > viewAhead || ahead < -viewBehind {
		return 0, false
	}
	scale := float64(l.playerRow-l.top) / viewAhead
	y := l.playerRow - int(math.Round(ahead*scale))
	return y, y >= l.top && y <= l.bottom
}

// col maps a world X to the screen column at the centre of that position.
func (l trackLayout) col(x float64) int {
	lane := x/l.laneWidth + float64(l.middle)
	return l.left + int(math.Round(lane*float64(l.laneCols))) + l.laneCols/2
}

// worldZ returns the world Z drawn on screen row y.
func (l trackLayout) worldZ(playerZ float64, y int) float64 {
	scale := viewAhead / float64(l.playerRow-l.top)
	return playerZ - float64(l.playerRow-y)*scale
}

func drawTrack(dst *core.Screen, f frame) {
	l := layoutFor(dst, f.cfg.Track)
	p := f.snap.Player

	for y := l.top; y <= l.bottom; y++ {
		dashed := int(math.Floor(l.worldZ(p.Z, y)/3))%2 == 0
		for i := 0; i <= l.lanes; i++ {
			x := l.left + i*l.laneCols
			switch {
			case i == 0 || i == l.lanes:
				dst.SetColored(x, y, EdgeChar, core.ColorWhite)
			case dashed:
				dst.SetColored(x, y, DividerChar, core.ColorGray)
			}
		}
	}

	for _, c := range f.snap.Coins {
		if y, ok := l.row(p.Z - c.Z); ok {
			dst.SetColored(l.col(f.cfg.Track.LaneX(c.Lane)), y, CoinChar, core.ColorYellow)
		}
	}

	for _, o := range f.snap.Obstacles {
		y, ok := l.row(p.Z - o.Z)
		if !ok {
			continue
		}
		x0 := l.left + o.Lane*l.laneCols + 1
		for x := x0; x < x0+l.laneCols-1; x++ {
			dst.SetColored(x, y, ObstacleChar, core.ColorRed)
		}
	}

	for _, b := range f.bursts {
		y, ok := l.row(p.Z - b.Position.Z)
		if !ok {
			continue
		}
		drawBurst(dst, l.col(b.Position.X), y, b.Progress())
	}

	drawPlayer(dst, l, p, f.cfg.Physics.JumpGateHeight)
}

func drawPlayer(dst *core.Screen, l trackLayout, p runner.Player, gate float64) {
	x := l.col(p.X)
	if p.Grounded(gate) {
		dst.SetColored(x, l.playerRow, PlayerChar, core.ColorBrightGreen)
		return
	}
	lift := int(math.Round(p.Y / 1.5))
	dst.SetColored(x, l.playerRow, ShadowChar, core.ColorGray)
	dst.SetColored(x, l.playerRow-lift, AirChar, core.ColorBrightGreen)
}

// drawBurst draws a ring that widens and fades as progress goes from 0 to 1.
func drawBurst(dst *core.Screen, x, y int, progress float64) {
	switch {
	case progress < 0.33:
		dst.SetColored(x, y, '✦', core.ColorBrightYellow)
	case progress < 0.66:
		dst.SetColored(x-1, y, '*', core.ColorBrightYellow)
		dst.SetColored(x+1, y, '*', core.ColorBrightYellow)
		dst.SetColored(x, y-1, '*', core.ColorBrightYellow)
	default:
		dst.SetColored(x-2, y, '·', core.ColorYellow)
		dst.SetColored(x+2, y, '·', core.ColorYellow)
		dst.SetColored(x, y-1, '·', core.ColorYellow)
	}
}

func drawHUD(dst *core.Screen, f frame) {
	st := f.snap.Stats
	left := fmt.Sprintf(" SCORE %d  COINS %d ", st.Score, st.CoinsCollected)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" BEST %d  SPD %.2f ", st.HighScore, f.snap.Player.Speed)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	if f.player != "" {
		dst.DrawTextCentered(0, f.player, core.ColorGray)
	}
}

func drawIntro(dst *core.Screen, f frame) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "L A N E   R U N N E R", core.ColorBrightGreen)
	dst.DrawTextCentered(mid-1, "dodge the blocks, grab the coins", core.ColorGray)

	const barW = 30
	filled := int(math.Round(f.snap.IntroProgress * barW))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
	dst.DrawTextCentered(mid+2, bar, core.ColorGreen)
}

func drawMenu(dst *core.Screen, f frame) {
	mid := dst.Height() / 2
	st := f.snap.Stats

	dst.DrawTextCentered(mid-4, "L A N E   R U N N E R", core.ColorBrightGreen)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("BEST  %d", st.HighScore), core.ColorBrightYellow)
	if f.snap.Ticks > 0 {
		last := fmt.Sprintf("last run  %d pts  %d coins", st.Score, st.CoinsCollected)
		dst.DrawTextCentered(mid-1, last, core.ColorGray)
	}
	dst.DrawTextCentered(mid+1, "press ENTER to run", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+3, "←/→ change lane   SPACE jump", core.ColorGray)
}

func drawGameOver(dst *core.Screen, f frame) {
	st := f.snap.Stats
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score  %d", st.Score),
		fmt.Sprintf("coins  %d", st.CoinsCollected),
		fmt.Sprintf("best   %d", st.HighScore),
		"",
		"ENTER again   ESC menu",
	}
	if f.newBest {
		lines[1] = "NEW BEST!"
	}

	w, h := 30, len(lines)+2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(core.NewRect(box.X+1, box.Y+1, w-2, h-2), ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		c := core.ColorBrightWhite
		switch {
		case i == 0:
			c = core.ColorRed
		case i == 1:
			c = core.ColorBrightYellow
		case i == len(lines)-1:
			c = core.ColorGray
		}
		n := len([]rune(line))
		dst.DrawTextColored(box.X+(w-n)/2, box.Y+1+i, line, c)
	}
}
