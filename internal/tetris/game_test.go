package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, allTimeHigh int) *Game {
	t.Helper()
	g := New(allTimeHigh)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// forceGameOver fills the spawn area so the next spawn collides, then lets
// the current piece land.
func forceGameOver(t *testing.T, g *Game) {
	t.Helper()
	g.board = NewBoard(BoardWidth, BoardHeight)
	for x := 3; x <= 6; x++ {
		g.board.Set(x, 0, core.ColorGray)
	}
	g.current = NewPiece(KindO, core.ColorGreen, 0, BoardHeight-2)
	g.Step(frame())
	require.Equal(t, PhaseGameOver, g.Phase())
}

func TestResetSpawnsCenteredPiece(t *testing.T) {
	g := newTestGame(t, 0)

	p := g.Current()
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, SpawnX(BoardWidth, p.Shape), p.X)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 0, g.Score())
	assert.Empty(t, g.History(0))
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New(0)
	g1.Reset(cfg)
	g2 := New(0)
	g2.Reset(cfg)

	script := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionHardDrop, core.ActionNone}
	for i := range 300 {
		in := frame(script[i%len(script)])
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestGravityMovesPieceOneRow(t *testing.T) {
	g := newTestGame(t, 0)
	start := g.Current().Y

	g.Step(frame())
	assert.Equal(t, start+1, g.Current().Y)
}

func TestMoveStopsAtWall(t *testing.T) {
	g := newTestGame(t, 0)
	g.current = NewPiece(KindO, core.ColorGreen, 4, 5)

	g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft))
	assert.Equal(t, 0, g.Current().X)

	g.Step(frame(core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight,
		core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight))
	assert.Equal(t, BoardWidth-2, g.Current().X)
}

func TestRotateDiscardedOnCollision(t *testing.T) {
	g := newTestGame(t, 0)
	g.current = verticalI(BoardWidth-1, 5)
	before := g.Current().Shape

	g.dispatch(core.ActionRotate)
	assert.True(t, g.Current().Shape.Equal(before), "rotation into the wall must be discarded")

	g.current = verticalI(4, 5)
	g.dispatch(core.ActionRotate)
	assert.Equal(t, 4, g.Current().Shape.Width())
}

func TestSoftDropBlockedByFloor(t *testing.T) {
	g := newTestGame(t, 0)
	g.current = NewPiece(KindO, core.ColorGreen, 0, BoardHeight-2)

	g.dispatch(core.ActionDown)
	assert.Equal(t, BoardHeight-2, g.Current().Y)
}

func TestHardDropLocksOnNextStep(t *testing.T) {
	g := newTestGame(t, 0)
	g.current = NewPiece(KindI, core.ColorCyan, 2, 0)

	g.Step(frame(core.ActionHardDrop))

	require.Equal(t, BoardHeight-1, g.Current().Y, "piece rests on the floor")
	assert.Equal(t, KindI, g.Current().Kind)
	for x := range BoardWidth {
		assert.True(t, g.Board().IsEmpty(x, BoardHeight-1), "column %d merged early", x)
	}

	// The piece can still slide before it locks.
	g.Step(frame(core.ActionLeft))

	for x := 1; x < 5; x++ {
		assert.Equal(t, core.ColorCyan, g.Board().At(x, BoardHeight-1), "column %d", x)
	}
	assert.True(t, g.Board().IsEmpty(5, BoardHeight-1))
	assert.Equal(t, 0, g.Current().Y, "a new piece should spawn at the top")
}

func TestHardDropOntoStack(t *testing.T) {
	g := newTestGame(t, 0)
	for x := range BoardWidth {
		g.board.Set(x, BoardHeight-1, core.ColorGray)
	}
	g.board.Set(0, BoardHeight-1, core.ColorDefault)
	g.current = NewPiece(KindO, core.ColorGreen, 4, 0)

	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, BoardHeight-3, g.Current().Y)

	g.Step(frame())
	assert.Equal(t, core.ColorGreen, g.Board().At(4, BoardHeight-2))
	assert.Equal(t, core.ColorGreen, g.Board().At(5, BoardHeight-3))
	assert.Equal(t, 0, g.Score())
}

func TestLineClearScores(t *testing.T) {
	g := newTestGame(t, 0)
	for x := 0; x < BoardWidth; x++ {
		if x != 4 {
			g.board.Set(x, BoardHeight-1, core.ColorRed)
		}
	}
	g.current = verticalI(4, BoardHeight-4)

	res := g.Step(frame())

	assert.Equal(t, 1, res.LinesCleared)
	assert.Equal(t, LineScore, g.Score())
	assert.Equal(t, LineScore, g.SessionHigh())
	for x := 0; x < BoardWidth; x++ {
		assert.True(t, g.Board().IsEmpty(x, BoardHeight-1) || x == 4, "column %d", x)
	}
	// The three I cells above the cleared row sink by one.
	assert.Equal(t, core.ColorCyan, g.Board().At(4, BoardHeight-1))
	assert.Equal(t, core.ColorCyan, g.Board().At(4, BoardHeight-3))
	assert.True(t, g.Board().IsEmpty(4, BoardHeight-4))
}

// Two rows cleared by one landing still score a single LineScore. This is
// the established scoring rule, kept on purpose.
func TestSimultaneousLinesScoreOnce(t *testing.T) {
	g := newTestGame(t, 0)
	for _, y := range []int{BoardHeight - 1, BoardHeight - 2} {
		for x := 0; x < BoardWidth; x++ {
			if x != 4 {
				g.board.Set(x, y, core.ColorRed)
			}
		}
	}
	g.current = verticalI(4, BoardHeight-4)

	res := g.Step(frame())

	assert.Equal(t, 2, res.LinesCleared)
	assert.Equal(t, LineScore, g.Score())
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newTestGame(t, 0)
	g.Step(frame(core.ActionPause))
	require.Equal(t, PhasePaused, g.Phase())
	assert.True(t, g.State().Paused)

	before := g.Current()
	for range 5 {
		g.Step(frame(core.ActionLeft, core.ActionHardDrop))
	}
	assert.Equal(t, before, g.Current())

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, before.Y+1, g.Current().Y)
}

func TestSpawnCollisionEndsSession(t *testing.T) {
	g := newTestGame(t, 0)
	g.score = 30

	forceGameOver(t, g)

	assert.True(t, g.State().GameOver)
	assert.Equal(t, []int{30}, g.History(5))
}

func TestGameOverIgnoresPlayInput(t *testing.T) {
	g := newTestGame(t, 0)
	forceGameOver(t, g)
	piece := g.Current()
	board := g.Board().Clone()

	res := g.Step(frame(core.ActionLeft, core.ActionRotate, core.ActionHardDrop, core.ActionPause))

	assert.False(t, res.Finished)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, piece, g.Current())
	assert.True(t, g.Board().Equal(board))
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, 70)
	g.score = 30
	g.sessionHigh = 30
	forceGameOver(t, g)
	require.NotEmpty(t, g.History(0))

	g.Step(frame(core.ActionRestart))

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.SessionHigh())
	assert.Empty(t, g.History(0), "history does not carry over a restart")
	assert.Equal(t, 70, g.AllTimeHigh())
	assert.True(t, g.Board().IsEmpty(3, 0))
}

func TestRestartAndExitIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 0)
	g.score = 20

	res := g.Step(frame(core.ActionRestart, core.ActionExit))

	assert.False(t, res.Finished)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 20, g.Score())
}

func TestExitRaisesAllTimeHigh(t *testing.T) {
	g := newTestGame(t, 20)
	g.score = 30
	forceGameOver(t, g)

	res := g.Step(frame(core.ActionExit, core.ActionRestart))

	assert.True(t, res.Finished)
	assert.Equal(t, 30, res.State.Score)
	assert.Equal(t, PhaseExited, g.Phase())
	assert.Equal(t, 30, g.AllTimeHigh())

	// Later ticks are inert.
	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.Finished)
	assert.Equal(t, PhaseExited, g.Phase())
}

func TestExitKeepsHigherAllTimeHigh(t *testing.T) {
	g := newTestGame(t, 100)
	g.score = 30
	forceGameOver(t, g)

	g.Step(frame(core.ActionExit))
	assert.Equal(t, 100, g.AllTimeHigh())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 20)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "High Score (Current Game): 0")
	assert.Contains(t, out, "High Score (All Time): 20")
	assert.Contains(t, out, "Controls:")
	assert.NotContains(t, out, "PAUSED")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(frame(core.ActionPause))
	g.score = 30
	forceGameOver(t, g)
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press R to Restart | Press Q to Exit")
	assert.Contains(t, out, "Game 1: 30")
}

func TestRenderClipsPieceAboveBoard(t *testing.T) {
	g := newTestGame(t, 0)
	g.current = verticalI(4, -2)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Board cell (4, y) sits at screen column 9, row y+1.
	assert.Equal(t, core.Cell{Rune: '─', Color: core.ColorGray}, screen.GetCell(9, 0), "frame border is not overdrawn")
	assert.Equal(t, core.Cell{Rune: '[', Color: core.ColorCyan}, screen.GetCell(9, 1))
	assert.Equal(t, core.Cell{Rune: ']', Color: core.ColorCyan}, screen.GetCell(10, 2))
	assert.Equal(t, '·', screen.GetCell(10, 3).Rune)
}

func TestRenderTooSmall(t *testing.T) {
	g := New(0)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}
