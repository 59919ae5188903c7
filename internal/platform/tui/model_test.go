package tui

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/scorefile"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// fakeGame records the frames it is stepped with and finishes on Exit.
type fakeGame struct {
	score   int
	frames  [][]core.Action
	resized [2]int
	resets  int
}

func (g *fakeGame) ID() string { return tetris.GameID }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear() }
func (g *fakeGame) State() core.GameState { return core.GameState{Score: g.score} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	actions := slices.Clone(in.Actions())
	g.frames = append(g.frames, actions)
	return core.StepResult{State: g.State(), Finished: slices.Contains(actions, core.ActionExit)}
}

func newTestModel(t *testing.T, g Game, opts Options) Model {
	t.Helper()
	opts.Keys = DefaultKeyMap()
	m := NewModel(g, opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update() returned %T, expected Model", next)
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func openScores(t *testing.T) *scorefile.File {
	t.Helper()
	scores, err := scorefile.Open(filepath.Join(t.TempDir(), "scores.txt"))
	require.NoError(t, err)
	return scores
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Empty(t, g.frames, "game stepped before tick")

	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	require.Len(t, g.frames, 1)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotate, core.ActionLeft}, g.frames[0])

	// Frame is cleared after the tick
	update(t, m, TickMsg{})
	assert.Empty(t, g.frames[1])
}

func TestModelExitPersistsScore(t *testing.T) {
	dir := t.TempDir()
	scores, err := scorefile.Open(filepath.Join(dir, "scores.txt"))
	require.NoError(t, err)
	store, err := storage.Open(filepath.Join(dir, "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{score: 30}
	m := newTestModel(t, g, Options{Scores: scores, Store: store, Player: "alice"})

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})

	assert.True(t, isQuit(cmd), "exit should quit the program")
	assert.True(t, m.Finished())
	assert.False(t, m.IsQuitting())

	data, err := os.ReadFile(scores.Path())
	require.NoError(t, err)
	assert.Equal(t, "30\n", string(data))

	top, err := store.TopScores(tetris.GameID, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 30, top[0].Score)
	assert.Equal(t, "alice", top[0].Player)

	// Late ticks do not persist twice
	update(t, m, TickMsg{})
	data, _ = os.ReadFile(scores.Path())
	assert.Equal(t, "30\n", string(data))
}

func TestModelCtrlCQuitsWithoutSaving(t *testing.T) {
	scores := openScores(t)
	g := &fakeGame{score: 50}
	m := newTestModel(t, g, Options{Scores: scores})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd), "ctrl+c should quit immediately")
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())

	_, err := os.Stat(scores.Path())
	assert.True(t, os.IsNotExist(err), "ctrl+c must not write the score file")
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, [2]int{100, 40}, g.resized)
	assert.Equal(t, 1, g.resets, "only Init resets the game")
}

func TestNewGameReadsAllTimeHigh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n70\n20\n"), 0o644))
	scores, err := scorefile.Open(path)
	require.NoError(t, err)

	g := NewGame(Options{Scores: scores, Keys: DefaultKeyMap()})
	assert.Equal(t, 70, g.AllTimeHigh())
}

func TestNewGameMalformedScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\nnope\n"), 0o644))
	scores, err := scorefile.Open(path)
	require.NoError(t, err)

	g := NewGame(Options{Scores: scores, Keys: DefaultKeyMap()})
	assert.Equal(t, 0, g.AllTimeHigh())
}

func TestRealGameRendersThroughModel(t *testing.T) {
	opts := Options{Keys: DefaultKeyMap()}
	m := NewModel(NewGame(opts), opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5, Seed: 7})
	m.Init()

	m, _ = update(t, m, TickMsg{})
	assert.NotEmpty(t, m.View())
}

// clearBelowSpawn fills every row under the freshly spawned piece so the
// next tick lands it and clears them all.
func clearBelowSpawn(t *testing.T, m Model, g *tetris.Game) Model {
	t.Helper()
	require.Equal(t, 0, g.Current().Y)
	b := g.Board()
	for y := 1; y < b.Height(); y++ {
		b.FillRow(y, core.ColorGray)
	}
	m, _ = update(t, m, TickMsg{})
	return m
}

// blockSpawn fills all but the first column so the landing piece clears
// nothing and the next spawn collides.
func blockSpawn(t *testing.T, m Model, g *tetris.Game) Model {
	t.Helper()
	b := g.Board()
	for y := range b.Height() {
		for x := 1; x < b.Width(); x++ {
			b.Set(x, y, core.ColorGray)
		}
	}
	m, _ = update(t, m, TickMsg{})
	return m
}

func TestFirstSessionSetsAllTimeHigh(t *testing.T) {
	scores := openScores(t)
	opts := Options{Scores: scores, Keys: DefaultKeyMap(), Player: "carol"}
	g := NewGame(opts)
	require.Equal(t, 0, g.AllTimeHigh(), "missing score file reads as 0")

	m := NewModel(g, opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5, Seed: 3})
	m.Init()

	for range 3 {
		m = clearBelowSpawn(t, m, g)
	}
	require.Equal(t, 30, g.Score())

	m = blockSpawn(t, m, g)
	require.Equal(t, tetris.PhaseGameOver, g.Phase())
	assert.Equal(t, []int{30}, g.History(5))
	_, err := os.Stat(scores.Path())
	require.True(t, os.IsNotExist(err), "game over alone does not save")

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.Finished())
	assert.Equal(t, 30, g.AllTimeHigh())

	data, err := os.ReadFile(scores.Path())
	require.NoError(t, err)
	assert.Equal(t, "30\n", string(data))
}
