package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameID identifies the game in the session ledger.
const GameID = "tetris"

// LineScore is added once per gravity step that clears at least one row.
// Clearing several rows in the same step still adds LineScore once.
const LineScore = 10

// Phase is the session state the dispatcher is in.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	// PhaseGameOver is the AwaitingRestartOrExit state: the field is frozen
	// and only restart or exit input is honored.
	PhaseGameOver
	// PhaseExited is terminal; the score has been handed to the platform.
	PhaseExited
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Game implements the falling-block puzzle.
type Game struct {
	rng  *rand.Rand
	tick uint64

	board   *Board
	current Piece
	phase   Phase

	score       int
	sessionHigh int   // best score since the last restart
	allTimeHigh int   // loaded at startup, raised on exit
	history     []int // session scores recorded at game over

	hints        Hints
	historyShown int

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game. allTimeHigh is the best score loaded from the score file.
func New(allTimeHigh int) *Game {
	return &Game{
		allTimeHigh:  allTimeHigh,
		hints:        DefaultHints(),
		historyShown: defaultHistoryShown,
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// SetHints replaces the key hints drawn beside the board.
func (g *Game) SetHints(h Hints) {
	g.hints = h
}

// SetHistoryShown sets how many session scores the game-over panel lists.
func (g *Game) SetHistoryShown(n int) {
	if n > 0 {
		g.historyShown = n
	}
}

// Reset initializes the game with a fresh RNG and a fresh session.
// The all-time high score is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

// Resize updates the screen dimensions used by Render without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// restart begins a new session: empty board, new piece, zeroed scores and
// an empty history.
func (g *Game) restart() {
	g.board = NewBoard(BoardWidth, BoardHeight)
	g.score = 0
	g.sessionHigh = 0
	g.history = nil
	g.phase = PhasePlaying
	if g.spawn() {
		g.endSession()
	}
}

// spawn places a new random piece at the top and reports whether it collides.
func (g *Game) spawn() bool {
	g.current = SpawnPiece(g.rng, g.board.Width())
	return Collides(g.current, g.board)
}

// endSession switches to the game-over state and records the score.
func (g *Game) endSession() {
	g.phase = PhaseGameOver
	g.history = append(g.history, g.score)
}

// Step advances the game by one tick: queued actions are dispatched in
// arrival order, then gravity moves the piece one row.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseExited {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if g.dispatch(a) {
			return core.StepResult{State: g.State(), Finished: true}
		}
	}

	cleared := 0
	if g.phase == PhasePlaying {
		cleared = g.gravity()
	}

	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// dispatch applies one action for the current phase.
// Returns true when the action finished the game (exit after game over).
func (g *Game) dispatch(a core.Action) bool {
	switch g.phase {
	case PhaseGameOver:
		switch a {
		case core.ActionRestart:
			g.restart()
		case core.ActionExit:
			g.allTimeHigh = max(g.allTimeHigh, g.score)
			g.phase = PhaseExited
			return true
		}

	case PhasePaused:
		if a == core.ActionPause {
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		switch a {
		case core.ActionPause:
			g.phase = PhasePaused
		case core.ActionLeft:
			g.try(g.current.Translate(-1, 0))
		case core.ActionRight:
			g.try(g.current.Translate(1, 0))
		case core.ActionDown:
			g.try(g.current.Translate(0, 1))
		case core.ActionRotate:
			g.try(g.current.Rotated())
		case core.ActionHardDrop:
			g.hardDrop()
		}
	}
	return false
}

// try commits the candidate if it fits and reports whether it did.
func (g *Game) try(candidate Piece) bool {
	if Collides(candidate, g.board) {
		return false
	}
	g.current = candidate
	return true
}

// hardDrop lowers the piece until the next row would collide, then lifts it
// one row. Gravity in the same step returns it to rest and the following
// step merges it, leaving one tick to slide the piece.
func (g *Game) hardDrop() {
	for g.try(g.current.Translate(0, 1)) {
	}
	g.current = g.current.Translate(0, -1)
}

// gravity moves the piece down one row. On collision the piece is merged at
// its previous position, full rows are cleared and a new piece spawns.
// Returns the number of rows cleared.
func (g *Game) gravity() int {
	if g.try(g.current.Translate(0, 1)) {
		return 0
	}

	Merge(g.current, g.board)
	cleared := ClearLines(g.board)
	if cleared > 0 {
		g.score += LineScore
	}
	g.sessionHigh = max(g.sessionHigh, g.score)

	if g.spawn() {
		g.endSession()
	}
	return cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseExited,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Board returns the settled-block grid.
func (g *Game) Board() *Board {
	return g.board
}

// Current returns the falling piece.
func (g *Game) Current() Piece {
	return g.current
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// SessionHigh returns the best score since the last restart.
func (g *Game) SessionHigh() int {
	return g.sessionHigh
}

// AllTimeHigh returns the best score across persisted sessions.
func (g *Game) AllTimeHigh() int {
	return g.allTimeHigh
}

// History returns the last n recorded session scores, oldest first.
func (g *Game) History(n int) []int {
	if n <= 0 || len(g.history) <= n {
		return g.history
	}
	return g.history[len(g.history)-n:]
}
