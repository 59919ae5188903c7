package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Phase       string
	Score       int
	SessionHigh int
	AllTimeHigh int
	PieceKind   string
	PieceX      int
	PieceY      int
	Board       string // Board.String() layout
	History     []int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	history := make([]int, len(g.history))
	copy(history, g.history)

	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase.String(),
		Score:       g.score,
		SessionHigh: g.sessionHigh,
		AllTimeHigh: g.allTimeHigh,
		PieceKind:   g.current.Kind.String(),
		PieceX:      g.current.X,
		PieceY:      g.current.Y,
		Board:       g.board.String(),
		History:     history,
	}
}
