package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/scorefile"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Game is the contract between the platform loop and a game simulation.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(width, height int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options bundles the collaborators a game session needs.
// Scores and Store may be nil; the game then runs without persistence.
type Options struct {
	Scores       *scorefile.File
	Store        *storage.Store
	Logger       *log.Logger
	Keys         KeyMap
	Player       string
	HistoryShown int
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// NewGame creates a game seeded with the all-time high score from the score
// file. A malformed file is logged and treated as 0.
func NewGame(opts Options) *tetris.Game {
	high := 0
	if opts.Scores != nil {
		h, err := opts.Scores.HighScore()
		if err != nil {
			opts.logger().Warn("could not read score file, starting from 0", "path", opts.Scores.Path(), "error", err)
		} else {
			high = h
		}
	}

	g := tetris.New(high)
	g.SetHints(opts.Keys.Hints())
	g.SetHistoryShown(opts.HistoryShown)
	return g
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool // ctrl+c, nothing persisted
	finished   bool // exit after game over, score persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
// Quit is the only key acted on immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.opts.Keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.opts.logger().Info("quit without saving", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.finished {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Finished {
		m.finished = true
		m.persist(result.State.Score)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// persist appends the final score to the score file and the session ledger.
// Failures are logged; the player is never blocked on I/O errors.
func (m Model) persist(score int) {
	logger := m.opts.logger()

	if m.opts.Scores != nil {
		if err := m.opts.Scores.Append(score); err != nil {
			logger.Error("could not save score", "path", m.opts.Scores.Path(), "error", err)
		}
	}
	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, score); err != nil {
			logger.Error("could not record session", "error", err)
		}
	}
	logger.Info("session saved", "player", m.opts.Player, "score", score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player quit without saving.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Finished returns true once the score has been persisted after game over.
func (m Model) Finished() bool {
	return m.finished
}

// Run starts the Bubble Tea program for one game.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(NewGame(opts), opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
