package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitrush/fitrush/internal/audio"
	"github.com/fitrush/fitrush/internal/core"
	"github.com/fitrush/fitrush/internal/game"
	"github.com/fitrush/fitrush/internal/pose"
	"github.com/fitrush/fitrush/internal/signal"
	"github.com/fitrush/fitrush/internal/storage"
)

// Model is the Bubble Tea model running one FitRush session. Each tick
// it reads the freshest pose sample from the mailbox, reduces it to an
// exertion intensity, steps the engine, and forwards sound cues.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	canvas     core.Canvas
	mailbox    *pose.Mailbox
	sounds     *audio.System
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current game over
}

// NewModel creates a Bubble Tea model for the given session. mailbox,
// sounds, and store may all be nil; the session then runs on keyboard
// input alone with no audio or persistence.
func NewModel(g *game.Game, mailbox *pose.Mailbox, sounds *audio.System, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	fieldW, fieldH := g.Field()

	return Model{
		game:       g,
		screen:     screen,
		canvas:     NewCanvas(screen, fieldW, fieldH),
		mailbox:    mailbox,
		sounds:     sounds,
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
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
		// The logical field never changes; only the projection does.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.mailbox != nil {
		m.inputFrame.Intensity = signal.Interpret(m.mailbox.Latest(), m.game.Mode())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sounds.PlayAll(result.Cues)

	switch m.gameState.Phase {
	case core.PhaseGameOver:
		if !m.scoreSaved && m.gameState.Score > 0 {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, the session continues regardless
				m.store.SaveScore(m.game.Mode().String(), string(m.game.Difficulty()), m.gameState.Score)
			}
			m.scoreSaved = true
		}
	case core.PhasePlaying:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session and
// blocks until it exits.
func Run(g *game.Game, mailbox *pose.Mailbox, sounds *audio.System, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, mailbox, sounds, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
