// Package model contains the UI model implementations.
package model

import (
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/klondike/internal/config"
	"github.com/palemoky/klondike/internal/game"
	"github.com/palemoky/klondike/internal/logger"
	"github.com/palemoky/klondike/internal/random"
	"github.com/palemoky/klondike/internal/sound"
	"github.com/palemoky/klondike/internal/stats"
	"github.com/palemoky/klondike/internal/ui/common"
)

// GameModel is the main model driving the terminal session.
type GameModel struct {
	cfg *config.Config

	phase GamePhase

	// Current deal, nil while in the menu
	state    *game.State
	recorder *stats.Recorder

	// Feedback lines under the board
	status     string
	inputError string

	showingHelp bool

	// Audio
	soundManager *sound.SoundManager

	// UI components
	input *textinput.Model
	// The stopwatch only drives the once-a-second refresh of the
	// header; elapsed time always comes from the game state.
	stopwatch stopwatch.Model
	width     int
	height    int

	// View renderer (injected to break circular import)
	viewRenderer func(Model, GamePhase) string

	// Key handler (injected to break circular import)
	keyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)
}

// NewGameModel creates the model in the menu phase.
func NewGameModel(cfg *config.Config) *GameModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command and press Enter"
	ti.CharLimit = 20
	ti.Width = 30
	ti.Focus()

	return &GameModel{
		cfg:          cfg,
		phase:        PhaseMenu,
		recorder:     stats.NewRecorder(),
		soundManager: sound.NewSoundManager(),
		input:        &ti,
		stopwatch:    stopwatch.NewWithInterval(time.Second),
	}
}

func (m *GameModel) Init() tea.Cmd {
	if m.cfg.Sound.Enabled {
		go func() {
			_ = m.soundManager.Init()
		}()
	}

	return textinput.Blink
}

// Update handles tea messages.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ClearErrorMsg:
		m.inputError = ""

	case tea.KeyMsg:
		// Handle keyboard input via injected handler
		if m.keyHandler != nil {
			handled, keyCmd := m.keyHandler(m, msg)
			if keyCmd != nil {
				cmds = append(cmds, keyCmd)
			}
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
	}

	m.stopwatch, cmd = m.stopwatch.Update(msg)
	cmds = append(cmds, cmd)

	newInput, cmd := m.input.Update(msg)
	*m.input = newInput
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the model.
func (m *GameModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	if m.viewRenderer != nil {
		content = m.viewRenderer(m, m.phase)
	} else {
		content = "View renderer not initialized"
	}

	return common.DocStyle.Render(content)
}

// SetViewRenderer sets the view rendering function.
func (m *GameModel) SetViewRenderer(fn func(Model, GamePhase) string) {
	m.viewRenderer = fn
}

// SetKeyHandler sets the keyboard event handler function.
func (m *GameModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) {
	m.keyHandler = fn
}

// --- Model interface implementation ---

func (m *GameModel) Phase() GamePhase            { return m.phase }
func (m *GameModel) SetPhase(phase GamePhase)    { m.phase = phase }
func (m *GameModel) GameState() *game.State      { return m.state }
func (m *GameModel) GameSnapshot() game.Snapshot { return m.state.Snapshot() }
func (m *GameModel) Status() string              { return m.status }
func (m *GameModel) SetStatus(s string)          { m.status = s }
func (m *GameModel) InputError() string          { return m.inputError }
func (m *GameModel) SetInputError(s string)      { m.inputError = s }
func (m *GameModel) ShowingHelp() bool           { return m.showingHelp }
func (m *GameModel) SetShowingHelp(showing bool) { m.showingHelp = showing }
func (m *GameModel) StatsSummary() stats.Summary { return m.recorder.Summary() }
func (m *GameModel) ASCII() bool                 { return m.cfg.Display.ASCII }
func (m *GameModel) PlaySound(name string)       { m.soundManager.Play(name) }
func (m *GameModel) Input() *textinput.Model     { return m.input }
func (m *GameModel) Width() int                  { return m.width }
func (m *GameModel) Height() int                 { return m.height }

// NewDeal abandons any unfinished game and deals a fresh one.
func (m *GameModel) NewDeal() tea.Cmd {
	m.recordLeftGame()

	seed := m.cfg.Game.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}

	m.state = game.Deal(random.NewRand(seed))
	m.recorder.RecordDeal()
	m.phase = PhasePlaying
	m.status = "New game dealt"
	m.inputError = ""
	m.showingHelp = false

	logger.LogInfo("dealt game %s with seed %d", m.state.ID, seed)
	m.PlaySound(sound.EventDeal)

	return tea.Batch(m.stopwatch.Reset(), m.stopwatch.Start())
}

// CheckWin finishes the game when the board is solved, otherwise it is
// a no-op.
func (m *GameModel) CheckWin() tea.Cmd {
	if !game.DetectWin(m.state) {
		return nil
	}

	game.Finish(m.state)
	m.recorder.RecordWin(m.state.ID, m.state.Score(), m.state.Elapsed(), m.state.MoveCount())
	m.phase = PhaseWon
	m.status = ""
	m.inputError = ""

	logger.LogInfo("game %s won with %d points after %d move(s)",
		m.state.ID, m.state.Score(), m.state.MoveCount())
	m.PlaySound(sound.EventWin)

	return m.stopwatch.Stop()
}

// LeaveGame returns to the menu, counting an unfinished game as
// abandoned.
func (m *GameModel) LeaveGame() {
	m.recordLeftGame()
	m.state = nil
	m.phase = PhaseMenu
	m.status = ""
	m.inputError = ""
	m.showingHelp = false
}

func (m *GameModel) recordLeftGame() {
	if m.state != nil && !m.state.Won {
		m.recorder.RecordAbandon(m.state.MoveCount())
		logger.LogInfo("game %s abandoned after %d move(s)", m.state.ID, m.state.MoveCount())
	}
}
