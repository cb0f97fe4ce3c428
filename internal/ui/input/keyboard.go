// Package input handles keyboard input processing.
package input

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/klondike/internal/apperrors"
	"github.com/palemoky/klondike/internal/game"
	"github.com/palemoky/klondike/internal/sound"
	"github.com/palemoky/klondike/internal/ui/model"
)

// errorDisplayTime is how long an input error stays on screen.
const errorDisplayTime = 3 * time.Second

// CommandKind enumerates the verbs of the play loop.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandCycle
	CommandUndo
	CommandHelp
	CommandNew
	CommandQuit
)

// Command is one parsed input line. Source and Destination are only set
// for CommandMove.
type Command struct {
	Kind        CommandKind
	Source      string
	Destination string
}

// Parse splits a raw input line into a Command. Verbs and locations are
// case-insensitive; whether a location actually exists is checked by
// the move itself.
func Parse(raw string) (Command, error) {
	fields := strings.Fields(strings.ToUpper(raw))
	if len(fields) == 0 {
		return Command{}, apperrors.Syntax("Empty command. See Help for instructions.")
	}

	switch verb := fields[0]; verb {
	case "M":
		if len(fields) != 3 {
			return Command{}, apperrors.Syntax("Move needs a source and a destination, like M G12 SA. See Help for instructions.")
		}
		return Command{Kind: CommandMove, Source: fields[1], Destination: fields[2]}, nil
	case "C":
		return Command{Kind: CommandCycle}, nil
	case "U":
		return Command{Kind: CommandUndo}, nil
	case "H":
		return Command{Kind: CommandHelp}, nil
	case "N":
		return Command{Kind: CommandNew}, nil
	case "Q":
		return Command{Kind: CommandQuit}, nil
	default:
		return Command{}, apperrors.Syntax("Unknown command %q. See Help for instructions.", verb)
	}
}

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.LeaveGame()
		return true, tea.Quit
	case tea.KeyEsc:
		return handleEscKey(m)
	case tea.KeyEnter:
		cmd := handleEnter(m)
		return false, cmd
	}
	return false, nil
}

func handleEscKey(m model.Model) (bool, tea.Cmd) {
	if m.ShowingHelp() {
		m.SetShowingHelp(false)
		return true, nil
	}

	switch m.Phase() {
	case model.PhasePlaying, model.PhaseWon:
		m.LeaveGame()
		return true, nil
	}

	return true, tea.Quit
}

func handleEnter(m model.Model) tea.Cmd {
	raw := strings.TrimSpace(m.Input().Value())
	m.Input().Reset()

	switch m.Phase() {
	case model.PhaseMenu:
		return handleMenuEnter(m, raw)
	case model.PhasePlaying:
		return handlePlayingEnter(m, raw)
	case model.PhaseWon:
		return handleWonEnter(m, raw)
	}

	return nil
}

func handleMenuEnter(m model.Model, raw string) tea.Cmd {
	switch strings.ToUpper(raw) {
	case "", "1", "N":
		return m.NewDeal()
	case "2", "H":
		m.SetShowingHelp(!m.ShowingHelp())
		return nil
	case "3", "Q":
		return tea.Quit
	}

	return reportError(m, apperrors.Syntax("Unknown option %q. Press 1, 2 or 3.", raw))
}

func handleWonEnter(m model.Model, raw string) tea.Cmd {
	switch strings.ToUpper(raw) {
	case "", "N":
		return m.NewDeal()
	case "M":
		m.LeaveGame()
		return nil
	case "Q":
		return tea.Quit
	}

	return reportError(m, apperrors.Syntax("Unknown option %q. Press N, M or Q.", raw))
}

func handlePlayingEnter(m model.Model, raw string) tea.Cmd {
	if raw == "" {
		return nil
	}

	command, err := Parse(raw)
	if err != nil {
		return reportError(m, err)
	}

	switch command.Kind {
	case CommandMove:
		return applyMove(m, game.NewTransfer(command.Source, command.Destination), sound.EventMove)
	case CommandCycle:
		return applyMove(m, game.NewCycleStock(), sound.EventCycle)
	case CommandUndo:
		return undoMove(m)
	case CommandHelp:
		m.SetShowingHelp(!m.ShowingHelp())
		return nil
	case CommandNew:
		return m.NewDeal()
	case CommandQuit:
		m.LeaveGame()
		return nil
	}

	return nil
}

// applyMove runs a move against the current game, reporting its status
// or error, and finishes the game if the move solved it.
func applyMove(m model.Model, mv game.Move, event string) tea.Cmd {
	status, err := mv.Apply(m.GameState())
	if err != nil {
		return reportError(m, err)
	}

	m.SetInputError("")
	m.SetStatus(status)
	m.PlaySound(event)

	return m.CheckWin()
}

func undoMove(m model.Model) tea.Cmd {
	name, err := m.GameState().Undo()
	if err != nil {
		return reportError(m, err)
	}

	m.SetInputError("")
	m.SetStatus(fmt.Sprintf("Reverted %s", name))
	m.PlaySound(sound.EventUndo)

	return nil
}

// reportError shows err under the board and schedules it to disappear.
func reportError(m model.Model, err error) tea.Cmd {
	m.SetInputError(err.Error())
	m.PlaySound(sound.EventError)

	return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
		return model.ClearErrorMsg{}
	})
}
