package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krelore/strukt/tictactoe"
)

// GameModel is the bubbletea model for an interactive match against the
// engine. The human plays one mark, the engine answers synchronously
// after every human move (the full game tree is tiny, so search returns
// instantly and no tea.Cmd plumbing is needed).
type GameModel struct {
	match  *tictactoe.Match
	player tictactoe.Mark
	cursor tictactoe.Move
	notice string
	styles Styles
}

// NewGameModel starts a fresh match with the human playing player.
// When player is O the engine opens immediately.
func NewGameModel(player tictactoe.Mark) GameModel {
	m := GameModel{
		match:  tictactoe.NewMatch(),
		player: player,
		cursor: tictactoe.Move{Row: 1, Col: 1},
		styles: DefaultStyles(),
	}
	if player == tictactoe.O {
		m.engineMove()
	}

	return m
}

// MatchID returns the identifier of the underlying match.
func (m GameModel) MatchID() string { return m.match.ID }

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < tictactoe.Size-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < tictactoe.Size-1 {
			m.cursor.Col++
		}
	case "r":
		return NewGameModel(m.player), nil
	case "enter", " ":
		m.place()
	}

	return m, nil
}

// place applies the human move under the cursor and lets the engine reply.
func (m *GameModel) place() {
	if err := m.match.ApplyAs(m.player, m.cursor); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
	m.engineMove()
}

// engineMove plays the engine's reply, if the game is still open.
func (m *GameModel) engineMove() {
	if m.match.Status() != tictactoe.InProgress {
		return
	}
	mv, err := tictactoe.BestMove(m.match.Game)
	if err != nil {
		m.notice = err.Error()
		return
	}
	if err := m.match.Apply(mv); err != nil {
		m.notice = err.Error()
	}
}

// View implements tea.Model.
func (m GameModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Tic-Tac-Toe"))
	b.WriteString("\n")
	b.WriteString(m.styles.Board.Render(m.renderBoard()))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("arrows/hjkl move · enter place · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m GameModel) renderBoard() string {
	board := m.match.Board()
	rows := make([]string, 0, tictactoe.Size)
	for r := 0; r < tictactoe.Size; r++ {
		cells := make([]string, 0, tictactoe.Size)
		for c := 0; c < tictactoe.Size; c++ {
			cells = append(cells, m.renderCell(board, r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func (m GameModel) renderCell(board tictactoe.Board, r, c int) string {
	mark := board[r][c]
	label := mark.String()
	switch mark {
	case tictactoe.X:
		label = m.styles.MarkX.Render(label)
	case tictactoe.O:
		label = m.styles.MarkO.Render(label)
	}

	cell := m.styles.Cell
	if m.cursor.Row == r && m.cursor.Col == c && m.match.Status() == tictactoe.InProgress {
		cell = m.styles.Cursor
	}

	return cell.Render(label)
}

func (m GameModel) statusLine() string {
	if m.notice != "" {
		return m.notice
	}

	switch m.match.Status() {
	case tictactoe.Won:
		if m.match.Winner() == m.player {
			return "You win! Press r for a rematch."
		}
		return "The engine wins. Press r for a rematch."
	case tictactoe.Draw:
		return "Draw. Press r for a rematch."
	default:
		return fmt.Sprintf("You are %s. Pick a cell.", m.player)
	}
}
