package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jadpole/chessterm/chess"
	"github.com/jadpole/chessterm/game"
)

var (
	lightSquare  = lipgloss.NewStyle().Background(lipgloss.Color("102"))
	darkSquare   = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	cursorCell   = lipgloss.NewStyle().Background(lipgloss.Color("160"))
	selectedCell = lipgloss.NewStyle().Background(lipgloss.Color("178"))
	destCell     = lipgloss.NewStyle().Background(lipgloss.Color("28"))
	panelBox     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

type model struct {
	session *game.Session
	cursor  chess.Location
}

func initialModel() model {
	return model{session: game.NewSession()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEscape:
			m.session.Deselect()
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor.Rank < 7 {
				m.cursor.Rank++
			}
		case "down", "j":
			if m.cursor.Rank > 0 {
				m.cursor.Rank--
			}
		case "left", "h":
			if m.cursor.File > 0 {
				m.cursor.File--
			}
		case "right", "l":
			if m.cursor.File < 7 {
				m.cursor.File++
			}
		case "enter", " ":
			if _, ok := m.session.Selected(); !ok {
				m.session.Select(m.cursor)
			} else if !m.session.Choose(m.cursor) {
				// Not a destination: either a deselect of the same square or
				// a fresh selection of another piece of the active color.
				m.session.Select(m.cursor)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("chessterm"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s to move. Arrows/hjkl move, enter/space select, esc deselect, q quit\n\n", m.session.ActiveColor))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewBoard(), "   ", m.viewPanel()))
	s.WriteString("\n")
	return s.String()
}

func (m model) viewBoard() string {
	var lines []string
	lines = append(lines, "  a  b  c  d  e  f  g  h  ")

	for rank := 7; rank >= 0; rank-- {
		var line strings.Builder
		line.WriteString(fmt.Sprintf("%d", rank+1))
		for file := range 8 {
			loc := chess.Location{Rank: rank, File: file}

			cell := " "
			if piece, ok := m.session.Board.PieceAt(loc); ok {
				cell = piece.Symbol()
			}

			style := lightSquare
			switch {
			case loc == m.cursor:
				style = cursorCell
			case m.isSelected(loc):
				style = selectedCell
			case m.session.IsDestination(loc):
				style = destCell
			case chess.SquareColor(loc) == chess.Black:
				style = darkSquare
			}
			line.WriteString(style.Render(" " + cell + " "))
		}
		line.WriteString(fmt.Sprintf("%d", rank+1))
		lines = append(lines, line.String())
	}

	lines = append(lines, "  a  b  c  d  e  f  g  h  ")
	return strings.Join(lines, "\n")
}

func (m model) isSelected(loc chess.Location) bool {
	sel, ok := m.session.Selected()
	return ok && sel == loc
}

func (m model) viewPanel() string {
	var lines []string
	lines = append(lines, "GAME INFO")
	lines = append(lines, fmt.Sprintf("Turn: %s", m.session.ActiveColor))
	lines = append(lines, fmt.Sprintf("Cursor: %s", m.cursor))

	if piece, ok := m.session.Board.PieceAt(m.cursor); ok {
		lines = append(lines, fmt.Sprintf("Piece: %s", piece))
	} else {
		lines = append(lines, "Piece: none")
	}

	if sel, ok := m.session.Selected(); ok {
		lines = append(lines, "")
		piece, _ := m.session.Board.PieceAt(sel)
		lines = append(lines, fmt.Sprintf("Selected: %s at %s", piece, sel))
		lines = append(lines, formatDestinations(m.session.Destinations())...)
	}

	for _, color := range []chess.Color{chess.White, chess.Black} {
		if taken := m.session.Board.Captured(color); len(taken) > 0 {
			var syms []string
			for _, p := range taken {
				syms = append(syms, p.Symbol())
			}
			lines = append(lines, fmt.Sprintf("%s lost: %s", color, strings.Join(syms, " ")))
		}
	}

	return panelBox.Render(strings.Join(lines, "\n"))
}

// formatDestinations lists destination squares two per line, capped so a
// queen in the open does not flood the panel.
func formatDestinations(dests []chess.Location) []string {
	if len(dests) == 0 {
		return nil
	}
	lines := []string{"Moves:"}
	shown := min(len(dests), 6)
	for i := 0; i < shown; i += 2 {
		if i+1 < shown {
			lines = append(lines, fmt.Sprintf("  %s  %s", dests[i], dests[i+1]))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", dests[i]))
		}
	}
	if len(dests) > shown {
		lines = append(lines, fmt.Sprintf("  ... and %d more", len(dests)-shown))
	}
	return lines
}
