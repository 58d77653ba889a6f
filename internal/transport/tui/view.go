package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	cursorStyle = cellStyle.Reverse(true)
	humanStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	botStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m model) View() string {
	sections := []string{
		titleStyle.Render("Tic Tac Toe"),
		boardStyle.Render(m.renderBoard()),
		m.renderState(),
		m.renderScore(),
	}

	if m.status != "" {
		sections = append(sections, errorStyle.Render(m.status))
	}

	sections = append(sections, hintStyle.Render(
		"arrows/hjkl move · enter place · 1-9 place · n new game · r reset scores\n"+
			"s swap symbols · f toggle who starts · q quit",
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m model) renderBoard() string {
	rows := make([]string, 0, 5)

	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			index := row*3 + col
			cells = append(cells, m.renderCell(index))
		}
		rows = append(rows, strings.Join(cells, "│"))

		if row < 2 {
			rows = append(rows, strings.Repeat("─", 5)+"┼"+strings.Repeat("─", 5)+"┼"+strings.Repeat("─", 5))
		}
	}

	return strings.Join(rows, "\n")
}

func (m model) renderCell(index int) string {
	mark := m.game.Board[index]

	label := hintStyle.Render(fmt.Sprint(index + 1))
	switch mark {
	case m.game.Settings.HumanMark:
		label = humanStyle.Render(mark.String())
	case m.game.Settings.ComputerMark():
		label = botStyle.Render(mark.String())
	case entity.EmptyCell:
	}

	if index == m.cursor && !m.game.IsFinished() {
		return cursorStyle.Render(label)
	}

	return cellStyle.Render(label)
}

func (m model) renderState() string {
	switch m.game.Winner {
	case entity.WinnerPlayer:
		return humanStyle.Render("You win!")
	case entity.WinnerComputer:
		return botStyle.Render("Computer wins!")
	case entity.WinnerDraw:
		return "It's a draw."
	}

	if m.game.Pending {
		return botStyle.Render("Computer is thinking...")
	}

	first := "you"
	if m.game.Settings.MovesFirst == entity.SideComputer {
		first = "computer"
	}

	return fmt.Sprintf("Your turn (%s). %s moves first.",
		humanStyle.Render(m.game.Settings.HumanMark.String()), first)
}

func (m model) renderScore() string {
	score := m.game.Score

	return fmt.Sprintf("You %d · Computer %d · Draws %d", score.Player, score.Computer, score.Draw)
}
