package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/session"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// revealModel - Interactive outcome reveal
// =============================================================================

// revealModel is the bubbletea model that reveals outcomes one player at a
// time, the way a paper Amidakuji is played: pick a line, follow it down.
type revealModel struct {
	players  []string
	outcomes []string
	mapping  ladder.Permutation
	cursor   int
	revealed map[int]bool
}

// newRevealModel creates a reveal model for the given game.
func newRevealModel(game *session.Game) revealModel {
	return revealModel{
		players:  game.Players,
		outcomes: game.Outcomes,
		mapping:  game.Mapping(),
		revealed: make(map[int]bool),
	}
}

func (m revealModel) Init() tea.Cmd {
	return nil
}

func (m revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.players)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.revealed[m.cursor] = true
			if len(m.revealed) == len(m.players) {
				return m, tea.Quit
			}
		case "a":
			for i := range m.players {
				m.revealed[i] = true
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m revealModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ladder Lottery"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ reveal  a reveal all  q quit"))
	b.WriteString("\n\n")

	for i, player := range m.players {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		outcome := listDimStyle.Render("???")
		if m.revealed[i] {
			outcome = StyleHighlight.Render(m.outcome(i))
		}

		b.WriteString(cursor + style.Render(player) + " " + iconArrow + " " + outcome + "\n")
	}
	return b.String()
}

// outcome returns the outcome label for the player at index i.
func (m revealModel) outcome(i int) string {
	slot := m.mapping[i]
	if slot < len(m.outcomes) {
		return m.outcomes[slot]
	}
	return "?"
}

// runReveal plays the game interactively, then prints the full result table
// so the mapping survives in the scrollback.
func runReveal(game *session.Game) error {
	model := newRevealModel(game)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(revealModel); ok && len(m.revealed) > 0 {
		mapping := game.Mapping()
		fmt.Println(resultTable(mapping.Pairs(game.Players, game.Outcomes)))
	}
	return nil
}
