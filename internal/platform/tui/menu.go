package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label      string
	Difficulty string // Preset passed to the game; empty keeps the config's
	Scores     bool   // Opens the scoreboard instead of a game
}

// DefaultMenuItems lists a play entry per difficulty and the scoreboard.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play"},
		{Label: "Play - Easy", Difficulty: "easy"},
		{Label: "Play - Hard", Difficulty: "hard"},
		{Label: "Play - Fixed difficulty", Difficulty: "fixed"},
		{Label: "High Scores", Scores: true},
	}
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	title     string
	items     []MenuItem
	highScore int
	cursor    int
	width     int
	height    int
	keys      menuKeyMap
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a menu showing items under title.
func NewMenuModel(title string, items []MenuItem, highScore, width, height int) MenuModel {
	return MenuModel{
		title:     title,
		items:     items,
		highScore: highScore,
		width:     width,
		height:    height,
		keys:      defaultMenuKeyMap(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText(m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   MenuItem
	Width  int
	Height int
	Quit   bool
}

// RunMenu shows the menu until the user picks an item or quits.
func RunMenu(title string, items []MenuItem, highScore, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(title, items, highScore, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return MenuResult{Item: *m.Selected(), Width: m.width, Height: m.height}, nil
}
