package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdevolde/bouldertui/internal/core"
	"github.com/mdevolde/bouldertui/internal/games/boulder"
)

// BoulderSelection holds the user's selection from the Boulder menu.
type BoulderSelection struct {
	Level      int    // 0 = start from beginning, 1-N = specific cave
	Difficulty string // difficulty preset name
}

var boulderDifficulties = []string{"easy", "normal", "hard", "fixed"}

// BoulderModeModel lets users choose difficulty and starting cave.
type BoulderModeModel struct {
	cursor        int
	levelCursor   int
	diffIndex     int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     BoulderSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewBoulderModeModel creates a new Boulder mode selection model.
func NewBoulderModeModel(width, height int) BoulderModeModel {
	return BoulderModeModel{
		cursor:    0,
		diffIndex: 1, // normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BoulderModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoulderModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoulderModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m BoulderModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Play, Select Cave, Difficulty
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Play from the first cave
			m.choosing = false
			m.selection = BoulderSelection{Level: 0, Difficulty: boulderDifficulties[m.diffIndex]}
			return m, tea.Quit
		case 1: // Select Cave
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2: // Cycle difficulty
			m.diffIndex = (m.diffIndex + 1) % len(boulderDifficulties)
		}
	case MenuActionBack:
		m.back = true
		return m, nil
	}

	return m, nil
}

func (m BoulderModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := boulder.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = BoulderSelection{
			Level:      m.levelCursor + 1, // 1-indexed
			Difficulty: boulderDifficulties[m.diffIndex],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/cave selection.
func (m BoulderModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m BoulderModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B O U L D E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Dig, collect diamonds, mind the rocks", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Play",
		"Select Cave...",
		fmt.Sprintf("Difficulty: %s", boulderDifficulties[m.diffIndex]),
	}

	for i, option := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, option), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BoulderModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT CAVE", m.width))
	b.WriteString("\n\n")

	levelNames := boulder.LevelNames()
	for i, name := range levelNames {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BoulderModeModel) Selected() *BoulderSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BoulderModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BoulderModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoulderModeModel) WantsBack() bool {
	return m.back
}

// RunBoulderModeSelector runs the Boulder mode selection and returns the selection.
func RunBoulderModeSelector(cfg core.RuntimeConfig) (*BoulderSelection, core.RuntimeConfig, error) {
	model := NewBoulderModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BoulderModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
