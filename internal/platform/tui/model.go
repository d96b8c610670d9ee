// Package tui is the full-screen terminal front-end built on Bubble Tea.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Title is shown on top of the game screen.
const Title = "ASCII-Hangman for Kids"

// Model is the Bubble Tea model for a hangman session.
type Model struct {
	backend  *backend.Backend
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model driving the given backend.
func NewModel(b *backend.Backend, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		backend: b,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) || m.backend.State() == hangman.VictoryFinal {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Continue) {
		m.backend.ProcessInput("\n")
		return m, nil
	}
	m.backend.ProcessInput(keyInput(msg))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	// The last row belongs to the help line.
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawGame(m.screen, m.backend)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawGame composes the title, the framed image, the secret, the status and
// the instructions, centered horizontally and stacked from the top.
func drawGame(s *core.Screen, b *backend.Backend) {
	y := 0
	s.DrawTextCentered(y, Title, core.ColorBrightYellow)
	y += 2

	imageText := b.RenderImage()
	w, h := b.ImageDimension()
	x := (s.Width() - w) / 2
	s.DrawBox(x, y+1, w, h, core.ColorGray)
	s.DrawBlock(x, y+1, imageText, core.ColorBrightWhite)
	y += h + 3

	secret := b.RenderSecret()
	sw, sh := core.BlockSize(secret)
	s.DrawBlock((s.Width()-sw)/2, y, secret, core.ColorBrightWhite)
	y += sh + 1

	s.DrawTextCentered(y, strings.ReplaceAll(b.RenderStatus(), "\t", "    "), core.ColorCyan)
	y += 2

	s.DrawTextCentered(y, b.RenderInstructions(), instructionColor(b.State()))
}

func instructionColor(st hangman.State) core.Color {
	switch {
	case st.IsDefeat():
		return core.ColorRed
	case st != hangman.Ongoing:
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

// Run starts the Bubble Tea program for the given backend.
func Run(b *backend.Backend, cfg core.RuntimeConfig) error {
	model := NewModel(b, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
