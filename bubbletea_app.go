// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const stepsPanelWidth = 36

// Messages delivered by tea.Tick. seq ties each one to the action that
// scheduled it so a newer action cancels older timers. A delayed delete
// carries its own ticket instead: it is never cancelled, only run early.
type clearHighlightMsg struct{ seq int }

type performDeleteMsg struct {
	key    string
	ticket int
}

type stepTickMsg struct{ seq int }

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input     textinput.Model
	treeView  viewport.Model
	stepsView viewport.Model
	helpView  viewport.Model

	ws     Workspace
	config *Config

	highlight  Highlight
	seq        int
	pending    string // key waiting for its delete delay
	ticket     int
	steps      []string
	shownSteps int

	status    string
	statusErr bool
	showSteps bool
	showHelp  bool
	popup     bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Popup          lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles(p *Palette) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Focus),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Popup: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.Focus).
			Padding(1, 3),
	}
}

// InitialModel creates the initial model
func InitialModel(ws Workspace, config *Config) Model {
	ti := textinput.New()
	if ws.Mode() == KeyModeNumber {
		ti.Placeholder = "Type a number..."
	} else {
		ti.Placeholder = "Type a key..."
	}
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30

	treeView := viewport.New(0, 0)
	stepsView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		treeView:        treeView,
		stepsView:       stepsView,
		helpView:        helpView,
		ws:              ws,
		config:          config,
		styles:          NewStyles(GetPalette()),
		glamourRenderer: glamourRenderer,
		status:          "Type a key and press Enter to insert it. F1 for help.",
	}
	m.refreshTree()
	m.refreshHelp()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case clearHighlightMsg:
		if msg.seq == m.seq {
			m.highlight = Highlight{}
			m.refreshTree()
		}
		return m, nil

	case performDeleteMsg:
		if msg.ticket != m.ticket || msg.key != m.pending {
			return m, nil
		}
		m.seq++
		m.pending = ""
		m.highlight = Highlight{}
		outcome, err := m.ws.Delete(msg.key)
		return m, m.applyOutcome(outcome, err)

	case stepTickMsg:
		if msg.seq != m.seq || m.shownSteps >= len(m.steps) {
			return m, nil
		}
		m.shownSteps++
		m.refreshSteps()
		return m, m.nextStep()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.popup {
		switch msg.String() {
		case "c":
			if err := clipboard.WriteAll(m.ws.OrderedList()); err != nil {
				m.setError(fmt.Errorf("copy failed: %v", err))
			} else {
				m.setStatus("📋 Copied ordered list to clipboard.")
			}
			m.popup = false
		case "esc", "enter", "ctrl+o", "q":
			m.popup = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case "f1":
		m.showHelp = !m.showHelp
		return m, nil
	case "ctrl+o":
		m.popup = true
		return m, nil
	case "ctrl+t":
		m.showSteps = !m.showSteps
		m.updateLayout()
		return m, nil
	case "ctrl+r":
		m.seq++
		m.ws.Reset()
		m.highlight = Highlight{}
		m.pending = ""
		m.steps = nil
		m.refreshTree()
		m.refreshSteps()
		m.setStatus("Tree cleared")
		return m, nil
	case "enter", "ctrl+a":
		return m.insertValue()
	case "ctrl+s":
		return m.searchValue()
	case "ctrl+d":
		return m.deleteValue()
	case "pgup":
		m.treeView.LineUp(m.treeView.Height)
		return m, nil
	case "pgdown":
		m.treeView.LineDown(m.treeView.Height)
		return m, nil
	}

	if m.showHelp {
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// takeInput returns the typed value and clears the input box.
func (m *Model) takeInput() (string, bool) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return "", false
	}
	m.input.SetValue("")
	return value, true
}

func (m Model) insertValue() (tea.Model, tea.Cmd) {
	value, ok := m.takeInput()
	if !ok {
		return m, nil
	}
	m.seq++
	m.flushDelete()
	outcome, err := m.ws.Insert(value)
	return m, m.applyOutcome(outcome, err)
}

func (m Model) searchValue() (tea.Model, tea.Cmd) {
	value, ok := m.takeInput()
	if !ok {
		return m, nil
	}
	m.seq++
	m.flushDelete()
	outcome, err := m.ws.Search(value)
	cmd := m.applyOutcome(outcome, err)
	if err != nil || !outcome.Found {
		return m, cmd
	}

	m.highlight = Highlight{Path: outcome.Path, Match: outcome.Key}
	m.refreshTree()
	seq := m.seq
	fade := tea.Tick(m.config.Animation.Highlight(), func(time.Time) tea.Msg {
		return clearHighlightMsg{seq: seq}
	})
	return m, tea.Batch(cmd, fade)
}

// deleteValue marks the node and its path first and deletes it once the
// delete delay has passed.
func (m Model) deleteValue() (tea.Model, tea.Cmd) {
	value, ok := m.takeInput()
	if !ok {
		return m, nil
	}
	m.seq++
	m.flushDelete()
	outcome, err := m.ws.Search(value)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if !outcome.Found {
		// run the delete anyway so the status reflects the no-op
		outcome, err = m.ws.Delete(value)
		return m, m.applyOutcome(outcome, err)
	}

	m.highlight = Highlight{Path: outcome.Path, Match: outcome.Key, Delete: true}
	m.pending = outcome.Key
	m.refreshTree()
	m.setStatus(fmt.Sprintf("Deleting %s...", outcome.Key))

	m.ticket++
	ticket := m.ticket
	key := outcome.Key
	return m, tea.Tick(m.config.Animation.DeleteDelay(), func(time.Time) tea.Msg {
		return performDeleteMsg{key: key, ticket: ticket}
	})
}

// flushDelete runs a delete still waiting for its delay so that a new
// action never leaves it behind. Its timer finds nothing pending later.
func (m *Model) flushDelete() {
	m.highlight = Highlight{}
	if m.pending == "" {
		return
	}
	key := m.pending
	m.pending = ""
	if _, err := m.ws.Delete(key); err != nil {
		m.setError(err)
	}
}

// applyOutcome updates status, tree and step log after an action and
// starts replaying its steps.
func (m *Model) applyOutcome(outcome Outcome, err error) tea.Cmd {
	if err != nil {
		m.setError(err)
		return nil
	}
	m.setStatus(outcome.Message())
	m.steps = outcome.Steps
	m.shownSteps = 0
	m.refreshTree()
	m.refreshSteps()
	return m.nextStep()
}

func (m *Model) nextStep() tea.Cmd {
	if m.shownSteps >= len(m.steps) {
		return nil
	}
	seq := m.seq
	return tea.Tick(m.config.Animation.StepDelay(), func(time.Time) tea.Msg {
		return stepTickMsg{seq: seq}
	})
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if errors.Is(err, ErrInvalidKey) {
		m.status = fmt.Sprintf("⚠️  %v", err)
	} else {
		m.status = fmt.Sprintf("❌ %v", err)
	}
	m.statusErr = true
}

func (m *Model) refreshTree() {
	m.treeView.SetContent(m.ws.Render(m.highlight))
}

func (m *Model) refreshSteps() {
	if len(m.steps) == 0 {
		m.stepsView.SetContent("No steps yet.")
		return
	}
	var sb strings.Builder
	for i, step := range m.steps[:m.shownSteps] {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, step))
	}
	if m.shownSteps < len(m.steps) {
		sb.WriteString("...\n")
	}
	m.stepsView.SetContent(sb.String())
	m.stepsView.GotoBottom()
}

func (m *Model) refreshHelp() {
	content := keyBindingsMarkdown
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.helpView.SetContent(content)
}

// updateLayout sizes the panels; 2 columns/rows go to each border.
func (m *Model) updateLayout() {
	bodyHeight := m.height - 7
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	treeWidth := m.width - 2
	if m.showSteps {
		treeWidth -= stepsPanelWidth + 2
	}
	if treeWidth < 10 {
		treeWidth = 10
	}

	m.treeView.Width = treeWidth
	m.treeView.Height = bodyHeight
	m.stepsView.Width = stepsPanelWidth
	m.stepsView.Height = bodyHeight
	m.helpView.Width = m.width - 2
	m.helpView.Height = bodyHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	st := m.ws.Stats()
	title := m.styles.Title.Render(fmt.Sprintf("🌳 Arbor  ·  %s keys  ·  %d nodes  ·  height %d", m.ws.Mode(), st.Count, st.Height))
	input := m.styles.InputPrompt.Render("Key: ") + m.input.View()

	var body string
	switch {
	case m.showHelp:
		body = m.styles.BorderFocused.Render(m.helpView.View())
	case m.showSteps:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.BorderFocused.Render(m.treeView.View()),
			m.styles.BorderBlurred.Render(m.stepsView.View()),
		)
	default:
		body = m.styles.BorderFocused.Render(m.treeView.View())
	}

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, title, input, body, status, m.renderHelpLine())
	if m.popup {
		popup := m.styles.Popup.Render(m.ws.OrderedList() + "\n\n" + m.styles.HelpDesc.Render("c: copy · esc: close"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
	}
	return view
}

func (m Model) renderHelpLine() string {
	bindings := [][2]string{
		{"enter", "insert"},
		{"ctrl+s", "search"},
		{"ctrl+d", "delete"},
		{"ctrl+o", "ordered"},
		{"ctrl+t", "steps"},
		{"f1", "help"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, m.styles.HelpKey.Render(b[0])+" "+m.styles.HelpDesc.Render(b[1]))
	}
	return strings.Join(parts, "  ")
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(ws Workspace, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(ws, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
