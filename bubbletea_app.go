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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

const maxLogEntries = 200

const explorerHelp = `# Commands

| command | effect |
|---|---|
| ` + "`insert K...`" + ` | add keys |
| ` + "`remove K...`" + ` | delete keys |
| ` + "`find K...`" + ` | membership |
| ` + "`inorder` `preorder` `postorder` `bfs` `levels`" + ` | traversals |
| ` + "`height` `size` `empty` `check` `min` `max`" + ` | queries |
| ` + "`load WORKLOAD N [SEED]`" + ` | bulk insert, N at most %d |
| ` + "`clear`" + ` | drop every key |

# Workloads

%s
Press **f1** again to return to the tree.
`

// Model represents the explorer state
type Model struct {
	ready bool

	commandInput textinput.Model
	outputList   list.Model
	treeViewport viewport.Model

	session *Session
	entries []string
	history []string
	recall  int

	focusOnTree bool
	showHelp    bool
	status      string
	statusErr   bool

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
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// outputItem is one line of command output in the log list
type outputItem struct {
	text string
}

func (i outputItem) FilterValue() string { return i.text }
func (i outputItem) Title() string       { return i.text }
func (i outputItem) Description() string { return "" }

// InitialModel creates the explorer model around a session
func InitialModel(session *Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8 ..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	outputList := list.New([]list.Item{}, delegate, 0, 0)
	outputList.SetShowTitle(false)
	outputList.SetShowHelp(false)
	outputList.SetShowStatusBar(false)
	outputList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		commandInput:    ti,
		outputList:      outputList,
		treeViewport:    treeViewport,
		session:         session,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.commandInput.Blur()
			} else {
				m.commandInput.Focus()
			}
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			keys := m.session.Tree().Snapshot().InOrder()
			if err := copyToClipboard(joinKeys(keys)); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("copied %d keys to clipboard", len(keys)), false)
			}
			return m, nil
		}

		if m.focusOnTree {
			switch msg.String() {
			case "up", "k":
				m.treeViewport.LineUp(1)
			case "down", "j":
				m.treeViewport.LineDown(1)
			case "home":
				m.treeViewport.GotoTop()
			case "end":
				m.treeViewport.GotoBottom()
			default:
				m.treeViewport, cmd = m.treeViewport.Update(msg)
			}
			return m, cmd
		}

		switch msg.String() {
		case "enter":
			line := m.commandInput.Value()
			m.commandInput.SetValue("")
			m.submit(line)
			return m, nil
		case "up":
			m.recallHistory(-1)
			return m, nil
		case "down":
			m.recallHistory(+1)
			return m, nil
		}
		m.commandInput, cmd = m.commandInput.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// submit runs one command line and records its output
func (m *Model) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.recall = len(m.history)

	out, err := m.session.Exec(line)
	m.appendEntry("avl> " + line)
	for _, o := range out {
		m.appendEntry("  " + o)
	}
	if err != nil {
		m.appendEntry("  error: " + err.Error())
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus("ok", false)
	}
	m.refreshTree()
}

func (m *Model) appendEntry(text string) {
	m.entries = append(m.entries, text)
	if len(m.entries) > maxLogEntries {
		m.entries = m.entries[len(m.entries)-maxLogEntries:]
	}

	items := make([]list.Item, len(m.entries))
	for i, e := range m.entries {
		items[i] = outputItem{text: e}
	}
	m.outputList.SetItems(items)
	m.outputList.Select(len(items) - 1)
}

func (m *Model) recallHistory(step int) {
	if len(m.history) == 0 {
		return
	}
	m.recall = max(0, min(len(m.history), m.recall+step))
	if m.recall == len(m.history) {
		m.commandInput.SetValue("")
		return
	}
	m.commandInput.SetValue(m.history[m.recall])
	m.commandInput.CursorEnd()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// refreshTree redraws the right hand pane: the tree picture or the
// rendered command reference.
func (m *Model) refreshTree() {
	if m.showHelp {
		help := fmt.Sprintf(explorerHelp, workload.MaxCount, workloadList())
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(help); err == nil {
				m.treeViewport.SetContent(rendered)
				return
			}
		}
		m.treeViewport.SetContent(help)
		return
	}

	picture := m.session.Render()
	if picture == "" {
		picture = "(empty tree, try: insert 5 3 8 1 4)"
	}
	m.treeViewport.SetContent(picture)
}

func (m *Model) updateLayout() {
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6

	m.commandInput.Width = leftWidth - 10
	m.outputList.SetSize(leftWidth-2, bodyHeight-5)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = bodyHeight - 1
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6

	inputStyle, treeStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	treeTitle := " 🌳 Tree "
	if m.focusOnTree {
		inputStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
		treeTitle = " 🌳 Tree (Active) "
	}
	if m.showHelp {
		treeTitle = " 📖 Commands "
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Padding(0, 1).
		Render(m.commandInput.View())

	outputBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(bodyHeight - 3).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📋 Output "),
			m.outputList.View(),
		))

	treeBox := treeStyle.
		Width(rightWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, outputBox),
		treeBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatus(), m.renderHelp())
}

func (m Model) renderStatus() string {
	var size, height int
	m.session.Tree().View(func(tree *avl.Tree) {
		size, height = tree.Size(), tree.Height()
	})
	summary := fmt.Sprintf("size %d • height %d", size, height)

	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	if m.status == "" {
		return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(summary)
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(summary + " • " + style.Render(m.status))
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "up/down", "tab", "f1", "ctrl+y", "esc"}
	descs := []string{"run command", "history", "switch focus", "command reference", "copy keys", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unavailable, install xclip or xsel")
	}
	return clipboard.WriteAll(text)
}

func runBubbleTeaApp(session *Session) error {
	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
