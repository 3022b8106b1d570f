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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const maxOutputLines = 200

const shellHelp = `# ranktree shell

Type a command and press **enter**.

| Command | Effect |
|---|---|
| insert K V | add an entry, prints rebalancing ops |
| delete K | remove an entry, prints rebalancing ops |
| search K | look up a value |
| min / max | smallest and largest value |
| size, keys, values | contents of the current tree |
| select I | I-th smallest entry, from 0 |
| print | draw the current tree |
| verify | check every balance and order rule |
| split K LOW HIGH | cut the tree around K into two named trees |
| join K V OTHER | merge OTHER into the current tree around a new entry |
| use NAME | switch trees, creating NAME when missing |
| trees | list trees |
| seq FROM TO | insert FROM..TO-1 |

Keys: **f1** help, **ctrl+y** copy keys, **pgup/pgdown** scroll, **esc** quit.
`

// Styles holds all the styling for the shell
type Styles struct {
	Border      lipgloss.Style
	Title       lipgloss.Style
	InputPrompt lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Output      lipgloss.Style
	Result      lipgloss.Style
	Notice      lipgloss.Style
	Failure     lipgloss.Style
}

func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		Output: lipgloss.NewStyle().
			Foreground(scheme.Text),
		Result: lipgloss.NewStyle().
			Foreground(scheme.Success),
		Notice: lipgloss.NewStyle().
			Foreground(scheme.Warning),
		Failure: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// Model is the Bubble Tea state of the interactive shell.
type Model struct {
	ready    bool
	showHelp bool

	input    textinput.Model
	treeView viewport.Model
	output   []string
	status   string

	ws              *Workspace
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func InitialModel(ws *Workspace) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	styles := NewStyles(GetColorScheme())
	ti.PromptStyle = styles.InputPrompt

	m := Model{
		input:           ti,
		treeView:        viewport.New(0, 0),
		ws:              ws,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			keys, _ := m.ws.Execute("keys")
			if err := clipboard.WriteAll(keys); err != nil {
				m.status = m.styles.Notice.Render("copy failed: " + err.Error())
			} else {
				m.status = m.styles.Result.Render("copied keys of " + m.ws.Current())
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.appendOutput(m.styles.InputPrompt.Render("> ") + line)

	result, err := m.ws.Execute(line)
	switch {
	case err != nil:
		m.appendOutput(m.styles.Failure.Render(err.Error()))
	case result != "":
		m.appendOutput(m.styles.Output.Render(result))
	}
	m.status = ""
	m.refreshTree()
}

func (m *Model) appendOutput(text string) {
	m.output = append(m.output, strings.Split(text, "\n")...)
	if over := len(m.output) - maxOutputLines; over > 0 {
		m.output = m.output[over:]
	}
}

// refreshTree redraws the right pane: the current tree, or help when toggled.
func (m *Model) refreshTree() {
	if m.showHelp {
		m.treeView.SetContent(shellHelp)
		if m.glamourRenderer == nil {
			return
		}
		if rendered, err := m.glamourRenderer.Render(shellHelp); err == nil {
			m.treeView.SetContent(rendered)
		}
		return
	}
	idx := m.ws.index()
	m.treeView.SetContent(renderTree(m.ws.Current(), idx.Tree(), m.ws.config.Render.MaxNodes))
}

func (m *Model) paneWidths() (int, int) {
	left := m.width/2 - 1
	return left, m.width - left - 3
}

func (m *Model) updateLayout() {
	left, right := m.paneWidths()
	m.input.Width = left - 6
	m.treeView.Width = right - 2
	m.treeView.Height = m.height - 6
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	left, right := m.paneWidths()
	bodyHeight := m.height - 6

	// output scrolls from the bottom
	logHeight := bodyHeight - 4
	lines := m.output
	if len(lines) > logHeight {
		lines = lines[len(lines)-logHeight:]
	}

	inputBox := m.styles.Border.
		Width(left).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("Command ("+m.ws.Current()+")"),
			m.input.View(),
		))
	outputBox := m.styles.Border.
		Width(left).
		Height(logHeight).
		Render(strings.Join(lines, "\n"))

	title := "Tree " + m.ws.Current()
	if m.showHelp {
		title = "Help"
	}
	treeBox := m.styles.Border.
		Width(right).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(title),
			m.treeView.View(),
		))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, outputBox),
		treeBox,
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run", "help", "copy keys", "scroll tree", "quit"}

	entries := make([]string, len(keys))
	for i, key := range keys {
		entries[i] = fmt.Sprintf("%s %s", m.styles.HelpKey.Render(key), m.styles.HelpDesc.Render(descs[i]))
	}
	footer := strings.Join(entries, " • ")
	if m.status != "" {
		footer += "   " + m.status
	}
	return lipgloss.NewStyle().Padding(1, 0, 0, 2).Render(footer)
}

// runShell starts the TUI, or a plain line loop when stdin is not a terminal.
func runShell(ws *Workspace) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runLineLoop(ws, os.Stdin, os.Stdout)
	}

	InitializeColors()
	program := tea.NewProgram(InitialModel(ws), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// runLineLoop reads commands until EOF. Failures are reported and the loop
// goes on.
func runLineLoop(ws *Workspace, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		result, err := ws.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	return scanner.Err()
}
