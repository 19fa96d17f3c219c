package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F2A6E")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))

	deadStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#777777"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type shellModel struct {
	shell       *session.Shell
	catalog     *catalog.Catalog
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

const welcome = "Welcome to the Grimoire!\nType 'help' for commands, 'exit' to quit."

func newShellModel(shell *session.Shell, cat *catalog.Catalog) shellModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., script load tb)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	return shellModel{
		shell:       shell,
		catalog:     cat,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  welcome,
	}
}

func (m *shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *shellModel) updateSuggestions() {
	val := m.textInput.Value()
	var items []list.Item

	defer func() {
		m.suggestions.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 10 {
				h = 10
			}
			if h < 4 {
				h = 4
			}
			m.suggestions.SetHeight(h)
			m.suggestions.ResetSelected()
		}
	}()

	if val == "" {
		return
	}

	baseCmds := []string{
		"script list", "script load ", "script import ", "script export ",
		"script save", "script show",
		"player add ", "player remove ", "player rename ", "player toggle ",
		"player assign ",
		"bag add ", "bag remove ", "bag show", "bag shuffle", "bag reset",
		"draw", "confirm", "cancel",
		"reminder add to: ", "reminder remove to: ",
		"setup show ", "setup fill ", "setup players ",
		"game reset", "phase ", "view ", "next", "help", "exit", "quit",
	}

	for _, c := range baseCmds {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(val)) && len(val) < len(c) {
			items = append(items, suggestion(c))
		}
	}

	snap := m.shell.Store().Snapshot()

	lower := strings.ToLower(val)

	// Official script keys after "script load ".
	if rest, ok := strings.CutPrefix(lower, "script load "); ok {
		for _, key := range m.catalog.ScriptKeys() {
			if strings.HasPrefix(key, rest) {
				items = append(items, suggestion("script load "+key))
			}
		}
	}

	// Character completion after "bag add " and "assign ... as: ".
	if rest, ok := strings.CutPrefix(lower, "bag add "); ok {
		items = append(items, characterSuggestions(snap, "bag add ", rest)...)
	} else if strings.Contains(lower, " as: ") && strings.HasPrefix(lower, "player assign") {
		parts := strings.SplitN(val, " as: ", 2)
		items = append(items, characterSuggestions(snap, parts[0]+" as: ", strings.ToLower(parts[1]))...)
	}

	// Player name completion after "to: ".
	if strings.Contains(lower, " to: ") {
		parts := strings.SplitN(val, " to: ", 2)
		prefix := strings.ToLower(parts[1])
		for _, p := range snap.Players {
			if strings.HasPrefix(strings.ToLower(p.Name), prefix) {
				items = append(items, suggestion(parts[0]+" to: "+p.Name+" "))
			}
		}
	}
}

func characterSuggestions(snap engine.Session, base, prefix string) []list.Item {
	if snap.Script == nil {
		return nil
	}
	var items []list.Item
	for _, ch := range snap.Script.Characters {
		if strings.HasPrefix(ch.ID, prefix) {
			items = append(items, suggestion(base+ch.ID))
		}
	}
	return items
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				out, err := m.shell.Execute(val)
				if err != nil {
					m.logContent += fmt.Sprintf("Error: %v", err)
				} else if out != "" {
					m.logContent += out
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 30
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	inputH := 1

	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}

	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	paddingH := 7

	overhead := titleH + stateH + inputH + listAreaHeight + infoH + paddingH + 4

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *shellModel) renderState() string {
	snap := m.shell.Store().Snapshot()

	stateView := fmt.Sprintf("=== %s | Day %d ===\n\n", snap.Phase, snap.DayNumber)

	if snap.Script == nil {
		stateView += "No script loaded.\n"
	} else {
		stateView += fmt.Sprintf("Script: %s (%d characters)\n", snap.Script.Name, len(snap.Script.Characters))
	}

	bagLine := fmt.Sprintf("Bag: %d in, %d drawn", len(snap.Bag), len(snap.Drawn))
	if snap.PendingDraw != "" {
		bagLine += fmt.Sprintf(" | pending: %s", snap.PendingDraw)
	}
	stateView += bagLine + "\n\n"

	if len(snap.Players) == 0 {
		stateView += "No players seated."
	} else {
		for _, p := range snap.Seats() {
			line := fmt.Sprintf(" %2d. %s", p.SeatPosition+1, p.Name)
			if ch, ok := snap.ResolveCharacter(p.CharacterID); ok {
				line += fmt.Sprintf(" - %s", ch.Name)
			} else if p.CharacterID != "" {
				line += fmt.Sprintf(" - %s?", p.CharacterID)
			}
			if len(p.Reminders) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(p.Reminders, ", "))
			}
			if !p.IsAlive {
				line = deadStyle.Render(line)
			}
			stateView += line + "\n"
		}
	}

	return stateBoxStyle.Width(m.width - 4).Render(stateView)
}

func (m *shellModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	snap := m.shell.Store().Snapshot()
	title := titleStyle.Render(fmt.Sprintf(" The Grimoire | %s view ", snap.View))
	stateBox := m.renderState()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), autocompleteStyle.Render(m.suggestions.View()))
	} else {
		inputArea = m.textInput.View()
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		title,
		stateBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)

	return mainView + strings.Repeat("\n", 7)
}

// RunTUI starts the full-screen shell over an initialized session.
func RunTUI(shell *session.Shell, cat *catalog.Catalog) error {
	m := newShellModel(shell, cat)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
