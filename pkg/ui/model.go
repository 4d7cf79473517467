package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plecakdb/pkg/monitor"
	"plecakdb/pkg/parser/statements"
	"plecakdb/pkg/ui/base"
)

// Model represents the monitor's interactive state
type Model struct {
	session     *monitor.Session
	queryEditor textarea.Model
	resultView  viewport.Model
	help        help.Model
	highlighter *SQLHighlighter

	width    int
	height   int
	showHelp bool
	status   string

	lastInput    string
	lastResult   monitor.Result
	lastDuration time.Duration

	keys keyMap
}

func NewModel(session *monitor.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter a SQL statement terminated by ';'..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = true
	ta.SetHeight(4)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 12)
	vp.Style = resultStyle

	return Model{
		session:     session,
		queryEditor: ta,
		resultView:  vp,
		help:        help.New(),
		highlighter: NewSQLHighlighter(),
		keys:        keys,
		status:      "Type .help for help",
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.session.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			input := strings.TrimSpace(m.queryEditor.Value())
			if input == "" {
				return m, nil
			}
			// The prompt only hands over completed inputs: meta commands
			// or statements terminated by ';'.
			if !strings.HasPrefix(input, ".") && !strings.HasSuffix(input, ";") {
				m.status = "Statement is not terminated; end it with ';'"
				return m, nil
			}
			return m, m.dispatch(input)

		case key.Matches(msg, m.keys.Clear):
			m.queryEditor.SetValue("")
			m.lastResult = monitor.Result{}
			m.status = "Editor cleared"

		case key.Matches(msg, m.keys.History):
			return m, m.dispatch(".history")

		case key.Matches(msg, m.keys.Tokens):
			return m, m.dispatch(".tokens")

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case resultMsg:
		if msg.result.Quit {
			m.session.Close()
			return m, tea.Quit
		}
		m.lastInput = msg.input
		m.lastResult = msg.result
		m.lastDuration = msg.duration
		m.status = m.statusFor(msg.result)
		m.resultView.SetContent(m.renderResult())
		m.resultView.GotoTop()
		if msg.result.Err == nil && !strings.HasPrefix(msg.input, ".") {
			m.queryEditor.SetValue("")
		}
	}

	var cmd tea.Cmd
	m.queryEditor, cmd = m.queryEditor.Update(msg)
	cmds = append(cmds, cmd)

	m.resultView, cmd = m.resultView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("PlecakDB monitor"))

	sections = append(sections, labelStyle.Render("SQL"))
	sections = append(sections, editorStyle.Render(m.queryEditor.View()))

	sections = append(sections, m.resultView.View())
	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return strings.Join(sections, "\n")
}

type resultMsg struct {
	input    string
	result   monitor.Result
	duration time.Duration
}

// dispatch hands one completed input to the session off the UI loop.
func (m Model) dispatch(input string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res := m.session.Dispatch(input)
		return resultMsg{
			input:    input,
			result:   res,
			duration: time.Since(start),
		}
	}
}

func (m Model) statusFor(res monitor.Result) string {
	switch {
	case res.Err != nil:
		return "Statement failed"
	case res.Statement != nil && res.Cached:
		return fmt.Sprintf("Parsed in %v (cache hit)", m.lastDuration)
	case res.Statement != nil:
		return fmt.Sprintf("Parsed in %v", m.lastDuration)
	default:
		return "Type .help for help"
	}
}

// renderResult formats the last dispatch outcome for the result pane.
func (m Model) renderResult() string {
	res := m.lastResult

	if res.Err != nil {
		return errorStyle.Render(" ERROR ") + " " +
			lipgloss.NewStyle().Foreground(errorColor).Render(res.Err.Error())
	}

	if res.Output != "" {
		return res.Output
	}

	if res.Statement == nil {
		return mutedStyle.Render("No statement")
	}

	var sb strings.Builder
	sb.WriteString(resultHeaderStyle.Render(fmt.Sprintf("✓ %s statement", res.Statement.GetType())))
	sb.WriteString("\n\n")
	sb.WriteString(m.highlighter.Highlight(res.Statement.String()))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBreakdown(res.Statement))

	if len(res.Tokens) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(labelStyle.Render("Tokens"))
		sb.WriteString("\n")
		for i, tok := range res.Tokens {
			sb.WriteString(fmt.Sprintf(" %3d  %s %q @%d\n",
				i, base.PadString(tok.Type.String(), 11), tok.Value, tok.Position))
		}
	}

	return sb.String()
}

// renderBreakdown lists the parts of the parsed statement.
func (m Model) renderBreakdown(stmt statements.Statement) string {
	var lines []string
	add := func(name, value string) {
		lines = append(lines, fmt.Sprintf("  %s %s", mutedStyle.Render(base.PadString(name, 9)), value))
	}

	switch s := stmt.(type) {
	case *statements.SelectStatement:
		add("table", s.TableName)
		add("columns", strings.Join(s.Columns, ", "))
		if s.HasWhereClause() {
			add("where", s.WhereClause.String())
		}
	case *statements.InsertStatement:
		add("table", s.TableName)
		add("columns", strings.Join(s.Columns, ", "))
		values := make([]string, len(s.Values))
		for i, v := range s.Values {
			values[i] = v.String()
		}
		add("values", strings.Join(values, ", "))
	case *statements.UpdateStatement:
		add("table", s.TableName)
		for _, clause := range s.SetClauses {
			add("set", fmt.Sprintf("%s = %s", clause.Column, clause.Value.String()))
		}
		if s.HasWhereClause() {
			add("where", s.WhereClause.String())
		}
	case *statements.DeleteStatement:
		add("table", s.TableName)
		if s.HasWhereClause() {
			add("where", s.WhereClause.String())
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	echo := ""
	if m.session.TokenEchoEnabled() {
		echo = " | token echo on"
	}
	helpHint := " | Ctrl+H for help"
	content := lipgloss.NewStyle().Foreground(accentColor).Render("● ready") +
		mutedStyle.Render(" | "+m.status+echo+helpHint)

	width := m.width - 2
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(content)
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.Execute,
			m.keys.Clear,
			m.keys.History,
			m.keys.Tokens,
			m.keys.Help,
			m.keys.Quit,
		},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(helpText)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	editorHeight := 4
	resultHeight := m.height - editorHeight - 8
	if resultHeight < 3 {
		resultHeight = 3
	}

	m.queryEditor.SetWidth(m.width - 6)
	m.resultView.Width = m.width - 4
	m.resultView.Height = resultHeight
}
