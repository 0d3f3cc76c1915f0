// Package inspectui provides the Bubble Tea readability inspector.
package inspectui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readgrade/internal/report"
	"github.com/verte-zerg/readgrade/readability"
)

const (
	tabScores = iota
	tabSentences
	tabStatistics
)

const fallbackWidth = 80

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	sentenceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	difficultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")).Underline(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Options carries the verbose settings the inspector passes to the engine.
type Options struct {
	TopN         int
	WordAnalysis bool
	Suggestions  bool
	Variant      int
}

// Model implements the Bubble Tea inspector.
type Model struct {
	engine *readability.Engine
	text   string
	opts   Options

	metric readability.Metric
	grade  string
	errMsg string

	tabs      []string
	activeTab int
	scores    table.Model
	viewports []viewport.Model

	langMode  bool
	langInput textinput.Model

	width  int
	height int
}

// NewModel builds an inspector for text scored by engine.
func NewModel(engine *readability.Engine, text string, opts Options) *Model {
	if opts.TopN < 1 {
		opts.TopN = readability.DefaultTopN
	}
	if opts.Variant < 1 {
		opts.Variant = 1
	}
	m := &Model{
		engine: engine,
		text:   text,
		opts:   opts,
		metric: readability.FleschKincaidGrade,
		tabs:   []string{"Scores", "Sentences", "Statistics"},
	}
	m.scores = table.New(table.WithFocused(true), table.WithStyles(tableStyles()))
	m.viewports = []viewport.Model{viewport.New(0, 0), viewport.New(0, 0), viewport.New(0, 0)}
	m.langInput = textinput.New()
	m.langInput.Prompt = "Locale: "
	m.langInput.Placeholder = strings.Join(engine.Locales(), " ")
	m.refresh()
	return m
}

// Metric returns the metric used to rank sentences.
func (m *Model) Metric() readability.Metric { return m.metric }

// ActiveTab returns the selected tab name.
func (m *Model) ActiveTab() string { return m.tabs[m.activeTab] }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.langMode {
			return m.updateLang(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			m.langMode = true
			m.langInput.SetValue("")
			return m, m.langInput.Focus()
		case "enter":
			if m.activeTab == tabScores {
				m.selectMetric()
			}
			return m, nil
		case "g", "home":
			if m.activeTab == tabScores {
				m.scores.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabScores {
				m.scores.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabScores {
			m.scores, cmd = m.scores.Update(msg)
			return m, cmd
		}
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateLang(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.langMode = false
		m.langInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.langMode = false
		m.langInput.Blur()
		if err := m.engine.SetLang(strings.TrimSpace(m.langInput.Value())); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if !m.metric.Supports(m.engine.Lang()) {
			m.metric = readability.FleschKincaidGrade
		}
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.langInput, cmd = m.langInput.Update(msg)
	return m, cmd
}

func (m *Model) selectMetric() {
	row := m.scores.SelectedRow()
	if len(row) == 0 {
		return
	}
	metric, err := readability.ParseMetric(row[0])
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.metric = metric
	m.renderTabContents()
	m.activeTab = tabSentences
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
	if m.activeTab == tabScores {
		m.scores.Focus()
	} else {
		m.scores.Blur()
	}
}

// refresh rescores the text after a locale change.
func (m *Model) refresh() {
	m.errMsg = ""
	m.grade = m.engine.TextStandard(m.text)
	scores, err := report.Scores(m.engine, m.text, readability.WithVariant(m.opts.Variant))
	if err != nil {
		m.errMsg = err.Error()
	}
	m.scores.SetColumns([]table.Column{{Title: "Metric", Width: 32}, {Title: "Score", Width: 10}, {Title: "Direction", Width: 16}})
	rows := make([]table.Row, 0, len(scores))
	for _, s := range scores {
		direction := "lower = easier"
		if s.Metric.HigherIsEasier() {
			direction = "higher = easier"
		}
		rows = append(rows, table.Row{string(s.Metric), fmt.Sprintf("%.2f", s.Value), direction})
	}
	m.scores.SetRows(rows)
	m.scores.SetCursor(0)
	m.renderTabContents()
}

func (m *Model) callOptions() []readability.CallOption {
	opts := []readability.CallOption{readability.WithTopN(m.opts.TopN), readability.WithVariant(m.opts.Variant)}
	if !m.opts.WordAnalysis {
		opts = append(opts, readability.WithoutWordAnalysis())
	}
	if !m.opts.Suggestions {
		opts = append(opts, readability.WithoutSuggestions())
	}
	return opts
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	m.viewports[tabSentences].SetContent(m.renderSentences(width))
	m.viewports[tabStatistics].SetContent(m.renderStatistics(width))
}

func (m *Model) renderSentences(width int) string {
	rep, err := m.engine.Report(m.metric, m.text, m.callOptions()...)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	lines := []string{titleStyle.Render(fmt.Sprintf("%s: %.2f", rep.Metric, rep.Score))}
	if len(rep.ComplexSentences) == 0 {
		lines = append(lines, "", mutedStyle.Render("No sentences to rank."))
	}
	for _, s := range rep.ComplexSentences {
		lines = append(lines, "",
			mutedStyle.Render(fmt.Sprintf("#%d  score %.2f  %d words", s.Index+1, s.Score, s.Length)),
			highlightSentence(s.Text, s.DifficultWords, width))
		for _, sug := range s.Suggestions {
			lines = append(lines, mutedStyle.Render("  - "+truncateLine(sug, width-4)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatistics(width int) string {
	var buf bytes.Buffer
	if err := report.WriteStatistics(&buf, m.engine.Statistics(m.text)); err != nil {
		return errorStyle.Render(err.Error())
	}
	scores, err := m.engine.SentenceScores(m.metric, m.text)
	if err == nil && len(scores) > 0 {
		buf.WriteString("\n" + string(m.metric) + " per sentence\n")
		buf.WriteString(report.Sparkline(scores, width))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = max(lipgloss.Height(activeNavStyle.Render("X")), 1) + 1
	footerHeight = 1
	if m.errMsg != "" || m.langMode {
		footerHeight++
	}
	bodyHeight = max(m.height-headerHeight-footerHeight, 1)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.scores.SetWidth(m.width)
	m.scores.SetHeight(max(bodyHeight-1, 1))
	m.langInput.Width = max(10, m.width-lipgloss.Width(m.langInput.Prompt)-2)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	summary := fmt.Sprintf("Locale: %s  Grade: %s  Ranking by: %s", m.engine.Lang(), m.grade, m.metric)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderBody() string {
	if m.activeTab == tabScores {
		return m.scores.View()
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderFooter() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Rank by metric: enter  Locale: /  Quit: q"
	lines := []string{headerStyle.Render(truncateLine(help, m.width))}
	switch {
	case m.langMode:
		lines = append(lines, m.langInput.View())
	case m.errMsg != "":
		lines = append(lines, errorStyle.Render(truncateLine(m.errMsg, m.width)))
	}
	return strings.Join(lines, "\n")
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	return styles
}
