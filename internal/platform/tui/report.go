package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Report layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show variant sidebar
	sidebarWidth       = 20  // Width of variant sidebar
	maxRecords         = 100 // Max matches to load per variant
)

// ReportKeyMap defines the key bindings for the simulation report.
type ReportKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultReportKeyMap returns default key bindings.
func DefaultReportKeyMap() ReportKeyMap {
	return ReportKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReportModel shows recorded headless simulation matches per variant.
type ReportModel struct {
	variants    []string
	cursor      int
	store       *storage.Store
	records     []storage.MatchRecord
	stats       *storage.VariantStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ReportKeyMap
	width       int
	height      int
	embedded    bool
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewReportModel creates a report over the store's simulated variants.
// A nil store shows an empty report.
func NewReportModel(store *storage.Store, width, height int, embedded bool) ReportModel {
	h := help.New()
	h.Width = width

	m := ReportModel{
		store:       store,
		keys:        DefaultReportKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		embedded:    embedded,
		showSidebar: width >= minWidthForSidebar,
	}
	if store != nil {
		m.variants, m.loadErr = store.Variants()
	}

	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.load(m.variants[0])
	}
	return m
}

// ReportColumns are the report table headers, shared with the CLI output.
var ReportColumns = []string{"Run", "Seed", "Score", "Winner", "Ticks", "Hits", "Rally", "Date"}

// createTable creates a new table sized for the window.
func (m *ReportModel) createTable() table.Model {
	widths := []int{8, 12, 7, 7, 8, 6, 6, 12}
	columns := make([]table.Column, len(ReportColumns))
	for i, title := range ReportColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// tableHeight leaves room for the title, stats line, borders and help.
func tableHeight(windowH int) int {
	return max(windowH-10, 3)
}

// load reads records and stats for a variant.
func (m *ReportModel) load(variant string) {
	m.records, m.stats = nil, nil
	if m.store == nil {
		m.updateRows()
		return
	}

	m.records, m.loadErr = m.store.RecentMatches(variant, maxRecords)
	if m.loadErr == nil {
		m.stats, m.loadErr = m.store.GetVariantStats(variant)
	}
	m.updateRows()
}

// updateRows fills the table from the loaded records.
func (m *ReportModel) updateRows() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = RecordRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RecordRow formats a match record in ReportColumns order.
func RecordRow(r storage.MatchRecord) []string {
	run := r.RunID
	if len(run) > 8 {
		run = run[:8]
	}
	winner := "-"
	if r.Finished {
		winner = fmt.Sprintf("P%d", r.Winner)
	}
	return []string{
		run,
		fmt.Sprintf("%d", r.Seed),
		fmt.Sprintf("%d-%d", r.Score1, r.Score2),
		winner,
		fmt.Sprintf("%d", r.Ticks),
		fmt.Sprintf("%d", r.Hits),
		fmt.Sprintf("%d", r.LongestRally),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// StatsLine summarizes a variant in one line.
func StatsLine(s *storage.VariantStats) string {
	if s == nil || s.Matches == 0 {
		return "no matches"
	}
	return fmt.Sprintf("%d matches, %d finished  |  P1 %d : %d P2  |  avg %.0f ticks, %.1f hits  |  longest rally %d",
		s.Matches, s.Finished, s.Player1Wins, s.Player2Wins, s.AvgTicks, s.AvgHits, s.LongestRally)
}

// Init initializes the report model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.load(m.variants[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.load(m.variants[m.cursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the report.
func (m ReportModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SIMULATION REPORT"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("SIMULATION REPORT - %s", m.variants[m.cursor])
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the report with a variant sidebar.
func (m ReportModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.variants {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v))
		sidebar.WriteString("\n")
	}

	side := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	body := panelStyle.Render(m.renderBody())

	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", body)
}

// renderNarrowLayout renders the report with the variant name above the table.
func (m ReportModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.variants) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.variants[m.cursor]), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(panelStyle.Render(m.renderBody()))
	return b.String()
}

// renderBody renders the stats line and the table, or an empty message.
func (m ReportModel) renderBody() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	if m.loadErr != nil {
		return muted.Render("cannot read simulation records: " + m.loadErr.Error())
	}
	if len(m.records) == 0 {
		return muted.Padding(2, 4).Render("No simulations recorded yet.\nRun `pong sim` to create some.")
	}
	return muted.Render(StatsLine(m.stats)) + "\n\n" + m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReportModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReportModel) IsQuitting() bool {
	return m.quitting
}

// RunReport runs the report screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunReport(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewReportModel(store, width, height, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReportModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
