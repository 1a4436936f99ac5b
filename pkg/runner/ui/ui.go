// Package ui hosts the Bubble Tea dashboard for the planner. It is a pure
// view over the app service: every mutation still goes through the same
// load-mutate-save path the CLI verbs use, and the watch subscription keeps
// the screen current when the store changes underneath it.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/metrics"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/store"
)

type tab int

const (
	tabDashboard tab = iota
	tabTasks
	tabSchedule
	tabAnalytics
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabDashboard:
		return "Dashboard"
	case tabTasks:
		return "Tasks"
	case tabSchedule:
		return "Schedule"
	case tabAnalytics:
		return "Analytics"
	}
	return "?"
}

type stateMsg struct {
	state *planner.State
	err   error
}

type storeChangedMsg struct{}

// Model is the Bubble Tea model for the planner dashboard.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	events <-chan store.Event

	state *planner.State
	tab   tab
	theme string
	err   error
}

// New builds the dashboard model. The theme preference is read from the
// store; empty means light.
func New(ctx context.Context, svc *app.Service) (*Model, error) {
	if svc == nil {
		return nil, errors.New("ui: no service")
	}
	theme, err := svc.Theme(ctx)
	if err != nil {
		return nil, err
	}
	events, err := svc.Watch(ctx)
	if err != nil {
		return nil, err
	}
	return &Model{svc: svc, ctx: ctx, events: events, theme: theme}, nil
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	m, err := New(ctx, svc)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadState, m.waitForChange)
}

func (m *Model) loadState() tea.Msg {
	st, err := m.svc.State(m.ctx)
	return stateMsg{state: st, err: err}
}

func (m *Model) waitForChange() tea.Msg {
	if _, ok := <-m.events; !ok {
		return nil
	}
	return storeChangedMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state, m.err = msg.state, msg.err
		return m, nil
	case storeChangedMsg:
		return m, tea.Batch(m.loadState, m.waitForChange)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
		case "r":
			return m, m.loadState
		case "t":
			if m.theme == "dark" {
				m.theme = "light"
			} else {
				m.theme = "dark"
			}
			theme := m.theme
			svc, ctx := m.svc, m.ctx
			return m, func() tea.Msg {
				_ = svc.SetTheme(ctx, theme)
				return nil
			}
		}
	}
	return m, nil
}

type styles struct {
	title    lipgloss.Style
	tab      lipgloss.Style
	tabFocus lipgloss.Style
	faint    lipgloss.Style
	overdue  lipgloss.Style
	done     lipgloss.Style
	body     lipgloss.Style
}

func (m *Model) styles() styles {
	accent := lipgloss.Color("63")
	dim := lipgloss.Color("240")
	if m.theme == "dark" {
		accent = lipgloss.Color("212")
		dim = lipgloss.Color("245")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab:      lipgloss.NewStyle().Foreground(dim).Padding(0, 1),
		tabFocus: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		faint:    lipgloss.NewStyle().Foreground(dim),
		overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		done:     lipgloss.NewStyle().Strikethrough(true).Foreground(dim),
		body:     lipgloss.NewStyle().Padding(1, 2),
	}
}

func (m *Model) View() string {
	ss := m.styles()
	if m.err != nil {
		return ss.body.Render(ss.overdue.Render(fmt.Sprintf("error: %v", m.err)))
	}
	if m.state == nil {
		return ss.body.Render(ss.faint.Render("loading…"))
	}

	var tabs []string
	for t := tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, ss.tabFocus.Render(t.title()))
		} else {
			tabs = append(tabs, ss.tab.Render(t.title()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.viewDashboard(ss)
	case tabTasks:
		body = m.viewTasks(ss)
	case tabSchedule:
		body = m.viewSchedule(ss)
	case tabAnalytics:
		body = m.viewAnalytics(ss)
	}

	footer := ss.faint.Render("tab: switch • t: theme • r: refresh • q: quit")
	return ss.body.Render(header + "\n\n" + body + "\n\n" + footer)
}

func (m *Model) viewDashboard(ss styles) string {
	st := m.state
	sum := metrics.Summarize(st.Subjects, st.Tasks)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s %d  %s %d  %s %d%%\n\n",
		ss.title.Render("Subjects:"), sum.SubjectCount,
		ss.title.Render("Pending:"), sum.PendingCount,
		ss.title.Render("Completed:"), sum.CompletedCount,
		ss.title.Render("Completion:"), sum.CompletionPercent)

	b.WriteString(ss.title.Render("Upcoming deadlines") + "\n")
	upcoming := metrics.UpcomingDeadlines(st.Tasks, 3)
	if len(upcoming) == 0 {
		b.WriteString(ss.faint.Render("  none"))
	}
	for _, t := range upcoming {
		fmt.Fprintf(&b, "  %s  %s  due %s\n",
			t.Title, ss.faint.Render(planner.SubjectName(st.Subjects, t.SubjectID)), t.Deadline)
	}
	return b.String()
}

func (m *Model) viewTasks(ss styles) string {
	st := m.state
	if len(st.Tasks) == 0 {
		return ss.faint.Render("no tasks")
	}
	now := time.Now()
	var b strings.Builder
	for _, t := range st.Tasks {
		line := fmt.Sprintf("• %s  %s  due %s",
			t.Title, planner.SubjectName(st.Subjects, t.SubjectID), t.Deadline)
		switch {
		case t.Completed:
			line = ss.done.Render("✔ " + t.Title)
		case metrics.Overdue(t, now):
			line = ss.overdue.Render(line + " (overdue)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) viewSchedule(ss styles) string {
	st := m.state
	if len(st.Schedules) == 0 {
		return ss.faint.Render("no schedule slots")
	}
	var b strings.Builder
	for _, day := range planner.Weekdays() {
		first := true
		for _, s := range st.Schedules {
			if s.Day != day {
				continue
			}
			if first {
				b.WriteString(ss.title.Render(string(day)) + "\n")
				first = false
			}
			fmt.Fprintf(&b, "  %s - %s  %s\n", s.Start, s.End,
				planner.SubjectName(st.Subjects, s.SubjectID))
		}
		if !first {
			hours := float64(metrics.DayMinutes(st.Schedules, day)) / 60
			b.WriteString(ss.faint.Render(fmt.Sprintf("  total %.2f hrs", hours)) + "\n")
		}
	}
	return b.String()
}

func (m *Model) viewAnalytics(ss styles) string {
	st := m.state
	now := time.Now()
	sum := metrics.Summarize(st.Subjects, st.Tasks)
	overdue := metrics.OverdueCount(st.Tasks, now)
	stats, best := metrics.SubjectBreakdown(st.Subjects, st.Tasks)
	hours := metrics.WeeklyHours(st.Schedules)
	score := metrics.ProductivityScore(sum.CompletionPercent, hours, overdue)

	var b strings.Builder
	fmt.Fprintf(&b, "%d out of %d tasks completed\n",
		sum.CompletedCount, sum.CompletedCount+sum.PendingCount)
	if overdue > 0 {
		b.WriteString(ss.overdue.Render(fmt.Sprintf("%d overdue tasks", overdue)) + "\n\n")
	} else {
		b.WriteString("0 overdue tasks\n\n")
	}
	for _, s := range stats {
		fmt.Fprintf(&b, "%s %d%%\n", s.Subject.Name, s.CompletionPercent)
	}
	fmt.Fprintf(&b, "\n%s %s\n", ss.title.Render("Best subject:"), best)
	fmt.Fprintf(&b, "%s %.2f hours planned this week\n", ss.title.Render("Weekly hours:"), hours)
	fmt.Fprintf(&b, "%s %d / 100\n", ss.title.Render("Productivity:"), score)
	return b.String()
}
