package cli

import (
	"context"
	"strings"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// monthLoadedMsg carries the result of a calendar query.
type monthLoadedMsg struct {
	resp *jukuapp.CalendarResponse
	err  error
}

type monthKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Nearest key.Binding
	Quit    key.Binding
}

func (k monthKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Nearest, k.Quit}
}

func (k monthKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMonthKeys() monthKeyMap {
	return monthKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Nearest: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "nearest upcoming")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// monthBrowser pages through a student's calendar one month at a time.
// It opens on the nearest month with an upcoming date.
type monthBrowser struct {
	ctx       context.Context
	app       *App
	viewer    *domain.User
	studentID int64

	// month is nil while showing the nearest upcoming month.
	month   *calendar.YearMonth
	resp    *jukuapp.CalendarResponse
	loading bool
	err     error

	keys monthKeyMap
	help help.Model
}

func newMonthBrowser(ctx context.Context, app *App, viewer *domain.User, studentID int64) *monthBrowser {
	return &monthBrowser{
		ctx:       ctx,
		app:       app,
		viewer:    viewer,
		studentID: studentID,
		loading:   true,
		keys:      defaultMonthKeys(),
		help:      help.New(),
	}
}

func (m *monthBrowser) Init() tea.Cmd {
	return m.load()
}

func (m *monthBrowser) load() tea.Cmd {
	app, ctx := m.app, m.ctx
	today := app.today()
	req := jukuapp.CalendarRequest{
		StudentID: m.studentID,
		Viewer:    m.viewer,
		Month:     m.month,
		Today:     &today,
	}
	return func() tea.Msg {
		resp, err := app.Calendar.GetMonth(ctx, req)
		return monthLoadedMsg{resp: resp, err: err}
	}
}

// shown is the month currently on screen.
func (m *monthBrowser) shown() calendar.YearMonth {
	if m.resp != nil {
		return m.resp.Month.YearMonth
	}
	return calendar.MonthOf(m.app.today())
}

func (m *monthBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			ym := m.shown().Prev()
			m.month = &ym
		case key.Matches(msg, m.keys.Next):
			ym := m.shown().Next()
			m.month = &ym
		case key.Matches(msg, m.keys.Nearest):
			m.month = nil
		default:
			return m, nil
		}
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m *monthBrowser) View() string {
	var b strings.Builder
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.resp == nil:
		b.WriteString(formatter.Dim("Loading…"))
		b.WriteString("\n")
	default:
		b.WriteString(formatCalendarResponse(m.resp, m.app.today()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
