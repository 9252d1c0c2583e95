package cli

import (
	"context"
	"strings"
	"time"

	studyapp "github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type weekKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Quit  key.Binding
}

var weekKeys = weekKeyMap{
	Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous week")),
	Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next week")),
	Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k weekKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Quit}
}

// weekLoadedMsg carries one week of the stored plan.
type weekLoadedMsg struct {
	week *studyapp.WeekResponse
	err  error
}

// weekView pages through the stored plan one Monday-to-Sunday week at a time.
type weekView struct {
	ctx     context.Context
	app     *App
	start   time.Time
	week    *studyapp.WeekResponse
	loading bool
	err     error
}

func newWeekView(ctx context.Context, app *App) *weekView {
	return &weekView{ctx: ctx, app: app, start: app.now(), loading: true}
}

func (v *weekView) Init() tea.Cmd {
	return v.load()
}

func (v *weekView) load() tea.Cmd {
	a, start, ctx := v.app, v.start, v.ctx
	return func() tea.Msg {
		week, err := a.Plans.Week(ctx, studyapp.WeekRequest{UserID: a.User, Start: start})
		return weekLoadedMsg{week: week, err: err}
	}
}

func (v *weekView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		v.loading = false
		v.week, v.err = msg.week, msg.err
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, weekKeys.Quit):
			return v, tea.Quit
		case key.Matches(msg, weekKeys.Prev):
			return v, v.shift(-7)
		case key.Matches(msg, weekKeys.Next):
			return v, v.shift(7)
		case key.Matches(msg, weekKeys.Today):
			v.start = v.app.now()
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *weekView) shift(days int) tea.Cmd {
	v.start = v.start.AddDate(0, 0, days)
	v.loading = true
	return v.load()
}

func (v *weekView) View() string {
	var b strings.Builder
	switch {
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case v.loading || v.week == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	default:
		b.WriteString(formatter.FormatWeek(v.week))
	}

	help := make([]string, 0, 4)
	for _, k := range weekKeys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n" + formatter.Dim(strings.Join(help, " • ")) + "\n")
	return b.String()
}
