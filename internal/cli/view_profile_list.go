package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// profilesLoadedMsg signals that profile list data has been loaded.
type profilesLoadedMsg struct {
	profiles []*domain.Profile
	err      error
}

// profileListView shows an interactive, navigable list of stored profiles.
type profileListView struct {
	state    *sessionState
	profiles []*domain.Profile
	cursor   int
	loading  bool
	err      error
}

func newProfileListView(state *sessionState) *profileListView {
	return &profileListView{
		state:   state,
		loading: true,
	}
}

func (v *profileListView) ID() ViewID    { return ViewProfileList }
func (v *profileListView) Title() string { return "档案" }

func (v *profileListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "排盘")),
	}
}

func (v *profileListView) Init() tea.Cmd {
	return v.loadProfiles()
}

func (v *profileListView) loadProfiles() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		profiles, err := app.Profiles.List(ctx)
		return profilesLoadedMsg{profiles: profiles, err: err}
	}
}

func (v *profileListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.profiles = msg.profiles
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.profiles)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.profiles) {
				v.state.SetActiveProfile(v.profiles[v.cursor])
				return v, pushView(newChartView(v.state))
			}
		}
	}
	return v, nil
}

func (v *profileListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("读取档案...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.profiles) == 0 {
		b.WriteString("  " + formatter.Dim("暂无档案。退出后用 tianji profile add 建一个。") + "\n")
		return b.String()
	}

	for i, p := range v.profiles {
		cursor := "  "
		idStyle := formatter.StyleGreen
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			idStyle = formatter.StyleBold
		}

		city := formatter.Dim("—")
		if p.City != "" {
			city = formatter.Dim(p.City)
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s %s  %s\n",
			cursor,
			idStyle.Render(padRight(p.ID, 14)),
			formatter.GenderBadge(p.Gender),
			p.BirthDateLabel(),
			p.BirthHour,
			city,
		))
	}

	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}
