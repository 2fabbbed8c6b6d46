package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chartLoadedMsg carries the derived chart plus the profile's saved
// session history in one load.
type chartLoadedMsg struct {
	resp    *contract.ChartResponse
	persona *intelligence.PersonaCard
	history []intelligence.HistoryEntry
	err     error
}

// chartView renders the active profile's four pillars inside a
// scrollable viewport. The chart is tall; the viewport keeps the
// header and status bar fixed.
type chartView struct {
	state   *sessionState
	loading bool
	err     error
	content string
	vp      viewport.Model
}

func newChartView(state *sessionState) *chartView {
	return &chartView{
		state:   state,
		loading: true,
		vp:      viewport.New(state.Width, state.ContentHeight()),
	}
}

func (v *chartView) ID() ViewID    { return ViewChart }
func (v *chartView) Title() string { return "命盘" }

func (v *chartView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "问事")),
		key.NewBinding(key.WithKeys("↑↓"), key.WithHelp("↑↓", "滚动")),
	}
}

func (v *chartView) Init() tea.Cmd {
	if v.state.ChartResp != nil {
		// Back navigation: the chart is already derived.
		v.loading = false
		v.setContent()
		return nil
	}
	return v.loadChart()
}

func (v *chartView) loadChart() tea.Cmd {
	app := v.state.App
	profile := v.state.Profile
	return func() tea.Msg {
		ctx := context.Background()
		resp, err := app.Charts.Compute(ctx, contract.NewChartRequest(contract.BirthFromProfile(profile)))
		if err != nil {
			return chartLoadedMsg{err: err}
		}
		history, err := app.Profiles.History(ctx, profile.ID)
		if err != nil {
			return chartLoadedMsg{err: err}
		}
		card, err := app.Persona.Card(ctx, readingContext(profile, resp, time.Now()))
		if err != nil {
			return chartLoadedMsg{err: err}
		}
		return chartLoadedMsg{resp: resp, persona: card, history: history}
	}
}

func (v *chartView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chartLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.state.ChartResp = msg.resp
		v.state.Persona = msg.persona
		v.state.History = msg.history
		v.setContent()
		return v, nil

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && v.state.ChartResp != nil {
			return v, pushView(newTopicMenuView(v.state))
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *chartView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("推演四柱...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}

// setContent renders the chart (and persona card, when present) into
// the viewport.
func (v *chartView) setContent() {
	content := formatter.FormatChart(*v.state.ChartResp)
	if v.state.Persona != nil {
		content += "\n" + formatter.FormatPersona(*v.state.Persona)
	}
	v.content = content
	v.resize()
}

// resize fits the viewport to the current terminal.
func (v *chartView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	if v.content != "" {
		v.vp.SetContent(v.content)
	}
}
