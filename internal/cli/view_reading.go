package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// readingSpec selects what the reading view asks for: one fixed topic,
// or a hexagram casting.
type readingSpec struct {
	topic  string
	divine bool
}

// readingLoadedMsg carries the rendered reading (or the quota notice).
// entries is the extended session history when the reading was kept.
type readingLoadedMsg struct {
	content string
	entries []intelligence.HistoryEntry
	err     error
}

// readingView requests one reading and renders it in a scrollable
// viewport. Generation can take seconds against a live model, so the
// view spins until the response lands.
type readingView struct {
	state   *sessionState
	spec    readingSpec
	loading bool
	err     error
	content string
	spinner spinner.Model
	vp      viewport.Model
}

func newReadingView(state *sessionState, spec readingSpec) *readingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &readingView{
		state:   state,
		spec:    spec,
		loading: true,
		spinner: sp,
		vp:      viewport.New(state.Width, state.ContentHeight()),
	}
}

func (v *readingView) ID() ViewID { return ViewReading }

func (v *readingView) Title() string {
	if v.spec.divine {
		return divineEntry
	}
	return v.spec.topic
}

func (v *readingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("↑↓"), key.WithHelp("↑↓", "滚动")),
	}
}

func (v *readingView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.loadReading())
}

func (v *readingView) loadReading() tea.Cmd {
	if v.spec.divine {
		return v.loadDivination()
	}
	return v.loadTopicReading()
}

func (v *readingView) loadTopicReading() tea.Cmd {
	app := v.state.App
	profile := v.state.Profile
	chartResp := v.state.ChartResp
	history := v.state.History
	topic := v.spec.topic
	return func() tea.Msg {
		ctx := context.Background()
		req := intelligence.AnalysisRequest{
			Context: readingContext(profile, chartResp, time.Now()),
			History: history,
			First:   len(history) == 0,
		}
		reading, err := app.Analysis.TopicReading(ctx, req, topic)
		if err != nil {
			return readingLoadedMsg{err: err}
		}

		content := "\n" + formatter.CleanMarkdown(reading.Text) + "\n" +
			formatter.SourceNote(contract.ReadingView{
				Text: reading.Text, Model: reading.Model, Source: reading.Source,
			}) + "\n"

		if reading.Source == "refused" {
			return readingLoadedMsg{content: content}
		}

		// The session keeps every reading: conversation memory for the
		// follow-up prompts, and a durable record for tianji reading.
		entries := append(history, intelligence.HistoryEntry{Topic: topic, Response: reading.Text})
		if err := app.Profiles.SaveHistory(ctx, profile.ID, entries); err != nil {
			return readingLoadedMsg{err: err}
		}
		r := &domain.Reading{
			ProfileID: profile.ID,
			Kind:      domain.ReadingAnalysis,
			Topic:     topic,
			Content:   reading.Text,
			Model:     reading.Model,
		}
		if err := app.Readings.Record(ctx, r); err != nil {
			return readingLoadedMsg{err: err}
		}
		return readingLoadedMsg{content: content, entries: entries}
	}
}

func (v *readingView) loadDivination() tea.Cmd {
	app := v.state.App
	profileID := v.state.Profile.ID
	return func() tea.Msg {
		ctx := context.Background()
		resp, err := app.Divination.Divine(ctx, contract.DivineRequest{ProfileID: profileID})
		if err != nil {
			var derr *contract.DivineError
			if errors.As(err, &derr) && derr.Code == contract.DivineErrQuotaExhausted {
				return readingLoadedMsg{content: "\n  " + formatter.Dim(derr.Message) + "\n"}
			}
			return readingLoadedMsg{err: err}
		}
		return readingLoadedMsg{content: formatter.FormatDivination(*resp)}
	}
}

func (v *readingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readingLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.content = msg.content
		if msg.entries != nil {
			v.state.History = msg.entries
		}
		v.resize()
		return v, nil

	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *readingView) View() string {
	if v.loading {
		return "\n  " + v.spinner.View() + formatter.Dim("天机推演中...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}

// resize fits the viewport to the current terminal.
func (v *readingView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	if v.content != "" {
		v.vp.SetContent(v.content)
	}
}
