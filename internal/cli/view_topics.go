package cli

import (
	"strings"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// divineEntry is the menu row that casts a hexagram instead of reading
// a fixed topic.
const divineEntry = "周易起卦"

// topicMenuView lists the reading topics for the active profile.
type topicMenuView struct {
	state   *sessionState
	entries []string
	cursor  int
}

func newTopicMenuView(state *sessionState) *topicMenuView {
	entries := append(intelligence.Topics(), divineEntry)
	return &topicMenuView{
		state:   state,
		entries: entries,
	}
}

func (v *topicMenuView) ID() ViewID    { return ViewTopicMenu }
func (v *topicMenuView) Title() string { return "问事" }

func (v *topicMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "请教")),
	}
}

func (v *topicMenuView) Init() tea.Cmd { return nil }

func (v *topicMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
		case "enter":
			entry := v.entries[v.cursor]
			if entry == divineEntry {
				return v, pushView(newReadingView(v.state, readingSpec{divine: true}))
			}
			return v, pushView(newReadingView(v.state, readingSpec{topic: entry}))
		}
	}
	return v, nil
}

func (v *topicMenuView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range v.entries {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		if entry == divineEntry {
			b.WriteString("  " + formatter.Dim(strings.Repeat("─", 16)) + "\n")
			if i == v.cursor {
				b.WriteString(cursor + formatter.StyleYellow.Bold(true).Render(entry) + "\n")
			} else {
				b.WriteString(cursor + formatter.StyleYellow.Render(entry) + "\n")
			}
			continue
		}
		b.WriteString(cursor + style.Render(entry) + "\n")
	}

	return b.String()
}
