package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/alexanderramin/swapplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// presetsLoadedMsg carries a search result for the filter it was run with.
type presetsLoadedMsg struct {
	filter  string
	presets []contract.PresetView
	err     error
}

var presetBrowserKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "plan")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
}

// presetBrowser is a filterable preset list. Typing narrows the list and
// Enter picks the highlighted preset.
type presetBrowser struct {
	ctx     context.Context
	catalog service.CatalogService

	input   textinput.Model
	presets []contract.PresetView
	cursor  int
	loading bool
	err     error

	chosen *contract.PresetView
}

func newPresetBrowser(ctx context.Context, catalog service.CatalogService, filter string) *presetBrowser {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter presets"
	ti.CharLimit = 100
	ti.SetValue(filter)
	ti.Focus()

	return &presetBrowser{
		ctx:     ctx,
		catalog: catalog,
		input:   ti,
		loading: true,
	}
}

// Chosen returns the preset picked with Enter, or nil if the browser was
// dismissed.
func (b *presetBrowser) Chosen() *contract.PresetView {
	return b.chosen
}

func (b *presetBrowser) Init() tea.Cmd {
	return b.search(b.input.Value())
}

func (b *presetBrowser) search(filter string) tea.Cmd {
	ctx, catalog := b.ctx, b.catalog
	return func() tea.Msg {
		presets, err := catalog.SearchPresets(ctx, filter)
		return presetsLoadedMsg{filter: filter, presets: presets, err: err}
	}
}

func (b *presetBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case presetsLoadedMsg:
		if msg.filter != b.input.Value() {
			return b, nil
		}
		b.loading = false
		b.err = msg.err
		b.presets = msg.presets
		if b.cursor >= len(b.presets) {
			b.cursor = max(len(b.presets)-1, 0)
		}
		return b, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return b, tea.Quit
		case tea.KeyEnter:
			if b.cursor < len(b.presets) {
				p := b.presets[b.cursor]
				b.chosen = &p
				return b, tea.Quit
			}
			return b, nil
		case tea.KeyUp:
			if b.cursor > 0 {
				b.cursor--
			}
			return b, nil
		case tea.KeyDown:
			if b.cursor < len(b.presets)-1 {
				b.cursor++
			}
			return b, nil
		}

		before := b.input.Value()
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		if after := b.input.Value(); after != before {
			b.cursor = 0
			b.loading = true
			return b, tea.Batch(cmd, b.search(after))
		}
		return b, cmd
	}
	return b, nil
}

func (b *presetBrowser) View() string {
	var s strings.Builder
	s.WriteString(formatter.Header("Presets") + "\n\n")
	s.WriteString("  " + b.input.View() + "\n\n")

	switch {
	case b.err != nil:
		s.WriteString("  " + formatter.StyleRed.Render("Error: "+b.err.Error()) + "\n")
	case b.loading && len(b.presets) == 0:
		s.WriteString("  " + formatter.Dim("Loading presets...") + "\n")
	case len(b.presets) == 0:
		s.WriteString("  " + formatter.Dim("No presets match.") + "\n")
	default:
		for i, p := range b.presets {
			cursor := "  "
			title := formatter.StyleFg.Render(p.Title)
			if i == b.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				title = formatter.StyleBold.Render(p.Title)
			}
			s.WriteString(fmt.Sprintf("%s%s %s  %s\n",
				cursor,
				formatter.Dim(fmt.Sprintf("#%d", p.Index)),
				title,
				formatter.UseBadge(p.Use),
			))
			s.WriteString("     " + formatter.Dim(p.Chassis+" · "+p.Engine+" · "+p.Transmission) + "\n")
		}
	}

	help := make([]string, len(presetBrowserKeys))
	for i, k := range presetBrowserKeys {
		h := k.Help()
		help[i] = h.Key + " " + h.Desc
	}
	s.WriteString("\n" + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return s.String()
}
