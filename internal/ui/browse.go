package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"matugenium/internal/models"
	"matugenium/internal/profile"
	"matugenium/internal/state"
)

type browseScreen int

const (
	screenList browseScreen = iota
	screenPreview
)

// actionDoneMsg reports a finished generate/remove action.
type actionDoneMsg struct {
	status string
}

// BrowseModel is the interactive registry browser: a filterable app
// list with per-app profile status, palette preview, and generate /
// remove actions.
type BrowseModel struct {
	gen  *profile.Generator
	apps []models.AppEntry

	visible   []int // indices into apps after filtering
	cursor    int
	screen    browseScreen
	filter    textinput.Model
	filtering bool

	viewport viewport.Model
	spin     spinner.Model
	busy     bool
	status   string
	force    bool

	keys KeyMap
	help help.Model
	hl   *Highlighter

	profiles map[string]state.ProfileRecord
	width    int
	height   int
}

// NewBrowse creates the browse model over a discovered app list.
func NewBrowse(gen *profile.Generator, apps []models.AppEntry) BrowseModel {
	filter := textinput.New()
	filter.Placeholder = "type to filter..."
	filter.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(Primary)

	m := BrowseModel{
		gen:      gen,
		apps:     apps,
		filter:   filter,
		viewport: viewport.New(80, 20),
		spin:     spin,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		hl:       NewHighlighter(),
	}
	m.refreshProfiles()
	m.applyFilter()
	return m
}

// RunBrowse starts the browse TUI and blocks until the user quits.
func RunBrowse(gen *profile.Generator, apps []models.AppEntry) error {
	_, err := tea.NewProgram(NewBrowse(gen, apps), tea.WithAltScreen()).Run()
	return err
}

func (m *BrowseModel) refreshProfiles() {
	m.profiles = m.gen.Store.AllProfiles()
}

func (m *BrowseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, app := range m.apps {
		if query == "" ||
			strings.Contains(strings.ToLower(app.Name), query) ||
			strings.Contains(strings.ToLower(app.DesktopID), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m BrowseModel) selected() (models.AppEntry, bool) {
	if len(m.visible) == 0 {
		return models.AppEntry{}, false
	}
	return m.apps[m.visible[m.cursor]], true
}

func (m BrowseModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case actionDoneMsg:
		m.busy = false
		m.status = msg.status
		m.refreshProfiles()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch {
		case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}
		return m, nil
	}

	if m.screen == screenPreview {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
			m.screen = screenList
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Force):
		m.force = !m.force
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Generate):
		if app, ok := m.selected(); ok && !m.busy {
			m.busy = true
			m.status = "generating " + app.Name + "..."
			return m, tea.Batch(m.spin.Tick, m.generateCmd(app))
		}
	case key.Matches(msg, m.keys.Remove):
		if app, ok := m.selected(); ok && !m.busy {
			m.busy = true
			m.status = "removing " + app.Name + "..."
			return m, tea.Batch(m.spin.Tick, m.removeCmd(app))
		}
	case key.Matches(msg, m.keys.Preview):
		if app, ok := m.selected(); ok {
			m.openPreview(app)
		}
	}
	return m, nil
}

func (m BrowseModel) generateCmd(app models.AppEntry) tea.Cmd {
	force := m.force
	return func() tea.Msg {
		result, err := m.gen.Generate(app, force)
		if err != nil {
			return actionDoneMsg{status: "generate failed: " + err.Error()}
		}
		if result.Outcome == profile.OutcomeSkipped {
			return actionDoneMsg{status: app.Name + " already has a profile (f to force)"}
		}
		return actionDoneMsg{status: "generated " + app.Name + " -> " + result.OutputDir}
	}
}

func (m BrowseModel) removeCmd(app models.AppEntry) tea.Cmd {
	return func() tea.Msg {
		result, err := m.gen.Remove(app.Name, m.apps, false)
		if err != nil {
			return actionDoneMsg{status: "remove failed: " + err.Error()}
		}
		if result.Outcome == profile.OutcomeNotTracked {
			return actionDoneMsg{status: app.Name + " has no profile"}
		}
		return actionDoneMsg{status: "removed profile for " + app.Name}
	}
}

func (m *BrowseModel) openPreview(app models.AppEntry) {
	key := profile.Key(app)
	record, ok := m.profiles[key]
	if !ok {
		m.status = app.Name + " has no profile to preview"
		return
	}

	data, err := os.ReadFile(filepath.Join(record.OutputDir, "colors.json"))
	if err != nil {
		m.status = "no palette file: " + err.Error()
		return
	}
	m.viewport.SetContent(m.hl.HighlightJSON(string(data)))
	m.viewport.GotoTop()
	m.screen = screenPreview
}

func (m BrowseModel) View() string {
	if m.screen == screenPreview {
		return m.previewView()
	}
	return m.listView()
}

func (m BrowseModel) listView() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("matugenium — application palettes"))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(ItemStyle.Render(m.filter.View()))
		b.WriteString("\n")
	}

	listHeight := m.height - 7
	if listHeight < 5 {
		listHeight = 15
	}
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(len(m.visible), start+listHeight)

	for i := start; i < end; i++ {
		app := m.apps[m.visible[i]]
		badge := UntrackedBadge
		if _, tracked := m.profiles[profile.Key(app)]; tracked {
			badge = TrackedBadge
		}
		line := fmt.Sprintf("%s %s (%s)", badge, app.Name, app.DesktopID)
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render(line))
		} else {
			b.WriteString(ItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(ItemStyle.Render("no applications match"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m BrowseModel) statusLine() string {
	parts := []string{fmt.Sprintf("%d apps, %d tracked", len(m.visible), len(m.profiles))}
	if m.force {
		parts = append(parts, "force on")
	}
	if m.busy {
		parts = append(parts, m.spin.View()+m.status)
	} else if m.status != "" {
		parts = append(parts, m.status)
	}
	return StatusBarStyle.Render(strings.Join(parts, " · "))
}

func (m BrowseModel) previewView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("palette preview"))
	b.WriteString("\n")
	b.WriteString(PanelStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Render("esc to go back"))
	return b.String()
}
