package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/game-manager/internal/app"
	"github.com/handiism/game-manager/internal/audio"
)

// PressAnyKey is shown under every result.
const PressAnyKey = "Press any key to go back..."

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateForm
	StateBusy
	StateResult
	StateGoodbye
)

// CuePlayer plays feedback sounds. *audio.Cues implements it.
type CuePlayer interface {
	Play(ctx context.Context, cue audio.Cue)
}

// Options wires the TUI to the rest of the program.
type Options struct {
	Service *app.Service

	// Cues and Music are optional.
	Cues  CuePlayer
	Music *audio.Session

	// PauseAfterAction keeps each result on screen until a key is pressed.
	// When false the result is shown under the menu instead.
	PauseAfterAction bool
}

type menuItem struct {
	command app.Command
}

func (i menuItem) Title() string       { return fmt.Sprintf("%d. %s", int(i.command), i.command.Title()) }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.command.Title() }

type field struct {
	label string
	input textinput.Model
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctx   context.Context
	opts  Options
	state State

	menu    list.Model
	spinner spinner.Model
	command app.Command
	fields  []field
	focus   int

	notice      string
	noticeStyle lipgloss.Style

	result app.Result
	recent bool

	width int
}

// resultMsg carries the outcome of a command run in the background.
type resultMsg struct {
	result app.Result
}

// NewModel creates a new TUI model showing the menu.
func NewModel(ctx context.Context, opts Options) Model {
	items := make([]list.Item, 0, len(app.Commands()))
	for _, c := range app.Commands() {
		items = append(items, menuItem{command: c})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	menu := list.New(items, delegate, 40, len(items)+2)
	menu.SetShowTitle(false)
	menu.SetShowStatusBar(false)
	menu.SetShowHelp(false)
	menu.SetShowPagination(false)
	menu.SetFilteringEnabled(false)
	menu.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		ctx:     ctx,
		opts:    opts,
		state:   StateMenu,
		menu:    menu,
		spinner: sp,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Result returns the last command result.
func (m Model) Result() app.Result {
	return m.result
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetWidth(msg.Width)
		return m, nil

	case resultMsg:
		return m.showResult(msg.result)

	case spinner.TickMsg:
		if m.state != StateBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateResult:
			return m.backToMenu()
		}
		return m, nil
	}

	// Cursor blink and similar messages belong to the focused input.
	if m.state == StateForm {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyHome, tea.KeyEnd, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case tea.KeyEnter:
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.choose(item.command)

	case tea.KeyRunes:
		command, err := app.ParseMenuChoice(string(msg.Runes))
		switch {
		case errors.Is(err, app.ErrNotANumber):
			return m.warn(app.MsgWrongKey)
		case err != nil:
			return m.warn(app.MsgOutOfRange)
		}
		m.menu.Select(int(command) - 1)
		return m.choose(command)
	}

	return m.warn(app.MsgWrongKey)
}

func (m Model) warn(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeStyle = warningStyle
	m.recent = false
	return m, m.playCue(audio.CueMessage)
}

func (m Model) choose(command app.Command) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.recent = false
	m.command = command

	switch command {
	case app.CommandAdd, app.CommandRemove:
		m.state = StateForm
		m.fields = newFields(command)
		m.focus = 0
		return m, tea.Batch(m.playCue(audio.CueSelect), m.fields[0].input.Focus())

	case app.CommandExit:
		m.result = m.opts.Service.Execute(app.Request{Command: command})
		m.state = StateGoodbye
		return m, tea.Quit

	default:
		m.state = StateBusy
		return m, tea.Batch(m.playCue(audio.CueSelect), m.execute(app.Request{Command: command}), m.spinner.Tick)
	}
}

func newFields(command app.Command) []field {
	labels := []string{"Name"}
	if command == app.CommandAdd {
		labels = []string{"Name", "Genre", "Price"}
	}

	fields := make([]field, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Width = 40
		if label == "Price" {
			ti.Placeholder = "9.99"
		}
		fields[i] = field{label: label, input: ti}
	}
	return fields
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.fields = nil
		m.state = StateMenu
		return m, m.playCue(audio.CueBack)

	case tea.KeyEnter:
		if m.focus < len(m.fields)-1 {
			m.fields[m.focus].input.Blur()
			m.focus++
			return m, m.fields[m.focus].input.Focus()
		}
		req := m.request()
		m.state = StateBusy
		return m, tea.Batch(m.execute(req), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// request builds the command request from the form. Values are taken as
// typed; names match exactly.
func (m Model) request() app.Request {
	req := app.Request{Command: m.command}
	for _, f := range m.fields {
		switch f.label {
		case "Name":
			req.Name = f.input.Value()
		case "Genre":
			req.Genre = f.input.Value()
		case "Price":
			req.Price = f.input.Value()
		}
	}
	return req
}

func (m Model) execute(req app.Request) tea.Cmd {
	svc := m.opts.Service
	return func() tea.Msg {
		return resultMsg{result: svc.Execute(req)}
	}
}

func (m Model) showResult(res app.Result) (tea.Model, tea.Cmd) {
	m.result = res
	m.fields = nil

	if m.opts.PauseAfterAction {
		m.state = StateResult
		return m, nil
	}
	m.state = StateMenu
	m.recent = true
	return m, nil
}

func (m Model) backToMenu() (tea.Model, tea.Cmd) {
	m.state = StateMenu
	m.recent = false
	return m, m.playCue(audio.CueBack)
}

func (m Model) playCue(cue audio.Cue) tea.Cmd {
	cues := m.opts.Cues
	if cues == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		cues.Play(ctx, cue)
		return nil
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎮 Game Manager"))
	b.WriteString("\n")
	if st := m.opts.Service.Store(); st != nil {
		b.WriteString(dimStyle.Render("Catalog: " + st.Path()))
		b.WriteString("\n")
	}
	if m.opts.Music != nil {
		if track, ok := m.opts.Music.NowPlaying(); ok {
			b.WriteString(musicStyle.Render("♪ " + track.String()))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateForm:
		b.WriteString(m.viewForm())
	case StateBusy:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Working..."))
		b.WriteString("\n")
	case StateResult:
		b.WriteString(renderResult(m.result))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(PressAnyKey))
		b.WriteString("\n")
	case StateGoodbye:
		b.WriteString(boxStyle.Render(m.result.Message))
		b.WriteString("\n")
	}

	if help := m.helpText(); help != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(help))
	}

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Choose an option:"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.recent {
		b.WriteString("\n")
		b.WriteString(renderResult(m.result))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.command.Title()))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		label := f.label + ":"
		if i == m.focus {
			label = infoStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateMenu:
		return "1-6: choose • ↑/↓ + enter: choose • ctrl+c: quit"
	case StateForm:
		return "enter: next • esc: back"
	}
	return ""
}

// Run starts the TUI and blocks until the user leaves it. The farewell is
// printed to stdout after the screen is restored.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && m.state == StateGoodbye {
		fmt.Println(m.result.Message)
	}
	return nil
}
