package main

import (
	"fmt"
	"strings"
	"time"

	"dropdown/internal/config"
	"dropdown/internal/debug"
	"dropdown/internal/dropdown"
	"dropdown/internal/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	anchorX      = 2
	topAnchorY   = 3
	maxEventLog  = 8
	statusTTL    = 3 * time.Second
	defaultWidth = 80
	defaultRows  = 24
)

type statusExpiredMsg struct{ seq int }

type model struct {
	dd     *dropdown.Dropdown
	screen *dropdown.Screen
	width  int
	height int

	keyboardHeight int
	keyboardShown  bool
	anchorAtBottom bool

	events    []string
	keys      help.Model
	showHelp  bool
	help      string
	status    string
	statusSeq int

	// Replaced in tests so they never touch the real clipboard or config.
	copy      func(string) error
	saveTheme func(string) error
}

func newModel(cfg dropdown.Config, items []dropdown.Item, keyboardHeight int) *model {
	if keyboardHeight <= 0 {
		keyboardHeight = config.DefaultKeyboardHeight
	}
	m := &model{
		dd:             dropdown.New(cfg),
		screen:         dropdown.NewScreen(defaultWidth, defaultRows),
		width:          defaultWidth,
		height:         defaultRows,
		keyboardHeight: keyboardHeight,
		keys:           help.New(),
		copy:           clipboard.WriteAll,
		saveTheme:      config.SaveTheme,
	}
	m.dd.SetItems(items)
	m.dd.SetContainer(m.screen)
	m.dd.Subscribe(func(msg tea.Msg) {
		debug.Logf("demo: event %T %+v", msg, msg)
	})
	m.help = renderHelp(defaultWidth - 8)
	m.placeAnchor()
	return m
}

// Init focuses a plain dropdown so the keyboard works at once. A search
// dropdown waits for tab or a click, since focusing it opens the list.
func (m *model) Init() tea.Cmd {
	if !m.dd.Config().Search.Enabled {
		m.dd.Focus()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help = renderHelp(msg.Width - 8)
		m.keys.Width = msg.Width - anchorX
		m.placeAnchor()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case dropdown.WillOpenMsg:
		m.logEvent("will open")
	case dropdown.DidOpenMsg:
		m.logEvent("did open")
	case dropdown.WillCloseMsg:
		m.logEvent("will close")
	case dropdown.DidCloseMsg:
		m.logEvent("did close")
	case dropdown.ItemSelectedMsg:
		m.logEvent(fmt.Sprintf("selected %q at %d", msg.Item.Title(), msg.Index))
	}

	cmds = append(cmds, m.dd.Update(msg), m.syncKeyboard())
	return m, tea.Batch(cmds...)
}

// handleKey runs demo shortcuts. Printable shortcuts are only taken while
// the control is not accepting text.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+y":
		return m.copySelection(), true
	case "ctrl+t":
		return m.cycleTheme(), true
	case "ctrl+b":
		m.anchorAtBottom = !m.anchorAtBottom
		m.placeAnchor()
		return nil, true
	case "tab":
		if m.dd.Focused() {
			m.dd.Blur()
			return m.syncKeyboard(), true
		}
		return tea.Batch(m.dd.Focus(), m.syncKeyboard()), true
	}

	if m.dd.Editing() {
		return nil, false
	}
	switch msg.String() {
	case "q":
		if m.dd.State() == dropdown.StateClosed {
			return tea.Quit, true
		}
	case "?":
		m.showHelp = !m.showHelp
		return nil, true
	}
	if m.showHelp && msg.String() == "esc" {
		m.showHelp = false
		return nil, true
	}
	return nil, false
}

// syncKeyboard shows the simulated keyboard while the control is editing.
func (m *model) syncKeyboard() tea.Cmd {
	switch {
	case m.dd.Editing() && !m.keyboardShown:
		m.keyboardShown = true
		return m.dd.Update(dropdown.KeyboardWillShowMsg{Height: m.keyboardHeight})
	case !m.dd.Editing() && m.keyboardShown:
		m.keyboardShown = false
		return m.dd.Update(dropdown.KeyboardWillHideMsg{})
	}
	return nil
}

func (m *model) placeAnchor() {
	y := topAnchorY
	if m.anchorAtBottom {
		y = m.height - 2 - lipgloss.Height(m.dd.View())
	}
	m.dd.MoveTo(anchorX, max(0, y))
}

func (m *model) copySelection() tea.Cmd {
	title := m.dd.DisplayTitle()
	if title == "" {
		return m.setStatus("Nothing selected.")
	}
	if err := m.copy(title); err != nil {
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatus(fmt.Sprintf("Copied '%s' to clipboard.", title))
}

func (m *model) cycleTheme() tea.Cmd {
	name := theme.Cycle()
	if err := m.saveTheme(name); err != nil {
		debug.Logf("demo: save theme: %v", err)
		return m.setStatus(fmt.Sprintf("Theme: %s (not saved: %v)", name, err))
	}
	return m.setStatus("Theme: " + name)
}

func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m *model) logEvent(s string) {
	m.events = append(m.events, s)
	if len(m.events) > maxEventLog {
		m.events = m.events[len(m.events)-maxEventLog:]
	}
}

func (m *model) View() string {
	canvas := dropdown.NewCanvas(m.width, m.height)
	canvas.DrawStringAt(anchorX, 0, styleTitle().Render("Dropdown Demo"))

	anchor := m.dd.AnchorFrame()
	canvas.DrawStringAt(anchorX, anchor.Y-1, styleLabel().Render("City"))
	canvas.DrawStringAt(anchor.X, anchor.Y, m.dd.View())

	logX := anchor.Right() + 4
	canvas.DrawStringAt(logX, topAnchorY-1, styleLabel().Render("Events"))
	canvas.DrawStringAt(logX, topAnchorY, styleMuted().Render(strings.Join(m.events, "\n")))

	bottom := m.height - 2
	if m.keyboardShown {
		bottom -= m.keyboardHeight
		canvas.DrawStringAt(0, bottom+2, m.keyboardView())
	}
	canvas.DrawStringAt(anchorX, bottom, m.statusLine())

	out := m.dd.Compose(canvas.Render())
	if m.showHelp {
		top := dropdown.NewCanvas(m.width, m.height)
		top.DrawStringAt(0, 0, out)
		box := styleHelp().Render(m.help)
		x := max(0, (m.width-lipgloss.Width(box))/2)
		y := max(0, (m.height-lipgloss.Height(box))/2)
		top.DrawStringAt(x, y, box)
		out = top.Render()
	}
	return out
}

func (m *model) statusLine() string {
	parts := []string{m.dd.Hint()}
	if sel, ok := m.dd.CurrentSelection(); ok {
		parts = append(parts, "selected: "+sel.Title())
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	line := styleMuted().Render(strings.Join(parts, " • "))
	return line + "\n" + m.keys.ShortHelpView(m.dd.Config().Keys.ShortHelp())
}

func (m *model) keyboardView() string {
	rows := []string{"q w e r t y u i o p", "a s d f g h j k l", "z x c v b n m"}
	body := strings.Join(rows, "\n")
	return styleKeyboard().
		Width(max(1, m.width-2)).
		Height(max(1, m.keyboardHeight-2)).
		Render(body)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Current().Primary)
}

func styleLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleKeyboard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderNormal).
		Background(theme.Current().Surface).
		Foreground(theme.Current().Text).
		Align(lipgloss.Center, lipgloss.Center)
}

func styleHelp() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused).
		Padding(0, 1)
}
