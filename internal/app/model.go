// Package app contains the mailbox demo model that hosts the toast bar.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastbar/internal/config"
	"github.com/riordanpawley/toastbar/internal/mailbox"
	"github.com/riordanpawley/toastbar/internal/toastbar"
	"github.com/riordanpawley/toastbar/internal/types"
	"github.com/riordanpawley/toastbar/internal/ui/animation"
	"github.com/riordanpawley/toastbar/internal/ui/overlay"
	"github.com/riordanpawley/toastbar/internal/ui/statusbar"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
)

const (
	statusBarHeight = 1
	confirmEmpty    = "empty-trash"
)

// Option customizes a Model
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *slog.Logger
	store  *mailbox.Store
	tick   animation.TickFunc
}

// WithLogger sets the logger; slog.Default() otherwise
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithContext sets the context toast callbacks run under. Cancelling it
// disarms pending undo and timeout work.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithStore replaces the seeded mailbox
func WithStore(s *mailbox.Store) Option {
	return func(o *options) { o.store = s }
}

// WithTick replaces tea.Tick for the toast timer and fades
func WithTick(tick animation.TickFunc) Option {
	return func(o *options) { o.tick = tick }
}

// Model is the main application state
type Model struct {
	store    *mailbox.Store
	list     list.Model
	bar      *toastbar.Bar
	overlays *overlay.Stack
	listener *listener

	keys          KeyMap
	styles        *styles.Styles
	overlayStyles *overlay.Styles
	config        *config.Config
	logger        *slog.Logger

	// Terminal size
	width  int
	height int

	lastErr string
}

// New creates a new application model with the given config
func New(cfg *config.Config, opts ...Option) Model {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if o.store == nil {
		o.store = mailbox.NewStore(mailbox.Seed(time.Now()), logger)
	}

	palette, err := styles.PaletteByName(strings.ToLower(cfg.Theme))
	if err != nil {
		logger.Warn("falling back to default theme", "error", err)
		palette = styles.Macchiato
	}
	s := styles.FromPalette(palette)

	anim := animation.Options{
		FPS:       cfg.Animation.FPS,
		Frequency: cfg.Animation.Frequency,
		Damping:   cfg.Animation.Damping,
		Tick:      o.tick,
	}
	bar := toastbar.New(nil, resources(), toastbar.Options{
		RTL:       cfg.Layout.RTL,
		Colors:    s.ToastBar,
		Animation: anim,
		Logger:    logger.With("component", "toastbar"),
		Context:   o.ctx,
		Tick:      o.tick,
	})

	return Model{
		store:         o.store,
		list:          newList(s, o.store.List(mailbox.FolderInbox)),
		bar:           bar,
		overlays:      overlay.NewStack(),
		listener:      &listener{store: o.store, bar: bar},
		keys:          DefaultKeyMap(),
		styles:        s,
		overlayStyles: overlay.FromPalette(palette),
		config:        cfg,
		logger:        logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("toastbar")
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case toastbar.DismissMsg, animation.FrameMsg:
		return m, m.bar.Update(msg)

	case mailbox.ChangedMsg:
		return m.handleChanged(msg), nil

	case overlay.CloseOverlayMsg:
		m.overlays.Update(msg)
		return m, nil

	case overlay.SelectionMsg:
		m.overlays.Update(msg)
		return m.handleSelection(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		if !m.overlays.IsEmpty() {
			return m, m.overlays.Update(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the filter prompt takes every key
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if cmd, ok := m.bar.HandleKey(msg); ok {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Archive):
		return m.archive()
	case key.Matches(msg, m.keys.Delete):
		return m.delete()
	case key.Matches(msg, m.keys.MarkRead):
		return m.markRead()
	case key.Matches(msg, m.keys.EmptyTrash):
		return m.confirmEmptyTrash()
	case key.Matches(msg, m.keys.Help):
		return m, m.overlays.Push(overlay.NewHelpOverlay(m.overlayStyles, m.helpCategories()...))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleMouse lets the bar take presses inside it. A press anywhere else
// dismisses a visible toast.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.bar.HandleMouse(msg); handled {
		return m, cmd
	}

	switch {
	case msg.Action != tea.MouseActionPress:
		return m, nil
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.CursorUp()
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.CursorDown()
		return m, nil
	case m.bar.IsShown() && !m.bar.IsEventInToastBar(msg):
		return m, m.bar.Hide(true, false)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.bar.Detach()
	m.logger.Info("quitting")
	return m, tea.Quit
}

func (m Model) selected() (mailbox.Message, bool) {
	item, ok := m.list.SelectedItem().(messageItem)
	if !ok {
		return mailbox.Message{}, false
	}
	return item.msg, true
}

func (m Model) archive() (tea.Model, tea.Cmd) {
	msg, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := m.store.Archive(msg.ID); err != nil {
		return m.fail("archive failed", err), nil
	}
	m.refresh()
	return m, m.showToast(m.listener, archivedToast(msg, m.store))
}

func (m Model) delete() (tea.Model, tea.Cmd) {
	msg, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := m.store.Delete(msg.ID); err != nil {
		return m.fail("delete failed", err), nil
	}
	m.refresh()
	return m, m.showToast(m.listener, deletedToast(msg, m.store))
}

func (m Model) markRead() (tea.Model, tea.Cmd) {
	msg, ok := m.selected()
	if !ok || !msg.Unread {
		return m, nil
	}
	if err := m.store.SetUnread(msg.ID, false); err != nil {
		return m.fail("mark read failed", err), nil
	}
	m.refresh()
	return m, m.showToast(m.listener, markedReadToast(msg))
}

func (m Model) confirmEmptyTrash() (tea.Model, tea.Cmd) {
	n := len(m.store.List(mailbox.FolderTrash))
	if n == 0 {
		return m, nil
	}
	dialog := overlay.NewConfirmDialog(confirmEmpty, "Empty trash",
		fmt.Sprintf("Delete %d message(s) forever?", n), m.overlayStyles)
	return m, m.overlays.Push(dialog)
}

// handleSelection handles overlay results
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	if msg.Key != confirmEmpty {
		return m, nil
	}
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed {
		return m, nil
	}
	// a pending delete can no longer be undone
	cmd := m.bar.Hide(false, false)
	n := m.store.EmptyTrash()
	m.logger.Info("emptied trash", "count", n)
	m.refresh()
	return m, cmd
}

func (m Model) showToast(l toastbar.ActionClickedListener, req toastbar.Request) tea.Cmd {
	cmd, err := m.bar.Show(l, req)
	if err != nil {
		m.logger.Error("failed to show toast", "text", req.DescriptionText, "error", err)
		return nil
	}
	return cmd
}

func (m Model) handleChanged(msg mailbox.ChangedMsg) Model {
	if msg.Err != nil {
		return m.fail(msg.Op+" failed", msg.Err)
	}
	m.logger.Info("mailbox changed", "op", msg.Op, "id", msg.ID)
	m.lastErr = ""
	m.refresh()
	return m
}

func (m Model) fail(what string, err error) Model {
	m.logger.Warn(what, "error", err)
	m.lastErr = what
	return m
}

// refresh reloads the inbox into the list
func (m *Model) refresh() {
	m.list.SetItems(toItems(m.store.List(mailbox.FolderInbox)))
}

// layout sizes the list and places the toast bar above the status bar
func (m *Model) layout() {
	listHeight := m.listHeight()
	m.list.SetSize(m.width, listHeight)
	m.bar.Layout(0, listHeight, m.width)
}

func (m Model) listHeight() int {
	return max(0, m.height-m.bar.Height()-statusBarHeight)
}

func (m Model) mode() types.Mode {
	switch {
	case m.list.FilterState() == list.Filtering:
		return types.ModeFilter
	case m.bar.IsShown():
		return types.ModeToast
	default:
		return types.ModeNormal
	}
}

func (m Model) helpCategories() []overlay.KeyCategory {
	return []overlay.KeyCategory{
		{Name: "Messages", Bindings: []key.Binding{m.keys.Archive, m.keys.Delete, m.keys.MarkRead, m.keys.EmptyTrash}},
		{Name: "Toast", Bindings: []key.Binding{m.bar.Keys().Action}},
		{Name: "List", Bindings: []key.Binding{m.list.KeyMap.CursorUp, m.list.KeyMap.CursorDown, m.list.KeyMap.Filter}},
		{Name: "Other", Bindings: []key.Binding{m.keys.Help, m.keys.Quit}},
	}
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	listHeight := m.listHeight()
	main := lipgloss.NewStyle().
		Width(m.width).
		Height(listHeight).
		MaxHeight(listHeight).
		Render(m.list.View())

	if !m.overlays.IsEmpty() {
		current := m.overlays.Current()
		w, h := current.Size()
		body := current.View()
		if title := current.Title(); title != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, m.overlayStyles.Title.Render(title), body)
		}
		box := m.overlayStyles.Overlay.Width(w).MaxHeight(h + 2).Render(body)
		main = lipgloss.Place(m.width, listHeight, lipgloss.Center, lipgloss.Center, box)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.bar.View(), m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	bindings := []key.Binding{m.keys.Archive, m.keys.Delete, m.keys.MarkRead}
	if m.bar.IsShown() {
		bindings = append(bindings, m.bar.Keys().Action)
	}
	bindings = append(bindings, m.keys.Help, m.keys.Quit)

	info := fmt.Sprintf("%d inbox · %d archived · %d trash",
		len(m.store.List(mailbox.FolderInbox)),
		len(m.store.List(mailbox.FolderArchive)),
		len(m.store.List(mailbox.FolderTrash)))
	if m.lastErr != "" {
		info = m.styles.StatusError.Render(m.lastErr)
	}

	return statusbar.New(m.mode(), m.width, m.styles).
		WithBindings(bindings...).
		WithInfo(info).
		Render()
}
