// Package toastbar implements an actionable toast bar: a transient
// notification that announces the result of a user action, optionally offers
// one undo-style action, and dismisses itself after a fixed lifetime.
//
// The bar is driven entirely from a Bubble Tea update loop. The dismiss timer
// and the fade animations are commands whose messages carry a token; a
// message whose token is no longer current is ignored, so cancelling is
// synchronous from the bar's point of view.
package toastbar

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastbar/internal/ui/animation"
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
	"github.com/riordanpawley/toastbar/internal/ui/drawable"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
	"github.com/riordanpawley/toastbar/internal/ui/widget"
)

// Lifetime is how long a toast stays up without interaction
const Lifetime = 15 * time.Second

// DefaultHeight is a bordered bar: border, content, border
const DefaultHeight = 3

var nextToken atomic.Uint64

// DismissMsg is delivered when a toast's lifetime is up
type DismissMsg struct {
	Token uint64
}

// Request describes one toast
type Request struct {
	// DescriptionIcon is hidden when zero or unknown
	DescriptionIcon ResourceID
	DescriptionText string
	ShowActionIcon  bool
	ActionLabel     ResourceID
	// ReplaceVisible lets this toast interrupt one that is still showing.
	// Without it the request is dropped while a toast is up.
	ReplaceVisible bool
	Operation      Operation
}

// Options configure a Bar
type Options struct {
	RTL       bool
	Height    int
	Colors    styles.ToastBarColors
	Animation animation.Options
	Keys      KeyMap
	Logger    *slog.Logger
	// Context is handed to listener and operation callbacks. Detach cancels it.
	Context context.Context
	// Tick schedules the dismiss timer; tea.Tick when nil
	Tick animation.TickFunc
}

// Bar is the toast bar controller
type Bar struct {
	row    *widget.ToastRow
	res    Resources
	rtl    bool
	height int
	colors styles.ToastBarColors
	keys   KeyMap
	logger *slog.Logger
	tick   animation.TickFunc
	anim   animation.Options

	ctx      context.Context
	cancel   context.CancelFunc
	detached bool

	state     VisibilityState
	hidden    bool
	shown     bool // container visibility
	opacity   float64
	operation Operation
	showGen   uint64

	timerToken uint64
	timerArmed bool

	// created on first use
	showAnim *animation.Fade
	hideAnim *animation.Fade

	frame      canvas.Rect
	background *drawable.Pill
	buttonPill *drawable.Pill
	buttonBg   *drawable.ClipBounds
}

// New creates a hidden bar around the given child widgets
func New(row *widget.ToastRow, res Resources, opts Options) *Bar {
	if row == nil {
		row = widget.NewToastRow()
	}
	if res == nil {
		res = MapResources{}
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Colors == (styles.ToastBarColors{}) {
		opts.Colors = styles.New().ToastBar
	}
	if len(opts.Keys.Action.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	ctx, cancel := context.WithCancel(opts.Context)

	buttonPill := drawable.NewPill(opts.Colors.Border, opts.Colors.Action)
	b := &Bar{
		row:        row,
		res:        res,
		rtl:        opts.RTL,
		height:     opts.Height,
		colors:     opts.Colors,
		keys:       opts.Keys,
		logger:     opts.Logger,
		tick:       opts.Tick,
		anim:       opts.Animation,
		ctx:        ctx,
		cancel:     cancel,
		state:      Hidden,
		hidden:     true,
		background: drawable.NewPill(opts.Colors.Border, opts.Colors.Surface),
		buttonPill: buttonPill,
		buttonBg:   drawable.NewClipBounds(buttonPill),
	}
	return b
}

// Show displays a toast. listener handles the action click unless the
// request's operation takes precedence. While a toast is up, requests without
// ReplaceVisible are dropped. The returned command drives the show animation
// and the dismiss timer.
func (b *Bar) Show(listener ActionClickedListener, req Request) (tea.Cmd, error) {
	if b.detached {
		return nil, ErrDetached
	}
	op := req.Operation
	if op == nil {
		return nil, ErrNilOperation
	}
	if _, own := takesPrecedence(op); listener == nil && !own {
		return nil, ErrNilListener
	}
	if !b.hidden && !req.ReplaceVisible {
		b.logger.Debug("toast dropped, bar busy", "operation", op.Kind(), "current", opKind(b.operation))
		return nil, nil
	}

	b.cancelTimer()
	b.operation = op
	b.showGen++
	gen := b.showGen

	b.row.ActionButton.SetOnClick(func() tea.Cmd {
		return b.actionClicked(gen, listener, op)
	})

	if glyph, ok := b.res.Icon(req.DescriptionIcon); ok {
		b.row.DescriptionIcon.SetVisible(true)
		b.row.DescriptionIcon.SetImage(glyph)
	} else {
		b.row.DescriptionIcon.SetVisible(false)
	}
	b.row.DescriptionText.SetText(req.DescriptionText)
	b.row.ActionIcon.SetVisible(req.ShowActionIcon)
	b.row.ActionText.SetText(b.res.String(req.ActionLabel))

	b.hidden = false
	b.state = Showing
	b.layout()

	if b.hideAnim != nil {
		b.hideAnim.Cancel()
	}
	animCmd := b.showAnimation().Start()

	b.logger.Debug("toast shown", "operation", op.Kind(), "text", req.DescriptionText)
	return tea.Batch(animCmd, b.armTimer()), nil
}

func (b *Bar) actionClicked(gen uint64, listener ActionClickedListener, op Operation) tea.Cmd {
	b.cancelTimer()

	var cmd tea.Cmd
	if own, ok := takesPrecedence(op); ok {
		cmd = own.OnActionClicked(b.ctx)
	} else if listener != nil {
		cmd = listener.OnActionClicked(b.ctx)
	}
	b.logger.Debug("toast action clicked", "operation", op.Kind())

	// the callback replaced this toast with a new one
	if b.showGen != gen {
		return cmd
	}
	return tea.Batch(cmd, b.Hide(true, true))
}

// Hide dismisses the toast. It always cancels the dismiss timer. When the
// bar is already gone nothing else happens, so repeated calls never notify
// twice. Unless actionClicked is set, the operation is told about the
// timeout.
func (b *Bar) Hide(animate, actionClicked bool) tea.Cmd {
	b.hidden = true
	b.cancelTimer()

	if !b.shown {
		b.state = Hidden
		return nil
	}
	if b.state == Hiding {
		if !animate {
			b.hideAnim.Cancel()
			b.hideNow()
		}
		return nil
	}

	b.row.DescriptionText.SetText("")
	b.row.ActionButton.SetOnClick(nil)

	var cmd tea.Cmd
	if animate {
		b.state = Hiding
		if b.showAnim != nil {
			b.showAnim.Cancel()
		}
		// fade out from wherever the show fade got to
		cmd = b.hideAnimation().StartFrom(b.opacity)
	} else {
		if b.showAnim != nil {
			b.showAnim.Cancel()
		}
		if b.hideAnim != nil {
			b.hideAnim.Cancel()
		}
		b.hideNow()
	}
	b.logger.Debug("toast hidden", "operation", opKind(b.operation), "animate", animate, "action_clicked", actionClicked)

	if !actionClicked && b.operation != nil {
		if tl, ok := b.operation.(TimeoutListener); ok {
			cmd = tea.Batch(cmd, tl.OnToastBarTimeout(b.ctx))
		}
	}
	return cmd
}

func (b *Bar) hideNow() {
	b.opacity = 0
	b.shown = false
	b.state = Hidden
}

// Operation returns the operation of the most recent toast
func (b *Bar) Operation() Operation {
	return b.operation
}

// State returns the current visibility state
func (b *Bar) State() VisibilityState {
	return b.state
}

// Opacity returns the current fade level between 0 and 1
func (b *Bar) Opacity() float64 {
	return b.opacity
}

// IsShown reports whether the bar is on screen
func (b *Bar) IsShown() bool {
	return b.shown && !b.detached
}

// IsEventInToastBar reports whether a mouse event falls strictly inside the
// bar. It is always false while the bar is not shown.
func (b *Bar) IsEventInToastBar(msg tea.MouseMsg) bool {
	if !b.IsShown() {
		return false
	}
	return b.frame.ContainsStrict(msg.X, msg.Y)
}

// IsAnimating reports whether the show animation is running
func (b *Bar) IsAnimating() bool {
	return b.showAnim != nil && b.showAnim.IsStarted()
}

// Detach tears the bar down: the dismiss timer, both fades and the callback
// context are cancelled and the bar is hidden without notifying the
// operation. Later calls to Show fail with ErrDetached.
func (b *Bar) Detach() {
	b.cancelTimer()
	b.detached = true
	b.hidden = true
	if b.showAnim != nil {
		b.showAnim.Cancel()
	}
	if b.hideAnim != nil {
		b.hideAnim.Cancel()
	}
	b.row.DescriptionText.SetText("")
	b.row.ActionButton.SetOnClick(nil)
	b.hideNow()
	b.cancel()
}

// Update handles the bar's timer, animation, mouse and key messages
func (b *Bar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DismissMsg:
		return b.dismiss(msg)
	case animation.FrameMsg:
		var cmds []tea.Cmd
		if b.showAnim != nil {
			cmds = append(cmds, b.showAnim.Update(msg))
		}
		if b.hideAnim != nil {
			cmds = append(cmds, b.hideAnim.Update(msg))
		}
		return tea.Batch(cmds...)
	case tea.MouseMsg:
		cmd, _ := b.HandleMouse(msg)
		return cmd
	case tea.KeyMsg:
		cmd, _ := b.HandleKey(msg)
		return cmd
	}
	return nil
}

// HandleMouse clicks the action button on a left press over it. handled is
// true for any event inside the bar.
func (b *Bar) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if !b.IsShown() {
		return nil, false
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		button := b.row.ActionButton
		onScreen := button.Frame().Offset(b.frame.Left, b.frame.Top)
		if button.HasOnClick() && onScreen.Contains(msg.X, msg.Y) {
			return button.PerformClick(), true
		}
	}
	return nil, b.IsEventInToastBar(msg)
}

// HandleKey clicks the action button when the action binding is pressed
// while a toast is up.
func (b *Bar) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if b.detached || !b.state.live() || !b.row.ActionButton.HasOnClick() {
		return nil, false
	}
	if !key.Matches(msg, b.keys.Action) {
		return nil, false
	}
	return b.row.ActionButton.PerformClick(), true
}

// Keys returns the bar's key bindings
func (b *Bar) Keys() KeyMap {
	return b.keys
}

func (b *Bar) dismiss(msg DismissMsg) tea.Cmd {
	if !b.timerArmed || msg.Token != b.timerToken {
		return nil
	}
	b.timerArmed = false
	if b.hidden || !b.state.live() {
		return nil
	}
	b.logger.Debug("toast timed out", "operation", opKind(b.operation))
	return b.Hide(true, false)
}

func (b *Bar) armTimer() tea.Cmd {
	token := nextToken.Add(1)
	b.timerToken = token
	b.timerArmed = true
	return b.tick(Lifetime, func(time.Time) tea.Msg {
		return DismissMsg{Token: token}
	})
}

func (b *Bar) cancelTimer() {
	b.timerArmed = false
}

func (b *Bar) showAnimation() *animation.Fade {
	if b.showAnim == nil {
		b.showAnim = animation.FadeIn(b.anim)
		b.showAnim.SetListener(animation.Listener{
			OnStart: func() {
				b.shown = true
			},
			OnUpdate: func(v float64) {
				b.opacity = v
			},
			OnEnd: func() {
				if b.state == Showing {
					b.state = Visible
				}
			},
		})
	}
	return b.showAnim
}

func (b *Bar) hideAnimation() *animation.Fade {
	if b.hideAnim == nil {
		b.hideAnim = animation.FadeOut(b.anim)
		b.hideAnim.SetListener(animation.Listener{
			OnUpdate: func(v float64) {
				b.opacity = v
			},
			OnEnd: func() {
				if b.state == Hiding {
					b.hideNow()
				}
			},
		})
	}
	return b.hideAnim
}
