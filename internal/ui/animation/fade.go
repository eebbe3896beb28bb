// Package animation provides fade animations driven by a spring. Each fade
// schedules its own frames as Bubble Tea commands; frames carry the fade's
// ID and generation so frames from a cancelled or restarted run are ignored.
package animation

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

var nextID atomic.Uint64

// FrameMsg advances the fade it belongs to by one frame
type FrameMsg struct {
	ID  uint64
	Gen uint64
}

// TickFunc schedules fn after d. tea.Tick in production.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Options tune the spring behind a fade
type Options struct {
	FPS       int
	Frequency float64
	Damping   float64
	// Tick overrides frame scheduling, mostly for tests
	Tick TickFunc
}

// DefaultOptions is a quick, critically damped fade at 60 FPS
func DefaultOptions() Options {
	return Options{FPS: 60, Frequency: 8.0, Damping: 1.0}
}

// Listener receives lifecycle callbacks. Any hook may be nil.
type Listener struct {
	OnStart  func()
	OnUpdate func(value float64)
	OnEnd    func()
	OnCancel func()
}

const settleEpsilon = 0.01

// Fade animates a value from one level to another
type Fade struct {
	id       uint64
	gen      uint64
	from, to float64
	value    float64
	velocity float64
	frames   int
	started  bool

	fps      int
	spring   harmonica.Spring
	tick     TickFunc
	listener Listener
}

// NewFade creates a fade from one value to another
func NewFade(from, to float64, opts Options) *Fade {
	def := DefaultOptions()
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Damping <= 0 {
		opts.Damping = def.Damping
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	return &Fade{
		id:     nextID.Add(1),
		from:   from,
		to:     to,
		value:  from,
		fps:    opts.FPS,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Frequency, opts.Damping),
		tick:   opts.Tick,
	}
}

// FadeIn creates a fade from fully transparent to opaque
func FadeIn(opts Options) *Fade { return NewFade(0, 1, opts) }

// FadeOut creates a fade from opaque to fully transparent
func FadeOut(opts Options) *Fade { return NewFade(1, 0, opts) }

// ID identifies the fade's frames
func (f *Fade) ID() uint64 { return f.id }

// SetListener replaces the lifecycle hooks
func (f *Fade) SetListener(l Listener) { f.listener = l }

// IsStarted reports whether the fade has started and not yet ended or been cancelled
func (f *Fade) IsStarted() bool { return f.started }

// Value returns the current animated value
func (f *Fade) Value() float64 { return f.value }

// Start runs the fade from the beginning, cancelling a run in progress.
// The returned command delivers the first frame.
func (f *Fade) Start() tea.Cmd {
	return f.StartFrom(f.from)
}

// StartFrom is Start beginning at v rather than the fade's starting value,
// for picking up where an interrupted opposite fade left off.
func (f *Fade) StartFrom(v float64) tea.Cmd {
	if f.started {
		f.Cancel()
	}
	f.gen++
	f.started = true
	f.value = v
	f.velocity = 0
	f.frames = 0
	if f.listener.OnStart != nil {
		f.listener.OnStart()
	}
	f.notifyUpdate()
	return f.next()
}

// Cancel stops a running fade where it is. Pending frames are discarded.
func (f *Fade) Cancel() {
	if !f.started {
		return
	}
	f.started = false
	f.gen++
	if f.listener.OnCancel != nil {
		f.listener.OnCancel()
	}
}

// End jumps a running fade to its final value
func (f *Fade) End() {
	if !f.started {
		return
	}
	f.started = false
	f.gen++
	f.value = f.to
	f.velocity = 0
	f.notifyUpdate()
	if f.listener.OnEnd != nil {
		f.listener.OnEnd()
	}
}

// Update advances the fade on its own frames and ignores everything else
func (f *Fade) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != f.id || frame.Gen != f.gen || !f.started {
		return nil
	}

	f.frames++
	f.value, f.velocity = f.spring.Update(f.value, f.velocity, f.to)

	// a spring may overshoot; cap the run at two seconds of frames
	if f.settled() || f.frames >= 2*f.fps {
		f.End()
		return nil
	}
	f.notifyUpdate()
	return f.next()
}

func (f *Fade) settled() bool {
	return math.Abs(f.value-f.to) < settleEpsilon && math.Abs(f.velocity) < settleEpsilon
}

func (f *Fade) notifyUpdate() {
	if f.listener.OnUpdate != nil {
		f.listener.OnUpdate(clamp01(f.value))
	}
}

func (f *Fade) next() tea.Cmd {
	id, gen := f.id, f.gen
	return f.tick(time.Second/time.Duration(f.fps), func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen}
	})
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
