package app

import (
	"strconv"
	"time"

	"psyca/internal/core"
	"psyca/internal/sims/psychedelic"
)

// Automaton is the board surface the loop drives.
type Automaton interface {
	Randomise()
	Paint(cx, cy, radius int)
	Advance(temperature int)
}

// Loop owns the run state and live parameters and applies events to the
// board one at a time. It is not safe for concurrent use; every event must be
// handled from the same goroutine that renders.
type Loop struct {
	board     Automaton
	pixelSize int
	interval  time.Duration
	render    func()

	temperature int
	brush       int
	generation  int
	revision    uint64

	running    bool
	processing bool
	dirty      bool
	mouseHeld  bool
	showHUD    bool
}

// NewLoop constructs a loop over board using the flag configuration. The
// first render is pending, so the board is drawn before any input arrives.
func NewLoop(board Automaton, cfg *Config) *Loop {
	bc := cfg.Board()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Loop{
		board:       board,
		pixelSize:   scale,
		interval:    cfg.Interval,
		temperature: bc.Temperature,
		brush:       bc.BrushRadius,
		running:     true,
		dirty:       true,
		showHUD:     cfg.HUD,
	}
}

// SetRenderer installs the hook invoked whenever the board needs redrawing.
func (l *Loop) SetRenderer(fn func()) { l.render = fn }

// Handle applies ev and reports whether the loop should keep running.
func (l *Loop) Handle(ev Event) bool {
	if !l.running {
		return false
	}
	before := l.status()
	defer func() {
		if l.status() != before {
			l.revision++
		}
	}()
	switch ev.Kind {
	case EventQuit:
		l.running = false
		return false
	case EventKeyUp:
		l.handleKey(ev.Key)
		if !l.running {
			return false
		}
		l.dirty = true
	case EventPointerDown:
		l.paintAt(ev.X, ev.Y)
		l.mouseHeld = true
	case EventPointerUp:
		l.mouseHeld = false
	case EventPointerMove:
		if l.mouseHeld {
			l.paintAt(ev.X, ev.Y)
		}
	case EventScroll:
		l.brush = psychedelic.ClampBrush(l.brush + ev.Delta)
	case EventTick:
		if l.processing {
			l.board.Advance(l.temperature)
			l.generation++
			l.dirty = true
		}
	}
	l.Flush()
	return true
}

// Run blocks on events until a quit event arrives or the channel closes and
// returns the process exit code.
func (l *Loop) Run(events <-chan Event) int {
	l.Flush()
	for ev := range events {
		if !l.Handle(ev) {
			break
		}
	}
	l.running = false
	return 0
}

func (l *Loop) handleKey(k Key) {
	switch k {
	case KeyRandomise:
		l.board.Randomise()
	case KeyToggleRun:
		l.processing = !l.processing
	case KeyTemperatureUp:
		l.temperature = psychedelic.ClampTemperature(l.temperature + 1)
	case KeyTemperatureDown:
		l.temperature = psychedelic.ClampTemperature(l.temperature - 1)
	case KeyToggleHUD:
		l.showHUD = !l.showHUD
	case KeyQuit:
		l.running = false
	}
}

func (l *Loop) paintAt(px, py int) {
	l.board.Paint(core.FloorDiv(px, l.pixelSize), core.FloorDiv(py, l.pixelSize), l.brush)
	l.dirty = true
}

// Flush invokes the render hook if a redraw is pending.
func (l *Loop) Flush() {
	if !l.dirty {
		return
	}
	if l.render != nil {
		l.render()
	}
	l.dirty = false
}

type loopStatus struct {
	temperature int
	brush       int
	generation  int
	processing  bool
	showHUD     bool
}

func (l *Loop) status() loopStatus {
	return loopStatus{
		temperature: l.temperature,
		brush:       l.brush,
		generation:  l.generation,
		processing:  l.processing,
		showHUD:     l.showHUD,
	}
}

// Revision increases whenever a value reported by Parameters changes.
func (l *Loop) Revision() uint64 { return l.revision }

// Running reports whether a quit has been requested.
func (l *Loop) Running() bool { return l.running }

// Processing reports whether timer ticks advance the board.
func (l *Loop) Processing() bool { return l.processing }

// MouseHeld reports whether the pointer button is down.
func (l *Loop) MouseHeld() bool { return l.mouseHeld }

// Temperature returns the current temperature.
func (l *Loop) Temperature() int { return l.temperature }

// BrushRadius returns the current brush radius.
func (l *Loop) BrushRadius() int { return l.brush }

// Generation counts the advances executed so far.
func (l *Loop) Generation() int { return l.generation }

// ShowHUD reports whether the status panel is visible.
func (l *Loop) ShowHUD() bool { return l.showHUD }

// PixelSize returns the on-screen size of one cell.
func (l *Loop) PixelSize() int { return l.pixelSize }

// Parameters snapshots the live values for display.
func (l *Loop) Parameters() core.ParameterSnapshot {
	state := "paused"
	if l.processing {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeBool, Value: state},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.generation)},
				{Key: "temperature", Label: "Temperature", Type: core.ParamTypeInt, Value: strconv.Itoa(l.temperature)},
				{Key: "interval", Label: "Tick", Type: core.ParamTypeDuration, Value: l.interval.String()},
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "brush", Label: "Radius", Type: core.ParamTypeInt, Value: strconv.Itoa(l.brush)},
			},
		},
	}}
}
