package app

import (
	"math/rand/v2"
	"testing"

	"psyca/internal/sims/psychedelic"
)

type paintCall struct{ x, y, r int }

type fakeBoard struct {
	randomised int
	paints     []paintCall
	advances   []int
}

func (f *fakeBoard) Randomise() { f.randomised++ }
func (f *fakeBoard) Paint(x, y, r int) { f.paints = append(f.paints, paintCall{x, y, r}) }
func (f *fakeBoard) Advance(temperature int) { f.advances = append(f.advances, temperature) }

func newTestLoop(board Automaton) (*Loop, *int) {
	cfg := NewConfig()
	cfg.Scale = 4
	l := NewLoop(board, cfg)
	renders := 0
	l.SetRenderer(func() { renders++ })
	return l, &renders
}

func TestQuitTerminatesRun(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	events := make(chan Event, 4)
	events <- Event{Kind: EventTick}
	events <- Event{Kind: EventQuit}
	events <- Event{Kind: EventKeyUp, Key: KeyRandomise}

	if code := l.Run(events); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if l.Running() {
		t.Fatal("loop still running after quit")
	}
	if len(events) != 1 {
		t.Fatalf("loop consumed events after quit, %d left", len(events))
	}
}

func TestRunReturnsOnClosedChannel(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	events := make(chan Event)
	close(events)
	if code := l.Run(events); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
}

func TestEscapeQuits(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	if l.Handle(Event{Kind: EventKeyUp, Key: KeyQuit}) {
		t.Fatal("quit key should stop the loop")
	}
	if l.Handle(Event{Kind: EventTick}) {
		t.Fatal("stopped loop should not accept further events")
	}
}

func TestRandomiseKeyRedraws(t *testing.T) {
	board := &fakeBoard{}
	l, renders := newTestLoop(board)
	l.Handle(Event{Kind: EventKeyUp, Key: KeyRandomise})
	if board.randomised != 1 {
		t.Fatalf("randomised %d times, want 1", board.randomised)
	}
	if *renders != 1 {
		t.Fatalf("rendered %d times, want 1", *renders)
	}
}

func TestTickAdvancesOnlyWhenProcessing(t *testing.T) {
	board := &fakeBoard{}
	l, renders := newTestLoop(board)

	l.Handle(Event{Kind: EventTick})
	if len(board.advances) != 0 || *renders != 1 {
		t.Fatalf("paused tick: advances=%d renders=%d", len(board.advances), *renders)
	}

	l.Handle(Event{Kind: EventKeyUp, Key: KeyToggleRun})
	if !l.Processing() {
		t.Fatal("toggle run did not start processing")
	}
	l.Handle(Event{Kind: EventTick})
	l.Handle(Event{Kind: EventTick})
	if len(board.advances) != 2 || l.Generation() != 2 {
		t.Fatalf("advances=%d generation=%d, want 2", len(board.advances), l.Generation())
	}
	if board.advances[0] != 2 {
		t.Fatalf("advanced at temperature %d, want default 2", board.advances[0])
	}

	l.Handle(Event{Kind: EventKeyUp, Key: KeyToggleRun})
	l.Handle(Event{Kind: EventTick})
	if len(board.advances) != 2 {
		t.Fatal("tick advanced after pausing")
	}
}

func TestPointerPaintsWhileHeld(t *testing.T) {
	board := &fakeBoard{}
	l, _ := newTestLoop(board)

	l.Handle(Event{Kind: EventPointerMove, X: 40, Y: 40})
	if len(board.paints) != 0 {
		t.Fatal("move without button painted")
	}

	l.Handle(Event{Kind: EventScroll, Delta: 3})
	l.Handle(Event{Kind: EventPointerDown, X: 9, Y: 17})
	if !l.MouseHeld() {
		t.Fatal("pointer-down did not set mouse held")
	}
	l.Handle(Event{Kind: EventPointerMove, X: 12, Y: 3})
	l.Handle(Event{Kind: EventPointerUp})
	l.Handle(Event{Kind: EventPointerMove, X: 100, Y: 100})

	want := []paintCall{{2, 4, 3}, {3, 0, 3}}
	if len(board.paints) != len(want) {
		t.Fatalf("paints = %v, want %v", board.paints, want)
	}
	for i := range want {
		if board.paints[i] != want[i] {
			t.Fatalf("paint %d = %v, want %v", i, board.paints[i], want[i])
		}
	}
}

func TestPointerLeftOfWindowStaysOffBoard(t *testing.T) {
	board := &fakeBoard{}
	l, _ := newTestLoop(board)
	l.Handle(Event{Kind: EventPointerDown, X: -1, Y: -5})
	if got := board.paints[0]; got.x != -1 || got.y != -2 {
		t.Fatalf("paint at %v, want (-1,-2)", got)
	}
}

func TestBrushRadiusClampedUnderScroll(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		l.Handle(Event{Kind: EventScroll, Delta: r.IntN(61) - 30})
		if b := l.BrushRadius(); b < 0 || b > psychedelic.MaxBrushRadius {
			t.Fatalf("brush radius %d escaped [0,%d]", b, psychedelic.MaxBrushRadius)
		}
	}
}

func TestTemperatureClampedUnderKeys(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		key := KeyTemperatureUp
		if r.IntN(2) == 0 {
			key = KeyTemperatureDown
		}
		l.Handle(Event{Kind: EventKeyUp, Key: key})
		if tmp := l.Temperature(); tmp < 0 || tmp > psychedelic.ColourCount {
			t.Fatalf("temperature %d escaped [0,%d]", tmp, psychedelic.ColourCount)
		}
	}
	for i := 0; i < 20; i++ {
		l.Handle(Event{Kind: EventKeyUp, Key: KeyTemperatureUp})
	}
	if l.Temperature() != psychedelic.ColourCount {
		t.Fatalf("temperature %d, want saturation at %d", l.Temperature(), psychedelic.ColourCount)
	}
}

func TestRenderOnlyWhenDirty(t *testing.T) {
	l, renders := newTestLoop(&fakeBoard{})
	l.Handle(Event{Kind: EventScroll, Delta: 1})
	first := *renders
	l.Handle(Event{Kind: EventPointerUp})
	l.Handle(Event{Kind: EventScroll, Delta: 1})
	if *renders != first {
		t.Fatalf("clean events rendered %d extra frames", *renders-first)
	}
}

func TestLoopDrivesRealBoard(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 12, 9
	board := psychedelic.NewWithConfig(cfg.Board())
	l := NewLoop(board, cfg)

	l.Handle(Event{Kind: EventPointerDown, X: 0, Y: 0})
	if board.At(0, 0) != 0 {
		t.Fatal("pointer-down at origin did not paint cell (0,0)")
	}
	l.Handle(Event{Kind: EventKeyUp, Key: KeyToggleRun})
	for i := 0; i < 5; i++ {
		l.Handle(Event{Kind: EventTick})
	}
	for i, c := range board.Cells() {
		if int(c) >= psychedelic.ColourCount {
			t.Fatalf("cell %d = %d outside palette", i, c)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	l.Handle(Event{Kind: EventScroll, Delta: 7})
	l.Handle(Event{Kind: EventKeyUp, Key: KeyToggleRun})
	snap := l.Parameters()
	checks := map[string]string{
		"state":       "running",
		"temperature": "2",
		"brush":       "7",
		"generation":  "0",
		"interval":    "30ms",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Errorf("%s = %q (found=%v), want %q", key, p.Value, ok, want)
		}
	}
}

func TestRevisionTracksDisplayedValues(t *testing.T) {
	l, _ := newTestLoop(&fakeBoard{})
	rev := l.Revision()

	l.Handle(Event{Kind: EventTick})
	l.Handle(Event{Kind: EventPointerMove, X: 5, Y: 5})
	l.Handle(Event{Kind: EventScroll, Delta: -3})
	if l.Revision() != rev {
		t.Fatal("revision changed although no displayed value did")
	}

	steps := []Event{
		{Kind: EventScroll, Delta: 2},
		{Kind: EventKeyUp, Key: KeyTemperatureUp},
		{Kind: EventKeyUp, Key: KeyToggleRun},
		{Kind: EventTick},
		{Kind: EventKeyUp, Key: KeyToggleHUD},
	}
	for _, ev := range steps {
		l.Handle(ev)
		if l.Revision() == rev {
			t.Fatalf("%s event did not bump the revision", ev.Kind)
		}
		rev = l.Revision()
	}
}
