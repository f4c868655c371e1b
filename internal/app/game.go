//go:build ebiten

package app

import (
	"psyca/internal/core"
	"psyca/internal/render"
	"psyca/internal/sims/psychedelic"
	"psyca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps platform keys onto loop actions. Actions fire on release.
var keyBindings = []struct {
	key    ebiten.Key
	action Key
}{
	{ebiten.KeyBackspace, KeyRandomise},
	{ebiten.KeyR, KeyRandomise},
	{ebiten.KeyEnter, KeyToggleRun},
	{ebiten.KeyNumpadEnter, KeyToggleRun},
	{ebiten.KeySpace, KeyToggleRun},
	{ebiten.KeyNumpadAdd, KeyTemperatureUp},
	{ebiten.KeyEqual, KeyTemperatureUp},
	{ebiten.KeyNumpadSubtract, KeyTemperatureDown},
	{ebiten.KeyMinus, KeyTemperatureDown},
	{ebiten.KeyH, KeyToggleHUD},
	{ebiten.KeyEscape, KeyQuit},
}

// Game adapts the event loop to the ebiten.Game interface. ebiten calls
// Update and Draw from one goroutine, so the board is never shared.
type Game struct {
	board   *psychedelic.Board
	loop    *Loop
	clock   *core.Clock
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	screenW, screenH int

	events  []Event
	cursorX int
	cursorY int
	wheel   wheelAccumulator
	started bool
}

// New constructs a Game for the provided board.
func New(board *psychedelic.Board, cfg *Config) *Game {
	size := board.Size()
	loop := NewLoop(board, cfg)
	painter := render.NewGridPainter(size.W, size.H, cfg.Scale, board.Palette(), psychedelic.Background)
	loop.SetRenderer(func() { painter.Update(board.Cells()) })

	return &Game{
		board:   board,
		loop:    loop,
		clock:   core.NewClock(cfg.Interval, 8),
		painter: painter,
		hud:     ui.NewHUD(loop),
		overlay: ui.NewOverlay(loop),
		screenW: size.W * cfg.Scale,
		screenH: size.H * cfg.Scale,
	}
}

// Start launches the simulation clock.
func (g *Game) Start() { g.clock.Start() }

// Close stops the simulation clock.
func (g *Game) Close() { g.clock.Stop() }

// Update gathers this frame's input and timer events and feeds them to the
// loop in arrival order.
func (g *Game) Update() error {
	if !g.started {
		g.loop.Flush()
		g.started = true
	}

	g.events = g.collect(g.events[:0])
	for _, ev := range g.events {
		if !g.loop.Handle(ev) {
			return ebiten.Termination
		}
	}

	g.hud.Update()
	g.overlay.Update(g.cursorX, g.cursorY, g.inside(g.cursorX, g.cursorY))
	return nil
}

func (g *Game) collect(events []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		return append(events, Event{Kind: EventQuit})
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustReleased(b.key) {
			events = append(events, Event{Kind: EventKeyUp, Key: b.action})
		}
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		events = append(events, Event{Kind: EventPointerMove, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, Event{Kind: EventPointerDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, Event{Kind: EventPointerUp, X: x, Y: y})
	}

	_, dy := ebiten.Wheel()
	if steps := g.wheel.Add(dy); steps != 0 {
		events = append(events, Event{Kind: EventScroll, Delta: steps})
	}

	for n := g.clock.Drain(); n > 0; n-- {
		events = append(events, Event{Kind: EventTick})
	}
	return events
}

func (g *Game) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.screenW && y < g.screenH
}

// Draw renders the cached board, the brush outline and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	if g.loop.ShowHUD() {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
