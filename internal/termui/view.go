// Package termui shows the board in a terminal with gocui.
package termui

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"quadlife/internal/app"
	"quadlife/internal/core"
	"quadlife/internal/render"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	sideWidth = 30
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Terminal drives a Runner from the gocui main loop. All engine access
// happens on that loop.
type Terminal struct {
	runner *app.Runner
	g      *gocui.Gui
	keys   []keyBinding
	tick   time.Duration

	done     chan struct{}
	stopOnce sync.Once

	liveFiller string
	deadFiller string
}

// New creates the terminal UI. tick is how often the loop polls the runner.
func New(r *app.Runner, tick time.Duration) (*Terminal, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("termui: %w", err)
	}
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	t := &Terminal{
		runner:     r,
		g:          g,
		tick:       tick,
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "·",
	}
	g.Mouse = true
	g.SetManagerFunc(t.layout)
	t.keys = t.bindings()
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("termui: bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

func (t *Terminal) bindings() []keyBinding {
	return []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Start/Stop", t.cmdToggle, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'r', "R", "Reseed", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdClick, boardView},
	}
}

// Run blocks until the user quits.
func (t *Terminal) Run() error {
	defer t.g.Close()
	defer t.stop()
	go t.pump()
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// stop ends the pump. It runs on the main loop before MainLoop returns, so
// no Update is queued after the loop stops reading events.
func (t *Terminal) stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// pump keeps at most one Update in flight and waits for it to run before
// queueing the next.
func (t *Terminal) pump() {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case now := <-ticker.C:
			ran := make(chan struct{})
			t.g.Update(func(g *gocui.Gui) error {
				defer close(ran)
				if t.runner.Update(now) {
					return t.refresh(g)
				}
				return nil
			})
			select {
			case <-ran:
			case <-t.done:
				return
			}
		}
	}
}

func (t *Terminal) refresh(g *gocui.Gui) error {
	if v, err := g.View(boardView); err == nil {
		v.Clear()
		w, h := v.Size()
		fmt.Fprint(v, FieldText(t.runner.Engine().Grid(), t.liveFiller, t.deadFiller, w, h))
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		fmt.Fprint(v, StatusText(t.runner.Parameters()))
	}
	return nil
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, sideWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(boardView, sideWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Board"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, HelpText(t.keys))
	}
	return t.refresh(g)
}

func (t *Terminal) cmdQuit(_ *gocui.View) error {
	t.stop()
	return gocui.ErrQuit
}

func (t *Terminal) cmdToggle(_ *gocui.View) error {
	t.runner.Toggle()
	return t.refresh(t.g)
}

func (t *Terminal) cmdStep(_ *gocui.View) error {
	t.runner.Stop()
	t.runner.Tick()
	return t.refresh(t.g)
}

func (t *Terminal) cmdClear(_ *gocui.View) error {
	t.runner.Clear()
	return t.refresh(t.g)
}

func (t *Terminal) cmdReseed(_ *gocui.View) error {
	t.runner.Stop()
	t.runner.Reseed()
	return t.refresh(t.g)
}

func (t *Terminal) cmdClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	cell := t.runner.CellSize()
	t.runner.ToggleAt(cx*cell, cy*cell, false)
	return t.refresh(t.g)
}

// FieldText renders the board cropped to a w x h view.
func FieldText(g *core.Grid, live, dead string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return render.Text(g, live, dead, w, h)
}

// StatusText lists parameters one per line.
func StatusText(params []core.Parameter) string {
	var b bytes.Buffer
	for _, p := range params {
		fmt.Fprintf(&b, " %s: %s\n", aurora.Green(p.Label), p.Value)
	}
	return b.String()
}

// HelpText summarises the key bindings.
func HelpText(keys []keyBinding) string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}
