package termui

import (
	"testing"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/stretchr/testify/assert"

	"quadlife/internal/core"
)

func TestFieldTextCrops(t *testing.T) {
	g := core.NewGrid(6, 4)
	g.Set(0, 0, core.Alive)
	g.Set(5, 3, core.Alive)

	assert.Equal(t, "#..\n...", FieldText(g, "#", ".", 3, 2))
	assert.Equal(t, "#.....\n......\n......\n.....#", FieldText(g, "#", ".", 80, 40))
	assert.Empty(t, FieldText(g, "#", ".", 0, 10))
}

func TestStatusText(t *testing.T) {
	s := StatusText([]core.Parameter{
		{Key: "generation", Label: "Generation", Value: "12"},
		{Key: "live", Label: "Live cells", Value: "3"},
	})
	assert.Contains(t, s, "Generation")
	assert.Contains(t, s, ": 12\n")
	assert.Contains(t, s, ": 3\n")
}

func TestHelpText(t *testing.T) {
	keys := []keyBinding{{name: "N", descr: "Next step"}, {name: "C", descr: "Clear"}}
	s := HelpText(keys)
	assert.Contains(t, s, "Next step")
	assert.Contains(t, s, ", ")
	assert.Contains(t, s, "Clear")
}

func TestQuitStopsPump(t *testing.T) {
	term := &Terminal{tick: time.Hour, done: make(chan struct{})}

	assert.ErrorIs(t, term.cmdQuit(nil), gocui.ErrQuit)
	select {
	case <-term.done:
	default:
		t.Fatal("quit must stop the pump")
	}
	assert.NotPanics(t, term.stop)

	exited := make(chan struct{})
	go func() {
		term.pump()
		close(exited)
	}()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pump kept running after quit")
	}
}
