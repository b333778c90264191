package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/internal/core"
	"quadlife/internal/render"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.CanvasWidth = 20
	cfg.CanvasHeight = 20
	cfg.CellSize = 4
	cfg.IntervalMS = 10
	cfg.MaxGenerations = 0
	return cfg
}

func TestRunnerBuildsGeometryPerTick(t *testing.T) {
	r, err := NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 5, H: 5}, r.Engine().Size())
	assert.Len(t, r.Vertices(), 3*render.VerticesPerCell)

	before := r.Vertices()
	require.True(t, r.Tick())
	assert.Equal(t, 1, r.Engine().Generation())
	assert.Len(t, r.Vertices(), 3*render.VerticesPerCell)
	assert.NotEqual(t, before, r.Vertices())
	assert.Equal(t, render.Build(r.Engine().Grid(), 4, 4), r.Vertices())
}

func TestRunnerUpdateHonoursPacing(t *testing.T) {
	r, err := NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)
	now := time.Unix(1000, 0)

	assert.False(t, r.Update(now), "paused runner must not step")
	r.Start()
	assert.False(t, r.Update(now))
	assert.False(t, r.Update(now.Add(5*time.Millisecond)))
	assert.True(t, r.Update(now.Add(11*time.Millisecond)))
	assert.Equal(t, 1, r.Engine().Generation())

	r.Toggle()
	assert.False(t, r.Running())
	assert.False(t, r.Update(now.Add(time.Hour)))
}

func TestRunnerStopsAtGenerationLimit(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxGenerations = 2
	cfg.IntervalMS = 0
	r, err := NewRunner(cfg, quietLogger())
	require.NoError(t, err)

	r.Start()
	now := time.Unix(0, 0)
	steps := 0
	for i := 0; i < 10; i++ {
		if r.Update(now.Add(time.Duration(i) * time.Millisecond)) {
			steps++
		}
	}
	assert.Equal(t, 2, steps)
	assert.False(t, r.Running())
}

func TestRunnerEditing(t *testing.T) {
	r, err := NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)

	r.Tick()
	assert.False(t, r.ToggleAt(5, 5, false), "edits after the first generation are rejected")

	r.Clear()
	assert.Equal(t, 0, r.Engine().Generation())
	assert.Empty(t, r.Vertices())

	require.True(t, r.ToggleAt(5, 5, false))
	assert.Equal(t, core.Alive, r.Engine().Grid().At(1, 1))
	assert.Equal(t, []render.Vertex{{X: 5, Y: 5}, {X: 8, Y: 5}, {X: 5, Y: 8}, {X: 5, Y: 8}, {X: 8, Y: 5}, {X: 8, Y: 8}}, r.Vertices())

	require.True(t, r.ToggleAt(0, 17, true))
	assert.Equal(t, 6, r.Engine().LiveCount())

	r.Reseed()
	assert.Equal(t, 3, r.Engine().LiveCount())
}

func TestRunnerIgnoresClicksPastBoardEdge(t *testing.T) {
	cfg := NewConfig()
	cfg.CellSize = 31
	r, err := NewRunner(cfg, quietLogger())
	require.NoError(t, err)
	r.Engine().Clear()

	// 1440/31 rounds to 46 columns covering 1426px, 960/31 to 31 rows.
	require.Equal(t, core.Size{W: 46, H: 31}, r.Engine().Size())
	assert.False(t, r.ToggleAt(1430, 10, false))
	assert.False(t, r.ToggleAt(10, 31*31+2, true))
	assert.False(t, r.ToggleAt(-1, 10, false))
	assert.Equal(t, 0, r.Engine().LiveCount())

	require.True(t, r.ToggleAt(1425, 10, false))
	assert.Equal(t, core.Alive, r.Engine().Grid().At(45, 0))
}

func TestRunnerParameters(t *testing.T) {
	r, err := NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)

	assert.True(t, r.SetIntParameter(paramCellSize, 1))
	assert.Equal(t, 2, r.CellSize())
	assert.Equal(t, core.Size{W: 10, H: 10}, r.Engine().Size())

	assert.True(t, r.SetIntParameter(paramInterval, 5000))
	assert.False(t, r.SetIntParameter("speed", 3))

	values := map[string]string{}
	for _, p := range r.Parameters() {
		values[p.Key] = p.Value
	}
	assert.Equal(t, "1000", values[paramInterval])
	assert.Equal(t, "2", values[paramCellSize])
	assert.Equal(t, "10x10", values["grid"])
	assert.Equal(t, "0", values["generation"])
}

func TestNewRunnerRejectsUnknownPattern(t *testing.T) {
	cfg := smallConfig()
	cfg.Pattern = "nope"
	_, err := NewRunner(cfg, quietLogger())
	assert.Error(t, err)
}
