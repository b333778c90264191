package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/internal/sims/life"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaultsMatchReferenceCanvas(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	w, h := cfg.GridDims()
	assert.Equal(t, 720, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, 20*time.Millisecond, cfg.Interval())
}

func TestGridDimsRounds(t *testing.T) {
	w, h := GridDims(1440, 960, 60)
	assert.Equal(t, [2]int{24, 16}, [2]int{w, h})
	w, h = GridDims(100, 100, 30)
	assert.Equal(t, [2]int{3, 3}, [2]int{w, h})
	w, h = GridDims(100, 100, 40)
	assert.Equal(t, [2]int{3, 3}, [2]int{w, h})
	w, h = GridDims(5, 5, 0)
	assert.Equal(t, [2]int{5, 5}, [2]int{w, h})
	w, h = GridDims(1, 1, 50)
	assert.Equal(t, [2]int{1, 1}, [2]int{w, h})
}

func TestParseFlags(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{"-pattern", "glider", "-cell", "10", "-interval", "0"})
	require.NoError(t, err)
	assert.Equal(t, "glider", cfg.Pattern)
	assert.Equal(t, 10, cfg.CellSize)
	assert.Equal(t, time.Duration(0), cfg.Interval())
}

func TestParseFileThenFlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
pattern = "random"
seed = 7
density = 0.25
cell_size = 4
interval_ms = 100
max_generations = 50
`), 0o644))

	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{"-config", path, "-cell", "8"})
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Pattern)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Density)
	assert.Equal(t, 8, cfg.CellSize)
	assert.Equal(t, 100, cfg.IntervalMS)
	assert.Equal(t, 50, cfg.MaxGenerations)
}

func TestParseErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("cell_size = \"big\""), 0o644))
	cfg = NewConfig()
	assert.Error(t, cfg.Parse(newFlagSet(), []string{"-config", path}))

	cfg = NewConfig()
	err = cfg.Parse(newFlagSet(), []string{"-pattern", "spaceship", "-cell", "0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, life.ErrUnknownPattern))
	assert.Contains(t, err.Error(), "cell size must be positive")
}

func TestEngineConfigFromParams(t *testing.T) {
	cfg := NewConfig()
	cfg.CellSize = 4
	cfg.MaxGenerations = 0

	p := cfg.Params()
	assert.Equal(t, "360", p["w"])
	assert.Equal(t, "240", p["h"])
	assert.Equal(t, life.Config{Width: 360, Height: 240, MaxGenerations: 0}, cfg.EngineConfig())

	cfg.MaxGenerations = 50
	assert.Equal(t, 50, cfg.EngineConfig().MaxGenerations)
}
