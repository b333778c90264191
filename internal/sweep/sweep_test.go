package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenarioExtremes(t *testing.T) {
	cfg := Config{Width: 12, Height: 12, Steps: 50}

	empty := RunScenario(cfg, Scenario{Density: 0, Seed: 1})
	assert.Equal(t, OutcomeExtinct, empty.Outcome)
	assert.Equal(t, 1, empty.SettledStep)
	assert.Equal(t, 0, empty.InitialLive)

	// Every cell of a full board has eight neighbours and dies.
	full := RunScenario(cfg, Scenario{Density: 1, Seed: 1})
	assert.Equal(t, OutcomeExtinct, full.Outcome)
	assert.Equal(t, 144, full.InitialLive)
	assert.Equal(t, 144, full.PeakLive)
	assert.Equal(t, 0, full.FinalLive)
}

func TestRunScenarioRespectsStepLimit(t *testing.T) {
	res := RunScenario(Config{Width: 64, Height: 64, Steps: 3}, Scenario{Density: 0.35, Seed: 9})
	if res.Outcome == OutcomeRunning {
		assert.Equal(t, 0, res.SettledStep)
	} else {
		assert.LessOrEqual(t, res.SettledStep, 3)
	}
	assert.GreaterOrEqual(t, res.PeakLive, res.InitialLive)
}

func TestRunIsDeterministicAcrossWorkers(t *testing.T) {
	scenarios := Scenarios([]float64{0.1, 0.3, 0.5}, []int64{1, 2, 3, 4})
	require.Len(t, scenarios, 12)

	cfg := Config{Width: 24, Height: 24, Steps: 40, Workers: 4}
	a := Run(cfg, scenarios)
	cfg.Workers = 1
	b := Run(cfg, scenarios)

	require.Len(t, a, len(scenarios))
	assert.Equal(t, a, b)
	for i := 1; i < len(a); i++ {
		assert.GreaterOrEqual(t, a[i-1].FinalLive, a[i].FinalLive)
	}
	for _, r := range a {
		assert.Equal(t, RunScenario(cfg, r.Scenario), r)
	}
}

func TestScenarioString(t *testing.T) {
	assert.Equal(t, "density=0.25 seed=7", Scenario{Density: 0.25, Seed: 7}.String())
}
