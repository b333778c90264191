// Package sweep runs many independent random boards in parallel and
// summarises how each one evolves.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"quadlife/internal/sims/life"
)

// Scenario is one random starting board.
type Scenario struct {
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("density=%.2f seed=%d", s.Density, s.Seed)
}

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeRunning means the board was still changing when steps ran out.
	OutcomeRunning Outcome = "running"
	// OutcomeExtinct means every cell died.
	OutcomeExtinct Outcome = "extinct"
	// OutcomeStill means the board stopped changing.
	OutcomeStill Outcome = "still"
	// OutcomePeriod2 means the board alternates between two states.
	OutcomePeriod2 Outcome = "period-2"
)

// Result summarises one scenario.
type Result struct {
	Scenario    Scenario
	Outcome     Outcome
	SettledStep int
	InitialLive int
	FinalLive   int
	PeakLive    int
}

// Config controls the board and run length shared by every scenario.
type Config struct {
	Width   int
	Height  int
	Steps   int
	Workers int
}

// Scenarios builds the cross product of densities and seeds.
func Scenarios(densities []float64, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, s := range seeds {
			out = append(out, Scenario{Density: d, Seed: s})
		}
	}
	return out
}

// Run evaluates scenarios on cfg.Workers goroutines. Each worker owns its
// engine, so no board is shared. Results are sorted by final population,
// largest first.
func Run(cfg Config, scenarios []Scenario) []Result {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- RunScenario(cfg, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].FinalLive != all[j].FinalLive {
			return all[i].FinalLive > all[j].FinalLive
		}
		if all[i].Scenario.Density != all[j].Scenario.Density {
			return all[i].Scenario.Density < all[j].Scenario.Density
		}
		return all[i].Scenario.Seed < all[j].Scenario.Seed
	})
	return all
}

// RunScenario steps one board until it settles or cfg.Steps is reached.
func RunScenario(cfg Config, sc Scenario) Result {
	e := life.New(life.Config{Width: cfg.Width, Height: cfg.Height, MaxGenerations: cfg.Steps})
	e.Seed(life.Random(sc.Seed, sc.Density))

	res := Result{Scenario: sc, Outcome: OutcomeRunning, InitialLive: e.LiveCount()}
	res.PeakLive = res.InitialLive

	prev := e.Grid().Clone()
	prev2 := prev.Clone()
	for e.Step() {
		live := e.LiveCount()
		if live > res.PeakLive {
			res.PeakLive = live
		}
		cur := e.Grid()
		switch {
		case live == 0:
			res.Outcome = OutcomeExtinct
		case cur.Equal(prev):
			res.Outcome = OutcomeStill
		case e.Generation() > 1 && cur.Equal(prev2):
			res.Outcome = OutcomePeriod2
		}
		if res.Outcome != OutcomeRunning {
			res.SettledStep = e.Generation()
			break
		}
		prev2, prev = prev, cur.Clone()
	}
	res.FinalLive = e.LiveCount()
	return res
}
