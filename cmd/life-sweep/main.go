// Command life-sweep runs random boards across densities and seeds and lists
// which ones stay alive longest.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"quadlife/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 160, "board width in cells")
	height := flag.Int("height", 120, "board height in cells")
	seeds := flag.Int("seeds", 4, "seeds per density")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	densities := []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}
	scenarios := sweep.Scenarios(densities, seedList)
	cfg := sweep.Config{Width: *width, Height: *height, Steps: *steps, Workers: *workers}

	fmt.Printf("Sweeping %d boards (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *width, *height)
	start := time.Now()
	results := sweep.Run(cfg, scenarios)
	elapsed := time.Since(start)

	counts := map[sweep.Outcome]int{}
	for _, r := range results {
		counts[r.Outcome]++
	}
	fmt.Printf("\nOutcomes: running=%d still=%d period-2=%d extinct=%d\n",
		counts[sweep.OutcomeRunning], counts[sweep.OutcomeStill], counts[sweep.OutcomePeriod2], counts[sweep.OutcomeExtinct])

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		fmt.Printf("%2d) final=%d peak=%d initial=%d outcome=%s settled=%d %s\n",
			i+1, r.FinalLive, r.PeakLive, r.InitialLive, r.Outcome, r.SettledStep, r.Scenario)
	}
}
