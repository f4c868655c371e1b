package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"psyca/internal/sims/psychedelic"
)

type scenarioResult struct {
	temperature  int
	startEntropy float64
	endEntropy   float64
	changeRate   float64
	dominant     int
	dominantPct  float64
}

func main() {
	steps := flag.Int("steps", 300, "ticks to simulate per temperature")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 200, "board width")
	height := flag.Int("h", 200, "board height")
	seed := flag.Int64("seed", 1337, "seed used for every scenario")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *steps < 0 {
		log.Fatalf("invalid sweep: %dx%d board, %d steps", *width, *height, *steps)
	}
	if *workers <= 0 {
		*workers = 1
	}

	cfg := psychedelic.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed

	fmt.Printf("Sweeping temperatures 0..%d (%d workers, %d steps, %dx%d)\n",
		psychedelic.ColourCount, *workers, *steps, cfg.Width, cfg.Height)

	jobs := make(chan int)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for temp := range jobs {
				results <- runScenario(cfg, temp, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for temp := 0; temp <= psychedelic.ColourCount; temp++ {
			jobs <- temp
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].temperature < all[j].temperature })

	fmt.Printf("\n%4s %10s %10s %10s %14s\n", "temp", "H(start)", "H(end)", "changed", "dominant")
	for _, res := range all {
		fmt.Printf("%4d %10.3f %10.3f %9.2f%% %6d (%5.1f%%)\n",
			res.temperature, res.startEntropy, res.endEntropy, res.changeRate*100, res.dominant, res.dominantPct*100)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func runScenario(cfg psychedelic.Config, temperature, steps int) scenarioResult {
	board := psychedelic.NewWithConfig(cfg)
	res := scenarioResult{temperature: temperature, startEntropy: board.Entropy()}

	total := len(board.Cells())
	prev := make([]uint8, total)
	changed := 0
	for step := 0; step < steps; step++ {
		copy(prev, board.Cells())
		board.Advance(temperature)
		for i, c := range board.Cells() {
			if c != prev[i] {
				changed++
			}
		}
	}
	if steps > 0 && total > 0 {
		res.changeRate = float64(changed) / float64(steps*total)
	}

	res.endEntropy = board.Entropy()
	hist := board.Histogram()
	for colour, n := range hist {
		if n > hist[res.dominant] {
			res.dominant = colour
		}
	}
	if total > 0 {
		res.dominantPct = float64(hist[res.dominant]) / float64(total)
	}
	return res
}
