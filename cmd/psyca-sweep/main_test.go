package main

import (
	"testing"

	"psyca/internal/sims/psychedelic"
)

func TestRunScenarioZeroTemperatureIsStatic(t *testing.T) {
	cfg := psychedelic.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 24, 24, 5

	res := runScenario(cfg, 0, 20)
	if res.changeRate != 0 {
		t.Fatalf("change rate %f at temperature 0, want 0", res.changeRate)
	}
	if res.startEntropy != res.endEntropy {
		t.Fatalf("entropy drifted from %f to %f", res.startEntropy, res.endEntropy)
	}
}

func TestRunScenarioHotBoardChanges(t *testing.T) {
	cfg := psychedelic.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 24, 24, 5

	res := runScenario(cfg, psychedelic.ColourCount, 10)
	if res.changeRate <= 0 || res.changeRate > 1 {
		t.Fatalf("change rate %f, want (0,1]", res.changeRate)
	}
	if res.dominant < 0 || res.dominant >= psychedelic.ColourCount {
		t.Fatalf("dominant colour %d outside palette", res.dominant)
	}
}
