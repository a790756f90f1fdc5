package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/config"
)

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	for i, spec := range pv.Specs {
		if math.Abs(got[i]-spec.Default) > 1e-9 {
			t.Errorf("%s: config default %f, spec default %f", spec.Name, got[i], spec.Default)
		}
	}
}

func TestApplyToConfigClampsAndRefreshes(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	values := pv.DefaultVector()
	values[0] = 100 // player speed far above its max
	values[1] = 2   // damage debounce seconds
	if err := pv.ApplyToConfig(cfg, values); err != nil {
		t.Fatalf("ApplyToConfig: %v", err)
	}

	if cfg.Player.Speed != 10 {
		t.Errorf("player speed = %d, want clamped 10", cfg.Player.Speed)
	}
	if cfg.Derived.DamageDebounceTicks != 120 {
		t.Errorf("DamageDebounceTicks = %d, want 120", cfg.Derived.DamageDebounceTicks)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := &FitnessEvaluator{targetTicks: 1000}

	onTarget := fe.computeFitness(runSummary{survivalTicks: 1000})
	short := fe.computeFitness(runSummary{survivalTicks: 100})
	long := fe.computeFitness(runSummary{survivalTicks: 10000})
	if onTarget >= short || onTarget >= long {
		t.Errorf("on-target %f should beat short %f and long %f", onTarget, short, long)
	}
	if math.Abs(short-long) > 1e-9 {
		t.Errorf("short %f and long %f should be penalized alike", short, long)
	}

	withLevels := fe.computeFitness(runSummary{survivalTicks: 1000, levels: 2})
	if withLevels >= onTarget {
		t.Error("clearing levels should improve fitness")
	}
}

func TestEvaluateRunsEverySeed(t *testing.T) {
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 120, 60, []int64{1, 2}, config.Default())

	fitness := fe.Evaluate(pv.DefaultVector())
	if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
		t.Fatalf("fitness = %f", fitness)
	}
	if s := fe.LastSummary(); s.survivalTicks <= 0 || s.survivalTicks > 120 {
		t.Errorf("survival = %f ticks, want within (0, 120]", s.survivalTicks)
	}
}
