package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

// FitnessEvaluator plays headless autopilot games and scores how far their
// length and progress are from the target difficulty.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	targetTicks int32
	seeds       []int64
	baseConfig  *config.Config

	mu          sync.Mutex
	lastSummary runSummary // averaged over the seeds of the last Evaluate
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks, targetTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		targetTicks: targetTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
	}
}

// LastSummary returns the averaged outcome of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() runSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// runSummary is the outcome of one game.
type runSummary struct {
	survivalTicks float64 // ticks until game over, or maxTicks
	levels        float64 // levels cleared
	score         float64
}

// Fitness weights.
const (
	fitnessWeightSurvival = 1.0
	fitnessWeightLevels   = 0.5
)

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runSummary, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runGame(x, s)
		}(i, seed)
	}
	wg.Wait()

	var avg runSummary
	var totalFitness float64
	for _, r := range results {
		totalFitness += fe.computeFitness(r)
		avg.survivalTicks += r.survivalTicks
		avg.levels += r.levels
		avg.score += r.score
	}
	n := float64(len(results))
	avg.survivalTicks /= n
	avg.levels /= n
	avg.score /= n

	fe.mu.Lock()
	fe.lastSummary = avg
	fe.mu.Unlock()

	return totalFitness / n
}

// runGame plays one headless game until game over or maxTicks.
func (fe *FitnessEvaluator) runGame(x []float64, seed int64) runSummary {
	cfg, err := fe.baseConfig.Clone()
	if err == nil {
		err = fe.params.ApplyToConfig(cfg, x)
	}
	if err != nil {
		// Unusable parameters score as an instant loss
		return runSummary{}
	}

	g, err := game.NewGameWithOptions(game.Options{
		Config:   cfg,
		Seed:     seed,
		Headless: true,
	})
	if err != nil {
		return runSummary{}
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks && !g.Over() {
		g.Update()
	}

	st := g.Status()
	return runSummary{
		survivalTicks: float64(g.Tick()),
		levels:        float64(st.LevelsDone),
		score:         float64(st.Score),
	}
}

// computeFitness scores one game (lower = better).
// Survival is measured as squared log distance from the target length so
// games that are too short and too long are penalized alike. Each level
// cleared earns less than the one before.
func (fe *FitnessEvaluator) computeFitness(r runSummary) float64 {
	survival := max(1, r.survivalTicks)
	logErr := math.Log(survival / float64(fe.targetTicks))
	progress := 1 - math.Exp(-r.levels)
	return fitnessWeightSurvival*logErr*logErr - fitnessWeightLevels*progress
}
