package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Player and world state at window end
	Level     int `csv:"level"`
	Score     int `csv:"score"`
	Lives     int `csv:"lives"`
	Power     int `csv:"power"`
	Creatures int `csv:"creatures"`
	PowerUps  int `csv:"powerups"`

	// Feeding during window
	Eaten            int `csv:"eaten"`
	EatenValue       int `csv:"eaten_value"`
	EatenNPC         int `csv:"eaten_npc"`
	EatenBiggerFish  int `csv:"eaten_bigger_fish"`
	EatenPufferFish  int `csv:"eaten_puffer_fish"`
	EatenAngelfish   int `csv:"eaten_angelfish"`
	EatenSurgeonfish int `csv:"eaten_surgeonfish"`

	// Damage
	LivesLost    int `csv:"lives_lost"`
	HitsAbsorbed int `csv:"hits_absorbed"`

	// Population churn
	Spawned int `csv:"spawned"`
	Removed int `csv:"removed"`

	// Power-ups
	PowerUpsSpawned   int `csv:"powerups_spawned"`
	PowerUpsCollected int `csv:"powerups_collected"`

	LevelsCompleted int `csv:"levels_completed"`

	// Creature speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	RadiusMean float64 `csv:"radius_mean"`
	RadiusMax  float64 `csv:"radius_max"`
}

// Distribution summarizes a sample of values.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeDistribution calculates mean, sample standard deviation, empirical
// quantiles and the maximum. An empty sample yields zeros.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if n == 1 {
		d.Mean = sorted[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	d.Max = sorted[n-1]
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("level", s.Level),
		slog.Int("score", s.Score),
		slog.Int("lives", s.Lives),
		slog.Int("power", s.Power),
		slog.Int("creatures", s.Creatures),
		slog.Int("eaten", s.Eaten),
		slog.Int("eaten_value", s.EatenValue),
		slog.Int("lives_lost", s.LivesLost),
		slog.Int("hits_absorbed", s.HitsAbsorbed),
		slog.Int("spawned", s.Spawned),
		slog.Int("powerups_collected", s.PowerUpsCollected),
		slog.Int("levels_completed", s.LevelsCompleted),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"level", s.Level,
		"score", s.Score,
		"lives", s.Lives,
		"power", s.Power,
		"creatures", s.Creatures,
		"powerups", s.PowerUps,
		"eaten", s.Eaten,
		"eaten_value", s.EatenValue,
		"lives_lost", s.LivesLost,
		"hits_absorbed", s.HitsAbsorbed,
		"spawned", s.Spawned,
		"removed", s.Removed,
		"powerups_spawned", s.PowerUpsSpawned,
		"powerups_collected", s.PowerUpsCollected,
		"levels_completed", s.LevelsCompleted,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"radius_mean", s.RadiusMean,
	)
}

// LevelRecord is one completed level, written to levels.csv.
type LevelRecord struct {
	Tick        int32 `csv:"tick"`
	Counter     int   `csv:"counter"`
	Index       int   `csv:"index"`
	TargetScore int   `csv:"target_score"`
	FinalScore  int   `csv:"final_score"`
	PlayerScore int   `csv:"player_score"`
}
