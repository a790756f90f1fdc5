package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of a scene frame.
type Phase uint8

const (
	PhasePlayer Phase = iota
	PhaseCollision
	PhasePowerUps
	PhaseWorld
	PhaseTelemetry
	phaseCount
)

var phaseNames = [phaseCount]string{"player", "collision", "powerups", "world", "telemetry"}

func (p Phase) String() string {
	if p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// frameSample is the timing of one frame.
type frameSample struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// frameRing keeps the most recent samples of one frame kind.
type frameRing struct {
	buf  []frameSample
	next int
	n    int
}

func (r *frameRing) add(s frameSample) {
	r.buf[r.next] = s
	r.next = (r.next + 1) % len(r.buf)
	if r.n < len(r.buf) {
		r.n++
	}
}

func (r *frameRing) stats() FrameStats {
	fs := FrameStats{Frames: r.n}
	if r.n == 0 {
		return fs
	}
	var total time.Duration
	var phases [phaseCount]time.Duration
	for _, s := range r.buf[:r.n] {
		total += s.total
		fs.Max = max(fs.Max, s.total)
		for i, d := range s.phases {
			phases[i] += d
		}
	}
	fs.Avg = total / time.Duration(r.n)
	for i := range phases {
		fs.PhaseAvg[i] = phases[i] / time.Duration(r.n)
	}
	return fs
}

// PerfCollector times scene frames. Frames where the update gate stays
// closed only move the player and are kept apart from gated frames, which
// also run collisions, power-ups and the world step. A nil collector
// ignores every call.
type PerfCollector struct {
	now func() time.Time

	step frameRing
	full frameRing

	frameStart time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool
	gated      bool
	cur        frameSample
}

// NewPerfCollector keeps the last window frames of each kind.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:  time.Now,
		step: frameRing{buf: make([]frameSample, window)},
		full: frameRing{buf: make([]frameSample, window)},
	}
}

// StartFrame begins timing a frame.
func (p *PerfCollector) StartFrame() {
	if p == nil {
		return
	}
	p.frameStart = p.now()
	p.cur = frameSample{}
	p.inPhase = false
	p.gated = false
}

// StartPhase closes the running phase and opens ph. Entering any phase
// past PhasePlayer marks the frame as gated.
func (p *PerfCollector) StartPhase(ph Phase) {
	if p == nil || ph >= phaseCount {
		return
	}
	t := p.now()
	p.closePhase(t)
	p.phase, p.phaseStart, p.inPhase = ph, t, true
	if ph != PhasePlayer {
		p.gated = true
	}
}

// EndFrame closes the frame and files it under its kind.
func (p *PerfCollector) EndFrame() {
	if p == nil {
		return
	}
	t := p.now()
	p.closePhase(t)
	p.cur.total = t.Sub(p.frameStart)
	if p.gated {
		p.full.add(p.cur)
	} else {
		p.step.add(p.cur)
	}
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += t.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// FrameStats summarizes one kind of frame over the window.
type FrameStats struct {
	Frames   int
	Avg      time.Duration
	Max      time.Duration
	PhaseAvg [phaseCount]time.Duration
}

// Share returns the percentage of the average frame spent in ph.
func (f FrameStats) Share(ph Phase) float64 {
	if f.Avg <= 0 || ph >= phaseCount {
		return 0
	}
	return float64(f.PhaseAvg[ph]) / float64(f.Avg) * 100
}

// PerfStats holds step frame and gated frame timing.
type PerfStats struct {
	Step FrameStats
	Full FrameStats
}

// Stats summarizes the current windows.
func (p *PerfCollector) Stats() PerfStats {
	if p == nil {
		return PerfStats{}
	}
	return PerfStats{Step: p.step.stats(), Full: p.full.stats()}
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("step_frames", s.Step.Frames),
		slog.Int64("step_avg_us", s.Step.Avg.Microseconds()),
		slog.Int("full_frames", s.Full.Frames),
		slog.Int64("full_avg_us", s.Full.Avg.Microseconds()),
		slog.Int64("full_max_us", s.Full.Max.Microseconds()),
	}
	for ph := PhaseCollision; ph < phaseCount; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.Full.Share(ph)))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the frame timings using slog.
func (s PerfStats) LogStats() {
	slog.Info("perf", "frames", s)
}

// PerfStatsCSV is one perf.csv row. Phase columns are shares of the
// average gated frame.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	StepFrames   int     `csv:"step_frames"`
	StepAvgUS    int64   `csv:"step_avg_us"`
	StepMaxUS    int64   `csv:"step_max_us"`
	FullFrames   int     `csv:"full_frames"`
	FullAvgUS    int64   `csv:"full_avg_us"`
	FullMaxUS    int64   `csv:"full_max_us"`
	PlayerPct    float64 `csv:"player_pct"`
	CollisionPct float64 `csv:"collision_pct"`
	PowerUpsPct  float64 `csv:"powerups_pct"`
	WorldPct     float64 `csv:"world_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		StepFrames:   s.Step.Frames,
		StepAvgUS:    s.Step.Avg.Microseconds(),
		StepMaxUS:    s.Step.Max.Microseconds(),
		FullFrames:   s.Full.Frames,
		FullAvgUS:    s.Full.Avg.Microseconds(),
		FullMaxUS:    s.Full.Max.Microseconds(),
		PlayerPct:    s.Full.Share(PhasePlayer),
		CollisionPct: s.Full.Share(PhaseCollision),
		PowerUpsPct:  s.Full.Share(PhasePowerUps),
		WorldPct:     s.Full.Share(PhaseWorld),
		TelemetryPct: s.Full.Share(PhaseTelemetry),
	}
}
