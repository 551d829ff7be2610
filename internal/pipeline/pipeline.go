package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/JonMunkholm/inspections/internal/etl"
	"github.com/JonMunkholm/inspections/internal/extract"
	"github.com/JonMunkholm/inspections/internal/logging"
	"github.com/JonMunkholm/inspections/internal/metrics"
	"github.com/google/uuid"
)

// Config controls run admission and duration.
type Config struct {
	MaxWaitTime time.Duration // wait for a running load before ErrBusy
	Timeout     time.Duration // per-run deadline, 0 for none
}

// StageResult summarizes one executed stage.
type StageResult struct {
	Stage      string `json:"stage"`
	Rows       int64  `json:"rows"`
	DurationMS int64  `json:"duration_ms"`
}

// Result summarizes a run. Stages lists those that completed; when the run
// failed they were rolled back and Committed is false.
type Result struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	DurationMS int64         `json:"duration_ms"`
	InputRows  int           `json:"input_rows"`
	Stages     []StageResult `json:"stages"`
	Committed  bool          `json:"committed"`
	Error      string        `json:"error,omitempty"`
}

// Rows returns the number of rows a stage wrote, or 0 if it did not run.
func (r Result) Rows(stage string) int64 {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s.Rows
		}
	}
	return 0
}

// Status reports whether a load is running and how the last one ended.
type Status struct {
	Running bool    `json:"running"`
	LastRun *Result `json:"last_run,omitempty"`
}

// Pipeline runs loads against a store, one at a time.
type Pipeline struct {
	store   Store
	limiter *Limiter
	timeout time.Duration

	mu   sync.RWMutex
	last *Result
}

// New creates a pipeline.
func New(s Store, cfg Config) *Pipeline {
	return &Pipeline{
		store:   s,
		limiter: NewLimiter(cfg.MaxWaitTime),
		timeout: cfg.Timeout,
	}
}

// Run replaces the stored entity graph with the one described by rows.
//
// It waits for any running load (ErrBusy after MaxWaitTime), then executes
// every stage in one transaction. A failing stage aborts the run with a
// *StageError and nothing is committed.
func (p *Pipeline) Run(ctx context.Context, rows []etl.Row) (Result, error) {
	if err := p.limiter.Acquire(ctx); err != nil {
		metrics.ObserveLoad(metrics.OutcomeRejected, 0)
		return Result{}, err
	}
	defer p.limiter.Release()

	metrics.LoadInProgress.Set(1)
	defer metrics.LoadInProgress.Set(0)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result := Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		InputRows: len(rows),
	}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.FromContext(ctx)
	logger.Info("load started", "rows", len(rows))

	in, err := extract.Split(rows)
	if err != nil {
		err = &StageError{Stage: StageSplit, Err: err}
	} else {
		err = p.store.WithinTx(ctx, func(tx Tx) error {
			for _, st := range stages {
				if err := ctx.Err(); err != nil {
					return &StageError{Stage: st.name, Err: err}
				}

				start := time.Now()
				n, err := st.run(ctx, tx, in)
				if err != nil {
					return &StageError{Stage: st.name, Err: err}
				}
				metrics.ObserveStage(st.name, time.Since(start))

				result.Stages = append(result.Stages, StageResult{
					Stage:      st.name,
					Rows:       n,
					DurationMS: time.Since(start).Milliseconds(),
				})
				logging.WithFields(ctx, "stage", st.name).Info("stage completed",
					"rows", n,
					"duration", time.Since(start),
				)
			}
			return nil
		})
	}

	elapsed := time.Since(result.StartedAt)
	result.DurationMS = elapsed.Milliseconds()
	if err != nil {
		result.Error = err.Error()
		metrics.ObserveLoad(metrics.OutcomeFailed, elapsed)
		logger.Error("load failed", "error", err, "duration_ms", result.DurationMS)
	} else {
		result.Committed = true
		metrics.ObserveLoad(metrics.OutcomeCommitted, elapsed)
		for _, st := range result.Stages {
			metrics.StageRows.WithLabelValues(st.Stage).Set(float64(st.Rows))
		}
		logger.Info("load completed",
			"restaurants", result.Rows(StageRestaurants),
			"inspections", result.Rows(StageInspections),
			"violations", result.Rows(StageViolations),
			"duration_ms", result.DurationMS,
		)
	}

	p.mu.Lock()
	last := result
	p.last = &last
	p.mu.Unlock()

	return result, err
}

// Status returns a snapshot of the run state.
func (p *Pipeline) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Status{Running: p.limiter.Running()}
	if p.last != nil {
		last := *p.last
		s.LastRun = &last
	}
	return s
}

// WaitForDrain blocks until the running load completes or ctx is cancelled.
func (p *Pipeline) WaitForDrain(ctx context.Context) error {
	return p.limiter.WaitForDrain(ctx)
}
