// Package loop drives frame-based programs: it runs registered stages in
// order once per frame, either on demand or from a ticker, and keeps
// timing statistics for each stage.
package loop

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	StageCount      int
	Frames          uint64
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes stages in order.
type Scheduler struct {
	stages     []Stage
	stageStats []*stageStatsInternal
	frames     uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		stages: make([]Stage, 0),
	}
}

// Register appends a stage. Stages run in registration order.
func (s *Scheduler) Register(stage Stage) {
	s.RegisterNamed(stageName(stage), stage)
}

// RegisterNamed appends a stage under an explicit name, which is useful for
// StageFunc values that have no meaningful type name.
func (s *Scheduler) RegisterNamed(name string, stage Stage) {
	s.stages = append(s.stages, stage)
	s.stageStats = append(s.stageStats, &stageStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func stageName(stage Stage) string {
	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}
	return stageType.Name()
}

// Once executes all registered stages once with the given delta time, then
// runs the functions deferred during the frame.
func (s *Scheduler) Once(dt time.Duration) {
	frame := newFrame(dt, s.frames)
	s.frames++

	for i, stage := range s.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := s.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.flush()
}

// Run executes all stages repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about stage execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.stages),
		Frames:     s.frames,
		Stages:     make([]StageStats, len(s.stageStats)),
	}

	for i, internal := range s.stageStats {
		avgDuration, minDuration := time.Duration(0), time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.TotalExecutions += internal.executionCount
		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
