package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games     int
	BaseSeed  uint64
	MaxPieces int
	Width     int
	Height    int
	Kicks     string
	Policy    string
	Workers   int

	// Results
	TotalTime        time.Duration
	TotalFrames      int
	TotalPieces      int
	TotalLines       int
	ClearsBySize     [tetris.MaxClear + 1]int
	GameOvers        int
	BestScore        int
	BestSeed         uint64
	MaxLevel         int
	Violations       []string
	ReplayMismatches int
	UpdateTime       Stats
	GCPauseMetrics   bool
	MemStatsStart    runtime.MemStats
	MemStatsEnd      runtime.MemStats

	scored bool
}

// Add folds one game's result into the report.
func (r *Report) Add(res GameResult) {
	r.TotalFrames += res.Frames
	r.TotalPieces += res.Pieces
	r.TotalLines += res.Stats.Lines
	for size, n := range res.Stats.ClearsBySize {
		r.ClearsBySize[size] += n
	}
	if res.GameOver {
		r.GameOvers++
	}
	if !r.scored || res.Score > r.BestScore {
		r.BestScore = res.Score
		r.BestSeed = res.Seed
		r.scored = true
	}
	r.MaxLevel = max(r.MaxLevel, res.Level)
	for _, v := range res.Violations {
		r.Violations = append(r.Violations, fmt.Sprintf("seed %d: %s", res.Seed, v))
	}
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTimes...)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Report

## Configuration
- **Games:** {{.Games}} (seeds {{.BaseSeed}}..{{seedEnd .BaseSeed .Games}})
- **Board:** {{.Width}}x{{.Height}}
- **Kicks:** {{.Kicks}}
- **Policy:** {{.Policy}}
- **Piece Cap:** {{.MaxPieces}}
- **Workers:** {{.Workers}}

## Play Results
- **Total Time:** {{.TotalTime}}
- **Frames:** {{.TotalFrames}}
- **Pieces:** {{.TotalPieces}}
- **Lines:** {{.TotalLines}}
{{- range $size, $n := .ClearsBySize}}{{if $size}}
  - **{{$size}}-line clears:** {{$n}}{{end}}{{end}}
- **Games Over:** {{.GameOvers}}
- **Best Score:** {{.BestScore}} (seed {{.BestSeed}})
- **Highest Level:** {{.MaxLevel}}
- **Frame Update Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Correctness
- **Invariant Violations:** {{len .Violations}}
{{- range .Violations}}
  - {{.}}
{{- end}}
- **Replay Mismatches:** {{.ReplayMismatches}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"seedEnd": func(base uint64, games int) uint64 {
			return base + uint64(max(games, 1)) - 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
