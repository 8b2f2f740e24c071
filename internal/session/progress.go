package session

import "time"

// LinesPerLevel is how many cleared lines advance the level.
const LinesPerLevel = 10

var lineScores = [...]int{0, 100, 300, 500, 800}

// Progress tracks score and level for one game.
type Progress struct {
	Score int
	Level int
	Lines int
}

func NewProgress() Progress {
	return Progress{Level: 1}
}

// Clear records a lock that completed lines rows and reports whether the
// level went up.
func (p *Progress) Clear(lines int) bool {
	if lines <= 0 {
		return false
	}
	p.Score += lineScores[min(lines, len(lineScores)-1)] * p.Level
	p.Lines += lines

	level := p.Lines/LinesPerLevel + 1
	if level == p.Level {
		return false
	}
	p.Level = level
	return true
}

// FallIntervalFor speeds gravity up by a tenth of the base rate per level.
func FallIntervalFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return time.Duration(float64(base) / (1 + 0.1*float64(level-1)))
}
