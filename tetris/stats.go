package tetris

import "github.com/kamstrup/intmap"

// MaxClear is the most rows a single lock can clear.
const MaxClear = 4

// Stats accumulates counters over the lifetime of a game.
type Stats struct {
	spawns   *intmap.Map[Kind, int]
	clears   *intmap.Map[int, int]
	locks    int
	lines    int
	hardRows int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Kind, int](KindCount),
		clears: intmap.New[int, int](MaxClear + 1),
	}
}

func (s *Stats) recordSpawn(k Kind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locks++
	s.lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *Stats) recordHardDrop(rows int) {
	s.hardRows += rows
}

// StatsSnapshot is a point-in-time copy of a game's counters.
type StatsSnapshot struct {
	Spawns       [KindCount]int
	ClearsBySize [MaxClear + 1]int
	Locks        int
	Lines        int
	HardDropRows int
}

// TotalSpawns returns the number of pieces spawned.
func (s StatsSnapshot) TotalSpawns() int {
	total := 0
	for _, n := range s.Spawns {
		total += n
	}
	return total
}

func (s *Stats) snapshot() StatsSnapshot {
	out := StatsSnapshot{
		Locks:        s.locks,
		Lines:        s.lines,
		HardDropRows: s.hardRows,
	}
	for _, k := range Kinds {
		out.Spawns[k], _ = s.spawns.Get(k)
	}
	for size := 0; size <= MaxClear; size++ {
		out.ClearsBySize[size], _ = s.clears.Get(size)
	}
	return out
}
