package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Policy decides which kinds are appended to the spawn queue each time it
// runs low. Every call must return at least one kind.
type Policy interface {
	Refill(rng *rand.Rand) []Kind
	Name() string
}

type bagPolicy struct{}

// Refill returns all seven kinds in shuffled order.
func (bagPolicy) Refill(rng *rand.Rand) []Kind {
	bag := Kinds
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag[:]
}

func (bagPolicy) Name() string { return "bag" }

type uniformPolicy struct{}

func (uniformPolicy) Refill(rng *rand.Rand) []Kind {
	return []Kind{Kinds[rng.IntN(KindCount)]}
}

func (uniformPolicy) Name() string { return "uniform" }

type sequencePolicy struct {
	kinds []Kind
}

func (p sequencePolicy) Refill(*rand.Rand) []Kind {
	return p.kinds
}

func (p sequencePolicy) Name() string { return "sequence" }

var (
	// Bag deals the seven kinds in shuffled groups, so each kind appears
	// exactly once per seven spawns.
	Bag Policy = bagPolicy{}
	// Uniform picks each kind independently and uniformly.
	Uniform Policy = uniformPolicy{}
)

// Sequence returns a policy that repeats the given kinds in order. It is
// useful for presets and deterministic tests.
func Sequence(kinds ...Kind) Policy {
	if len(kinds) == 0 {
		panic("sequence policy needs at least one kind")
	}
	return sequencePolicy{kinds: append([]Kind(nil), kinds...)}
}

// ParsePolicy returns the random spawn policy registered under name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case Bag.Name():
		return Bag, nil
	case Uniform.Name():
		return Uniform, nil
	}
	return nil, fmt.Errorf("unknown spawn policy %q", name)
}

// SpawnController owns the queue of upcoming kinds and places new pieces.
type SpawnController struct {
	policy  Policy
	rng     *rand.Rand
	queue   []Kind
	preview int
	anchor  Point
}

// NewSpawnController creates a controller that keeps at least preview
// kinds queued beyond the one about to spawn.
func NewSpawnController(policy Policy, seed uint64, preview int, anchor Point) *SpawnController {
	if policy == nil {
		policy = Bag
	}
	s := &SpawnController{
		policy:  policy,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		preview: max(preview, 0),
		anchor:  anchor,
	}
	s.fill()
	return s
}

// SpawnAnchor returns the spawn anchor for a board of the given size.
func SpawnAnchor(width, height int) Point {
	return Point{X: (width - 1) / 2, Y: height - 2}
}

func (s *SpawnController) fill() {
	for len(s.queue) <= s.preview {
		s.queue = append(s.queue, s.policy.Refill(s.rng)...)
	}
}

// Spawn removes the head of the queue and returns it as a piece at the
// spawn anchor in R0. The caller checks the placement for legality.
func (s *SpawnController) Spawn() Piece {
	s.fill()
	kind := s.queue[0]
	s.queue = s.queue[1:]
	s.fill()
	return NewPiece(kind, s.anchor)
}

// Peek returns up to n upcoming kinds without consuming them.
func (s *SpawnController) Peek(n int) []Kind {
	n = max(n, 0)
	for len(s.queue) < n {
		s.queue = append(s.queue, s.policy.Refill(s.rng)...)
	}
	out := make([]Kind, n)
	copy(out, s.queue)
	return out
}

// Anchor returns the spawn anchor.
func (s *SpawnController) Anchor() Point {
	return s.anchor
}

// Policy returns the replenishment policy.
func (s *SpawnController) Policy() Policy {
	return s.policy
}
