package loop

import "time"

// Stage is one step of a frame: reading input, advancing the simulation,
// drawing. Stages keep whatever state they need between frames in their
// own fields.
type Stage interface {
	Execute(frame *Frame)
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc func(frame *Frame)

func (f StageFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame carries per-frame data through every stage.
type Frame struct {
	DeltaTime time.Duration
	Index     uint64

	defers []func()
}

func newFrame(dt time.Duration, index uint64) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
	}
}

// Defer queues fn to run after every stage of this frame has executed.
// Deferred functions run in the order they were queued.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
