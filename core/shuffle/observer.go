package shuffle

// StepEvent describes one swap step. When Index == Chosen no elements moved;
// the event is still delivered because "no swap needed" is meaningful to
// visualizers.
type StepEvent[T any] struct {
	Index  int // position being finalized
	Chosen int // index drawn from [0, Index]
	Before []T // snapshot of the sequence prior to the swap
}

// Swapped reports whether the step actually moved elements.
func (ev StepEvent[T]) Swapped() bool { return ev.Index != ev.Chosen }

// Observer receives step events during a shuffle.
type Observer[T any] interface {
	Step(StepEvent[T])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(StepEvent[T])

func (f ObserverFunc[T]) Step(ev StepEvent[T]) { f(ev) }
