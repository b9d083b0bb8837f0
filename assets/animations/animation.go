package animations

// Range is an inclusive span of sprite sheet frame indices.
type Range struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Len returns the number of frames in the range.
func (r Range) Len() int {
	return r.Last - r.First + 1
}

// EventKind identifies what an Animator did during a Tick or SetRange.
type EventKind int

const (
	EventStep EventKind = iota
	EventLoop
	EventHold
	EventRange
)

func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventLoop:
		return "loop"
	case EventHold:
		return "hold"
	case EventRange:
		return "range"
	}
	return "unknown"
}

// Event is emitted to a Tracer every time the displayed frame changes or would change.
type Event struct {
	Kind  EventKind
	Frame int
	Range Range
	Loops bool
}

// Tracer observes animator activity. Nil tracers are never called.
type Tracer func(Event)

// Animator steps a frame index through a Range on a seconds-based timer.
type Animator struct {
	rng     Range
	frame   int
	elapsed float64
	Period  float64 // seconds per frame
	Loops   bool
	Tracer  Tracer
}

func NewAnimator(r Range, period float64, loops bool) *Animator {
	return &Animator{
		rng:    r,
		frame:  r.First,
		Period: period,
		Loops:  loops,
	}
}

// Tick accumulates dt and advances once per whole period elapsed, so a long
// frame hitch advances several frames instead of one.
func (a *Animator) Tick(dt float64) {
	if a.Period <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.Period {
		a.elapsed -= a.Period
		a.advance()
	}
}

func (a *Animator) advance() {
	if a.frame < a.rng.Last {
		a.frame++
		a.trace(EventStep)
		return
	}
	if a.Loops {
		a.frame = a.rng.First
		a.trace(EventLoop)
		return
	}
	a.frame = a.rng.Last
	a.trace(EventHold)
}

// SetRange switches clips. Re-selecting the active range keeps the frame and
// timer untouched.
func (a *Animator) SetRange(r Range) {
	if r == a.rng {
		return
	}
	a.rng = r
	a.frame = r.First
	a.elapsed = 0
	a.trace(EventRange)
}

func (a *Animator) SetPeriod(seconds float64) {
	a.Period = seconds
}

func (a *Animator) Frame() int {
	return a.frame
}

func (a *Animator) Range() Range {
	return a.rng
}

func (a *Animator) Elapsed() float64 {
	return a.elapsed
}

// Finished reports whether a non-looping clip is resting on its last frame.
func (a *Animator) Finished() bool {
	return !a.Loops && a.frame == a.rng.Last
}

func (a *Animator) trace(kind EventKind) {
	if a.Tracer == nil {
		return
	}
	a.Tracer(Event{Kind: kind, Frame: a.frame, Range: a.rng, Loops: a.Loops})
}
