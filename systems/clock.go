package systems

import "github.com/yohamta/donburi/ecs"

// UpdateClock returns a system that records the frame delta reported by delta.
// It runs first so every later system sees the same delta.
func UpdateClock(delta func() float64) ecs.System {
	return func(e *ecs.ECS) {
		clock := GetOrCreateClock(e)
		clock.Delta = delta()
		clock.Elapsed += clock.Delta
		clock.Frame++
	}
}

// FixedDelta reports 1/tps every frame.
func FixedDelta(tps int) func() float64 {
	dt := 1.0 / float64(tps)
	return func() float64 { return dt }
}
