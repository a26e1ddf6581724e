package behaviour

import "math"

// Time carries frame timing for components. The engine advances it once per
// frame before running updates.
var Time = &FrameTime{}

type FrameTime struct {
	DeltaTime float32 // Seconds since the previous frame
	Elapsed   float64 // Seconds since the first frame
	Frame     uint64
}

// Advance records a new frame. Negative or non-finite deltas count as zero.
func (t *FrameTime) Advance(deltaTime float64) {
	if deltaTime < 0 || math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		deltaTime = 0
	}
	t.DeltaTime = float32(deltaTime)
	t.Elapsed += deltaTime
	t.Frame++
}

func (t *FrameTime) Reset() {
	*t = FrameTime{}
}
