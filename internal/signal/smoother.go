package signal

// Smoothing and hysteresis constants. The 0.6-up / 0.4-down band keeps a
// wobbling signal from re-triggering at a single threshold.
const (
	smoothingCarry  = 0.8
	smoothingWeight = 0.2
	exertOnLevel    = 0.6
	exertOffLevel   = 0.4
)

// Smooth blends the previous smoothed intensity with a new raw sample.
// The coefficients sum to 1, so the result stays in [0,1] whenever the
// inputs do.
func Smooth(prev, raw float64) float64 {
	return prev*smoothingCarry + raw*smoothingWeight
}

// Smoother carries the filtered intensity across frames and detects
// rising-edge exertion events. It is the only engine state besides the
// avatar that survives from one frame to the next.
type Smoother struct {
	value    float64
	exerting bool
}

// Update feeds one raw intensity sample. It returns the new smoothed
// value and whether an exertion event fired this frame: exactly one
// event per upward crossing of the on level, re-armed only after the
// signal falls below the off level.
func (s *Smoother) Update(raw float64) (smoothed float64, exerted bool) {
	s.value = Smooth(s.value, raw)

	if !s.exerting && s.value > exertOnLevel {
		s.exerting = true
		exerted = true
	} else if s.exerting && s.value < exertOffLevel {
		s.exerting = false
	}

	return s.value, exerted
}

// Value returns the current smoothed intensity.
func (s *Smoother) Value() float64 {
	return s.value
}

// Exerting returns the hysteresis latch state.
func (s *Smoother) Exerting() bool {
	return s.exerting
}

// Reset clears the filter and the latch.
func (s *Smoother) Reset() {
	s.value = 0
	s.exerting = false
}
