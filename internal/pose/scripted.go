package pose

import (
	"context"
	"math"
	"time"
)

// Sample builders for synthetic poses. They place landmarks with exact
// geometry so a given joint angle reads back precisely, which makes them
// usable both for demo playback and for interpreter tests.

// fullyVisible marks every landmark of s as confidently detected.
func fullyVisible(s *Sample) *Sample {
	for i := range s.Points {
		s.Points[i].Visibility = 1
	}
	return s
}

// legWithKneeAngle positions a hip-knee-ankle chain so the angle at the
// knee is exactly deg. The thigh points straight up from the knee.
func legWithKneeAngle(s *Sample, hip, knee, ankle Landmark, kneeX, deg float64) {
	const limb = 0.2
	rad := deg * math.Pi / 180

	s.Points[knee] = Keypoint{X: kneeX, Y: 0.6}
	s.Points[hip] = Keypoint{X: kneeX, Y: 0.6 - limb}
	s.Points[ankle] = Keypoint{
		X: kneeX + limb*math.Cos(-math.Pi/2+rad),
		Y: 0.6 + limb*math.Sin(-math.Pi/2+rad),
	}
}

// SquatSample builds a pose whose left hip-knee-ankle angle is deg.
func SquatSample(deg float64) *Sample {
	s := &Sample{}
	legWithKneeAngle(s, LeftHip, LeftKnee, LeftAnkle, 0.45, deg)
	legWithKneeAngle(s, RightHip, RightKnee, RightAnkle, 0.55, deg)
	s.Points[Nose] = Keypoint{X: 0.5, Y: 0.2}
	return fullyVisible(s)
}

// LungeSample builds a pose with independent left and right knee angles.
func LungeSample(leftDeg, rightDeg float64) *Sample {
	s := &Sample{}
	legWithKneeAngle(s, LeftHip, LeftKnee, LeftAnkle, 0.4, leftDeg)
	legWithKneeAngle(s, RightHip, RightKnee, RightAnkle, 0.6, rightDeg)
	s.Points[Nose] = Keypoint{X: 0.5, Y: 0.2}
	return fullyVisible(s)
}

// ArmRaiseSample builds a pose with each wrist above or below the nose.
func ArmRaiseSample(leftUp, rightUp bool) *Sample {
	s := &Sample{}
	s.Points[Nose] = Keypoint{X: 0.5, Y: 0.3}

	leftY, rightY := 0.6, 0.6
	if leftUp {
		leftY = 0.15
	}
	if rightUp {
		rightY = 0.15
	}
	s.Points[LeftWrist] = Keypoint{X: 0.35, Y: leftY}
	s.Points[RightWrist] = Keypoint{X: 0.65, Y: rightY}
	return fullyVisible(s)
}

// Generator produces a synthetic sample for an elapsed time. Returning
// nil simulates "no person detected".
type Generator func(elapsed time.Duration) *Sample

// SquatCycle returns a generator oscillating the knee angle between a
// deep bend and standing over the given period.
func SquatCycle(period time.Duration) Generator {
	return func(elapsed time.Duration) *Sample {
		phase := 2 * math.Pi * float64(elapsed) / float64(period)
		// 125 +/- 45 degrees: bottoms out at 80, stands up at 170.
		return SquatSample(125 + 45*math.Cos(phase))
	}
}

// ArmRaiseCycle returns a generator alternating raised and lowered arms.
func ArmRaiseCycle(period time.Duration) Generator {
	return func(elapsed time.Duration) *Sample {
		up := math.Mod(float64(elapsed), float64(period)) < float64(period)/2
		return ArmRaiseSample(up, up)
	}
}

// LungeCycle returns a generator bending one knee at a time.
func LungeCycle(period time.Duration) Generator {
	return func(elapsed time.Duration) *Sample {
		phase := 2 * math.Pi * float64(elapsed) / float64(period)
		left := 125 + 35*math.Cos(phase)
		right := 125 + 35*math.Cos(phase+math.Pi)
		return LungeSample(left, right)
	}
}

// RunScripted publishes generated samples into the mailbox at the given
// rate until the context is cancelled. Used by demo mode so the full
// pipeline runs without a camera.
func RunScripted(ctx context.Context, mailbox *Mailbox, gen Generator, rate time.Duration) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			mailbox.Publish(gen(now.Sub(start)))
		}
	}
}
