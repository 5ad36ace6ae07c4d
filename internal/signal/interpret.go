// Package signal turns pose samples into the normalized exertion signal
// that drives the avatar: a per-mode interpreter producing a raw [0,1]
// intensity, and an exponential smoother with hysteresis edge detection.
package signal

import (
	"fmt"
	"math"

	"github.com/fitrush/fitrush/internal/pose"
)

// Mode selects which exercise the interpreter measures. It is chosen
// once per session and immutable during a run.
type Mode int

const (
	ModeSquat Mode = iota
	ModeArmRaise
	ModeLunge
)

// String returns the mode's identifier as used on the CLI and in storage.
func (m Mode) String() string {
	switch m {
	case ModeSquat:
		return "squat"
	case ModeArmRaise:
		return "armraise"
	case ModeLunge:
		return "lunge"
	default:
		return "unknown"
	}
}

// Title returns a display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSquat:
		return "Squat"
	case ModeArmRaise:
		return "Arm Raise"
	case ModeLunge:
		return "Lunge"
	default:
		return "Unknown"
	}
}

// ParseMode resolves a CLI mode identifier.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "squat":
		return ModeSquat, nil
	case "armraise":
		return ModeArmRaise, nil
	case "lunge":
		return ModeLunge, nil
	default:
		return 0, fmt.Errorf("signal: unknown exercise mode %q", s)
	}
}

// minVisibility is the confidence a landmark needs before a joint
// computation trusts it.
const minVisibility = 0.5

// Reference ranges for joint-angle normalization, in degrees. Smaller
// angles mean a deeper bend, hence the inverse mapping.
const (
	squatAngleMin = 70
	squatAngleMax = 160
	lungeAngleMin = 90
	lungeAngleMax = 160
)

// Angle computes the absolute angle in degrees at vertex b between the
// rays b->a and b->c, reflected into [0,180]. Symmetric in a and c.
func Angle(a, b, c pose.Keypoint) float64 {
	rad := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	deg := math.Abs(rad * 180 / math.Pi)
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}

// Normalize linearly rescales value into [0,1] over [min, max], clamped.
// With inverse set the scale flips, for measurements where smaller means
// more exertion (a bent knee).
func Normalize(value, min, max float64, inverse bool) float64 {
	result := (value - min) / (max - min)
	if result < 0 {
		result = 0
	}
	if result > 1 {
		result = 1
	}
	if inverse {
		return 1 - result
	}
	return result
}

// Interpret maps one pose sample to a raw exertion intensity in [0,1]
// for the active mode. A nil sample reads as resting (0). A required
// landmark below the visibility threshold makes the squat and lunge
// computations untrustworthy, so those return 0 for the frame.
func Interpret(s *pose.Sample, mode Mode) float64 {
	if s == nil {
		return 0
	}

	switch mode {
	case ModeSquat:
		return interpretSquat(s)
	case ModeArmRaise:
		return interpretArmRaise(s)
	case ModeLunge:
		return interpretLunge(s)
	default:
		return 0
	}
}

// interpretSquat measures the left hip-knee-ankle chain.
func interpretSquat(s *pose.Sample) float64 {
	if !s.Visible(pose.LeftHip, minVisibility) ||
		!s.Visible(pose.LeftKnee, minVisibility) ||
		!s.Visible(pose.LeftAnkle, minVisibility) {
		return 0
	}

	angle := Angle(s.At(pose.LeftHip), s.At(pose.LeftKnee), s.At(pose.LeftAnkle))
	return Normalize(angle, squatAngleMin, squatAngleMax, true)
}

// interpretArmRaise is discrete: 1.0 with both wrists above the nose,
// 0.5 with exactly one, 0 otherwise. An invisible wrist counts as not
// raised; without a visible nose there is no reference line.
func interpretArmRaise(s *pose.Sample) float64 {
	if !s.Visible(pose.Nose, minVisibility) {
		return 0
	}
	noseY := s.At(pose.Nose).Y

	raised := 0
	if s.Visible(pose.LeftWrist, minVisibility) && s.At(pose.LeftWrist).Y < noseY {
		raised++
	}
	if s.Visible(pose.RightWrist, minVisibility) && s.At(pose.RightWrist).Y < noseY {
		raised++
	}

	switch raised {
	case 2:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0
	}
}

// interpretLunge scores both legs independently and takes the stronger
// one; either knee bending counts.
func interpretLunge(s *pose.Sample) float64 {
	left := lungeLeg(s, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle)
	right := lungeLeg(s, pose.RightHip, pose.RightKnee, pose.RightAnkle)
	return math.Max(left, right)
}

func lungeLeg(s *pose.Sample, hip, knee, ankle pose.Landmark) float64 {
	if !s.Visible(hip, minVisibility) ||
		!s.Visible(knee, minVisibility) ||
		!s.Visible(ankle, minVisibility) {
		return 0
	}

	angle := Angle(s.At(hip), s.At(knee), s.At(ankle))
	return Normalize(angle, lungeAngleMin, lungeAngleMax, true)
}
