// Package pose defines the body-landmark data model and the delivery
// channel between an external pose estimator and the game's frame loop.
// The package never does pose estimation itself; it only carries the
// estimator's output.
package pose

// Landmark indexes a named body keypoint. The enumeration follows the
// MediaPipe Pose topology (33 landmarks) so browser-side estimators can
// stream their output without remapping.
type Landmark int

const (
	Nose          Landmark = 0
	LeftShoulder  Landmark = 11
	RightShoulder Landmark = 12
	LeftElbow     Landmark = 13
	RightElbow    Landmark = 14
	LeftWrist     Landmark = 15
	RightWrist    Landmark = 16
	LeftHip       Landmark = 23
	RightHip      Landmark = 24
	LeftKnee      Landmark = 25
	RightKnee     Landmark = 26
	LeftAnkle     Landmark = 27
	RightAnkle    Landmark = 28

	// LandmarkCount is the size of the fixed landmark set.
	LandmarkCount = 33
)

// Keypoint is one detected landmark: a 2D position in normalized image
// coordinates (y grows downward) and a visibility confidence in [0,1].
type Keypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// Sample is a snapshot of all landmarks for one frame. A nil *Sample
// means no person was detected (or confidence was too low); consumers
// treat that as a resting state, never as an error.
type Sample struct {
	Points [LandmarkCount]Keypoint
}

// At returns the keypoint for the given landmark.
func (s *Sample) At(lm Landmark) Keypoint {
	return s.Points[lm]
}

// Visible reports whether the landmark's visibility clears the given
// confidence threshold.
func (s *Sample) Visible(lm Landmark, threshold float64) bool {
	return s.Points[lm].Visibility >= threshold
}
