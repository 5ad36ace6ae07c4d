package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/fitrush/fitrush/internal/core"
)

func TestGenerateProducesBuffers(t *testing.T) {
	for _, cue := range []core.Cue{core.CueStart, core.CueJump, core.CueScore, core.CueGameOver} {
		buf := generate(cue)
		if len(buf) == 0 {
			t.Errorf("no samples for cue %q", cue)
			continue
		}
		if len(buf)%8 != 0 {
			t.Errorf("cue %q buffer length %d is not whole stereo frames", cue, len(buf))
		}
	}
}

func TestGenerateUnknownCueIsNil(t *testing.T) {
	if buf := generate(core.Cue("bogus")); buf != nil {
		t.Errorf("unknown cue produced %d bytes", len(buf))
	}
}

func TestSamplesStayInRange(t *testing.T) {
	for _, cue := range []core.Cue{core.CueStart, core.CueJump, core.CueScore, core.CueGameOver} {
		buf := generate(cue)
		for i := 0; i+4 <= len(buf); i += 4 {
			s := math.Float32frombits(binary.LittleEndian.Uint32(buf[i : i+4]))
			if s < -1 || s > 1 || math.IsNaN(float64(s)) {
				t.Fatalf("cue %q sample %d out of range: %v", cue, i/4, s)
			}
		}
	}
}

func TestAdsrEnvelope(t *testing.T) {
	if v := adsr(0, 0.1, 0.2, 0.5, 0.2); v != 0 {
		t.Errorf("envelope should start at 0, got %v", v)
	}
	if v := adsr(0.1, 0.1, 0.2, 0.5, 0.2); math.Abs(v-1) > 1e-9 {
		t.Errorf("envelope should peak after the attack, got %v", v)
	}
	if v := adsr(0.5, 0.1, 0.2, 0.5, 0.2); v != 0.5 {
		t.Errorf("sustain level = %v, expected 0.5", v)
	}
	if v := adsr(0.999, 0.1, 0.2, 0.5, 0.2); v > 0.01 {
		t.Errorf("envelope should decay to near 0, got %v", v)
	}
}

func TestSoftSatBounds(t *testing.T) {
	for _, x := range []float64{-10, -2, -1, -0.5, 0, 0.5, 1, 2, 10} {
		y := softSat(x)
		if y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v, escapes [-1, 1]", x, y)
		}
	}
	if softSat(0) != 0 {
		t.Error("softSat should pass silence through")
	}
}

func TestNilSystemDropsCues(t *testing.T) {
	var s *System
	s.Play(core.CueJump) // Must not panic
	s.PlayAll([]core.Cue{core.CueStart, core.CueScore})
}
