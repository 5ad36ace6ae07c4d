package audio

import (
	"math"

	"github.com/fitrush/fitrush/internal/core"
)

// generate maps a cue to its synthesized sample buffer. Unknown cues
// return nil.
func generate(cue core.Cue) []byte {
	switch cue {
	case core.CueStart:
		return genStart()
	case core.CueJump:
		return genJump()
	case core.CueScore:
		return genScore()
	case core.CueGameOver:
		return genGameOver()
	}
	return nil
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at
// frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// adsr returns an envelope value at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample at time t seconds.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// softSat applies gentle saturation so stacked notes never clip hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// genStart: two quick ascending notes, the "go" signal when a run
// begins.
func genStart() []byte {
	notes := []float64{392.00, 587.33} // G4 D5
	noteLen := int(0.10 * sampleRate)
	tail := int(0.15 * sampleRate)
	total := len(notes)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.08, 0.3)
			mix[start+j] += fm(t, freq, 2.0, 3.0*env) * env * 0.4
		}
	}

	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genJump: short rising FM pop on each exertion onset.
func genJump() []byte {
	n := int(0.08 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.15)
		freq := 420 + 560*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genScore: bright major arpeggio for each ten-point milestone.
func genScore() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := int(0.07 * sampleRate)
	tail := int(0.20 * sampleRate)
	total := len(notes)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 4.5*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}

	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor phrase with a slight pitch droop.
func genGameOver() []byte {
	n := int(0.70 * sampleRate)
	notes := []struct{ freq, onset float64 }{
		{349.23, 0.00}, // F4
		{293.66, 0.15}, // D4
		{233.08, 0.30}, // Bb3
	}
	mix := make([]float64, n)

	for _, note := range notes {
		start := int(note.onset * sampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / sampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.02)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.09
			mix[i] += s
		}
	}

	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
