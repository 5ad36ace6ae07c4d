// Package audio plays the engine's sound cues as procedurally
// synthesized stereo tones. No sample assets; every cue is generated on
// demand and played fire-and-forget.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float samples (oto.FormatFloat32LE)
)

// System owns the audio device. A nil *System is valid and drops every
// cue silently, so callers never branch on whether audio came up.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *log.Logger
}

// New opens the audio device. Disabled config yields a nil system with
// no error.
func New(cfg config.AudioConfig, logger *log.Logger) (*System, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	return &System{
		ctx:    ctx,
		ready:  ready,
		volume: core.ClampF(cfg.Volume, 0, 1),
		logger: logger,
	}, nil
}

// Play synthesizes the cue's tone and plays it on a throwaway goroutine.
// Cues arriving before the device is ready are dropped rather than
// queued; a missed blip never matters a frame later.
func (s *System) Play(cue core.Cue) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}

	samples := generate(cue)
	if len(samples) == 0 {
		s.logger.Debug("no tone for cue", "cue", cue)
		return
	}

	go func() {
		p := s.ctx.NewPlayer(&sampleReader{data: samples})
		p.SetVolume(s.volume)
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}

// PlayAll plays every cue of a step result in order.
func (s *System) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		s.Play(c)
	}
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
