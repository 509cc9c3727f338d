package media

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/brain-splash/audio"
)

// TrackSink is the part of audio.SoundManager the soundtrack needs
type TrackSink interface {
	PlayTrack(s beep.Streamer, format beep.Format, onEnded func()) error
	StopTrack()
	SampleRate() beep.SampleRate
}

// SoundtrackPlayer plays an audio-only intro through the speaker
// WAV intros are streamed from disk, anything else gets the generated intro
type SoundtrackPlayer struct {
	sink     TrackSink
	fallback time.Duration
	track    string // Overrides the intro path when set

	mu     sync.Mutex
	closer io.Closer
}

// NewSoundtrackPlayer creates a player writing to sink, fallback sets the generated intro length
func NewSoundtrackPlayer(sink TrackSink, fallback time.Duration) *SoundtrackPlayer {
	return &SoundtrackPlayer{sink: sink, fallback: fallback}
}

func (p *SoundtrackPlayer) Name() string {
	return "soundtrack"
}

// SetTrack makes Play use path instead of the shared intro
func (p *SoundtrackPlayer) SetTrack(path string) {
	p.track = path
}

// Play streams path when it is a WAV file, otherwise the generated intro
func (p *SoundtrackPlayer) Play(path string, onEnded func()) error {
	p.Stop()
	if p.track != "" {
		path = p.track
	}

	var (
		s      beep.Streamer
		format beep.Format
		closer io.Closer
	)
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		ssc, f, err := audio.LoadWAV(path)
		if err != nil {
			return err
		}
		s, format, closer = ssc, f, ssc
	} else {
		sr := p.sink.SampleRate()
		s = audio.NewIntroGenerator(sr, p.fallback)
		format = beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	}

	if err := p.sink.PlayTrack(s, format, onEnded); err != nil {
		if closer != nil {
			closer.Close()
		}
		return fmt.Errorf("soundtrack: %w", err)
	}

	p.mu.Lock()
	p.closer = closer
	p.mu.Unlock()
	return nil
}

// Stop halts the track and releases its file
func (p *SoundtrackPlayer) Stop() {
	p.sink.StopTrack()

	p.mu.Lock()
	closer := p.closer
	p.closer = nil
	p.mu.Unlock()

	if closer != nil {
		closer.Close()
	}
}
