package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates the short bright click played on hotspot activation
type ChimeGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewChimeGenerator creates a chime lasting d
func NewChimeGenerator(sr beep.SampleRate, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		samples: sr.N(d),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus a fifth, quick exponential decay
		envelope := math.Exp(-t * 28)
		attack := math.Min(t/0.002, 1.0)
		sample := 0.22 * math.Sin(2*math.Pi*1320*t)
		sample += 0.12 * math.Sin(2*math.Pi*1980*t)
		sample *= envelope * attack

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// IntroGenerator generates a synth swell used when no intro soundtrack file exists
type IntroGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	beat    int
}

// NewIntroGenerator creates an intro lasting d
func NewIntroGenerator(sr beep.SampleRate, d time.Duration) *IntroGenerator {
	return &IntroGenerator{
		sr:      sr,
		samples: sr.N(d),
		beat:    sr.N(time.Millisecond * 500), // 120 BPM
	}
}

func (g *IntroGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(time.Millisecond * 100)
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// Kick on every beat
		kick := 0.0
		beatPos := g.pos % g.beat
		if beatPos < kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(kickLen)
			kickFreq := 55 * (1 + 2*kickEnv)
			kick = 0.35 * kickEnv * math.Sin(2*math.Pi*kickFreq*float64(beatPos)/float64(g.sr))
		}

		// Rising pad, A minor triad
		pad := 0.0
		for _, f := range [...]float64{220, 261.63, 329.63} {
			pad += math.Sin(2 * math.Pi * f * (1 + 0.5*progress) * t)
		}
		pad *= 0.06 * math.Sin(math.Pi*progress)

		sample := kick + pad

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *IntroGenerator) Err() error {
	return nil
}
