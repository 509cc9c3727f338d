package engine

// Phase is the interaction lifecycle stage of the splash
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActivating
	PhaseLinksAnimating
	PhaseRecombining
	PhaseMediaPlaying
	PhaseDone
)

var phaseNames = [...]string{
	PhaseIdle:           "idle",
	PhaseActivating:     "activating",
	PhaseLinksAnimating: "links",
	PhaseRecombining:    "recombining",
	PhaseMediaPlaying:   "media",
	PhaseDone:           "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// AcceptsInput reports whether pointer activations are processed in this phase
func (p Phase) AcceptsInput() bool {
	return p == PhaseIdle || p == PhaseActivating
}

// Suspended reports whether the frame loop is parked until reset
func (p Phase) Suspended() bool {
	return p == PhaseMediaPlaying || p == PhaseDone
}
