// Package mindfulness holds the guided-breathing state machine and the
// static catalog of exercises, reflection prompts, and quotes.
package mindfulness

import "fmt"

// Phase is one stage of a breathing cycle.
type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold1  Phase = "hold1"
	PhaseExhale Phase = "exhale"
	PhaseHold2  Phase = "hold2"
)

// Label returns the instruction shown for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseInhale:
		return "Breathe In"
	case PhaseExhale:
		return "Breathe Out"
	default:
		return "Hold"
	}
}

// Pattern defines the per-phase durations, in seconds, of one breathing
// cycle. A zero duration removes the phase from the cycle.
type Pattern struct {
	Name   string  `json:"name"`
	Inhale float64 `json:"inhale"`
	Hold1  float64 `json:"hold1"`
	Exhale float64 `json:"exhale"`
	Hold2  float64 `json:"hold2"`
}

// Patterns is the built-in pattern catalog.
var Patterns = []Pattern{
	{Name: "4-7-8 Breathing", Inhale: 4, Hold1: 7, Exhale: 8, Hold2: 0},
	{Name: "Box Breathing", Inhale: 4, Hold1: 4, Exhale: 4, Hold2: 4},
	{Name: "Deep Calm", Inhale: 5, Hold1: 5, Exhale: 7, Hold2: 3},
}

// PatternByName looks a pattern up in the catalog.
func PatternByName(name string) (Pattern, bool) {
	for _, p := range Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Duration returns the pattern's duration for the phase.
func (p Pattern) Duration(ph Phase) float64 {
	switch ph {
	case PhaseInhale:
		return p.Inhale
	case PhaseHold1:
		return p.Hold1
	case PhaseExhale:
		return p.Exhale
	case PhaseHold2:
		return p.Hold2
	}
	return 0
}

// Total returns the length of one full cycle in seconds.
func (p Pattern) Total() float64 {
	return p.Inhale + p.Hold1 + p.Exhale + p.Hold2
}

// phaseNext is the transition table of the cycle. Completing hold2 (or
// exhale when hold2 is absent) wraps back to inhale and counts a cycle.
var phaseNext = map[Phase]Phase{
	PhaseInhale: PhaseHold1,
	PhaseHold1:  PhaseExhale,
	PhaseExhale: PhaseHold2,
	PhaseHold2:  PhaseInhale,
}

// BreathingSession tracks progress through a breathing pattern. It is a pure
// state machine: callers drive it by calling Advance with elapsed seconds,
// so no timer is needed to exercise it.
type BreathingSession struct {
	pattern   Pattern
	phase     Phase
	remaining float64
	cycles    int
}

// NewBreathingSession starts a session at the inhale phase of the pattern.
func NewBreathingSession(p Pattern) (*BreathingSession, error) {
	if p.Inhale <= 0 || p.Exhale <= 0 {
		return nil, fmt.Errorf("pattern %q must have positive inhale and exhale durations", p.Name)
	}

	return &BreathingSession{
		pattern:   p,
		phase:     PhaseInhale,
		remaining: p.Inhale,
	}, nil
}

// Phase returns the current phase.
func (s *BreathingSession) Phase() Phase { return s.phase }

// Remaining returns the seconds left in the current phase.
func (s *BreathingSession) Remaining() float64 { return s.remaining }

// Cycles returns the number of completed full cycles.
func (s *BreathingSession) Cycles() int { return s.cycles }

// Pattern returns the pattern the session runs.
func (s *BreathingSession) Pattern() Pattern { return s.pattern }

// Progress returns how far through the current cycle the session is, 0-100.
func (s *BreathingSession) Progress() float64 {
	elapsed := -s.remaining
	for ph := PhaseInhale; ; ph = phaseNext[ph] {
		elapsed += s.pattern.Duration(ph)
		if ph == s.phase {
			break
		}
	}
	return elapsed / s.pattern.Total() * 100
}

// Advance moves the session forward by dt seconds, crossing phase
// boundaries as needed. Zero-duration phases are skipped.
func (s *BreathingSession) Advance(dt float64) {
	s.remaining -= dt
	for s.remaining <= 0 {
		carry := s.remaining
		s.enterNext()
		s.remaining += carry
	}
}

// enterNext transitions to the next phase with a positive duration,
// counting a cycle each time the machine wraps back to inhale.
func (s *BreathingSession) enterNext() {
	for {
		s.phase = phaseNext[s.phase]
		if s.phase == PhaseInhale {
			s.cycles++
		}
		if d := s.pattern.Duration(s.phase); d > 0 {
			s.remaining = d
			return
		}
	}
}

// Reset returns the session to the start of the inhale phase with zero
// completed cycles.
func (s *BreathingSession) Reset() {
	s.phase = PhaseInhale
	s.remaining = s.pattern.Inhale
	s.cycles = 0
}
