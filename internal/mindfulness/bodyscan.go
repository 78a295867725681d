package mindfulness

// BodyPart is one step of the guided body scan.
type BodyPart struct {
	Name        string  `json:"name"`
	Duration    float64 `json:"duration"` // seconds
	Instruction string  `json:"instruction"`
}

// BodyParts is the scan sequence, toes to whole body.
var BodyParts = []BodyPart{
	{Name: "Toes", Duration: 15, Instruction: "Notice the sensations in your toes. Feel any tension and let it go."},
	{Name: "Feet", Duration: 15, Instruction: "Bring awareness to your feet. Feel them connected to the ground."},
	{Name: "Ankles & Calves", Duration: 20, Instruction: "Move your attention up to your ankles and calves. Release any tightness."},
	{Name: "Knees & Thighs", Duration: 20, Instruction: "Notice your knees and thighs. Let them feel heavy and relaxed."},
	{Name: "Hips & Pelvis", Duration: 20, Instruction: "Scan your hips and pelvis area. Allow them to soften and release."},
	{Name: "Lower Back", Duration: 20, Instruction: "Bring awareness to your lower back. Let any tension melt away."},
	{Name: "Abdomen", Duration: 20, Instruction: "Notice your belly rising and falling with each breath."},
	{Name: "Chest", Duration: 20, Instruction: "Feel your chest expanding and contracting. Notice your heartbeat."},
	{Name: "Shoulders", Duration: 20, Instruction: "Let your shoulders drop and relax. Release the weight you carry."},
	{Name: "Arms & Hands", Duration: 20, Instruction: "Scan down your arms to your fingertips. Let them feel warm and heavy."},
	{Name: "Neck", Duration: 15, Instruction: "Notice any tension in your neck. Gently release it."},
	{Name: "Face & Head", Duration: 20, Instruction: "Relax your jaw, eyes, and forehead. Let your entire face soften."},
	{Name: "Whole Body", Duration: 30, Instruction: "Feel your entire body as one. Notice the calm and peace within."},
}

// BodyScanTotal returns the length of the full scan in seconds.
func BodyScanTotal() float64 {
	var total float64
	for _, p := range BodyParts {
		total += p.Duration
	}
	return total
}

// BodyScanSession steps through the scan sequence. Like BreathingSession it
// is a pure state machine driven by Advance with elapsed seconds, so no
// timer is needed to exercise it.
type BodyScanSession struct {
	index     int
	remaining float64
	elapsed   float64
	done      bool
}

// NewBodyScanSession starts a session at the first body part.
func NewBodyScanSession() *BodyScanSession {
	return &BodyScanSession{remaining: BodyParts[0].Duration}
}

// Part returns the body part currently under attention.
func (s *BodyScanSession) Part() BodyPart { return BodyParts[s.index] }

// Index returns the zero-based position in the sequence.
func (s *BodyScanSession) Index() int { return s.index }

// Remaining returns the seconds left on the current part.
func (s *BodyScanSession) Remaining() float64 { return s.remaining }

// Elapsed returns the seconds spent in the session so far.
func (s *BodyScanSession) Elapsed() float64 { return s.elapsed }

// Done reports whether the final part has run out.
func (s *BodyScanSession) Done() bool { return s.done }

// Progress returns how far through the scan the session is, 0-100.
func (s *BodyScanSession) Progress() float64 {
	return s.elapsed / BodyScanTotal() * 100
}

// Advance moves the session forward by dt seconds, crossing part boundaries
// as needed. Once the final part runs out the session is done and further
// calls are no-ops.
func (s *BodyScanSession) Advance(dt float64) {
	if s.done {
		return
	}

	s.elapsed += dt
	if total := BodyScanTotal(); s.elapsed > total {
		s.elapsed = total
	}

	s.remaining -= dt
	for s.remaining <= 0 {
		if s.index == len(BodyParts)-1 {
			s.remaining = 0
			s.done = true
			return
		}
		carry := s.remaining
		s.index++
		s.remaining = BodyParts[s.index].Duration + carry
	}
}

// Skip jumps to the start of the next part without counting the skipped
// time as elapsed. Skipping from the final part is a no-op.
func (s *BodyScanSession) Skip() {
	if s.done || s.index == len(BodyParts)-1 {
		return
	}
	s.index++
	s.remaining = BodyParts[s.index].Duration
}

// Reset returns the session to the first part with zero elapsed time.
func (s *BodyScanSession) Reset() {
	s.index = 0
	s.remaining = BodyParts[0].Duration
	s.elapsed = 0
	s.done = false
}
