package mindfulness

// ExerciseType classifies a catalog entry.
type ExerciseType string

const (
	ExerciseBreathing  ExerciseType = "breathing"
	ExerciseReflection ExerciseType = "reflection"
	ExerciseQuote      ExerciseType = "quote"
)

// Exercise is one mindfulness catalog entry. Duration is in minutes and only
// set for timed exercises.
type Exercise struct {
	ID       string       `json:"id"`
	Type     ExerciseType `json:"type"`
	Content  string       `json:"content"`
	Duration int          `json:"duration,omitempty"`
}

var breathingExercises = []Exercise{
	{ID: "1", Type: ExerciseBreathing, Content: "4-7-8 Breathing: Inhale for 4 counts, hold for 7 counts, exhale for 8 counts. Repeat 4 times.", Duration: 2},
	{ID: "2", Type: ExerciseBreathing, Content: "Box Breathing: Inhale for 4, hold for 4, exhale for 4, hold for 4. Create a steady rhythm.", Duration: 3},
	{ID: "3", Type: ExerciseBreathing, Content: "Deep Belly Breathing: Place one hand on your chest, one on your belly. Breathe deeply into your belly for 5 minutes.", Duration: 5},
}

var reflectionPrompts = []Exercise{
	{ID: "4", Type: ExerciseReflection, Content: "What are three things you're grateful for in this moment?"},
	{ID: "5", Type: ExerciseReflection, Content: "How can you bring more intention to the rest of your day?"},
	{ID: "6", Type: ExerciseReflection, Content: "What would you like to let go of today?"},
	{ID: "7", Type: ExerciseReflection, Content: "Describe how your body feels right now without judgment."},
}

var motivationalQuotes = []Exercise{
	{ID: "8", Type: ExerciseQuote, Content: `"The present moment is the only time over which we have dominion." - Thích Nhất Hạnh`},
	{ID: "9", Type: ExerciseQuote, Content: `"You cannot stop the waves, but you can learn to surf." - Jon Kabat-Zinn`},
	{ID: "10", Type: ExerciseQuote, Content: `"The mind is everything. What you think you become." - Buddha`},
	{ID: "11", Type: ExerciseQuote, Content: `"In the midst of movement and chaos, keep stillness inside of you." - Deepak Chopra`},
	{ID: "12", Type: ExerciseQuote, Content: `"Feelings come and go like clouds in a windy sky. Conscious breathing is my anchor." - Thích Nhất Hạnh`},
}

// Catalog returns the full exercise catalog, optionally filtered by type.
// An empty filter returns everything.
func Catalog(filter ExerciseType) []Exercise {
	all := make([]Exercise, 0, len(breathingExercises)+len(reflectionPrompts)+len(motivationalQuotes))
	all = append(all, breathingExercises...)
	all = append(all, reflectionPrompts...)
	all = append(all, motivationalQuotes...)

	if filter == "" {
		return all
	}
	out := all[:0]
	for _, e := range all {
		if e.Type == filter {
			out = append(out, e)
		}
	}
	return out
}
