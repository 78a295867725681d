package mindfulness

// MeditationPreset is a quick-meditation duration choice.
type MeditationPreset struct {
	Label   string `json:"label"`
	Seconds int    `json:"seconds"`
}

// MeditationPresets is the built-in set of sit lengths.
var MeditationPresets = []MeditationPreset{
	{Label: "1 min", Seconds: 60},
	{Label: "3 min", Seconds: 180},
	{Label: "5 min", Seconds: 300},
}

// MeditationPrompt returns the guidance line for a sit that is progress
// percent complete.
func MeditationPrompt(progress float64) string {
	switch {
	case progress < 25:
		return "Focus on your breath..."
	case progress < 50:
		return "Let thoughts pass like clouds..."
	case progress < 75:
		return "Find your inner calm..."
	default:
		return "Almost there, stay present..."
	}
}
