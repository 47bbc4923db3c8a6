package template

// Builtin returns a fresh copy of the catalog seeded into an empty store.
func Builtin() []Template {
	return []Template{
		{
			ID:          "template-1",
			Name:        "Cold Shower Protocol",
			Description: "Gradual cold exposure to improve energy, mood, and resilience",
			Category:    "Temperature",
			Difficulty:  DifficultyBeginner,
			Duration:    30,
			Goal:        "Energy & Mood",
			Rating:      4.8,
			Variables:   []string{"Water Temperature", "Duration", "Time of Day"},
			Metrics:     []string{"Energy Level", "Mood", "Sleep Quality", "Stress Level"},
		},
		{
			ID:          "template-2",
			Name:        "Intermittent Fasting 16:8",
			Description: "16-hour fast with 8-hour eating window to improve metabolic health",
			Category:    "Nutrition",
			Difficulty:  DifficultyBeginner,
			Duration:    21,
			Goal:        "Weight & Focus",
			Rating:      4.6,
			Variables:   []string{"Eating Window", "Food Choices", "Hydration"},
			Metrics:     []string{"Weight", "Focus", "Energy", "Hunger Levels"},
		},
		{
			ID:          "template-3",
			Name:        "Blue Light Blocking",
			Description: "Block blue light 2 hours before bed to improve sleep quality",
			Category:    "Sleep",
			Difficulty:  DifficultyBeginner,
			Duration:    14,
			Goal:        "Sleep Quality",
			Rating:      4.7,
			Variables:   []string{"Blue Light Glasses", "Screen Time", "Room Lighting"},
			Metrics:     []string{"Sleep Quality", "Sleep Duration", "Morning Alertness"},
		},
		{
			ID:          "template-4",
			Name:        "Wim Hof Breathing",
			Description: "Controlled breathing technique for stress reduction and energy",
			Category:    "Breathing",
			Difficulty:  DifficultyIntermediate,
			Duration:    28,
			Goal:        "Stress & Energy",
			Rating:      4.9,
			Variables:   []string{"Breathing Rounds", "Hold Duration", "Practice Time"},
			Metrics:     []string{"Stress Level", "Energy", "Focus", "Heart Rate Variability"},
		},
		{
			ID:          "template-5",
			Name:        "Polyphasic Sleep",
			Description: "Alternative sleep schedule with multiple short naps",
			Category:    "Sleep",
			Difficulty:  DifficultyAdvanced,
			Duration:    60,
			Goal:        "Time & Productivity",
			Rating:      3.8,
			Variables:   []string{"Sleep Schedule", "Nap Duration", "Core Sleep"},
			Metrics:     []string{"Alertness", "Productivity", "Mood", "Cognitive Performance"},
		},
		{
			ID:          "template-6",
			Name:        "Elimination Diet",
			Description: "Remove common allergens to identify food sensitivities",
			Category:    "Nutrition",
			Difficulty:  DifficultyIntermediate,
			Duration:    45,
			Goal:        "Health & Digestion",
			Rating:      4.4,
			Variables:   []string{"Eliminated Foods", "Reintroduction Schedule"},
			Metrics:     []string{"Digestion", "Energy", "Mood", "Skin Quality", "Inflammation"},
		},
	}
}
