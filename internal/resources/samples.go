package resources

// DefaultResources returns the built-in library.
func DefaultResources() []Resource {
	return []Resource{
		{
			ID:          "1",
			Title:       "Breathing Techniques for Anxiety",
			Description: "Learn simple breathing exercises to manage anxiety and panic attacks in real-time.",
			Type:        TypeVideo,
			Category:    "Anxiety Management",
			Duration:    "8 min",
			Languages:   []string{"English", "Hindi", "Marathi"},
			Rating:      4.8,
			Downloads:   1250,
			Tags:        []string{"anxiety", "breathing", "quick-relief"},
		},
		{
			ID:          "2",
			Title:       "Progressive Muscle Relaxation",
			Description: "Guided audio session to release physical tension and promote deep relaxation.",
			Type:        TypeAudio,
			Category:    "Stress Relief",
			Duration:    "15 min",
			Languages:   []string{"English", "Tamil", "Telugu"},
			Rating:      4.9,
			Downloads:   890,
			Tags:        []string{"relaxation", "sleep", "tension"},
		},
		{
			ID:          "3",
			Title:       "Understanding Depression: A Student's Guide",
			Description: "Comprehensive guide covering symptoms, causes, and coping strategies for depression.",
			Type:        TypeGuide,
			Category:    "Depression Support",
			Languages:   []string{"English", "Hindi", "Bengali"},
			Rating:      4.7,
			Downloads:   2100,
			Tags:        []string{"depression", "education", "coping"},
		},
		{
			ID:          "4",
			Title:       "Daily Mood Tracker",
			Description: "Printable worksheet to track your mood patterns and identify triggers.",
			Type:        TypeWorksheet,
			Category:    "Self-Monitoring",
			Languages:   []string{"English", "Gujarati", "Punjabi"},
			Rating:      4.6,
			Downloads:   1680,
			Tags:        []string{"mood", "tracking", "self-awareness"},
		},
		{
			ID:          "5",
			Title:       "Mindfulness Meditation for Students",
			Description: "10-minute guided meditation specifically designed for busy college students.",
			Type:        TypeAudio,
			Category:    "Mindfulness",
			Duration:    "10 min",
			Languages:   []string{"English", "Hindi", "Kannada"},
			Rating:      4.8,
			Downloads:   1420,
			Tags:        []string{"mindfulness", "meditation", "focus"},
		},
		{
			ID:          "6",
			Title:       "Managing Academic Stress",
			Description: "Practical strategies for handling exam pressure and academic expectations.",
			Type:        TypeVideo,
			Category:    "Academic Support",
			Duration:    "12 min",
			Languages:   []string{"English", "Hindi", "Malayalam"},
			Rating:      4.9,
			Downloads:   1890,
			Tags:        []string{"academic", "stress", "exams"},
		},
	}
}
