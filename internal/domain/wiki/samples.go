package wiki

// sampleEntries is the starter content seeded into an empty wiki.
func sampleEntries() []CreateRequest {
	return []CreateRequest{
		{
			Title:    "Cold Therapy Benefits",
			Summary:  "Research and personal findings on cold exposure therapy",
			Content:  "Cold therapy has shown significant benefits for inflammation reduction, mood improvement, and metabolic health.",
			Tags:     []string{"cold-therapy", "recovery", "inflammation"},
			Category: "Health",
			Status:   StatusPublished,
			Priority: PriorityHigh,
			IsPublic: false,
			Rating:   5,
			RelatedLinks: []Link{
				{
					Title:       "Wim Hof Method",
					URL:         "https://www.wimhofmethod.com",
					Description: "Official Wim Hof breathing and cold exposure techniques",
				},
			},
		},
		{
			Title:    "Intermittent Fasting Protocol",
			Summary:  "My 16:8 intermittent fasting routine and results",
			Content:  "Started with 16:8 protocol, eating window from 12pm-8pm. Noticed improved focus and energy levels.",
			Tags:     []string{"nutrition", "fasting", "protocol"},
			Category: "Nutrition",
			Status:   StatusPublished,
			Priority: PriorityMedium,
			IsPublic: true,
			Rating:   4,
		},
	}
}
