package community

import "time"

// Categories lists the discussion categories offered when posting.
var Categories = []string{"All", "Academic Stress", "Social Connection", "Depression Support", "Anxiety", "General"}

// SamplePosts returns the seed discussions, timestamped relative to now.
func SamplePosts(now time.Time) []Post {
	return []Post{
		{
			ID:    "1",
			Title: "Dealing with exam anxiety - what works for you?",
			Content: "I've been struggling with severe anxiety during exams. My heart races, I can't focus, and sometimes I blank out completely. " +
				"Has anyone found techniques that actually help? I've tried breathing exercises but they don't seem to work when I'm really panicked.",
			Author:      Author{Name: AnonymousName, JoinedDate: "2024-01-15"},
			Category:    "Academic Stress",
			Tags:        []string{"anxiety", "exams", "coping-strategies"},
			Timestamp:   now.Add(-2 * time.Hour),
			Likes:       12,
			Replies:     8,
			Views:       45,
			IsAnonymous: true,
			IsModerated: true,
		},
		{
			ID:    "2",
			Title: "Feeling isolated in college - anyone else?",
			Content: "I'm in my second year but still feel like I don't belong here. Everyone seems to have their friend groups already formed. " +
				"I try to join activities but I always feel like an outsider. Sometimes I wonder if I should just transfer.",
			Author:      Author{Name: "Priya M.", Avatar: "/diverse-students-studying.png", JoinedDate: "2023-09-10"},
			Category:    "Social Connection",
			Tags:        []string{"loneliness", "friendship", "belonging"},
			Timestamp:   now.Add(-5 * time.Hour),
			Likes:       18,
			Replies:     15,
			Views:       67,
			IsModerated: true,
		},
		{
			ID:    "3",
			Title: "Tips for managing depression during semester",
			Content: "As someone who's been through multiple depressive episodes during college, I wanted to share what's helped me. " +
				"Remember, these are just my experiences - please seek professional help if you need it.",
			Author:      Author{Name: "Rahul K.", Avatar: "/volunteer-community-garden.png", IsVolunteer: true, JoinedDate: "2022-03-20"},
			Category:    "Depression Support",
			Tags:        []string{"depression", "self-care", "tips"},
			Timestamp:   now.Add(-24 * time.Hour),
			Likes:       34,
			Replies:     22,
			Views:       128,
			IsModerated: true,
		},
	}
}

// SampleGroups returns the seed support groups, active relative to now.
func SampleGroups(now time.Time) []SupportGroup {
	return []SupportGroup{
		{
			ID:           "1",
			Name:         "Anxiety Support Circle",
			Description:  "A safe space for students dealing with anxiety disorders. Share experiences, coping strategies, and support each other.",
			MemberCount:  156,
			Category:     "Anxiety",
			Moderator:    "Dr. Sarah Chen",
			LastActivity: now.Add(-30 * time.Minute),
		},
		{
			ID:           "2",
			Name:         "Academic Stress Warriors",
			Description:  "For students struggling with academic pressure, perfectionism, and study-related stress.",
			MemberCount:  203,
			Category:     "Academic",
			Moderator:    "Prof. Amit Sharma",
			LastActivity: now.Add(-2 * time.Hour),
		},
		{
			ID:           "3",
			Name:         "International Students Connect",
			Description:  "Support group for international students dealing with cultural adjustment and homesickness.",
			MemberCount:  89,
			Category:     "Cultural",
			IsPrivate:    true,
			Moderator:    "Maya Patel",
			LastActivity: now.Add(-4 * time.Hour),
		},
	}
}
