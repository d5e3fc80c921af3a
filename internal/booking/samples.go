package booking

// DefaultCounselors returns the built-in counselor directory.
func DefaultCounselors() []Counselor {
	return []Counselor{
		{
			ID:              "1",
			Name:            "Dr. Priya Sharma",
			Specializations: []string{"Anxiety", "Depression", "Academic Stress"},
			Languages:       []string{"English", "Hindi", "Marathi"},
			Availability:    []string{"Mon", "Wed", "Fri"},
			Type:            TypeCampus,
			Rating:          4.8,
			Experience:      "8 years",
		},
		{
			ID:              "2",
			Name:            "Dr. Rajesh Kumar",
			Specializations: []string{"Relationship Issues", "Social Anxiety", "Career Counseling"},
			Languages:       []string{"English", "Hindi", "Tamil"},
			Availability:    []string{"Tue", "Thu", "Sat"},
			Type:            TypeCampus,
			Rating:          4.9,
			Experience:      "12 years",
		},
		{
			ID:              "3",
			Name:            "Ms. Anita Patel",
			Specializations: []string{"Trauma", "PTSD", "Grief Counseling"},
			Languages:       []string{"English", "Gujarati", "Hindi"},
			Availability:    []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Type:            TypeExternal,
			Rating:          4.7,
			Experience:      "6 years",
		},
	}
}

// DefaultTimeSlots returns the built-in daily slots.
func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{Time: "09:00 AM", Available: true},
		{Time: "10:00 AM", Available: false},
		{Time: "11:00 AM", Available: true},
		{Time: "02:00 PM", Available: true},
		{Time: "03:00 PM", Available: true},
		{Time: "04:00 PM", Available: false},
		{Time: "05:00 PM", Available: true},
	}
}
