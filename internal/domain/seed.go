package domain

const unsplash = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"

// SeedExercises returns the built-in exercise library.
func SeedExercises() []NewExercise {
	calfVideo := "https://example.com/calf-stretch-video"
	return []NewExercise{
		{
			Name:         "Calf Stretch",
			Description:  "Stretch your calf muscles to relieve tension on the plantar fascia",
			Instructions: "Stand arm's length from a wall. Place your right foot behind your left foot. Slowly bend your left leg forward, keeping your right knee straight and your right heel on the ground. Hold the stretch for 15-30 seconds and switch sides.",
			ImageURL:     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + unsplash,
			VideoURL:     &calfVideo,
			Category:     CategoryStretching,
			Duration:     60,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"calf", "wall", "morning"},
			IsCore:       true,
		},
		{
			Name:         "Plantar Fascia Stretch",
			Description:  "Direct stretch for the plantar fascia tissue",
			Instructions: "Sit with your affected foot across your opposite thigh. Pull your toes back toward your shin until you feel a stretch in your arch. Hold for 15-30 seconds and repeat 2-4 times.",
			ImageURL:     "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b" + unsplash,
			Category:     CategoryStretching,
			Duration:     90,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"arch", "sitting", "direct"},
			IsCore:       true,
		},
		{
			Name:         "Towel Stretch",
			Description:  "Gentle stretch using a towel for assistance",
			Instructions: "Sit on the floor with your legs straight. Place a towel around the ball of your foot and pull the towel toward you while keeping your knee straight. Hold for 15-30 seconds.",
			ImageURL:     "https://images.unsplash.com/photo-1506629905920-0c1bbaa3d7c1" + unsplash,
			Category:     CategoryStretching,
			Duration:     45,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"towel", "morning", "seated"},
			IsCore:       true,
		},
		{
			Name:         "Rolling Stretch",
			Description:  "Use a tennis ball or frozen water bottle to massage the plantar fascia",
			Instructions: "While sitting, roll a tennis ball or frozen water bottle under your foot from heel to toes. Apply gentle pressure and roll for 1-2 minutes.",
			ImageURL:     "https://images.unsplash.com/photo-1594736797933-d0501ba2fe65" + unsplash,
			Category:     CategoryMassage,
			Duration:     120,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"tennis ball", "ice", "massage"},
			IsCore:       true,
		},
		{
			Name:         "Toe Curls",
			Description:  "Strengthen the muscles in your feet and toes",
			Instructions: "Sit in a chair and place a small towel on the floor in front of you. Use your toes to scrunch up the towel and pull it toward you. Repeat 10-15 times.",
			ImageURL:     "https://images.unsplash.com/photo-1577221084712-45b0445d2b00" + unsplash,
			Category:     CategoryStrengthening,
			Duration:     180,
			Difficulty:   DifficultyIntermediate,
			Tags:         []string{"toes", "towel", "strength"},
		},
		{
			Name:         "Marble Pickup",
			Description:  "Improve toe strength and dexterity",
			Instructions: "Sit in a chair and place 10-20 marbles on the floor in front of you. Use your toes to pick up each marble and place it in a bowl. Repeat with both feet.",
			ImageURL:     "https://images.unsplash.com/photo-1581056771107-24ca5f033842" + unsplash,
			Category:     CategoryStrengthening,
			Duration:     300,
			Difficulty:   DifficultyIntermediate,
			Tags:         []string{"marbles", "dexterity", "fine motor"},
		},
		{
			Name:         "Heel Raises",
			Description:  "Strengthen your calf muscles",
			Instructions: "Stand with your feet hip-width apart. Slowly rise up onto your toes, hold for 2-3 seconds, then lower back down. Repeat 10-15 times.",
			ImageURL:     "https://images.unsplash.com/photo-1518459384694-1251681c6ee5" + unsplash,
			Category:     CategoryStrengthening,
			Duration:     120,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"calf", "standing", "balance"},
		},
		{
			Name:         "Achilles Stretch",
			Description:  "Stretch the Achilles tendon to reduce plantar fascia tension",
			Instructions: "Stand facing a wall with hands flat against it. Step your right foot back and press your heel down. Bend your front knee and lean forward. Hold for 15-30 seconds and switch sides.",
			ImageURL:     "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5" + unsplash,
			Category:     CategoryStretching,
			Duration:     60,
			Difficulty:   DifficultyBeginner,
			Tags:         []string{"achilles", "wall", "calf"},
			IsCore:       true,
		},
	}
}

// SeedReminders returns the default reminder schedule for userID.
func SeedReminders(userID string) []NewReminder {
	everyDay := Weekdays
	weekdays := Weekdays[:5]
	active := true
	return []NewReminder{
		{
			UserID:   userID,
			Type:     ReminderStretch,
			Title:    "Morning Stretch Session",
			Message:  "Start your day with gentle stretches to reduce morning stiffness",
			Time:     "08:00",
			Days:     everyDay,
			IsActive: &active,
		},
		{
			UserID:   userID,
			Type:     ReminderStretch,
			Title:    "Evening Recovery",
			Message:  "End your day with relaxing stretches for better recovery",
			Time:     "19:00",
			Days:     everyDay,
			IsActive: &active,
		},
		{
			UserID:   userID,
			Type:     ReminderWalk,
			Title:    "Gentle Walk Reminder",
			Message:  "Take a gentle walk to promote healing and circulation",
			Time:     "14:00",
			Days:     weekdays,
			IsActive: &active,
		},
		{
			UserID:   userID,
			Type:     ReminderCheckIn,
			Title:    "Daily Progress Check",
			Message:  "How are you feeling today? Log your pain level and progress",
			Time:     "20:00",
			Days:     everyDay,
			IsActive: &active,
		},
	}
}

// SeedProfile returns the profile stored under DefaultUserID at startup.
func SeedProfile() NewUserProfile {
	name := "New User"
	return NewUserProfile{
		Name:                   &name,
		SeverityLevel:          SeverityModerate,
		Goals:                  []string{"Reduce morning pain", "Return to normal activities", "Prevent re-injury"},
		PreferredReminderTimes: []string{"08:00", "14:00", "19:00", "20:00"},
	}
}
