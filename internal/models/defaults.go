package models

// CurrentSchemaVersion identifies the document layout this code writes.
const CurrentSchemaVersion = 1

// DefaultPreferences returns the preference set used for a fresh profile.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		NotificationTime:     "08:00",
		NotificationsEnabled: true,
		Theme:                ThemeNight,
		SansSerifBody:        false,
		ReduceMotion:         false,
	}
}

// DefaultTags returns the starting tag vocabulary.
func DefaultTags() AvailableTags {
	return AvailableTags{
		Emotions:  []string{"anxious", "hopeful", "confused", "excited", "stuck"},
		LifeAreas: []string{"love", "career", "self", "family", "friendship", "spirituality"},
	}
}

// DefaultDocument returns a freshly allocated default document. Callers may
// mutate the result freely; slices are never shared between calls.
func DefaultDocument() *Document {
	return &Document{
		Preferences:    DefaultPreferences(),
		DailyDraw:      nil,
		ReadingHistory: []Reading{},
		AvailableTags:  DefaultTags(),
		SchemaVersion:  CurrentSchemaVersion,
	}
}
