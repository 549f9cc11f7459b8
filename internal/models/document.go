// Package models defines the persisted Vesper document and its record types.
package models

// Theme selects the visual theme of the app.
type Theme string

const (
	ThemeNight Theme = "night"
	ThemeDawn  Theme = "dawn"
)

// UserPreferences holds per-user settings persisted inside the document.
type UserPreferences struct {
	// NotificationTime is the daily reminder time in "HH:MM" format.
	NotificationTime string `json:"notificationTime"`

	// NotificationsEnabled toggles daily reminders.
	NotificationsEnabled bool `json:"notificationsEnabled"`

	// Theme is the active visual theme.
	Theme Theme `json:"theme"`

	// SansSerifBody switches body text to a sans-serif font.
	SansSerifBody bool `json:"sansSerifBody"`

	// ReduceMotion disables non-essential animation.
	ReduceMotion bool `json:"reduceMotion"`
}

// TarotCard is one card reference inside a draw or a reading.
type TarotCard struct {
	Id   string `json:"id"`
	Name string `json:"name"`

	// Upright is false when the card was drawn reversed.
	Upright bool `json:"upright"`

	// Position labels the card's slot in a multi-card spread.
	Position string `json:"position,omitempty"`
}

// DailyDraw is the one-per-calendar-day featured card, kept separately
// from the reading history.
type DailyDraw struct {
	// LastDrawDate is the local calendar date of the draw, "YYYY-MM-DD".
	LastDrawDate string    `json:"lastDrawDate"`
	Card         TarotCard `json:"card"`
	Question     string    `json:"question,omitempty"`
}

// Reading is one completed draw with its cards and user annotations.
type Reading struct {
	// Id is unique within the document and assigned at creation.
	Id string `json:"id"`

	// Timestamp is the creation time in milliseconds since epoch.
	// It is never mutated after creation.
	Timestamp int64 `json:"timestamp"`

	// SpreadType is a free-form spread label, e.g. "single-card".
	SpreadType string `json:"spreadType"`

	Cards []TarotCard `json:"cards"`

	Question         string `json:"question,omitempty"`
	AIInterpretation string `json:"aiInterpretation,omitempty"`
	UserNotes        string `json:"userNotes,omitempty"`

	Tags []string `json:"tags"`

	Shared    bool   `json:"shared"`
	ShareLink string `json:"shareLink,omitempty"`
}

// AvailableTags is the vocabulary offered when tagging a reading. It is
// independent of the tags any stored reading actually carries.
type AvailableTags struct {
	Emotions  []string `json:"emotions"`
	LifeAreas []string `json:"lifeAreas"`
}

// Document is the single persisted record holding all durable state for
// one user profile. The whole document is the unit of atomicity: every
// operation reads it, mutates a copy, and writes it back in full.
type Document struct {
	Preferences    UserPreferences `json:"user_preferences"`
	DailyDraw      *DailyDraw      `json:"daily_draw"`
	ReadingHistory []Reading       `json:"reading_history"`
	AvailableTags  AvailableTags   `json:"available_tags"`
	SchemaVersion  int             `json:"schemaVersion"`
}
