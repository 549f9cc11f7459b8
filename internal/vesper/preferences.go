package vesper

import (
	"context"
	"fmt"

	"github.com/vesperapp/vesper/internal/models"
)

// PreferenceKey names one field of models.UserPreferences for the
// per-key accessors.
type PreferenceKey string

const (
	PrefNotificationTime     PreferenceKey = "notificationTime"
	PrefNotificationsEnabled PreferenceKey = "notificationsEnabled"
	PrefTheme                PreferenceKey = "theme"
	PrefSansSerifBody        PreferenceKey = "sansSerifBody"
	PrefReduceMotion         PreferenceKey = "reduceMotion"
)

// PreferencesPatch carries a partial preference update. Nil fields are
// left untouched.
type PreferencesPatch struct {
	NotificationTime     *string
	NotificationsEnabled *bool
	Theme                *models.Theme
	SansSerifBody        *bool
	ReduceMotion         *bool
}

// Preferences returns all user preferences.
func (s *Store) Preferences(ctx context.Context) (models.UserPreferences, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return models.UserPreferences{}, err
	}
	return doc.Preferences, nil
}

// Preference returns the value of a single preference.
func (s *Store) Preference(ctx context.Context, key PreferenceKey) (any, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	p := doc.Preferences
	switch key {
	case PrefNotificationTime:
		return p.NotificationTime, nil
	case PrefNotificationsEnabled:
		return p.NotificationsEnabled, nil
	case PrefTheme:
		return p.Theme, nil
	case PrefSansSerifBody:
		return p.SansSerifBody, nil
	case PrefReduceMotion:
		return p.ReduceMotion, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}
}

// SetPreference updates a single preference. The value must match the
// preference's type; theme accepts models.Theme or a plain string.
func (s *Store) SetPreference(ctx context.Context, key PreferenceKey, value any) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}

	p := &doc.Preferences
	switch key {
	case PrefNotificationTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %q wants a string", ErrInvalidPreferenceValue, key)
		}
		p.NotificationTime = v
	case PrefNotificationsEnabled, PrefSansSerifBody, PrefReduceMotion:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %q wants a bool", ErrInvalidPreferenceValue, key)
		}
		switch key {
		case PrefNotificationsEnabled:
			p.NotificationsEnabled = v
		case PrefSansSerifBody:
			p.SansSerifBody = v
		case PrefReduceMotion:
			p.ReduceMotion = v
		}
	case PrefTheme:
		switch v := value.(type) {
		case models.Theme:
			p.Theme = v
		case string:
			p.Theme = models.Theme(v)
		default:
			return fmt.Errorf("%w: %q wants a theme", ErrInvalidPreferenceValue, key)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}

	return s.gw.Write(ctx, doc)
}

// SetPreferences merges a partial update into the stored preferences.
func (s *Store) SetPreferences(ctx context.Context, patch PreferencesPatch) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}

	p := &doc.Preferences
	if patch.NotificationTime != nil {
		p.NotificationTime = *patch.NotificationTime
	}
	if patch.NotificationsEnabled != nil {
		p.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.SansSerifBody != nil {
		p.SansSerifBody = *patch.SansSerifBody
	}
	if patch.ReduceMotion != nil {
		p.ReduceMotion = *patch.ReduceMotion
	}

	return s.gw.Write(ctx, doc)
}

// ResetPreferences replaces the preferences with the defaults wholesale.
func (s *Store) ResetPreferences(ctx context.Context) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}
	doc.Preferences = models.DefaultPreferences()
	return s.gw.Write(ctx, doc)
}
