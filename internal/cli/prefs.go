package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vesperapp/vesper/internal/vesper"
)

// Prefs prints all user preferences.
func (a *App) Prefs(ctx context.Context) error {
	p, err := a.store.Preferences(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "notificationTime:     %s\n", p.NotificationTime)
	fmt.Fprintf(a.out, "notificationsEnabled: %t\n", p.NotificationsEnabled)
	fmt.Fprintf(a.out, "theme:                %s\n", p.Theme)
	fmt.Fprintf(a.out, "sansSerifBody:        %t\n", p.SansSerifBody)
	fmt.Fprintf(a.out, "reduceMotion:         %t\n", p.ReduceMotion)
	return nil
}

// SetPref updates a single preference from its string representation.
func (a *App) SetPref(ctx context.Context, key, value string) error {
	var v any
	switch vesper.PreferenceKey(key) {
	case vesper.PrefNotificationTime, vesper.PrefTheme:
		v = value
	case vesper.PrefNotificationsEnabled, vesper.PrefSansSerifBody, vesper.PrefReduceMotion:
		b, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintf(a.out, "Value for %s must be true or false\n", key)
			return nil
		}
		v = b
	default:
		fmt.Fprintf(a.out, "Unknown preference %q\n", key)
		return nil
	}

	if err := a.store.SetPreference(ctx, vesper.PreferenceKey(key), v); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Set %s = %s\n", key, value)
	return nil
}
