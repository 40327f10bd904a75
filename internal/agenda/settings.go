package agenda

import (
	"fmt"
	"slices"
	"time"

	"github.com/faizmokh/ajanda/internal/logger"
)

// SettingKey names a boolean preference.
type SettingKey string

const (
	SettingNotifications SettingKey = "notifications"
	SettingDarkMode      SettingKey = "darkMode"
	SettingSound         SettingKey = "soundEnabled"
	SettingAutoSync      SettingKey = "autoSync"
)

// ToggleKeys lists the boolean preferences in display order.
var ToggleKeys = []SettingKey{SettingNotifications, SettingDarkMode, SettingSound, SettingAutoSync}

// ReminderTimes are the lead times, in minutes, offered for reminders.
var ReminderTimes = []int{5, 10, 15, 30, 60}

// DefaultReminderTime is the lead time used until the user picks another.
const DefaultReminderTime = 15

// Settings is the flat preference record.
type Settings struct {
	Notifications bool
	DarkMode      bool
	SoundEnabled  bool
	AutoSync      bool
	ReminderTime  int
}

// DefaultSettings mirrors a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		SoundEnabled:  true,
		AutoSync:      true,
		ReminderTime:  DefaultReminderTime,
	}
}

// Get reads a boolean preference.
func (s *Settings) Get(key SettingKey) (bool, error) {
	ptr, err := s.field(key)
	if err != nil {
		return false, err
	}
	return *ptr, nil
}

// Toggle flips a boolean preference and returns the new value.
func (s *Settings) Toggle(key SettingKey) (bool, error) {
	ptr, err := s.field(key)
	if err != nil {
		return false, err
	}
	*ptr = !*ptr
	logger.Debug("setting toggled", "key", key, "value", *ptr)
	return *ptr, nil
}

// SetReminderTime picks a reminder lead time from ReminderTimes.
func (s *Settings) SetReminderTime(minutes int) error {
	if !ValidReminderTime(minutes) {
		return fmt.Errorf("%w: got %d", ErrInvalidReminderTime, minutes)
	}
	s.ReminderTime = minutes
	logger.Debug("reminder time set", "minutes", minutes)
	return nil
}

// ReminderLead returns the reminder lead time as a duration.
func (s Settings) ReminderLead() time.Duration {
	return time.Duration(s.ReminderTime) * time.Minute
}

// ValidReminderTime reports whether minutes is one of ReminderTimes.
func ValidReminderTime(minutes int) bool {
	return slices.Contains(ReminderTimes, minutes)
}

// ReminderTimeLabel renders a lead time the way the settings screen lists it.
func ReminderTimeLabel(minutes int) string {
	if minutes == 60 {
		return "1 saat"
	}
	return fmt.Sprintf("%d dakika", minutes)
}

// Label returns the display name of a boolean preference.
func (k SettingKey) Label() string {
	switch k {
	case SettingNotifications:
		return "Bildirimler"
	case SettingDarkMode:
		return "Karanlık Mod"
	case SettingSound:
		return "Ses"
	case SettingAutoSync:
		return "Otomatik Senkronizasyon"
	default:
		return string(k)
	}
}

// Description explains a boolean preference.
func (k SettingKey) Description() string {
	switch k {
	case SettingNotifications:
		return "Etkinlik ve görev bildirimleri"
	case SettingDarkMode:
		return "Uygulamayı karanlık temada kullan"
	case SettingSound:
		return "Bildirim sesleri"
	case SettingAutoSync:
		return "Verileri otomatik olarak senkronize et"
	default:
		return ""
	}
}

func (s *Settings) field(key SettingKey) (*bool, error) {
	switch key {
	case SettingNotifications:
		return &s.Notifications, nil
	case SettingDarkMode:
		return &s.DarkMode, nil
	case SettingSound:
		return &s.SoundEnabled, nil
	case SettingAutoSync:
		return &s.AutoSync, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
}
