package pomodoro

import (
	"fmt"
	"strings"
)

// Mode is one of the three countdown kinds.
type Mode uint8

const (
	// Work is a focus interval.
	Work Mode = iota
	// ShortBreak follows most work intervals.
	ShortBreak
	// LongBreak follows every SessionsPerLongBreak-th work interval.
	LongBreak
)

// SessionsPerLongBreak is how many completed work intervals earn a long break.
const SessionsPerLongBreak = 4

// Modes lists every mode in display order.
var Modes = []Mode{Work, ShortBreak, LongBreak}

// Seconds returns the fixed length of the mode.
func (m Mode) Seconds() int {
	switch m {
	case ShortBreak:
		return 5 * 60
	case LongBreak:
		return 15 * 60
	default:
		return 25 * 60
	}
}

func (m Mode) String() string {
	switch m {
	case ShortBreak:
		return "short"
	case LongBreak:
		return "long"
	default:
		return "work"
	}
}

// Label is the display name.
func (m Mode) Label() string {
	switch m {
	case ShortBreak:
		return "Kısa Mola"
	case LongBreak:
		return "Uzun Mola"
	default:
		return "Çalışma"
	}
}

// ParseMode reads the names printed by String.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "work", "":
		return Work, nil
	case "short", "short-break", "shortbreak":
		return ShortBreak, nil
	case "long", "long-break", "longbreak":
		return LongBreak, nil
	default:
		return Work, fmt.Errorf("invalid mode %q (expected work|short|long)", value)
	}
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
