package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidClock    = errors.New("invalid time, expected HH:MM")
	ErrInvalidDuration = errors.New("invalid duration, expected HH:MM, 1h 30m or 90m")
	ErrMissingDelay    = errors.New("either dep_time or delay is required")
)

// MaxDelayMinutes bounds a delay given as a duration
const MaxDelayMinutes = MINUTES_PER_DAY

var (
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	durationPattern = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?$`)
)

// ParseClock converts "HH:MM" into minutes after midnight
func ParseClock(value string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidClock)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidClock)
	}
	return h*60 + mins, nil
}

// ParseDuration converts "HH:MM", "1h 30m", "2h" or "90m" into minutes.
// The result is always positive and at most MaxDelayMinutes.
func ParseDuration(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidDuration)
	}

	var h, mins int
	var err error
	if m := clockPattern.FindStringSubmatch(v); m != nil {
		h, mins, err = durationParts(m[1], m[2])
		if err == nil && mins > 59 {
			err = ErrInvalidDuration
		}
	} else if m := durationPattern.FindStringSubmatch(v); m != nil && (m[1] != "" || m[2] != "") {
		h, mins, err = durationParts(m[1], m[2])
	} else {
		err = ErrInvalidDuration
	}
	if err != nil || h > MaxDelayMinutes/60 || mins > MaxDelayMinutes {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidDuration)
	}

	total := h*60 + mins
	if total <= 0 || total > MaxDelayMinutes {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidDuration)
	}
	return total, nil
}

// durationParts parses the hour and minute groups; an empty group is zero
func durationParts(hours, minutes string) (int, int, error) {
	var h, m int
	var err error
	if hours != "" {
		if h, err = strconv.Atoi(hours); err != nil {
			return 0, 0, err
		}
	}
	if minutes != "" {
		if m, err = strconv.Atoi(minutes); err != nil {
			return 0, 0, err
		}
	}
	return h, m, nil
}

// FormatClock renders minutes after midnight as "HH:MM", wrapping past midnight
func FormatClock(minutes int) string {
	minutes = ((minutes % MINUTES_PER_DAY) + MINUTES_PER_DAY) % MINUTES_PER_DAY
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HumanDelay renders a delay magnitude such as "1h 30m", "2h" or "45m"
func HumanDelay(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// ResolveDelay normalizes a delay command against the current departure.
// An absolute newDepTime wins over duration. The magnitude of an absolute
// time is new minus current, floored at zero; a duration is added to the
// current departure and is itself the magnitude.
func ResolveDelay(currentDep, newDepTime, duration string) (Schedule, error) {
	newDepTime = strings.TrimSpace(newDepTime)
	duration = strings.TrimSpace(duration)

	switch {
	case newDepTime != "":
		newM, err := ParseClock(newDepTime)
		if err != nil {
			return Schedule{}, err
		}
		// An unknown current departure counts as midnight
		oldM, err := ParseClock(currentDep)
		if err != nil {
			oldM = 0
		}
		diff := newM - oldM
		if diff < 0 {
			diff = 0
		}
		return Schedule{
			DepTime:      FormatClock(newM),
			DelayMinutes: diff,
			Delay:        HumanDelay(diff),
		}, nil

	case duration != "":
		add, err := ParseDuration(duration)
		if err != nil {
			return Schedule{}, err
		}
		oldM, err := ParseClock(currentDep)
		if err != nil {
			return Schedule{}, fmt.Errorf("current departure: %w", err)
		}
		return Schedule{
			DepTime:      FormatClock(oldM + add),
			DelayMinutes: add,
			Delay:        HumanDelay(add),
		}, nil
	}

	return Schedule{}, ErrMissingDelay
}
