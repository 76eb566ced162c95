package utils

// Schedule is the normalized result of a delay command
type Schedule struct {
	DepTime      string
	DelayMinutes int
	Delay        string
}

// Constants
const (
	MINUTES_PER_DAY = 24 * 60
)
