package schedule

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// ParseClock splits an "HH:mm" string into its hour and minute parts.
func ParseClock(clock string) (hour, minute int, err error) {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// At combines a date and a wall-clock time into a single instant.
func At(date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
}

// InRange reports whether instant falls inside the half-open
// interval [start, end): start itself is in, end is out.
func InRange(instant, start, end time.Time) bool {
	return !instant.Before(start) && instant.Before(end)
}
