package qrtoken

import "time"

// DefaultWindow is the token window length used when none is configured.
const DefaultWindow = 5 * time.Minute

// WindowStart floors t to the nearest multiple of window since the Unix
// epoch. window must be a positive whole number of seconds.
func WindowStart(t time.Time, window time.Duration) time.Time {
	secs := int64(window / time.Second)
	unix := t.Unix()

	rem := unix % secs
	if rem < 0 {
		rem += secs
	}
	return time.Unix(unix-rem, 0).UTC()
}

// WindowEnd returns the exclusive end of the window starting at start.
func WindowEnd(start time.Time, window time.Duration) time.Time {
	return start.Add(window)
}
