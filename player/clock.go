package player

import "time"

// Clock measures playback time from a fixed start instant. It is immutable
// after creation.
type Clock struct {
	start time.Time
}

// StartClock captures the current monotonic time as the playback start.
func StartClock() Clock {
	return Clock{start: time.Now()}
}

func clockAt(t time.Time) Clock {
	return Clock{start: t}
}

// Elapsed returns the playback time so far.
func (c Clock) Elapsed() time.Duration {
	return c.ElapsedAt(time.Now())
}

// ElapsedAt returns now - start, never negative. An unstarted clock reads 0.
func (c Clock) ElapsedAt(now time.Time) time.Duration {
	if c.start.IsZero() {
		return 0
	}
	return max(now.Sub(c.start), 0)
}
