package ui

import (
	"fmt"
	"time"
)

// nameWidth is the right-justified field for the track name. Longer names
// are not truncated.
const nameWidth = 10

// FormatStatus renders "MM:SS/MM:SS | Playing - <name>".
func FormatStatus(elapsed, total time.Duration, name string) string {
	em, es := minutesSeconds(elapsed)
	tm, ts := minutesSeconds(total)
	return fmt.Sprintf("%02d:%02d/%02d:%02d | Playing - %*s", em, es, tm, ts, nameWidth, name)
}

func minutesSeconds(d time.Duration) (int, int) {
	s := max(int(d/time.Second), 0)
	return s / 60, s % 60
}
