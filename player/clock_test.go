package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_ElapsedAt(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := clockAt(start)

	assert.Equal(t, 75*time.Second, c.ElapsedAt(start.Add(75*time.Second)))
	assert.Zero(t, c.ElapsedAt(start.Add(-time.Second)), "never negative")
}

func TestClock_Unstarted(t *testing.T) {
	var c Clock
	assert.Zero(t, c.Elapsed())
	assert.Zero(t, c.ElapsedAt(time.Now().Add(time.Hour)))
}

func TestStartClock_Monotonic(t *testing.T) {
	c := StartClock()
	a := c.Elapsed()
	time.Sleep(2 * time.Millisecond)
	assert.Greater(t, c.Elapsed(), a)
}
