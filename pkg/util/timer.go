package util

import (
	"fmt"
	"time"
)

/*
	usage:

	t := StartTimer()
	// code to measure
	fmt.Println(FormatSeconds(t.Elapsed()))

*/

// Timer measures wall clock time from the moment it was started.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Repeat calls fn n times back to back and returns the total wall clock time.
func Repeat(n int, fn func()) time.Duration {
	t := StartTimer()
	for i := 0; i < n; i++ {
		fn()
	}
	return t.Elapsed()
}

// FormatSeconds renders d as fractional seconds with microsecond precision.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%0.6f sec", float64(d.Nanoseconds())/float64(time.Second.Nanoseconds()))
}
