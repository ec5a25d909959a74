//go:build !windows

package rtcompare

import "time"

// TimeStamp is a point in time with the highest precision available on the runtime system.
// TimeStamps are only comparable within one run of a program on one machine.
type TimeStamp = time.Time

// SampleTime returns the current TimeStamp. time.Now carries a monotonic clock reading.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds (negative if the order is reversed).
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return t_later.Sub(t_earlier).Nanoseconds()
}
