package rtcompare

import "math"

const calibrationRounds = 1_000_000

// precision caches the result of calibrate in nanoseconds; -1 means not measured yet.
var precision = int64(-1)

// GetSampleTimePrecision returns the smallest non-zero difference between two SampleTime calls in
// nanoseconds. Typically 100ns on Windows and 20ns to 100ns on Linux and macOS.
// The value is measured on the first call and cached.
func GetSampleTimePrecision() int64 {
	if precision == -1 {
		precision = calibrate(calibrationRounds)
	}
	return precision
}

func calibrate(rounds int) int64 {
	smallest := int64(math.MaxInt64)
	for range rounds {
		t1 := SampleTime()
		t2 := SampleTime()
		if d := DiffTimeStamps(t1, t2); d > 0 && d < smallest {
			smallest = d
		}
	}
	return smallest
}
