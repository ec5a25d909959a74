package rtcompare

import (
	"math"
	"slices"

	"github.com/rust-math/sfmt"
)

// pivotSeed makes the pivot choice of QuickMedian, and therefore its runtime, reproducible.
const pivotSeed = 5489

func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	l := len(sorted)
	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2
	}
	return sorted[l/2]
}

// Statistics returns the mean and the population variance and standard deviation of data.
// For empty data it returns (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}
	n := float64(len(data))
	for _, v := range data {
		mean += v
	}
	mean /= n
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	within := func(ref, v float64) bool {
		tol := math.Abs(ref * tolerancePercentage / 100)
		return ref-tol <= v && v <= ref+tol
	}
	return within(f1, f2) || within(f2, f1)
}

// partition moves xs[high] to its sorted position within xs[low:high+1] and returns that index.
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based) of xs in expected O(n) time.
// Pivots are drawn from rng.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int, rng *sfmt.SFMT) float64 {
	low, high := 0, len(xs)-1
	for low < high {
		pivot := low + int(rng.Uint32N(uint32(high-low+1)))
		xs[pivot], xs[high] = xs[high], xs[pivot]
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median in expected O(n) time.
// In case of an odd number of elements, it returns the middle one.
// In case of an even number of elements, it returns the higher of the two middle ones.
// For an empty slice it returns NaN.
// Note: This function reorders the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return quickselect(xs, len(xs)/2, sfmt.New(pivotSeed))
}
