// Package rtcompare compares runtime samples of two competitors with a bootstrap test and measures
// the runtime of random number generators. It is used to benchmark SFMT against xorshift*.
package rtcompare

import (
	"fmt"
	"math"
	"slices"

	"github.com/rust-math/sfmt"
)

type RTcomparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

const MinimumDataPoints = 11

// CompareRuntimes compares two samples of runtimes (in float64, e.g., nanoseconds)
// and computes the confidence that sample A is faster than sample B by at least
// each of the given relative speedups. The precisionLevel parameter is the number of bootstrap
// repetitions (higher values yield more precise results but take longer to compute).
// The result is sorted by relative speedup.
// If there are not enough data points in either sample, an error is returned.
func CompareRuntimes(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64) ([]RTcomparisonResult, error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return nil, fmt.Errorf("not enough data points: need at least %d runtimes for each of A and B, got %d and %d",
			MinimumDataPoints, len(sampleA), len(sampleB))
	}
	thresholds := slices.Clone(relativeSpeedupsToTest)
	if len(thresholds) == 0 {
		thresholds = []float64{0.0}
	}
	slices.Sort(thresholds)

	conf := BootstrapConfidence(sampleA, sampleB, thresholds, precisionLevel, 0)

	result := make([]RTcomparisonResult, 0, len(thresholds))
	for _, t := range thresholds {
		result = append(result, RTcomparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		})
	}
	return result, nil
}

// F2T converts "A is timesFaster times as fast as B" into the relative speedup threshold
// 1 - 1/timesFaster used by CompareRuntimes. Values below 1 give negative thresholds (a slowdown).
// Non-positive and NaN inputs return NaN.
func F2T(timesFaster float64) float64 {
	if math.IsNaN(timesFaster) || timesFaster <= 0 {
		return math.NaN()
	}
	return 1.0 - 1.0/timesFaster
}

// bootstrapSample fills dst with values drawn from xs with replacement.
func bootstrapSample(dst, xs []float64, rng *sfmt.SFMT) {
	n := uint32(len(xs))
	for i := range dst {
		dst[i] = xs[rng.Uint32N(n)]
	}
}

// relativeSpeedup returns 1 - medA/medB with guards for NaN, equal and (near) zero medians.
func relativeSpeedup(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB:
		// covers both zero and both infinite in the same direction
		return 0.0
	}
	// relative epsilon scaled to medB keeps the ratio finite for a tiny medB
	eps := math.Max(math.Abs(medB)*1e-12, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}

// BootstrapConfidence estimates the probability (confidence) that the relative speedup of A over B
// meets or exceeds each requested threshold using bootstrap resampling.
//
// Each of the reps replicates draws a bootstrap sample from A and from B, computes their medians and
// evaluates delta = 1 - median(A_sample)/median(B_sample). A positive delta means A is faster than B
// by that relative amount. The confidence for a threshold t is the fraction of replicates with delta >= t.
//
// Resampling uses one SFMT-19937 generator seeded with prngSeed, so equal inputs and seeds give
// equal results. Edge cases:
//   - reps == 0 maps every threshold to NaN.
//   - empty samples or NaN medians never meet a threshold.
//   - equal medians (including both zero or both infinite) give delta = 0.
//   - a median of B that is zero or extremely small is replaced by a scale-aware epsilon.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, prngSeed uint32) map[float64]float64 {
	confidenceForThreshold := make(map[float64]float64, len(thresholds))
	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	rng := sfmt.New(prngSeed)
	sampleA := make([]float64, len(A))
	sampleB := make([]float64, len(B))
	counts := make(map[float64]uint64, len(thresholds))
	median := func(xs []float64) float64 {
		if len(xs) == 0 {
			return math.NaN()
		}
		return quickselect(xs, len(xs)/2, rng)
	}

	for range reps {
		bootstrapSample(sampleA, A, rng)
		bootstrapSample(sampleB, B, rng)
		delta := relativeSpeedup(median(sampleA), median(sampleB))
		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}
