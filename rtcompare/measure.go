package rtcompare

import "github.com/rust-math/sfmt"

// Generator is the part of a random number generator that MeasureRuntimes exercises.
// Both *sfmt.SFMT and *XorShift satisfy it.
type Generator interface {
	Uint64() uint64
}

var (
	_ Generator = (*sfmt.SFMT)(nil)
	_ Generator = (*XorShift)(nil)
)

// sink keeps the measured calls from being optimized away.
var sink uint64

// MeasureRuntimes returns rounds runtime samples in nanoseconds, each covering draws calls of
// gen.Uint64. draws should be large enough that one batch takes well over GetSampleTimePrecision().
func MeasureRuntimes(gen Generator, draws, rounds int) []float64 {
	samples := make([]float64, rounds)
	var acc uint64
	for r := range rounds {
		start := SampleTime()
		for range draws {
			acc ^= gen.Uint64()
		}
		samples[r] = float64(DiffTimeStamps(start, SampleTime()))
	}
	sink ^= acc
	return samples
}

// DefaultSampleTicks is the number of timer precision units one runtime sample should span.
const DefaultSampleTicks = 1000

// maxDraws caps DrawsFor for generators that are too fast for the timer.
const maxDraws = 1 << 30

// DrawsFor returns the smallest power of two of gen.Uint64 calls whose median runtime spans at least
// ticks times GetSampleTimePrecision(). The probing advances gen.
func DrawsFor(gen Generator, ticks int64) int {
	target := float64(ticks * GetSampleTimePrecision())
	draws := 1
	for draws < maxDraws {
		if Median(MeasureRuntimes(gen, draws, 3)) >= target {
			return draws
		}
		draws <<= 1
	}
	return draws
}

// MeasureInterleaved measures a and b alternately so that drifts of the machine (frequency scaling,
// other load) hit both competitors alike. It returns one sample slice per competitor.
func MeasureInterleaved(a, b Generator, draws, rounds int) (samplesA, samplesB []float64) {
	samplesA = make([]float64, 0, rounds)
	samplesB = make([]float64, 0, rounds)
	for range rounds {
		samplesA = append(samplesA, MeasureRuntimes(a, draws, 1)...)
		samplesB = append(samplesB, MeasureRuntimes(b, draws, 1)...)
	}
	return samplesA, samplesB
}
