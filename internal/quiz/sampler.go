package quiz

import (
	"math"
	"time"
)

// DateSeed maps a calendar date to the integer seed feeding the
// sampler: year*10000 + month*100 + day. The multipliers are part of
// the wire-level contract: already-recorded history depends on them,
// so they must never change.
func DateSeed(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return dateSeedOf(t), nil
}

func dateSeedOf(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Fraction is a low-quality but intentionally reproducible
// pseudo-random source: frac(sin(seed)*10000). Any IEEE-754 double
// implementation of sin yields the same value for the same seed, which
// is what lets every client and the server agree on a day's content
// without coordination. Not suitable for anything security-related.
func Fraction(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// IndexInto maps a seed to an index in [0, poolSize).
func IndexInto(poolSize, seed int) int {
	return int(Fraction(seed) * float64(poolSize))
}
