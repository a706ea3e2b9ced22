package velocitybloom

import "math"

// Config sizes a filter from the number of keys it is expected to hold and the
// false positive rate acceptable once it holds them.
type Config struct {
	ExpectedItems     uint64
	FalsePositiveRate float64
}

// Validate checks that cfg describes a filter that can be built.
func (cfg Config) Validate() error {
	if cfg.ExpectedItems == 0 {
		return ErrBadExpectedItems
	}
	// Written this way so NaN is rejected too.
	if !(cfg.FalsePositiveRate > 0 && cfg.FalsePositiveRate < 1) {
		return ErrBadFalsePositiveRate
	}
	return nil
}

// Params derives the bit capacity and hash count for cfg.
//
// The capacity is m = -n*ln(p)/(ln 2)^2 rounded up to a whole number of
// WordBits words. The hash count is round(m/n * ln 2), clamped to
// [1, MaxHashCount].
func (cfg Config) Params() (capacity uint32, hashCount int, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}

	n := float64(cfg.ExpectedItems)
	m := math.Ceil(-n * math.Log(cfg.FalsePositiveRate) / (math.Ln2 * math.Ln2))
	words := math.Ceil(m / WordBits)
	if words > MaxWordCount {
		return 0, 0, ErrCapacityOverflow
	}
	if words < 1 {
		words = 1
	}
	capacity = uint32(words) * WordBits

	hashCount = int(math.Round(float64(capacity) / n * math.Ln2))
	if hashCount < 1 {
		hashCount = 1
	}
	if hashCount > MaxHashCount {
		hashCount = MaxHashCount
	}
	return capacity, hashCount, nil
}

// FalsePositiveRate returns the expected false positive probability
// (1 - e^(-k*n/m))^k of a filter with m bits and k hash functions holding n
// keys.
func FalsePositiveRate(k int, n uint64, m uint32) float64 {
	if n == 0 {
		return 0
	}
	if m == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}
