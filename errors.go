package velocitybloom

import "errors"

var (
	ErrNoSeeds      = errors.New("velocitybloom: at least one hash seed is required")
	ErrBadHashCount = errors.New("velocitybloom: too many hash seeds")
	ErrBadWordCount = errors.New("velocitybloom: word count out of range")

	ErrDuplicateSeeds = errors.New("velocitybloom: hash seeds must be distinct")

	ErrBadExpectedItems     = errors.New("velocitybloom: expected items must be positive")
	ErrBadFalsePositiveRate = errors.New("velocitybloom: false positive rate must be in (0, 1)")
	ErrCapacityOverflow     = errors.New("velocitybloom: bit capacity overflows supported range")

	ErrCorruptSnapshot = errors.New("velocitybloom: corrupt filter snapshot")
)
