package velocitybloom

import "math"

const (
	WordBits     = 32                        // Bit width of one storage word.
	WordCount    = 1                         // Number of storage words in a default filter.
	K            = 3                         // Number of hash functions in a default filter.
	MaxHashCount = 30                        // Upper bound on hash functions for any filter.
	MaxWordCount = math.MaxUint32 / WordBits // Largest word count whose capacity fits in a uint32.
)
