package velocitybloom

import "math/rand/v2"

// SeedSource supplies hash seeds. *rand.Rand from math/rand/v2 satisfies it.
type SeedSource interface {
	Uint32() uint32
}

// globalSource draws from the process-wide math/rand/v2 generator, which is
// randomly seeded and safe for concurrent use.
type globalSource struct{}

func (globalSource) Uint32() uint32 {
	return rand.Uint32()
}

var defaultSeedSource SeedSource = globalSource{}

type fixedSeeds struct {
	seeds []uint32
	next  int
}

// FixedSeeds returns a SeedSource that yields seeds in order, starting over
// once they are exhausted. With no seeds it always yields 0. A filter needs
// one distinct seed per hash function, so NewWithConfig fails with
// ErrDuplicateSeeds when fewer distinct seeds are given than the filter's
// hash count.
func FixedSeeds(seeds ...uint32) SeedSource {
	return &fixedSeeds{seeds: append([]uint32(nil), seeds...)}
}

func (f *fixedSeeds) Uint32() uint32 {
	if len(f.seeds) == 0 {
		return 0
	}
	seed := f.seeds[f.next%len(f.seeds)]
	f.next++
	return seed
}

// maxSeedDraws bounds how many draws per seed generateSeeds makes before it
// gives up on src producing k distinct values.
const maxSeedDraws = 8

// generateSeeds draws k distinct seeds from src, skipping repeats. A repeated
// seed would only duplicate another hash function.
func generateSeeds(src SeedSource, k int) ([]uint32, error) {
	seeds := make([]uint32, 0, k)
	seen := make(map[uint32]struct{}, k)
	for draws := 0; len(seeds) < k; draws++ {
		if draws == maxSeedDraws*k {
			return nil, ErrDuplicateSeeds
		}

		seed := src.Uint32()
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// hasDuplicates reports whether any seed appears more than once.
func hasDuplicates(seeds []uint32) bool {
	seen := make(map[uint32]struct{}, len(seeds))
	for _, seed := range seeds {
		if _, ok := seen[seed]; ok {
			return true
		}
		seen[seed] = struct{}{}
	}
	return false
}
