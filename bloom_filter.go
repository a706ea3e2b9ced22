package velocitybloom

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/spaolacci/murmur3"
)

// BloomFilter is a fixed-capacity Bloom filter over string or byte keys.
//
// A filter never reports a false negative: once a key has been inserted,
// Contains returns true for it until the filter is discarded. Keys that were
// never inserted may be reported as present with a probability that grows
// with the load factor.
//
// A BloomFilter must be created with New, NewWithSeeds, NewWithConfig or
// Decode. The zero value has no hash functions and reports every key absent.
//
// BloomFilter is not safe for concurrent use. Callers sharing one filter must
// serialize Insert against every other call.
type BloomFilter struct {
	bits     *bitset.BitSet // Bit array, capacity bits long.
	capacity uint32         // Total number of bits, a multiple of WordBits.
	seeds    []uint32       // One murmur3 seed per hash function.
	inserted uint64         // Number of Insert calls, used for estimates only.
}

// New creates a filter of WordCount words with K hash functions whose seeds
// are drawn from the process-wide random source.
func New() *BloomFilter {
	seeds, err := generateSeeds(defaultSeedSource, K)
	if err != nil {
		// The process-wide source cannot repeat itself that often.
		panic(err)
	}
	return newBloomFilter(WordCount*WordBits, seeds)
}

// NewWithSeeds creates a filter of wordCount words using the given seeds, one
// per hash function. Seeds must be distinct. Filters built with the same word
// count and seeds set the same bits for the same keys.
func NewWithSeeds(wordCount int, seeds []uint32) (*BloomFilter, error) {
	if wordCount <= 0 || wordCount > MaxWordCount {
		return nil, ErrBadWordCount
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(seeds) > MaxHashCount {
		return nil, ErrBadHashCount
	}
	if hasDuplicates(seeds) {
		return nil, ErrDuplicateSeeds
	}
	return newBloomFilter(uint32(wordCount)*WordBits, append([]uint32(nil), seeds...)), nil
}

// NewWithConfig creates a filter sized for cfg. Seeds are drawn from src, or
// from the process-wide random source when src is nil. It fails with
// ErrDuplicateSeeds if src cannot supply one distinct seed per hash function.
func NewWithConfig(cfg Config, src SeedSource) (*BloomFilter, error) {
	capacity, hashCount, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = defaultSeedSource
	}
	seeds, err := generateSeeds(src, hashCount)
	if err != nil {
		return nil, err
	}
	return newBloomFilter(capacity, seeds), nil
}

func newBloomFilter(capacity uint32, seeds []uint32) *BloomFilter {
	log.Debugf("Created bloom filter: capacity=%d bits, hash_count=%d",
		capacity, len(seeds))

	return &BloomFilter{
		bits:     bitset.New(uint(capacity)),
		capacity: capacity,
		seeds:    seeds,
	}
}

// index returns the bit index selected by the hash function seeded with seed.
func (bf *BloomFilter) index(key []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(key, seed) % bf.capacity
}

// hashKey derives one bit index per seed. Indices of different seeds may
// collide, which only means fewer distinct bits are set for the key.
func (bf *BloomFilter) hashKey(key []byte) []uint32 {
	indices := make([]uint32, len(bf.seeds))
	for i, seed := range bf.seeds {
		indices[i] = bf.index(key, seed)
	}
	return indices
}

// Insert adds key to the filter. Inserting a key more than once leaves the
// bit array unchanged after the first time.
func (bf *BloomFilter) Insert(key string) {
	bf.InsertBytes([]byte(key))
}

// InsertBytes adds key to the filter.
func (bf *BloomFilter) InsertBytes(key []byte) {
	for _, idx := range bf.hashKey(key) {
		bf.bits.Set(uint(idx))
	}
	bf.inserted++
}

// Contains reports whether key may have been inserted. A false result is
// definite; a true result may be a false positive.
func (bf *BloomFilter) Contains(key string) bool {
	return bf.ContainsBytes([]byte(key))
}

// ContainsBytes reports whether key may have been inserted.
func (bf *BloomFilter) ContainsBytes(key []byte) bool {
	if len(bf.seeds) == 0 {
		return false
	}
	for _, seed := range bf.seeds {
		if !bf.bits.Test(uint(bf.index(key, seed))) {
			return false
		}
	}
	return true
}

// Capacity returns the number of bits in the filter.
func (bf *BloomFilter) Capacity() uint32 {
	return bf.capacity
}

// HashCount returns the number of hash functions.
func (bf *BloomFilter) HashCount() int {
	return len(bf.seeds)
}

// Seeds returns a copy of the hash seeds.
func (bf *BloomFilter) Seeds() []uint32 {
	return append([]uint32(nil), bf.seeds...)
}

// Inserted returns the number of Insert calls made on the filter, duplicates
// included.
func (bf *BloomFilter) Inserted() uint64 {
	return bf.inserted
}

// SetBits returns the number of bits currently set.
func (bf *BloomFilter) SetBits() uint {
	return bf.bits.Count()
}

// FillRatio returns the fraction of bits currently set.
func (bf *BloomFilter) FillRatio() float64 {
	return float64(bf.bits.Count()) / float64(bf.capacity)
}

// EstimatedFalsePositiveRate estimates the false positive probability from
// the number of Insert calls made so far.
func (bf *BloomFilter) EstimatedFalsePositiveRate() float64 {
	return FalsePositiveRate(len(bf.seeds), bf.inserted, bf.capacity)
}

// Words returns the bit array as WordBits-wide words. Bit i of the filter is
// bit i%WordBits of word i/WordBits.
func (bf *BloomFilter) Words() []uint32 {
	words := make([]uint32, bf.capacity/WordBits)
	for i, w := range bf.bits.Bytes() {
		lo := 2 * i
		if lo < len(words) {
			words[lo] = uint32(w)
		}
		if lo+1 < len(words) {
			words[lo+1] = uint32(w >> 32)
		}
	}
	return words
}
