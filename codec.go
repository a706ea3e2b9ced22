package velocitybloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	pb "github.com/danish45007/velocitybloom/proto"
	"google.golang.org/protobuf/proto"
)

// MarshalBinary encodes the filter as a pb.BloomFilter snapshot. Snapshots let
// a peer rebuild a filter with the same seeds, which is what makes two filters
// comparable. Writing them anywhere is up to the caller.
func (bf *BloomFilter) MarshalBinary() ([]byte, error) {
	return proto.Marshal(&pb.BloomFilter{
		Capacity: bf.capacity,
		Seeds:    bf.seeds,
		Words:    bf.bits.Bytes(),
		Inserted: bf.inserted,
	})
}

// Decode builds a new filter from a snapshot produced by MarshalBinary.
func Decode(data []byte) (*BloomFilter, error) {
	snapshot := &pb.BloomFilter{}
	if err := proto.Unmarshal(data, snapshot); err != nil {
		return nil, corruptSnapshot(err)
	}
	return fromSnapshot(snapshot)
}

func fromSnapshot(snapshot *pb.BloomFilter) (*BloomFilter, error) {
	capacity, seeds, words := snapshot.GetCapacity(), snapshot.GetSeeds(),
		snapshot.GetWords()
	if err := checkSnapshot(capacity, seeds, words); err != nil {
		return nil, err
	}

	log.Tracef("Decoded bloom filter snapshot: capacity=%d bits, "+
		"hash_count=%d, inserted=%d", capacity, len(seeds),
		snapshot.GetInserted())

	return &BloomFilter{
		bits:     bitset.FromWithLength(uint(capacity), words),
		capacity: capacity,
		seeds:    seeds,
		inserted: snapshot.GetInserted(),
	}, nil
}

func checkSnapshot(capacity uint32, seeds []uint32, words []uint64) error {
	switch {
	case capacity == 0 || capacity%WordBits != 0:
		return corruptSnapshot(fmt.Errorf("invalid capacity %d", capacity))
	case len(seeds) == 0:
		return corruptSnapshot(ErrNoSeeds)
	case len(seeds) > MaxHashCount:
		return corruptSnapshot(ErrBadHashCount)
	case hasDuplicates(seeds):
		return corruptSnapshot(ErrDuplicateSeeds)
	case uint64(len(words)) != (uint64(capacity)+63)/64:
		return corruptSnapshot(fmt.Errorf("got %d words for capacity %d",
			len(words), capacity))
	}

	// Bits past the capacity must be clear in the last word.
	if tail := capacity % 64; tail != 0 && words[len(words)-1]>>tail != 0 {
		return corruptSnapshot(fmt.Errorf("bit set beyond capacity %d", capacity))
	}
	return nil
}

func corruptSnapshot(err error) error {
	return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
}
