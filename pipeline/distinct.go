package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/robot-dreams/gpxstream"
	"github.com/willf/bloom"
)

const (
	// Bloom filter parameters.
	m = 1 << 22
	k = 5
)

// distinct drops Coordinates that were already emitted.  Membership is
// tracked with a Bloom filter so memory stays constant regardless of how
// many distinct Coordinates flow through; the price is that a false
// positive drops a genuinely new Coordinate.  Relative order of the
// surviving elements is preserved.
type distinct struct {
	cur  gpxstream.CoordinateCursor
	seen *bloom.BloomFilter
}

var _ gpxstream.CoordinateCursor = (*distinct)(nil)

func NewDistinct(cur gpxstream.CoordinateCursor) *distinct {
	return &distinct{
		cur:  cur,
		seen: bloom.New(m, k),
	}
}

func (d *distinct) Next() (gpxstream.Coordinate, error) {
	for {
		coordinate, err := d.cur.Next()
		if err != nil {
			return gpxstream.Coordinate{}, err
		}
		if !d.seen.TestAndAdd(coordinateKey(coordinate)) {
			return coordinate, nil
		}
	}
}

func (d *distinct) Close() error {
	return d.cur.Close()
}

func coordinateKey(coordinate gpxstream.Coordinate) []byte {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], math.Float64bits(coordinate.Lat))
	binary.LittleEndian.PutUint64(key[8:], math.Float64bits(coordinate.Lon))
	return key[:]
}
