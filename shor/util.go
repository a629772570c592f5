package shor

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/go-i2p/logger"
	sha3 "golang.org/x/crypto/sha3"
)

// Utility functions.

var log = logger.GetGoI2PLogger()

// A deterministic random source: SHAKE256 over the provided seed. Two
// readers created with the same seed yield the same byte stream.
type seededReader struct {
	sh sha3.ShakeHash
}

// NewSeededReader returns a deterministic random source derived from
// seed. It is meant for reproducible tests and demonstrations; it can
// be used as Options.Rand. Reads never fail.
func NewSeededReader(seed []byte) io.Reader {
	sh := sha3.NewShake256()
	sh.Write(seed)
	return &seededReader{sh: sh}
}

func (r *seededReader) Read(p []byte) (int, error) {
	return r.sh.Read(p)
}

// Get a uniformly random integer in [0, bound-1]. bound must be non-zero.
// Values are obtained by masking 64-bit words down to the bit length of
// bound-1 and rejecting those out of range; each try succeeds with
// probability greater than 1/2.
func draw_below(rng io.Reader, bound uint64) (uint64, error) {
	if bound == 1 {
		return 0, nil
	}
	mask := ^uint64(0) >> uint(bits.LeadingZeros64(bound-1))
	var buf [8]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return 0, fmt.Errorf("shor: reading random source: %w", err)
		}
		w := binary.LittleEndian.Uint64(buf[:]) & mask
		if w < bound {
			return w, nil
		}
	}
}
