package hash

import (
	"fmt"
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - The internally used hash code algorithm is implemented by encoding the key to
// its canonical text form and running xxhash64 over the bytes, truncated to a signed 32 bit value.
// The truncation makes roughly half of all hash codes negative, which exercises the absolute value
// normalization the hash map applies before deriving a bucket number.
type XXHashAlgorithm[K comparable] struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm[K comparable]() *XXHashAlgorithm[K] {
	return &XXHashAlgorithm[K]{}
}

// HashCode - Given key it generates a deterministic signed 32 bit hash code
func (X *XXHashAlgorithm[K]) HashCode(key K) int32 {
	return int32(xxhash.Sum64(fmt.Appendf(nil, "%v", key)))
}
