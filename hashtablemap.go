package hashtablemap

import (
	"fmt"
	hashfunc "github.com/gostonefire/hashtablemap/interfaces"
	"github.com/gostonefire/hashtablemap/internal/conf"
	"github.com/gostonefire/hashtablemap/internal/hash"
	"github.com/gostonefire/hashtablemap/internal/model"
)

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - BucketDistribution is the number of entries stored in each available bucket
type HashMapStat struct {
	Entries            int
	BucketDistribution []int
}

// HashMap - An in-memory associative container mapping keys to values, implemented with open
// hashing (separate chaining) and automatic capacity growth. Keys are compared using the
// language equality of the key type and distributed over buckets by a hash code algorithm,
// either the internal one or a custom implementation supplied at construction.
//
// A HashMap is not safe for concurrent use by multiple goroutines without external
// synchronization, every operation mutating or reading the map must be serialized by the caller.
type HashMap[K comparable, V any] struct {
	table         []model.Bucket[K, V]
	size          int
	hashAlgorithm hashfunc.HashAlgorithm[K]
	internalAlg   bool
}

// NewHashMap - Returns a new HashMap with the default capacity of 32 buckets.
//   - hashAlgorithm is an optional entry to provide a custom hash code algorithm following the
//     hashfunc.HashAlgorithm interface, nil selects the internal algorithm.
func NewHashMap[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K]) *HashMap[K, V] {
	hashMap, _ := NewHashMapWithCapacity[K, V](conf.DefaultCapacity, hashAlgorithm)
	return hashMap
}

// NewHashMapWithCapacity - Returns a new HashMap prepared with a given number of buckets.
// The capacity only sets the starting point, the table doubles automatically whenever the
// load factor after an insertion reaches 0.75.
//   - capacity is the initial number of buckets, it must be a positive value
//   - hashAlgorithm is an optional entry to provide a custom hash code algorithm following the
//     hashfunc.HashAlgorithm interface, nil selects the internal algorithm.
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go error which should be nil if everything went ok
func NewHashMapWithCapacity[K comparable, V any](capacity int, hashAlgorithm hashfunc.HashAlgorithm[K]) (hashMap *HashMap[K, V], err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	internalAlg := false
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewXXHashAlgorithm[K]()
		internalAlg = true
	}

	hashMap = &HashMap[K, V]{
		table:         make([]model.Bucket[K, V], capacity),
		hashAlgorithm: hashAlgorithm,
		internalAlg:   internalAlg,
	}

	return
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int, len(H.table))
	}

	// Iterate over every available bucket
	for i := range H.table {
		hms.Entries += len(H.table[i].Entries)
		if includeDistribution {
			hms.BucketDistribution[i] = len(H.table[i].Entries)
		}
	}

	hashMapStat = &hms
	return
}
