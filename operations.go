package hashtablemap

import (
	"github.com/gostonefire/hashtablemap/internal/conf"
	"github.com/gostonefire/hashtablemap/internal/model"
	"github.com/gostonefire/hashtablemap/internal/utils"
)

// Put - Adds a new key/value mapping to the hash map. The contract is insert only if absent,
// there is no update path, a Put on an already present key leaves the existing mapping untouched.
//   - key is the key of the mapping, it must not be a nil reference
//   - value is the value that key maps to
//
// It returns:
//   - err is of type NilKey if the key is a nil reference, of type DuplicateKey if an equal key
//     is already present, otherwise nil. No state is changed when an error is returned.
func (H *HashMap[K, V]) Put(key K, value V) (err error) {
	// Check validity of the key
	if utils.IsNil(key) {
		err = NilKey{}
		return
	}
	if H.ContainsKey(key) {
		err = DuplicateKey{}
		return
	}

	index := H.bucketIndex(key, len(H.table))
	H.table[index].Append(model.Entry[K, V]{Key: key, Value: value})
	H.size++

	// Checked after every successful insertion, a rehash restores the load factor before returning
	if float64(H.size)/float64(len(H.table)) >= conf.LoadFactorThreshold {
		H.rehash()
	}

	return
}

// ContainsKey - Checks whether a key maps to a value in the hash map. The bucket the key hashes
// to is scanned linearly and keys are compared by equality. The operation never mutates state.
//   - key is the key to check
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	index := H.bucketIndex(key, len(H.table))

	return H.table[index].IndexOf(key) >= 0
}

// Get - Retrieves the value that a key maps to.
//   - key is the key to look up
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type KeyNotFound if no stored key equals the given key, otherwise nil
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	index := H.bucketIndex(key, len(H.table))

	if i := H.table[index].IndexOf(key); i >= 0 {
		value = H.table[index].Entries[i].Value
		return
	}

	err = KeyNotFound{}
	return
}

// Remove - Removes the mapping for a key from the hash map. The capacity is left unchanged,
// removals never shrink the table and never trigger a rehash.
//   - key is the key whose mapping to remove
//
// It returns:
//   - value is the value that the removed key mapped to
//   - err is of type KeyNotFound if no stored key equals the given key, otherwise nil
func (H *HashMap[K, V]) Remove(key K) (value V, err error) {
	index := H.bucketIndex(key, len(H.table))

	i := H.table[index].IndexOf(key)
	if i < 0 {
		err = KeyNotFound{}
		return
	}

	entry := H.table[index].Remove(i)
	H.size--

	value = entry.Value
	return
}

// Clear - Removes all key/value mappings from the hash map. The table is replaced with a freshly
// allocated one of the same capacity as before, not reset to the default capacity.
func (H *HashMap[K, V]) Clear() {
	H.table = make([]model.Bucket[K, V], len(H.table))
	H.size = 0
}

// Size - Returns the number of keys stored in the hash map
func (H *HashMap[K, V]) Size() int {
	return H.size
}

// Capacity - Returns the current number of buckets in the hash map
func (H *HashMap[K, V]) Capacity() int {
	return len(H.table)
}

// BucketNumber - Returns which bucket number the given key currently maps to.
// The number is only stable until the next rehash.
//   - key is the key to derive a bucket number for
func (H *HashMap[K, V]) BucketNumber(key K) int {
	return H.bucketIndex(key, len(H.table))
}

// bucketIndex - Derives the bucket index for a key as the absolute value of its hash code
// modulo the given table size. A hash code of exactly math.MinInt32 survives Abs32 still
// negative and panics with an out of range index, see utils.Abs32.
func (H *HashMap[K, V]) bucketIndex(key K, tableSize int) int {
	return int(utils.Abs32(H.hashAlgorithm.HashCode(key))) % tableSize
}

// rehash - Grows the table by allocating a new one with double the current capacity and
// relocating every entry, bucket index ascending and chain order within each bucket, to the
// bucket its key hashes to against the new capacity. Entries are moved as-is, identity and
// value are preserved. The table reference is swapped once all entries are placed, so no
// partial state is ever observable from the outside.
func (H *HashMap[K, V]) rehash() {
	newTable := make([]model.Bucket[K, V], len(H.table)*conf.GrowthFactor)

	for i := range H.table {
		for _, entry := range H.table[i].Entries {
			index := H.bucketIndex(entry.Key, len(newTable))
			newTable[index].Append(entry)
		}
	}

	H.table = newTable
}
