package model

// Entry - Represents one key/value pair stored in a bucket
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Bucket - Represents the chain of entries whose keys hashed to the same table index.
// Entries keep their insertion order within the chain.
type Bucket[K comparable, V any] struct {
	Entries []Entry[K, V]
}

// Append - Adds an entry to the end of the chain
func (B *Bucket[K, V]) Append(entry Entry[K, V]) {
	B.Entries = append(B.Entries, entry)
}

// IndexOf - Scans the chain linearly and returns the position of the entry whose key equals
// the given key, or -1 if no such entry exists
func (B *Bucket[K, V]) IndexOf(key K) int {
	for i, entry := range B.Entries {
		if entry.Key == key {
			return i
		}
	}

	return -1
}

// Remove - Detaches the entry at the given position from the chain and returns it.
// The order of the remaining entries is preserved.
func (B *Bucket[K, V]) Remove(index int) (entry Entry[K, V]) {
	entry = B.Entries[index]
	B.Entries = append(B.Entries[:index], B.Entries[index+1:]...)

	return
}
