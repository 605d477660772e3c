package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom hash
// code algorithm suited for its particular distribution of keys.
type HashAlgorithm[K comparable] interface {
	// HashCode - Given key it generates a deterministic signed 32 bit hash code.
	// The hash map derives the bucket number as the absolute value of the hash code modulo the
	// current number of buckets, hence negative hash codes are permitted and land in the same
	// bucket as their positive counterparts. A hash code of exactly math.MinInt32 has no positive
	// counterpart and will result in a runtime error down stream.
	HashCode(key K) int32
}
