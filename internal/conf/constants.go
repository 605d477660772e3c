package conf

// DefaultCapacity - Number of buckets a hash map gets when constructed without an explicit capacity
const DefaultCapacity int = 32

// LoadFactorThreshold - Ratio of stored entries to buckets at which the table is rehashed,
// checked after every successful insertion
const LoadFactorThreshold float64 = 0.75

// GrowthFactor - Multiplier applied to the number of buckets when the table is rehashed
const GrowthFactor int = 2
