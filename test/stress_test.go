//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/hashtablemap"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

const totalKeys int = 100000

func TestHashMapStress(t *testing.T) {
	t.Run("handles large amounts of mappings", func(t *testing.T) {
		// Prepare
		rand.Seed(123)
		keys := rand.Perm(totalKeys)

		hm := hashtablemap.NewHashMap[int, int](nil)

		// Execute
		for _, key := range keys {
			err := hm.Put(key, key*2)
			assert.NoError(t, err, fmt.Sprintf("puts mapping for key %d", key))
		}

		// Check
		assert.Equal(t, totalKeys, hm.Size(), "all mappings stored")
		assert.Less(t, float64(hm.Size())/float64(hm.Capacity()), 0.75, "load factor below threshold")

		for _, key := range keys {
			value, err := hm.Get(key)
			assert.NoError(t, err, fmt.Sprintf("gets mapping for key %d", key))
			assert.Equal(t, key*2, value, fmt.Sprintf("correct value for key %d", key))
		}

		stat := hm.Stat(true)
		assert.Equal(t, totalKeys, stat.Entries, "stat agrees with size")

		var fromDistribution int
		for _, n := range stat.BucketDistribution {
			fromDistribution += n
		}
		assert.Equal(t, totalKeys, fromDistribution, "distribution sums to size")

		// Remove every second key and verify the rest is intact
		capacityBefore := hm.Capacity()
		for i := 0; i < totalKeys; i += 2 {
			value, err := hm.Remove(i)
			assert.NoError(t, err, fmt.Sprintf("removes mapping for key %d", i))
			assert.Equal(t, i*2, value, fmt.Sprintf("correct removed value for key %d", i))
		}

		assert.Equal(t, totalKeys/2, hm.Size(), "half of the mappings left")
		assert.Equal(t, capacityBefore, hm.Capacity(), "removals never shrink capacity")

		for i := 1; i < totalKeys; i += 2 {
			value, err := hm.Get(i)
			assert.NoError(t, err, fmt.Sprintf("gets mapping for key %d", i))
			assert.Equal(t, i*2, value, fmt.Sprintf("correct value for key %d", i))
		}
	})
}
