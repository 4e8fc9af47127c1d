package generics

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysSlice(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	// Go map iteration order is random, so repeat to check it is stably sorted.
	for range 100 {
		assert.Equal(t, []int{1, 3, 5}, KeysSlice(m))
	}
	assert.Empty(t, KeysSlice(map[string]int{}))
}

func TestSliceMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, SliceMap([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, SliceMap([]int{}, strconv.Itoa))
}

func TestSumAndMean(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, float32(1.5), Sum([]float32{0.5, 1}))
	assert.Equal(t, 2.5, Mean([]int{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Mean([]int(nil)))
}
