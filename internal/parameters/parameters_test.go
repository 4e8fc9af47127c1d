package parameters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("max_depth=7, no_pruning,,name=a=b")
	assert.Equal(t, Params{"max_depth": "7", "no_pruning": "", "name": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("depth=5,seed=18446744073709551615,flag,off=false,ratio=0.5,time=2s,name=ab")

	depth, err := GetParamOr(params, "depth", 7)
	require.NoError(t, err)
	assert.Equal(t, 5, depth)

	missing, err := GetParamOr(params, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	seed, err := GetParamOr(params, "seed", uint64(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), seed)

	flag, err := GetParamOr(params, "flag", false)
	require.NoError(t, err)
	assert.True(t, flag)

	off, err := GetParamOr(params, "off", true)
	require.NoError(t, err)
	assert.False(t, off)

	ratio, err := GetParamOr(params, "ratio", float32(1))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), ratio)

	ratio64, err := GetParamOr(params, "ratio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio64)

	duration, err := GetParamOr(params, "time", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, duration)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "ab", name)

	// Nothing was removed.
	assert.Len(t, params, 7)
}

func TestParseErrors(t *testing.T) {
	params := NewFromConfigString("depth=deep,flag=maybe,seed=-1")
	_, err := GetParamOr(params, "depth", 7)
	assert.ErrorContains(t, err, "depth=\"deep\"")
	_, err = GetParamOr(params, "flag", false)
	assert.Error(t, err)
	_, err = GetParamOr(params, "seed", uint64(1))
	assert.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("depth=5,unknown,other=1")
	depth, err := PopParamOr(params, "depth", 7)
	require.NoError(t, err)
	assert.Equal(t, 5, depth)
	assert.NotContains(t, params, "depth")

	err = CheckAllUsed(params)
	assert.ErrorContains(t, err, "unknown parameters \"other\", \"unknown\"")

	delete(params, "unknown")
	delete(params, "other")
	assert.NoError(t, CheckAllUsed(params))
}
