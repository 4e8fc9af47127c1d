package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/connectGo/internal/ui/spinning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setFlags sets the given flags for the duration of the test.
func setFlags(t *testing.T, values map[string]string) {
	for name, value := range values {
		f := flag.Lookup(name)
		require.NotNil(t, f, "flag --%s not defined", name)
		previous := f.Value.String()
		require.NoError(t, flag.Set(name, value))
		t.Cleanup(func() { _ = flag.Set(name, previous) })
	}
}

// countSpinners replaces newSpinner by one that only counts the calls.
func countSpinners(t *testing.T) *int {
	count := new(int)
	newSpinner = func(ctx context.Context) *spinning.Spinning {
		*count++
		return &spinning.Spinning{}
	}
	t.Cleanup(func() { newSpinner = spinning.New })
	return count
}

func randomPlayersFlags() map[string]string {
	return map[string]string{
		"ai1":    "random:seed=1",
		"ai2":    "random:seed=2",
		"width":  "4",
		"height": "4",
		"color":  "false",
	}
}

func TestRunSpinner(t *testing.T) {
	setFlags(t, randomPlayersFlags())
	numSpinners := countSpinners(t)

	setFlags(t, map[string]string{"quiet": "true"})
	require.NoError(t, run(context.Background()))
	assert.Zero(t, *numSpinners)

	setFlags(t, map[string]string{"quiet": "false"})
	require.NoError(t, run(context.Background()))
	assert.Positive(t, *numSpinners)
}

func TestRunErrorFlushesCPUProfile(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "cpu.prof")
	setFlags(t, randomPlayersFlags())
	setFlags(t, map[string]string{"quiet": "true", "cpu_profile": profilePath})
	countSpinners(t)

	// A cancelled context interrupts the match before the first move.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	info, err := os.Stat(profilePath)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "CPU profile not flushed")
}
