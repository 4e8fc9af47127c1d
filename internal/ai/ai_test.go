package ai

import (
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScorer(t *testing.T) {
	s, err := NewScorer("")
	require.NoError(t, err)
	assert.Equal(t, "convolution", s.String())

	s, err = NewScorer("best_direction")
	require.NoError(t, err)
	assert.Equal(t, BestDirection{}, s)

	_, err = NewScorer("neural")
	assert.ErrorContains(t, err, "unknown scorer \"neural\"")
}

func TestScorers(t *testing.T) {
	// First has 3 in a row in the bottom row, Second to move.
	b := BoardFromMoves(7, 6, 0, 6, 1, 6, 2)
	assert.Equal(t, float32(-1), Convolution{}.Score(b))
	assert.Equal(t, float32(-2), BestDirection{}.Score(b))

	b.Play(3) // Second blocks, First to move.
	assert.Equal(t, float32(1), Convolution{}.Score(b))
	assert.Equal(t, float32(3), BestDirection{}.Score(b))
}

func TestIsEndGameAndScore(t *testing.T) {
	isEnd, _ := IsEndGameAndScore(NewBoard())
	assert.False(t, isEnd)

	isEnd, score := IsEndGameAndScore(BoardFromMoves(7, 6, 0, 0, 1, 1, 2, 2, 3))
	assert.True(t, isEnd)
	assert.Equal(t, WinGameScore, score)

	isEnd, score = IsEndGameAndScore(BoardFromMoves(7, 6, 0, 6, 1, 6, 0, 6, 1, 6))
	assert.True(t, isEnd)
	assert.Equal(t, -WinGameScore, score)
	assert.Equal(t, score, BestDirection{}.Score(BoardFromMoves(7, 6, 0, 6, 1, 6, 0, 6, 1, 6)))

	// Tiny board filled without a winner.
	draw := BoardFromMoves(2, 2, 0, 0, 1, 1)
	isEnd, score = IsEndGameAndScore(draw)
	assert.True(t, isEnd)
	assert.Equal(t, float32(0), score)
}
