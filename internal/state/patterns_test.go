package state_test

import (
	"testing"

	"github.com/chewxy/math32"
	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestPatterns(t *testing.T) {
	assert.Equal(t, "horizontal", Patterns[0].Name)
	assert.Equal(t, 1, Patterns[0].Rows)
	assert.Equal(t, 4, Patterns[0].Columns)
	assert.Equal(t, 4, Patterns[1].Rows)
	assert.Equal(t, 1, Patterns[1].Columns)
	for _, p := range Patterns[2:] {
		assert.Equal(t, 4, p.Rows)
		assert.Equal(t, 4, p.Columns)
	}
	assert.Equal(t, Offset{Row: 0, Column: 3}, Patterns[3].Offsets[0])
	assert.Equal(t, Offset{Row: 3, Column: 0}, Patterns[3].Offsets[3])
}

func TestCorrelate(t *testing.T) {
	b := BoardFromMoves(7, 6, 0, 6, 1, 6, 2)
	var sums []int
	fits := b.Correlate(PlayerFirst, Patterns[0], func(sum int) bool {
		sums = append(sums, sum)
		return true
	})
	assert.True(t, fits)
	// 6 rows x 4 horizontal positions, only the bottom row has discs.
	assert.Len(t, sums, 24)
	assert.Equal(t, []int{3, 2, 1, 0}, sums[:4])

	// Pattern that doesn't fit.
	small := NewBoardWithSize(3, 6)
	assert.False(t, small.Correlate(PlayerFirst, Patterns[0], func(int) bool { return true }))
	assert.False(t, small.HasWin(PlayerFirst))
	assert.Equal(t, float32(0), small.HeuristicScore(PlayerFirst))
}

func TestHeuristicScoreLastPatternOnly(t *testing.T) {
	// First has 3 in the bottom row, Second 2 stacked in the last column.
	b := BoardFromMoves(7, 6, 0, 6, 1, 6, 2)
	assert.Equal(t, PlayerSecond, b.NextPlayer)

	// Only the anti-diagonal (last pattern) value is kept: a single row of discs gives 1.
	assert.Equal(t, float32(1), b.HeuristicScore(PlayerFirst))
	assert.Equal(t, float32(3), b.BestDirectionalScore(PlayerFirst))
	assert.Equal(t, float32(1), b.HeuristicScore(PlayerSecond))
	assert.Equal(t, float32(2), b.BestDirectionalScore(PlayerSecond))

	// Second to move: score is the negated heuristic of Second.
	assert.Equal(t, float32(-1), b.PositionalEval())
	assert.Equal(t, float32(-2), b.EvalWith(b.BestDirectionalScore))

	// First to move.
	b.Play(5)
	assert.Equal(t, PlayerFirst, b.NextPlayer)
	assert.Equal(t, float32(1), b.PositionalEval())
}

func TestHeuristicScoreAntiDiagonal(t *testing.T) {
	b := BoardFromLayout(
		".......",
		".x.....",
		".ox....",
		".oox...",
	)
	assert.Equal(t, float32(3), b.HeuristicScore(PlayerFirst))
}

func TestPositionalEvalTerminal(t *testing.T) {
	firstWins := BoardFromMoves(7, 6, 0, 0, 1, 1, 2, 2, 3)
	assert.True(t, math32.IsInf(firstWins.PositionalEval(), 1))

	secondWins := BoardFromMoves(7, 6, 0, 6, 1, 6, 0, 6, 1, 6)
	assert.True(t, math32.IsInf(secondWins.PositionalEval(), -1))

	assert.Equal(t, float32(0), NewBoard().PositionalEval())
}
