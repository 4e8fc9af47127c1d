package searchers

import (
	"testing"

	"github.com/janpfeifer/connectGo/internal/ai"
	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	// Only columns 1 and 2 are available.
	b := BoardFromLayout(
		"x..o",
		"o..x",
	)
	r := NewRandom(42)
	seen := make(map[int]int)
	for range 100 {
		move, score := r.Search(b)
		assert.Equal(t, float32(0), score)
		assert.True(t, b.IsValidMove(move), "invalid move %d", move)
		seen[move]++
	}
	assert.Len(t, seen, 2)

	// Same seed, same sequence.
	r1, r2 := NewRandom(7), NewRandom(7)
	for range 20 {
		m1, _ := r1.Search(NewBoard())
		m2, _ := r2.Search(NewBoard())
		assert.Equal(t, m1, m2)
	}

	// Finished boards: draw, first player won and second player won.
	move, score := r.Search(BoardFromMoves(2, 2, 0, 0, 1, 1))
	assert.Equal(t, NoMove, move)
	assert.Equal(t, float32(0), score)

	move, score = r.Search(BoardFromMoves(7, 6, 0, 0, 1, 1, 2, 2, 3))
	assert.Equal(t, NoMove, move)
	assert.Equal(t, ai.WinGameScore, score)

	move, score = r.Search(BoardFromMoves(7, 6, 0, 6, 1, 6, 0, 6, 1, 6))
	assert.Equal(t, NoMove, move)
	assert.Equal(t, -ai.WinGameScore, score)
}
