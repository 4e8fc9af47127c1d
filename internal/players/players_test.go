package players_test

import (
	"testing"

	"github.com/janpfeifer/connectGo/internal/players"
	_ "github.com/janpfeifer/connectGo/internal/players/default"
	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredModules(t *testing.T) {
	assert.Equal(t, []string{"ab", "random"}, players.RegisteredModules())
}

func TestNewAlphaBeta(t *testing.T) {
	p, err := players.New("ab:max_depth=2,seed=3,scorer=best_direction,parallelism=2,no_pruning")
	require.NoError(t, err)
	assert.Equal(t, "αβ(depth=2, scorer=best_direction, seed=3, no pruning, parallelism=2)", p.String())

	p, err = players.New("")
	require.NoError(t, err)
	assert.Equal(t, "αβ(depth=7, scorer=convolution, seed=402)", p.String())

	// Plays the winning move.
	p, err = players.New("ab:max_depth=1")
	require.NoError(t, err)
	move, _ := p.Play(BoardFromMoves(7, 6, 0, 0, 1, 1, 2, 2))
	assert.Equal(t, 3, move)
}

func TestNewRandom(t *testing.T) {
	p, err := players.New("random:seed=5")
	require.NoError(t, err)
	assert.Equal(t, "random(seed=5)", p.String())
	b := NewBoard()
	move, _ := p.Play(b)
	assert.True(t, b.IsValidMove(move))
}

func TestNewErrors(t *testing.T) {
	_, err := players.New("mcts")
	assert.ErrorContains(t, err, "unknown AI player \"mcts\"")

	_, err = players.New("ab:max_depth=two")
	assert.ErrorContains(t, err, "failed to create AI player \"ab\"")

	_, err = players.New("ab:max_depth=-1")
	assert.ErrorContains(t, err, "max_depth=-1")

	_, err = players.New("ab:scorer=neural")
	assert.ErrorContains(t, err, "unknown scorer")

	_, err = players.New("random:depth=3")
	assert.ErrorContains(t, err, "unknown parameters \"depth\"")
}
