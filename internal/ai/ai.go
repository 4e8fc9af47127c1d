// Package ai (Artificial Intelligence) defines the scorers used by the searchers to evaluate
// positions where the search is cut short.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
)

// WinGameScore for the first player. For the second player winning it is -WinGameScore.
var WinGameScore = math32.Inf(1)

// ValueScorer returns a score (value) for a given board, from the first player's perspective:
// positive values favour the first player, negative values the second player.
type ValueScorer interface {
	Score(board *Board) float32
	String() string
}

// Convolution scores non-finished boards with Board.HeuristicScore, the streak count of the player to move,
// as returned by Board.PositionalEval.
type Convolution struct{}

// Assert Convolution is a ValueScorer.
var _ ValueScorer = Convolution{}

// Score implements ValueScorer.
func (Convolution) Score(board *Board) float32 {
	return board.PositionalEval()
}

// String implements ValueScorer.
func (Convolution) String() string { return "convolution" }

// BestDirection is like Convolution, but uses the longest streak over all directions
// (Board.BestDirectionalScore).
type BestDirection struct{}

// Assert BestDirection is a ValueScorer.
var _ ValueScorer = BestDirection{}

// Score implements ValueScorer.
func (BestDirection) Score(board *Board) float32 {
	return board.EvalWith(board.BestDirectionalScore)
}

// String implements ValueScorer.
func (BestDirection) String() string { return "best_direction" }

// DefaultScorerName is used if no scorer is configured.
const DefaultScorerName = "convolution"

// NewScorer returns the scorer with the given name: "convolution" or "best_direction".
// An empty name returns the default one.
func NewScorer(name string) (ValueScorer, error) {
	switch name {
	case "", Convolution{}.String():
		return Convolution{}, nil
	case BestDirection{}.String():
		return BestDirection{}, nil
	}
	return nil, errors.Errorf("unknown scorer %q, valid values are %q or %q",
		name, Convolution{}.String(), BestDirection{}.String())
}

// IsEndGameAndScore returns whether it's the end of the game, and the hard-coded score of a win/loss/draw
// from the first player's perspective if it is finished.
// If isEnd is false, the score should be ignored.
func IsEndGameAndScore(b *Board) (isEnd bool, score float32) {
	switch {
	case b.HasWin(PlayerFirst):
		return true, WinGameScore
	case b.HasWin(PlayerSecond):
		return true, -WinGameScore
	case len(b.LegalMoves()) == 0:
		return true, 0
	}
	return false, 0
}
