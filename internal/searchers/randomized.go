package searchers

import (
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/connectGo/internal/ai"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// Random is a Searcher that picks uniformly one of the legal moves. It is used as a baseline
// opponent, to compare against.
//
// It is not safe for concurrent use, create one per match.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// Assert Random is a Searcher.
var _ Searcher = (*Random)(nil)

// NewRandom creates a Random searcher, seeded with the given seed.
func NewRandom(seed uint64) *Random {
	return &Random{seed: seed, rng: rand.New(rand.NewPCG(seed, seed))}
}

// Search implements the Searcher interface. The score returned is always 0, except for finished boards,
// where NoMove and the end-game score are returned.
func (r *Random) Search(board *Board) (move int, score float32) {
	if isEnd, score := ai.IsEndGameAndScore(board); isEnd {
		return NoMove, score
	}
	moves := board.LegalMoves()
	move = moves[r.rng.IntN(len(moves))]
	if klog.V(3).Enabled() {
		klog.Infof("random searcher: picked column %d out of %v", move, moves)
	}
	return move, 0
}

// String returns the searcher description, including its seed.
func (r *Random) String() string {
	return fmt.Sprintf("random(seed=%d)", r.seed)
}
