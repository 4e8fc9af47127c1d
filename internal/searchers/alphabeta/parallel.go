package alphabeta

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/connectGo/internal/ai"
	. "github.com/janpfeifer/connectGo/internal/state"
	"golang.org/x/sync/errgroup"
)

// parallelSearch searches each of the root moves concurrently, each with a full window and its own
// board and random number generator.
//
// Merging the results in the shuffled order of the root moves, keeping only strict improvements,
// yields the same move and score as the sequential search: there a root move only replaces the best
// one found so far if its score is strictly better, and alpha-beta returns exact scores for those.
func (ab *Searcher) parallelSearch(board *Board) (bestMove int, bestScore float32) {
	if isEnd, score := ai.IsEndGameAndScore(board); isEnd {
		ab.stats = Stats{LeafEvals: 1}
		return NoMove, score
	}
	if ab.maxDepth <= 0 {
		ab.stats = Stats{LeafEvals: 1}
		return NoMove, ab.scorer.Score(board)
	}

	// Root shuffle is the first use of the random number generator, as in the sequential search.
	moves := shuffledMoves(board, ab.rng)
	seeds := make([]uint64, len(moves))
	for ii := range seeds {
		seeds[ii] = ab.rng.Uint64()
	}

	scores := make([]float32, len(moves))
	stats := make([]Stats, len(moves))
	var wg errgroup.Group
	wg.SetLimit(ab.parallelism)
	for ii, move := range moves {
		wg.Go(func() error {
			st := &searchState{rng: rand.New(rand.NewPCG(seeds[ii], seeds[ii]))}
			newBoard := board.Clone()
			newBoard.Play(move)
			st.stats.Nodes++
			_, scores[ii] = ab.recursion(st, newBoard, ab.maxDepth-1, math32.Inf(-1), math32.Inf(1))
			stats[ii] = st.stats
			return nil
		})
	}
	// Searches never fail: errgroup is only used to limit the number of goroutines.
	_ = wg.Wait()

	ab.stats = Stats{}
	for _, s := range stats {
		ab.stats.add(s)
	}
	maximizing := board.NextPlayer == PlayerFirst
	bestMove = moves[0]
	if maximizing {
		bestScore = math32.Inf(-1)
	} else {
		bestScore = math32.Inf(1)
	}
	for ii, score := range scores {
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, bestMove = score, moves[ii]
		}
	}
	return
}
