// Package alphabeta implements a depth-limited minimax search with alpha-beta pruning.
package alphabeta

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/connectGo/internal/ai"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/janpfeifer/connectGo/internal/ui/cli"
	"k8s.io/klog/v2"
)

// Searcher implements the searchers.Searcher interface.
// It is used by players.SearcherPlayer to implement an AI player (players.Player interface).
//
// The Searcher owns its random number generator, used to shuffle the order in which moves are
// explored, so it is not safe for concurrent use: create one per match.
type Searcher struct {
	maxDepth    int
	pruning     bool
	parallelism int
	seed        uint64
	rng         *rand.Rand
	scorer      ai.ValueScorer
	stats       Stats
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes "played" during search: a move played on a copy of a board.
	Nodes int

	// LeafEvals is the number of boards passed to the scorer, including finished boards.
	LeafEvals int

	// Prunes is the number of times the scanning of moves was cut short.
	Prunes int
}

func (s *Stats) add(s2 Stats) {
	s.Nodes += s2.Nodes
	s.LeafEvals += s2.LeafEvals
	s.Prunes += s2.Prunes
}

const (
	// DefaultMaxDepth for search, in plies.
	DefaultMaxDepth = 7

	// DefaultSeed for the random number generator used to shuffle the moves.
	DefaultSeed = 402
)

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// There are other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the scorer used when the search reaches the max depth.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
func New(scorer ai.ValueScorer) *Searcher {
	ab := &Searcher{
		scorer:   scorer,
		maxDepth: DefaultMaxDepth,
		pruning:  true,
	}
	return ab.WithSeed(DefaultSeed)
}

// WithMaxDepth sets the max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// A depth of 0 (or less) means the board is only scored, and no move is returned.
// The default is 7 (DefaultMaxDepth).
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	ab.maxDepth = maxDepth
	return ab
}

// WithSeed resets the random number generator used to shuffle the order in which moves are explored.
// Among moves with the same score, the first one explored is chosen, so the seed determines which
// one is taken.
//
// The default is 402 (DefaultSeed).
func (ab *Searcher) WithSeed(seed uint64) *Searcher {
	ab.seed = seed
	ab.rng = rand.New(rand.NewPCG(seed, seed))
	return ab
}

// WithPruning enables or disables the alpha-beta pruning. Without pruning the search is an exhaustive
// minimax, which returns the same score and move, only slower.
//
// The default is true.
func (ab *Searcher) WithPruning(pruning bool) *Searcher {
	ab.pruning = pruning
	return ab
}

// WithParallelism sets the number of goroutines used to search the moves at the root of the tree.
// Values <= 1 mean the search is sequential. The result is the same either way.
//
// In parallel mode each root move is searched with its own random number generator, seeded from the
// Searcher's one, so the sequence of shuffles in the following searches differs from sequential mode.
func (ab *Searcher) WithParallelism(parallelism int) *Searcher {
	ab.parallelism = parallelism
	return ab
}

// MaxDepth of the search.
func (ab *Searcher) MaxDepth() int { return ab.maxDepth }

// LastStats returns the stats of the last search.
func (ab *Searcher) LastStats() Stats { return ab.stats }

// String returns a description of the searcher configuration.
func (ab *Searcher) String() string {
	s := fmt.Sprintf("αβ(depth=%d, scorer=%s, seed=%d", ab.maxDepth, ab.scorer, ab.seed)
	if !ab.pruning {
		s += ", no pruning"
	}
	if ab.parallelism > 1 {
		s += fmt.Sprintf(", parallelism=%d", ab.parallelism)
	}
	return s + ")"
}

// searchState holds what is owned exclusively by one thread of search.
type searchState struct {
	rng   *rand.Rand
	stats Stats
}

var muLogBoard sync.Mutex

// Search implements the Searcher interface, searching to the configured max depth.
//
// It returns NoMove if the board is finished or if max depth is 0.
func (ab *Searcher) Search(board *Board) (move int, score float32) {
	start := time.Now()
	if ab.parallelism > 1 {
		move, score = ab.parallelSearch(board)
	} else {
		move, score = ab.SearchWithBounds(board, ab.maxDepth, math32.Inf(-1), math32.Inf(1))
	}
	elapsedTime := time.Since(start).Seconds()
	if klog.V(3).Enabled() {
		muLogBoard.Lock()
		defer muLogBoard.Unlock()
		ui := cli.New(true)
		fmt.Println()
		ui.PrintPlayer(board)
		fmt.Printf(" - Move #%d\n\n", board.MoveNumber)
		ui.PrintBoard(board)
		fmt.Printf("\nBest move found: column %d - shallow score=%.2f, αβ-score=%.2f\n\n",
			move, ab.scorer.Score(board), score)
	}
	if klog.V(2).Enabled() {
		klog.Infof("Counts: %+v", ab.stats)
		klog.Infof("  nodes/s=%.1f, evals/s=%.1f",
			float64(ab.stats.Nodes)/elapsedTime, float64(ab.stats.LeafEvals)/elapsedTime)
	}
	return
}

// SearchWithBounds runs the alpha-beta pruning sequentially on the board, to the given depth, starting with
// the given alpha (best score guaranteed to the first player) and beta (best score guaranteed to the
// second player).
//
// With alpha=-Inf and beta=+Inf, the returned score is the minimax value of the board.
// It returns NoMove if the board is finished or if depth <= 0.
func (ab *Searcher) SearchWithBounds(board *Board, depth int, alpha, beta float32) (move int, score float32) {
	st := &searchState{rng: ab.rng}
	move, score = ab.recursion(st, board, depth, alpha, beta)
	ab.stats = st.stats
	return
}

// shuffledMoves returns the legal moves of the board in random order.
func shuffledMoves(board *Board, rng *rand.Rand) []int {
	moves := board.LegalMoves()
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves
}

// recursion of the alpha-beta pruning algorithm, with depthLeft plies to go.
//
// The first player maximizes the score, the second player minimizes it. Among moves with the same
// score, the first one in the shuffled order is kept.
func (ab *Searcher) recursion(st *searchState, board *Board, depthLeft int, alpha, beta float32) (
	bestMove int, bestScore float32) {
	if isEnd, score := ai.IsEndGameAndScore(board); isEnd {
		st.stats.LeafEvals++
		return NoMove, score
	}
	if depthLeft <= 0 {
		st.stats.LeafEvals++
		return NoMove, ab.scorer.Score(board)
	}

	moves := shuffledMoves(board, st.rng)
	maximizing := board.NextPlayer == PlayerFirst
	bestMove = moves[0]
	if maximizing {
		bestScore = math32.Inf(-1)
	} else {
		bestScore = math32.Inf(1)
	}
	for _, move := range moves {
		newBoard := board.Clone()
		newBoard.Play(move)
		st.stats.Nodes++
		_, score := ab.recursion(st, newBoard, depthLeft-1, alpha, beta)
		if maximizing {
			if score > bestScore {
				bestScore, bestMove = score, move
			}
			alpha = math32.Max(alpha, bestScore)
		} else {
			if score < bestScore {
				bestScore, bestMove = score, move
			}
			beta = math32.Min(beta, bestScore)
		}

		// Prune: the opponent will never let the match reach here.
		if ab.pruning && alpha >= beta {
			st.stats.Prunes++
			break
		}
	}
	return
}
