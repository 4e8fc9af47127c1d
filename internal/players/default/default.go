// Package _default registers the default players that can be included in any
// front-end for connectGo.
//
// Currently, it includes alpha-beta pruning ("ab") and a random player ("random").
package _default

import (
	"github.com/janpfeifer/connectGo/internal/ai"
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/players"
	"github.com/janpfeifer/connectGo/internal/searchers"
	"github.com/janpfeifer/connectGo/internal/searchers/alphabeta"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	players.RegisterModule("ab", &AlphaBeta{})
	players.RegisterModule("random", &Random{})
}

// AlphaBeta creates players using alphabeta.Searcher.
//
// Parameters:
//
//   - max_depth (int): Max depth of search, in plies. Default is alphabeta.DefaultMaxDepth.
//   - seed (uint64): Seed used to shuffle the moves explored. Default is alphabeta.DefaultSeed.
//   - scorer (string): "convolution" (default) or "best_direction".
//   - parallelism (int): Number of goroutines used to search the root moves. Default is 0, sequential.
//   - no_pruning (bool): Disables pruning, for an exhaustive minimax.
type AlphaBeta struct{}

// Assert AlphaBeta implements Module.
var _ players.Module = (*AlphaBeta)(nil)

// NewPlayer implements players.Module.
func (AlphaBeta) NewPlayer(params parameters.Params) (players.Player, error) {
	maxDepth, err := parameters.PopParamOr(params, "max_depth", alphabeta.DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("max_depth=%d must be >= 0", maxDepth)
	}
	seed, err := parameters.PopParamOr(params, "seed", uint64(alphabeta.DefaultSeed))
	if err != nil {
		return nil, err
	}
	scorerName, err := parameters.PopParamOr(params, "scorer", ai.DefaultScorerName)
	if err != nil {
		return nil, err
	}
	scorer, err := ai.NewScorer(scorerName)
	if err != nil {
		return nil, err
	}
	parallelism, err := parameters.PopParamOr(params, "parallelism", 0)
	if err != nil {
		return nil, err
	}
	noPruning, err := parameters.PopParamOr(params, "no_pruning", false)
	if err != nil {
		return nil, err
	}
	searcher := alphabeta.New(scorer).
		WithMaxDepth(maxDepth).
		WithSeed(seed).
		WithParallelism(parallelism).
		WithPruning(!noPruning)
	klog.V(1).Infof("Created player %s", searcher)
	return players.NewSearcherPlayer(searcher), nil
}

// Random creates players that pick a random legal move.
//
// Parameters:
//
//   - seed (uint64): Seed of the random number generator. Default is 0.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (Random) NewPlayer(params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", uint64(0))
	if err != nil {
		return nil, err
	}
	return players.NewSearcherPlayer(searchers.NewRandom(seed)), nil
}
