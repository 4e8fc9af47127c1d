// Package searchers defines the Searcher interface, implemented by the search algorithms, and a trivial
// random searcher.
package searchers

import (
	. "github.com/janpfeifer/connectGo/internal/state"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the column to play on the given board, and the expected score (from the first
	// player's perspective) of playing it.
	//
	// If the board is finished (or the search is cut before any move is considered), it returns
	// NoMove, and the score is the static evaluation of the board.
	Search(board *Board) (move int, score float32)
}
