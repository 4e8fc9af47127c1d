package players

import (
	"fmt"

	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherPlayer is a Player that delegates the choice of moves to a searchers.Searcher.
type SearcherPlayer struct {
	Searcher searchers.Searcher
}

// Assert that SearcherPlayer is a Player.
var _ Player = (*SearcherPlayer)(nil)

// NewSearcherPlayer creates a Player from a Searcher.
func NewSearcherPlayer(searcher searchers.Searcher) *SearcherPlayer {
	return &SearcherPlayer{Searcher: searcher}
}

// Play implements the Player interface: it chooses a move given a Board.
func (p *SearcherPlayer) Play(board *Board) (move int, score float32) {
	move, score = p.Searcher.Search(board)
	if klog.V(2).Enabled() {
		klog.Infof("Move #%d: AI (%s) playing column %d, score=%.3f", board.MoveNumber, p, move, score)
	}
	return
}

// String implements the Player interface.
func (p *SearcherPlayer) String() string {
	if s, ok := p.Searcher.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p.Searcher)
}
