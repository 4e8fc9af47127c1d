// Package match runs matches between two players.
package match

import (
	"context"

	"github.com/janpfeifer/connectGo/internal/players"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Result of a finished match.
type Result struct {
	// Winner of the match, or PlayerInvalid if it was a draw.
	Winner PlayerNum

	// Moves played, in order.
	Moves []int

	// Board at the end of the match.
	Board *Board
}

// IsDraw returns whether nobody won.
func (r *Result) IsDraw() bool {
	return r.Winner == PlayerInvalid
}

// OnMoveFn is called after each move is played, with the board after the move.
type OnMoveFn func(board *Board, player PlayerNum, move int, score float32)

// Match configures a match between two players. Create it with New.
type Match struct {
	name    string
	players [NumPlayers]players.Player
	onMove  OnMoveFn
}

// New creates a match between the given players: players[0] plays first.
func New(name string, first, second players.Player) *Match {
	return &Match{name: name, players: [NumPlayers]players.Player{first, second}}
}

// WithOnMove sets a callback called after each move.
func (m *Match) WithOnMove(fn OnMoveFn) *Match {
	m.onMove = fn
	return m
}

// Run the match from the given board, until it is over: while the board is not finished, the player
// to move chooses a move and it is played.
//
// The board is modified in place. It returns an error if a player returns an invalid move, or if the
// context is cancelled (checked before each move).
func (m *Match) Run(ctx context.Context, board *Board) (*Result, error) {
	if klog.V(1).Enabled() {
		klog.Infof("Starting match %q: %s vs %s", m.name, m.players[0], m.players[1])
		defer klog.Infof("Finished match %q", m.name)
	}
	result := &Result{Board: board}
	for !board.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "match %q interrupted at move #%d", m.name, board.MoveNumber)
		}
		playerNum := board.NextPlayer
		player := m.players[playerNum]
		move, score := player.Play(board)
		if move == NoMove {
			return nil, errors.Errorf("match %q: %s player (%s) returned no move at move #%d",
				m.name, playerNum, player, board.MoveNumber)
		}
		if !board.Play(move) {
			return nil, errors.Errorf("match %q: %s player (%s) chose invalid column %d at move #%d",
				m.name, playerNum, player, move, board.MoveNumber)
		}
		result.Moves = append(result.Moves, move)
		if m.onMove != nil {
			m.onMove(board, playerNum, move, score)
		}
	}
	result.Winner = board.Winner()
	return result, nil
}
