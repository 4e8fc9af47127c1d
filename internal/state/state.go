// Package state holds the Connect Four board: cells, players, side to move, and the queries
// (legality, wins, end of game, scores) used by the searchers.
package state

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

const (
	// DefaultWidth is the number of columns in the standard board.
	DefaultWidth = 7

	// DefaultHeight is the number of rows in the standard board.
	DefaultHeight = 6

	// ConnectN is the number of aligned discs needed to win.
	ConnectN = 4

	// NumPlayers is fixed to 2.
	NumPlayers = 2

	// NoMove is returned by searchers and players when there is no move to play.
	NoMove = -1
)

// PlayerNum is the either 0 or 1 corresponding to the first player to move or the second player to move.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum, or no player (e.g.: no winner).
	PlayerInvalid
)

var playerNames = [...]string{"First", "Second", "Invalid"}

// String returns "First", "Second" or "Invalid".
func (p PlayerNum) String() string {
	if int(p) >= len(playerNames) {
		return playerNames[PlayerInvalid]
	}
	return playerNames[p]
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// Symbol used for the player in text renderings: "x" for the first player, "o" for the second.
func (p PlayerNum) Symbol() string {
	switch p {
	case PlayerFirst:
		return "x"
	case PlayerSecond:
		return "o"
	}
	return " "
}

// Cell is the content of one position of the board: either Empty or the disc of one of the players.
type Cell uint8

const (
	Empty Cell = iota
	FirstCell
	SecondCell
)

// CellFor returns the occupied Cell for the given player.
func CellFor(player PlayerNum) Cell {
	return Cell(player + 1)
}

// IsEmpty returns whether there is no disc in the cell.
func (c Cell) IsEmpty() bool { return c == Empty }

// Player owning the disc in the cell, or PlayerInvalid if the cell is empty.
func (c Cell) Player() PlayerNum {
	if c == Empty {
		return PlayerInvalid
	}
	return PlayerNum(c - 1)
}

// String returns the symbol of the player owning the cell, or a space.
func (c Cell) String() string {
	return c.Player().Symbol()
}

// Board represents the state of a match.
//
// Row 0 is the bottom row: discs are dropped in a column and fall to the lowest empty row.
// The zero value is not usable, create it with NewBoard or NewBoardWithSize.
type Board struct {
	Width, Height int

	// NextPlayer is the side to move.
	NextPlayer PlayerNum

	// MoveNumber is the number of moves played so far, which also matches the number of
	// occupied cells.
	MoveNumber int

	// cells is indexed by row*Width + column.
	cells []Cell
}

// NewBoard creates an empty board with the standard size (DefaultWidth x DefaultHeight).
func NewBoard() *Board {
	return NewBoardWithSize(DefaultWidth, DefaultHeight)
}

// NewBoardWithSize creates an empty board with the given number of columns (width) and rows (height).
// The first player is the one to move.
//
// It panics if width or height are not positive.
func NewBoardWithSize(width, height int) *Board {
	if width <= 0 || height <= 0 {
		exceptions.Panicf("invalid board size %dx%d, width and height must be positive", width, height)
	}
	return &Board{
		Width:      width,
		Height:     height,
		NextPlayer: PlayerFirst,
		cells:      make([]Cell, width*height),
	}
}

// Clone returns a full copy of the board, that can be changed without affecting the original.
func (b *Board) Clone() *Board {
	newB := *b
	newB.cells = make([]Cell, len(b.cells))
	copy(newB.cells, b.cells)
	return &newB
}

// Equal returns whether both boards have the same size, cells and player to move.
func (b *Board) Equal(b2 *Board) bool {
	if b.Width != b2.Width || b.Height != b2.Height || b.NextPlayer != b2.NextPlayer {
		return false
	}
	for ii, cell := range b.cells {
		if cell != b2.cells[ii] {
			return false
		}
	}
	return true
}

// CellAt returns the contents of the board at the given row and column.
// Out-of-board positions are reported as Empty.
func (b *Board) CellAt(row, column int) Cell {
	if row < 0 || row >= b.Height || column < 0 || column >= b.Width {
		return Empty
	}
	return b.cells[row*b.Width+column]
}

// ColumnHeight returns the number of discs in the column.
func (b *Board) ColumnHeight(column int) int {
	if column < 0 || column >= b.Width {
		return 0
	}
	for row := 0; row < b.Height; row++ {
		if b.cells[row*b.Width+column] == Empty {
			return row
		}
	}
	return b.Height
}

// IsValidMove returns whether a disc can be dropped in the column: it must be within the board and
// must not be full.
func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.Width {
		return false
	}
	return b.cells[(b.Height-1)*b.Width+column] == Empty
}

// LegalMoves returns the columns that accept a disc, in ascending order.
// It is empty if the board is full.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.Width)
	for column := 0; column < b.Width; column++ {
		if b.IsValidMove(column) {
			moves = append(moves, column)
		}
	}
	return moves
}

// Play drops a disc of NextPlayer in the given column, and passes the turn to the opponent.
//
// It returns false, and leaves the board untouched, if the move is not valid.
func (b *Board) Play(column int) bool {
	if !b.IsValidMove(column) {
		return false
	}
	row := b.ColumnHeight(column)
	b.cells[row*b.Width+column] = CellFor(b.NextPlayer)
	b.NextPlayer = b.NextPlayer.Opponent()
	b.MoveNumber++
	return true
}

// IsFull returns whether every cell of the board is occupied.
func (b *Board) IsFull() bool {
	// With gravity, the board is full if the top row is full.
	top := b.cells[(b.Height-1)*b.Width:]
	for _, cell := range top {
		if cell == Empty {
			return false
		}
	}
	return true
}

// IsOver returns whether the match is finished: either player has won, or there are no legal moves.
func (b *Board) IsOver() bool {
	return b.HasWin(PlayerFirst) || b.HasWin(PlayerSecond) || len(b.LegalMoves()) == 0
}

// Winner returns the player that has 4 in a row, or PlayerInvalid if none.
func (b *Board) Winner() PlayerNum {
	for _, player := range []PlayerNum{PlayerFirst, PlayerSecond} {
		if b.HasWin(player) {
			return player
		}
	}
	return PlayerInvalid
}

// String renders the board in ASCII, top row first, e.g.: "| x | o |   |...".
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.Height - 1; row >= 0; row-- {
		sb.WriteString("|")
		for column := 0; column < b.Width; column++ {
			_, _ = fmt.Fprintf(&sb, " %s |", b.CellAt(row, column))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// SetCell overwrites the contents of a cell, keeping MoveNumber matching the number of discs.
// It doesn't check for gravity nor changes NextPlayer: it is meant to build positions for tests
// and puzzles. Use Play during a match.
func (b *Board) SetCell(row, column int, cell Cell) {
	if row < 0 || row >= b.Height || column < 0 || column >= b.Width {
		exceptions.Panicf("SetCell(%d, %d) out of a %dx%d board", row, column, b.Width, b.Height)
	}
	idx := row*b.Width + column
	if b.cells[idx] != Empty {
		b.MoveNumber--
	}
	if cell != Empty {
		b.MoveNumber++
	}
	b.cells[idx] = cell
}
