// Package statetest provides helper functions to create tests using Connect Four boards.
package statetest

import (
	"strings"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/connectGo/internal/state"
)

// BoardFromMoves creates a width x height board and plays the given columns in order.
// It panics if any of the moves is not valid.
func BoardFromMoves(width, height int, moves ...int) *Board {
	b := NewBoardWithSize(width, height)
	for ii, column := range moves {
		if !b.Play(column) {
			exceptions.Panicf("move #%d (column %d) is not valid", ii, column)
		}
	}
	return b
}

// BoardFromLayout creates a board from rows of text, top row first, one character per column:
// 'x' for the first player, 'o' for the second, and '.' (or space) for empty cells.
//
// The side to move is derived from the number of discs: the first player moves if both have the same
// number of discs. It panics if the layout breaks gravity (a disc over an empty cell) or if the rows
// have different lengths.
func BoardFromLayout(rows ...string) *Board {
	if len(rows) == 0 {
		exceptions.Panicf("BoardFromLayout requires at least one row")
	}
	height := len(rows)
	width := len(rows[0])
	b := NewBoardWithSize(width, height)
	var counts [NumPlayers]int
	for ii, text := range rows {
		if len(text) != width {
			exceptions.Panicf("row %d (%q) has %d columns, wanted %d", ii, text, len(text), width)
		}
		row := height - 1 - ii
		for column, ch := range strings.ToLower(text) {
			switch ch {
			case 'x':
				b.SetCell(row, column, FirstCell)
				counts[PlayerFirst]++
			case 'o':
				b.SetCell(row, column, SecondCell)
				counts[PlayerSecond]++
			case '.', ' ':
			default:
				exceptions.Panicf("invalid character %q in row %q", ch, text)
			}
		}
	}
	for column := range width {
		for row := 1; row < height; row++ {
			if !b.CellAt(row, column).IsEmpty() && b.CellAt(row-1, column).IsEmpty() {
				exceptions.Panicf("layout breaks gravity at row %d, column %d", row, column)
			}
		}
	}
	if counts[PlayerFirst] > counts[PlayerSecond] {
		b.NextPlayer = PlayerSecond
	}
	return b
}
