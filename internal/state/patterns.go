package state

import (
	"github.com/chewxy/math32"
)

// Offset of a cell in a Pattern, relative to the pattern's anchor (its lowest row and column).
type Offset struct {
	Row, Column int
}

// Pattern is a set of ConnectN cells (a "kernel") that, if all occupied by the same player,
// form a winning line. Its Rows x Columns is the bounding box of the offsets.
type Pattern struct {
	Name          string
	Rows, Columns int
	Offsets       [ConnectN]Offset
}

func linePattern(name string, dRow, dColumn, startColumn int) (p Pattern) {
	p.Name = name
	for ii := range ConnectN {
		p.Offsets[ii] = Offset{Row: ii * dRow, Column: startColumn + ii*dColumn}
		p.Rows = max(p.Rows, p.Offsets[ii].Row+1)
		p.Columns = max(p.Columns, p.Offsets[ii].Column+1)
	}
	return
}

// Patterns lists the four directions of a line: horizontal, vertical, diagonal and anti-diagonal.
//
// The order matters for HeuristicScore.
var Patterns = [4]Pattern{
	linePattern("horizontal", 0, 1, 0),
	linePattern("vertical", 1, 0, 0),
	linePattern("diagonal", 1, 1, 0),
	linePattern("anti-diagonal", 1, -1, ConnectN-1),
}

// Correlate slides the pattern over every position where it fits entirely in the board (a "valid"
// correlation), and calls fn with the number of the player's discs covered by the pattern at
// each position. If fn returns false the scan stops.
//
// It returns false if the pattern doesn't fit anywhere in the board.
func (b *Board) Correlate(player PlayerNum, pattern Pattern, fn func(sum int) bool) bool {
	if pattern.Rows > b.Height || pattern.Columns > b.Width {
		return false
	}
	target := CellFor(player)
	for row := 0; row+pattern.Rows <= b.Height; row++ {
		for column := 0; column+pattern.Columns <= b.Width; column++ {
			sum := 0
			for _, offset := range pattern.Offsets {
				if b.cells[(row+offset.Row)*b.Width+column+offset.Column] == target {
					sum++
				}
			}
			if !fn(sum) {
				return true
			}
		}
	}
	return true
}

// maxCorrelation returns the largest number of the player's discs found in any position of the pattern.
// It returns 0 if the pattern doesn't fit in the board.
func (b *Board) maxCorrelation(player PlayerNum, pattern Pattern) int {
	best := 0
	b.Correlate(player, pattern, func(sum int) bool {
		best = max(best, sum)
		return best < ConnectN
	})
	return best
}

// HasWin returns whether the player has ConnectN discs in a row, in any direction.
func (b *Board) HasWin(player PlayerNum) bool {
	for _, pattern := range Patterns {
		if b.maxCorrelation(player, pattern) == ConnectN {
			return true
		}
	}
	return false
}

// HeuristicScore is a coarse score of the player's position, used only when the search is cut short.
//
// It counts partial lines (broken streaks included) of the player's discs. Notice the value of each
// direction overwrites the previous one, so only the last pattern in Patterns (anti-diagonal) is
// reflected in the final value. See BestDirectionalScore for the maximum over all directions.
func (b *Board) HeuristicScore(player PlayerNum) float32 {
	var value float32
	for _, pattern := range Patterns {
		value = float32(b.maxCorrelation(player, pattern))
	}
	return value
}

// BestDirectionalScore is like HeuristicScore, but returns the maximum over all four directions.
func (b *Board) BestDirectionalScore(player PlayerNum) float32 {
	var value float32
	for _, pattern := range Patterns {
		value = math32.Max(value, float32(b.maxCorrelation(player, pattern)))
	}
	return value
}

// PositionalEval scores the board from the first player's perspective:
//
//   - +Inf if the first player won, -Inf if the second player won.
//   - 0 if there are no more legal moves (draw).
//   - Otherwise HeuristicScore of the player to move, negated if it is the second player.
func (b *Board) PositionalEval() float32 {
	return b.EvalWith(b.HeuristicScore)
}

// EvalWith is like PositionalEval, but uses the given heuristic for non-finished boards.
func (b *Board) EvalWith(heuristic func(player PlayerNum) float32) float32 {
	switch {
	case b.HasWin(PlayerFirst):
		return math32.Inf(1)
	case b.HasWin(PlayerSecond):
		return math32.Inf(-1)
	case len(b.LegalMoves()) == 0:
		return 0
	case b.NextPlayer == PlayerFirst:
		return heuristic(b.NextPlayer)
	default:
		return -heuristic(b.NextPlayer)
	}
}
