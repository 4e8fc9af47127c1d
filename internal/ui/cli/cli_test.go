package cli

import (
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestRenderBoard(t *testing.T) {
	ui := New(false)
	b := BoardFromMoves(3, 2, 1, 1, 0)
	want := "|   | o |   |\n" +
		"| x | x |   |\n" +
		"+---+---+---+\n" +
		"  0   1   2"
	assert.Equal(t, want, ui.RenderBoard(b))
}

func TestPlayerLabel(t *testing.T) {
	ui := New(false)
	assert.Equal(t, "First Player (x)", ui.PlayerLabel(PlayerFirst))
	assert.Equal(t, "Second Player (o)", ui.PlayerLabel(PlayerSecond))
}

func TestWinnerMessage(t *testing.T) {
	assert.Equal(t, "X won!", WinnerMessage(BoardFromMoves(7, 6, 0, 0, 1, 1, 2, 2, 3)))
	assert.Equal(t, "O won!", WinnerMessage(BoardFromMoves(7, 6, 0, 6, 1, 6, 0, 6, 1, 6)))
	assert.Equal(t, "Players tied.", WinnerMessage(BoardFromMoves(2, 2, 0, 0, 1, 1)))
}
