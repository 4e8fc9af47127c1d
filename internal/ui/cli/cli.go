// Package cli implements a command-line display for the game: it renders boards and match results
// to the terminal.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/connectGo/internal/state"
	"golang.org/x/term"
)

// printCentered prints the block of text centered in the terminal, or without indentation if stdout
// is not a terminal.
func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := lipgloss.Width(block)
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI renders boards in the terminal, optionally with colors.
type UI struct {
	color bool

	discStyles  [NumPlayers]lipgloss.Style
	frameStyle  lipgloss.Style
	bannerStyle lipgloss.Style
	drawStyle   lipgloss.Style
}

// New creates a UI. If color is false, plain text is rendered.
func New(color bool) *UI {
	ui := &UI{color: color}
	if color {
		ui.discStyles[PlayerFirst] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		ui.discStyles[PlayerSecond] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		ui.frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		ui.bannerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("10")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
		ui.drawStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
	}
	return ui
}

func (ui *UI) render(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// PlayerLabel returns the player name with its symbol, e.g. "First Player (x)".
func (ui *UI) PlayerLabel(player PlayerNum) string {
	label := fmt.Sprintf("%s Player (%s)", player, player.Symbol())
	if player == PlayerInvalid {
		return label
	}
	return ui.render(ui.discStyles[player], label)
}

// RenderBoard returns the board drawn as text, top row first, with the column numbers at the bottom.
func (ui *UI) RenderBoard(board *Board) string {
	var sb strings.Builder
	bar := ui.render(ui.frameStyle, "|")
	for row := board.Height - 1; row >= 0; row-- {
		sb.WriteString(bar)
		for column := range board.Width {
			cell := board.CellAt(row, column)
			symbol := cell.String()
			if !cell.IsEmpty() {
				symbol = ui.render(ui.discStyles[cell.Player()], symbol)
			}
			sb.WriteString(" " + symbol + " " + bar)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(ui.render(ui.frameStyle, "+"+strings.Repeat("---+", board.Width)))
	sb.WriteString("\n ")
	for column := range board.Width {
		label := strconv.Itoa(column)
		sb.WriteString(" " + label + strings.Repeat(" ", 3-len(label)))
	}
	return strings.TrimRight(sb.String(), " ")
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(board *Board) {
	printCentered(ui.RenderBoard(board))
}

// PrintPlayer prints the label of the player to move.
func (ui *UI) PrintPlayer(board *Board) {
	fmt.Print(ui.PlayerLabel(board.NextPlayer))
}

// Print the move number, the board and, if the match is not over, the player to move.
func (ui *UI) Print(board *Board) {
	fmt.Printf("\nMove #%d\n\n", board.MoveNumber)
	ui.PrintBoard(board)
	fmt.Println()
	if !board.IsOver() {
		fmt.Print("\tTurn to play: ")
		ui.PrintPlayer(board)
		fmt.Println()
	}
}

// WinnerMessage returns the outcome of a finished match: "X won!", "O won!" or "Players tied.".
func WinnerMessage(board *Board) string {
	winner := board.Winner()
	if winner == PlayerInvalid {
		return "Players tied."
	}
	return fmt.Sprintf("%s won!", strings.ToUpper(winner.Symbol()))
}

// PrintWinner prints the outcome of the match in a banner.
func (ui *UI) PrintWinner(board *Board) {
	style := ui.bannerStyle
	if board.Winner() == PlayerInvalid {
		style = ui.drawStyle
	}
	fmt.Println()
	printCentered(ui.render(style, WinnerMessage(board)))
	fmt.Println()
}
