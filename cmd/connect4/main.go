// connect4 watches two AI players play a match of Connect Four.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/janpfeifer/connectGo/internal/match"
	"github.com/janpfeifer/connectGo/internal/players"
	_ "github.com/janpfeifer/connectGo/internal/players/default"
	"github.com/janpfeifer/connectGo/internal/profilers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/janpfeifer/connectGo/internal/ui/cli"
	"github.com/janpfeifer/connectGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagAIConfig1 = flag.String("ai1", players.DefaultPlayerConfig, "Configuration of the AI playing first (x).")
	flagAIConfig2 = flag.String("ai2", players.DefaultPlayerConfig, "Configuration of the AI playing second (o).")
	flagWidth     = flag.Int("width", DefaultWidth, "Number of columns of the board.")
	flagHeight    = flag.Int("height", DefaultHeight, "Number of rows of the board.")
	flagQuiet     = flag.Bool("quiet", false, "Quiet mode: only the moves and the last board position are printed.")
	flagColor     = flag.Bool("color", true, "Use colors when printing the board.")

	globalCtx = context.Background()

	// newSpinner is replaced in tests.
	newSpinner = spinning.New
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagWidth <= 0 || *flagHeight <= 0 {
		klog.Fatalf("Invalid board size --width=%d --height=%d", *flagWidth, *flagHeight)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	err := run(globalCtx)
	cancel()
	if err != nil {
		klog.Exitf("Failed to run match: %+v", err)
	}
}

// run plays one match with the players configured by the flags, printing it as it goes.
// Profilers are flushed before it returns.
func run(ctx context.Context) error {
	profilers.Setup(ctx)
	defer profilers.OnQuit()

	first := must.M1(players.New(*flagAIConfig1))
	second := must.M1(players.New(*flagAIConfig2))
	ui := cli.New(*flagColor)
	board := NewBoardWithSize(*flagWidth, *flagHeight)

	// Spinner runs while the AI to move is thinking, except in quiet mode.
	s := &spinning.Spinning{}
	thinking := func() {
		if *flagQuiet {
			return
		}
		fmt.Print("\t")
		ui.PrintPlayer(board)
		fmt.Print(" thinking ")
		s = newSpinner(ctx)
	}
	m := match.New("Two AIs", first, second).
		WithOnMove(func(b *Board, player PlayerNum, move int, score float32) {
			s.Done()
			if *flagQuiet {
				fmt.Printf("%s: column %d (score=%.1f)\n", player, move, score)
			} else {
				fmt.Printf("\rSelected move: %d (score=%.1f)\n", move, score)
				ui.Print(b)
			}
			if !b.IsOver() {
				thinking()
			}
		})

	fmt.Printf("First player (x): %s\nSecond player (o): %s\n", first, second)
	if !*flagQuiet {
		ui.Print(board)
	}
	thinking()
	_, err := m.Run(ctx, board)
	s.Done()
	if err != nil {
		return err
	}
	if *flagQuiet {
		ui.Print(board)
	}
	ui.PrintWinner(board)
	return nil
}
