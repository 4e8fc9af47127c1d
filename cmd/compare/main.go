// compare plays many matches between two AI configurations, alternating who plays first, and
// reports the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/janpfeifer/connectGo/internal/generics"
	"github.com/janpfeifer/connectGo/internal/match"
	"github.com/janpfeifer/connectGo/internal/players"
	_ "github.com/janpfeifer/connectGo/internal/players/default"
	"github.com/janpfeifer/connectGo/internal/profilers"
	"github.com/janpfeifer/connectGo/internal/state"
	"github.com/janpfeifer/connectGo/internal/ui/cli"
	"github.com/janpfeifer/connectGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagPlayer1Config = flag.String("ai1", "", "1st AI configuration, e.g. \"ab:max_depth=5\".")
	flagPlayer2Config = flag.String("ai2", "", "2nd AI configuration, e.g. \"random\".")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set -parallelism=1.")
	flagWidth  = flag.Int("width", state.DefaultWidth, "Number of columns of the board.")
	flagHeight = flag.Int("height", state.DefaultHeight, "Number of rows of the board.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags -ai1 and -ai2")
	}
	if *flagWidth <= 0 || *flagHeight <= 0 {
		klog.Fatalf("Invalid board size --width=%d --height=%d", *flagWidth, *flagHeight)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	// Check configurations before starting.
	for _, config := range []string{*flagPlayer1Config, *flagPlayer2Config} {
		_ = must.M1(players.New(config))
	}
	must.M(runMatches(globalCtx))
}

// Results of the comparison. AI-1 and AI-2 are indexed 0 and 1 respectively.
type Results struct {
	mu                   sync.Mutex
	start                time.Time
	winsAs1st, winsAs2nd [2]int
	draws                [2]int
	played, total        int
	matchLengths         []int
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for playerIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d) / ",
				playerIdx+1, r.winsAs1st[playerIdx]+r.winsAs2nd[playerIdx],
				r.winsAs1st[playerIdx], r.winsAs2nd[playerIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d AI-1 as 1st, %d AI-2 as 1st) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	parts = append(parts, fmt.Sprintf("%.1f moves/match - ", generics.Mean(r.matchLengths)))
	parts = append(parts, fmt.Sprintf("%s", time.Since(r.start)))
	parts = append(parts, "\x1b[0K")
	return strings.Join(parts, "")
}

func runMatches(ctx context.Context) error {
	r := &Results{
		start: time.Now(),
		total: *flagNumMatches,
	}
	var wg errgroup.Group
	parallelism := getParallelism()
	wg.SetLimit(parallelism)
	fmt.Printf("\r%s", r)

	for matchIdx := range r.total {
		wg.Go(func() error {
			// Players own their random number generators, so they are created per match.
			configs := [2]string{*flagPlayer1Config, *flagPlayer2Config}
			isSwapped := matchIdx%2 == 1
			player1st := 0
			if isSwapped {
				configs[0], configs[1] = configs[1], configs[0]
				player1st = 1
			}
			var matchPlayers [2]players.Player
			for ii, config := range configs {
				var err error
				matchPlayers[ii], err = players.New(config)
				if err != nil {
					return err
				}
			}
			result, err := runMatch(ctx, matchIdx, matchPlayers)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}

			// Record winner.
			r.mu.Lock()
			defer r.mu.Unlock()
			winner := result.Winner
			if winner == state.PlayerInvalid {
				r.draws[player1st]++
			} else {
				if isSwapped {
					winner = 1 - winner
				}
				if int(winner) == player1st {
					r.winsAs1st[winner]++
				} else {
					r.winsAs2nd[winner]++
				}
			}
			r.played++
			r.matchLengths = append(r.matchLengths, len(result.Moves))
			fmt.Printf("\r%s", r)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s", r)
	fmt.Println()
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   = cli.New(true)
	muStepUI sync.Mutex
)

func runMatch(ctx context.Context, matchNum int, matchPlayers [2]players.Player) (*match.Result, error) {
	matchName := fmt.Sprintf("Match-%05d", matchNum)
	m := match.New(matchName, matchPlayers[0], matchPlayers[1])
	if *flagPrintSteps {
		m.WithOnMove(func(board *state.Board, player state.PlayerNum, move int, score float32) {
			muStepUI.Lock()
			defer muStepUI.Unlock()
			fmt.Printf("%s, move #%d: %s played column %d (score=%.1f)\n\n",
				matchName, board.MoveNumber, player, move, score)
			stepUI.PrintBoard(board)
			fmt.Println()
			fmt.Println("------------------")
		})
	}
	result, err := m.Run(ctx, state.NewBoardWithSize(*flagWidth, *flagHeight))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed %s", matchName)
	}
	return result, nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
