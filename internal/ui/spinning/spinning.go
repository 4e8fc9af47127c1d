// Package spinning shows a spinning symbol while an AI is thinking, and handles interruptions (Ctrl+C)
// gracefully.
package spinning

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
	"k8s.io/klog/v2"
)

// Spinning is a running spinner, stop it with Done.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	// Theme is the sequence of symbols displayed by the spinner.
	Theme = []rune("◐◓◑◒")

	// Interval between updates of the spinner.
	Interval = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// New starts a spinning display that runs on a separate goroutine, until Spinning.Done is called
// or the context is cancelled.
//
// If stdout is not a terminal, nothing is displayed.
func New(ctx context.Context) *Spinning {
	s := &Spinning{}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		fmt.Print("\033[?25l")       // Hide cursor.
		defer fmt.Print("\033[?25h") // Restore cursor.

		fmt.Print(" ")
		for idx := 0; ; idx = (idx + 1) % len(Theme) {
			fmt.Printf("\b%c", Theme[idx])
			select {
			case <-ctx.Done():
				fmt.Print("\b \b")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the spinner and waits for it to clean up.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
