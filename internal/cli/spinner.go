package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// spinner is a single-line activity indicator shown while a slow operation
// runs, such as a Graphviz render of a large edge list. It animates on
// stderr so stdout stays clean for piped edge output, and it erases itself
// when the surrounding context is cancelled.
type spinner struct {
	message  string
	out      io.Writer
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// spinnerFrames cycle at spinnerInterval while the spinner runs.
var spinnerFrames = []string{"⠷", "⠯", "⠟", "⠻", "⠽", "⠾"}

const spinnerInterval = 100 * time.Millisecond

// newSpinner creates a spinner bound to ctx. Cancelling ctx erases the
// spinner line; otherwise the caller ends it with Stop or a StopWith helper.
func newSpinner(ctx context.Context, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		out:     os.Stderr,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Every Start must be paired with a Stop.
func (s *spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.erase()
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s",
					styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]),
					StyleDim.Render(s.message))
			}
		}
	}()
}

// Stop halts the animation, waits for the line to be erased, and is safe to
// call more than once.
func (s *spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// erase blanks the spinner's line: the frame, the separating space, and the
// message.
func (s *spinner) erase() {
	fmt.Fprintf(s.out, "\r%*s\r", len(s.message)+2, "")
}

// StopWithSuccess stops the spinner and prints a success line in its place.
func (s *spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}
