// Package spinner shows progress on stderr while tally loads remote sources.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Frames are the animation frames drawn on a terminal.
var Frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a progress indicator. On a terminal it animates in place;
// any other writer gets the message once as a plain status line.
type Spinner struct {
	delay   time.Duration
	writer  io.Writer
	animate bool
	active  bool
	message string
	mu      sync.RWMutex
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a spinner writing to writer.
// ctx allows for cancellation of the spinner goroutine.
func New(ctx context.Context, writer io.Writer, message string) *Spinner {
	return &Spinner{
		delay:   80 * time.Millisecond,
		writer:  writer,
		animate: isTerminal(writer),
		message: message,
		parent:  ctx,
	}
}

// Start begins the spinner animation, or prints the status line for non-terminal writers.
// A stopped spinner can be started again.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true
	s.ctx, s.cancel = context.WithCancel(s.parent)

	if !s.animate {
		fmt.Fprintln(s.writer, s.message)
		return
	}

	s.wg.Add(1)
	go s.run()
}

// Stop stops the spinner and clears its line on a terminal.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	animate := s.animate
	s.mu.Unlock()

	if !animate {
		return
	}

	s.wg.Wait()
	fmt.Fprint(s.writer, "\r\033[2K")
}

// IsActive returns whether the spinner is currently running
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// UpdateMessage updates the spinner message. A running static spinner
// prints the new message as another status line.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == s.message {
		return
	}
	s.message = message
	if s.active && !s.animate {
		fmt.Fprintln(s.writer, message)
	}
}

// run is the animation loop.
func (s *Spinner) run() {
	defer s.wg.Done()

	s.mu.RLock()
	done := s.ctx.Done()
	s.mu.RUnlock()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frameIndex := 0; ; frameIndex++ {
		s.mu.RLock()
		frame := Frames[frameIndex%len(Frames)]
		message := s.message
		s.mu.RUnlock()

		fmt.Fprintf(s.writer, "\r%s %s", frame, message)

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
