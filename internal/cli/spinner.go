package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// renderSpinner animates a single status line while the graph command
// renders. The text after the frame names the current stage, for example
// "svg: laying out 4 rows", and is replaced with Stage as rendering moves
// on. The spinner stops by itself when its context is cancelled.
type renderSpinner struct {
	w       io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu       sync.Mutex
	format   string
	stage    string
	width    int // widest line drawn so far
	frames   int
	started  bool
	byCaller bool
}

// newRenderSpinner creates a spinner for rendering rows as format. It
// draws to w once started.
func newRenderSpinner(ctx context.Context, w io.Writer, format string, rows int) *renderSpinner {
	ctx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		w:       w,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		format:  format,
		stage:   fmt.Sprintf("laying out %d %s", rows, plural(rows, "row")),
	}
}

// Start begins the animation.
func (s *renderSpinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw()
			}
		}
	}()
}

// Stage replaces the stage text.
func (s *renderSpinner) Stage(format string, args ...any) {
	s.mu.Lock()
	s.stage = fmt.Sprintf(format, args...)
	s.mu.Unlock()
}

// Text returns the line the next frame shows, without the frame.
func (s *renderSpinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text()
}

func (s *renderSpinner) text() string { return s.format + ": " + s.stage }

func (s *renderSpinner) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.text()
	s.width = max(s.width, len(line)+2)
	frame := spinnerFrames[s.frames%len(spinnerFrames)]
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
	s.frames++
}

func (s *renderSpinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frames == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *renderSpinner) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.byCaller = s.ctx.Err() == nil
		started := s.started
		s.mu.Unlock()
		s.cancel()
		if started {
			<-s.stopped
		}
	})
}

// Fail stops the spinner and reports the stage that failed.
func (s *renderSpinner) Fail() {
	s.Stop()
	s.mu.Lock()
	stage := s.stage
	s.mu.Unlock()
	printError("Rendering %s failed while %s", s.format, stage)
}

// Cancelled reports whether the spinner ended because the caller's
// context was cancelled rather than through Stop.
func (s *renderSpinner) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Err() != nil && !s.byCaller
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
