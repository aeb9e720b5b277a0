package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Progress is a single-line progress indicator for the tag lookups.
//
// Fields:
//   - writer: Destination for progress output (typically os.Stderr)
//   - total: Total number of steps
//   - current: Completed steps
//   - message: Text shown before the counter
//   - mu: Guards all mutable state
//   - lastWidth: Width of the last rendered line, used for clearing
type Progress struct {
	writer    io.Writer
	total     int
	current   int
	message   string
	mu        sync.Mutex
	lastWidth int
}

// NewProgress creates a progress indicator. Nothing is written until the
// first Increment.
//
// Parameters:
//   - writer: Destination for progress output
//   - total: Total number of steps
//   - message: Text to display, e.g. "Checking packages"
//
// Returns:
//   - *Progress: A new progress indicator
func NewProgress(writer io.Writer, total int, message string) *Progress {
	return &Progress{
		writer:  writer,
		total:   total,
		message: message,
	}
}

// Increment advances the progress by one step and re-renders the line.
// It is safe for concurrent use.
func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	p.render()
}

// Clear erases the progress line so that regular output starts at column 0.
func (p *Progress) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastWidth > 0 {
		_, _ = fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", p.lastWidth))
		p.lastWidth = 0
	}
}

// render writes the current state. Callers hold p.mu.
func (p *Progress) render() {
	if p.total <= 0 {
		return
	}
	line := fmt.Sprintf("%s: %d/%d", p.message, p.current, p.total)
	if n := DisplayWidth(line); n < p.lastWidth {
		line += strings.Repeat(" ", p.lastWidth-n)
	}
	p.lastWidth = DisplayWidth(line)
	_, _ = fmt.Fprint(p.writer, "\r"+line)

	if f, ok := p.writer.(*os.File); ok {
		_ = f.Sync()
	}
}
