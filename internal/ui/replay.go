package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tabshell/internal/ui/render"
)

// ErrInputClosed is returned by a ScriptSource that runs out of events.
var ErrInputClosed = errors.New("input closed")

// ScriptSource reads events from text, one per line. A line is a key name,
// optionally prefixed with "press:", "repeat:" or "release:", or the word
// "other" for a non-key event. Blank lines and lines starting with '#' are
// skipped.
type ScriptSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewScriptSource reads events from r.
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{scanner: bufio.NewScanner(r)}
}

// Next implements EventSource.
func (s *ScriptSource) Next() (Event, error) {
	for s.scanner.Scan() {
		s.line++
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseScriptLine(text)
		if err != nil {
			return Event{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		return ev, nil
	}
	if err := s.scanner.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, ErrInputClosed
}

func parseScriptLine(text string) (Event, error) {
	if text == "other" {
		return Event{Type: EventOther}, nil
	}
	kind := KeyPress
	if prefix, rest, ok := strings.Cut(text, ":"); ok && rest != "" {
		switch prefix {
		case "press":
			kind, text = KeyPress, rest
		case "repeat":
			kind, text = KeyRepeat, rest
		case "release":
			kind, text = KeyRelease, rest
		}
	}
	if text == "" {
		return Event{}, errors.New("empty key")
	}
	return Event{Type: EventKey, Key: text, Kind: kind}, nil
}

// FramePrinter is a Drawer that writes each committed frame to an
// io.Writer, separated by a blank line.
type FramePrinter struct {
	w      io.Writer
	width  int
	height int
	frames int
}

// NewFramePrinter writes frames of the given size to w.
func NewFramePrinter(w io.Writer, width, height int) *FramePrinter {
	return &FramePrinter{w: w, width: width, height: height}
}

// Draw implements Drawer.
func (p *FramePrinter) Draw(fn func(render.Frame)) error {
	canvas := render.NewCanvas(p.width, p.height)
	fn(canvas)
	sep := ""
	if p.frames > 0 {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(p.w, "%s%s\n", sep, canvas.Commit()); err != nil {
		return err
	}
	p.frames++
	return nil
}

// Frames returns how many frames have been written.
func (p *FramePrinter) Frames() int {
	return p.frames
}
