package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestScriptSourceParsesLines(t *testing.T) {
	src := NewScriptSource(strings.NewReader("# comment\n\ndown\nrelease:up\nrepeat:j\nother\npress:q\n"))
	want := []Event{
		KeyEvent("down"),
		{Type: EventKey, Key: "up", Kind: KeyRelease},
		{Type: EventKey, Key: "j", Kind: KeyRepeat},
		{Type: EventOther},
		KeyEvent("q"),
	}
	for i, w := range want {
		got, err := src.Next()
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("event %d: expected %#v, got %#v", i, w, got)
		}
	}
	if _, err := src.Next(); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestScriptSourceKeepsUnknownPrefix(t *testing.T) {
	src := NewScriptSource(strings.NewReader("alt:x\n"))
	got, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got.Key != "alt:x" || got.Kind != KeyPress {
		t.Fatalf("expected literal key alt:x, got %#v", got)
	}
}

func TestReplayPrintsFrames(t *testing.T) {
	var out bytes.Buffer
	printer := NewFramePrinter(&out, 40, 10)
	l := newTestLoop(t, "Item0", "Item1", "Item2")
	src := NewScriptSource(strings.NewReader("2\ndown\nrelease:down\nq\n"))
	if err := l.Run(src, printer); err != nil {
		t.Fatalf("run: %v", err)
	}
	if printer.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", printer.Frames())
	}
	frames := strings.Split(ansi.Strip(out.String()), "\n\n")
	if len(frames) != 3 {
		t.Fatalf("expected 3 printed frames, got %d:\n%s", len(frames), out.String())
	}
	if !strings.Contains(frames[2], ">> Item0") {
		t.Fatalf("expected Item0 highlighted in last frame:\n%s", frames[2])
	}
	if strings.Contains(frames[1], ">>") {
		t.Fatalf("expected no highlight before the first move:\n%s", frames[1])
	}
}
