package state

import (
	"errors"
	"testing"
)

func TestNewAppStateDefaults(t *testing.T) {
	s := NewAppState(DefaultItems())
	if s.View() != ViewHome {
		t.Fatalf("expected home view, got %s", s.View())
	}
	if s.List().Len() != 10 {
		t.Fatalf("expected 10 default items, got %d", s.List().Len())
	}
	if s.List().Items()[0] != "Item0" {
		t.Fatalf("expected first item Item0, got %q", s.List().Items()[0])
	}
}

func TestSwitchViewPreservesSelection(t *testing.T) {
	s := NewAppState([]string{"a", "b", "c"})
	s.List().Next()
	s.List().Next()
	for _, v := range Views() {
		s.SwitchView(v)
		if s.View() != v {
			t.Fatalf("expected view %s, got %s", v, s.View())
		}
		idx, ok := s.List().Selected()
		if !ok || idx != 1 {
			t.Fatalf("expected selection 1 to survive switch to %s, got %d (ok=%v)", v, idx, ok)
		}
	}
}

func TestSwitchViewRejectsInvalidView(t *testing.T) {
	s := NewAppState(nil)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid view")
		}
	}()
	s.SwitchView(View(42))
}

func TestCycleViews(t *testing.T) {
	s := NewAppState(nil)
	s.NextView()
	if s.View() != ViewList {
		t.Fatalf("expected list view, got %s", s.View())
	}
	s.NextView()
	s.NextView()
	if s.View() != ViewHome {
		t.Fatalf("expected wrap to home view, got %s", s.View())
	}
	s.PreviousView()
	if s.View() != ViewAbout {
		t.Fatalf("expected wrap back to about view, got %s", s.View())
	}
}

func TestParseView(t *testing.T) {
	cases := map[string]View{
		"home":   ViewHome,
		" List ": ViewList,
		"ABOUT":  ViewAbout,
		"1":      ViewHome,
		"3":      ViewAbout,
	}
	for input, want := range cases {
		got, err := ParseView(input)
		if err != nil {
			t.Fatalf("ParseView(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseView(%q) = %s, want %s", input, got, want)
		}
	}
	for _, bad := range []string{"", "4", "0", "settings"} {
		if _, err := ParseView(bad); !errors.Is(err, ErrUnknownView) {
			t.Fatalf("ParseView(%q) expected ErrUnknownView, got %v", bad, err)
		}
	}
}

func TestViewTitle(t *testing.T) {
	if got := ViewAbout.Title(); got != "About" {
		t.Fatalf("expected About, got %q", got)
	}
	if got := View(9).String(); got != "View(9)" {
		t.Fatalf("expected View(9), got %q", got)
	}
}
