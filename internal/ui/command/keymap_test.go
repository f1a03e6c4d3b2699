package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/tabshell/internal/ui/state"
)

func TestResolveDefaultBindings(t *testing.T) {
	km := DefaultKeymap()
	cases := map[string]Command{
		"q":         Quit,
		"ctrl+c":    Quit,
		"left":      Deselect,
		"esc":       Deselect,
		"down":      Next,
		"j":         Next,
		"up":        Previous,
		"k":         Previous,
		"home":      First,
		"G":         Last,
		"1":         ShowHome,
		"2":         ShowList,
		"3":         ShowAbout,
		"tab":       NextView,
		"shift+tab": PreviousView,
		"x":         None,
		"":          None,
	}
	for keyName, want := range cases {
		if got := km.Resolve(keyName); got != want {
			t.Fatalf("Resolve(%q) = %s, want %s", keyName, got, want)
		}
	}
}

func TestOverrideRebindsCommand(t *testing.T) {
	km := DefaultKeymap()
	if err := km.Override(map[string][]string{"next": {"n"}, "previous-view": {"p"}}); err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := km.Resolve("n"); got != Next {
		t.Fatalf("expected n to resolve to next, got %s", got)
	}
	if got := km.Resolve("down"); got != None {
		t.Fatalf("expected down to be unbound, got %s", got)
	}
	if got := km.Resolve("p"); got != PreviousView {
		t.Fatalf("expected p to resolve to previous_view, got %s", got)
	}
	if h := km.Next.Help(); h.Key != "n" || h.Desc != "next" {
		t.Fatalf("expected help n/next, got %#v", h)
	}
}

func TestOverrideEmptyDisables(t *testing.T) {
	km := DefaultKeymap()
	if err := km.Override(map[string][]string{"first": nil}); err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := km.Resolve("g"); got != None {
		t.Fatalf("expected disabled first to resolve to none, got %s", got)
	}
	if got := km.Resolve("q"); got != Quit {
		t.Fatalf("expected q to still quit, got %s", got)
	}
}

func TestOverrideRejectsUnboundQuit(t *testing.T) {
	for _, keys := range [][]string{nil, {}} {
		km := DefaultKeymap()
		err := km.Override(map[string][]string{"quit": keys})
		if !errors.Is(err, ErrQuitUnbound) {
			t.Fatalf("expected ErrQuitUnbound for %#v, got %v", keys, err)
		}
	}
}

func TestOverrideRejectsSharedKey(t *testing.T) {
	km := DefaultKeymap()
	err := km.Override(map[string][]string{"next": {"q"}})
	if !errors.Is(err, ErrKeyConflict) {
		t.Fatalf("expected ErrKeyConflict, got %v", err)
	}
}

func TestOverrideMovesKeyBetweenCommands(t *testing.T) {
	km := DefaultKeymap()
	err := km.Override(map[string][]string{"quit": {"x"}, "next": {"q"}})
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := km.Resolve("q"); got != Next {
		t.Fatalf("expected q to resolve to next, got %s", got)
	}
	if got := km.Resolve("x"); got != Quit {
		t.Fatalf("expected x to resolve to quit, got %s", got)
	}
}

func TestOverrideUnknownCommand(t *testing.T) {
	km := DefaultKeymap()
	err := km.Override(map[string][]string{"launch": {"l"}})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestCommandView(t *testing.T) {
	if v, ok := ShowAbout.View(); !ok || v != state.ViewAbout {
		t.Fatalf("expected about view, got %s (ok=%v)", v, ok)
	}
	if _, ok := Next.View(); ok {
		t.Fatalf("expected next to have no view")
	}
}
