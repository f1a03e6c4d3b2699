package state

import "testing"

func selectedIndex(t *testing.T, l *List[string]) int {
	t.Helper()
	idx, ok := l.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return idx
}

func TestNewListStartsUnselected(t *testing.T) {
	l := NewList([]string{"a", "b"})
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection on a fresh list")
	}
	if _, ok := l.SelectedItem(); ok {
		t.Fatalf("expected no selected item on a fresh list")
	}
}

func TestNewListCopiesItems(t *testing.T) {
	src := []string{"a", "b"}
	l := NewList(src)
	src[0] = "z"
	if l.Items()[0] != "a" {
		t.Fatalf("expected list to own a copy of its items, got %q", l.Items()[0])
	}
}

func TestNextVisitsIndicesCyclically(t *testing.T) {
	for n := 1; n <= 5; n++ {
		l := NewList(make([]string, n))
		for step := 0; step < 3*n; step++ {
			l.Next()
			if got, want := selectedIndex(t, l), step%n; got != want {
				t.Fatalf("n=%d step=%d: expected index %d, got %d", n, step, want, got)
			}
		}
	}
}

func TestPreviousVisitsIndicesCyclically(t *testing.T) {
	for n := 1; n <= 5; n++ {
		l := NewList(make([]string, n))
		l.Previous()
		if got := selectedIndex(t, l); got != 0 {
			t.Fatalf("n=%d: expected first previous to select 0, got %d", n, got)
		}
		want := 0
		for step := 0; step < 3*n; step++ {
			l.Previous()
			want = (want + n - 1) % n
			if got := selectedIndex(t, l); got != want {
				t.Fatalf("n=%d step=%d: expected index %d, got %d", n, step, want, got)
			}
		}
	}
}

func TestUnselectThenNextMatchesFreshList(t *testing.T) {
	items := []string{"a", "b", "c"}
	used := NewList(items)
	used.Next()
	used.Next()
	used.Unselect()
	used.Next()

	fresh := NewList(items)
	fresh.Next()

	if a, b := selectedIndex(t, used), selectedIndex(t, fresh); a != b || a != 0 {
		t.Fatalf("expected both lists at index 0, got %d and %d", a, b)
	}
}

func TestUnselectIsIdempotent(t *testing.T) {
	l := NewList([]string{"a"})
	l.Unselect()
	l.Unselect()
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	const n = 4
	for i := 0; i < n; i++ {
		l := NewList(make([]string, n))
		l.Next()
		for j := 0; j < i; j++ {
			l.Next()
		}
		l.Next()
		l.Previous()
		if got := selectedIndex(t, l); got != i {
			t.Fatalf("next/previous from %d returned to %d", i, got)
		}
		l.Previous()
		l.Next()
		if got := selectedIndex(t, l); got != i {
			t.Fatalf("previous/next from %d returned to %d", i, got)
		}
	}
}

func TestListScenario(t *testing.T) {
	l := NewList([]string{"Item0", "Item1", "Item2"})
	l.Next()
	if item, ok := l.SelectedItem(); !ok || item != "Item0" {
		t.Fatalf("expected Item0 selected, got %q (ok=%v)", item, ok)
	}
	l.Next()
	if got := selectedIndex(t, l); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	l.Previous()
	if got := selectedIndex(t, l); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
	l.Unselect()
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection after unselect")
	}
}

func TestEmptyListNavigationIsNoOp(t *testing.T) {
	l := NewList[string](nil)
	l.Next()
	l.Previous()
	if l.First() || l.Last() {
		t.Fatalf("expected no movement on empty list")
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected empty list to stay unselected")
	}
}

func TestFirstAndLast(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	if !l.Last() {
		t.Fatalf("expected movement to end")
	}
	if got := selectedIndex(t, l); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	if l.Last() {
		t.Fatalf("expected no movement when already at end")
	}
	if !l.First() {
		t.Fatalf("expected movement to start")
	}
	if got := selectedIndex(t, l); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
}

func TestEnsureVisibleAdjustsOffset(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e"})
	l.Last()
	l.EnsureVisible(2)
	if l.Offset() != 3 {
		t.Fatalf("expected offset 3, got %d", l.Offset())
	}

	l.First()
	l.EnsureVisible(2)
	if l.Offset() != 0 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.Offset())
	}

	l.Last()
	l.EnsureVisible(0)
	if l.Offset() != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.Offset())
	}

	l.EnsureVisible(10)
	if l.Offset() != 0 {
		t.Fatalf("expected offset 0 when everything fits, got %d", l.Offset())
	}
}

func TestEnsureVisibleDoesNotMoveCursor(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d"})
	l.Next()
	l.Next()
	l.EnsureVisible(1)
	if got := selectedIndex(t, l); got != 1 {
		t.Fatalf("expected cursor 1, got %d", got)
	}
	l.Next()
	if got := selectedIndex(t, l); got != 2 {
		t.Fatalf("expected cursor 2 after next, got %d", got)
	}
}
