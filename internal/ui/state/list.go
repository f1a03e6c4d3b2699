package state

// noSelection marks a list without an active cursor.
const noSelection = -1

// List is an ordered sequence of items with an optional selection cursor.
// Navigation wraps around at both ends; an empty list never gains a
// selection.
type List[T any] struct {
	items    []T
	selected int
	offset   int
}

// NewList constructs a list over a copy of items with nothing selected.
func NewList[T any](items []T) *List[T] {
	dup := make([]T, len(items))
	copy(dup, items)
	return &List[T]{items: dup, selected: noSelection}
}

// Items returns the backing items. Callers must not modify the slice.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the selected index, if any.
func (l *List[T]) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the cursor, if any.
func (l *List[T]) SelectedItem() (T, bool) {
	idx, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[idx], true
}

// Next advances the cursor, wrapping from the last item to the first. With
// nothing selected it selects the first item.
func (l *List[T]) Next() {
	n := len(l.items)
	if n == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected >= n-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous moves the cursor back, wrapping from the first item to the last.
// With nothing selected it selects the first item.
func (l *List[T]) Previous() {
	n := len(l.items)
	if n == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected == 0:
		l.selected = n - 1
	default:
		l.selected--
	}
}

// Unselect clears the cursor.
func (l *List[T]) Unselect() {
	l.selected = noSelection
}

// First moves the cursor to the first item. It reports whether the cursor moved.
func (l *List[T]) First() bool {
	if len(l.items) == 0 {
		return false
	}
	old := l.selected
	l.selected = 0
	return old != l.selected
}

// Last moves the cursor to the last item. It reports whether the cursor moved.
func (l *List[T]) Last() bool {
	n := len(l.items)
	if n == 0 {
		return false
	}
	old := l.selected
	l.selected = n - 1
	return old != l.selected
}
