package state

// Offset returns the index of the first item in the rendered window.
func (l *List[T]) Offset() int {
	return l.offset
}

// EnsureVisible adjusts the viewport offset so the selection stays inside a
// window of maxVisible rows. The offset is presentation state only; Next and
// Previous never read it.
func (l *List[T]) EnsureVisible(maxVisible int) {
	n := len(l.items)
	if n == 0 || maxVisible <= 0 {
		l.offset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
	if l.selected == noSelection {
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	upper := l.offset + maxVisible - 1
	if l.selected > upper {
		l.offset = l.selected - maxVisible + 1
		if l.offset > maxOffset {
			l.offset = maxOffset
		}
	}
}
