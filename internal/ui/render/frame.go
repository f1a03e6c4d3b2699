// Package render maps the application state onto drawing primitives. A Frame
// is the drawing surface for one tick; the Dispatcher picks exactly one view
// renderer per frame.
package render

// Frame is the drawing capability handed to renderers for a single tick.
// Primitives stack from the top: tabs and footer are chrome, text and list
// blocks fill the body in call order.
type Frame interface {
	// Size reports the surface dimensions. A height of zero or less means
	// the surface grows with its content.
	Size() (width, height int)
	// Remaining reports how many body rows are still free, or -1 when the
	// surface is unbounded.
	Remaining() int
	Tabs(titles []string, active int)
	Text(title string, lines []string)
	// List draws items[offset:] inside a bordered block. selected is the
	// absolute index of the highlighted item, or -1.
	List(title string, items []string, selected, offset int)
	Footer(line string)
}
