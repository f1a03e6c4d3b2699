package render

import (
	"strings"

	"github.com/atomicstack/tabshell/internal/theme"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth = 80
	minWidth     = 8
)

const (
	tlc = "╭"
	trc = "╮"
	blc = "╰"
	brc = "╯"
	hz  = "─"
	vt  = "│"
)

// Canvas is a Frame that accumulates primitives and renders them to a string
// on Commit. Nothing is visible until the frame is committed.
type Canvas struct {
	width  int
	height int
	styles *theme.Styles
	header []string
	body   []string
	footer []string
}

var _ Frame = (*Canvas)(nil)

// NewCanvas creates a surface of the given size. A non-positive width falls
// back to 80 columns; a non-positive height leaves the canvas unbounded.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	return &Canvas{width: width, height: height, styles: theme.Default()}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Remaining() int {
	if c.height <= 0 {
		return -1
	}
	left := c.height - len(c.header) - len(c.footer) - len(c.body)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Canvas) Tabs(titles []string, active int) {
	sep := c.styles.TabSeparator.Render(" " + vt + " ")
	parts := make([]string, len(titles))
	for i, title := range titles {
		if i == active {
			parts[i] = c.styles.ActiveTab.Render(title)
		} else {
			parts[i] = c.styles.Tab.Render(title)
		}
	}
	c.header = append(c.header, fit(" "+strings.Join(parts, sep), c.width))
}

func (c *Canvas) Text(title string, lines []string) {
	rows := len(lines)
	if left := c.Remaining(); left >= 0 {
		if left < 2 {
			return
		}
		if rows > left-2 {
			rows = left - 2
		}
	}
	content := make([]string, rows)
	for i := 0; i < rows; i++ {
		content[i] = c.styles.Text.Render(fit(lines[i], c.innerWidth()))
	}
	if rows < len(lines) && rows > 0 {
		content[rows-1] = c.styles.Muted.Render(fit("…", c.innerWidth()))
	}
	c.body = append(c.body, c.box(title, content)...)
}

func (c *Canvas) List(title string, items []string, selected, offset int) {
	rows := len(items)
	if left := c.Remaining(); left >= 0 {
		if left < 2 {
			return
		}
		rows = left - 2
	}
	if offset < 0 || offset >= len(items) {
		offset = 0
	}
	inner := c.innerWidth()
	pad := strings.Repeat(" ", ansi.StringWidth(theme.HighlightSymbol))
	content := make([]string, 0, rows)
	for i := offset; i < len(items) && len(content) < rows; i++ {
		if i == selected {
			symbol := c.styles.Highlight.Render(theme.HighlightSymbol)
			label := fit(items[i], inner-ansi.StringWidth(theme.HighlightSymbol))
			content = append(content, symbol+c.styles.SelectedItem.Render(label))
			continue
		}
		label := fit(items[i], inner-ansi.StringWidth(pad))
		content = append(content, c.styles.ItemIndicator.Render(pad)+c.styles.Item.Render(label))
	}
	if len(items) == 0 && rows > 0 {
		content = append(content, c.styles.Muted.Render(fit("(no entries)", inner)))
	}
	for len(content) < rows {
		content = append(content, strings.Repeat(" ", inner))
	}
	c.body = append(c.body, c.box(title, content)...)
}

func (c *Canvas) Footer(line string) {
	c.footer = append(c.footer, fit(c.styles.Footer.Render(line), c.width))
}

// Commit renders the accumulated primitives. Bounded canvases are padded or
// trimmed to exactly height rows with the footer on the last rows.
func (c *Canvas) Commit() string {
	body := c.body
	if c.height > 0 {
		room := c.height - len(c.header) - len(c.footer)
		if room < 0 {
			room = 0
		}
		if len(body) > room {
			body = body[:room]
		}
		blank := strings.Repeat(" ", c.width)
		for len(body) < room {
			body = append(body, blank)
		}
	}
	rows := make([]string, 0, len(c.header)+len(body)+len(c.footer))
	rows = append(rows, c.header...)
	rows = append(rows, body...)
	rows = append(rows, c.footer...)
	if c.height > 0 && len(rows) > c.height {
		rows = rows[:c.height]
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) innerWidth() int {
	return c.width - 2
}

// box wraps content rows, already innerWidth wide, in a rounded border with
// the title embedded in the top edge.
func (c *Canvas) box(title string, content []string) []string {
	border := c.styles.Border
	inner := c.innerWidth()
	titleSeg := ""
	if title != "" {
		titleSeg = " " + title + " "
	}
	dashes := inner - 1 - ansi.StringWidth(titleSeg)
	if dashes < 0 {
		titleSeg = ""
		dashes = inner - 1
	}
	rows := make([]string, 0, len(content)+2)
	rows = append(rows, border.Render(tlc+hz)+c.styles.Title.Render(titleSeg)+border.Render(strings.Repeat(hz, dashes)+trc))
	for _, line := range content {
		rows = append(rows, border.Render(vt)+line+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, inner)+brc))
	return rows
}

// fit truncates or pads text to exactly width visible columns. Embedded ANSI
// sequences are preserved.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(text)
	if w > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
		w = ansi.StringWidth(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}
