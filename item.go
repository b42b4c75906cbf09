package pico

// item is one entry of a Writer's content: either a *line or a nested
// *Writer.
type item interface {
	isItem()
}

// line is a finished line of text with the indent level it was written at.
type line struct {
	text   string
	indent int
}

func (*line) isItem()   {}
func (*Writer) isItem() {}

func (l *line) shift(delta int) {
	l.indent += delta
}

func (l *line) blank() bool { return len(l.text) == 0 }
