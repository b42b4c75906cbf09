package pico

import (
	"io"
	"strings"
)

// Render returns the text of w and everything beneath it.
func (w *Writer) Render() string {
	return w.RenderWithBase(0)
}

// RenderWithBase renders w with every line shifted right by base levels.
// Pending text and rows are resolved first, so rendering also fixes them in
// place.
func (w *Writer) RenderWithBase(base int) string {
	var sb strings.Builder
	w.render(&sb, base, w.normalize, false)
	return sb.String()
}

// String implements [fmt.Stringer]. It is the same as [Writer.Render].
func (w *Writer) String() string { return w.Render() }

// WriteTo renders w into dst. It implements [io.WriterTo].
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := io.WriteString(dst, w.Render())
	return int64(n), err
}

// render appends the lines of w to sb and reports whether the last line
// emitted so far is blank. A skipped writer hands lastBlank back unchanged.
func (w *Writer) render(sb *strings.Builder, base int, normalize, lastBlank bool) bool {
	if w.dirty {
		w.flush()
	}
	if !w.generate || (!w.generateIfEmpty && w.IsBodyEmpty()) {
		w.logger.Debug("writer skipped", "generate", w.generate, "indent", w.indent)
		return lastBlank
	}
	normalize = normalize || w.normalize
	for _, it := range w.items {
		switch it := it.(type) {
		case *line:
			blank := it.blank()
			if !(normalize && lastBlank && blank) {
				for i := 0; i < base+it.indent; i++ {
					sb.WriteString(w.unit)
				}
				sb.WriteString(it.text)
				sb.WriteString(w.sep)
			}
			lastBlank = blank
		case *Writer:
			lastBlank = it.render(sb, base, normalize, lastBlank)
		}
	}
	return lastBlank
}
