package pico

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// flush closes the pending row run and terminates the pending text as a line,
// even when no text was written.
func (w *Writer) flush() {
	w.flushRows()
	w.items = append(w.items, &line{text: w.text, indent: w.indent})
	w.text = ""
	w.dirty = false
}

// flushPending closes the row run and terminates pending text only if there is
// some. An empty dirty buffer stays for render to terminate.
func (w *Writer) flushPending() {
	w.flushRows()
	if w.text != "" {
		w.flush()
	}
}

// flushRows turns the pending row run into lines at the current indent level.
// Every column is padded to the widest cell in that column across the run,
// including the last one, so rows stay the same width.
func (w *Writer) flushRows() {
	if len(w.rows) == 0 {
		return
	}
	widths := columnWidths(w.rows)
	for _, row := range w.rows {
		w.items = append(w.items, &line{text: alignRow(row, widths), indent: w.indent})
	}
	w.logger.Debug("row run flushed", "rows", len(w.rows), "widths", widths)
	w.rows = nil
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			cw := runewidth.StringWidth(cell)
			if i == len(widths) {
				widths = append(widths, cw)
			} else if cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

func alignRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		sb.WriteString(cell)
		if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return sb.String()
}
