package pico

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidIndent     = errors.New("invalid indent")
	ErrAlreadyAttached   = errors.New("writer already attached")
	ErrCycle             = errors.New("writer cannot contain itself")
	ErrNilWriter         = errors.New("nil writer")
	ErrUnsupportedConfig = errors.New("unsupported config format")
)

// DefaultIndentUnit is the text repeated once per indent level when no unit
// is given.
const DefaultIndentUnit = "   "

// DefaultLineSeparator terminates every rendered line.
const DefaultLineSeparator = "\n"

var discard = log.NewWithOptions(io.Discard, log.Options{})

// Writer is a node in a tree of deferred text. It holds literal lines, nested
// writers and a pending run of table rows, and produces the final indented
// text only when rendered.
//
// A Writer is not safe for concurrent use. A root and every writer handed out
// by it must be driven from a single goroutine, or guarded by one lock per
// root.
type Writer struct {
	indent int
	origin int
	unit   string
	sep    string
	logger *log.Logger

	items []item
	rows  [][]string

	text  string
	dirty bool

	generate        bool
	generateIfEmpty bool
	normalize       bool
	attached        bool
}

// New returns a root Writer starting at the given indent level. A negative
// level is treated as zero and an empty unit as [DefaultIndentUnit].
func New(indent int, unit string) *Writer {
	if indent < 0 {
		indent = 0
	}
	if unit == "" {
		unit = DefaultIndentUnit
	}
	return &Writer{
		indent:          indent,
		origin:          indent,
		unit:            unit,
		sep:             DefaultLineSeparator,
		logger:          discard,
		generate:        true,
		generateIfEmpty: true,
	}
}

// NewWithOptions returns a root Writer configured from opts.
func NewWithOptions(opts Options) *Writer {
	w := New(opts.InitialIndent, opts.IndentUnit)
	if opts.LineSeparator != "" {
		w.sep = opts.LineSeparator
	}
	if opts.Logger != nil {
		w.logger = opts.Logger
	}
	w.normalize = opts.NormalizeBlankLines
	return w
}

// --- Indent control ---

// Indent returns the current indent level.
func (w *Writer) Indent() int { return w.indent }

// IndentUnit returns the text written once per indent level.
func (w *Writer) IndentUnit() string { return w.unit }

// IndentRight closes the pending row run and increases the indent level.
func (w *Writer) IndentRight() *Writer {
	w.flushRows()
	w.indent++
	return w
}

// IndentLeft closes the pending row run and decreases the indent level.
// It returns [ErrInvalidIndent] and leaves the level untouched when the level
// would drop below zero, which means block opens and closes are unbalanced.
func (w *Writer) IndentLeft() error {
	w.flushRows()
	if w.indent == 0 {
		w.logger.Warn("indent underflow", "indent", w.indent)
		return fmt.Errorf("%w: cannot indent left of level %d", ErrInvalidIndent, w.indent)
	}
	w.indent--
	return nil
}

// --- Line writing ---

// Write appends text to the current line without terminating it. The line is
// completed by the next WriteLine or, failing that, at render time.
func (w *Writer) Write(text string) *Writer {
	w.text += text
	w.dirty = true
	return w
}

// Writef is Write with fmt.Sprintf formatting.
func (w *Writer) Writef(format string, args ...any) *Writer {
	return w.Write(fmt.Sprintf(format, args...))
}

// WriteLine terminates the current line with text at the current indent
// level. Any text pending from Write is prepended.
func (w *Writer) WriteLine(text string) *Writer {
	w.flushRows()
	w.text += text
	w.flush()
	return w
}

// WriteLinef is WriteLine with fmt.Sprintf formatting.
func (w *Writer) WriteLinef(format string, args ...any) *Writer {
	return w.WriteLine(fmt.Sprintf(format, args...))
}

// WriteLineThenIndentRight writes text and indents what follows, as when
// opening a block.
func (w *Writer) WriteLineThenIndentRight(text string) *Writer {
	return w.WriteLine(text).IndentRight()
}

// WriteLineAfterIndentLeft outdents and then writes text, as when closing a
// block.
func (w *Writer) WriteLineAfterIndentLeft(text string) error {
	if err := w.IndentLeft(); err != nil {
		return err
	}
	w.WriteLine(text)
	return nil
}

// WriteLineAfterIndentLeftThenIndentRight writes text one level out and
// indents what follows again, as for "} else {".
func (w *Writer) WriteLineAfterIndentLeftThenIndentRight(text string) error {
	if err := w.WriteLineAfterIndentLeft(text); err != nil {
		return err
	}
	w.IndentRight()
	return nil
}

// WriteRow buffers a row of columns. Consecutive rows are aligned against each
// other once the run is closed by any other write, an indent change, or
// render. A writer still holding unterminated rows or text at render time
// ends with the pending line, which is blank when no text was written.
func (w *Writer) WriteRow(columns ...string) *Writer {
	w.rows = append(w.rows, columns)
	w.dirty = true
	return w
}

// --- Tree composition ---

// CreateChild appends an empty Writer at the current position and returns it.
// Content written to the child later still renders at this position, so
// sections can be declared up front and filled in any order.
func (w *Writer) CreateChild() *Writer {
	w.flushPending()
	child := &Writer{
		indent:          w.indent,
		origin:          w.indent,
		unit:            w.unit,
		sep:             w.sep,
		logger:          w.logger,
		generate:        true,
		generateIfEmpty: true,
		attached:        true,
	}
	w.items = append(w.items, child)
	return child
}

// CreateBlock writes open, creates an indented child for the block body, and
// writes close. The returned body may be filled in at any time before render.
//
// The close line leaves w dirty: unless another line follows, render ends w
// with a blank line, which separates consecutive blocks.
func (w *Writer) CreateBlock(open, close string) *Writer {
	w.WriteLineThenIndentRight(open)
	body := w.CreateChild()
	w.indent--
	w.WriteLine(close)
	w.dirty = true
	return body
}

// Append attaches a writer built elsewhere at the current position. Lines in
// its subtree keep their level relative to the indent other was created with,
// rebased onto this writer's current level, and take on this writer's indent
// unit.
//
// A writer can be attached once. Attaching it a second time returns
// [ErrAlreadyAttached] and attaching a writer into its own subtree returns
// [ErrCycle].
func (w *Writer) Append(other *Writer) error {
	if other == nil {
		return ErrNilWriter
	}
	if other.attached {
		return ErrAlreadyAttached
	}
	if other.contains(w) {
		return ErrCycle
	}
	w.flushPending()
	delta := w.indent - other.origin
	other.rebase(delta, w.unit, w.sep, w.logger)
	other.attached = true
	w.items = append(w.items, other)
	w.logger.Debug("writer appended", "delta", delta, "items", len(other.items))
	return nil
}

func (w *Writer) rebase(delta int, unit, sep string, logger *log.Logger) {
	w.flushRows()
	for _, it := range w.items {
		switch it := it.(type) {
		case *line:
			it.shift(delta)
		case *Writer:
			it.rebase(delta, unit, sep, logger)
		}
	}
	w.indent += delta
	w.origin += delta
	w.unit = unit
	w.sep = sep
	w.logger = logger
}

func (w *Writer) contains(target *Writer) bool {
	if w == target {
		return true
	}
	for _, it := range w.items {
		if child, ok := it.(*Writer); ok && child.contains(target) {
			return true
		}
	}
	return false
}

// --- Flags ---

// IsEmpty reports whether nothing has been written to w.
func (w *Writer) IsEmpty() bool {
	return len(w.items) == 0 && len(w.rows) == 0 && !w.dirty
}

// IsBodyEmpty reports whether w holds no content items and no pending text.
// Text written as "" does not count.
func (w *Writer) IsBodyEmpty() bool {
	return len(w.items) == 0 && w.text == ""
}

// SetGenerate controls whether w and its subtree are rendered at all.
func (w *Writer) SetGenerate(generate bool) *Writer {
	w.generate = generate
	return w
}

// IsGenerate reports whether w is rendered.
func (w *Writer) IsGenerate() bool { return w.generate }

// SetGenerateIfEmpty controls whether w is rendered when it has no content,
// for example to drop an unused method body.
func (w *Writer) SetGenerateIfEmpty(generate bool) *Writer {
	w.generateIfEmpty = generate
	return w
}

// IsGenerateIfEmpty reports whether w is rendered when empty.
func (w *Writer) IsGenerateIfEmpty() bool { return w.generateIfEmpty }

// SetNormalizeBlankLines makes rendering collapse adjacent blank lines into
// one, for w and everything rendered beneath it. Setting it on a child only
// adds normalization to that subtree; a child cannot turn it off below a
// writer that has it on.
func (w *Writer) SetNormalizeBlankLines(normalize bool) *Writer {
	w.normalize = normalize
	return w
}

// IsNormalizeBlankLines reports whether adjacent blank lines are collapsed.
func (w *Writer) IsNormalizeBlankLines() bool { return w.normalize }
