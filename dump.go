package pico

import (
	"io"

	"gopkg.in/yaml.v3"
)

type dumpNode struct {
	Indent          int        `yaml:"indent"`
	Unit            string     `yaml:"unit"`
	Generate        bool       `yaml:"generate"`
	GenerateIfEmpty bool       `yaml:"generate_if_empty"`
	Normalize       bool       `yaml:"normalize_blank_lines,omitempty"`
	PendingText     *string    `yaml:"pending_text,omitempty"`
	PendingRows     [][]string `yaml:"pending_rows,omitempty"`
	Items           []dumpItem `yaml:"items,omitempty"`
}

type dumpItem struct {
	Line   *dumpLine `yaml:"line,omitempty"`
	Writer *dumpNode `yaml:"writer,omitempty"`
}

type dumpLine struct {
	Text   string `yaml:"text"`
	Indent int    `yaml:"indent"`
}

// Dump writes a YAML description of the tree under w: each writer's indent
// state, flags, pending text and rows, and its lines and children in order.
// Unlike rendering it leaves pending content where it is.
func (w *Writer) Dump(dst io.Writer) error {
	enc := yaml.NewEncoder(dst)
	enc.SetIndent(2)
	if err := enc.Encode(w.snapshot()); err != nil {
		return err
	}
	return enc.Close()
}

func (w *Writer) snapshot() *dumpNode {
	n := &dumpNode{
		Indent:          w.indent,
		Unit:            w.unit,
		Generate:        w.generate,
		GenerateIfEmpty: w.generateIfEmpty,
		Normalize:       w.normalize,
		PendingRows:     w.rows,
	}
	if w.dirty {
		text := w.text
		n.PendingText = &text
	}
	for _, it := range w.items {
		switch it := it.(type) {
		case *line:
			n.Items = append(n.Items, dumpItem{Line: &dumpLine{Text: it.text, Indent: it.indent}})
		case *Writer:
			n.Items = append(n.Items, dumpItem{Writer: it.snapshot()})
		}
	}
	return n
}
