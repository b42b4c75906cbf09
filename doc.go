// Package pico builds indented text, typically source code, out of a tree of
// deferred content.
//
// A [Writer] collects lines, table rows and nested writers. Nothing is laid
// out until [Writer.Render] walks the tree, so a section can be created early
// and filled in later:
//
//	w := pico.New(0, "    ")
//	w.WriteLineThenIndentRight("class Point {")
//	fields := w.CreateChild()
//	methods := w.CreateChild()
//	w.WriteLineAfterIndentLeft("}")
//
//	fields.WriteRow("private ", "int ", "x;")
//	body := methods.CreateBlock("int getX() {", "}")
//	body.WriteLine("return x;")
//
//	fmt.Print(w.Render())
//
// # Indentation
//
// Every writer tracks its own indent level. [Writer.IndentRight] and
// [Writer.IndentLeft] move it, and the combined helpers
// [Writer.WriteLineThenIndentRight], [Writer.WriteLineAfterIndentLeft] and
// [Writer.WriteLineAfterIndentLeftThenIndentRight] open and close blocks.
// Indenting left of zero returns [ErrInvalidIndent].
//
// # Rows
//
// [Writer.WriteRow] buffers cells. Consecutive rows are padded so each column
// is as wide as its widest cell, measured in terminal display width. The run
// ends at the next line, indent change, child or render.
//
// # Composition
//
// [Writer.CreateChild] and [Writer.CreateBlock] return writers that are
// already placed in their parent. [Writer.Append] attaches a writer built
// independently, rebasing its lines onto the parent's current level and unit.
// A writer can only have one parent:
//
//   - [ErrAlreadyAttached] — the writer already has a parent
//   - [ErrCycle] — the writer would end up inside itself
//
// # Rendering
//
// [Writer.SetGenerate] drops a subtree, [Writer.SetGenerateIfEmpty] drops it
// only when it has no content, and [Writer.SetNormalizeBlankLines] collapses
// adjacent blank lines. [Writer.Dump] prints the tree as YAML for debugging.
//
// # Configuration
//
// [Options] can be decoded from YAML or TOML with [ParseOptions] and passed to
// [NewWithOptions]:
//
//	opts, err := pico.ParseOptions(data, pico.ConfigTOML)
//	w := pico.NewWithOptions(opts)
package pico
