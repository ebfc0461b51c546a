// Package stylesheet turns abstract style definitions into named,
// activated style classes backed by lipgloss.
//
// A composed component hands a mapping of slot key to style rules to a
// Compiler and gets back a Sheet: a set of minted class names plus an
// Attach operation that makes those classes resolvable through a
// Registry. Renderables then look their class names up at render time to
// obtain concrete lipgloss styles.
package stylesheet

// Rules is one slot's style definition: an open property mapping in the
// spirit of a CSS declaration block. Recognized properties are documented
// on the lipgloss compiler; unknown properties are ignored.
type Rules map[string]any

// Options configures a single compilation.
type Options struct {
	// ClassNamePrefix is prepended to every minted class name,
	// conventionally "<component name>-".
	ClassNamePrefix string
}

// Sheet is a compiled set of style classes.
type Sheet interface {
	// Attach activates the sheet's classes. Attach is idempotent:
	// calling it again on an already attached sheet has no effect.
	Attach()

	// Classes maps each slot key to its minted class name. Valid to
	// read after Attach.
	Classes() map[string]string
}

// Compiler produces a Sheet from per-slot style definitions.
type Compiler interface {
	Compile(defs map[string]Rules, opts Options) Sheet
}
