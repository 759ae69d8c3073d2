// Package skeleton parses a bash template into a structural representation:
// an ordered list of lines plus an index of named sections. Sections come from
// two sources: marker comments ("# --- section: <name> ---" ... "# --- end
// section ---") and shell function definitions ("name() {" through the
// matching closing brace at column zero). Output variants (no-colors, minimal)
// are produced by filtering this structure by section name instead of
// pattern-based line surgery, so nested braces or heredocs inside a stripped
// block cannot corrupt the result.
package skeleton
