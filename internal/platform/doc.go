// Package platform provides cross-platform filesystem operations for the
// generator's write step. On Unix systems it applies permission bits with
// chmod directly; on Windows, which has no Unix-style permission bits, the
// operations are no-ops.
package platform
