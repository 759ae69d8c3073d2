// Package scaffold turns a generation request into a runnable bash script on
// disk. It loads an embedded template set (skeleton text plus its manifest),
// substitutes placeholder tokens, injects declared dependencies, applies the
// structural no-colors and minimal strippers, and writes the executable
// result. The pipeline is a single linear pass with early-exit validation.
package scaffold
