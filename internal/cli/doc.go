// Package cli wires the cobra command tree. The root command performs script
// generation directly (parse flags, resolve defaults, render, confirm
// overwrite, write); subcommands cover version info, environment diagnostics,
// template listing, and user configuration.
package cli
