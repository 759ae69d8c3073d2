// Package doctor implements the environment diagnostics behind the
// "shellsmith doctor" command: config directory writability, embedded
// template integrity, and availability plus minimum versions of the external
// tools the templates rely on.
package doctor
