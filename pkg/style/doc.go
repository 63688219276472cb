// Package style renders pioneer's command output.
//
// Colors are lipgloss adaptive colors, so the same styles read on light and
// dark terminals. NewRenderer falls back to plain text when the output is
// not a terminal.
package style
