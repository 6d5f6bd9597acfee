// Package ui writes shipyard status lines to the terminal.
//
// A Printer wraps an io.Writer and prefixes each line with a colored marker:
//   - Info:    → cyan arrow
//   - Success: ✔ green checkmark
//   - Fail:    ✘ red X
//   - Warn:    ○ yellow circle
//   - Hazard:  ⚠ bold red warning sign
//
// Colors are dropped when the writer is not a terminal or when the
// Printer is created with color disabled.
package ui
