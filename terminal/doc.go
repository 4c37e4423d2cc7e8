// Package terminal provides raw single-key input and minimal ANSI output for
// line-oriented play.
//
// Features:
//   - Raw mode via golang.org/x/term, restored on Fini
//   - Blocking key reads with escape sequence parsing for arrow keys
//   - Clean terminal restoration on exit/panic
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
