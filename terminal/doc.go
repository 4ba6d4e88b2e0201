// Package terminal provides the ANSI output fragments and environment queries
// the marquee needs: viewport width, color capability, and highlight color.
//
// Features:
//   - Terminal width via TIOCGWINSZ on terminal fds (x/term detection)
//   - True color (24-bit) and 256-color highlight sequences
//   - Cursor-up, cursor visibility and SGR reset fragments
//   - Best-effort reset for interrupt and panic paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
package terminal
