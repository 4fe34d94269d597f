// Package tui provides terminal output for mosrun: the Splog logger with
// optional rotating file output, color styling, TTY detection, interactive
// prompts, and the run progress display.
package tui
