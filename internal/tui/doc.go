// Package tui presents a registration session to the operator.
//
// Two presenters are provided. [Plain] writes progress and the response to
// stdout and alerts to stderr. [TUI] runs an interactive Bubble Tea program
// with a spinner, a capture progress bar, a bordered response box and a
// blocking alert overlay.
package tui
