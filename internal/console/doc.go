// Package console handles line-oriented user interaction.
//
// A Prompter owns the input scanner and output writer for a session. It
// re-prompts on invalid numbers and collects datasets until the sentinel
// word is entered. A Theme renders headings, result boxes, inline errors
// and percentage bars with lipgloss; with color disabled the output is
// plain text.
package console
