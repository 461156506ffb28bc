// Package ui provides styled terminal output for the sparx subcommands.
//
// Unlike the interactive wizard, these helpers follow a "print once and exit"
// pattern: headers, result boxes, and list lines rendered with lipgloss and
// sized to the terminal via x/term. Subcommands write through a Printer so
// output stays consistent and testable against any io.Writer.
package ui
