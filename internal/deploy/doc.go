// Package deploy drives k0sctl against a generated cluster config.
//
// The k0sctl binary does the actual work over SSH; this package only locates
// (or installs) the binary and runs it with the right arguments, streaming its
// output straight to the user's terminal.
package deploy
