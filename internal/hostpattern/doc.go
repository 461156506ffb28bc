// Package hostpattern expands and validates hostname patterns.
//
// A pattern is a hostname with an optional single bracket expression
// describing a numeric range:
//
//	node[1-4].example.com   → node1.example.com … node4.example.com
//	node[01:10].example.com → node01.example.com … node10.example.com
//
// The dash form pads generated numbers only when the lower bound carries a
// leading zero; the colon form always pads to the width of the lower bound.
// Plain hostnames and dotted-quad IPv4 addresses pass through unchanged.
//
// Expand parses and expands a pattern; Validate is a total predicate used
// by input fields to reject malformed values before expansion is attempted.
package hostpattern
