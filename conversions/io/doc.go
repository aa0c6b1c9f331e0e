// Package io parses the text file formats of spec.md §6.1 (head vector)
// and §6.2 (edge list), surfacing malformed input as a structured
// *FormatError carrying a Kind, line number, and offending token, per
// spec.md §7's "input-format errors ... surfaced as a structured report
// with kind + location" policy — parsing never silently accepts a
// malformed file.
package io
