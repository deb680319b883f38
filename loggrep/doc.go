// Package loggrep finds lines containing a pattern and returns each match
// with one line of context on either side, the way a failure signature is
// pulled out of a console log.
//
// What
//
//   - File loads the whole log and scans it, simplest for small files.
//   - Stream reads line by line through a three-line window, constant
//     memory for multi-gigabyte soak logs, honoring context cancellation.
//     Both return identical matches.
//
// Matching is plain substring containment; a log grep wants literal
// signatures like "ERROR" or "0xdead", not regular expressions.
//
// Errors
//
//   - ErrEmptyPattern — empty search pattern.
//   - File/Stream pass through the underlying open/read errors.
package loggrep
