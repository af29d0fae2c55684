// Package render turns a types.MergeResult into text.
//
// Shell output is meant for `eval "$(nvy use ...)"`: unset lines first,
// then one group of export lines per contributing profile, then the
// sentinel export that lets the next invocation find what is active.
// File output is the same grouping as plain KEY=value lines.
package render
