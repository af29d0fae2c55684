// Package envfile reads profile files: plain KEY=VALUE lines, with blank
// lines and #-comments ignored.
//
// The format is deliberately minimal. Values are taken verbatim (after
// trimming surrounding whitespace); there is no quoting, escaping,
// interpolation or multi-line support. Quoting is applied only when a
// value is rendered for a shell, see pkg/render.
package envfile
