// Package daterange resolves CLI day tokens into half-open commit windows.
//
// It replaces the divergent GNU and BSD relative-date command dialects with
// a single calendar-arithmetic routine: local midnights are computed
// directly, so "N days ago" means the same wall-clock window on every
// platform.
package daterange
