// Package gitlog fetches a user's recent commits by shelling out to git.
//
// Commits are filtered by author and by the resolved time window and
// returned as preformatted "- <hash> <subject>" lines; the rest of the
// pipeline treats the list as opaque text.
package gitlog
