// Package redact scrubs secret-looking strings from commit text before it
// is sent to the remote summarization API.
package redact
