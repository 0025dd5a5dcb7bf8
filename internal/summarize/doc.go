// Package summarize turns a list of commit lines into a standup summary.
//
// It builds the fixed system instruction and the user message (commit text
// plus an optional Context hint), hands them to a providers.Summarizer,
// and wraps the response in a Report for rendering.
package summarize
