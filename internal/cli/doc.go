// Package cli wires together the Cobra command tree for the standup binary.
//
// The root command resolves the time window, fetches commits, and invokes
// the summarizer; subcommands (config, doctor, version) cover setup and
// diagnostics. Handlers print errors themselves and set the process exit
// code: 0 for success and the documented early exits, 1 for anything fatal.
package cli
