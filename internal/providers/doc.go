// Package providers contains the LLM client used for summarization.
//
// The [Summarizer] interface is the seam the CLI depends on; [OpenAI] is
// the production implementation, a thin chat-completion client with bearer
// auth, a bounded timeout, and exactly one attempt per call. ValidateKey
// performs the cheap key check used by the doctor command.
package providers
