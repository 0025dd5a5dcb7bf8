package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes: this is a leaf CLI tool, so everything fatal is 1.
const (
	ExitSuccess = 0
	ExitError   = 1
)

var rootCmd = &cobra.Command{
	Use:   "standup [day[^N]] [context hint]",
	Short: "Summarize your recent git commits for standup",
	Long: `Standup collects your git commits from a time window and asks an LLM to
condense them into a few standup-ready bullet points.

With no arguments the window runs from yesterday evening to now. A day
token selects a full past calendar day: "day" or "day^1" is yesterday,
"day^2" the day before, and so on. Any other positional argument becomes
a free-text context hint appended to the prompt.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSummary,
}

// Run executes the root command and returns an exit code.
func Run() int {
	// A .env in the working directory may carry OPENAI_API_KEY.
	_ = godotenv.Load()

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print standup version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "standup version %s\n", version)
	},
}
