package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dshills/standup/internal/config"
	"github.com/dshills/standup/internal/daterange"
	"github.com/dshills/standup/internal/gitlog"
	"github.com/dshills/standup/internal/output"
	"github.com/dshills/standup/internal/providers"
	"github.com/dshills/standup/internal/summarize"
	"github.com/spf13/cobra"
)

// Root command flags
var (
	flagPrintRange  bool
	flagAuthor      string
	flagModel       string
	flagFormat      string
	flagOut         string
	flagMaxTokens   int
	flagTemperature float64
	flagEveningHour int
)

func init() {
	rootCmd.Flags().BoolVar(&flagPrintRange, "print-range", false, "Print the resolved time window and exit without calling the API")
	rootCmd.Flags().StringVar(&flagAuthor, "author", "", "Commit author to match (default: git user.name)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	rootCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
	rootCmd.Flags().Float64Var(&flagTemperature, "temperature", 0, "Sampling temperature")
	rootCmd.Flags().IntVar(&flagEveningHour, "evening-hour", 0, "Start hour of the default window (0-23)")
}

// newSummarizer constructs the production provider. Swapped in tests so
// the run path can be exercised without a network or an API key.
var newSummarizer = func(model string) (providers.Summarizer, error) {
	return providers.NewOpenAI(model)
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagAuthor != "" {
		m["author"] = flagAuthor
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = strconv.Itoa(flagMaxTokens)
	}
	if flagTemperature > 0 {
		m["temperature"] = strconv.FormatFloat(flagTemperature, 'f', -1, 64)
	}
	if flagEveningHour > 0 {
		m["eveningHour"] = strconv.Itoa(flagEveningHour)
	}
	return m
}

// classifyArgs splits positional arguments into the day token and the
// context hint. Arguments are order-independent: the last day token wins,
// and the last argument that is not a day token becomes the hint. A
// malformed day token is indistinguishable from a hint here; the resolver
// falls back to the default window either way.
func classifyArgs(args []string) (token, hint string) {
	for _, arg := range args {
		if daterange.IsDayToken(arg) {
			token = arg
		} else if arg != "" {
			hint = arg
		}
	}
	return token, hint
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}

	token, hint := classifyArgs(args)
	window := daterange.ResolveEvening(token, time.Now(), cfg.EveningHour)

	if flagPrintRange {
		fmt.Fprintf(os.Stdout, "%s\n%s\n",
			daterange.FormatTime(window.Since),
			daterange.FormatTime(window.Until))
		return nil
	}

	// The key is required for any run that is not --print-range, even one
	// whose window turns out to be empty, so check it before touching git.
	provider, err := newSummarizer(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY, or use --print-range to preview the window without calling the API.")
		exitCode = ExitError
		return nil
	}

	if !gitlog.InRepo() {
		fmt.Fprintln(os.Stderr, "Error: not a git repository")
		exitCode = ExitError
		return nil
	}

	author := cfg.Author
	if author == "" {
		author, err = gitlog.DefaultAuthor()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Pass --author or set the author config key.")
			exitCode = ExitError
			return nil
		}
	}

	commits, err := gitlog.Commits(author, window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}

	// Normal terminal state, not an error; saves an API request.
	if len(commits) == 0 {
		fmt.Fprintln(os.Stdout, "no commits found")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := summarize.Run(ctx, provider, summarize.Input{
		Author:  author,
		Window:  window,
		Commits: commits,
		Hint:    hint,
	}, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			fmt.Fprintln(os.Stderr, "Check OPENAI_API_KEY, or use --print-range to preview the window without calling the API.")
		}
		exitCode = ExitError
		return nil
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitError
	}
	return nil
}
