package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dshills/standup/internal/config"
	"github.com/dshills/standup/internal/providers"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the OpenAI API key",
	Long:  "Checks OPENAI_API_KEY against the model-listing endpoint without spending any completion tokens.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, "Checking OpenAI credentials...")

		client, err := providers.NewOpenAI(cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitError
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := client.ValidateKey(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if providers.IsAuthError(err) {
				fmt.Fprintln(os.Stderr, "The key was rejected; generate a new one and update OPENAI_API_KEY.")
			}
			exitCode = ExitError
			return nil
		}

		fmt.Fprintln(os.Stdout, "OK: API key is valid")
		return nil
	},
}
