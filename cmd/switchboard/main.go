package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adwhq/switchboard/internal/cli"
)

// Build-time variables
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "switchboard",
		Short:        "Switchboard - LLM provider selection for automated workflows",
		Long:         "Resolves which LLM provider a workflow run should use and routes prompts through it.",
		Version:      fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	appFactory := func() (*cli.App, error) {
		return cli.NewApp()
	}

	rootCmd.AddCommand(cli.ProviderCmd(appFactory))
	rootCmd.AddCommand(cli.HealthCmd(appFactory))
	rootCmd.AddCommand(cli.PromptCmd(appFactory))
	rootCmd.AddCommand(cli.CompletionCmd(appFactory))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
