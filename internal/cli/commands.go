package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adwhq/switchboard/internal/agent"
	"github.com/adwhq/switchboard/internal/provider"
)

// AppFactory builds the application for a command invocation.
type AppFactory func() (*App, error)

// ProviderCmd reports which provider the current configuration
// resolves to.
func ProviderCmd(af AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "provider",
		Short: "Show which LLM provider the current configuration selects",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := af()
			if err != nil {
				return err
			}

			res := provider.Resolve(app.Config.ResolverSnapshot())
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"configured": res.Configured(),
					"provider":   string(res.Provider),
					"diagnostic": res.Diagnostic,
				})
			}

			PrintResolution(res)
			if !res.Configured() {
				return fmt.Errorf("no LLM provider configured")
			}
			return nil
		},
	}
}

// HealthCmd runs the full health check.
func HealthCmd(af AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Validate configuration and provider connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := af()
			if err != nil {
				return err
			}

			report := app.Checker.Run(cmd.Context())

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				report.Render(os.Stdout)
			}

			if !report.Healthy {
				return fmt.Errorf("health check failed")
			}
			return nil
		},
	}
}

// PromptCmd sends a single prompt through the resolved provider.
func PromptCmd(af AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt [text]",
		Short: "Send a prompt through the resolved provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := af()
			if err != nil {
				return err
			}

			model, _ := cmd.Flags().GetString("model")
			system, _ := cmd.Flags().GetString("system")
			maxTokens, _ := cmd.Flags().GetInt("max-tokens")

			var temperature *float64
			if cmd.Flags().Changed("temperature") {
				t, _ := cmd.Flags().GetFloat64("temperature")
				temperature = &t
			}

			resp, err := app.Executor.Execute(cmd.Context(), agent.PromptRequest{
				Prompt:       args[0],
				Model:        model,
				SystemPrompt: system,
				MaxTokens:    maxTokens,
				Temperature:  temperature,
			})
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			PrintPromptResponse(resp)
			return nil
		},
	}

	cmd.Flags().StringP("model", "m", "", "Model to use (Claude-style names, mapped on fallback)")
	cmd.Flags().StringP("system", "s", "", "System prompt")
	cmd.Flags().Int("max-tokens", 0, "Maximum response tokens")
	cmd.Flags().Float64("temperature", 0, "Sampling temperature (provider default when unset)")
	return cmd
}

// CompletionCmd generates the end-of-run notice. The notice is
// decorative: when no provider is configured or the request fails, the
// command prints nothing and exits zero. The skip itself is logged by
// the hook runner.
func CompletionCmd(af AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "completion-message",
		Short: "Generate the workflow completion notice",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := af()
			if err != nil {
				return err
			}

			if msg, ok := app.Hooks.CompletionMessage(cmd.Context()); ok {
				fmt.Println(msg)
			}
			return nil
		},
	}
}
