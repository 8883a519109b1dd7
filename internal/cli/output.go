package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/adwhq/switchboard/internal/agent"
	"github.com/adwhq/switchboard/internal/provider"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func FormatTokens(tokens int64) string {
	if tokens >= 1000 {
		return fmt.Sprintf("%.1fK", float64(tokens)/1000)
	}
	return fmt.Sprintf("%d", tokens)
}

// PrintResolution prints the resolver's outcome for the current
// configuration.
func PrintResolution(res provider.Resolution) {
	if res.Configured() {
		fmt.Printf("%s Active provider: %s\n", green("✓"), bold(string(res.Provider)))
		return
	}
	fmt.Printf("%s No LLM provider configured\n", red("✗"))
	fmt.Printf("  %s\n", yellow(res.Diagnostic))
}

// PrintPromptResponse prints a completed prompt execution.
func PrintPromptResponse(resp agent.PromptResponse) {
	fmt.Printf("%s %s (%s)\n", bold("Model:"), resp.Model, resp.Provider)
	if resp.Usage != nil {
		fmt.Printf("%s %s in / %s out\n", bold("Tokens:"),
			FormatTokens(resp.Usage.InputTokens),
			FormatTokens(resp.Usage.OutputTokens))
	}
	fmt.Println()
	fmt.Printf("%s\n", bold("Response:"))
	fmt.Println(resp.Output)
}
