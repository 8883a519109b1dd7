package health

import (
	"fmt"
	"io"
	"sort"
)

// Render writes a human-readable summary of the report.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Health check %s at %s\n", r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w)

	for _, check := range r.Checks {
		status := "PASS"
		switch {
		case !check.Success:
			status = "FAIL"
		case check.Warning != "":
			status = "WARN"
		}
		fmt.Fprintf(w, "[%s] %s\n", status, check.Name)
		if check.Error != "" {
			fmt.Fprintf(w, "       error: %s\n", check.Error)
		}
		if check.Warning != "" {
			fmt.Fprintf(w, "       warning: %s\n", check.Warning)
		}
		renderDetails(w, check.Details)
	}

	fmt.Fprintln(w)
	if r.Healthy {
		fmt.Fprintln(w, "Result: healthy")
	} else {
		fmt.Fprintln(w, "Result: unhealthy")
		for _, hint := range r.hints() {
			fmt.Fprintf(w, "  -> %s\n", hint)
		}
	}
}

func renderDetails(w io.Writer, details map[string]any) {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "       %s: %v\n", k, details[k])
	}
}

// hints returns actionable next steps for an unhealthy report.
func (r Report) hints() []string {
	var hints []string
	for _, check := range r.Checks {
		if check.Success {
			continue
		}
		switch check.Name {
		case "environment":
			hints = append(hints,
				"set ANTHROPIC_API_KEY (or enable OpenAI with OPENAI_ENABLED=true and OPENAI_API_KEY)")
		default:
			hints = append(hints,
				fmt.Sprintf("verify the %s API key and network access, then re-run the health check", check.Name))
		}
	}
	return hints
}
