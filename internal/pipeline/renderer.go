package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/truthlens/internal/model"
)

// Renderer writes triage reports as JSON, Markdown and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Claim Triage Report\n\n")
	fmt.Fprintf(&b, "**Verdict:** %s  \n", report.Verdict)
	fmt.Fprintf(&b, "**Confidence:** %d/100  \n", report.Confidence)
	fmt.Fprintf(&b, "**Language:** %s  \n", report.Language)
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Input\n\n")
	fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(report.Input, "\n", "\n> "))

	b.WriteString("## Analysis\n\n")
	fmt.Fprintf(&b, "- Normalized text: `%s`\n", report.Normalized)
	fmt.Fprintf(&b, "- Misinformation score: %.2f\n", report.Scores.Misinformation)
	fmt.Fprintf(&b, "- Sensationalism score: %.2f\n", report.Scores.Sensationalism)
	fmt.Fprintf(&b, "- Preliminary prediction: %s\n\n", report.Preliminary)

	b.WriteString("## External Fact-checks\n\n")
	if len(report.FactChecks) == 0 {
		b.WriteString("No matching external fact-checks found.\n\n")
	} else {
		for _, fc := range report.FactChecks {
			fmt.Fprintf(&b, "- **%s** — [%s](%s)\n", fc.Verdict, fc.Title, fc.URL)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Explanation\n\n")
	fmt.Fprintf(&b, "**English:** %s\n\n", report.Explanation.English)
	fmt.Fprintf(&b, "**Hindi:** %s\n\n", report.Explanation.Hindi)
	fmt.Fprintf(&b, "**Marathi:** %s\n\n", report.Explanation.Marathi)

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Heuristic prototype output. Verify claims against primary sources before acting.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a human-readable summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Printf("Verdict:        %s (confidence %d/100)\n", report.Verdict, report.Confidence)
	fmt.Printf("Language:       %s\n", report.Language)
	fmt.Printf("Normalized:     %s\n", report.Normalized)
	fmt.Printf("Scores:         misinformation %.2f, sensationalism %.2f\n",
		report.Scores.Misinformation, report.Scores.Sensationalism)
	fmt.Printf("Preliminary:    %s\n", report.Preliminary)

	if len(report.FactChecks) == 0 {
		fmt.Println("Fact-checks:    none found")
	} else {
		fmt.Println("Fact-checks:")
		for _, fc := range report.FactChecks {
			fmt.Printf("  - %s: %s (%s)\n", fc.Verdict, fc.Title, fc.URL)
		}
	}

	fmt.Printf("Explanation:    %s\n", report.Explanation.English)
	if r.includeFooter {
		fmt.Println()
		fmt.Println("Heuristic prototype output. Verify claims against primary sources before acting.")
	}
}
