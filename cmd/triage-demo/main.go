// Demo program that runs a few representative claims through the
// triage pipeline and prints every intermediate value.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/pipeline"
)

func main() {
	fmt.Println("=== Claim Triage Demo ===")
	fmt.Println()

	testClaims := []string{
		"SHOCKING news!!! The WHO is hiding the true source of the outbreak: read this urgent report http://bad.url/urgent-report",
		"Government has just confirmed: withdraw money before 5000 rupee notes are withdrawn tomorrow!",
		"स्कूल अनिश्चित काल के लिए बंद हैं",
		"The library opens at nine and the garden tour starts at noon.",
	}

	cfg := model.DefaultConfig()
	logger := zerolog.Nop()
	p := pipeline.NewPipeline(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, claim := range testClaims {
		fmt.Printf("Claim: %s\n", claim)
		fmt.Println(strings.Repeat("-", 60))

		report := p.Analyze(ctx, claim)

		fmt.Printf("  Language:       %s\n", report.Language)
		fmt.Printf("  Normalized:     %s\n", report.Normalized)
		fmt.Printf("  Misinformation: %.2f\n", report.Scores.Misinformation)
		fmt.Printf("  Sensationalism: %.2f\n", report.Scores.Sensationalism)
		fmt.Printf("  Preliminary:    %s\n", report.Preliminary)

		if len(report.FactChecks) == 0 {
			fmt.Println("  Fact-checks:    none found")
		} else {
			fmt.Println("  Fact-checks:")
			for _, fc := range report.FactChecks {
				fmt.Printf("    - %s: %s\n", fc.Verdict, fc.Title)
			}
		}

		fmt.Printf("  Verdict:        %s (confidence %d/100)\n", report.Verdict, report.Confidence)
		fmt.Printf("  Explanation:    %s\n", report.Explanation.English)
		fmt.Println()
	}

	fmt.Println("=== Demo Complete ===")
	fmt.Println()
	fmt.Println("Note: scores come from lexical heuristics and a simulated")
	fmt.Println("fact-check catalog. Translation requires a configured provider.")
}
