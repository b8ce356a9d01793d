package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/truthlens/internal/pipeline"
	"github.com/ppiankov/truthlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple claims from a file in parallel",
	Long: `Batch processes multiple claims concurrently:
- Read claims from input file (one per line, # comments skipped)
- Process claims in parallel with configurable worker count
- Generate an individual JSON report for each claim

Example:
  truthlens batch claims.txt
  truthlens batch claims.txt --concurrency 10 --output-dir ./reports
  truthlens batch claims.txt --provider google --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./truthlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared analysis flags
	batchCmd.Flags().StringVar(&provider, "provider", "", "translation provider (google, openai; empty disables translation)")
	batchCmd.Flags().StringVar(&modelName, "model", "", "model name for the openai provider")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the translation cache")
	batchCmd.Flags().BoolVar(&noDetect, "no-detect", false, "disable statistical language detection")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}

	logger := newLogger()
	logger.Info().
		Str("input", file).
		Int("workers", cfg.Concurrency.Workers).
		Str("output_dir", outputDir).
		Dur("timeout", batchTimeout).
		Msg("starting batch")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg, logger)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for i, result := range results {
		if result.Err != nil {
			failureCount++
			logger.Error().Err(result.Err).Str("claim", result.Claim).Msg("analysis aborted")
			continue
		}

		jsonPath := filepath.Join(outputDir, fmt.Sprintf("claim-%03d-%s.json", i+1, claimSlug(result.Claim)))
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failureCount++
			logger.Error().Err(err).Str("claim", result.Claim).Msg("failed to write report")
			continue
		}

		successCount++
		logger.Info().
			Str("verdict", string(result.Report.Verdict)).
			Int("confidence", result.Report.Confidence).
			Str("report", jsonPath).
			Msg(claimSlug(result.Claim))
	}

	logger.Info().
		Int("total", len(results)).
		Int("success", successCount).
		Int("failures", failureCount).
		Str("output_dir", outputDir).
		Msg("batch complete")

	return nil
}

// claimSlug derives a short filesystem-safe slug from the claim text
func claimSlug(claim string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(claim) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
		if b.Len() >= 40 {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "claim"
	}
	return slug
}
