package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/pipeline"
)

var (
	outJSON    string
	outMD      string
	timeout    time.Duration
	noCache    bool
	noDetect   bool
	noFooter   bool
	provider   string
	modelName  string
	httpProxy  string
	httpsProxy string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze a single claim and generate a triage report",
	Long: `Analyze runs a single claim through the triage pipeline:
- Normalize the text and guard critical tokens
- Detect the language and translate non-English input
- Score the claim with misinformation and sensationalism heuristics
- Match against a catalog of known fact-check outcomes
- Fuse the signals into a confidence score and verdict
- Explain the outcome in English, Hindi and Marathi

Example:
  truthlens analyze "Breaking: schools closed indefinitely!"
  truthlens analyze "Forward this now" --json report.json --md report.md
  truthlens analyze "यह खबर सच है" --provider google`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in reports")

	// Translation flags
	analyzeCmd.Flags().StringVar(&provider, "provider", "", "translation provider (google, openai; empty disables translation)")
	analyzeCmd.Flags().StringVar(&modelName, "model", "", "model name for the openai provider")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the translation cache")
	analyzeCmd.Flags().BoolVar(&noDetect, "no-detect", false, "disable statistical language detection")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger()
	p := pipeline.NewPipeline(cfg, logger)

	report := p.Analyze(ctx, text)

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the runtime configuration in priority order:
// defaults, then config file and TRUTHLENS_* environment via viper, then
// only the flags the user actually set.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Translation.Provider = provider
	}
	if flags.Changed("model") {
		cfg.Translation.Model = modelName
	}
	if flags.Changed("http-proxy") {
		cfg.Translation.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.Translation.HTTPSProxy = httpsProxy
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("no-detect") {
		cfg.Detection.Enabled = !noDetect
	}
	if flags.Changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	cfg.Output.Verbose = verbose

	if cfg.Translation.Provider == "openai" && cfg.Translation.APIKey == "" {
		cfg.Translation.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Translation.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
