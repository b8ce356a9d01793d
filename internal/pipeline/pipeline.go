package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/explain"
	"github.com/ppiankov/truthlens/internal/factcheck"
	"github.com/ppiankov/truthlens/internal/fuse"
	"github.com/ppiankov/truthlens/internal/language"
	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/score"
	"github.com/ppiankov/truthlens/internal/translate"
)

// Pipeline orchestrates the complete claim triage process
type Pipeline struct {
	router    *language.Router
	booster   *score.Booster
	simulator *factcheck.Simulator
	explainer *explain.Generator
	renderer  *Renderer
	config    *model.Config
	logger    zerolog.Logger
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger zerolog.Logger) *Pipeline {
	translator, err := translate.New(cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("translation unavailable, continuing without it")
		translator = translate.Disabled{}
	}

	var detector language.Detector
	if cfg.Detection.Enabled {
		detector = language.NewDetector()
	}

	return &Pipeline{
		router:    language.NewRouter(detector, translator, logger),
		booster:   score.NewBooster(),
		simulator: factcheck.NewSimulator(),
		explainer: explain.NewGenerator(translator, logger),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
		logger:    logger,
	}
}

// Analyze runs a single claim through the full triage pipeline. It is
// total: collaborator failures degrade to safe defaults and every input,
// including the empty string, produces a report.
func (p *Pipeline) Analyze(ctx context.Context, raw string) *model.Report {
	// 1. Preprocess: strip markup, guard critical tokens, translate, normalize
	normalized, lang := p.Preprocess(ctx, raw)

	// 2. Score and boost
	scores, preliminary := p.booster.Analyze(normalized)

	// 3. Simulated external fact-check lookup
	results := p.simulator.Check(normalized)

	// 4. Fuse internal and external signals
	fused := fuse.Fuse(scores.Misinformation, results)

	// 5. Explain in English, Hindi and Marathi
	summary := p.explainer.Summarize(results, fused.Verdict)
	explanation := p.explainer.Multilingual(ctx, summary)

	return &model.Report{
		Input:       raw,
		Normalized:  normalized,
		Language:    lang,
		AnalyzedAt:  time.Now().UTC(),
		Scores:      scores,
		Preliminary: preliminary,
		FactChecks:  results,
		Confidence:  fused.Confidence,
		Verdict:     fused.Verdict,
		Explanation: explanation,
	}
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return err
		}
		if verbose {
			p.logger.Info().Str("path", jsonPath).Msg("wrote JSON report")
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return err
		}
		if verbose {
			p.logger.Info().Str("path", mdPath).Msg("wrote Markdown report")
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
