package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ppiankov/truthlens/internal/model"
)

// Analyzer defines the interface for triaging a single claim
type Analyzer interface {
	Analyze(ctx context.Context, claim string) *model.Report
}

// ClaimResult pairs an input claim with its report. Err is set only when
// the batch was cancelled before the claim was analyzed.
type ClaimResult struct {
	Claim  string
	Report *model.Report
	Err    error
}

// BatchProcessor analyzes multiple claims concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessClaims analyzes claims with bounded concurrency, preserving input order
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []ClaimResult {
	if len(claims) == 0 {
		return []ClaimResult{}
	}

	results := make([]ClaimResult, len(claims))
	semaphore := make(chan struct{}, b.concurrency)

	var wg sync.WaitGroup

	for i, claim := range claims {
		wg.Add(1)

		go func(idx int, text string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = ClaimResult{Claim: text, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = ClaimResult{Claim: text, Report: b.analyzer.Analyze(ctx, text)}
		}(i, claim)
	}

	wg.Wait()

	return results
}

// ProcessFile reads claims from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]ClaimResult, error) {
	claims, err := ReadClaimsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}

	return b.ProcessClaims(ctx, claims), nil
}

// ReadClaimsFromFile reads claims from a file (one per line)
func ReadClaimsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var claims []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		claims = append(claims, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return claims, nil
}
