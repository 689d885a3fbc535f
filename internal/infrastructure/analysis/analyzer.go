// Package analysis provides the mock image analysis and recommendation service.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
)

// ErrUnknownAnalysisType is returned for types the analyzer has no model for.
var ErrUnknownAnalysisType = errors.New("unknown analysis type")

// Analyzer is the analysis service boundary.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, imageURI string, t entities.AnalysisType) (entities.Payload, error)
	GetProductRecommendations(ctx context.Context, payload entities.Payload, t entities.AnalysisType) ([]entities.Product, error)
}

// Options configure the simulated latency and failures.
type Options struct {
	AnalysisDelay       time.Duration
	RecommendationDelay time.Duration
	// FailWith, when set, makes every call fail with it after the delay.
	FailWith error
}

func DefaultOptions() Options {
	return Options{
		AnalysisDelay:       1500 * time.Millisecond,
		RecommendationDelay: 800 * time.Millisecond,
	}
}

// MockAnalyzer answers with fixed payloads after a fixed delay. The image is
// never inspected.
type MockAnalyzer struct {
	mu     sync.RWMutex
	opts   Options
	logger *logging.ChanneledLogger
}

var _ Analyzer = (*MockAnalyzer)(nil)

func NewMockAnalyzer(opts Options, logger *logging.ChanneledLogger) *MockAnalyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &MockAnalyzer{opts: opts, logger: logger}
}

// SetFailure changes the injected failure; nil restores normal answers.
func (a *MockAnalyzer) SetFailure(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts.FailWith = err
}

func (a *MockAnalyzer) options() Options {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.opts
}

func (a *MockAnalyzer) AnalyzeImage(ctx context.Context, imageURI string, t entities.AnalysisType) (entities.Payload, error) {
	opts := a.options()
	start := time.Now()

	if err := wait(ctx, opts.AnalysisDelay); err != nil {
		a.logger.Analysis().Debug("Analysis abandoned", "type", t, "error", err)
		return nil, err
	}
	if opts.FailWith != nil {
		a.logger.Analysis().Warn("Analysis failed", "type", t, "error", opts.FailWith)
		return nil, opts.FailWith
	}

	var payload entities.Payload
	switch t {
	case entities.AnalysisColor:
		payload = fixtures.ColorResult()
	case entities.AnalysisFace:
		payload = fixtures.FaceResult()
	case entities.AnalysisSkin:
		payload = fixtures.SkinResult()
	case entities.AnalysisStyle:
		payload = fixtures.StyleResult()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, t)
	}

	a.logger.Analysis().Info("Analysis completed", "type", t, "image", imageURI, "duration", time.Since(start))
	return payload, nil
}

// GetProductRecommendations returns the same three products for every input.
func (a *MockAnalyzer) GetProductRecommendations(ctx context.Context, payload entities.Payload, t entities.AnalysisType) ([]entities.Product, error) {
	opts := a.options()

	if err := wait(ctx, opts.RecommendationDelay); err != nil {
		a.logger.Analysis().Debug("Recommendations abandoned", "type", t, "error", err)
		return nil, err
	}
	if opts.FailWith != nil {
		a.logger.Analysis().Warn("Recommendations failed", "type", t, "error", opts.FailWith)
		return nil, opts.FailWith
	}

	products := fixtures.RecommendedProducts()
	a.logger.Analysis().Debug("Recommendations ready", "type", t, "count", len(products))
	return products, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
