package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/security"
)

// PhotoCapturer is the photo intake boundary.
type PhotoCapturer interface {
	Capture(ctx context.Context, source media.Source, data string) (string, error)
}

// AnalysisService runs the capture, analyse, recommend, record flow
type AnalysisService struct {
	users    interfaces.UserCache
	photos   PhotoCapturer
	analyzer analysis.Analyzer
	logger   *logging.ChanneledLogger
}

func NewAnalysisService(users interfaces.UserCache, photos PhotoCapturer, analyzer analysis.Analyzer, logger *logging.ChanneledLogger) *AnalysisService {
	return &AnalysisService{users: users, photos: photos, analyzer: analyzer, logger: logger}
}

func (s *AnalysisService) Types() []fixtures.AnalysisKind {
	return fixtures.AnalysisKinds()
}

func (s *AnalysisService) ColorSeasons() []fixtures.SeasonPalette {
	return fixtures.ColorSeasons()
}

// Capture returns "" without error when the user cancelled.
func (s *AnalysisService) Capture(ctx context.Context, source media.Source, data string) (string, error) {
	return s.photos.Capture(ctx, source, data)
}

// Run analyses imageURI, fetches recommendations and prepends the result to
// the session history. Nothing is recorded unless every step succeeds.
func (s *AnalysisService) Run(ctx context.Context, imageURI string, t entities.AnalysisType) (entities.AnalysisResult, error) {
	start := time.Now()

	payload, err := s.analyzer.AnalyzeImage(ctx, imageURI, t)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("failed to analyze image: %w", err)
	}

	products, err := s.analyzer.GetProductRecommendations(ctx, payload, t)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("failed to get recommendations: %w", err)
	}

	result := entities.AnalysisResult{
		ID:                  security.GeneratePrefixedID("analysis"),
		Type:                t,
		Date:                time.Now().UTC().Format(time.RFC3339),
		Title:               string(t),
		Result:              payload,
		RecommendedProducts: products,
	}
	if kind, ok := fixtures.AnalysisKindFor(t); ok {
		result.Title = kind.Title
		result.Description = kind.Description
	}
	if imageURI != "" {
		uri := imageURI
		result.ImageURL = &uri
	}

	s.users.AddAnalysisResult(result)
	s.logger.Analysis().Info("Analysis recorded", "id", result.ID, "type", t, "duration", time.Since(start))
	return result, nil
}

func (s *AnalysisService) Results() []entities.AnalysisResult {
	return s.users.AnalysisResults()
}

func (s *AnalysisService) Recent() []entities.AnalysisResult {
	return s.users.RecentAnalyses()
}

func (s *AnalysisService) ByID(id string) (entities.AnalysisResult, bool) {
	return s.users.AnalysisByID(id)
}

func (s *AnalysisService) LatestByType(t entities.AnalysisType) (entities.AnalysisResult, bool) {
	return s.users.AnalysisByType(t)
}
