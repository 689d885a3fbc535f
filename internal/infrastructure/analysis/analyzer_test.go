package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
)

func instant() Options { return Options{} }

func TestAnalyzeImagePayloadPerType(t *testing.T) {
	a := NewMockAnalyzer(instant(), nil)
	ctx := context.Background()

	color, err := a.AnalyzeImage(ctx, "/media/photos/x.webp", entities.AnalysisColor)
	require.NoError(t, err)
	cp, ok := color.(*entities.ColorPayload)
	require.True(t, ok)
	assert.Equal(t, entities.SeasonSpringWarm, cp.ColorSeason)
	assert.Len(t, cp.Palette, 5)
	assert.Equal(t, "#FF7F50", cp.Palette[0].Hex)

	face, err := a.AnalyzeImage(ctx, "x", entities.AnalysisFace)
	require.NoError(t, err)
	assert.Equal(t, entities.FaceOval, face.(*entities.FacePayload).FaceShape)

	skin, err := a.AnalyzeImage(ctx, "x", entities.AnalysisSkin)
	require.NoError(t, err)
	assert.Equal(t, entities.SkinCombination, skin.(*entities.SkinPayload).SkinType)

	style, err := a.AnalyzeImage(ctx, "x", entities.AnalysisStyle)
	require.NoError(t, err)
	assert.Equal(t, "Elegant Casual", style.(*entities.StylePayload).StyleType)
	assert.Len(t, style.Advice(), 3)
}

func TestAnalyzeImageRejectsUnsupportedTypes(t *testing.T) {
	a := NewMockAnalyzer(instant(), nil)

	_, err := a.AnalyzeImage(context.Background(), "x", entities.AnalysisOutfit)
	assert.ErrorIs(t, err, ErrUnknownAnalysisType)

	_, err = a.AnalyzeImage(context.Background(), "x", entities.AnalysisType("aura"))
	assert.ErrorIs(t, err, ErrUnknownAnalysisType)
}

func TestRecommendationsAreFixed(t *testing.T) {
	a := NewMockAnalyzer(instant(), nil)

	products, err := a.GetProductRecommendations(context.Background(), nil, entities.AnalysisFace)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "rec-product-1", products[0].ID)
}

func TestAnalyzeImageWaitsForDelay(t *testing.T) {
	a := NewMockAnalyzer(Options{AnalysisDelay: 30 * time.Millisecond}, nil)

	start := time.Now()
	_, err := a.AnalyzeImage(context.Background(), "x", entities.AnalysisColor)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestCancelledCallDiscardsResult(t *testing.T) {
	a := NewMockAnalyzer(Options{AnalysisDelay: time.Minute, RecommendationDelay: time.Minute}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	payload, err := a.AnalyzeImage(ctx, "x", entities.AnalysisColor)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, payload)

	products, err := a.GetProductRecommendations(ctx, nil, entities.AnalysisColor)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, products)
}

func TestInjectedFailure(t *testing.T) {
	boom := errors.New("service unavailable")
	a := NewMockAnalyzer(Options{FailWith: boom}, nil)

	_, err := a.AnalyzeImage(context.Background(), "x", entities.AnalysisColor)
	assert.ErrorIs(t, err, boom)

	a.SetFailure(nil)
	_, err = a.AnalyzeImage(context.Background(), "x", entities.AnalysisColor)
	assert.NoError(t, err)
}
