package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResultJSON(t *testing.T) {
	t.Run("color payload keeps the flat result shape", func(t *testing.T) {
		in := AnalysisResult{
			ID:    "analysis-1",
			Type:  AnalysisColor,
			Date:  "2025-06-20",
			Title: "Analisis Warna",
			Result: &ColorPayload{
				ColorSeason:     SeasonSpringWarm,
				Palette:         []ColorSwatch{{Name: "Coral", Hex: "#FF7F50"}},
				Recommendations: []string{"Wear warm tones"},
			},
		}

		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var generic map[string]any
		require.NoError(t, json.Unmarshal(raw, &generic))
		result := generic["result"].(map[string]any)
		assert.Equal(t, "Spring Warm", result["colorSeason"])

		var out AnalysisResult
		require.NoError(t, json.Unmarshal(raw, &out))
		color, ok := out.Result.(*ColorPayload)
		require.True(t, ok, "expected *ColorPayload, got %T", out.Result)
		assert.Equal(t, SeasonSpringWarm, color.ColorSeason)
		assert.Equal(t, "Coral", color.Palette[0].Name)
	})

	t.Run("result variant follows the type field", func(t *testing.T) {
		raw := []byte(`{"id":"a","type":"skin","date":"d","title":"t","description":"x","result":{"skinType":"Combination","recommendations":["r"]}}`)
		var out AnalysisResult
		require.NoError(t, json.Unmarshal(raw, &out))
		skin, ok := out.Result.(*SkinPayload)
		require.True(t, ok)
		assert.Equal(t, SkinCombination, skin.SkinType)
		assert.Equal(t, []string{"r"}, out.Result.Advice())
	})

	t.Run("missing result stays nil", func(t *testing.T) {
		var out AnalysisResult
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a","type":"face"}`), &out))
		assert.Nil(t, out.Result)
	})

	t.Run("unknown type with a result is rejected", func(t *testing.T) {
		var out AnalysisResult
		err := json.Unmarshal([]byte(`{"id":"a","type":"hair","result":{}}`), &out)
		assert.Error(t, err)
	})
}

func TestAnalysisResultClone(t *testing.T) {
	orig := AnalysisResult{
		Type:                AnalysisFace,
		Result:              &FacePayload{FaceShape: FaceOval, Recommendations: []string{"a"}},
		RecommendedProducts: []Product{{ID: "p", Colors: []string{"#fff"}}},
	}
	c := orig.Clone()
	c.Result.(*FacePayload).Recommendations[0] = "changed"
	c.RecommendedProducts[0].Colors[0] = "#000"

	assert.Equal(t, "a", orig.Result.(*FacePayload).Recommendations[0])
	assert.Equal(t, "#fff", orig.RecommendedProducts[0].Colors[0])
}

func TestParseAnalysisType(t *testing.T) {
	for _, s := range []string{"color", "face", "skin", "style", "outfit"} {
		got, err := ParseAnalysisType(s)
		require.NoError(t, err)
		assert.Equal(t, AnalysisType(s), got)
	}
	_, err := ParseAnalysisType("hair")
	assert.Error(t, err)
}

func TestCommentCloneCopiesProfilePointers(t *testing.T) {
	bio, verified := "Beauty lover", true
	c := Comment{ID: "c-1", User: UserProfile{ID: "user-1", Bio: &bio, IsVerified: &verified}}

	cp := c.Clone()
	*cp.User.Bio = "changed"
	*cp.User.IsVerified = false

	assert.Equal(t, "Beauty lover", *c.User.Bio)
	assert.True(t, *c.User.IsVerified)
	assert.Nil(t, CloneComments(nil))
	assert.Nil(t, (*UserProfile)(nil).Clone())
}
