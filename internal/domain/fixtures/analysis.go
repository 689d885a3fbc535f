package fixtures

import "github.com/AtRiskMedia/glowyn-go/internal/domain/entities"

// AnalysisKind describes one entry of the analysis picker.
type AnalysisKind struct {
	ID              string                `json:"id"`
	Type            entities.AnalysisType `json:"type"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Icon            string                `json:"icon"`
	BackgroundColor string                `json:"backgroundColor"`
}

func AnalysisKinds() []AnalysisKind {
	return []AnalysisKind{
		{ID: "analysis-type-1", Type: entities.AnalysisColor, Title: "Analisis Warna", Description: "Temukan palet warna sempurnamu", Icon: "palette", BackgroundColor: "#FFC1E3"},
		{ID: "analysis-type-2", Type: entities.AnalysisFace, Title: "Bentuk Wajah", Description: "Temukan bentuk dan gaya ideal", Icon: "user", BackgroundColor: "#E1F5FE"},
		{ID: "analysis-type-3", Type: entities.AnalysisSkin, Title: "Analisis Kulit", Description: "Temukan jenis kulit dan perawatan terbaik", Icon: "droplet", BackgroundColor: "#F3E5F5"},
		{ID: "analysis-type-4", Type: entities.AnalysisStyle, Title: "Gaya Personal", Description: "Temukan gaya yang cocok dengan kepribadianmu", Icon: "shirt", BackgroundColor: "#E8F5E9"},
	}
}

// AnalysisKindFor returns the picker entry for t.
func AnalysisKindFor(t entities.AnalysisType) (AnalysisKind, bool) {
	for _, k := range AnalysisKinds() {
		if k.Type == t {
			return k, true
		}
	}
	return AnalysisKind{}, false
}

// SeasonPalette is one of the four seasonal palettes offered by colour analysis.
type SeasonPalette struct {
	ID          string               `json:"id"`
	Name        entities.ColorSeason `json:"name"`
	Description string               `json:"description"`
	Colors      []string             `json:"colors"`
}

func ColorSeasons() []SeasonPalette {
	return []SeasonPalette{
		{
			ID:          "spring",
			Name:        entities.SeasonSpringWarm,
			Description: "Warna-warna cerah dan hangat yang cocok untuk kulit dengan undertone hangat kekuningan.",
			Colors:      []string{"#FF7F50", "#FFDAB9", "#FFD700", "#BCB88A", "#40E0D0"},
		},
		{
			ID:          "summer",
			Name:        entities.SeasonSummerCool,
			Description: "Warna-warna lembut dan dingin yang cocok untuk kulit dengan undertone dingin kebiruan.",
			Colors:      []string{"#B0C4DE", "#D8BFD8", "#ADD8E6", "#E6E6FA", "#F0F8FF"},
		},
		{
			ID:          "autumn",
			Name:        entities.SeasonAutumnWarm,
			Description: "Warna-warna hangat dan dalam yang cocok untuk kulit dengan undertone hangat keemasan.",
			Colors:      []string{"#D2691E", "#CD853F", "#DAA520", "#556B2F", "#8B4513"},
		},
		{
			ID:          "winter",
			Name:        entities.SeasonWinterCool,
			Description: "Warna-warna kontras dan dingin yang cocok untuk kulit dengan undertone dingin kebiruan.",
			Colors:      []string{"#4B0082", "#800000", "#000080", "#008080", "#FFFFFF"},
		},
	}
}

func ColorResult() *entities.ColorPayload {
	return &entities.ColorPayload{
		ColorSeason: entities.SeasonSpringWarm,
		Palette: []entities.ColorSwatch{
			{Name: "Coral", Hex: "#FF7F50"},
			{Name: "Peach", Hex: "#FFDAB9"},
			{Name: "Warm Yellow", Hex: "#FFD700"},
			{Name: "Sage Green", Hex: "#BCB88A"},
			{Name: "Turquoise", Hex: "#40E0D0"},
		},
		Recommendations: []string{
			"Wear warm-toned colors that enhance your natural glow",
			"Avoid cool blues and purples that may wash you out",
			"Gold jewelry will complement your warm undertones better than silver",
		},
	}
}

func FaceResult() *entities.FacePayload {
	return &entities.FacePayload{
		FaceShape: entities.FaceOval,
		Recommendations: []string{
			"Your oval face shape is versatile and works with most hairstyles",
			"Try side-swept bangs to highlight your cheekbones",
			"Round or square glasses frames will complement your face shape",
		},
	}
}

func SkinResult() *entities.SkinPayload {
	return &entities.SkinPayload{
		SkinType: entities.SkinCombination,
		Recommendations: []string{
			"Use gentle cleansers that won't strip your skin",
			"Apply moisturizer more heavily on dry areas",
			"Use oil-control products on your T-zone",
		},
	}
}

func StyleResult() *entities.StylePayload {
	return &entities.StylePayload{
		StyleType: "Elegant Casual",
		Recommendations: []string{
			"Focus on well-fitted basics with a few statement pieces",
			"Incorporate your warm color palette into your wardrobe",
			"Accessorize with gold-toned jewelry to enhance your look",
		},
	}
}

// RecentAnalyses seeds the session's analysis history, newest first.
func RecentAnalyses() []entities.AnalysisResult {
	portrait := photo("photo-1494790108377-be9c29b29330")
	return []entities.AnalysisResult{
		{
			ID:          "analysis-1",
			Type:        entities.AnalysisColor,
			Date:        "2025-06-20",
			Title:       "Analisis Warna",
			Description: "Temukan palet warna sempurnamu",
			ImageURL:    strPtr(portrait),
			Result:      ColorResult(),
		},
		{
			ID:          "analysis-2",
			Type:        entities.AnalysisFace,
			Date:        "2025-06-18",
			Title:       "Bentuk Wajah",
			Description: "Temukan bentuk dan gaya ideal",
			ImageURL:    strPtr(portrait),
			Result:      FaceResult(),
		},
		{
			ID:          "analysis-3",
			Type:        entities.AnalysisSkin,
			Date:        "2025-06-15",
			Title:       "Analisis Kulit",
			Description: "Temukan jenis kulit dan perawatan terbaik",
			ImageURL:    strPtr(portrait),
			Result:      SkinResult(),
		},
	}
}
