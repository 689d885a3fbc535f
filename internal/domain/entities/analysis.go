package entities

import (
	"encoding/json"
	"fmt"
)

// AnalysisType is the closed set of analyses the app can run.
type AnalysisType string

const (
	AnalysisColor  AnalysisType = "color"
	AnalysisFace   AnalysisType = "face"
	AnalysisSkin   AnalysisType = "skin"
	AnalysisStyle  AnalysisType = "style"
	AnalysisOutfit AnalysisType = "outfit"
)

// ParseAnalysisType validates s against the known analysis types.
func ParseAnalysisType(s string) (AnalysisType, error) {
	switch t := AnalysisType(s); t {
	case AnalysisColor, AnalysisFace, AnalysisSkin, AnalysisStyle, AnalysisOutfit:
		return t, nil
	}
	return "", fmt.Errorf("unknown analysis type %q", s)
}

type ColorSeason string

const (
	SeasonSpringWarm ColorSeason = "Spring Warm"
	SeasonSummerCool ColorSeason = "Summer Cool"
	SeasonAutumnWarm ColorSeason = "Autumn Warm"
	SeasonWinterCool ColorSeason = "Winter Cool"
)

type FaceShape string

const (
	FaceOval      FaceShape = "Oval"
	FaceRound     FaceShape = "Round"
	FaceSquare    FaceShape = "Square"
	FaceHeart     FaceShape = "Heart"
	FaceDiamond   FaceShape = "Diamond"
	FaceRectangle FaceShape = "Rectangle"
	FaceTriangle  FaceShape = "Triangle"
)

type SkinType string

const (
	SkinDry         SkinType = "Dry"
	SkinOily        SkinType = "Oily"
	SkinCombination SkinType = "Combination"
	SkinNormal      SkinType = "Normal"
	SkinSensitive   SkinType = "Sensitive"
)

type ColorSwatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Payload is the type-specific body of an analysis result. The concrete
// types below are the only implementations.
type Payload interface {
	Kind() AnalysisType
	Advice() []string
	clone() Payload
}

type ColorPayload struct {
	ColorSeason     ColorSeason   `json:"colorSeason"`
	Palette         []ColorSwatch `json:"palette"`
	Recommendations []string      `json:"recommendations"`
}

func (p *ColorPayload) Kind() AnalysisType { return AnalysisColor }
func (p *ColorPayload) Advice() []string   { return p.Recommendations }
func (p *ColorPayload) clone() Payload {
	c := *p
	c.Palette = append([]ColorSwatch(nil), p.Palette...)
	c.Recommendations = append([]string(nil), p.Recommendations...)
	return &c
}

type FacePayload struct {
	FaceShape       FaceShape `json:"faceShape"`
	Recommendations []string  `json:"recommendations"`
}

func (p *FacePayload) Kind() AnalysisType { return AnalysisFace }
func (p *FacePayload) Advice() []string   { return p.Recommendations }
func (p *FacePayload) clone() Payload {
	c := *p
	c.Recommendations = append([]string(nil), p.Recommendations...)
	return &c
}

type SkinPayload struct {
	SkinType        SkinType `json:"skinType"`
	Recommendations []string `json:"recommendations"`
}

func (p *SkinPayload) Kind() AnalysisType { return AnalysisSkin }
func (p *SkinPayload) Advice() []string   { return p.Recommendations }
func (p *SkinPayload) clone() Payload {
	c := *p
	c.Recommendations = append([]string(nil), p.Recommendations...)
	return &c
}

type StylePayload struct {
	StyleType       string   `json:"styleType"`
	Recommendations []string `json:"recommendations"`
}

func (p *StylePayload) Kind() AnalysisType { return AnalysisStyle }
func (p *StylePayload) Advice() []string   { return p.Recommendations }
func (p *StylePayload) clone() Payload {
	c := *p
	c.Recommendations = append([]string(nil), p.Recommendations...)
	return &c
}

type OutfitPayload struct {
	Recommendations []string `json:"recommendations"`
}

func (p *OutfitPayload) Kind() AnalysisType { return AnalysisOutfit }
func (p *OutfitPayload) Advice() []string   { return p.Recommendations }
func (p *OutfitPayload) clone() Payload {
	c := *p
	c.Recommendations = append([]string(nil), p.Recommendations...)
	return &c
}

// DecodePayload decodes a flat JSON result body into the variant for t.
func DecodePayload(t AnalysisType, raw json.RawMessage) (Payload, error) {
	var p Payload
	switch t {
	case AnalysisColor:
		p = &ColorPayload{}
	case AnalysisFace:
		p = &FacePayload{}
	case AnalysisSkin:
		p = &SkinPayload{}
	case AnalysisStyle:
		p = &StylePayload{}
	case AnalysisOutfit:
		p = &OutfitPayload{}
	default:
		return nil, fmt.Errorf("no payload variant for analysis type %q", t)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", t, err)
	}
	return p, nil
}

// AnalysisResult is one completed analysis. It is never mutated once stored.
type AnalysisResult struct {
	ID                  string
	Type                AnalysisType
	Date                string
	Title               string
	Description         string
	ImageURL            *string
	Result              Payload
	RecommendedProducts []Product
}

type analysisResultJSON struct {
	ID                  string          `json:"id"`
	Type                AnalysisType    `json:"type"`
	Date                string          `json:"date"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	ImageURL            *string         `json:"imageUrl,omitempty"`
	Result              json.RawMessage `json:"result,omitempty"`
	RecommendedProducts []Product       `json:"recommendedProducts,omitempty"`
}

func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	out := analysisResultJSON{
		ID:                  r.ID,
		Type:                r.Type,
		Date:                r.Date,
		Title:               r.Title,
		Description:         r.Description,
		ImageURL:            r.ImageURL,
		RecommendedProducts: r.RecommendedProducts,
	}
	if r.Result != nil {
		raw, err := json.Marshal(r.Result)
		if err != nil {
			return nil, err
		}
		out.Result = raw
	}
	return json.Marshal(out)
}

func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	var in analysisResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = AnalysisResult{
		ID:                  in.ID,
		Type:                in.Type,
		Date:                in.Date,
		Title:               in.Title,
		Description:         in.Description,
		ImageURL:            in.ImageURL,
		RecommendedProducts: in.RecommendedProducts,
	}
	if len(in.Result) > 0 && string(in.Result) != "null" {
		p, err := DecodePayload(in.Type, in.Result)
		if err != nil {
			return err
		}
		r.Result = p
	}
	return nil
}

// Clone returns a deep copy of the result.
func (r AnalysisResult) Clone() AnalysisResult {
	if r.Result != nil {
		r.Result = r.Result.clone()
	}
	r.RecommendedProducts = CloneProducts(r.RecommendedProducts)
	return r
}
