// Package branding models the white-label configuration that rebrands
// the hub: company identity, color palette, and the trivia/word banks.
// A Branding value is immutable once loaded and passed into the hub and
// into each game at construction time.
package branding

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// TriviaQuestion is one quiz item: a prompt, four options, and the index
// of the correct one.
type TriviaQuestion struct {
	Question string   `koanf:"question" json:"question"`
	Options  []string `koanf:"options" json:"options"`
	Correct  int      `koanf:"correct" json:"correct"`
}

// Branding is the closed set of recognized white-label fields. Free-form
// property access is deliberately impossible.
type Branding struct {
	CompanyName     string              `koanf:"company_name" json:"companyName"`
	BrandColor      string              `koanf:"brand_color" json:"brandColor"`
	LogoURL         string              `koanf:"logo_url" json:"logoUrl"`
	Motive          string              `koanf:"motive" json:"motive"`
	PaletteKey      string              `koanf:"palette_key" json:"paletteKey"`
	ShowBanner      bool                `koanf:"show_banner" json:"showBanner"`
	TriviaQuestions []TriviaQuestion    `koanf:"trivia_questions" json:"triviaQuestions"`
	WordCategories  map[string][]string `koanf:"word_categories" json:"wordCategories"`
}

// Load reads a branding YAML file, filling anything the file omits from
// the built-in generic banks. An empty path returns the defaults.
func Load(_ context.Context, path string) (Branding, error) {
	b := Default()
	if path == "" {
		return b, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return b, fmt.Errorf("load branding file: %w", err)
	}
	if err := k.UnmarshalWithConf("", &b, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return b, fmt.Errorf("parse branding file: %w", err)
	}
	if len(b.TriviaQuestions) == 0 {
		b.TriviaQuestions = Default().TriviaQuestions
	}
	if len(b.WordCategories) == 0 {
		b.WordCategories = Default().WordCategories
	}
	return b, nil
}

// Palette returns the color variants for the branding's palette key,
// falling back to the red palette for unknown keys.
func (b Branding) Palette() []string {
	if colors, ok := palettes[b.PaletteKey]; ok {
		return colors
	}
	return palettes["red"]
}
