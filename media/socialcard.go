package media

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hupe1980/contentstudio/tool"
)

// SocialCardParams are the inputs for social media preview card composition.
type SocialCardParams struct {
	Title     string
	Subtitle  string
	ImagePath string // optional background image
	Platform  string // twitter, facebook, linkedin, instagram
	Theme     string // dark, light, colorful
}

// platformDimensions holds the per-platform card sizes.
var platformDimensions = map[string][2]int{
	"twitter":   {1200, 675}, // 16:9
	"facebook":  {1200, 630}, // ~1.91:1
	"linkedin":  {1200, 627}, // ~1.91:1
	"instagram": {1080, 1080},
}

// cardTheme is a fixed color palette for one theme name.
type cardTheme struct {
	bg, title, subtitle, accent color.RGBA
}

var cardThemes = map[string]cardTheme{
	"dark": {
		bg:       color.RGBA{0x1A, 0x1A, 0x2E, 0xFF},
		title:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		subtitle: color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
		accent:   color.RGBA{0x4E, 0xCD, 0xC4, 0xFF},
	},
	"light": {
		bg:       color.RGBA{0xF8, 0xF9, 0xFA, 0xFF},
		title:    color.RGBA{0x2C, 0x3E, 0x50, 0xFF},
		subtitle: color.RGBA{0x7F, 0x8C, 0x8D, 0xFF},
		accent:   color.RGBA{0x34, 0x98, 0xDB, 0xFF},
	},
	"colorful": {
		bg:       color.RGBA{0xFF, 0x6B, 0x6B, 0xFF},
		title:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		subtitle: color.RGBA{0xFF, 0xE6, 0x6D, 0xFF},
		accent:   color.RGBA{0x4E, 0xCD, 0xC4, 0xFF},
	},
}

// GenerateSocialCard composes an Open Graph / Twitter Card style preview
// image and writes it as PNG.
func (s *Store) GenerateSocialCard(p SocialCardParams) (map[string]any, error) {
	platform := strings.ToLower(p.Platform)
	dims, ok := platformDimensions[platform]
	if !ok {
		platform = orDefault(platform, "twitter")
		dims = [2]int{1200, 630}
	}
	width, height := dims[0], dims[1]

	theme, ok := cardThemes[strings.ToLower(p.Theme)]
	if !ok {
		theme = cardThemes["dark"]
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(theme.bg)
	dc.Clear()

	// Optional background image, washed with a translucent theme layer for
	// text readability. A failed load falls back to the solid background.
	if p.ImagePath != "" {
		if img, err := gg.LoadImage(p.ImagePath); err == nil {
			bounds := img.Bounds()
			sx := float64(width) / float64(bounds.Dx())
			sy := float64(height) / float64(bounds.Dy())
			dc.Push()
			dc.Scale(sx, sy)
			dc.DrawImage(img, 0, 0)
			dc.Pop()
			dc.SetRGBA255(int(theme.bg.R), int(theme.bg.G), int(theme.bg.B), 178)
			dc.DrawRectangle(0, 0, float64(width), float64(height))
			dc.Fill()
		} else {
			s.logger.Warn("media.socialcard.background_skipped", "path", p.ImagePath, "error", err.Error())
		}
	}

	// Accent bar above the footer.
	dc.SetColor(theme.accent)
	dc.DrawRectangle(50, float64(height-150), 100, 10)
	dc.Fill()

	// Title, wrapped to at most two lines.
	titleFace := FontFace(60)
	dc.SetFontFace(titleFace)
	dc.SetColor(theme.title)
	lines := wrapText(dc, p.Title, float64(width-100))
	if len(lines) > 2 {
		lines = lines[:2]
	}
	y := float64(height) / 3
	for _, line := range lines {
		dc.DrawStringAnchored(line, 60, y, 0, 0.5)
		y += 80
	}

	if p.Subtitle != "" {
		dc.SetFontFace(FontFace(30))
		dc.SetColor(theme.subtitle)
		dc.DrawStringAnchored(p.Subtitle, 60, float64(height)/2+50, 0, 0.5)
	}

	// Platform badge.
	dc.SetFontFace(FontFace(20))
	dc.SetColor(theme.subtitle)
	dc.DrawStringAnchored(fmt.Sprintf("Optimized for %s", titleCase(platform)), 60, float64(height-80), 0, 0.5)

	path, filename := s.artifactPath("social_card_"+platform, "png")
	if err := dc.SavePNG(path); err != nil {
		return nil, tool.NewToolError("create_social_card",
			fmt.Sprintf("failed to create social card: %v", err), tool.CodeGeneration)
	}

	s.logger.Debug("media.socialcard.written", "path", path, "platform", platform)

	return map[string]any{
		"output_path": path,
		"filename":    filename,
		"platform":    platform,
		"dimensions":  []int{width, height},
		"theme":       strings.ToLower(orDefault(p.Theme, "dark")),
	}, nil
}

// wrapText splits text into lines no wider than maxWidth under the current
// font face. Words wider than maxWidth get a line of their own.
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	if w, _ := dc.MeasureString(text); w <= maxWidth {
		return []string{text}
	}
	var lines []string
	var current []string
	for _, word := range strings.Fields(text) {
		candidate := strings.Join(append(current, word), " ")
		if w, _ := dc.MeasureString(candidate); w <= maxWidth || len(current) == 0 {
			current = append(current, word)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NewSocialCardTool exposes social card composition as a registry tool.
func NewSocialCardTool(store *Store) tool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Main heading text",
			},
			"subtitle": map[string]any{
				"type":        "string",
				"description": "Secondary text (optional)",
			},
			"image_path": map[string]any{
				"type":        "string",
				"description": "Path to a background/feature image (optional)",
			},
			"platform": map[string]any{
				"type":        "string",
				"description": "Target platform, affects dimensions (default: twitter)",
				"enum":        []any{"twitter", "facebook", "linkedin", "instagram"},
			},
			"theme": map[string]any{
				"type":        "string",
				"description": "Color theme (default: dark)",
				"enum":        []any{"dark", "light", "colorful"},
			},
		},
		"required": []string{"title"},
	}

	return tool.NewFunctionTool(
		"create_social_card",
		"Create a social media preview card (Open Graph/Twitter Card style)",
		schema,
		func(_ context.Context, args map[string]any) (any, error) {
			return store.GenerateSocialCard(SocialCardParams{
				Title:     stringArg(args, "title", ""),
				Subtitle:  stringArg(args, "subtitle", ""),
				ImagePath: stringArg(args, "image_path", ""),
				Platform:  stringArg(args, "platform", "twitter"),
				Theme:     stringArg(args, "theme", "dark"),
			})
		},
	)
}
