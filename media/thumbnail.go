package media

import (
	"context"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hupe1980/contentstudio/tool"
)

// ThumbnailParams are the inputs for thumbnail rendering. Zero values are
// replaced by the documented defaults.
type ThumbnailParams struct {
	Text            string
	Width           int
	Height          int
	BackgroundColor string
	TextColor       string
	Style           string // modern, gradient, minimal, bold
}

const (
	defaultThumbnailWidth  = 1280
	defaultThumbnailHeight = 720
	defaultThumbnailBg     = "#FF6B6B"
	defaultThumbnailFg     = "#FFFFFF"
)

// GenerateThumbnail renders a text-overlay thumbnail and writes it as PNG.
func (s *Store) GenerateThumbnail(p ThumbnailParams) (map[string]any, error) {
	if p.Width <= 0 {
		p.Width = defaultThumbnailWidth
	}
	if p.Height <= 0 {
		p.Height = defaultThumbnailHeight
	}
	if p.Style == "" {
		p.Style = "modern"
	}
	if p.Width > 8192 || p.Height > 8192 {
		return nil, tool.NewToolError("generate_thumbnail",
			fmt.Sprintf("dimensions %dx%d exceed the 8192px limit", p.Width, p.Height), tool.CodeGeneration)
	}

	bg := ParseColor(p.BackgroundColor, ParseColor(defaultThumbnailBg, color.RGBA{0xFF, 0x6B, 0x6B, 0xFF}))
	fg := ParseColor(p.TextColor, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})

	dc := gg.NewContext(p.Width, p.Height)
	dc.SetColor(bg)
	dc.Clear()

	switch p.Style {
	case "gradient":
		drawVerticalGradient(dc, bg, p.Width, p.Height)
	case "bold":
		// Inset border drawn in the text color.
		const border = 20
		dc.SetColor(fg)
		dc.SetLineWidth(border)
		dc.DrawRectangle(border, border, float64(p.Width-2*border), float64(p.Height-2*border))
		dc.Stroke()
	case "minimal":
		dc.SetColor(color.White)
		dc.Clear()
	}

	// Font scales with the canvas and shrinks for longer text.
	size := min(p.Width, p.Height)/10 - 2*len(p.Text)
	if size < 30 {
		size = 30
	}
	dc.SetFontFace(FontFace(float64(size)))

	cx := float64(p.Width) / 2
	cy := float64(p.Height) / 2
	if p.Style != "minimal" {
		// Drop shadow for readability.
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(p.Text, cx+5, cy+5, 0.5, 0.5)
	}
	dc.SetColor(fg)
	dc.DrawStringAnchored(p.Text, cx, cy, 0.5, 0.5)

	path, filename := s.artifactPath("thumbnail", "png")
	if err := dc.SavePNG(path); err != nil {
		return nil, tool.NewToolError("generate_thumbnail",
			fmt.Sprintf("failed to generate thumbnail: %v", err), tool.CodeGeneration)
	}

	s.logger.Debug("media.thumbnail.written", "path", path, "style", p.Style)

	return map[string]any{
		"output_path": path,
		"filename":    filename,
		"dimensions":  []int{p.Width, p.Height},
		"style":       p.Style,
	}, nil
}

// drawVerticalGradient darkens the base color line by line towards the bottom.
func drawVerticalGradient(dc *gg.Context, base color.RGBA, width, height int) {
	for y := 0; y < height; y++ {
		shade := y * 255 / height / 2
		r := maxByte(int(base.R) - shade)
		g := maxByte(int(base.G) - shade)
		b := maxByte(int(base.B) - shade)
		dc.SetRGB255(r, g, b)
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

func maxByte(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// NewThumbnailTool exposes thumbnail rendering as a registry tool.
func NewThumbnailTool(store *Store) tool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The text to display on the thumbnail",
			},
			"width": map[string]any{
				"type":        "integer",
				"description": "Image width in pixels (default: 1280)",
			},
			"height": map[string]any{
				"type":        "integer",
				"description": "Image height in pixels (default: 720)",
			},
			"background_color": map[string]any{
				"type":        "string",
				"description": "Background color as a name or hex value (default: #FF6B6B)",
			},
			"text_color": map[string]any{
				"type":        "string",
				"description": "Text color as a name or hex value (default: #FFFFFF)",
			},
			"style": map[string]any{
				"type":        "string",
				"description": "Visual style (default: modern)",
				"enum":        []any{"modern", "gradient", "minimal", "bold"},
			},
		},
		"required": []string{"text"},
	}

	return tool.NewFunctionTool(
		"generate_thumbnail",
		"Generate a custom thumbnail image with text overlay",
		schema,
		func(_ context.Context, args map[string]any) (any, error) {
			return store.GenerateThumbnail(ThumbnailParams{
				Text:            stringArg(args, "text", ""),
				Width:           intArg(args, "width", defaultThumbnailWidth),
				Height:          intArg(args, "height", defaultThumbnailHeight),
				BackgroundColor: stringArg(args, "background_color", defaultThumbnailBg),
				TextColor:       stringArg(args, "text_color", defaultThumbnailFg),
				Style:           stringArg(args, "style", "modern"),
			})
		},
	)
}
