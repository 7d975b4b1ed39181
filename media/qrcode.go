package media

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hupe1980/contentstudio/tool"
	qrcode "github.com/skip2/go-qrcode"
)

// QRCodeParams are the inputs for QR code generation.
type QRCodeParams struct {
	Data            string
	Size            int    // pixels per module, clamped to 1..50
	Border          int    // quiet zone width in modules, minimum 1
	FillColor       string // module color, name or hex
	BackColor       string // background color, name or hex
	ErrorCorrection string // L, M, Q, H
}

// recoveryLevels maps the exposed correction names to library levels.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,     // ~7% correction
	"M": qrcode.Medium,  // ~15% correction
	"Q": qrcode.High,    // ~25% correction
	"H": qrcode.Highest, // ~30% correction
}

// GenerateQRCode encodes arbitrary text or URL payloads into a PNG QR code.
func (s *Store) GenerateQRCode(p QRCodeParams) (map[string]any, error) {
	if p.Data == "" {
		return nil, tool.NewToolError("generate_qr_code", "data must not be empty", tool.CodeGeneration)
	}

	level, ok := recoveryLevels[strings.ToUpper(p.ErrorCorrection)]
	if !ok {
		level = qrcode.Medium
	}

	q, err := qrcode.New(p.Data, level)
	if err != nil {
		return nil, tool.NewToolError("generate_qr_code",
			fmt.Sprintf("failed to generate QR code: %v", err), tool.CodeGeneration)
	}

	fill := ParseColor(p.FillColor, color.RGBA{0x00, 0x00, 0x00, 0xFF})
	back := ParseColor(p.BackColor, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})

	boxSize := clampInt(p.Size, 1, 50)
	if p.Size == 0 {
		boxSize = 10
	}
	border := p.Border
	if border < 1 {
		border = 1
	}

	// The library only draws a fixed quiet zone, so the modules are
	// rendered onto a canvas padded to the requested border width.
	q.DisableBorder = true
	bitmap := q.Bitmap()
	dim := (len(bitmap) + 2*border) * boxSize

	dc := gg.NewContext(dim, dim)
	dc.SetColor(back)
	dc.Clear()
	dc.SetColor(fill)
	for y, row := range bitmap {
		for x, set := range row {
			if set {
				dc.DrawRectangle(
					float64((x+border)*boxSize),
					float64((y+border)*boxSize),
					float64(boxSize),
					float64(boxSize),
				)
			}
		}
	}
	dc.Fill()

	path, filename := s.artifactPath("qrcode", "png")
	if err := dc.SavePNG(path); err != nil {
		return nil, tool.NewToolError("generate_qr_code",
			fmt.Sprintf("failed to write QR code: %v", err), tool.CodeGeneration)
	}

	s.logger.Debug("media.qrcode.written", "path", path, "data_length", len(p.Data))

	dataType := "Text"
	if strings.HasPrefix(p.Data, "http://") || strings.HasPrefix(p.Data, "https://") {
		dataType = "URL"
	}

	return map[string]any{
		"output_path":      path,
		"filename":         filename,
		"data_type":        dataType,
		"data_length":      len(p.Data),
		"error_correction": strings.ToUpper(orDefault(p.ErrorCorrection, "M")),
		"colors":           fmt.Sprintf("%s on %s", orDefault(p.FillColor, "black"), orDefault(p.BackColor, "white")),
	}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// NewQRCodeTool exposes QR code generation as a registry tool.
func NewQRCodeTool(store *Store) tool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"data": map[string]any{
				"type":        "string",
				"description": "The data to encode (URL, text, contact info, etc.)",
			},
			"size": map[string]any{
				"type":        "integer",
				"description": "Size of each QR code box in pixels (default: 10, range: 1-50)",
			},
			"border": map[string]any{
				"type":        "integer",
				"description": "Quiet zone width in modules, minimum 1 (default: 2)",
			},
			"fill_color": map[string]any{
				"type":        "string",
				"description": "QR code color as a name or hex value (default: black)",
			},
			"back_color": map[string]any{
				"type":        "string",
				"description": "Background color as a name or hex value (default: white)",
			},
			"error_correction": map[string]any{
				"type":        "string",
				"description": "Error correction level (default: M)",
				"enum":        []any{"L", "M", "Q", "H"},
			},
		},
		"required": []string{"data"},
	}

	return tool.NewFunctionTool(
		"generate_qr_code",
		"Generate a customized QR code for a URL or text payload",
		schema,
		func(_ context.Context, args map[string]any) (any, error) {
			return store.GenerateQRCode(QRCodeParams{
				Data:            stringArg(args, "data", ""),
				Size:            intArg(args, "size", 10),
				Border:          intArg(args, "border", 2),
				FillColor:       stringArg(args, "fill_color", "black"),
				BackColor:       stringArg(args, "back_color", "white"),
				ErrorCorrection: stringArg(args, "error_correction", "M"),
			})
		},
	)
}
