package media

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{0x12, 0x34, 0x56, 0xFF}

	tests := []struct {
		name  string
		input string
		want  color.RGBA
	}{
		{"hex", "#FF6B6B", color.RGBA{0xFF, 0x6B, 0x6B, 0xFF}},
		{"hex lowercase", "#ff6b6b", color.RGBA{0xFF, 0x6B, 0x6B, 0xFF}},
		{"short hex", "#F00", color.RGBA{0xFF, 0x00, 0x00, 0xFF}},
		{"named", "white", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"named mixed case", "Black", color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"invalid falls back", "not-a-color", fallback},
		{"empty falls back", "", fallback},
		{"malformed hex falls back", "#GGGGGG", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.input, fallback))
		})
	}
}
