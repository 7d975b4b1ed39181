package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSocialCard_PlatformDimensions(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		platform string
		width    int
		height   int
	}{
		{"twitter", 1200, 675},
		{"facebook", 1200, 630},
		{"linkedin", 1200, 627},
		{"instagram", 1080, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			payload, err := s.GenerateSocialCard(SocialCardParams{
				Title:    "Launch Week",
				Platform: tt.platform,
			})
			require.NoError(t, err)

			assert.Equal(t, []int{tt.width, tt.height}, payload["dimensions"])
			assert.Equal(t, tt.platform, payload["platform"])

			img := decodePNG(t, payload["output_path"].(string))
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestGenerateSocialCard_UnknownPlatformFallsBack(t *testing.T) {
	s := newTestStore(t)

	payload, err := s.GenerateSocialCard(SocialCardParams{
		Title:    "Somewhere Else",
		Platform: "myspace",
	})
	require.NoError(t, err)

	// Unknown platforms keep their name but get the generic card size.
	assert.Equal(t, "myspace", payload["platform"])
	assert.Equal(t, []int{1200, 630}, payload["dimensions"])
	assert.Regexp(t, `^social_card_myspace_[0-9a-f]{8}\.png$`, payload["filename"])
}

func TestGenerateSocialCard_UnknownThemeUsesDarkPalette(t *testing.T) {
	s := newTestStore(t)

	payload, err := s.GenerateSocialCard(SocialCardParams{
		Title: "Theme Check",
		Theme: "neon",
	})
	require.NoError(t, err)

	img := decodePNG(t, payload["output_path"].(string))
	r, g, b, _ := img.At(img.Bounds().Dx()-2, 2).RGBA()
	dark := cardThemes["dark"].bg
	assert.Equal(t, uint32(dark.R)*0x101, r)
	assert.Equal(t, uint32(dark.G)*0x101, g)
	assert.Equal(t, uint32(dark.B)*0x101, b)
}

func TestGenerateSocialCard_MissingBackgroundImageIsIgnored(t *testing.T) {
	s := newTestStore(t)

	payload, err := s.GenerateSocialCard(SocialCardParams{
		Title:     "No Background",
		ImagePath: "does/not/exist.png",
	})
	require.NoError(t, err)
	assert.FileExists(t, payload["output_path"].(string))
}

func TestGenerateSocialCard_WithSubtitle(t *testing.T) {
	s := newTestStore(t)

	payload, err := s.GenerateSocialCard(SocialCardParams{
		Title:    "Release Notes",
		Subtitle: "Everything new in v2",
		Platform: "linkedin",
		Theme:    "light",
	})
	require.NoError(t, err)
	assert.Equal(t, "light", payload["theme"])
}
