package media

import (
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// fontPaths are probed in order for a usable bold TrueType face.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

var (
	embeddedOnce sync.Once
	embeddedFont *truetype.Font
)

// FontFace returns a font face at the given point size. It probes the known
// system font locations and falls back to the embedded Go Bold face, so a
// missing system font never fails a generation call.
func FontFace(points float64) font.Face {
	for _, path := range fontPaths {
		if face, err := gg.LoadFontFace(path, points); err == nil {
			return face
		}
	}
	embeddedOnce.Do(func() {
		// gobold.TTF is compiled in; a parse failure would be a build defect.
		embeddedFont, _ = truetype.Parse(gobold.TTF)
	})
	return truetype.NewFace(embeddedFont, &truetype.Options{Size: points})
}
