// Package media implements the content generators behind the tool registry:
// thumbnail rendering, QR codes, social cards, video montages and
// text-to-speech. Each generator is a thin parameter-translation step over
// one external rendering/encoding routine, writing its artifact into a
// single flat output directory under a unique name.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hupe1980/contentstudio/logging"
)

// DefaultDir is the default artifact output directory.
const DefaultDir = "content_outputs"

// Store places generated artifacts into one flat directory. Files are
// written once under unique names and never reopened for mutation, so no
// locking discipline is required.
type Store struct {
	dir    string
	logger logging.Logger
}

// NewStore creates the output directory if absent and returns a store
// rooted there. A nil logger disables logging.
func NewStore(dir string, logger logging.Logger) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string { return s.dir }

// artifactPath reserves a unique {kind}_{8-hex}.{ext} name under the output
// directory and returns (full path, bare filename).
func (s *Store) artifactPath(kind, ext string) (string, string) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	filename := fmt.Sprintf("%s_%s.%s", kind, id, ext)
	return filepath.Join(s.dir, filename), filename
}
