package media

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")
	s, err := NewStore(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
	assert.DirExists(t, dir)
}

func TestArtifactPath_Format(t *testing.T) {
	s := newTestStore(t)

	path, filename := s.artifactPath("thumbnail", "png")
	assert.Equal(t, filepath.Join(s.Dir(), filename), path)
	assert.Regexp(t, regexp.MustCompile(`^thumbnail_[0-9a-f]{8}\.png$`), filename)
}

func TestArtifactPath_Unique(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		_, filename := s.artifactPath("qrcode", "png")
		assert.False(t, seen[filename], "duplicate filename %s", filename)
		seen[filename] = true
	}
}
