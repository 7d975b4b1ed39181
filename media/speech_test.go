package media

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/contentstudio/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSpeech_MissingEngine(t *testing.T) {
	stubLookPath(t, func(string) (string, error) {
		return "", errors.New("not found")
	})
	s := newTestStore(t)

	_, err := s.GenerateSpeech(context.Background(), SpeechParams{Text: "hello"})
	require.Error(t, err)

	toolErr, ok := err.(*tool.ToolError)
	require.True(t, ok)
	assert.Equal(t, tool.CodeMissingDependency, toolErr.Code)
	assert.Contains(t, toolErr.Message, "speech engine")
	assert.Contains(t, toolErr.Message, "espeak-ng")
}

func TestGenerateSpeech_EmptyText(t *testing.T) {
	stubLookPath(t, func(string) (string, error) {
		return "/usr/bin/espeak-ng", nil
	})
	s := newTestStore(t)

	_, err := s.GenerateSpeech(context.Background(), SpeechParams{Text: "   "})
	require.Error(t, err)

	toolErr, ok := err.(*tool.ToolError)
	require.True(t, ok)
	assert.Equal(t, tool.CodeGeneration, toolErr.Code)
}

func TestFindSpeechEngine_PreferenceOrder(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		if name == "espeak" || name == "say" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	})

	assert.Equal(t, "espeak", findSpeechEngine())
}

func TestGenerateSpeech_WithRealEngine(t *testing.T) {
	engine := findSpeechEngine()
	if engine == "" {
		t.Skip("no speech engine installed")
	}
	s := newTestStore(t)

	payload, err := s.GenerateSpeech(context.Background(), SpeechParams{
		Text:       "testing one two three",
		VoiceSpeed: 500, // clamped to 300
	})
	require.NoError(t, err)

	assert.Equal(t, 4, payload["word_count"])
	assert.Equal(t, 300, payload["voice_speed"])
	assert.Equal(t, engine, payload["engine"])
	assert.FileExists(t, payload["output_path"].(string))
}
