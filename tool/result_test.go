package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_SuccessJSON(t *testing.T) {
	res := Success(map[string]any{
		"output_path": "content_outputs/thumbnail_1a2b3c4d.png",
		"dimensions":  []int{1280, 720},
	})

	raw := res.JSON()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "success", decoded["status"])
	// Payload fields are flattened next to the envelope keys.
	assert.Equal(t, "content_outputs/thumbnail_1a2b3c4d.png", decoded["output_path"])
	assert.NotContains(t, decoded, "code")
}

func TestResult_ErrorJSON(t *testing.T) {
	res := Error(CodeMissingDependency, "ffmpeg is not installed. Install it with: apt install ffmpeg")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.JSON()), &decoded))
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, CodeMissingDependency, decoded["code"])
	assert.Contains(t, decoded["message"], "ffmpeg")
}

func TestResult_RoundTrip(t *testing.T) {
	original := Success(map[string]any{"filename": "qr_deadbeef.png", "data_type": "URL"})

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(original.JSON()), &decoded))
	assert.False(t, decoded.IsError())
	assert.Equal(t, "qr_deadbeef.png", decoded.Fields["filename"])
	assert.Equal(t, "URL", decoded.Fields["data_type"])
}

func TestResult_OutputPath(t *testing.T) {
	res := Success(map[string]any{"output_path": "content_outputs/speech_00000001.wav"})
	assert.Equal(t, "content_outputs/speech_00000001.wav", res.OutputPath())

	assert.Empty(t, Error(CodeGeneration, "nope").OutputPath())
}
