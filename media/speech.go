package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hupe1980/contentstudio/tool"
)

// SpeechParams are the inputs for text-to-speech synthesis.
type SpeechParams struct {
	Text       string
	VoiceSpeed int // words per minute
}

// speechEngines lists the system synthesizers probed in preference order.
var speechEngines = []string{"espeak-ng", "espeak", "say"}

// findSpeechEngine returns the first available synthesizer binary, or "".
func findSpeechEngine() string {
	for _, engine := range speechEngines {
		if _, err := lookPath(engine); err == nil {
			return engine
		}
	}
	return ""
}

// GenerateSpeech synthesizes spoken audio from text using a system
// speech engine (espeak-ng, espeak, or say). Engine availability is
// checked per call so the tool degrades independently of the rest.
func (s *Store) GenerateSpeech(ctx context.Context, p SpeechParams) (map[string]any, error) {
	engine := findSpeechEngine()
	if engine == "" {
		return nil, tool.MissingDependencyError("generate_speech", "a speech engine (espeak-ng, espeak, or say)",
			"Install one with: apt install espeak-ng (Debian/Ubuntu) or brew install espeak (macOS)")
	}

	if strings.TrimSpace(p.Text) == "" {
		return nil, tool.NewToolError("generate_speech", "text must not be empty", tool.CodeGeneration)
	}

	speed := clampInt(p.VoiceSpeed, 100, 300)

	ext := "wav"
	if engine == "say" {
		ext = "aiff"
	}
	path, filename := s.artifactPath("speech", ext)

	var cmd *exec.Cmd
	switch engine {
	case "say":
		// say expresses rate directly in words per minute.
		cmd = exec.CommandContext(ctx, engine, "-r", strconv.Itoa(speed), "-o", path, p.Text)
	default:
		cmd = exec.CommandContext(ctx, engine, "-s", strconv.Itoa(speed), "-w", path, p.Text)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, tool.NewToolError("generate_speech",
			fmt.Sprintf("failed to generate speech: %v: %s", err, strings.TrimSpace(string(out))), tool.CodeGeneration)
	}

	words := len(strings.Fields(p.Text))
	estimated := float64(words) / float64(speed) * 60.0
	s.logger.Debug("media.speech.written", "path", path, "engine", engine, "words", words)

	return map[string]any{
		"output_path":        path,
		"filename":           filename,
		"word_count":         words,
		"estimated_duration": fmt.Sprintf("%.1fs", estimated),
		"voice_speed":        speed,
		"format":             strings.ToUpper(ext),
		"engine":             engine,
	}, nil
}

// NewSpeechTool exposes text-to-speech synthesis as a registry tool.
func NewSpeechTool(store *Store) tool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The text to convert to speech",
			},
			"voice_speed": map[string]any{
				"type":        "integer",
				"description": "Speaking rate in words per minute, 100-300 (default: 150)",
			},
		},
		"required": []string{"text"},
	}

	return tool.NewFunctionTool(
		"generate_speech",
		"Convert text to spoken audio using a local speech engine",
		schema,
		func(ctx context.Context, args map[string]any) (any, error) {
			return store.GenerateSpeech(ctx, SpeechParams{
				Text:       stringArg(args, "text", ""),
				VoiceSpeed: intArg(args, "voice_speed", 150),
			})
		},
	)
}
