package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hupe1980/contentstudio/tool"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// lookPath indirection allows tests to simulate a missing binary.
var lookPath = exec.LookPath

// MontageParams are the inputs for slideshow video assembly.
type MontageParams struct {
	ImagePaths       []string
	DurationPerImage float64 // seconds each image is shown
	OutputFPS        int
}

// GenerateMontage concatenates still images into an H.264 slideshow video.
// The encoder is the ffmpeg binary; its absence is reported as a
// missing-dependency result at call time and never affects other tools.
func (s *Store) GenerateMontage(ctx context.Context, p MontageParams) (map[string]any, error) {
	if _, err := lookPath("ffmpeg"); err != nil {
		return nil, tool.MissingDependencyError("create_video_montage", "ffmpeg",
			"Install it with: apt install ffmpeg (Debian/Ubuntu) or brew install ffmpeg (macOS)")
	}

	if len(p.ImagePaths) < 2 {
		return nil, tool.NewToolError("create_video_montage",
			"need at least 2 images to create a video montage", tool.CodeGeneration)
	}
	for _, img := range p.ImagePaths {
		if _, err := os.Stat(img); err != nil {
			return nil, tool.NewToolError("create_video_montage",
				fmt.Sprintf("image not found: %s", img), tool.CodeGeneration)
		}
	}

	if p.DurationPerImage <= 0 {
		p.DurationPerImage = 3.0
	}
	if p.OutputFPS <= 0 {
		p.OutputFPS = 24
	}

	listPath, err := writeConcatList(p.ImagePaths, p.DurationPerImage)
	if err != nil {
		return nil, tool.NewToolError("create_video_montage",
			fmt.Sprintf("failed to prepare montage inputs: %v", err), tool.CodeGeneration)
	}
	defer os.Remove(listPath)

	path, filename := s.artifactPath("montage", "mp4")
	err = ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": 0}).
		Output(path, ffmpeg.KwArgs{
			"r":       p.OutputFPS,
			"vcodec":  "libx264",
			"pix_fmt": "yuv420p",
			// libx264 requires even dimensions.
			"vf": "scale=trunc(iw/2)*2:trunc(ih/2)*2",
			"an": "",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		os.Remove(path)
		return nil, tool.NewToolError("create_video_montage",
			fmt.Sprintf("failed to create video montage: %v", err), tool.CodeGeneration)
	}

	totalDuration := float64(len(p.ImagePaths)) * p.DurationPerImage
	s.logger.Debug("media.montage.written", "path", path, "images", len(p.ImagePaths))

	return map[string]any{
		"output_path":    path,
		"filename":       filename,
		"num_images":     len(p.ImagePaths),
		"total_duration": fmt.Sprintf("%.1fs", totalDuration),
		"fps":            p.OutputFPS,
	}, nil
}

// writeConcatList writes an ffmpeg concat-demuxer list file. The final image
// is repeated without a duration so the demuxer holds it to the end.
func writeConcatList(images []string, duration float64) (string, error) {
	f, err := os.CreateTemp("", "montage_*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, img := range images {
		abs, err := filepath.Abs(img)
		if err != nil {
			abs = img
		}
		fmt.Fprintf(&b, "file '%s'\nduration %.3f\n", abs, duration)
	}
	if last, err := filepath.Abs(images[len(images)-1]); err == nil {
		fmt.Fprintf(&b, "file '%s'\n", last)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// NewMontageTool exposes slideshow video assembly as a registry tool.
func NewMontageTool(store *Store) tool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"image_paths": map[string]any{
				"type":        "array",
				"description": "Paths of the images to include, in order (minimum 2)",
				"items":       map[string]any{"type": "string"},
			},
			"duration_per_image": map[string]any{
				"type":        "number",
				"description": "Seconds each image is displayed (default: 3.0)",
			},
			"output_fps": map[string]any{
				"type":        "integer",
				"description": "Frames per second of the output video (default: 24)",
			},
		},
		"required": []string{"image_paths"},
	}

	return tool.NewFunctionTool(
		"create_video_montage",
		"Create a slideshow video montage from a list of images",
		schema,
		func(ctx context.Context, args map[string]any) (any, error) {
			return store.GenerateMontage(ctx, MontageParams{
				ImagePaths:       stringSliceArg(args, "image_paths"),
				DurationPerImage: floatArg(args, "duration_per_image", 3.0),
				OutputFPS:        intArg(args, "output_fps", 24),
			})
		},
	)
}
