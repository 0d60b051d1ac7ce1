package imaging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"mediacore/pkg/logger"
)

// FrameExtractor pulls a still frame out of raw video bytes.
type FrameExtractor interface {
	// ExtractPoster returns a JPEG of the first decodable frame. ext is the
	// original file extension, used only to hint the demuxer.
	ExtractPoster(ctx context.Context, data []byte, ext string) ([]byte, error)
}

// FFmpegExtractor shells out to the ffmpeg binary through temp files. The
// binary must be present in the runtime; NewFFmpegExtractor checks for it
// once and returns nil when it is missing so video uploads degrade to
// verbatim storage instead of failing.
type FFmpegExtractor struct {
	path    string
	timeout time.Duration
}

func NewFFmpegExtractor(cfg *Config) *FFmpegExtractor {
	binary := cfg.FFmpegPath
	if binary == "" {
		binary = "ffmpeg"
	}

	if _, err := exec.LookPath(binary); err != nil {
		logger.Warn("ffmpeg not found, video poster generation disabled", "path", binary)

		return nil
	}

	timeout := time.Duration(cfg.FFmpegTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &FFmpegExtractor{
		path:    binary,
		timeout: timeout,
	}
}

func (f *FFmpegExtractor) ExtractPoster(ctx context.Context, data []byte, ext string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "poster-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if ext == "" || ext == "." {
		ext = ".mp4"
	}
	in := filepath.Join(dir, "input"+ext)
	out := filepath.Join(dir, "poster.jpg")

	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	// -frames:v 1 stops at the first decodable frame.
	cmd := exec.CommandContext(ctx, f.path,
		"-hide_banner", "-loglevel", "error",
		"-i", in,
		"-frames:v", "1",
		"-q:v", "3",
		"-y", out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, output)
	}

	poster, err := os.ReadFile(out)
	if err != nil {
		return nil, errors.New("ffmpeg produced no poster frame")
	}

	return poster, nil
}
