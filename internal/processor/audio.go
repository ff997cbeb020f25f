package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractAudio pulls the audio track out of a lecture video as mono MP3.
// A low bitrate keeps hour-long lectures under the inline upload limit.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(p.cfg.Paths.Temp, base+"_audio.mp3")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// FFmpeg arguments for audio extraction
	// -vn: No video (audio only)
	// -ac 1: Mono channel (speech only)
	// -ar 16000: 16kHz is enough for speech
	// -b:a: Target bitrate
	// -y: Overwrite output file if exists
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libmp3lame",
		"-b:a", p.cfg.FFmpeg.AudioBitrate,
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
