package audio

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tcolgate/mp3"
)

var extTypes = map[string]string{
	".webm": MIMEWebM,
	".weba": MIMEWebM,
	".mp3":  MIMEMPEG,
	".mpga": MIMEMPEG,
	".wav":  MIMEWAV,
	".ogg":  MIMEOGG,
	".oga":  MIMEOGG,
	".opus": MIMEOGG,
	".aac":  MIMEAAC,
	".m4a":  "audio/m4a",
}

// IsAudioFile reports whether path has a recognised audio extension.
func IsAudioFile(path string) bool {
	_, ok := extTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// TypeForPath guesses the reported media type of a file from its extension.
func TypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extTypes[ext]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

// FromFile reads a recording from disk.
func FromFile(path string) (Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Capture{}, fmt.Errorf("read audio: %w", err)
	}
	return Capture{Data: data, Type: TypeForPath(path)}, nil
}

// Probe returns the playback duration of MPEG captures by walking their
// frames. Other formats, and undecodable data, report zero.
func Probe(c Capture) time.Duration {
	if MediaType(c.Type) != MIMEMPEG || len(c.Data) == 0 {
		return 0
	}

	d := mp3.NewDecoder(bytes.NewReader(c.Data))
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
	)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return total
		}
		total += frame.Duration()
	}
	return total
}

var videoExts = map[string]bool{
	".mp4": true,
	".mov": true,
	".mkv": true,
	".avi": true,
	".m4v": true,
}

// IsVideoFile reports whether path looks like a lecture video whose audio
// track has to be extracted first.
func IsVideoFile(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}
