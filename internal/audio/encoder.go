package audio

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	MIMEWebM = "audio/webm"
	MIMEMPEG = "audio/mpeg"
	MIMEWAV  = "audio/wav"
	MIMEOGG  = "audio/ogg"
	MIMEAAC  = "audio/aac"
)

// Capture is a finished recording as handed over by the recorder.
type Capture struct {
	Data []byte
	// Type is the media type reported by the recorder. It may be empty.
	Type string
}

// Size returns the number of audio bytes.
func (c Capture) Size() int { return len(c.Data) }

// Payload is the inline form sent to the model.
type Payload struct {
	// Data is raw base64 without any data-URI header.
	Data     string
	MIMEType string
}

// mediaTypes is checked in order; the first matching needle wins.
var mediaTypes = []struct {
	needles  []string
	mimeType string
}{
	{[]string{"webm"}, MIMEWebM},
	{[]string{"mp3", "mpeg"}, MIMEMPEG},
	{[]string{"wav"}, MIMEWAV},
	{[]string{"ogg"}, MIMEOGG},
	{[]string{"aac", "m4a"}, MIMEAAC},
}

// MediaType maps a reported type to one of the canonical audio types,
// falling back to audio/webm.
func MediaType(reported string) string {
	reported = strings.ToLower(reported)
	if reported == "" {
		return MIMEWebM
	}
	for _, mt := range mediaTypes {
		for _, needle := range mt.needles {
			if strings.Contains(reported, needle) {
				return mt.mimeType
			}
		}
	}
	return MIMEWebM
}

// Encode base64-encodes the capture and resolves its media type.
func Encode(c Capture) Payload {
	return Payload{
		Data:     base64.StdEncoding.EncodeToString(c.Data),
		MIMEType: MediaType(c.Type),
	}
}

// StripDataURI drops a "data:<type>;base64," header if present.
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[i+1:]
	}
	return s
}

// FromDataURI decodes a "data:<type>;base64,<payload>" string, the form
// browser recorders hand over, into a Capture.
func FromDataURI(uri string) (Capture, error) {
	header, _, found := strings.Cut(uri, ",")
	if !strings.HasPrefix(uri, "data:") || !found {
		return Capture{}, fmt.Errorf("decode data uri: missing data header")
	}

	data, err := base64.StdEncoding.DecodeString(StripDataURI(uri))
	if err != nil {
		return Capture{}, fmt.Errorf("decode data uri: %w", err)
	}

	mediaType := strings.TrimPrefix(header, "data:")
	mediaType, _, _ = strings.Cut(mediaType, ";")
	return Capture{Data: data, Type: mediaType}, nil
}
