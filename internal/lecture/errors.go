package lecture

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/pkg/retry"
)

var (
	ErrEmptyAudio        = errors.New("audio file is empty, please record again")
	ErrAudioTooLarge     = errors.New("audio file is too large, please record a shorter lecture")
	ErrEmptyInput        = errors.New("transcript is empty")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrEmptyTranscript   = errors.New("received empty transcription, the audio might be too quiet or unclear")
)

// Error kinds used in logs and metric labels.
const (
	KindOK          = "ok"
	KindConfig      = "config"
	KindValidation  = "validation"
	KindRateLimit   = "rate_limit"
	KindRemote      = "remote"
	KindEmptyResult = "empty_result"
	KindCanceled    = "canceled"
)

// Kind classifies err for reporting.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, gemini.ErrMissingCredential):
		return KindConfig
	case errors.Is(err, ErrEmptyAudio),
		errors.Is(err, ErrAudioTooLarge),
		errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrInvalidDifficulty):
		return KindValidation
	case errors.Is(err, ErrEmptyTranscript):
		return KindEmptyResult
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case retry.IsRateLimited(err):
		return KindRateLimit
	default:
		return KindRemote
	}
}
