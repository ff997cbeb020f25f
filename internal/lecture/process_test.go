package lecture

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"github.com/nguyentantai21042004/lecture-assistant/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestProcessLectureAudio(t *testing.T) {
	fake := gemini.NewFake(func(call int, parts []gemini.Part) (string, error) {
		switch call {
		case 1:
			return "Mitochondria produce ATP.", nil
		default:
			return "### Cell Energy\n**ATP** comes from mitochondria.", nil
		}
	})
	a := newTestAssistant(fake)

	got, err := a.ProcessLectureAudio(context.Background(), audio.Capture{Data: []byte("webm"), Type: "audio/webm"})
	if err != nil {
		t.Fatalf("ProcessLectureAudio() error = %v", err)
	}
	if got.Transcript != "Mitochondria produce ATP." {
		t.Errorf("Transcript = %q", got.Transcript)
	}
	if got.Explanation != "Cell Energy\nATP comes from mitochondria." {
		t.Errorf("Explanation = %q", got.Explanation)
	}
	if fake.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", fake.CallCount())
	}
}

func TestProcessLectureAudioPropagatesFailures(t *testing.T) {
	t.Run("transcription fails", func(t *testing.T) {
		fake := gemini.NewFakeText("  ")
		a := newTestAssistant(fake)

		_, err := a.ProcessLectureAudio(context.Background(), audio.Capture{Data: []byte("x")})
		if !errors.Is(err, ErrEmptyTranscript) {
			t.Errorf("error = %v, want ErrEmptyTranscript", err)
		}
		if fake.CallCount() != 1 {
			t.Errorf("calls = %d, want 1 (no summary request)", fake.CallCount())
		}
	})

	t.Run("summary fails", func(t *testing.T) {
		fake := gemini.NewFake(func(call int, _ []gemini.Part) (string, error) {
			if call == 1 {
				return "transcript", nil
			}
			return "", errBadRequest
		})
		a := newTestAssistant(fake)

		_, err := a.ProcessLectureAudio(context.Background(), audio.Capture{Data: []byte("x")})
		if !errors.Is(err, errBadRequest) {
			t.Errorf("error = %v, want %v", err, errBadRequest)
		}
	})
}

func TestRequestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	calls := 0
	fake := gemini.NewFake(func(int, []gemini.Part) (string, error) {
		calls++
		if calls == 1 {
			return "", errRateLimited
		}
		return "summary", nil
	})
	cfg := testConfig()
	a := New(cfg, fake, logger.Nop(), m)

	if _, err := a.GenerateSummary(context.Background(), "text"); err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if got := testutil.ToFloat64(m.Retries.WithLabelValues("summary")); got != 1 {
		t.Errorf("retries = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("summary", KindOK)); got != 1 {
		t.Errorf("requests ok = %v, want 1", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, KindOK},
		{"credential", fmt.Errorf("transcribe audio: %w", gemini.ErrMissingCredential), KindConfig},
		{"empty audio", ErrEmptyAudio, KindValidation},
		{"too large", fmt.Errorf("%w (max 20MB)", ErrAudioTooLarge), KindValidation},
		{"difficulty", ErrInvalidDifficulty, KindValidation},
		{"empty transcript", ErrEmptyTranscript, KindEmptyResult},
		{"canceled", context.Canceled, KindCanceled},
		{"rate limit", errRateLimited, KindRateLimit},
		{"remote", errBadRequest, KindRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFallsBackToMediumDifficulty(t *testing.T) {
	cfg := &config.Config{Quiz: config.QuizConfig{DefaultDifficulty: "weird"}}
	cfg.ApplyDefaults()
	a := New(cfg, gemini.NewFakeText("[]"), logger.Nop(), nil).(*implAssistant)
	if a.defaultDifficulty != Medium {
		t.Errorf("defaultDifficulty = %q, want medium", a.defaultDifficulty)
	}
}
