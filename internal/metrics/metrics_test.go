package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("transcribe", "ok", time.Second)
	m.ObserveRetry("transcribe")
	m.ObserveAudio(1024)
	m.ObserveRecording("ok")
	m.ObserveQuiz("easy", 3)
}

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("summary", "ok", 2*time.Second)
	m.ObserveRequest("summary", "rate_limit", time.Second)
	m.ObserveRetry("summary")
	m.ObserveRetry("summary")
	m.ObserveRecording("ok")
	m.ObserveQuiz("hard", 3)
	m.ObserveQuiz("hard", 0)

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("summary", "ok")); got != 1 {
		t.Errorf("requests ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Retries.WithLabelValues("summary")); got != 2 {
		t.Errorf("retries = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RecordingsProcessed.WithLabelValues("ok")); got != 1 {
		t.Errorf("recordings = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.QuizQuestions.WithLabelValues("hard")); got != 3 {
		t.Errorf("quiz questions = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.EmptyQuizzes.WithLabelValues("hard")); got != 1 {
		t.Errorf("empty quizzes = %v, want 1", got)
	}
}

func TestNewOnSeparateRegistries(t *testing.T) {
	// Registering twice on different registries must not panic.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
