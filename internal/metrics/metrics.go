package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the lecture assistant.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Model request metrics
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Retries         *prometheus.CounterVec

	// Pipeline metrics
	RecordingsProcessed *prometheus.CounterVec
	AudioBytes          prometheus.Histogram

	// Quiz metrics
	QuizQuestions *prometheus.CounterVec
	EmptyQuizzes  *prometheus.CounterVec
}

// New creates all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_model_requests_total",
			Help: "Total number of model operations by outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lecture_model_request_duration_seconds",
			Help:    "Duration of model operations including retries",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"operation"}),
		Retries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_model_retries_total",
			Help: "Total number of retries scheduled after a rate limit",
		}, []string{"operation"}),

		RecordingsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_recordings_processed_total",
			Help: "Total number of recordings handled by the pipeline by outcome",
		}, []string{"outcome"}),
		AudioBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lecture_audio_bytes",
			Help:    "Size of submitted audio payloads",
			Buckets: prometheus.ExponentialBuckets(64*1024, 2, 10), // 64KB to 32MB
		}),

		QuizQuestions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_quiz_questions_total",
			Help: "Total number of quiz questions generated by difficulty",
		}, []string{"difficulty"}),
		EmptyQuizzes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_quiz_empty_total",
			Help: "Total number of quiz requests that produced no usable questions",
		}, []string{"difficulty"}),
	}
}

func (m *Metrics) ObserveRequest(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveRetry(operation string) {
	if m == nil {
		return
	}
	m.Retries.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveAudio(size int) {
	if m == nil {
		return
	}
	m.AudioBytes.Observe(float64(size))
}

func (m *Metrics) ObserveRecording(outcome string) {
	if m == nil {
		return
	}
	m.RecordingsProcessed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveQuiz(difficulty string, questions int) {
	if m == nil {
		return
	}
	if questions == 0 {
		m.EmptyQuizzes.WithLabelValues(difficulty).Inc()
		return
	}
	m.QuizQuestions.WithLabelValues(difficulty).Add(float64(questions))
}
