package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// instantTimer fires immediately and records every requested wait.
type instantTimer struct {
	c     chan time.Time
	waits []time.Duration
}

func newInstantTimer() *instantTimer {
	return &instantTimer{c: make(chan time.Time, 1)}
}

func (t *instantTimer) Start(d time.Duration) {
	t.waits = append(t.waits, d)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.c }

type statusErr struct{ code int }

func (e *statusErr) Error() string   { return "remote failure" }
func (e *statusErr) StatusCode() int { return e.code }

func TestDoExhaustsBudgetOnRateLimit(t *testing.T) {
	timer := newInstantTimer()
	rateLimited := errors.New("googleapi: Error 429: quota exceeded")

	calls := 0
	_, err := Do(context.Background(), DefaultPolicy(), func() (string, error) {
		calls++
		return "", rateLimited
	}, WithTimer(timer))

	if err != rateLimited {
		t.Fatalf("Do() error = %v, want the operation's error unmodified", err)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4 (1 + 3 retries)", calls)
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	if len(timer.waits) != len(want) {
		t.Fatalf("waits = %v, want %v", timer.waits, want)
	}
	for i := range want {
		if timer.waits[i] != want[i] {
			t.Errorf("wait[%d] = %v, want %v", i, timer.waits[i], want[i])
		}
	}
}

func TestDoNeverRetriesOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"plain error", errors.New("permission denied")},
		{"status 500", &statusErr{code: 500}},
		{"status 401", &statusErr{code: 401}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newInstantTimer()
			calls := 0
			_, err := Do(context.Background(), DefaultPolicy(), func() (int, error) {
				calls++
				return 0, tt.err
			}, WithTimer(timer))

			if err != tt.err {
				t.Errorf("Do() error = %v, want %v", err, tt.err)
			}
			if calls != 1 {
				t.Errorf("calls = %d, want 1", calls)
			}
			if len(timer.waits) != 0 {
				t.Errorf("waits = %v, want none", timer.waits)
			}
		})
	}
}

func TestDoRecoversAfterRateLimit(t *testing.T) {
	timer := newInstantTimer()
	calls := 0
	var notified []time.Duration

	got, err := Do(context.Background(), DefaultPolicy(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &statusErr{code: 429}
		}
		return "ok", nil
	}, WithTimer(timer), WithNotify(func(_ error, wait time.Duration) {
		notified = append(notified, wait)
	}))

	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Do() = %q, want %q", got, "ok")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(notified) != 2 || notified[0] != 2*time.Second || notified[1] != 4*time.Second {
		t.Errorf("notified = %v, want [2s 4s]", notified)
	}
}

func TestDoZeroRetries(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Policy{MaxRetries: 0, InitialDelay: time.Millisecond}, func() (int, error) {
		calls++
		return 0, &statusErr{code: 429}
	}, WithTimer(newInstantTimer()))

	if err == nil {
		t.Fatal("Do() should fail")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := Do(ctx, Policy{MaxRetries: 3, InitialDelay: time.Hour, Multiplier: 2}, func() (int, error) {
		calls++
		cancel()
		return 0, &statusErr{code: 429}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPolicyDelays(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   []time.Duration
	}{
		{"default", DefaultPolicy(), []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}},
		{"zero retries", Policy{MaxRetries: 0, InitialDelay: time.Second, Multiplier: 2}, []time.Duration{}},
		{"zero values defaulted", Policy{MaxRetries: 2}, []time.Duration{2 * time.Second, 4 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Delays()
			if len(got) != len(tt.want) {
				t.Fatalf("Delays() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Delays()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status code", &statusErr{code: 429}, true},
		{"wrapped status code", fmt.Errorf("generate: %w", &statusErr{code: 429}), true},
		{"message", errors.New("Error 429: Too Many Requests"), true},
		{"other status", &statusErr{code: 503}, false},
		{"other message", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimited(tt.err); got != tt.want {
				t.Errorf("IsRateLimited() = %v, want %v", got, tt.want)
			}
		})
	}
}
