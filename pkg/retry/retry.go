package retry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 2 * time.Second
	DefaultMultiplier   = 2.0
)

// Policy describes a deterministic exponential backoff with a hard cap on
// the number of attempts after the first one.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	Multiplier   float64
}

// DefaultPolicy retries three times after 2s, 4s and 8s.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
		Multiplier:   DefaultMultiplier,
	}
}

func (p Policy) normalized() Policy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultInitialDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = DefaultMultiplier
	}
	return p
}

// Delays returns the wait before each retry, in order.
func (p Policy) Delays() []time.Duration {
	p = p.normalized()
	delays := make([]time.Duration, 0, p.MaxRetries)
	d := float64(p.InitialDelay)
	for range p.MaxRetries {
		delays = append(delays, time.Duration(d))
		d *= p.Multiplier
	}
	return delays
}

func (p Policy) backOff() backoff.BackOff {
	p = p.normalized()
	if p.MaxRetries == 0 {
		// WithMaxRetries treats zero as unlimited.
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialDelay
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	if delays := p.Delays(); len(delays) > 0 {
		b.MaxInterval = delays[len(delays)-1]
	}
	return backoff.WithMaxRetries(b, uint64(p.MaxRetries))
}

// Operation is a unit of work that may be retried.
type Operation[T any] func() (T, error)

type options struct {
	notify    func(err error, wait time.Duration)
	timer     backoff.Timer
	retryable func(error) bool
}

type Option func(*options)

// WithNotify registers a callback invoked before every backoff wait.
func WithNotify(fn func(err error, wait time.Duration)) Option {
	return func(o *options) { o.notify = fn }
}

// WithTimer replaces the wall-clock timer used between attempts.
func WithTimer(t backoff.Timer) Option {
	return func(o *options) { o.timer = t }
}

// WithRetryable overrides the rate-limit classifier.
func WithRetryable(fn func(error) bool) Option {
	return func(o *options) { o.retryable = fn }
}

// Do runs op and retries it while it fails with a rate-limit error, until the
// policy's budget is spent. Any other error is returned on the spot. The
// returned error is always the one produced by op, never a wrapper.
func Do[T any](ctx context.Context, p Policy, op Operation[T], opts ...Option) (T, error) {
	o := options{retryable: IsRateLimited}
	for _, opt := range opts {
		opt(&o)
	}

	wrapped := func() (T, error) {
		res, err := op()
		if err != nil && !o.retryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	b := backoff.WithContext(p.backOff(), ctx)

	var notify backoff.Notify
	if o.notify != nil {
		notify = backoff.Notify(o.notify)
	}

	if o.timer != nil {
		return backoff.RetryNotifyWithTimerAndData(wrapped, b, notify, o.timer)
	}
	return backoff.RetryNotifyWithData(wrapped, b, notify)
}

// statusCoder is implemented by transport errors that carry an HTTP status.
type statusCoder interface {
	StatusCode() int
}

// IsRateLimited reports whether err signals HTTP 429, either through a
// status code or the error text.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() == 429 {
		return true
	}
	return strings.Contains(err.Error(), "429")
}
