// Package pacer provides an adaptive rate limit for outbound requests. The
// rate climbs on success and drops when the remote side signals overload.
//
// Example usage:
//
//	p := pacer.New(5, 1, 10, 1, 0.5)
//	if err := p.Wait(ctx); err != nil {
//	    return err
//	}
//	err := send()
//	p.Observe(err)
//
// It never retries: a caller decides what to do with a failed request.
package pacer

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// cooldown is how long after a 429 the rate is held before climbing again.
const cooldown = 10 * time.Second

// HTTPError is implemented by errors that carry an HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// Pacer manages a rate limit that adjusts automatically based on the outcome
// of requests. Safe for concurrent use.
type Pacer struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
	now       func() time.Time
}

// New creates a Pacer.
//
// Parameters:
//   - initial: starting requests per second
//   - min: minimum allowed rate
//   - max: maximum allowed rate
//   - stepUp: increment on success
//   - stepDown: multiplier applied on overload (e.g., 0.5 to halve)
func New(initial, min, max, stepUp rate.Limit, stepDown float64) *Pacer {
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	if stepDown <= 0 || stepDown >= 1 {
		stepDown = 0.5
	}
	return &Pacer{
		limiter:  rate.NewLimiter(initial, burstFor(initial)),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
		now:      time.Now,
	}
}

// Wait blocks until a token is available or the context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Observe adjusts the rate from the outcome of one request.
func (p *Pacer) Observe(err error) {
	switch {
	case err == nil:
		p.Success()
	case IsRateLimited(err):
		p.RateLimited()
	}
}

// Success increases the rate after a successful request, unless the remote
// side pushed back recently.
func (p *Pacer) Success() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.now().Sub(p.lastError) > cooldown {
		p.adjustLimit(p.limiter.Limit() + p.stepUp)
	}
}

// RateLimited reduces the rate after the remote side signalled overload.
func (p *Pacer) RateLimited() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastError = p.now()
	p.adjustLimit(rate.Limit(float64(p.limiter.Limit()) * p.stepDown))
}

// CurrentLimit returns the current requests per second.
func (p *Pacer) CurrentLimit() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return float64(p.limiter.Limit())
}

// adjustLimit sets the limiter to a new rate, respecting min/max boundaries.
func (p *Pacer) adjustLimit(newLimit rate.Limit) {
	if newLimit > p.maxLimit {
		newLimit = p.maxLimit
	} else if newLimit < p.minLimit {
		newLimit = p.minLimit
	}

	if newLimit != p.limiter.Limit() {
		p.limiter.SetLimit(newLimit)
		p.limiter.SetBurst(burstFor(newLimit))
	}
}

// IsRateLimited reports whether err carries an HTTP 429 status.
func IsRateLimited(err error) bool {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode() == http.StatusTooManyRequests
	}
	return false
}

func burstFor(l rate.Limit) int {
	return max(1, int(l))
}
