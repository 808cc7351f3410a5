package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

type Config struct {
	RecordLength     int           `envconfig:"PAYMENT_CB_RECORD_LENGTH" default:"10"`
	Timeout          time.Duration `envconfig:"PAYMENT_CB_TIMEOUT" default:"30s"`
	Percentile       float64       `envconfig:"PAYMENT_CB_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `envconfig:"PAYMENT_CB_RECOVERY_REQUESTS" default:"3"`
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status
	now   func() time.Time

	// outcomes is a ring of the last calls, true means failed.
	outcomes []bool
	next     int
	failures int
	// failure ratio over outcomes that opens the breaker
	threshold float64

	// how long OPEN lasts before a probe is allowed
	cooldown time.Duration
	openedAt time.Time

	// consecutive probe successes needed to close again
	probesToClose int
	probesPassed  int
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	if recordLength < 1 {
		recordLength = 1
	}
	return &circuitBreaker{
		state:         Closed,
		now:           time.Now,
		outcomes:      make([]bool, recordLength),
		threshold:     percentile,
		cooldown:      timeout,
		probesToClose: recoveryRequests,
	}
}

func NewFromConfig(cfg Config) CircuitBreaker {
	return New(cfg.RecordLength, cfg.Timeout, cfg.Percentile, cfg.RecoveryRequests)
}

var ErrOpenCB = errors.New("circuit breaker is open")

// Call runs service unless the breaker is open. Its error is returned as is.
func (cb *circuitBreaker) Call(service func() error) error {
	if !cb.allow() {
		return ErrOpenCB
	}
	err := service()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return true
	}
	if cb.now().Sub(cb.openedAt) <= cb.cooldown {
		return false
	}
	cb.state = HalfOpen
	cb.probesPassed = 0
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.outcomes[cb.next] {
		cb.failures--
	}
	cb.outcomes[cb.next] = failed
	if failed {
		cb.failures++
	}
	cb.next = (cb.next + 1) % len(cb.outcomes)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.trip()
			return
		}
		cb.probesPassed++
		if cb.probesPassed >= cb.probesToClose {
			cb.reset()
		}
	case Closed:
		if float64(cb.failures)/float64(len(cb.outcomes)) >= cb.threshold {
			cb.trip()
		}
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.probesPassed = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.outcomes {
		cb.outcomes[i] = false
	}
	cb.next, cb.failures, cb.probesPassed = 0, 0, 0
	cb.state = Closed
}
