// Package email builds order notification messages and delivers them through
// a pluggable transport. The bundled transport is a simulation: it has fixed
// latency and a small, independent-per-call failure probability, which
// exercises the caller's retry path the way a real mail API would.
package email

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/jonboulle/clockwork"
)

// Transport is the outbound delivery capability. A real implementation (an
// email API) returns a provider receipt ID.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// Rand supplies the randomness for the simulated failure branch; tests
// substitute a fixed source to force either outcome.
type Rand interface {
	Float64() float64
}

// MathRand is the production Rand backed by math/rand.
type MathRand struct{}

func (MathRand) Float64() float64 {
	return rand.Float64()
}

// SimulatedTransport fakes a mail provider: it waits a fixed latency, then
// fails with probability failureRate, independently on every call.
type SimulatedTransport struct {
	clock       clockwork.Clock
	rand        Rand
	latency     time.Duration
	failureRate float64
}

func NewSimulatedTransport(clock clockwork.Clock, rnd Rand, latency time.Duration, failureRate float64) *SimulatedTransport {
	return &SimulatedTransport{
		clock:       clock,
		rand:        rnd,
		latency:     latency,
		failureRate: failureRate,
	}
}

func (s *SimulatedTransport) Send(ctx context.Context, to, subject, body string) (string, error) {
	if s.latency > 0 {
		select {
		case <-s.clock.After(s.latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if s.rand.Float64() < s.failureRate {
		return "", common.ErrTransportUnavailable
	}

	suffix, err := common.MakeRandBase36String(9)
	if err != nil {
		return "", fmt.Errorf("generate message id: %w", err)
	}
	return fmt.Sprintf("msg_%d_%s", s.clock.Now().UnixMilli(), suffix), nil
}
