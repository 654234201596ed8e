package newsbreakclient

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// RateLimiter é um token bucket com reposição contínua. Em qualquer janela de
// duração T são concedidos no máximo capacity + refillPerSecond*T tokens.
type RateLimiter struct {
	mu              sync.Mutex
	capacity        float64
	refillPerSecond float64
	tokens          float64
	lastRefill      time.Time
	clock           clock.Clock
}

func NewRateLimiter(capacity int, refillPerSecond float64, clk clock.Clock) (*RateLimiter, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacidade do rate limiter deve ser positiva, recebido %d", ErrInvalidParameter, capacity)
	}
	if refillPerSecond <= 0 || math.IsNaN(refillPerSecond) || math.IsInf(refillPerSecond, 0) {
		return nil, fmt.Errorf("%w: taxa de reposição deve ser positiva, recebido %v", ErrInvalidParameter, refillPerSecond)
	}
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &RateLimiter{
		capacity:        float64(capacity),
		refillPerSecond: refillPerSecond,
		tokens:          float64(capacity),
		lastRefill:      clk.Now(),
		clock:           clk,
	}, nil
}

// Acquire bloqueia até conseguir um token ou até o contexto ser cancelado.
// O lock nunca é mantido durante a espera.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait := l.tryAcquire()
		if wait == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(wait):
		}
	}
}

// Available devolve a quantidade atual de tokens, já considerando a reposição
func (l *RateLimiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens
}

// tryAcquire consome um token e devolve zero, ou devolve quanto falta esperar
// para que um token fique disponível.
func (l *RateLimiter) tryAcquire() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return 0
	}

	missing := 1 - l.tokens
	wait := time.Duration(math.Ceil(missing / l.refillPerSecond * float64(time.Second)))
	if wait < time.Nanosecond {
		wait = time.Nanosecond
	}
	return wait
}

func (l *RateLimiter) refill() {
	now := l.clock.Now()
	elapsed := now.Sub(l.lastRefill)
	if elapsed <= 0 {
		return
	}

	l.tokens = math.Min(l.capacity, l.tokens+elapsed.Seconds()*l.refillPerSecond)
	l.lastRefill = now
}
