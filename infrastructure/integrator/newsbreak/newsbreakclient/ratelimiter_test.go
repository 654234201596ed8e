package newsbreakclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/clock"
	testingclock "k8s.io/utils/clock/testing"
)

func TestNewRateLimiter_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		perSecond float64
	}{
		{name: "capacidade zero", capacity: 0, perSecond: 1},
		{name: "capacidade negativa", capacity: -1, perSecond: 1},
		{name: "taxa zero", capacity: 1, perSecond: 0},
		{name: "taxa negativa", capacity: 1, perSecond: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := NewRateLimiter(tt.capacity, tt.perSecond, nil)
			assert.Nil(t, limiter)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestRateLimiter_StartsFull(t *testing.T) {
	fakeClock := testingclock.NewFakeClock(time.Now())
	limiter, err := NewRateLimiter(3, 1, fakeClock)
	require.NoError(t, err)

	assert.Equal(t, 3.0, limiter.Available())
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(context.Background()))
	}
	assert.InDelta(t, 0.0, limiter.Available(), 1e-9)
}

func TestRateLimiter_RefillNeverExceedsCapacity(t *testing.T) {
	fakeClock := testingclock.NewFakeClock(time.Now())
	limiter, err := NewRateLimiter(2, 10, fakeClock)
	require.NoError(t, err)

	require.NoError(t, limiter.Acquire(context.Background()))
	fakeClock.Step(time.Hour)

	assert.Equal(t, 2.0, limiter.Available())
}

func TestRateLimiter_WindowBound(t *testing.T) {
	fakeClock := testingclock.NewFakeClock(time.Now())
	limiter, err := NewRateLimiter(5, 2, fakeClock)
	require.NoError(t, err)

	window := 3 * time.Second
	step := 100 * time.Millisecond
	granted := 0

	for elapsed := time.Duration(0); elapsed <= window; elapsed += step {
		for limiter.tryAcquire() == 0 {
			granted++
		}
		if elapsed < window {
			fakeClock.Step(step)
		}
	}

	// capacity + rate * T
	assert.LessOrEqual(t, granted, 5+2*3)
	assert.GreaterOrEqual(t, granted, 5+2*3-1)
}

func TestRateLimiter_AcquireWaitsForRefill(t *testing.T) {
	fakeClock := testingclock.NewFakeClock(time.Now())
	limiter, err := NewRateLimiter(1, 1, fakeClock)
	require.NoError(t, err)

	require.NoError(t, limiter.Acquire(context.Background()))

	done := make(chan error, 1)
	go func() {
		done <- limiter.Acquire(context.Background())
	}()

	require.Eventually(t, fakeClock.HasWaiters, time.Second, time.Millisecond)
	select {
	case <-done:
		t.Fatal("Acquire não deveria retornar antes da reposição")
	default:
	}

	fakeClock.Step(time.Second)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Acquire não retornou após a reposição")
	}
}

func TestRateLimiter_CancelledAcquireKeepsBudget(t *testing.T) {
	fakeClock := testingclock.NewFakeClock(time.Now())
	limiter, err := NewRateLimiter(1, 1, fakeClock)
	require.NoError(t, err)

	require.NoError(t, limiter.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- limiter.Acquire(ctx)
	}()

	require.Eventually(t, fakeClock.HasWaiters, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Acquire não respeitou o cancelamento")
	}

	fakeClock.Step(time.Second)
	assert.InDelta(t, 1.0, limiter.Available(), 1e-9)
	assert.Equal(t, time.Duration(0), limiter.tryAcquire())
}

func TestRateLimiter_AlreadyCancelledContext(t *testing.T) {
	limiter, err := NewRateLimiter(1, 1, clock.RealClock{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, limiter.Acquire(ctx), context.Canceled)
	assert.Equal(t, 1.0, limiter.Available())
}

func TestRateLimiter_BudgetInvariantUnderConcurrency(t *testing.T) {
	limiter, err := NewRateLimiter(5, 500, clock.RealClock{})
	require.NoError(t, err)

	const workers = 40
	var wg sync.WaitGroup
	stop := make(chan struct{})
	violations := make(chan float64, 1)

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			if v := limiter.Available(); v < 0 || v > 5 {
				select {
				case violations <- v:
				default:
				}
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, limiter.Acquire(ctx))
		}()
	}
	wg.Wait()
	close(stop)

	select {
	case v := <-violations:
		t.Fatalf("tokens fora do intervalo [0, capacidade]: %v", v)
	default:
	}

	available := limiter.Available()
	assert.GreaterOrEqual(t, available, 0.0)
	assert.LessOrEqual(t, available, 5.0)
}
