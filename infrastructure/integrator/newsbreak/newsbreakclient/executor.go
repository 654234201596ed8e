package newsbreakclient

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/clock"
)

const (
	DefaultMaxAttempts = 3
	DefaultBackoffBase = 300 * time.Millisecond
)

// DefaultBackoff é o agendamento usado entre tentativas: base * 2^n com jitter
func DefaultBackoff(base time.Duration, maxAttempts int) wait.Backoff {
	if base <= 0 {
		base = DefaultBackoffBase
	}
	return wait.Backoff{
		Duration: base,
		Factor:   2,
		Jitter:   0.1,
		Steps:    maxAttempts,
	}
}

// RetryingExecutor envia uma RequestSpec repetindo falhas transitórias
type RetryingExecutor struct {
	sender      Sender
	interpreter *ResponseInterpreter
	maxAttempts int
	backoff     wait.Backoff
	clock       clock.Clock
}

func NewRetryingExecutor(sender Sender, interpreter *ResponseInterpreter, maxAttempts int, backoff wait.Backoff, clk clock.Clock) *RetryingExecutor {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if interpreter == nil {
		interpreter = NewResponseInterpreter()
	}

	return &RetryingExecutor{
		sender:      sender,
		interpreter: interpreter,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		clock:       clk,
	}
}

// Execute faz até maxAttempts tentativas. Apenas falhas de transporte e
// respostas 5xx são repetidas; o último Outcome é devolvido com Attempts preenchido.
func (e *RetryingExecutor) Execute(ctx context.Context, spec RequestSpec, target any) Outcome {
	backoff := e.backoff
	endpoint := spec.Endpoint()

	var outcome Outcome
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		outcome = e.attempt(ctx, spec, target)
		outcome.Attempts = attempt

		if !outcome.Retryable() || attempt == e.maxAttempts {
			return outcome
		}

		delay := backoff.Step()
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
			"status":   outcome.HTTPStatus,
			"outcome":  outcome.Kind.String(),
			"delay":    delay.String(),
		}).Warn("Falha transitória na API da NewsBreak, tentando novamente")

		select {
		case <-ctx.Done():
			return outcome
		case <-e.clock.After(delay):
		}
	}

	return outcome
}

func (e *RetryingExecutor) attempt(ctx context.Context, spec RequestSpec, target any) Outcome {
	if err := ctx.Err(); err != nil {
		return TransportErrorOutcome(err)
	}

	endpoint := spec.Endpoint()
	start := e.clock.Now()

	var outcome Outcome
	resp, err := e.sender.Send(ctx, spec)
	if err != nil {
		outcome = TransportErrorOutcome(err)
	} else {
		outcome = e.interpreter.Interpret(resp.StatusCode, resp.Body, target)
	}

	APILatency.WithLabelValues(endpoint, outcome.Kind.String()).Observe(msSince(start, e.clock.Now()))
	APIAttempts.WithLabelValues(endpoint, outcome.Kind.String()).Inc()

	return outcome
}
