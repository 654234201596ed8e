package newsbreakclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/clock"
)

type scriptedStep func(ctx context.Context) (*RawResponse, error)

// scriptedSender devolve as respostas na ordem; a última se repete
type scriptedSender struct {
	mu    sync.Mutex
	steps []scriptedStep
	specs []RequestSpec
}

func (s *scriptedSender) Send(ctx context.Context, spec RequestSpec) (*RawResponse, error) {
	s.mu.Lock()
	idx := len(s.specs)
	s.specs = append(s.specs, spec)
	step := s.steps[len(s.steps)-1]
	if idx < len(s.steps) {
		step = s.steps[idx]
	}
	s.mu.Unlock()

	return step(ctx)
}

func (s *scriptedSender) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.specs)
}

var errConnectionReset = errors.New("connection reset by peer")

func transportFailure(context.Context) (*RawResponse, error) {
	return nil, errConnectionReset
}

func respond(status int, body string) scriptedStep {
	return func(context.Context) (*RawResponse, error) {
		return &RawResponse{StatusCode: status, Body: []byte(body)}, nil
	}
}

const eventsOK = `{"code":0,"data":{"list":[{"id":"1","name":"Purchase","type":"PIXEL"}]}}`

func fastBackoff(steps int) wait.Backoff {
	return wait.Backoff{Duration: time.Millisecond, Factor: 2, Steps: steps}
}

func TestRetryingExecutor_Execute(t *testing.T) {
	tests := []struct {
		name          string
		steps         []scriptedStep
		maxAttempts   int
		expectedKind  OutcomeKind
		expectedCalls int
	}{
		{
			name:          "Transporte, transporte, sucesso: 3 tentativas e sucesso",
			steps:         []scriptedStep{transportFailure, transportFailure, respond(200, eventsOK)},
			maxAttempts:   3,
			expectedKind:  OutcomeSuccess,
			expectedCalls: 3,
		},
		{
			name:          "Transporte em todas: 3 tentativas e erro de transporte",
			steps:         []scriptedStep{transportFailure},
			maxAttempts:   3,
			expectedKind:  OutcomeTransportError,
			expectedCalls: 3,
		},
		{
			name:          "ApiError de aplicação não é repetido",
			steps:         []scriptedStep{respond(200, `{"code":7,"errMsg":"bad dates"}`)},
			maxAttempts:   3,
			expectedKind:  OutcomeAPIError,
			expectedCalls: 1,
		},
		{
			name:          "HTTP 4xx não é repetido",
			steps:         []scriptedStep{respond(403, `{"message":"forbidden"}`)},
			maxAttempts:   3,
			expectedKind:  OutcomeAPIError,
			expectedCalls: 1,
		},
		{
			name:          "HTTP 5xx é repetido até o sucesso",
			steps:         []scriptedStep{respond(503, `{"message":"unavailable"}`), respond(200, eventsOK)},
			maxAttempts:   3,
			expectedKind:  OutcomeSuccess,
			expectedCalls: 2,
		},
		{
			name:          "SchemaMismatch não é repetido",
			steps:         []scriptedStep{respond(200, `{"code":0,"data":{"list":[{"name":"sem id","type":"PIXEL"}]}}`)},
			maxAttempts:   3,
			expectedKind:  OutcomeSchemaMismatch,
			expectedCalls: 1,
		},
		{
			name:          "Uma única tentativa configurada",
			steps:         []scriptedStep{transportFailure},
			maxAttempts:   1,
			expectedKind:  OutcomeTransportError,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &scriptedSender{steps: tt.steps}
			executor := NewRetryingExecutor(sender, NewResponseInterpreter(), tt.maxAttempts, fastBackoff(tt.maxAttempts), clock.RealClock{})

			var data newsbreakdomain.EventsData
			spec := RequestSpec{Method: "GET", Path: "/event/getList/1"}
			outcome := executor.Execute(context.Background(), spec, &data)

			assert.Equal(t, tt.expectedKind, outcome.Kind)
			assert.Equal(t, tt.expectedCalls, sender.calls())
			assert.Equal(t, tt.expectedCalls, outcome.Attempts)

			for _, sent := range sender.specs {
				assert.Equal(t, spec, sent)
			}
			if tt.expectedKind == OutcomeTransportError {
				assert.ErrorIs(t, outcome.Cause, errConnectionReset)
			}
		})
	}
}

func TestRetryingExecutor_StopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &scriptedSender{steps: []scriptedStep{
		func(context.Context) (*RawResponse, error) {
			cancel()
			return nil, errConnectionReset
		},
	}}
	backoff := wait.Backoff{Duration: time.Hour, Factor: 2, Steps: 3}
	executor := NewRetryingExecutor(sender, nil, 3, backoff, clock.RealClock{})

	done := make(chan Outcome, 1)
	go func() {
		done <- executor.Execute(ctx, RequestSpec{Method: "GET", Path: "/ad/getList"}, nil)
	}()

	select {
	case outcome := <-done:
		assert.Equal(t, OutcomeTransportError, outcome.Kind)
		assert.Equal(t, 1, outcome.Attempts)
		assert.Equal(t, 1, sender.calls())
	case <-time.After(5 * time.Second):
		t.Fatal("Execute não abortou após o cancelamento")
	}
}

func TestRetryingExecutor_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &scriptedSender{steps: []scriptedStep{respond(200, eventsOK)}}
	executor := NewRetryingExecutor(sender, nil, 3, fastBackoff(3), nil)

	outcome := executor.Execute(ctx, RequestSpec{Method: "GET", Path: "/x"}, nil)

	require.Equal(t, OutcomeTransportError, outcome.Kind)
	assert.ErrorIs(t, outcome.Cause, context.Canceled)
	assert.Equal(t, 0, sender.calls())
}

func TestDefaultBackoff(t *testing.T) {
	backoff := DefaultBackoff(0, 3)

	assert.Equal(t, DefaultBackoffBase, backoff.Duration)
	assert.Equal(t, 2.0, backoff.Factor)
	assert.Equal(t, 3, backoff.Steps)

	first := backoff.Step()
	second := backoff.Step()
	assert.GreaterOrEqual(t, first, DefaultBackoffBase)
	assert.GreaterOrEqual(t, second, 2*DefaultBackoffBase)
}
