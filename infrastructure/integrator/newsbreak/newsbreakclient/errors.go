package newsbreakclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAccessToken indica que nenhum token foi informado (flag ou ambiente)
	ErrMissingAccessToken = errors.New("access token required: set NEWSBREAK_ACCESS_TOKEN or pass --access-token")

	ErrUpstreamUnreachable = errors.New("newsbreak API unreachable")
	ErrUnexpectedResponse  = errors.New("unexpected response from newsbreak API")
	ErrInvalidParameter    = errors.New("invalid parameter")
)

// APIError é uma rejeição bem formada da API (HTTP 4xx/5xx ou code != 0)
type APIError struct {
	Code       int
	Message    string
	HTTPStatus int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NewsBreak API Error (code=%d): %s", e.Code, e.Message)
}

// TransportError indica falha de rede/timeout depois de esgotar as tentativas
type TransportError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s) on %s: %v", ErrUpstreamUnreachable, e.Attempts, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrUpstreamUnreachable, e.Err}
}

// SchemaMismatchError indica que a resposta não pôde ser classificada ou não
// passou na validação. RawPayload fica disponível para diagnóstico.
type SchemaMismatchError struct {
	Endpoint   string
	RawPayload []byte
	Violations []Violation
}

func (e *SchemaMismatchError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("%s on %s", ErrUnexpectedResponse, e.Endpoint)
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s on %s: %s", ErrUnexpectedResponse, e.Endpoint, strings.Join(parts, "; "))
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrUnexpectedResponse
}

// redactor remove o token de qualquer texto que vá para fora do cliente
type redactor string

const redactedToken = "[REDACTED]"

func (r redactor) String(s string) string {
	if r == "" {
		return s
	}
	return strings.ReplaceAll(s, string(r), redactedToken)
}

func (r redactor) Bytes(b []byte) []byte {
	if r == "" || !strings.Contains(string(b), string(r)) {
		return b
	}
	return []byte(strings.ReplaceAll(string(b), string(r), redactedToken))
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func (r redactor) Error(err error) error {
	if err == nil || r == "" || !strings.Contains(err.Error(), string(r)) {
		return err
	}
	return &redactedError{msg: r.String(err.Error()), err: err}
}

// toError converte um Outcome de falha no erro tipado correspondente
func toError(endpoint string, o Outcome, r redactor) error {
	switch o.Kind {
	case OutcomeAPIError:
		return &APIError{
			Code:       o.Code,
			Message:    r.String(o.Message),
			HTTPStatus: o.HTTPStatus,
			Endpoint:   endpoint,
		}
	case OutcomeTransportError:
		return &TransportError{
			Endpoint: endpoint,
			Attempts: o.Attempts,
			Err:      r.Error(o.Cause),
		}
	case OutcomeSchemaMismatch:
		violations := make([]Violation, len(o.Violations))
		for i, v := range o.Violations {
			v.Message = r.String(v.Message)
			violations[i] = v
		}
		return &SchemaMismatchError{
			Endpoint:   endpoint,
			RawPayload: r.Bytes(o.RawBody),
			Violations: violations,
		}
	default:
		return nil
	}
}
