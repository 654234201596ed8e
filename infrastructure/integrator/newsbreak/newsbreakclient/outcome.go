package newsbreakclient

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// OutcomeKind identifica qual variante de Outcome está preenchida
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeAPIError
	OutcomeTransportError
	OutcomeSchemaMismatch
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeAPIError:
		return "api_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeSchemaMismatch:
		return "schema_mismatch"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Violation descreve uma falha de validação de um campo do payload
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Outcome é o resultado de uma tentativa de chamada à API. Apenas os campos
// da variante indicada por Kind têm significado.
type Outcome struct {
	Kind OutcomeKind

	// Success
	Payload jsoniter.RawMessage

	// APIError
	Code       int
	Message    string
	HTTPStatus int

	// TransportError
	Cause error

	// SchemaMismatch
	RawBody    []byte
	Violations []Violation

	// Attempts é preenchido pelo RetryingExecutor
	Attempts int
}

func Success(payload jsoniter.RawMessage) Outcome {
	return Outcome{Kind: OutcomeSuccess, Payload: payload}
}

func APIErrorOutcome(httpStatus, code int, message string) Outcome {
	return Outcome{Kind: OutcomeAPIError, HTTPStatus: httpStatus, Code: code, Message: message}
}

func TransportErrorOutcome(cause error) Outcome {
	return Outcome{Kind: OutcomeTransportError, Cause: cause}
}

func SchemaMismatchOutcome(rawBody []byte, violations ...Violation) Outcome {
	return Outcome{Kind: OutcomeSchemaMismatch, RawBody: rawBody, Violations: violations}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Retryable indica se vale a pena repetir a requisição: falhas de transporte
// e respostas 5xx. Erros 4xx e de aplicação são determinísticos.
func (o Outcome) Retryable() bool {
	switch o.Kind {
	case OutcomeTransportError:
		return true
	case OutcomeAPIError:
		return o.HTTPStatus >= 500
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeAPIError:
		return fmt.Sprintf("api_error(code=%d, status=%d): %s", o.Code, o.HTTPStatus, o.Message)
	case OutcomeTransportError:
		return fmt.Sprintf("transport_error: %v", o.Cause)
	case OutcomeSchemaMismatch:
		parts := make([]string, 0, len(o.Violations))
		for _, v := range o.Violations {
			parts = append(parts, v.String())
		}
		return fmt.Sprintf("schema_mismatch: %s", strings.Join(parts, "; "))
	default:
		return o.Kind.String()
	}
}
