package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/newsbreakclient"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/apiErrors"
)

var (
	// Erros de validação dos argumentos das ferramentas
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")

	// Erros da API da NewsBreak
	ErrNewsBreakAPI        = errors.New("newsbreak API error")
	ErrUpstreamUnavailable = errors.New("newsbreak API unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected newsbreak response")
)

// ReportingError carrega o contexto de uma falha para a camada de ferramentas
type ReportingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string
	// UpstreamCode é o código devolvido pela NewsBreak, quando houver
	UpstreamCode *int
	Cause        error
}

func (e *ReportingError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewReportingError(err error, code string, message string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

func invalidArgument(format string, args ...any) *ReportingError {
	return NewReportingError(ErrInvalidArgument, apiErrors.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// translateError converte os erros tipados do cliente em ReportingError
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *newsbreakclient.APIError
	var transportErr *newsbreakclient.TransportError
	var mismatchErr *newsbreakclient.SchemaMismatchError

	switch {
	case errors.As(err, &apiErr):
		code := apiErr.Code
		return &ReportingError{
			Err:          ErrNewsBreakAPI,
			Code:         apiErrors.ErrExternalService,
			Message:      apiErr.Message,
			UpstreamCode: &code,
			Cause:        err,
		}
	case errors.As(err, &transportErr):
		return &ReportingError{
			Err:     ErrUpstreamUnavailable,
			Code:    apiErrors.ErrCommunication,
			Message: transportErr.Error(),
			Cause:   err,
		}
	case errors.As(err, &mismatchErr):
		return &ReportingError{
			Err:     ErrUnexpectedResponse,
			Code:    apiErrors.ErrExternalService,
			Message: mismatchErr.Error(),
			Cause:   err,
		}
	case errors.Is(err, newsbreakclient.ErrInvalidParameter):
		return &ReportingError{
			Err:     ErrInvalidArgument,
			Code:    apiErrors.ErrInvalidRequest,
			Message: err.Error(),
			Cause:   err,
		}
	default:
		return &ReportingError{
			Err:     ErrUpstreamUnavailable,
			Code:    apiErrors.ErrInternalServer,
			Message: err.Error(),
			Cause:   err,
		}
	}
}
