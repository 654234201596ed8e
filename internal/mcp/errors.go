package mcp

import (
	"errors"
	"fmt"

	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
)

const newsBreakErrorPrefix = "NewsBreak API error: "

// toolError monta a mensagem exibida ao modelo. Erros de argumento seguem
// como estão; os demais recebem o prefixo da API e o código quando houver.
func toolError(err error) error {
	var reportingErr *reporting.ReportingError
	if !errors.As(err, &reportingErr) {
		return fmt.Errorf("unexpected error: %s", err.Error())
	}

	if errors.Is(reportingErr.Err, reporting.ErrInvalidArgument) {
		return errors.New(reportingErr.Error())
	}

	msg := newsBreakErrorPrefix + reportingErr.Message
	if reportingErr.UpstreamCode != nil {
		msg = fmt.Sprintf("%s (code=%d)", msg, *reportingErr.UpstreamCode)
	}
	return errors.New(msg)
}

func errorCode(err error) string {
	var reportingErr *reporting.ReportingError
	if errors.As(err, &reportingErr) {
		return reportingErr.Code
	}
	return ""
}
