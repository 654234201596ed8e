package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const (
	pathReport = "/reports/getIntegratedReport"

	reportDateRangeFixed  = "FIXED"
	reportFilterAdAccount = "AD_ACCOUNT"
	reportDataSource      = "HOURLY"
)

var dimensionAliases = map[string]string{
	"date":          newsbreakdomain.DimensionDate,
	"hour":          newsbreakdomain.DimensionHour,
	"org":           newsbreakdomain.DimensionOrg,
	"organization":  newsbreakdomain.DimensionOrg,
	"ad_account":    newsbreakdomain.DimensionAdAccount,
	"ad_account_id": newsbreakdomain.DimensionAdAccount,
	"campaign":      newsbreakdomain.DimensionCampaign,
	"campaign_id":   newsbreakdomain.DimensionCampaign,
	"ad_set":        newsbreakdomain.DimensionAdSet,
	"ad_set_id":     newsbreakdomain.DimensionAdSet,
	"ad":            newsbreakdomain.DimensionAd,
	"ad_id":         newsbreakdomain.DimensionAd,
}

var metricAliases = map[string]string{
	"cost":        newsbreakdomain.MetricCost,
	"spend":       newsbreakdomain.MetricCost,
	"impression":  newsbreakdomain.MetricImpression,
	"impressions": newsbreakdomain.MetricImpression,
	"click":       newsbreakdomain.MetricClick,
	"clicks":      newsbreakdomain.MetricClick,
	"conversion":  newsbreakdomain.MetricConversion,
	"conversions": newsbreakdomain.MetricConversion,
	"value":       newsbreakdomain.MetricValue,
	"cpm":         newsbreakdomain.MetricCPM,
	"cpc":         newsbreakdomain.MetricCPC,
	"cpa":         newsbreakdomain.MetricCPA,
	"ctr":         newsbreakdomain.MetricCTR,
	"cvr":         newsbreakdomain.MetricCVR,
	"vpa":         newsbreakdomain.MetricVPA,
}

var (
	DefaultReportDimensions = []string{newsbreakdomain.DimensionDate, newsbreakdomain.DimensionCampaign}
	DefaultReportMetrics    = []string{
		newsbreakdomain.MetricCost,
		newsbreakdomain.MetricImpression,
		newsbreakdomain.MetricClick,
		newsbreakdomain.MetricCTR,
		newsbreakdomain.MetricCPC,
	}
)

type ReportParams struct {
	AdAccountID string
	// DateFrom e DateTo vão para a API sem alteração (YYYY-MM-DD)
	DateFrom   string
	DateTo     string
	Dimensions []string
	Metrics    []string
}

// MapDimensions converte aliases de dimensão para o enum da API. Aliases
// desconhecidos seguem em maiúsculas.
func MapDimensions(dimensions []string) []string {
	if len(dimensions) == 0 {
		return append([]string(nil), DefaultReportDimensions...)
	}
	return mapAliases(dimensions, dimensionAliases)
}

// MapMetrics converte aliases de métrica para o enum da API. Aliases
// desconhecidos seguem em maiúsculas.
func MapMetrics(metrics []string) []string {
	if len(metrics) == 0 {
		return append([]string(nil), DefaultReportMetrics...)
	}
	return mapAliases(metrics, metricAliases)
}

func mapAliases(values []string, aliases map[string]string) []string {
	return lo.Map(values, func(v string, _ int) string {
		if mapped, ok := aliases[strings.ToLower(v)]; ok {
			return mapped
		}
		return strings.ToUpper(v)
	})
}

// BuildReportRequest monta o corpo do relatório. Falha se o ad account id não for numérico.
func BuildReportRequest(params ReportParams) (*newsbreakdomain.ReportRequest, error) {
	adAccountID, err := strconv.ParseInt(strings.TrimSpace(params.AdAccountID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: ad account id deve ser numérico, recebido %q", ErrInvalidParameter, params.AdAccountID)
	}

	return &newsbreakdomain.ReportRequest{
		Name:       fmt.Sprintf("report_%s_%s", params.DateFrom, params.DateTo),
		DateRange:  reportDateRangeFixed,
		StartDate:  params.DateFrom,
		EndDate:    params.DateTo,
		Dimensions: MapDimensions(params.Dimensions),
		Metrics:    MapMetrics(params.Metrics),
		Filter:     reportFilterAdAccount,
		FilterIDs:  []int64{adAccountID},
		DataSource: reportDataSource,
	}, nil
}

// RunSynchronousReport executa o relatório integrado e devolve as linhas já planas
func (c *NewsBreakClient) RunSynchronousReport(ctx context.Context, params ReportParams) (*newsbreakdomain.ReportData, error) {
	request, err := BuildReportRequest(params)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar requisição de relatório")
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": params.AdAccountID,
		"start_date":    request.StartDate,
		"end_date":      request.EndDate,
		"dimensions":    request.Dimensions,
		"metrics":       request.Metrics,
	}).Debug("newsbreak: executando relatório")

	var data newsbreakdomain.ReportData
	err = c.do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   pathReport,
		Body:   body,
	}, &data)
	if err != nil {
		return nil, err
	}

	data.Rows = lo.Map(data.Rows, func(row newsbreakdomain.ReportRow, _ int) newsbreakdomain.ReportRow {
		return row.Flatten()
	})

	return &data, nil
}
