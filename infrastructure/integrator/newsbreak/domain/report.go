package newsbreakdomain

// Dimensões aceitas pelo endpoint de relatórios
const (
	DimensionDate      = "DATE"
	DimensionHour      = "HOUR"
	DimensionOrg       = "ORG"
	DimensionAdAccount = "AD_ACCOUNT"
	DimensionCampaign  = "CAMPAIGN"
	DimensionAdSet     = "AD_SET"
	DimensionAd        = "AD"
)

// Métricas aceitas pelo endpoint de relatórios
const (
	MetricCost       = "COST"
	MetricImpression = "IMPRESSION"
	MetricClick      = "CLICK"
	MetricConversion = "CONVERSION"
	MetricValue      = "VALUE"
	MetricCPM        = "CPM"
	MetricCPC        = "CPC"
	MetricCPA        = "CPA"
	MetricCTR        = "CTR"
	MetricCVR        = "CVR"
	MetricVPA        = "VPA"
)

// ReportRequest é o corpo enviado para /reports/getIntegratedReport
type ReportRequest struct {
	Name       string   `json:"name"`
	DateRange  string   `json:"dateRange"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	Metrics    []string `json:"metrics"`
	Filter     string   `json:"filter"`
	FilterIDs  []int64  `json:"filterIds"`
	DataSource string   `json:"dataSource"`
}

// ReportRowKeys são as chaves conhecidas de uma linha de relatório. A API
// devolve dimensões e métricas no mesmo nível do objeto.
var ReportRowKeys = []string{
	"date", "hour", "adAccountId", "adAccount", "orgId", "organization",
	"campaignId", "campaign", "adSetId", "adSet", "adId", "ad",
	"cost", "impression", "click", "conversion", "value",
	"cpm", "cpc", "cpa", "ctr", "cvr", "vpa", "roas",
}

// ReportRow é uma linha plana do relatório: nome da dimensão/métrica -> valor.
// Dimensões ou métricas omitidas pela API simplesmente não aparecem.
type ReportRow map[string]any

// Flatten devolve a linha sem sub-objetos "dimensions"/"metrics", promovendo
// as chaves deles para o nível de cima. Chaves desconhecidas são mantidas.
func (r ReportRow) Flatten() ReportRow {
	out := make(ReportRow, len(r))
	var nested []map[string]any

	for k, v := range r {
		if k == "dimensions" || k == "metrics" {
			if m, ok := v.(map[string]any); ok {
				nested = append(nested, m)
				continue
			}
		}
		out[k] = v
	}

	for _, m := range nested {
		for k, v := range m {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}

	return out
}

// ReportData é o campo data de /reports/getIntegratedReport
type ReportData struct {
	Rows  []ReportRow `json:"rows"`
	Total *int        `json:"total,omitempty"`
}
