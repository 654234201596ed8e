package newsbreakclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDimensions(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "Vazio usa padrão", input: nil, expected: []string{"DATE", "CAMPAIGN"}},
		{name: "Alias campaign_id", input: []string{"campaign_id"}, expected: []string{"CAMPAIGN"}},
		{name: "Alias organization", input: []string{"organization", "org"}, expected: []string{"ORG", "ORG"}},
		{name: "Case insensitive", input: []string{"Ad_Set_Id", "HOUR"}, expected: []string{"AD_SET", "HOUR"}},
		{name: "Desconhecido segue em maiúsculas", input: []string{"foo"}, expected: []string{"FOO"}},
		{name: "Ordem preservada", input: []string{"ad", "ad_account", "date"}, expected: []string{"AD", "AD_ACCOUNT", "DATE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapDimensions(tt.input))
		})
	}
}

func TestMapMetrics(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "Vazio usa padrão", input: []string{}, expected: []string{"COST", "IMPRESSION", "CLICK", "CTR", "CPC"}},
		{name: "Alias spend", input: []string{"spend"}, expected: []string{"COST"}},
		{name: "Plurais", input: []string{"impressions", "clicks", "conversions"}, expected: []string{"IMPRESSION", "CLICK", "CONVERSION"}},
		{name: "Taxas", input: []string{"cpm", "cpc", "cpa", "ctr", "cvr", "vpa", "value"}, expected: []string{"CPM", "CPC", "CPA", "CTR", "CVR", "VPA", "VALUE"}},
		{name: "Desconhecido segue em maiúsculas", input: []string{"roas"}, expected: []string{"ROAS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapMetrics(tt.input))
		})
	}
}

func TestMapDimensions_DefaultsAreCopies(t *testing.T) {
	dims := MapDimensions(nil)
	dims[0] = "CHANGED"

	assert.Equal(t, "DATE", DefaultReportDimensions[0])
}

func TestBuildReportRequest(t *testing.T) {
	request, err := BuildReportRequest(ReportParams{
		AdAccountID: " 42 ",
		DateFrom:    "2024-02-01",
		DateTo:      "2024-02-29",
	})

	require.NoError(t, err)
	assert.Equal(t, "report_2024-02-01_2024-02-29", request.Name)
	assert.Equal(t, "FIXED", request.DateRange)
	assert.Equal(t, "AD_ACCOUNT", request.Filter)
	assert.Equal(t, "HOURLY", request.DataSource)
	assert.Equal(t, []int64{42}, request.FilterIDs)
	assert.Equal(t, []string{"DATE", "CAMPAIGN"}, request.Dimensions)
	assert.Equal(t, []string{"COST", "IMPRESSION", "CLICK", "CTR", "CPC"}, request.Metrics)
}

func TestBuildReportRequest_NonNumericAccount(t *testing.T) {
	for _, id := range []string{"", "abc", "12a", "1.5"} {
		_, err := BuildReportRequest(ReportParams{AdAccountID: id, DateFrom: "2024-01-01", DateTo: "2024-01-01"})
		assert.ErrorIs(t, err, ErrInvalidParameter, id)
	}
}
