package mcp

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting/mocks"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/apiErrors"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*reportingmocks.MockReporter, *Handler) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	return reporter, NewHandler(reporter)
}

func textOf(t *testing.T, result *sdk.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*sdk.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleGetCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *reportingmocks.MockReporter)
		validate func(t *testing.T, result *sdk.CallToolResult, out domain.CampaignsResult, err error)
	}{
		{
			name: "Devolve campanhas com JSON indentado",
			setup: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ListCampaigns(gomock.Any(), reporting.CampaignsQuery{
					AdAccountID:  "42",
					Search:       "black friday",
					OnlineStatus: "ACTIVE",
				}).Return(&domain.CampaignsResult{
					Campaigns:  []domain.Campaign{{ID: "1", Name: "Black Friday", Budget: lo.ToPtr(100.0)}},
					Pagination: domain.Pagination{PageNo: 1, PageSize: 50, Total: 1},
				}, nil)
			},
			validate: func(t *testing.T, result *sdk.CallToolResult, out domain.CampaignsResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.IsError)
				assert.Equal(t, "Black Friday", out.Campaigns[0].Name)

				text := textOf(t, result)
				assert.Contains(t, text, "\n  \"campaigns\": [")
				assert.Contains(t, text, "\"has_next\": false")
			},
		},
		{
			name: "Erro da API com código",
			setup: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(nil, &reporting.ReportingError{
					Err:          reporting.ErrNewsBreakAPI,
					Code:         apiErrors.ErrExternalService,
					Message:      "invalid access token",
					UpstreamCode: lo.ToPtr(1001),
				})
			},
			validate: func(t *testing.T, result *sdk.CallToolResult, out domain.CampaignsResult, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, "NewsBreak API error: invalid access token (code=1001)", err.Error())
			},
		},
		{
			name: "Erro de argumento sem prefixo",
			setup: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).
					Return(nil, reporting.NewReportingError(reporting.ErrInvalidArgument, apiErrors.ErrInvalidRequest, "ad_account_id é obrigatório"))
			},
			validate: func(t *testing.T, result *sdk.CallToolResult, out domain.CampaignsResult, err error) {
				require.Error(t, err)
				assert.Equal(t, "invalid argument: ad_account_id é obrigatório", err.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, handler := newTestHandler(t)
			tt.setup(reporter)

			result, out, err := handler.HandleGetCampaigns(context.Background(), nil, GetCampaignsInput{
				AdAccountID:  "42",
				Search:       "black friday",
				OnlineStatus: "ACTIVE",
			})
			tt.validate(t, result, out, err)
		})
	}
}

func TestHandleRunPerformanceReport(t *testing.T) {
	reporter, handler := newTestHandler(t)
	reporter.EXPECT().RunReport(gomock.Any(), reporting.ReportQuery{
		AdAccountID: "42",
		DateFrom:    "2024-01-01",
		DateTo:      "2024-01-31",
		Metrics:     []string{"spend"},
		Level:       "campaign",
	}).DoAndReturn(func(ctx context.Context, _ reporting.ReportQuery) (*domain.ReportResult, error) {
		assert.NotEmpty(t, log.GetCorrelationID(ctx))
		return &domain.ReportResult{Report: domain.Report{
			AdAccountID: "42",
			Rows:        []map[string]any{{"cost": 1.5}},
			Total:       1,
		}}, nil
	})

	result, out, err := handler.HandleRunPerformanceReport(context.Background(), nil, RunPerformanceReportInput{
		AdAccountID: "42",
		DateFrom:    "2024-01-01",
		DateTo:      "2024-01-31",
		Metrics:     []string{"spend"},
		Level:       "campaign",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Report.Total)
	assert.Contains(t, textOf(t, result), "\"cost\": 1.5")
}

func TestHandleGetCampaignSummaryPassesDays(t *testing.T) {
	reporter, handler := newTestHandler(t)
	reporter.EXPECT().CampaignSummary(gomock.Any(), "42", 14).Return(&domain.CampaignSummaryResult{
		Summary: domain.CampaignSummary{AdAccountID: "42", Period: domain.Period{Days: 14}},
	}, nil)

	_, out, err := handler.HandleGetCampaignSummary(context.Background(), nil, GetCampaignSummaryInput{AdAccountID: "42", Days: 14})

	require.NoError(t, err)
	assert.Equal(t, 14, out.Summary.Period.Days)
}

func TestHandleGetAds(t *testing.T) {
	reporter, handler := newTestHandler(t)
	reporter.EXPECT().ListAds(gomock.Any(), reporting.AdsQuery{
		AdAccountID: "42",
		PageSize:    10,
		AdSetIDs:    []string{"3"},
	}).Return(&domain.AdsResult{Ads: []domain.Ad{{ID: "9"}}}, nil)

	_, out, err := handler.HandleGetAds(context.Background(), nil, GetAdsInput{AdAccountID: "42", PageSize: 10, AdSetIDs: []string{"3"}})

	require.NoError(t, err)
	assert.Equal(t, "9", out.Ads[0].ID)
}

func TestToolError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "API indisponível",
			err:      &reporting.ReportingError{Err: reporting.ErrUpstreamUnavailable, Message: "timeout"},
			expected: "NewsBreak API error: timeout",
		},
		{
			name:     "Erro desconhecido",
			err:      errors.New("boom"),
			expected: "unexpected error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, toolError(tt.err), tt.expected)
		})
	}
}
