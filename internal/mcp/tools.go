package mcp

import (
	"context"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/utils"
)

const (
	ToolGetAdAccounts        = "get_ad_accounts"
	ToolGetCampaigns         = "get_campaigns"
	ToolGetTrackingEvents    = "get_tracking_events"
	ToolRunPerformanceReport = "run_performance_report"
	ToolGetCampaignSummary   = "get_campaign_summary"
	ToolGetAdSets            = "get_ad_sets"
	ToolGetAds               = "get_ads"
)

type GetAdAccountsInput struct {
	OrgIDs []string `json:"org_ids" jsonschema:"list of organization IDs to fetch ad accounts for"`
}

type GetCampaignsInput struct {
	AdAccountID  string `json:"ad_account_id" jsonschema:"the ad account ID to fetch campaigns for"`
	PageNo       int    `json:"page_no,omitempty" jsonschema:"page number (default: 1)"`
	PageSize     int    `json:"page_size,omitempty" jsonschema:"results per page: 5, 10, 20, 50, 100, 200 or 500 (default: 50)"`
	Search       string `json:"search,omitempty" jsonschema:"optional search query to filter campaigns by name"`
	OnlineStatus string `json:"online_status,omitempty" jsonschema:"optional status filter: WARNING, INACTIVE, ACTIVE or DELETED"`
}

type GetTrackingEventsInput struct {
	AdAccountID string  `json:"ad_account_id" jsonschema:"the ad account ID to fetch events for"`
	OSFilter    *string `json:"os_filter,omitempty" jsonschema:"optional OS filter: IOS, ANDROID or an empty string for web"`
}

type RunPerformanceReportInput struct {
	AdAccountID string   `json:"ad_account_id" jsonschema:"the ad account ID to generate the report for"`
	DateFrom    string   `json:"date_from" jsonschema:"start date in YYYY-MM-DD format (e.g. 2024-01-01)"`
	DateTo      string   `json:"date_to" jsonschema:"end date in YYYY-MM-DD format (e.g. 2024-01-31)"`
	Dimensions  []string `json:"dimensions,omitempty" jsonschema:"optional dimensions such as date, campaign_id, ad_set_id or ad_id (default: date and campaign)"`
	Metrics     []string `json:"metrics,omitempty" jsonschema:"optional metrics such as impressions, clicks, spend, conversions, ctr or cpc"`
	Level       string   `json:"level,omitempty" jsonschema:"optional reporting level: campaign, ad_set or ad"`
}

type GetCampaignSummaryInput struct {
	AdAccountID string `json:"ad_account_id" jsonschema:"the ad account ID"`
	Days        int    `json:"days,omitempty" jsonschema:"number of days to look back (default: 7)"`
}

type GetAdSetsInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"the campaign ID to fetch ad sets for"`
	PageNo     int    `json:"page_no,omitempty" jsonschema:"page number (default: 1)"`
	PageSize   int    `json:"page_size,omitempty" jsonschema:"results per page (default: 50)"`
}

type GetAdsInput struct {
	AdAccountID  string   `json:"ad_account_id" jsonschema:"the ad account ID to fetch ads for"`
	PageNo       int      `json:"page_no,omitempty" jsonschema:"page number (default: 1)"`
	PageSize     int      `json:"page_size,omitempty" jsonschema:"results per page (default: 50)"`
	Search       string   `json:"search,omitempty" jsonschema:"optional search query to filter ads by name"`
	OnlineStatus string   `json:"online_status,omitempty" jsonschema:"optional status filter: WARNING, INACTIVE, ACTIVE or DELETED"`
	CampaignIDs  []string `json:"campaign_ids,omitempty" jsonschema:"optional campaign IDs to restrict the ads"`
	AdSetIDs     []string `json:"ad_set_ids,omitempty" jsonschema:"optional ad set IDs to restrict the ads"`
}

// RegisterTools registra todas as ferramentas no servidor MCP
func (h *Handler) RegisterTools(server *sdk.Server) {
	sdk.AddTool(server, &sdk.Tool{
		Name: ToolGetAdAccounts,
		Description: "Get all ad accounts for the given organization IDs. " +
			"Returns ad account IDs and names grouped by organization, filtered by user access permissions.",
	}, h.HandleGetAdAccounts)

	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolGetCampaigns,
		Description: "Get campaigns for an ad account with optional name search and status filtering.",
	}, h.HandleGetCampaigns)

	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolGetTrackingEvents,
		Description: "Get all pixel and postback tracking events configured for an ad account.",
	}, h.HandleGetTrackingEvents)

	sdk.AddTool(server, &sdk.Tool{
		Name: ToolRunPerformanceReport,
		Description: "Run a synchronous performance report for campaigns, ad sets, or ads. " +
			"Generates immediate reports on auction and reservation ads data.",
	}, h.HandleRunPerformanceReport)

	sdk.AddTool(server, &sdk.Tool{
		Name: ToolGetCampaignSummary,
		Description: "Get a quick summary of recent campaign activity: active campaigns " +
			"and the look-back period. Use run_performance_report for detailed metrics.",
	}, h.HandleGetCampaignSummary)

	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolGetAdSets,
		Description: "Get the ad sets of a campaign.",
	}, h.HandleGetAdSets)

	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolGetAds,
		Description: "Get ads for an ad account, optionally restricted to campaigns or ad sets.",
	}, h.HandleGetAds)
}

func (h *Handler) HandleGetAdAccounts(ctx context.Context, _ *sdk.CallToolRequest, in GetAdAccountsInput) (*sdk.CallToolResult, domain.AdAccountsResult, error) {
	ctx, logger, start := begin(ctx, ToolGetAdAccounts)
	result, err := h.reporter.GetAdAccounts(ctx, in.OrgIDs)
	return respond(logger, start, result, err)
}

func (h *Handler) HandleGetCampaigns(ctx context.Context, _ *sdk.CallToolRequest, in GetCampaignsInput) (*sdk.CallToolResult, domain.CampaignsResult, error) {
	ctx, logger, start := begin(ctx, ToolGetCampaigns)
	result, err := h.reporter.ListCampaigns(ctx, reporting.CampaignsQuery{
		AdAccountID:  in.AdAccountID,
		PageNo:       in.PageNo,
		PageSize:     in.PageSize,
		Search:       in.Search,
		OnlineStatus: in.OnlineStatus,
	})
	return respond(logger, start, result, err)
}

func (h *Handler) HandleGetTrackingEvents(ctx context.Context, _ *sdk.CallToolRequest, in GetTrackingEventsInput) (*sdk.CallToolResult, domain.EventsResult, error) {
	ctx, logger, start := begin(ctx, ToolGetTrackingEvents)
	result, err := h.reporter.ListEvents(ctx, in.AdAccountID, in.OSFilter)
	return respond(logger, start, result, err)
}

func (h *Handler) HandleRunPerformanceReport(ctx context.Context, _ *sdk.CallToolRequest, in RunPerformanceReportInput) (*sdk.CallToolResult, domain.ReportResult, error) {
	ctx, logger, start := begin(ctx, ToolRunPerformanceReport)
	result, err := h.reporter.RunReport(ctx, reporting.ReportQuery{
		AdAccountID: in.AdAccountID,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
		Dimensions:  in.Dimensions,
		Metrics:     in.Metrics,
		Level:       in.Level,
	})
	return respond(logger, start, result, err)
}

func (h *Handler) HandleGetCampaignSummary(ctx context.Context, _ *sdk.CallToolRequest, in GetCampaignSummaryInput) (*sdk.CallToolResult, domain.CampaignSummaryResult, error) {
	ctx, logger, start := begin(ctx, ToolGetCampaignSummary)
	result, err := h.reporter.CampaignSummary(ctx, in.AdAccountID, in.Days)
	return respond(logger, start, result, err)
}

func (h *Handler) HandleGetAdSets(ctx context.Context, _ *sdk.CallToolRequest, in GetAdSetsInput) (*sdk.CallToolResult, domain.AdSetsResult, error) {
	ctx, logger, start := begin(ctx, ToolGetAdSets)
	result, err := h.reporter.ListAdSets(ctx, reporting.AdSetsQuery{
		CampaignID: in.CampaignID,
		PageNo:     in.PageNo,
		PageSize:   in.PageSize,
	})
	return respond(logger, start, result, err)
}

func (h *Handler) HandleGetAds(ctx context.Context, _ *sdk.CallToolRequest, in GetAdsInput) (*sdk.CallToolResult, domain.AdsResult, error) {
	ctx, logger, start := begin(ctx, ToolGetAds)
	result, err := h.reporter.ListAds(ctx, reporting.AdsQuery{
		AdAccountID:  in.AdAccountID,
		PageNo:       in.PageNo,
		PageSize:     in.PageSize,
		Search:       in.Search,
		OnlineStatus: in.OnlineStatus,
		CampaignIDs:  in.CampaignIDs,
		AdSetIDs:     in.AdSetIDs,
	})
	return respond(logger, start, result, err)
}

func begin(ctx context.Context, tool string) (context.Context, log.Logger, time.Time) {
	ctx, _ = log.EnsureCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("tool", tool)
	logger.Debug("mcp: executando ferramenta")
	return ctx, logger, time.Now()
}

// respond converte o resultado do use case na resposta da ferramenta. O
// conteúdo textual é o JSON indentado; o estruturado é preenchido pelo SDK.
func respond[Out any](logger log.Logger, start time.Time, out *Out, err error) (*sdk.CallToolResult, Out, error) {
	var zero Out
	logger = logger.WithField("duration_ms", time.Since(start).Milliseconds())

	if err != nil {
		logger.WithFields(log.Fields{
			"error":      err.Error(),
			"error_code": errorCode(err),
		}).Warn("mcp: ferramenta falhou")
		return nil, zero, toolError(err)
	}

	text, err := utils.PrettyJson(out)
	if err != nil {
		logger.WithError(err).Error("mcp: erro ao serializar resultado")
		return nil, zero, err
	}

	logger.Info("mcp: ferramenta executada")

	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
	}, *out, nil
}
