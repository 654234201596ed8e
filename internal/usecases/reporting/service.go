package reporting

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak"
	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/newsbreakclient"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/utils"
	"k8s.io/utils/clock"
)

const (
	DefaultPageNo      = 1
	DefaultPageSize    = 50
	DefaultSummaryDays = 7

	summaryPageSize     = 100
	summaryTopCampaigns = 10
	summaryNote         = "Use run_performance_report for detailed metrics and conversions"
)

type CampaignsQuery struct {
	AdAccountID  string
	PageNo       int
	PageSize     int
	Search       string
	OnlineStatus string
}

type ReportQuery struct {
	AdAccountID string
	DateFrom    string
	DateTo      string
	Dimensions  []string
	Metrics     []string
	// Level é devolvido na resposta mas não altera a requisição
	Level string
}

type AdSetsQuery struct {
	CampaignID string
	PageNo     int
	PageSize   int
}

type AdsQuery struct {
	AdAccountID  string
	PageNo       int
	PageSize     int
	Search       string
	OnlineStatus string
	CampaignIDs  []string
	AdSetIDs     []string
}

type Reporter interface {
	GetAdAccounts(ctx context.Context, orgIDs []string) (*domain.AdAccountsResult, error)
	GetOrganization(ctx context.Context, orgID string) (*domain.OrganizationResource, error)
	ListCampaigns(ctx context.Context, query CampaignsQuery) (*domain.CampaignsResult, error)
	ActiveCampaigns(ctx context.Context, adAccountID string) (*domain.ActiveCampaignsResource, error)
	ListEvents(ctx context.Context, adAccountID string, os *string) (*domain.EventsResult, error)
	TrackingEvents(ctx context.Context, adAccountID string) (*domain.TrackingEventsResource, error)
	RunReport(ctx context.Context, query ReportQuery) (*domain.ReportResult, error)
	CampaignSummary(ctx context.Context, adAccountID string, days int) (*domain.CampaignSummaryResult, error)
	ListAdSets(ctx context.Context, query AdSetsQuery) (*domain.AdSetsResult, error)
	ListAds(ctx context.Context, query AdsQuery) (*domain.AdsResult, error)
}

type Service struct {
	integrator newsbreak.NewsBreakIntegrator
	clock      clock.PassiveClock
}

func NewService(integrator newsbreak.NewsBreakIntegrator, clk clock.PassiveClock) Reporter {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Service{
		integrator: integrator,
		clock:      clk,
	}
}

func (s *Service) GetAdAccounts(ctx context.Context, orgIDs []string) (*domain.AdAccountsResult, error) {
	orgIDs = compact(orgIDs)
	if len(orgIDs) == 0 {
		return nil, invalidArgument("informe ao menos um org_id")
	}

	orgs, err := s.integrator.GetAdAccounts(ctx, orgIDs)
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.AdAccountsResult{
		Organizations: lo.Map(orgs, func(org newsbreakdomain.Organization, _ int) domain.Organization {
			return toOrganization(org)
		}),
	}, nil
}

func (s *Service) GetOrganization(ctx context.Context, orgID string) (*domain.OrganizationResource, error) {
	result, err := s.GetAdAccounts(ctx, []string{orgID})
	if err != nil {
		return nil, err
	}

	if len(result.Organizations) == 0 {
		return nil, NewReportingError(ErrNotFound, "", "nenhuma organização encontrada para "+orgID)
	}

	return &domain.OrganizationResource{Organization: result.Organizations[0]}, nil
}

func (s *Service) ListCampaigns(ctx context.Context, query CampaignsQuery) (*domain.CampaignsResult, error) {
	if err := requireID("ad_account_id", query.AdAccountID); err != nil {
		return nil, err
	}
	pageNo, pageSize, err := paging(query.PageNo, query.PageSize)
	if err != nil {
		return nil, err
	}

	data, err := s.integrator.GetCampaigns(ctx, newsbreakclient.CampaignsParams{
		AdAccountID:  query.AdAccountID,
		PageNo:       pageNo,
		PageSize:     pageSize,
		Search:       query.Search,
		OnlineStatus: strings.ToUpper(query.OnlineStatus),
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.CampaignsResult{
		Campaigns:  lo.Map(data.List, func(c newsbreakdomain.Campaign, _ int) domain.Campaign { return toCampaign(c) }),
		Pagination: toPagination(data.Pagination),
	}, nil
}

func (s *Service) ActiveCampaigns(ctx context.Context, adAccountID string) (*domain.ActiveCampaignsResource, error) {
	campaigns, err := s.activeCampaigns(ctx, adAccountID)
	if err != nil {
		return nil, err
	}

	return &domain.ActiveCampaignsResource{
		Campaigns: lo.Map(campaigns, func(c newsbreakdomain.Campaign, _ int) domain.CampaignBrief { return toCampaignBrief(c) }),
	}, nil
}

func (s *Service) ListEvents(ctx context.Context, adAccountID string, os *string) (*domain.EventsResult, error) {
	if err := requireID("ad_account_id", adAccountID); err != nil {
		return nil, err
	}
	if os != nil {
		os = lo.ToPtr(strings.ToUpper(*os))
	}

	events, err := s.integrator.GetEvents(ctx, adAccountID, os)
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.EventsResult{
		Events: lo.Map(events, func(e newsbreakdomain.Event, _ int) domain.Event { return toEvent(e) }),
	}, nil
}

func (s *Service) TrackingEvents(ctx context.Context, adAccountID string) (*domain.TrackingEventsResource, error) {
	result, err := s.ListEvents(ctx, adAccountID, nil)
	if err != nil {
		return nil, err
	}

	return &domain.TrackingEventsResource{
		Events: lo.Map(result.Events, func(e domain.Event, _ int) domain.EventBrief {
			return domain.EventBrief{
				ID:            e.ID,
				Name:          e.Name,
				Type:          e.Type,
				OS:            e.OS,
				MobilePartner: e.MobilePartner,
			}
		}),
	}, nil
}

func (s *Service) RunReport(ctx context.Context, query ReportQuery) (*domain.ReportResult, error) {
	if err := requireID("ad_account_id", query.AdAccountID); err != nil {
		return nil, err
	}

	// Só o formato é validado aqui. A ordem do intervalo fica a cargo da API.
	if _, err := utils.ParseDate(query.DateFrom); err != nil {
		return nil, invalidArgument("date_from: formato inválido, use YYYY-MM-DD (ex.: 2024-01-01)")
	}
	if _, err := utils.ParseDate(query.DateTo); err != nil {
		return nil, invalidArgument("date_to: formato inválido, use YYYY-MM-DD (ex.: 2024-01-31)")
	}

	params := newsbreakclient.ReportParams{
		AdAccountID: query.AdAccountID,
		DateFrom:    query.DateFrom,
		DateTo:      query.DateTo,
		Dimensions:  query.Dimensions,
		Metrics:     query.Metrics,
	}

	data, err := s.integrator.RunReport(ctx, params)
	if err != nil {
		return nil, translateError(err)
	}

	rows := lo.Map(data.Rows, func(row newsbreakdomain.ReportRow, _ int) map[string]any {
		return map[string]any(row)
	})

	total := len(rows)
	if data.Total != nil && *data.Total > 0 {
		total = *data.Total
	}

	var level *string
	if query.Level != "" {
		level = lo.ToPtr(strings.ToLower(query.Level))
	}

	return &domain.ReportResult{
		Report: domain.Report{
			AdAccountID: query.AdAccountID,
			DateFrom:    query.DateFrom,
			DateTo:      query.DateTo,
			Level:       level,
			Dimensions:  newsbreakclient.MapDimensions(query.Dimensions),
			Metrics:     newsbreakclient.MapMetrics(query.Metrics),
			Rows:        rows,
			Total:       total,
		},
	}, nil
}

func (s *Service) CampaignSummary(ctx context.Context, adAccountID string, days int) (*domain.CampaignSummaryResult, error) {
	if days == 0 {
		days = DefaultSummaryDays
	}
	if days < 0 {
		return nil, invalidArgument("days deve ser positivo, recebido %d", days)
	}

	campaigns, err := s.activeCampaigns(ctx, adAccountID)
	if err != nil {
		return nil, err
	}

	from, to := utils.LookbackRange(s.clock.Now(), days)

	totalBudget := lo.SumBy(campaigns, func(c newsbreakdomain.Campaign) float64 {
		return lo.FromPtr(c.Budget)
	})

	top := campaigns
	if len(top) > summaryTopCampaigns {
		top = top[:summaryTopCampaigns]
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id":    adAccountID,
		"active_campaigns": len(campaigns),
		"days":             days,
	}).Debug("reporting: resumo de campanhas gerado")

	return &domain.CampaignSummaryResult{
		Summary: domain.CampaignSummary{
			AdAccountID: adAccountID,
			Period: domain.Period{
				From: from,
				To:   to,
				Days: days,
			},
			ActiveCampaigns: domain.ActiveCampaigns{
				Count:       len(campaigns),
				TotalBudget: utils.RoundWithTwoDecimalPlace(totalBudget),
				Campaigns:   lo.Map(top, func(c newsbreakdomain.Campaign, _ int) domain.CampaignBrief { return toCampaignBrief(c) }),
			},
		},
		Note: summaryNote,
	}, nil
}

func (s *Service) ListAdSets(ctx context.Context, query AdSetsQuery) (*domain.AdSetsResult, error) {
	if err := requireID("campaign_id", query.CampaignID); err != nil {
		return nil, err
	}
	pageNo, pageSize, err := paging(query.PageNo, query.PageSize)
	if err != nil {
		return nil, err
	}

	data, err := s.integrator.GetAdSets(ctx, newsbreakclient.AdSetsParams{
		CampaignID: query.CampaignID,
		PageNo:     pageNo,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.AdSetsResult{
		AdSets: lo.Map(data.List, func(a newsbreakdomain.AdSet, _ int) domain.AdSet {
			return domain.AdSet{
				ID:         a.ID.String(),
				Name:       a.Name,
				CampaignID: a.CampaignID.String(),
				Status:     a.Status,
				Budget:     a.Budget,
				CreateTime: a.CreateTime,
				UpdateTime: a.UpdateTime,
			}
		}),
		Pagination: toPagination(data.Pagination),
	}, nil
}

func (s *Service) ListAds(ctx context.Context, query AdsQuery) (*domain.AdsResult, error) {
	if err := requireID("ad_account_id", query.AdAccountID); err != nil {
		return nil, err
	}
	pageNo, pageSize, err := paging(query.PageNo, query.PageSize)
	if err != nil {
		return nil, err
	}

	data, err := s.integrator.GetAds(ctx, newsbreakclient.AdsParams{
		AdAccountID:  query.AdAccountID,
		PageNo:       pageNo,
		PageSize:     pageSize,
		Search:       query.Search,
		OnlineStatus: strings.ToUpper(query.OnlineStatus),
		CampaignIDs:  compact(query.CampaignIDs),
		AdSetIDs:     compact(query.AdSetIDs),
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.AdsResult{
		Ads: lo.Map(data.List, func(a newsbreakdomain.Ad, _ int) domain.Ad {
			return domain.Ad{
				ID:           a.ID.String(),
				Name:         a.Name,
				AdSetID:      a.AdSetID.String(),
				Status:       a.Status,
				CreativeType: a.CreativeType,
				CreateTime:   a.CreateTime,
				UpdateTime:   a.UpdateTime,
				Extra:        a.Extra,
			}
		}),
		Pagination: toPagination(data.Pagination),
	}, nil
}

func (s *Service) activeCampaigns(ctx context.Context, adAccountID string) ([]newsbreakdomain.Campaign, error) {
	if err := requireID("ad_account_id", adAccountID); err != nil {
		return nil, err
	}

	data, err := s.integrator.GetCampaigns(ctx, newsbreakclient.CampaignsParams{
		AdAccountID:  adAccountID,
		PageNo:       DefaultPageNo,
		PageSize:     summaryPageSize,
		OnlineStatus: newsbreakdomain.OnlineStatusActive,
	})
	if err != nil {
		return nil, translateError(err)
	}

	return data.List, nil
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidArgument("%s é obrigatório", name)
	}
	return nil
}

// paging aplica os valores padrão (1/50) e rejeita valores negativos
func paging(pageNo, pageSize int) (int, int, error) {
	if pageNo < 0 || pageSize < 0 {
		return 0, 0, invalidArgument("page_no e page_size devem ser positivos")
	}
	if pageNo == 0 {
		pageNo = DefaultPageNo
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return pageNo, pageSize, nil
}

func compact(values []string) []string {
	return lo.Compact(lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	}))
}

func toOrganization(org newsbreakdomain.Organization) domain.Organization {
	return domain.Organization{
		ID:   org.ID.String(),
		Name: org.Name,
		AdAccounts: lo.Map(org.AdAccounts, func(acc newsbreakdomain.AdAccount, _ int) domain.AdAccount {
			return domain.AdAccount{
				ID:         acc.ID.String(),
				Name:       acc.Name,
				CreateTime: acc.CreateTime,
			}
		}),
	}
}

func toCampaign(c newsbreakdomain.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:           c.ID.String(),
		Name:         c.Name,
		OrgID:        c.OrgID.String(),
		AdAccountID:  c.AdAccountID.String(),
		Objective:    c.Objective,
		Budget:       c.Budget,
		Status:       c.Status,
		OnlineStatus: c.OnlineStatus,
		CreateTime:   c.CreateTime,
		UpdateTime:   c.UpdateTime,
	}
}

func toCampaignBrief(c newsbreakdomain.Campaign) domain.CampaignBrief {
	return domain.CampaignBrief{
		ID:        c.ID.String(),
		Name:      c.Name,
		Objective: c.Objective,
		Budget:    c.Budget,
		Status:    c.Status,
	}
}

func toEvent(e newsbreakdomain.Event) domain.Event {
	return domain.Event{
		ID:                    e.ID.String(),
		Name:                  e.Name,
		OrgID:                 e.OrgID.String(),
		Type:                  e.Type,
		EventType:             e.EventType,
		URL:                   e.URL,
		OS:                    e.OS,
		AppEvent:              e.AppEvent,
		MobilePartner:         e.MobilePartner,
		ClickTrackingURL:      e.ClickTrackingURL,
		ImpressionTrackingURL: e.ImpressionTrackingURL,
		EventParams:           e.EventParams,
		Version:               e.Version,
		CreateTime:            e.CreateTime,
		UpdateTime:            e.UpdateTime,
	}
}

func toPagination(p newsbreakdomain.Pagination) domain.Pagination {
	return domain.Pagination{
		PageNo:   p.PageNo,
		PageSize: p.PageSize,
		Total:    p.Total,
		HasNext:  p.HasNext,
	}
}
