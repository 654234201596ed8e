package newsbreak

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/sirupsen/logrus"
	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/newsbreakclient"
)

type NewsBreakIntegrator interface {
	GetAdAccounts(ctx context.Context, orgIDs []string) ([]newsbreakdomain.Organization, error)
	GetCampaigns(ctx context.Context, params newsbreakclient.CampaignsParams) (*newsbreakdomain.CampaignsData, error)
	GetEvents(ctx context.Context, adAccountID string, os *string) ([]newsbreakdomain.Event, error)
	RunReport(ctx context.Context, params newsbreakclient.ReportParams) (*newsbreakdomain.ReportData, error)
	GetAdSets(ctx context.Context, params newsbreakclient.AdSetsParams) (*newsbreakdomain.AdSetsData, error)
	GetAds(ctx context.Context, params newsbreakclient.AdsParams) (*newsbreakdomain.AdsData, error)
}

type NewsBreakService struct {
	Client newsbreakclient.Client
}

func New(client newsbreakclient.Client) NewsBreakIntegrator {
	return &NewsBreakService{
		Client: client,
	}
}

func (s *NewsBreakService) GetAdAccounts(ctx context.Context, orgIDs []string) ([]newsbreakdomain.Organization, error) {
	resp, err := s.Client.GetAdAccounts(ctx, orgIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"org_ids": orgIDs,
			"error":   err.Error(),
		}).Error("newsbreak: failed to get ad accounts from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"org_ids":       orgIDs,
		"organizations": len(resp.List),
	}).Debug("newsbreak: successfully retrieved ad accounts")

	return resp.List, nil
}

func (s *NewsBreakService) GetCampaigns(ctx context.Context, params newsbreakclient.CampaignsParams) (*newsbreakdomain.CampaignsData, error) {
	resp, err := s.Client.GetCampaigns(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": params.AdAccountID,
			"page_no":       params.PageNo,
			"error":         err.Error(),
		}).Error("newsbreak: failed to get campaigns from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": params.AdAccountID,
		"campaigns":     len(resp.List),
		"total":         resp.Total,
	}).Debug("newsbreak: successfully retrieved campaigns")

	return resp, nil
}

func (s *NewsBreakService) GetEvents(ctx context.Context, adAccountID string, os *string) ([]newsbreakdomain.Event, error) {
	resp, err := s.Client.GetEvents(ctx, adAccountID, os)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"error":         err.Error(),
		}).Error("newsbreak: failed to get tracking events from API")
		return nil, err
	}

	return resp.List, nil
}

func (s *NewsBreakService) RunReport(ctx context.Context, params newsbreakclient.ReportParams) (*newsbreakdomain.ReportData, error) {
	resp, err := s.Client.RunSynchronousReport(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": params.AdAccountID,
			"start_date":    params.DateFrom,
			"end_date":      params.DateTo,
			"error":         err.Error(),
		}).Error("newsbreak: failed to run report")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": params.AdAccountID,
		"rows":          len(resp.Rows),
	}).Debug("newsbreak: report finished")

	return resp, nil
}

func (s *NewsBreakService) GetAdSets(ctx context.Context, params newsbreakclient.AdSetsParams) (*newsbreakdomain.AdSetsData, error) {
	resp, err := s.Client.GetAdSets(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": params.CampaignID,
			"error":       err.Error(),
		}).Error("newsbreak: failed to get ad sets from API")
		return nil, err
	}

	return resp, nil
}

func (s *NewsBreakService) GetAds(ctx context.Context, params newsbreakclient.AdsParams) (*newsbreakdomain.AdsData, error) {
	resp, err := s.Client.GetAds(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": params.AdAccountID,
			"error":         err.Error(),
		}).Error("newsbreak: failed to get ads from API")
		return nil, err
	}

	return resp, nil
}
