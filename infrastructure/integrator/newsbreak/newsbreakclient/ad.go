package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const pathAds = "/ad/getList"

type AdsParams struct {
	AdAccountID  string
	PageNo       int
	PageSize     int
	Search       string
	OnlineStatus string
	CampaignIDs  []string
	AdSetIDs     []string
}

func (c *NewsBreakClient) GetAds(ctx context.Context, params AdsParams) (*newsbreakdomain.AdsData, error) {
	if params.AdAccountID == "" {
		return nil, fmt.Errorf("%w: ad account id é obrigatório", ErrInvalidParameter)
	}

	query := url.Values{}
	query.Set("adAccountId", params.AdAccountID)
	query.Set("pageNo", strconv.Itoa(params.PageNo))
	query.Set("pageSize", strconv.Itoa(params.PageSize))
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.OnlineStatus != "" {
		query.Set("onlineStatus", params.OnlineStatus)
	}
	for _, id := range params.CampaignIDs {
		query.Add("campaignIds", id)
	}
	for _, id := range params.AdSetIDs {
		query.Add("adSetIds", id)
	}

	var data newsbreakdomain.AdsData
	err := c.do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   pathAds,
		Query:  query,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}
