package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const pathCampaigns = "/campaign/getList"

type CampaignsParams struct {
	AdAccountID  string
	PageNo       int
	PageSize     int
	Search       string
	OnlineStatus string
}

func (c *NewsBreakClient) GetCampaigns(ctx context.Context, params CampaignsParams) (*newsbreakdomain.CampaignsData, error) {
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

	var data newsbreakdomain.CampaignsData
	err := c.do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   pathCampaigns,
		Query:  query,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}
