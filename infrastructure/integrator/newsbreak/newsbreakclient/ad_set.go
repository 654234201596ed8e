package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const pathAdSets = "/ad-set/getList"

type AdSetsParams struct {
	CampaignID string
	PageNo     int
	PageSize   int
}

func (c *NewsBreakClient) GetAdSets(ctx context.Context, params AdSetsParams) (*newsbreakdomain.AdSetsData, error) {
	if params.CampaignID == "" {
		return nil, fmt.Errorf("%w: campaign id é obrigatório", ErrInvalidParameter)
	}

	query := url.Values{}
	query.Set("campaignId", params.CampaignID)
	query.Set("pageNo", strconv.Itoa(params.PageNo))
	query.Set("pageSize", strconv.Itoa(params.PageSize))

	var data newsbreakdomain.AdSetsData
	err := c.do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   pathAdSets,
		Query:  query,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}
