package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const pathAdAccounts = "/ad-account/getGroupsByOrgIds"

// GetAdAccounts lista as organizações e suas contas de anúncio
func (c *NewsBreakClient) GetAdAccounts(ctx context.Context, orgIDs []string) (*newsbreakdomain.AdAccountsData, error) {
	if len(orgIDs) == 0 {
		return nil, fmt.Errorf("%w: ao menos um org id é obrigatório", ErrInvalidParameter)
	}

	query := url.Values{}
	for _, id := range orgIDs {
		query.Add("orgIds", id)
	}

	var data newsbreakdomain.AdAccountsData
	err := c.do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   pathAdAccounts,
		Query:  query,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}
