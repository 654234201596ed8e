package newsbreakclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
)

const pathEvents = "/event/getList/"

// GetEvents lista os eventos de rastreamento da conta. os nil não filtra;
// string vazia filtra eventos web.
func (c *NewsBreakClient) GetEvents(ctx context.Context, adAccountID string, os *string) (*newsbreakdomain.EventsData, error) {
	if adAccountID == "" {
		return nil, fmt.Errorf("%w: ad account id é obrigatório", ErrInvalidParameter)
	}

	query := url.Values{}
	if os != nil {
		query.Set("os", *os)
	}

	var data newsbreakdomain.EventsData
	err := c.do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   pathEvents + url.PathEscape(adAccountID),
		Query:  query,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}
