package mcp

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/utils"
	"github.com/yosida95/uritemplate/v3"
)

const resourceMIMEType = "application/json"

var (
	adAccountsTemplate      = uritemplate.MustNew("accounts://{org_id}/ad-accounts")
	activeCampaignsTemplate = uritemplate.MustNew("campaigns://{ad_account_id}/active")
	trackingEventsTemplate  = uritemplate.MustNew("events://{ad_account_id}/tracking")
)

// RegisterResources registra os templates de recurso somente leitura
func (h *Handler) RegisterResources(server *sdk.Server) {
	server.AddResourceTemplate(&sdk.ResourceTemplate{
		Name:        "org_ad_accounts",
		URITemplate: adAccountsTemplate.Raw(),
		Description: "Ad accounts of a single organization",
		MIMEType:    resourceMIMEType,
	}, h.ReadAdAccounts)

	server.AddResourceTemplate(&sdk.ResourceTemplate{
		Name:        "active_campaigns",
		URITemplate: activeCampaignsTemplate.Raw(),
		Description: "Active campaigns of an ad account",
		MIMEType:    resourceMIMEType,
	}, h.ReadActiveCampaigns)

	server.AddResourceTemplate(&sdk.ResourceTemplate{
		Name:        "tracking_events",
		URITemplate: trackingEventsTemplate.Raw(),
		Description: "Tracking events configured for an ad account",
		MIMEType:    resourceMIMEType,
	}, h.ReadTrackingEvents)
}

func (h *Handler) ReadAdAccounts(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	uri := req.Params.URI
	orgID, err := variable(adAccountsTemplate, uri, "org_id")
	if err != nil {
		return nil, err
	}

	ctx, _ = log.EnsureCorrelationID(ctx)
	result, err := h.reporter.GetOrganization(ctx, orgID)
	return resourceResult(ctx, uri, result, err)
}

func (h *Handler) ReadActiveCampaigns(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	uri := req.Params.URI
	adAccountID, err := variable(activeCampaignsTemplate, uri, "ad_account_id")
	if err != nil {
		return nil, err
	}

	ctx, _ = log.EnsureCorrelationID(ctx)
	result, err := h.reporter.ActiveCampaigns(ctx, adAccountID)
	return resourceResult(ctx, uri, result, err)
}

func (h *Handler) ReadTrackingEvents(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	uri := req.Params.URI
	adAccountID, err := variable(trackingEventsTemplate, uri, "ad_account_id")
	if err != nil {
		return nil, err
	}

	ctx, _ = log.EnsureCorrelationID(ctx)
	result, err := h.reporter.TrackingEvents(ctx, adAccountID)
	return resourceResult(ctx, uri, result, err)
}

// variable extrai uma variável do URI. URIs que não casam com o template são
// tratados como recurso inexistente.
func variable(tmpl *uritemplate.Template, uri, name string) (string, error) {
	values := tmpl.Match(uri)
	if values == nil {
		return "", sdk.ResourceNotFoundError(uri)
	}

	value := values.Get(name).String()
	if value == "" {
		return "", sdk.ResourceNotFoundError(uri)
	}
	return value, nil
}

func resourceResult(ctx context.Context, uri string, result any, err error) (*sdk.ReadResourceResult, error) {
	logger := log.ForContext(ctx).WithField("resource", uri)

	if err != nil {
		logger.WithFields(log.Fields{
			"error":      err.Error(),
			"error_code": errorCode(err),
		}).Warn("mcp: falha ao ler recurso")

		if errors.Is(err, reporting.ErrNotFound) {
			return nil, sdk.ResourceNotFoundError(uri)
		}
		return nil, toolError(err)
	}

	text, err := utils.PrettyJson(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar recurso %s: %w", uri, err)
	}

	logger.Debug("mcp: recurso lido")

	return &sdk.ReadResourceResult{
		Contents: []*sdk.ResourceContents{{
			URI:      uri,
			MIMEType: resourceMIMEType,
			Text:     text,
		}},
	}, nil
}
