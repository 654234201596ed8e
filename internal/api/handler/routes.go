package handler

import (
	"net/http"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/api/handler/router"
)

const MCPPath = "/mcp"

func Healthcheck(version string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Methods: []string{http.MethodGet},
			Handler: HealthcheckHandler(version),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Methods: []string{http.MethodGet},
			Handler: promhttp.Handler(),
		},
	}
}

// MCP expõe o servidor pelo transporte streamable HTTP. GET abre o stream de
// notificações, POST envia mensagens e DELETE encerra a sessão.
func MCP(server *sdk.Server) []router.Route {
	streamable := sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil)

	return []router.Route{
		{
			Path:    MCPPath,
			Methods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			Handler: streamable,
		},
	}
}
