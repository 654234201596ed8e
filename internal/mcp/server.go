package mcp

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
)

const (
	ServerName = "newsbreak-ads-mcp"

	instructions = "MCP server for NewsBreak Business API with focus on analytics and reporting. " +
		"Provides tools to query campaigns, events, and generate reports for ad performance analysis."
)

// Handler expõe o Reporter como ferramentas e recursos MCP
type Handler struct {
	reporter reporting.Reporter
}

func NewHandler(reporter reporting.Reporter) *Handler {
	return &Handler{reporter: reporter}
}

// NewServer cria o servidor MCP com todas as ferramentas e recursos registrados
func NewServer(version string, reporter reporting.Reporter) *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    ServerName,
		Version: version,
	}, &sdk.ServerOptions{
		Instructions: instructions,
	})

	handler := NewHandler(reporter)
	handler.RegisterTools(server)
	handler.RegisterResources(server)

	return server
}
