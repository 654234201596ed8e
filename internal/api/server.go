package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/api/handler"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/api/handler/router"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/middleware"
	"golang.org/x/time/rate"
)

const (
	shutdownTimeout  = 15 * time.Second
	rateLimiterTTL   = 10 * time.Minute
	readHeaderTimeout = 2 * time.Second
)

type Server struct {
	httpServer *http.Server
}

// New monta o servidor HTTP do transporte streamable. authenticator pode ser
// nil, e nesse caso /mcp fica sem autenticação.
func New(
	cfg *config.Config,
	mcpServer *sdk.Server,
	authenticator authenticating.Authenticator,
	version string,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, mcpServer, authenticator, version),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	return srv, nil
}

// NewHandler devolve o router com a cadeia de middlewares aplicada
func NewHandler(
	cfg *config.Config,
	mcpServer *sdk.Server,
	authenticator authenticating.Authenticator,
	version string,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(version)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.MCP(mcpServer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	if authenticator != nil {
		middlewares = append(middlewares, middleware.AuthMiddleware(authenticator))
	} else {
		logrus.Warn("AUTH_SECRET não configurado: transporte HTTP sem autenticação")
	}

	limiterStore := middleware.NewRateLimiterStore(rate.Limit(cfg.HTTPLimits.RateLimit), cfg.HTTPLimits.Burst, rateLimiterTTL)
	middlewares = append(middlewares, middleware.RateLimitMiddleware(limiterStore))

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
			"path":    handler.MCPPath,
		}).Info("Servidor MCP HTTP iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			serveErr <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	// Aguardar pelo sinal, pelo cancelamento do contexto ou por falha ao escutar
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
