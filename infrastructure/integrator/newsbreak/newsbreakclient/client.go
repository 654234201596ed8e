package newsbreakclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	newsbreakdomain "github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"k8s.io/utils/clock"
)

const (
	DefaultBaseURL            = "https://business.newsbreak.com/business-api/v1"
	DefaultTimeout            = 30 * time.Second
	DefaultRateLimitCapacity  = 10
	DefaultRateLimitPerSecond = 10.0

	maxLoggedBodyLength = 500
)

type Client interface {
	GetAdAccounts(ctx context.Context, orgIDs []string) (*newsbreakdomain.AdAccountsData, error)
	GetCampaigns(ctx context.Context, params CampaignsParams) (*newsbreakdomain.CampaignsData, error)
	GetEvents(ctx context.Context, adAccountID string, os *string) (*newsbreakdomain.EventsData, error)
	RunSynchronousReport(ctx context.Context, params ReportParams) (*newsbreakdomain.ReportData, error)
	GetAdSets(ctx context.Context, params AdSetsParams) (*newsbreakdomain.AdSetsData, error)
	GetAds(ctx context.Context, params AdsParams) (*newsbreakdomain.AdsData, error)
}

// NewsBreakClient é o único ponto de contato com a Business API. O token é
// fixado na construção e nunca sai do cliente.
type NewsBreakClient struct {
	accessToken string
	redactor    redactor
	limiter     *RateLimiter
	executor    *RetryingExecutor
	clock       clock.Clock
}

type options struct {
	accessToken string
	httpClient  *http.Client
	clock       clock.Clock
	sender      Sender
}

type Option func(*options)

// WithAccessToken informa o token explicitamente, com precedência sobre a configuração
func WithAccessToken(token string) Option {
	return func(o *options) {
		o.accessToken = token
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// WithSender substitui o transporte HTTP
func WithSender(sender Sender) Option {
	return func(o *options) {
		o.sender = sender
	}
}

func NewClient(cfg *config.Config, opts ...Option) (Client, error) {
	return newNewsBreakClient(cfg, opts...)
}

func newNewsBreakClient(cfg *config.Config, opts ...Option) (*NewsBreakClient, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	nb := config.NewsBreak{}
	if cfg != nil {
		nb = cfg.NewsBreak
	}

	token := strings.TrimSpace(o.accessToken)
	if token == "" {
		token = strings.TrimSpace(nb.AccessToken)
	}
	if token == "" {
		return nil, ErrMissingAccessToken
	}

	if o.clock == nil {
		o.clock = clock.RealClock{}
	}

	capacity := nb.RateLimitCapacity
	if capacity == 0 {
		capacity = DefaultRateLimitCapacity
	}
	perSecond := nb.RateLimitPerSecond
	if perSecond == 0 {
		perSecond = DefaultRateLimitPerSecond
	}
	limiter, err := NewRateLimiter(capacity, perSecond, o.clock)
	if err != nil {
		return nil, err
	}

	if o.sender == nil {
		if o.httpClient == nil {
			timeout := nb.Timeout
			if timeout <= 0 {
				timeout = DefaultTimeout
			}
			o.httpClient = &http.Client{Timeout: timeout}
		}

		baseURL := nb.BaseURL
		if baseURL == "" {
			baseURL = DefaultBaseURL
		}
		o.sender = newHTTPSender(baseURL, o.httpClient)
	}

	maxAttempts := nb.RetryMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	executor := NewRetryingExecutor(
		o.sender,
		NewResponseInterpreter(),
		maxAttempts,
		DefaultBackoff(nb.RetryBackoffBase, maxAttempts),
		o.clock,
	)

	return &NewsBreakClient{
		accessToken: token,
		redactor:    redactor(token),
		limiter:     limiter,
		executor:    executor,
		clock:       o.clock,
	}, nil
}

func (c *NewsBreakClient) headers() http.Header {
	h := http.Header{}
	h.Set(headerAccessToken, c.accessToken)
	h.Set(headerContentType, contentTypeJSON)
	return h
}

// do passa pelo rate limiter uma vez por operação e delega as tentativas ao executor.
// Em caso de sucesso o campo data já foi decodificado em target.
func (c *NewsBreakClient) do(ctx context.Context, spec RequestSpec, target any) error {
	spec.Header = c.headers()
	endpoint := spec.Endpoint()

	start := c.clock.Now()
	if err := c.limiter.Acquire(ctx); err != nil {
		return fmt.Errorf("erro ao aguardar rate limiter para %s: %w", endpoint, err)
	}
	RateLimiterWait.Observe(msSince(start, c.clock.Now()))

	outcome := c.executor.Execute(ctx, spec, target)
	if outcome.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempts": outcome.Attempts,
		}).Debug("newsbreak: requisição concluída")
		return nil
	}

	fields := logrus.Fields{
		"endpoint": endpoint,
		"attempts": outcome.Attempts,
		"status":   outcome.HTTPStatus,
		"outcome":  outcome.Kind.String(),
	}
	if outcome.Kind == OutcomeSchemaMismatch {
		fields["violations"] = outcome.Violations
		fields["raw_body"] = truncate(string(c.redactor.Bytes(outcome.RawBody)), maxLoggedBodyLength)
	}
	logrus.WithFields(fields).Error("newsbreak: falha na requisição")

	return toError(endpoint, outcome, c.redactor)
}
