package newsbreakclient

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// APILatency latência de cada tentativa contra a API da NewsBreak, em ms
	APILatency = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "newsbreak_api_latency",
			Help: "newsbreak api attempt latency in ms",
		},
		[]string{"endpoint", "outcome"},
	)

	// APIAttempts quantidade de tentativas por endpoint e resultado
	APIAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsbreak_api_attempts_total",
			Help: "newsbreak api attempts by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// RateLimiterWait tempo aguardando token do rate limiter, em ms
	RateLimiterWait = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name: "newsbreak_rate_limiter_wait",
			Help: "time spent waiting for a rate limiter token in ms",
		},
	)
)

var registerOnce sync.Once

// RegisterPrometheus registra as métricas do cliente no registry padrão
func RegisterPrometheus() {
	registerOnce.Do(func() {
		prometheus.MustRegister(APILatency)
		prometheus.MustRegister(APIAttempts)
		prometheus.MustRegister(RateLimiterWait)
	})
}

func msSince(start, now time.Time) float64 {
	return float64(now.Sub(start) / time.Millisecond)
}
