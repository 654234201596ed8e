package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/newsbreak-ads-mcp/pkg/apiErrors"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimiterStore guarda um limitador por cliente. Entradas sem uso por mais
// de ttl são descartadas.
type RateLimiterStore struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiterStore(limit rate.Limit, burst int, ttl time.Duration) *RateLimiterStore {
	return &RateLimiterStore{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
	}
}

func (s *RateLimiterStore) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.clients[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	for k, v := range s.clients {
		if now.Sub(v.lastSeen) > s.ttl {
			delete(s.clients, k)
		}
	}

	limiter := rate.NewLimiter(s.limit, s.burst)
	s.clients[key] = &clientLimiter{limiter: limiter, lastSeen: now}
	return limiter
}

// RateLimitMiddleware limita requisições por cliente autenticado ou, sem
// autenticação, por IP.
func RateLimitMiddleware(store *RateLimiterStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if !store.getLimiter(key).Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":   r.URL.Path,
					"client": key,
				}).Warn("Limite de requisições excedido")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Rate limit exceeded", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if claims, ok := ClientFromContext(r.Context()); ok && claims.ClientName != "" {
		return "client:" + claims.ClientName
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
