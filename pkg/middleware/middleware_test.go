package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"golang.org/x/time/rate"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware(t *testing.T) {
	auth, err := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})
	require.NoError(t, err)

	token, err := auth.GenerateToken("cli", time.Hour)
	require.NoError(t, err)

	var gotClient string
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClientFromContext(r.Context()); ok {
			gotClient = claims.ClientName
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedClient string
	}{
		{name: "Rota pública sem token", path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Métricas sem token", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "MCP sem header", path: "/mcp", expectedStatus: http.StatusUnauthorized},
		{name: "Header sem Bearer", path: "/mcp", header: token, expectedStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/mcp", header: "Bearer abc", expectedStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/mcp", header: "Bearer " + token, expectedStatus: http.StatusOK, expectedClient: "cli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClient = ""
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedClient, gotClient)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"https://app.exemplo.com"})(http.HandlerFunc(okHandler))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.Header.Set("Origin", "https://app.exemplo.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.exemplo.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Mcp-Session-Id")
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.Header.Set("Origin", "https://malicioso.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
		req.Header.Set("Origin", "https://app.exemplo.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		req.Header.Set("Origin", "https://qualquer.com")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

		assert.Equal(t, "https://qualquer.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	store := NewRateLimiterStore(rate.Every(time.Hour), 2, time.Minute)
	handler := RateLimitMiddleware(store)(http.HandlerFunc(okHandler))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5678"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.0.1:4000"
	assert.Equal(t, "192.168.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", clientIP(req))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("Propaga ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.Header.Set(HeaderCorrelationID, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderCorrelationID))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("Gera ID quando ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderCorrelationID))
	})
}

func TestLoggingResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	var w http.ResponseWriter = lrw
	flusher, ok := w.(http.Flusher)
	require.True(t, ok)

	flusher.Flush()
	assert.True(t, rec.Flushed)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
