package newsbreakclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	headerAccessToken = "Access-Token"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// RequestSpec descreve uma chamada à API. É montada uma vez por operação e
// reenviada sem alterações a cada tentativa.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header http.Header
}

// Endpoint devolve método e caminho, usado em logs e métricas. Nunca inclui headers.
func (s RequestSpec) Endpoint() string {
	return s.Method + " " + s.Path
}

// RawResponse é a resposta HTTP já lida
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Sender envia uma RequestSpec e devolve a resposta crua. Erros retornados são
// sempre falhas de transporte.
type Sender interface {
	Send(ctx context.Context, spec RequestSpec) (*RawResponse, error)
}

type httpSender struct {
	baseURL    string
	httpClient *http.Client
}

func newHTTPSender(baseURL string, httpClient *http.Client) *httpSender {
	return &httpSender{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (s *httpSender) Send(ctx context.Context, spec RequestSpec) (*RawResponse, error) {
	endpoint, err := url.Parse(s.baseURL + spec.Path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL")
	}
	if len(spec.Query) > 0 {
		endpoint.RawQuery = spec.Query.Encode()
	}

	var body io.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	for k, values := range spec.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	return &RawResponse{StatusCode: resp.StatusCode, Body: data}, nil
}
