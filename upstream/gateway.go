package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ndnb/architecture-web-gateway/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxErrorBodyBytes caps how much of an upstream error body is kept for logs.
const maxErrorBodyBytes = 4 * 1024

// Gateway is a thin client for the upstream REST API. It joins paths with the
// base URL resolved once at startup, unwraps the {"data": ...} envelope every
// endpoint uses, and classifies failures. No retries and no caching: each
// call is a fresh request.
type Gateway struct {
	baseURL    string
	pathPrefix string
	client     *http.Client
	logger     zerolog.Logger
}

func NewGateway(baseURL, pathPrefix string, client *http.Client) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	logger := log.With().Str("component", "upstreamGateway").Logger()

	return &Gateway{
		baseURL:    baseURL,
		pathPrefix: pathPrefix,
		client:     client,
		logger:     logger,
	}
}

// RequestOption mutates an outgoing upstream request before it is sent.
type RequestOption func(*http.Request)

// WithCredentials forwards the caller's auth cookie to the upstream API, for
// the endpoints that expect a session (the browser equivalents used
// withCredentials).
func WithCredentials(authToken string) RequestOption {
	return func(req *http.Request) {
		if authToken != "" {
			req.AddCookie(&http.Cookie{Name: "authToken", Value: authToken})
		}
	}
}

// Get issues a GET for path under the configured base URL and returns the
// payload inside the response envelope, unwrapped exactly one level.
// Transport failures come back as errs.ErrNetwork, non-2xx responses as
// *errs.HttpError, and a missing or null data field as errs.ErrEmptyBody.
func (g *Gateway) Get(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error) {
	url := g.baseURL + g.pathPrefix + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("path", path).Msg("upstream request failed")
		return nil, errs.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		g.logger.Error().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("body", string(body)).
			Msg("upstream returned non-2xx status")
		return nil, &errs.HttpError{Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error().Err(err).Str("path", path).Msg("reading upstream response failed")
		return nil, errs.NewNetworkError(err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		g.logger.Error().Err(err).Str("path", path).Msg("upstream response is not a valid envelope")
		return nil, fmt.Errorf("decoding envelope for %s: %w", path, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, errs.ErrEmptyBody
	}

	return envelope.Data, nil
}

// AssetURL resolves a relative media path from the API into an absolute URL.
// Returns the empty string for an empty path.
func (g *Gateway) AssetURL(filepath string) string {
	if filepath == "" {
		return ""
	}
	return g.baseURL + g.pathPrefix + filepath
}
