package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Request is one protocol exchange as seen by the session: a method, the
// target resource identifier and optional headers and body. The version
// tag precondition travels in the If-Match header.
type Request struct {
	Method  string
	Target  string
	Headers http.Header
	Body    []byte
}

// Response carries the status, headers and body of a completed exchange.
// The version tag of the addressed resource, when reported, travels in
// the ETag header.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Transport is the abstract request/response channel the session runs
// over. Implementations own connection handling, TLS and timeouts;
// failures they return surface to callers as ErrTransport.
type Transport interface {
	Send(ctx context.Context, req Request) (Response, error)
}

// TransportOptionFunc configures an HTTP transport at construction time.
type TransportOptionFunc func(*httpTransport)

func BasicAuth(username, password string) TransportOptionFunc {
	return func(t *httpTransport) {
		t.username = username
		t.password = password
	}
}

// Token authenticates requests with a bearer token instead of basic
// auth credentials.
func Token(token string) TransportOptionFunc {
	return func(t *httpTransport) {
		t.token = token
	}
}

func Timeout(timeout time.Duration) TransportOptionFunc {
	return func(t *httpTransport) {
		t.timeout = timeout
	}
}

func TransportDebug(enabled string) TransportOptionFunc {
	return func(t *httpTransport) {
		t.debug = (enabled == "true")
	}
}

// NewHTTPTransport creates a Transport that resolves resource identifiers
// against the supplied service endpoint.
func NewHTTPTransport(endpoint string, options ...TransportOptionFunc) Transport {
	t := &httpTransport{
		endpoint: endpoint,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

type httpTransport struct {
	endpoint string
	username string
	password string
	token    string
	timeout  time.Duration
	debug    bool
}

func (t httpTransport) Send(ctx context.Context, request Request) (Response, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   t.timeout,
	}

	var body io.Reader
	if len(request.Body) > 0 {
		body = bytes.NewBuffer(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, t.endpoint+request.Target, body)
	if err != nil {
		return Response{}, errors.NewTransportError(
			fmt.Sprintf("failed to create request: %s", err.Error()),
		)
	}

	for header, values := range request.Headers {
		for _, value := range values {
			req.Header.Add(header, value)
		}
	}

	if len(request.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if t.username != "" {
		req.SetBasicAuth(t.username, t.password)
	}

	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Response{}, errors.NewTransportError(
			fmt.Sprintf("failed to send request: %s", err.Error()),
		)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, errors.NewTransportError(
			fmt.Sprintf("failed to read response body: %s", err.Error()),
		)
	}

	if t.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", slog.String("request", string(reqbytes)), slog.String("response", string(respbytes)))
	}

	return Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}
