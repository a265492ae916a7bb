package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
)

// DefaultEndpoint is the hosted move-suggestion service.
const DefaultEndpoint = "https://w15sfkqcfd.execute-api.us-west-2.amazonaws.com/prod/chess"

// HeaderAPIKey carries the service key.
const HeaderAPIKey = "x-api-key"

var validate = validator.New()

// Client posts positions to the suggestion service. It never retries.
type Client struct {
	endpoint string
	apiKey   string
	http     *fasthttp.Client
	timeout  time.Duration
}

type Option func(*Client)

// WithTimeout bounds requests whose context has no deadline. Zero, the
// default, leaves the transport's own behaviour in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		apiKey:   strings.TrimSpace(apiKey),
		http:     &fasthttp.Client{MaxConnsPerHost: 4},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string { return c.endpoint }

// Suggest sends one request and returns the validated reply.
func (c *Client) Suggest(ctx context.Context, body RequestBody) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(c.endpoint)
	req.Header.SetContentType("application/json")
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.SetBody(payload)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, &StatusError{Code: status, Body: truncate(string(resp.Body()), 512)}
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	out.BestMove = strings.TrimSpace(out.BestMove)
	if err := validate.Struct(out); err != nil {
		return nil, fmt.Errorf("%w: best_move missing", ErrDecode)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if dl, ok := ctx.Deadline(); ok {
		if c.timeout > 0 {
			if clientDL := time.Now().Add(c.timeout); clientDL.Before(dl) {
				dl = clientDL
			}
		}
		return c.http.DoDeadline(req, resp, dl)
	}
	if c.timeout > 0 {
		return c.http.DoTimeout(req, resp, c.timeout)
	}
	return c.http.Do(req, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
