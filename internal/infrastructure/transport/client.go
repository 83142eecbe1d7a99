package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 60 * time.Second

// Sender is the blocking transport used by SOAP adapters: one POST, raw reply bytes back.
type Sender interface {
	Send(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, error)
}

// Doer performs arbitrary requests and hands back the status code with the body,
// for gateways that encode business errors in 4xx replies.
type Doer interface {
	Do(ctx context.Context, req Request) (*Reply, error)
}

type Request struct {
	Method   string
	URL      string
	Body     []byte
	Headers  map[string]string
	Username string
	Password string
}

type Reply struct {
	StatusCode int
	Body       []byte
}

// StatusError is returned by Send when the gateway answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.StatusCode)
}

// Client wraps resty for gateway round trips. Retries are disabled: a commit is exactly
// one request.
type Client struct {
	r *resty.Client
}

var (
	_ Sender = (*Client)(nil)
	_ Doer   = (*Client)(nil)
)

func New() *Client {
	r := resty.New().
		SetTimeout(defaultTimeout).
		SetRetryCount(0)

	return &Client{r: r}
}

// WithTimeout sets a custom timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.r.SetTimeout(d)
	return c
}

// Send posts body to url with the given headers and returns the reply body.
func (c *Client) Send(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, error) {
	reply, err := c.Do(ctx, Request{Method: http.MethodPost, URL: url, Body: body, Headers: headers})
	if err != nil {
		return nil, err
	}
	if reply.StatusCode < 200 || reply.StatusCode > 299 {
		return nil, &StatusError{StatusCode: reply.StatusCode, Body: reply.Body}
	}
	return reply.Body, nil
}

func (c *Client) Do(ctx context.Context, req Request) (*Reply, error) {
	r := c.r.R().SetContext(ctx).SetHeaders(req.Headers)
	if req.Username != "" {
		r.SetBasicAuth(req.Username, req.Password)
	}
	if req.Body != nil {
		r.SetBody(req.Body).SetContentLength(true)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}
	return &Reply{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
