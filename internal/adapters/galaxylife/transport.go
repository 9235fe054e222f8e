package galaxylife

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBase   = "https://api.galaxylifegame.net"
	defaultStatus = "https://status.galaxylifegame.net"
)

type Client struct {
	http       *http.Client
	baseURL    string
	statusURL  string
	staffToken string
	limiter    *rate.Limiter
}

func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   defaultBase,
		statusURL: defaultStatus,
		limiter:   rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON: arma la URL, respeta el limiter, maneja 404 y 429 con Retry-After simple.
func (c *Client) doJSON(ctx context.Context, method, base, path string, q url.Values, auth bool, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := strings.TrimRight(base, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("galaxylife request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.staffToken)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("galaxylife http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		if ra := res.Header.Get("Retry-After"); ra != "" {
			if sec, _ := strconv.Atoi(ra); sec > 0 {
				select {
				case <-time.After(time.Duration(sec) * time.Second):
				case <-ctx.Done():
					return ctx.Err()
				}
				// un solo reintento
				return c.doJSONOnce(ctx, req.Clone(ctx), out)
			}
		}
	}
	return decode(res, out)
}

func (c *Client) doJSONOnce(ctx context.Context, req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("galaxylife http: %w", err)
	}
	defer res.Body.Close()
	return decode(res, out)
}

func decode(res *http.Response, out any) error {
	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		return nil
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("galaxylife read: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ErrNotFound
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("galaxylife decode: %w", err)
	}
	return nil
}
