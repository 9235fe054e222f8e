package galaxylife

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithBaseURL cambia la URL de la API; vacío deja la de producción.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithStatusURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.statusURL = strings.TrimRight(u, "/")
		}
	}
}

// WithStaffToken habilita ban/unban.
func WithStaffToken(tok string) Option {
	return func(c *Client) { c.staffToken = tok }
}

// WithRateLimit limita requests por segundo hacia la API (0 = sin límite).
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}
