package http

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Opt configures a *resty.Client.
type Opt func(*resty.Client) error

// New creates a resty client pointed at the given base URL.
func New(baseURL string, opts ...Opt) (*resty.Client, error) {
	client := resty.New().SetBaseURL(baseURL)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// RetryPolicy describes push retry behavior. Retries live here, at the
// transport edge: the repository layer never retries.
type RetryPolicy struct {
	Count   int
	Wait    time.Duration
	MaxWait time.Duration
}

// WithRetryPolicy applies the first policy with at least one positive
// field; with none, the client is left unchanged.
func WithRetryPolicy(policies ...RetryPolicy) Opt {
	return func(c *resty.Client) error {
		for _, policy := range policies {
			if policy.Count <= 0 && policy.Wait <= 0 && policy.MaxWait <= 0 {
				continue
			}
			if policy.Count > 0 {
				c.SetRetryCount(policy.Count)
			}
			if policy.Wait > 0 {
				c.SetRetryWaitTime(policy.Wait)
			}
			if policy.MaxWait > 0 {
				c.SetRetryMaxWaitTime(policy.MaxWait)
			}
			break
		}
		return nil
	}
}
