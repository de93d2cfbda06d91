package apiclient

import "time"

// Config holds remote API client configuration. Fields can be populated from
// environment variables via the config package.
type Config struct {
	// BaseURL is the versioned API root, e.g. "https://shop.example.com/v1".
	BaseURL string `env:"SHOP_API_BASE_URL" envDefault:"http://localhost:3000/v1"`

	// RequestTimeout bounds each API call end to end.
	RequestTimeout time.Duration `env:"SHOP_API_REQUEST_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:3000/v1",
		RequestTimeout: 30 * time.Second,
	}
}

// NewFromConfig creates a Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{WithTimeout(cfg.RequestTimeout)}
	configOpts = append(configOpts, opts...)
	return New(cfg.BaseURL, configOpts...)
}
