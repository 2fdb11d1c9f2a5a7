package xlookup

import (
	"log/slog"
)

// Client 是所有查询操作的入口。
// Client 无内部状态，可安全地被多个 goroutine 并发使用。
type Client struct {
	cfg     Config
	fetcher Fetcher
	logger  *slog.Logger
}

// Option 配置 Client。
type Option func(*Client)

// WithConfig 覆盖端点与超时配置。零值字段回落到默认值。
func WithConfig(cfg Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithFetcher 注入自定义 Fetcher，常用于测试或自定义传输。
func WithFetcher(f Fetcher) Option {
	return func(c *Client) { c.fetcher = f }
}

// WithLogger 注入结构化日志器，默认丢弃所有日志。
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New 创建查询客户端。
func New(opts ...Option) *Client {
	c := &Client{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg = c.cfg.withDefaults()
	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(HTTPFetcherConfig{Timeout: c.cfg.Timeout})
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Config 返回客户端生效的配置副本。
func (c *Client) Config() Config {
	return c.cfg
}
