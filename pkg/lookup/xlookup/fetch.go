package xlookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout 是单次请求的默认超时时间。
	DefaultTimeout = 15 * time.Second

	// maxResponseSize 限制响应体大小，防止异常上游拖垮调用方内存。
	// IANA 注册表 CSV 不足 100KB，whois JSON 不足 4KB，10MB 足够宽裕。
	maxResponseSize = 10 * 1024 * 1024
)

// Fetcher 抽象一次出站文档获取。
// 实现必须在 ctx 取消时尽快返回，且不得在成功路径返回 nil 切片以外的共享缓冲。
type Fetcher interface {
	// Fetch 获取 url 指向的文档并返回完整响应体。
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher 是 Fetcher 的默认实现：单次 GET，无重试。
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// HTTPFetcherConfig 配置 HTTPFetcher。零值字段使用默认值。
type HTTPFetcherConfig struct {
	// Timeout 为单次请求超时，<= 0 时使用 DefaultTimeout。
	Timeout time.Duration
	// UserAgent 为空时不设置 User-Agent 头。
	UserAgent string
	// Client 允许注入自定义 http.Client（代理、测试等），为 nil 时按 Timeout 新建。
	Client *http.Client
}

// NewHTTPFetcher 创建 HTTP fetcher。
func NewHTTPFetcher(cfg HTTPFetcherConfig) *HTTPFetcher {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPFetcher{client: client, userAgent: cfg.UserAgent}
}

// Fetch 实现 Fetcher。
// 状态码 >= 400 时返回 *StatusError；响应体超限时返回 ErrResponseTooLarge。
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("xlookup: create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/csv, */*")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("xlookup: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 先判状态码再读响应体，错误响应不做无谓的下载
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	// 多读 1 字节用于区分"恰好达到上限"和"超限"。
	limited := &io.LimitedReader{R: resp.Body, N: maxResponseSize + 1}
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("xlookup: read response failed: %w", err)
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, maxResponseSize)
	}
	return body, nil
}
