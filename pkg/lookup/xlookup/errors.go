package xlookup

import (
	"errors"
	"fmt"
)

// 预定义错误变量，便于调用方使用 errors.Is 判断。
var (
	// ErrInvalidAddress 表示入参不是有效的 IP 地址。
	ErrInvalidAddress = errors.New("xlookup: invalid IP address")

	// ErrDecodeFailed 表示响应体无法按预期格式（JSON/CSV）解码。
	ErrDecodeFailed = errors.New("xlookup: decode response failed")

	// ErrResponseTooLarge 表示响应体超过了大小上限。
	ErrResponseTooLarge = errors.New("xlookup: response body too large")

	// ErrUnsupportedFormat 表示配置格式不受支持。
	ErrUnsupportedFormat = errors.New("xlookup: unsupported config format")

	// ErrConfigLoadFailed 表示配置解析或反序列化失败。
	ErrConfigLoadFailed = errors.New("xlookup: load config failed")
)

// StatusError 表示服务端返回了非成功状态码（>= 400）。
// 状态码和请求 URL 保留在错误中，便于调用方区分 404 与 429 等场景。
type StatusError struct {
	StatusCode int
	URL        string
}

// Error 实现 error 接口。
func (e *StatusError) Error() string {
	return fmt.Sprintf("xlookup: unexpected status %d from %s", e.StatusCode, e.URL)
}
