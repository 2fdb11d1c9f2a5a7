package xip

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xip: invalid IP address")

	// ErrInvalidBlock 表示无效的网络块（CIDR）字符串。
	ErrInvalidBlock = errors.New("xip: invalid network block")

	// ErrInvalidOctet 表示点分字符串中存在无法解析为整数的段。
	ErrInvalidOctet = errors.New("xip: invalid octet")

	// ErrUnsupported 表示该操作有意未实现。
	// 目前仅 [RangeToBlock] 返回此错误：范围到 CIDR 的转换语义未定义。
	ErrUnsupported = errors.New("xip: operation not supported")
)
