package xip

import (
	"fmt"
	"net/netip"
)

// Parse 解析 IP 地址字符串为 [netip.Addr]。
// 接受 IPv4 点分十进制和 IPv6 冒号十六进制两种写法。
// 解析失败返回 [ErrInvalidAddress]。
func Parse(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return addr, nil
}

// IsIPAddress 报告 s 是否为有效的 IP 地址字符串。
// 解析失败折叠为 false，不向调用方抛出错误。
func IsIPAddress(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}
