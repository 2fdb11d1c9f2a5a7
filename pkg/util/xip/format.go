package xip

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// ExpandV6 将 IPv6 地址展开为完整写法：8 组 4 位小写十六进制，冒号分隔。
// 例如 "2001:db8::1" → "2001:0db8:0000:0000:0000:0000:0000:0001"。
// IPv4-mapped IPv6 地址（如 "::ffff:1.2.3.4"）按 16 字节形式展开。
// 非 IPv6 输入返回 [ErrInvalidAddress]。
func ExpandV6(s string) (string, error) {
	addr, err := parseV6(s)
	if err != nil {
		return "", err
	}
	b := addr.As16()
	// 手写格式化避免 fmt.Sprintf 的反射开销："xxxx:xxxx:...:xxxx" 共 39 字节。
	var buf [39]byte
	for i := 0; i < 8; i++ {
		off := i * 5
		if i > 0 {
			buf[off-1] = ':'
		}
		v := uint16(b[2*i])<<8 | uint16(b[2*i+1])
		buf[off+0] = hexDigits[v>>12]
		buf[off+1] = hexDigits[v>>8&0xf]
		buf[off+2] = hexDigits[v>>4&0xf]
		buf[off+3] = hexDigits[v&0xf]
	}
	return string(buf[:]), nil
}

// CompressV6 将 IPv6 地址压缩为 RFC 5952 最短规范形式：
// 去除每组前导零，压缩最长的连续全零分组（至少 2 组，并列取最左）。
// 例如 "2001:0db8:0000:0000:0000:0000:0000:0001" → "2001:db8::1"。
// IPv4-mapped IPv6 地址按十六进制分组形式压缩（如 "::ffff:102:304"）。
// 非 IPv6 输入返回 [ErrInvalidAddress]。
func CompressV6(s string) (string, error) {
	addr, err := parseV6(s)
	if err != nil {
		return "", err
	}
	return compressHextets(addr.As16()), nil
}

// ThreatConnectV6 将 IPv6 地址格式化为 ThreatConnect 平台期望的显示形式。
// 算法刻意保留该平台的零处理怪癖：
//  1. 展开为完整写法
//  2. 逐段将 "0000" 替换为占位符，再去除前导零
//  3. 用冒号拼接，把占位符还原为单个 "0"
//
// 例如 "2001:db8::1" → "2001:db8:0:0:0:0:0:1"。
// 非 IPv6 输入返回 [ErrInvalidAddress]。
func ThreatConnectV6(s string) (string, error) {
	expanded, err := ExpandV6(s)
	if err != nil {
		return "", err
	}
	sections := strings.Split(expanded, ":")
	for i, section := range sections {
		sections[i] = strings.TrimLeft(strings.ReplaceAll(section, "0000", "xxxx"), "0")
	}
	return strings.ReplaceAll(strings.Join(sections, ":"), "xxxx", "0"), nil
}

// parseV6 解析 s 并要求其为 IPv6 地址（含 IPv4-mapped）。
func parseV6(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if !addr.Is6() {
		return netip.Addr{}, fmt.Errorf("%w: %s is not an IPv6 address", ErrInvalidAddress, s)
	}
	// zone ID 无法参与 16 字节形式的格式化，拒绝而非静默丢弃
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidAddress, s)
	}
	return addr, nil
}

// compressHextets 对 16 字节地址执行 RFC 5952 压缩。
func compressHextets(b [16]byte) string {
	var h [8]uint16
	for i := range h {
		h[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}

	// 找最长的连续全零分组（长度至少 2，并列取最左）
	best, bestLen := -1, 1
	for i := 0; i < 8; {
		if h[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && h[j] == 0 {
			j++
		}
		if j-i > bestLen {
			best, bestLen = i, j-i
		}
		i = j
	}

	if best < 0 {
		return joinHextets(h[:])
	}
	return joinHextets(h[:best]) + "::" + joinHextets(h[best+bestLen:])
}

// joinHextets 将分组格式化为去前导零的小写十六进制并用冒号拼接。
func joinHextets(h []uint16) string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = strconv.FormatUint(uint64(v), 16)
	}
	return strings.Join(parts, ":")
}
