package xip

import "net/netip"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrVersion 返回 addr 的 IP 版本（V4 或 V6），依据其底层表示：
// 4 字节为 V4，16 字节为 V6。IPv4-mapped IPv6 地址（"::ffff:1.2.3.4"）
// 是 16 字节表示，视为 V6：版本跟随写法，不做内嵌地址的解映射。
// 无效地址返回 V0。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.Is6():
		return V6
	default:
		return V0
	}
}

// VersionOf 解析 s 并返回其 IP 版本号（4 或 6）。
// 点分十进制写法为 4，冒号十六进制写法（含 IPv4-mapped 形式）为 6。
// 无法解析的输入返回 V0 和 [ErrInvalidAddress]。
func VersionOf(s string) (Version, error) {
	addr, err := Parse(s)
	if err != nil {
		return V0, err
	}
	return AddrVersion(addr), nil
}
