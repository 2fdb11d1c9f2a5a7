package xip

import (
	"encoding/binary"
	"net/netip"
)

// 设计决策: IsMulticast ~ IsUnspecified 是对 netip.Addr 同名方法的薄包装，
// 添加了 IsValid 前置检查；IsPrivate / IsPublic / IsReserved 则基于
// IANA 特殊用途地址注册表的完整前缀表判断——netip.Addr.IsPrivate 只覆盖
// RFC 1918 + ULA，不含环回、链路本地、文档地址等专用段，
// 与"能否出现在公网"这一问题的直觉不符。
// 提供一致的包级 API，调用方无需混用 addr.IsXxx() 和 xip.IsYyy()。

// IANA 特殊用途 IPv4 地址段（专用网络、环回、链路本地、文档、基准测试、
// Class E 等，"This network" 0.0.0.0/8 和受限广播地址也在内）。
var v4PrivatePrefixes = mustPrefixes(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/29",
	"192.0.0.170/31",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"240.0.0.0/4",
	"255.255.255.255/32",
)

// IANA 特殊用途 IPv6 地址段（环回、未指定、Discard-Only、
// 协议专用段、文档、ORCHID、ULA、链路本地）。
// IPv4-mapped 地址不在表中：它们在判断前先解除映射、按 IPv4 表处理。
var v6PrivatePrefixes = mustPrefixes(
	"::1/128",
	"::/128",
	"100::/64",
	"2001::/23",
	"2001:2::/48",
	"2001:db8::/32",
	"2001:10::/28",
	"fc00::/7",
	"fe80::/10",
)

// RFC 4291 及后续分配中未划拨的 IPv6 保留段。
var v6ReservedPrefixes = mustPrefixes(
	"::/8",
	"100::/8",
	"200::/7",
	"400::/6",
	"800::/5",
	"1000::/4",
	"4000::/3",
	"6000::/3",
	"8000::/3",
	"a000::/3",
	"c000::/3",
	"e000::/4",
	"f000::/5",
	"f800::/6",
	"fe00::/9",
)

func mustPrefixes(ss ...string) []netip.Prefix {
	ps := make([]netip.Prefix, len(ss))
	for i, s := range ss {
		ps[i] = netip.MustParsePrefix(s)
	}
	return ps
}

func containsAny(ps []netip.Prefix, addr netip.Addr) bool {
	for _, p := range ps {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// IsPrivate 报告 addr 是否属于 IANA 特殊用途地址段（不可在公网路由使用）。
// 覆盖范围比 netip.Addr.IsPrivate 宽：
//   - IPv4: RFC 1918 专用段之外，还包括 0.0.0.0/8、环回、链路本地、
//     文档地址（192.0.2.0/24 等）、基准测试段、Class E 和受限广播地址
//   - IPv6: ULA 和链路本地之外，还包括 ::1、::、文档地址 2001:db8::/32、
//     Discard-Only 100::/64 和协议专用段 2001::/23
//
// IPv4-mapped IPv6 地址按其内嵌的 IPv4 地址判断。
// 无效地址返回 false。
func IsPrivate(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		return containsAny(v4PrivatePrefixes, addr.Unmap())
	}
	return containsAny(v6PrivatePrefixes, addr)
}

// IsMulticast 报告 addr 是否为多播地址。
// 多播地址包括：
//   - IPv4: 224.0.0.0/4
//   - IPv6: ff00::/8
//
// 无效地址返回 false。
func IsMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsMulticast()
}

// IsLoopback 报告 addr 是否为环回地址（127.0.0.0/8 或 ::1）。
// 无效地址返回 false。
func IsLoopback(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLoopback()
}

// IsLinkLocalUnicast 报告 addr 是否为链路本地单播地址
// （169.254.0.0/16 或 fe80::/10）。
// 无效地址返回 false。
func IsLinkLocalUnicast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLinkLocalUnicast()
}

// IsLinkLocalMulticast 报告 addr 是否为链路本地多播地址
// （224.0.0.0/24 或 ff02::/16）。
// 无效地址返回 false。
func IsLinkLocalMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLinkLocalMulticast()
}

// IsGlobalUnicast 报告 addr 是否为全局单播地址。
// 无效地址返回 false。
func IsGlobalUnicast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsGlobalUnicast()
}

// IsUnspecified 报告 addr 是否为未指定地址（0.0.0.0 或 ::）。
// 无效地址返回 false。
func IsUnspecified(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsUnspecified()
}

// IsPublic 报告 addr 是否为公网地址，定义为"非多播且非私有"。
// 由于 [IsPrivate] 覆盖环回、链路本地、文档等全部特殊用途段，
// 环回地址和 Class E 地址按此定义都不是公网地址。
//
// 注意：部分 IPv6 保留段（如 ::/8 内非特殊用途的地址）不在私有表中，
// 会同时满足 IsPublic 和 [IsReserved]。
//
// 无效地址返回 false。
func IsPublic(addr netip.Addr) bool {
	return addr.IsValid() && !addr.IsMulticast() && !IsPrivate(addr)
}

// IsReserved 报告 addr 是否落在保留地址段：
//   - IPv4: Class E（240.0.0.0/4，RFC 1112 保留用于未来使用）
//   - IPv6: RFC 4291 划定后尚未分配的段（如 ::/8、8000::/3）
//
// IPv4-mapped IPv6 地址按其内嵌的 IPv4 地址判断。
// 无效地址返回 false。
func IsReserved(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		// 240.0.0.0/4 = 0xF0000000 - 0xFFFFFFFF
		return ipv4ToUint32(addr) >= 0xF0000000
	}
	return containsAny(v6ReservedPrefixes, addr)
}

// ipv4ToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 调用前必须确保 addr.Is4() || addr.Is4In6() 为 true。
func ipv4ToUint32(addr netip.Addr) uint32 {
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:])
}

// Classification 包含 IP 地址的各种分类信息。
//
// 设计决策: 使用扁平的导出字段而非位标志或方法集：
//   - 值类型结构体在 Go 中添加字段是向后兼容的
//   - 调用方可直接访问 c.IsPrivate，比 c.Has(FlagPrivate) 更符合 Go 惯用法
//   - 所有字段在 Classify() 一次调用中填充
type Classification struct {
	// Version 是 IP 版本（V4 或 V6）。
	Version Version

	// IsValid 表示地址是否有效。
	IsValid bool

	// IsPrivate 表示是否属于 IANA 特殊用途地址段（含环回、链路本地、文档地址）。
	IsPrivate bool

	// IsPublic 表示是否为公网地址（非多播且非私有）。
	IsPublic bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsReserved 表示是否为保留地址（IPv4 Class E 或 IPv6 未分配段）。
	IsReserved bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsLinkLocalUnicast 表示是否为链路本地单播地址。
	IsLinkLocalUnicast bool

	// IsLinkLocalMulticast 表示是否为链路本地多播地址。
	IsLinkLocalMulticast bool

	// IsGlobalUnicast 表示是否为全局单播地址。
	IsGlobalUnicast bool

	// IsUnspecified 表示是否为未指定地址。
	IsUnspecified bool
}

// Classify 返回 IP 地址的分类信息。
//
// 示例：
//
//	addr := netip.MustParseAddr("10.0.0.1")
//	c := xip.Classify(addr)
//	fmt.Println(c.IsPrivate)       // true
//	fmt.Println(c.IsGlobalUnicast) // true (私有地址也是全局单播)
func Classify(addr netip.Addr) Classification {
	if !addr.IsValid() {
		return Classification{}
	}
	return Classification{
		Version:              AddrVersion(addr),
		IsValid:              true,
		IsPrivate:            IsPrivate(addr),
		IsPublic:             IsPublic(addr),
		IsMulticast:          addr.IsMulticast(),
		IsReserved:           IsReserved(addr),
		IsLoopback:           addr.IsLoopback(),
		IsLinkLocalUnicast:   addr.IsLinkLocalUnicast(),
		IsLinkLocalMulticast: addr.IsLinkLocalMulticast(),
		IsGlobalUnicast:      addr.IsGlobalUnicast(),
		IsUnspecified:        addr.IsUnspecified(),
	}
}

// String 返回分类信息的字符串表示。
// 优先级：越特殊的分类越靠前（如 loopback > private > public）。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}

	// 按优先级排列，第一个匹配的即为结果。
	// 环回、未指定、链路本地和 Class E 同时也满足 IsPrivate，
	// 更具体的标签排在 private 之前。
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsLinkLocalUnicast, "link-local-unicast"},
		{c.IsLinkLocalMulticast, "link-local-multicast"},
		{c.IsReserved, "reserved"},
		{c.IsMulticast, "multicast"},
		{c.IsPrivate, "private"},
		{c.IsPublic, "public"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	return "unknown"
}
