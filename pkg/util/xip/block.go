package xip

import (
	"fmt"
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// ParseBlock 解析网络块字符串为 [netip.Prefix]。支持 2 种格式：
//   - CIDR: "192.168.1.0/24"
//   - 单 IP: "192.168.1.1"（等价于 /32 或 /128）
//
// 采用严格模式：前缀长度之外存在主机位（如 "192.168.1.1/24"）返回
// [ErrInvalidBlock]，不做静默截断。
func ParseBlock(s string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		// 无 "/" 的单地址视为全长前缀
		addr, addrErr := netip.ParseAddr(s)
		if addrErr != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
		}
		if addr.Zone() != "" {
			return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidBlock, s)
		}
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}
	if p.Addr() != p.Masked().Addr() {
		return netip.Prefix{}, fmt.Errorf("%w: host bits set in %s", ErrInvalidBlock, s)
	}
	return p, nil
}

// BlockFirst 返回网络块的第一个地址（网络地址）。
// 无效前缀返回零值。
func BlockFirst(p netip.Prefix) netip.Addr {
	if !p.IsValid() {
		return netip.Addr{}
	}
	return netipx.RangeOfPrefix(p.Masked()).From()
}

// BlockLast 返回网络块的最后一个地址（IPv4 中即广播地址）。
// 无效前缀返回零值。
func BlockLast(p netip.Prefix) netip.Addr {
	if !p.IsValid() {
		return netip.Addr{}
	}
	return netipx.RangeOfPrefix(p.Masked()).To()
}

// BlockCount 返回网络块包含的地址数量（2 的主机位数次幂）。
// 使用 big.Int 以覆盖 IPv6 大前缀（如 ::/0 的 2^128）。
// 无效前缀返回 nil。
func BlockCount(p netip.Prefix) *big.Int {
	if !p.IsValid() {
		return nil
	}
	host := uint(p.Addr().BitLen() - p.Bits())
	return new(big.Int).Lsh(big.NewInt(1), host)
}

// BlockCountUint64 返回网络块包含的地址数量。
// 主机位数不超过 63 时可用（覆盖全部 IPv4 前缀和 /65 以内的 IPv6 前缀），
// 否则返回 (0, false)。
func BlockCountUint64(p netip.Prefix) (uint64, bool) {
	if !p.IsValid() {
		return 0, false
	}
	host := p.Addr().BitLen() - p.Bits()
	if host > 63 {
		return 0, false
	}
	return uint64(1) << host, true
}

// BlockRange 返回网络块覆盖的地址范围字符串，格式 "<first> - <last>"。
// 无效前缀返回空字符串。
func BlockRange(p netip.Prefix) string {
	if !p.IsValid() {
		return ""
	}
	r := netipx.RangeOfPrefix(p.Masked())
	return fmt.Sprintf("%s - %s", r.From(), r.To())
}

// BlockContains 报告 addr 是否属于网络块 p。
// 使用前缀算术直接判断，与逐个枚举比对的结果一致但为常数时间。
// IPv4-mapped IPv6 地址在与 IPv4 前缀比较前会先解除映射。
func BlockContains(p netip.Prefix, addr netip.Addr) bool {
	if !p.IsValid() || !addr.IsValid() {
		return false
	}
	if p.Addr().Is4() && addr.Is4In6() {
		addr = addr.Unmap()
	}
	return p.Contains(addr)
}

// RangeToBlock 将 "<first> - <last>" 形式的范围字符串转换为网络块。
//
// 有意未实现：转换语义未定义（任意范围可能需要多个 CIDR 块才能覆盖，
// 单块结果并不总是存在），不臆造行为。始终返回 [ErrUnsupported]。
func RangeToBlock(ipRange string) (netip.Prefix, error) {
	return netip.Prefix{}, fmt.Errorf("%w: range %q to network block conversion is not defined", ErrUnsupported, ipRange)
}
