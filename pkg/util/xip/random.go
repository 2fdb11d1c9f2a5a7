package xip

import (
	"encoding/binary"
	"math/rand/v2"
	"net/netip"
)

// RandomV4 生成 n 个均匀随机的 IPv4 示例地址。
// n <= 0 返回空切片。
// 生成的地址不保证可路由，仅用于测试数据和文档示例。
func RandomV4(n int) []netip.Addr {
	if n <= 0 {
		return nil
	}
	addrs := make([]netip.Addr, n)
	for i := range addrs {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], rand.Uint32())
		addrs[i] = netip.AddrFrom4(b)
	}
	return addrs
}

// RandomV6 生成 n 个均匀随机的 IPv6 示例地址。
// n <= 0 返回空切片。
// 生成的地址不保证可路由，仅用于测试数据和文档示例。
func RandomV6(n int) []netip.Addr {
	if n <= 0 {
		return nil
	}
	addrs := make([]netip.Addr, n)
	for i := range addrs {
		var b [16]byte
		binary.BigEndian.PutUint64(b[:8], rand.Uint64())
		binary.BigEndian.PutUint64(b[8:], rand.Uint64())
		addrs[i] = netip.AddrFrom16(b)
	}
	return addrs
}
