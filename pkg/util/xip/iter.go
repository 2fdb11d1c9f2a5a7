package xip

import (
	"iter"
	"net/netip"

	"go4.org/netipx"
)

// Enumerate 返回网络块内全部地址的迭代器，从网络地址到广播地址（含两端）。
// 迭代器是以不可变前缀为参数的纯函数：可部分消费，重新 range 即从头枚举，
// 不持有任何跨调用的迭代状态。
//
// 注意：大前缀（如 IPv6 /64）的完整枚举在实际时间内无法完成，
// 建议配合 [CollectN] 的 maxCount 参数限制数量。
//
// 示例：
//
//	p := netip.MustParsePrefix("192.168.1.0/30")
//	for addr := range xip.Enumerate(p) {
//	    fmt.Println(addr)  // .0, .1, .2, .3
//	}
func Enumerate(p netip.Prefix) iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !p.IsValid() {
			return
		}
		r := netipx.RangeOfPrefix(p.Masked())
		current := r.From()
		last := r.To()
		for {
			if !yield(current) {
				return
			}
			// 到达终点
			if current == last {
				return
			}
			// 设计决策: 防御性分支——在当前逻辑下 Next() 不会越过地址空间上界，
			// 因为 current==last 时已提前返回。保留此检查以防止未来修改终止
			// 条件时引入无限循环。
			current = current.Next()
			if !current.IsValid() {
				return
			}
		}
	}
}

// EnumerateStrings 返回网络块内全部地址字符串形式的迭代器。
// 语义与 [Enumerate] 相同，每个地址以标准文本形式产出。
func EnumerateStrings(p netip.Prefix) iter.Seq[string] {
	return func(yield func(string) bool) {
		for addr := range Enumerate(p) {
			if !yield(addr.String()) {
				return
			}
		}
	}
}

// CollectN 将迭代器中的地址收集到切片中，最多收集 maxCount 个。
// maxCount ≤ 0 表示不限制数量。
//
// 设计决策: 命名为 CollectN 而非 Collect，避免与 Go 1.23+ 标准库
// [slices.Collect] 混淆。不限制数量时建议直接使用 [slices.Collect]。
// maxCount > 0 时预分配切片容量（上限 1<<20 防止极端值 OOM）。
func CollectN(seq iter.Seq[netip.Addr], maxCount int) []netip.Addr {
	var result []netip.Addr
	if maxCount > 0 {
		result = make([]netip.Addr, 0, min(maxCount, 1<<20))
	}
	count := 0
	for addr := range seq {
		if maxCount > 0 && count >= maxCount {
			break
		}
		result = append(result, addr)
		count++
	}
	return result
}

// Count 返回迭代器中的地址数量。
// 注意：这会消耗整个迭代器。
// 对于网络块，建议使用 [BlockCount] 直接计算，无需枚举。
func Count(seq iter.Seq[netip.Addr]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}
