// Package xip 提供 IP 地址便捷工具库。
//
// xip 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 直接使用 [netip.Addr] 和 [netip.Prefix] 值类型，
// 提供 IP 地址校验、分类、网络块运算、IPv6 格式化和启发式判断等工具函数。
//
// # 核心功能
//
//   - version.go: IP 版本类型 [Version] 及 [AddrVersion] / [VersionOf] 判断函数
//   - parse.go: 地址字符串解析 [Parse]、有效性检查 [IsIPAddress]
//   - classify.go: 私有/公网/多播/保留等地址分类，[Classify] 汇总结构
//   - block.go: 网络块（CIDR）解析与运算：首尾地址、地址数量、范围字符串、包含判断
//   - iter.go: 网络块地址的惰性枚举迭代器（含网络地址和广播地址）
//   - format.go: IPv6 展开/压缩/ThreatConnect 显示格式
//   - heuristic.go: IPv4 各段求和、疑似版本号判断（实验性）
//   - random.go: 随机示例地址生成
//
// # 快速示例
//
// 校验和分类 IP 地址：
//
//	addr, _ := xip.Parse("10.0.0.1")
//	fmt.Println(xip.AddrVersion(addr))  // IPv4
//	fmt.Println(xip.IsPrivate(addr))    // true
//
// 网络块运算与枚举：
//
//	p, _ := xip.ParseBlock("192.168.1.0/30")
//	fmt.Println(xip.BlockRange(p))      // 192.168.1.0 - 192.168.1.3
//	for addr := range xip.Enumerate(p) {
//	    fmt.Println(addr)               // 依次输出 4 个地址
//	}
//
// IPv6 格式化：
//
//	s, _ := xip.ExpandV6("2001:db8::1")
//	fmt.Println(s)  // 2001:0db8:0000:0000:0000:0000:0000:0001
//
// # 设计决策
//
//   - 直接使用 [netip.Addr] / [netip.Prefix] 值类型，零分配比较，可做 map key
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//   - [IsIPAddress] 是唯一把解析失败折叠为 false 的函数：有效性检查的契约
//     就是布尔结果，错误不跨越该边界；其余函数一律显式返回错误
//   - [ParseBlock] 采用严格模式：前缀长度之外存在主机位（如 "192.168.1.1/24"）
//     视为格式错误，与按掩码静默截断相比能更早暴露配置笔误
//   - [Enumerate] 返回 [iter.Seq]，是以不可变前缀为参数的纯函数：
//     可部分消费、可随时重新枚举，不持有任何跨调用的迭代状态
//   - [RangeToBlock]（范围字符串转 CIDR）有意不实现，始终返回
//     [ErrUnsupported]：转换语义未定义（一个范围可能对应多个 CIDR 块），
//     不臆造行为，留待产品决策
//
// # 分类函数说明
//
// [IsPrivate] 基于 IANA 特殊用途地址注册表的完整前缀表，覆盖专用网络、
// 环回、链路本地、文档地址、Class E 等全部不可公网路由的段；
// [IsPublic] 定义为"非多播且非私有"，因此环回和文档地址都不是公网地址。
// [IsReserved] 判断 IPv4 Class E（240.0.0.0/4）和 IPv6 未分配段
// （::/8、8000::/3 等）。
// 分类标志不互斥，例如 10.0.0.1 同时满足 IsPrivate 和 IsGlobalUnicast。
//
// # IPv6 格式化说明
//
// [ExpandV6] 输出 8 组 4 位十六进制（小写、冒号分隔）的完整形式。
// [CompressV6] 输出 RFC 5952 最短规范形式：压缩最长的连续全零分组
// （至少 2 组，并列取最左）。IPv4-mapped IPv6 地址按 16 字节十六进制
// 形式处理（如 "::ffff:102:304"），而非 Go 默认的点分混合写法。
// [ThreatConnectV6] 复刻 ThreatConnect 平台的显示格式及其零处理怪癖：
// 先展开，逐段将 "0000" 替换为占位符、去掉前导零，拼接后把占位符还原为
// 单个 "0"。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xip.ParseBlock("192.168.1.1/24")
//	if errors.Is(err, xip.ErrInvalidBlock) {
//	    // 处理无效网络块
//	}
package xip
