// Package xioc 提供从自由文本中提取 IP 地址指标（IOC）的工具函数。
//
// xioc 使用"正则候选 + 严格解析校验"两阶段策略：
// 先用宽松的正则扫出候选子串，再经 [net/netip] 解析确认，
// 只有真实可解析的地址才会出现在结果中。
//
// # 核心功能
//
//   - [FindIPv4]: 提取全部 IPv4 字面量
//   - [FindIPv6]: 提取全部 IPv6 字面量（含 IPv4-mapped 形式）
//   - [FindAll]: 两者合并（先 IPv4 后 IPv6），重复和出现顺序原样保留
//   - [FindTyped]: 附带版本归属的提取结果
//
// # 快速示例
//
//	xioc.FindAll("visit 8.8.8.8 and ::1")
//	// ["8.8.8.8", "::1"]
//
// # 设计决策
//
//   - 去混淆：匹配前把常见的 defang 写法（"[.]"、"[:]"）还原，
//     返回的是还原后的地址文本
//   - 边界判定：环视断言在 Go regexp（RE2）中不可用，
//     改为候选匹配后手工检查前后邻接字符——嵌在更长数字/十六进制
//     词元中间的片段（如 "1.2.3.4.5" 中的 "1.2.3.4"）不视为地址
//   - 提取函数永不返回错误：无匹配时返回 nil 切片
//   - 候选阶段有意宽松（如不限制分组数量），正确性完全由解析校验兜底，
//     这让正则保持可读且不会漏掉合法缩写形式
package xioc
