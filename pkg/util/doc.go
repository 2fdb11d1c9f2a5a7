// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xip: IP 地址工具库，基于 net/netip + go4.org/netipx 的增量函数
//     （解析、版本判断、分类、CIDR 块运算、IPv6 格式化、惰性枚举）
//   - xioc: 从任意文本提取 IP 地址指标，支持 defang 格式还原
//
// 设计原则：
//   - 纯函数优先，不持有内部状态
//   - 围绕 net/netip 值类型构建，避免自定义地址表示
//   - 失败路径返回可用 errors.Is 判断的哨兵错误
package util
