// Package lookup 提供依赖外部服务的查询子包。
//
// 子包列表：
//   - xlookup: 对公共 Web 服务的 IP 辅助信息查询
//     （whois 元数据、出口地址、IANA 特殊地址注册表）
//
// 设计原则：
//   - 网络访问通过最小 Fetcher 接口注入，业务逻辑可离线测试
//   - 每次调用单次往返，无重试、无缓存，失败原样向上传播
package lookup
