// Package xlookup 提供对公共 Web 服务的 IP 辅助信息查询。
//
// xlookup 是薄 I/O 包装：每个查询对应一次出站 HTTP GET，
// 解码 JSON 或 CSV 响应后原样返回，无重试、无分页、无鉴权、无缓存。
//
// # 核心功能
//
//   - [Client.Whois]: 按地址查询 whois 风格元数据（ipapi.co，JSON）
//   - [Client.Current]: 查询调用方当前出口地址（ipinfo.io，JSON）
//   - [Client.PrivateV4Registry] / [Client.PrivateV6Registry]:
//     拉取 IANA 特殊地址注册表（CSV，表头作为每行记录的键）
//
// # 快速示例
//
//	c := xlookup.New()
//	rec, err := c.Whois(ctx, netip.MustParseAddr("8.8.8.8"))
//	if err != nil {
//	    // 网络或解码失败原样向上传播
//	}
//	fmt.Println(rec.Org)
//
// # 设计决策
//
//   - 所有出站请求收敛到 [Fetcher] 最小接口（fetch(url) → bytes），
//     解码和组装逻辑与网络访问解耦，测试无需真实网络
//   - [HTTPFetcher] 是默认实现：单次往返、可配置超时、响应体大小上限、
//     HTTP 4xx/5xx 转为 [*StatusError]
//   - 每次调用都重新拉取，不做任何缓存或节流：数据新鲜度由上游服务决定
//   - 传输失败包装后保留原因链（errors.Is/As 可穿透），不做重试
//   - 端点和超时可通过 [Config] 覆盖，支持从 YAML/JSON 字节加载（koanf）
package xlookup
