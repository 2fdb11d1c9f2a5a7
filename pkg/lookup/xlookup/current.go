package xlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/netip"
)

// CurrentRecord 描述调用方的出口地址信息。
// 字段与 ipinfo.io 的 JSON 响应对应。
type CurrentRecord struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Org      string `json:"org"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
}

// Addr 将记录中的 IP 字段解析为 netip.Addr。
func (r *CurrentRecord) Addr() (netip.Addr, error) {
	addr, err := netip.ParseAddr(r.IP)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, r.IP)
	}
	return addr, nil
}

// Current 查询调用方当前的出口地址及其元数据。
func (c *Client) Current(ctx context.Context) (*CurrentRecord, error) {
	c.logger.Debug("current address lookup", "url", c.cfg.CurrentEndpoint)

	body, err := c.fetcher.Fetch(ctx, c.cfg.CurrentEndpoint)
	if err != nil {
		return nil, fmt.Errorf("xlookup: current address: %w", err)
	}

	var rec CurrentRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("%w: current address: %v", ErrDecodeFailed, err)
	}
	return &rec, nil
}

// CurrentAddr 是 Current 的便捷形式，只返回出口地址本身。
func (c *Client) CurrentAddr(ctx context.Context) (netip.Addr, error) {
	rec, err := c.Current(ctx)
	if err != nil {
		return netip.Addr{}, err
	}
	return rec.Addr()
}
