package xlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/netip"
	"strings"

	"github.com/democritus-project/democritus-ip-addresses/pkg/util/xip"
)

// WhoisRecord 是 whois 风格查询返回的地址元数据。
// 字段与 ipapi.co 的 JSON 响应对应，缺失字段保持零值。
type WhoisRecord struct {
	IP        string  `json:"ip"`
	Version   string  `json:"version"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country_name"`
	Continent string  `json:"continent_code"`
	Postal    string  `json:"postal"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	ASN       string  `json:"asn"`
	Org       string  `json:"org"`
}

// Whois 查询 addr 的注册与地理元数据。
func (c *Client) Whois(ctx context.Context, addr netip.Addr) (*WhoisRecord, error) {
	if !addr.IsValid() {
		return nil, ErrInvalidAddress
	}

	url := strings.TrimSuffix(c.cfg.WhoisEndpoint, "/") + "/" + addr.String() + "/json/"
	c.logger.Debug("whois lookup", "addr", addr.String(), "url", url)

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("xlookup: whois %s: %w", addr, err)
	}

	var rec WhoisRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("%w: whois %s: %v", ErrDecodeFailed, addr, err)
	}
	return &rec, nil
}

// WhoisString 是 Whois 的文本入参便捷形式。
func (c *Client) WhoisString(ctx context.Context, s string) (*WhoisRecord, error) {
	addr, err := xip.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return c.Whois(ctx, addr)
}
