package xlookup

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// IANA 特殊地址注册表 CSV 的固定列名。
const (
	registryColumnBlock = "Address Block"
	registryColumnName  = "Name"
	registryColumnRFC   = "RFC"
)

// RegistryRecord 是注册表中的一行，键为 CSV 表头列名。
// 使用 map 而非固定结构体：IANA 偶尔调整列集合，调用方仍能拿到全部列。
type RegistryRecord map[string]string

// AddressBlock 返回该行描述的地址块（CIDR 或多块列表的原始文本）。
func (r RegistryRecord) AddressBlock() string { return r[registryColumnBlock] }

// Name 返回分配名称，如 "Private-Use" 或 "Documentation"。
func (r RegistryRecord) Name() string { return r[registryColumnName] }

// RFC 返回定义该分配的 RFC 引用文本。
func (r RegistryRecord) RFC() string { return r[registryColumnRFC] }

// PrivateV4Registry 拉取 IANA IPv4 特殊地址注册表。
func (c *Client) PrivateV4Registry(ctx context.Context) ([]RegistryRecord, error) {
	return c.fetchRegistry(ctx, c.cfg.V4RegistryEndpoint)
}

// PrivateV6Registry 拉取 IANA IPv6 特殊地址注册表。
func (c *Client) PrivateV6Registry(ctx context.Context) ([]RegistryRecord, error) {
	return c.fetchRegistry(ctx, c.cfg.V6RegistryEndpoint)
}

func (c *Client) fetchRegistry(ctx context.Context, url string) ([]RegistryRecord, error) {
	c.logger.Debug("registry lookup", "url", url)

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("xlookup: registry: %w", err)
	}
	return parseRegistryCSV(body)
}

// parseRegistryCSV 将注册表 CSV 解析为记录列表。
// 首行作为表头；后续行短于表头时缺失列省略，长于表头时多余列丢弃。
func parseRegistryCSV(data []byte) ([]RegistryRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: registry csv: %v", ErrDecodeFailed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: registry csv: empty document", ErrDecodeFailed)
	}

	header := rows[0]
	records := make([]RegistryRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(RegistryRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
