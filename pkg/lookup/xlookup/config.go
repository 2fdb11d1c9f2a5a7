package xlookup

import (
	"fmt"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 表示配置源格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 定义查询客户端的端点与超时。
// 零值字段在 New 时回落到 DefaultConfig 的对应值。
type Config struct {
	// WhoisEndpoint 为 whois 查询服务的基地址，按 <base>/<ip>/json/ 组装请求。
	WhoisEndpoint string `koanf:"whois_endpoint" json:"whois_endpoint" yaml:"whois_endpoint"`

	// CurrentEndpoint 返回调用方出口地址信息的完整 URL。
	CurrentEndpoint string `koanf:"current_endpoint" json:"current_endpoint" yaml:"current_endpoint"`

	// V4RegistryEndpoint 为 IANA IPv4 特殊地址注册表 CSV 的完整 URL。
	V4RegistryEndpoint string `koanf:"v4_registry_endpoint" json:"v4_registry_endpoint" yaml:"v4_registry_endpoint"`

	// V6RegistryEndpoint 为 IANA IPv6 特殊地址注册表 CSV 的完整 URL。
	V6RegistryEndpoint string `koanf:"v6_registry_endpoint" json:"v6_registry_endpoint" yaml:"v6_registry_endpoint"`

	// Timeout 为单次请求超时。
	Timeout time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout"`
}

// DefaultConfig 返回指向公开服务的默认配置。
func DefaultConfig() Config {
	return Config{
		WhoisEndpoint:      "https://ipapi.co",
		CurrentEndpoint:    "https://ipinfo.io/json",
		V4RegistryEndpoint: "https://www.iana.org/assignments/iana-ipv4-special-registry/iana-ipv4-special-registry-1.csv",
		V6RegistryEndpoint: "https://www.iana.org/assignments/iana-ipv6-special-registry/iana-ipv6-special-registry-1.csv",
		Timeout:            DefaultTimeout,
	}
}

// LoadConfig 从原始字节解析配置，未出现的键保持 DefaultConfig 的值。
func LoadConfig(data []byte, format Format) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoadFailed, err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoadFailed, err)
	}
	return cfg, nil
}

// withDefaults 将零值字段填充为默认值。
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.WhoisEndpoint == "" {
		c.WhoisEndpoint = def.WhoisEndpoint
	}
	if c.CurrentEndpoint == "" {
		c.CurrentEndpoint = def.CurrentEndpoint
	}
	if c.V4RegistryEndpoint == "" {
		c.V4RegistryEndpoint = def.V4RegistryEndpoint
	}
	if c.V6RegistryEndpoint == "" {
		c.V6RegistryEndpoint = def.V6RegistryEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}
