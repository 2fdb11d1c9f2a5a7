package xlookup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 节选自 IANA IPv4 特殊地址注册表，保留带引号的多值单元格。
const sampleV4Registry = `Address Block,Name,RFC,Allocation Date,Termination Date,Source,Destination,Forwardable,Globally Reachable,Reserved-by-Protocol
0.0.0.0/8,"""This network""",[RFC791],1981-09,N/A,True,False,False,False,True
10.0.0.0/8,Private-Use,[RFC1918],1996-02,N/A,True,True,True,False,False
"192.0.0.0/29, 192.0.0.8/32",IPv4 Service Continuity Prefix,[RFC7335],2011-06,N/A,True,True,True,False,False
`

func TestParseRegistryCSV(t *testing.T) {
	records, err := parseRegistryCSV([]byte(sampleV4Registry))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "0.0.0.0/8", records[0].AddressBlock())
	assert.Equal(t, `"This network"`, records[0].Name())
	assert.Equal(t, "[RFC791]", records[0].RFC())

	assert.Equal(t, "10.0.0.0/8", records[1].AddressBlock())
	assert.Equal(t, "Private-Use", records[1].Name())

	// 带引号的多块单元格保持原始文本。
	assert.Equal(t, "192.0.0.0/29, 192.0.0.8/32", records[2].AddressBlock())

	// 所有表头列都可按名访问。
	assert.Equal(t, "True", records[1]["Source"])
	assert.Equal(t, "1996-02", records[1]["Allocation Date"])
}

func TestParseRegistryCSV_ShortRow(t *testing.T) {
	records, err := parseRegistryCSV([]byte("Address Block,Name,RFC\n::1/128,Loopback\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "::1/128", records[0].AddressBlock())
	assert.Equal(t, "Loopback", records[0].Name())
	_, ok := records[0]["RFC"]
	assert.False(t, ok)
}

func TestParseRegistryCSV_Empty(t *testing.T) {
	_, err := parseRegistryCSV(nil)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestParseRegistryCSV_Malformed(t *testing.T) {
	_, err := parseRegistryCSV([]byte("a,b\n\"unterminated"))
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestClient_PrivateV4Registry(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		DefaultConfig().V4RegistryEndpoint: []byte(sampleV4Registry),
	}}
	c := New(WithFetcher(fetcher))

	records, err := c.PrivateV4Registry(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestClient_PrivateV6Registry(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		DefaultConfig().V6RegistryEndpoint: []byte("Address Block,Name,RFC\n::1/128,Loopback Address,[RFC4291]\nfc00::/7,Unique-Local,[RFC4193]\n"),
	}}
	c := New(WithFetcher(fetcher))

	records, err := c.PrivateV6Registry(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "fc00::/7", records[1].AddressBlock())
	assert.Equal(t, "Unique-Local", records[1].Name())
	assert.Equal(t, "[RFC4193]", records[1].RFC())
}
