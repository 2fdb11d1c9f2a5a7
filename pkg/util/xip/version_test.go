package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "IPv4", V4.String())
	assert.Equal(t, "IPv6", V6.String())
	assert.Equal(t, "unknown", V0.String())
	assert.Equal(t, "unknown", Version(5).String())
}

func TestAddrVersion(t *testing.T) {
	tests := []struct {
		addr string
		want Version
	}{
		{"192.168.1.1", V4},
		{"0.0.0.0", V4},
		{"255.255.255.255", V4},
		{"::1", V6},
		{"2001:db8::1", V6},
		{"fe80::1", V6},

		// IPv4-mapped IPv6 是 16 字节表示，版本跟随写法
		{"::ffff:192.168.1.1", V6},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.addr)
			assert.Equal(t, tt.want, AddrVersion(addr))
		})
	}

	t.Run("invalid addr", func(t *testing.T) {
		assert.Equal(t, V0, AddrVersion(netip.Addr{}))
	})
}

func TestVersionOf(t *testing.T) {
	t.Run("dotted quad returns 4", func(t *testing.T) {
		for _, s := range []string{"1.2.3.4", "10.0.0.1", "8.8.8.8", "0.0.0.0"} {
			v, err := VersionOf(s)
			require.NoError(t, err)
			assert.Equal(t, V4, v)
			assert.Equal(t, 4, int(v))
		}
	})

	t.Run("colon hextets return 6", func(t *testing.T) {
		for _, s := range []string{"::1", "2001:db8::1", "fe80::ffff"} {
			v, err := VersionOf(s)
			require.NoError(t, err)
			assert.Equal(t, V6, v)
			assert.Equal(t, 6, int(v))
		}
	})

	t.Run("mapped form is written as IPv6", func(t *testing.T) {
		v, err := VersionOf("::ffff:1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, V6, v)
	})

	t.Run("invalid input", func(t *testing.T) {
		v, err := VersionOf("not-an-ip")
		require.ErrorIs(t, err, ErrInvalidAddress)
		assert.Equal(t, V0, v)
	})
}
