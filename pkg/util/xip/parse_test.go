package xip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"192.168.1.1", "192.168.1.1"},
			{"8.8.8.8", "8.8.8.8"},
			{"0.0.0.0", "0.0.0.0"},
			{"255.255.255.255", "255.255.255.255"},
			{"::1", "::1"},
			{"2001:db8::1", "2001:db8::1"},
			{"fe80::1%eth0", "fe80::1%eth0"},
		}
		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				addr, err := Parse(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, addr.String())
			})
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		tests := []string{
			"",
			"not-an-ip",
			"256.1.1.1",
			"1.2.3",
			"1.2.3.4.5",
			"2001:db8::zzzz",
			" 192.168.1.1", // 不做空白修剪
			"192.168.1.1 ",
		}
		for _, input := range tests {
			t.Run(input, func(t *testing.T) {
				_, err := Parse(input)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAddress))
			})
		}
	})
}

func TestIsIPAddress(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.0.0.1", true},
		{"8.8.8.8", true},
		{"::1", true},
		{"2001:db8::1", true},
		{"::ffff:192.168.1.1", true},

		// 解析失败折叠为 false，不抛错误
		{"not-an-ip", false},
		{"", false},
		{"999.1.1.1", false},
		{"1.2.3", false},
		{"8.8.8.8/24", false}, // CIDR 不是单地址
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIPAddress(tt.input))
		})
	}
}
