package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "supernet contains subnet", a: "10.0.0.0/8", b: "10.1.0.0/16", want: true},
		{name: "subnet does not contain supernet", a: "10.1.0.0/16", b: "10.0.0.0/8", want: false},
		{name: "contains itself", a: "10.1.0.0/16", b: "10.1.0.0/16", want: true},
		{name: "sibling networks", a: "10.1.0.0/16", b: "10.2.0.0/16", want: false},
		{name: "default route contains everything", a: "0.0.0.0/0", b: "203.0.113.9/32", want: true},
		{name: "host bits ignored on both sides", a: "10.1.1.99/16", b: "10.1.200.200/24", want: true},
		{name: "unrelated network", a: "192.168.0.0/16", b: "10.0.0.0/8", want: false},
		{name: "IPv6 supernet", a: "2001:db8::/32", b: "2001:db8:1::/48", want: true},
		{name: "IPv6 default route", a: "::/0", b: "2001:db8::1/128", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.a).Contains(MustParse(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsErrors(t *testing.T) {
	var zero Addr
	_, err := zero.Contains(MustParse("10.0.0.1"))
	assert.ErrorIs(t, err, ErrParse)

	_, err = MustParse("10.0.0.1/8").Contains(zero)
	assert.ErrorIs(t, err, ErrParse)

	_, err = MustParse("10.0.0.0/8").Contains(MustParse("2001:db8::/32"))
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestContainsAddr(t *testing.T) {
	net := MustParse("10.1.0.0/16")

	// 只看对方的主机地址，不看对方的掩码。
	ok, err := net.ContainsAddr(MustParse("10.1.2.3/8"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = net.ContainsAddr(MustParse("10.2.0.1"))
	require.NoError(t, err)
	assert.False(t, ok)

	// 对比：Contains 按网络区间算，/8 的区间装不进 /16。
	ok, err = net.Contains(MustParse("10.1.2.3/8"))
	require.NoError(t, err)
	assert.False(t, ok)
}
