package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPadded(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.1.1.1/24", "010.001.001.001"},
		{"0.0.0.0", "000.000.000.000"},
		{"255.255.255.255", "255.255.255.255"},
		{"192.168.1.100/16", "192.168.001.100"},
		{"2001:db8::1/64", "2001:0db8:0000:0000:0000:0000:0000:0001"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.input).ZeroPadded())
		})
	}
}

func TestZeroPaddedNetwork(t *testing.T) {
	assert.Equal(t, "010.001.001.000/24", MustParse("10.1.1.1/24").ZeroPaddedNetwork())
	assert.Equal(t, "010.000.000.000/8", MustParse("10.1.1.1/8").ZeroPaddedNetwork())
	assert.Equal(t, "2001:0db8:0000:0000:0000:0000:0000:0000/64",
		MustParse("2001:db8::1/64").ZeroPaddedNetwork())
}

// 零填充文本的字典序与地址数值序一致，这是该格式存在的意义。
func TestZeroPaddedSortsLexically(t *testing.T) {
	lo := MustParse("9.9.9.9").ZeroPadded()
	hi := MustParse("10.0.0.0").ZeroPadded()
	assert.Less(t, lo, hi)
}

func TestBinaryTuple(t *testing.T) {
	got := MustParse("10.1.1.1/24").BinaryTuple()
	assert.Equal(t, []string{"00001010", "00000001", "00000001", "00000001"}, got)

	got6 := MustParse("2001:db8::1/64").BinaryTuple()
	assert.Len(t, got6, 8)
	assert.Equal(t, "0010000000000001", got6[0]) // 0x2001
	assert.Equal(t, "0000110110111000", got6[1]) // 0x0db8
	assert.Equal(t, "0000000000000001", got6[7])
}

func TestHexTuple(t *testing.T) {
	got := MustParse("10.1.255.1/24").HexTuple()
	assert.Equal(t, []string{"0a", "01", "ff", "01"}, got)

	got6 := MustParse("2001:db8::1/64").HexTuple()
	assert.Equal(t, []string{"2001", "0db8", "0000", "0000", "0000", "0000", "0000", "0001"}, got6)
}

func TestStringEqualsCIDRAddr(t *testing.T) {
	a := MustParse("172.16.1.5/24")
	assert.Equal(t, a.CIDRAddr(), a.String())
}
