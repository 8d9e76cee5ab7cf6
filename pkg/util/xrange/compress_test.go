package xrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single", input: "5", want: "5"},
		{name: "pair stays explicit", input: "5,6", want: "5,6"},
		{name: "run of three collapses", input: "5,6,7", want: "5-7"},
		{name: "mixed runs", input: "1,2,3,5,9,10,11,13", want: "1-3,5,9-11,13"},
		{name: "prefix written once", input: "Eth2/1,2,3,5", want: "Eth2/1-3,5"},
		{name: "adjacent pairs stay comma separated", input: "1,2,4,5", want: "1,2,4,5"},
		{name: "long run", input: "1-100", want: "1-100"},
		{name: "trailing pair", input: "1-3,7,8", want: "1-3,7,8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.input).Compressed())
		})
	}
}

// Parse 与 Compressed 互为往返：已最短的文本压缩后不变。
func TestCompressedRoundTrip(t *testing.T) {
	for _, text := range []string{
		"1-3,5,9-11,13",
		"Eth2/1-3,5",
		"Gi1/0/1-48",
		"5,6",
	} {
		t.Run(text, func(t *testing.T) {
			r, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, text, r.Compressed())

			// 压缩文本再次解析得到相同集合。
			again, err := Parse(r.Compressed())
			require.NoError(t, err)
			assert.True(t, r.Equal(again))
		})
	}
}

func TestCompressedAfterMutation(t *testing.T) {
	r := MustParse("Eth2/1,5,9")
	require.NoError(t, r.Add("2-4"))
	// 并入后游程重新识别。
	assert.Equal(t, "Eth2/1-5,9", r.Compressed())

	require.NoError(t, r.Remove("3"))
	assert.Equal(t, "Eth2/1,2,4,5,9", r.Compressed())
}
