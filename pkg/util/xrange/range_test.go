package xrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
		wantIdxs   []int
		wantErr    error
	}{
		{
			name:       "single number",
			input:      "5",
			wantPrefix: "",
			wantIdxs:   []int{5},
		},
		{
			name:       "simple span",
			input:      "1-5",
			wantIdxs:   []int{1, 2, 3, 4, 5},
		},
		{
			name:       "mixed atoms",
			input:      "1-3,5,9-10",
			wantIdxs:   []int{1, 2, 3, 5, 9, 10},
		},
		{
			name:       "line prefix",
			input:      "Eth1-3",
			wantPrefix: "Eth",
			wantIdxs:   []int{1, 2, 3},
		},
		{
			name:       "slot prefix",
			input:      "Eth2/1-3,5",
			wantPrefix: "Eth2/",
			wantIdxs:   []int{1, 2, 3, 5},
		},
		{
			name:       "deep slot path",
			input:      "Gi1/0/1-4",
			wantPrefix: "Gi1/0/",
			wantIdxs:   []int{1, 2, 3, 4},
		},
		{
			name:       "prefix with space",
			input:      "interface Eth2/1-3",
			wantPrefix: "interface Eth2/",
			wantIdxs:   []int{1, 2, 3},
		},
		{
			name:     "whitespace around dash",
			input:    "1 - 3",
			wantIdxs: []int{1, 2, 3},
		},
		{
			name:     "overlapping atoms are deduplicated",
			input:    "1-5,3-7",
			wantIdxs: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:     "unsorted atoms are sorted",
			input:    "9,1,5",
			wantIdxs: []int{1, 5, 9},
		},
		{
			name:     "empty input yields empty set",
			input:    "",
			wantIdxs: nil,
		},
		{
			name:    "descending bounds",
			input:   "9-3",
			wantErr: ErrOrder,
		},
		{
			name:    "garbage",
			input:   "Eth2/a-b",
			wantErr: ErrParse,
		},
		{
			name:    "bare prefix without index",
			input:   "Eth2/",
			wantErr: ErrParse,
		},
		{
			name:    "bad later atom",
			input:   "Eth2/1-3,x",
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, r.Prefix())
			assert.Equal(t, tt.wantIdxs, r.Indexes())
		})
	}
}

func TestItems(t *testing.T) {
	r := MustParse("Eth2/1-3,5,9-10")
	assert.Equal(t,
		[]string{"Eth2/1", "Eth2/2", "Eth2/3", "Eth2/5", "Eth2/9", "Eth2/10"},
		r.Items())
	assert.Equal(t, 6, r.Len())
}

// 数值序而非字典序："10" 在 "9" 之后。
func TestItemsNumericOrder(t *testing.T) {
	r := MustParse("Eth1/9-11")
	assert.Equal(t, []string{"Eth1/9", "Eth1/10", "Eth1/11"}, r.Items())
}

func TestContains(t *testing.T) {
	r := MustParse("1-3,7")
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(0))
}

func TestEqual(t *testing.T) {
	a := MustParse("Eth1/1-3")
	b := MustParse("eth1/3,2,1")
	c := MustParse("Eth1/1-4")
	d := MustParse("Gi1/1-3")

	// 前缀大小写不敏感，集合与插入顺序无关。
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, MustParse("").Equal(MustParse("")))

	var nilRange *Range
	assert.False(t, a.Equal(nilRange))
	assert.True(t, nilRange.Equal(nilRange))
}

func TestClone(t *testing.T) {
	a := MustParse("Eth1/1-3")
	b := a.Clone()
	require.NoError(t, b.Add("5"))

	assert.True(t, b.Contains(5))
	assert.False(t, a.Contains(5))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Eth2/1-3,5", MustParse("Eth2/1,2,3,5").String())
	assert.Equal(t, "[]", MustParse("").String())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("9-3")
	})
}
