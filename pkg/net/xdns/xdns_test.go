package xdns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInvalidCalls(t *testing.T) {
	c := NewClient()
	ctx := context.Background()

	_, err := c.Query(ctx, "", RecordA)
	assert.ErrorIs(t, err, ErrBadQuery)

	_, err = c.Query(ctx, "example.com", RecordAXFR)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = c.Query(ctx, "example.com", RecordType("SRV"))
	assert.ErrorIs(t, err, ErrUnsupported)

	// PTR 的输入必须是地址。
	_, err = c.Query(ctx, "not-an-address", RecordPTR)
	assert.ErrorIs(t, err, ErrBadQuery)
}

// 解析层面的失败编码在 Response 里，而不是函数级 error。
func TestQueryLookupFailureEncodedInResponse(t *testing.T) {
	// 指向保证不可达的服务器，超时短到立刻失败。
	c := NewClient(
		WithServer("192.0.2.1"),
		WithTimeout(50*time.Millisecond),
	)

	resps, err := c.Query(context.Background(), "example.invalid", RecordA)
	require.NoError(t, err)
	require.Len(t, resps, 1)

	r := resps[0]
	assert.True(t, r.HasError)
	assert.NotEmpty(t, r.ErrorStr)
	assert.Empty(t, r.Result)
	assert.Equal(t, "example.invalid", r.Input)
	assert.Equal(t, RecordA, r.QueryType)
	assert.Equal(t, -1, r.Preference)
	assert.Greater(t, r.Duration, time.Duration(0))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.res)
	assert.NotNil(t, c.logger)

	// 非法选项值被忽略。
	c = NewClient(WithTimeout(-1), WithLogger(nil), WithServer(""), WithNetResolver(nil))
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.res)
}

func TestSettingsOptions(t *testing.T) {
	s := Settings{Server: "10.0.0.53", Timeout: 5 * time.Second}
	c := NewClient(s.Options()...)
	assert.Equal(t, 5*time.Second, c.timeout)

	// 零值 Settings 不覆盖默认值。
	c = NewClient(Settings{}.Options()...)
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestResponseJSONShape(t *testing.T) {
	r := okResponse(RecordMX, "example.com", "mail.example.com.", 3*time.Millisecond)
	r.Preference = 10

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query_type": "MX",
		"result_str": "mail.example.com.",
		"input": "example.com",
		"duration": 3000000,
		"has_error": false,
		"error_str": "",
		"preference": 10
	}`, string(data))
}

func TestReverseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.1.2.3", "3.2.1.10.in-addr.arpa"},
		{"192.0.2.255", "255.2.0.192.in-addr.arpa"},
		{"2001:db8::1", "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseName(netip.MustParseAddr(tt.input)))
		})
	}

	assert.Equal(t, "", ReverseName(netip.Addr{}))
}

// fakeResolver 是测试用的内存解析器。
type fakeResolver struct {
	records map[string][]string
	calls   atomic.Int64
	failOn  string // 该名字返回调用级错误
}

func (f *fakeResolver) Query(ctx context.Context, name string, qtype RecordType) ([]Response, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == f.failOn {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, qtype)
	}
	results, ok := f.records[name]
	if !ok {
		return []Response{errResponse(qtype, name, time.Millisecond, errors.New("no such host"))}, nil
	}
	out := make([]Response, 0, len(results))
	for _, r := range results {
		out = append(out, okResponse(qtype, name, r, time.Millisecond))
	}
	return out, nil
}

func TestQueryAll(t *testing.T) {
	f := &fakeResolver{records: map[string][]string{
		"a.example.com": {"192.0.2.1"},
		"b.example.com": {"192.0.2.2", "192.0.2.3"},
	}}

	got, err := QueryAll(context.Background(),
		f,
		[]string{"a.example.com", "b.example.com", "missing.example.com"},
		RecordA, 2)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "192.0.2.1", got["a.example.com"][0].Result)
	assert.Len(t, got["b.example.com"], 2)
	assert.True(t, got["missing.example.com"][0].HasError)
}

func TestQueryAllDeduplicates(t *testing.T) {
	f := &fakeResolver{records: map[string][]string{
		"a.example.com": {"192.0.2.1"},
	}}

	got, err := QueryAll(context.Background(),
		f,
		[]string{"a.example.com", "a.example.com", "a.example.com"},
		RecordA, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), f.calls.Load())
}

func TestQueryAllCallLevelErrorAborts(t *testing.T) {
	f := &fakeResolver{
		records: map[string][]string{"a.example.com": {"192.0.2.1"}},
		failOn:  "bad.example.com",
	}

	_, err := QueryAll(context.Background(),
		f,
		[]string{"a.example.com", "bad.example.com"},
		RecordA, 2)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestQueryAllEmptyInput(t *testing.T) {
	got, err := QueryAll(context.Background(), &fakeResolver{}, nil, RecordA, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
