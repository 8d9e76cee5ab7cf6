package xdns

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"strconv"
	"time"

	"github.com/dataway/ciscoconfparse/pkg/util/xaddr"
)

// DefaultTimeout 是未显式配置时的单次查询超时。
const DefaultTimeout = 2 * time.Second

// Client 是 [Resolver] 的默认实现：标准库 [net.Resolver] 的薄封装，
// 支持指定目标 DNS 服务器与查询超时。构造后并发安全。
type Client struct {
	res     *net.Resolver
	timeout time.Duration
	logger  *slog.Logger
}

// Option 定义 Client 配置选项。
type Option func(*Client)

// WithServer 将所有查询定向到指定的 DNS 服务器（IP 或主机名，默认 53 端口；
// 带端口的 "host:port" 形式原样使用）。不设置时使用系统解析配置。
func WithServer(server string) Option {
	return func(c *Client) {
		if server == "" {
			return
		}
		addr := server
		if _, _, err := net.SplitHostPort(server); err != nil {
			addr = net.JoinHostPort(server, "53")
		}
		c.res = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		}
	}
}

// WithTimeout 设置单次查询超时，非正值忽略。默认 [DefaultTimeout]。
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger 设置调试日志输出。默认丢弃。
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNetResolver 直接注入底层解析器，主要用于测试。
func WithNetResolver(r *net.Resolver) Option {
	return func(c *Client) {
		if r != nil {
			c.res = r
		}
	}
}

// Settings 是可从配置文件反序列化的 Client 参数。
type Settings struct {
	// Server 是目标 DNS 服务器（空值使用系统解析配置）。
	Server string `koanf:"server"`

	// Timeout 是单次查询超时（如 "2s"）。
	Timeout time.Duration `koanf:"timeout"`
}

// Options 将 Settings 转换为等价的选项序列。
func (s Settings) Options() []Option {
	return []Option{WithServer(s.Server), WithTimeout(s.Timeout)}
}

// NewClient 创建查询客户端。
func NewClient(opts ...Option) *Client {
	c := &Client{
		res:     net.DefaultResolver,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query 执行一次 DNS 查询。
// 解析失败编码在返回的单条 [Response] 里（HasError=true）；
// error 仅表示调用不合法：空名字返回 [ErrBadQuery]，
// AXFR 或未知记录类型返回 [ErrUnsupported]。
func (c *Client) Query(ctx context.Context, name string, qtype RecordType) ([]Response, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrBadQuery)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var (
		results []string
		prefs   []int
		err     error
	)

	switch qtype {
	case RecordA:
		results, err = c.lookupIP(ctx, "ip4", name)
	case RecordAAAA:
		results, err = c.lookupIP(ctx, "ip6", name)
	case RecordCNAME:
		var target string
		target, err = c.res.LookupCNAME(ctx, name)
		if err == nil {
			results = []string{target}
		}
	case RecordMX:
		var recs []*net.MX
		recs, err = c.res.LookupMX(ctx, name)
		for _, mx := range recs {
			results = append(results, mx.Host)
			prefs = append(prefs, int(mx.Pref))
		}
	case RecordNS:
		var recs []*net.NS
		recs, err = c.res.LookupNS(ctx, name)
		for _, ns := range recs {
			results = append(results, ns.Host)
		}
	case RecordTXT:
		results, err = c.res.LookupTXT(ctx, name)
	case RecordPTR:
		return c.queryPTR(ctx, name, start)
	case RecordAXFR:
		return nil, fmt.Errorf("%w: AXFR requires a full zone-transfer implementation", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, qtype)
	}

	duration := time.Since(start)
	if err != nil {
		c.logger.DebugContext(ctx, "dns query failed",
			slog.String("name", name),
			slog.String("type", string(qtype)),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return []Response{errResponse(qtype, name, duration, err)}, nil
	}

	out := make([]Response, 0, len(results))
	for i, r := range results {
		resp := okResponse(qtype, name, r, duration)
		if qtype == RecordMX {
			resp.Preference = prefs[i]
		}
		out = append(out, resp)
	}
	return out, nil
}

// lookupIP 查询 A 或 AAAA 记录（network 为 "ip4" 或 "ip6"）。
func (c *Client) lookupIP(ctx context.Context, network, name string) ([]string, error) {
	ips, err := c.res.LookupIP(ctx, network, name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ips))
	for i, ip := range ips {
		out[i] = ip.String()
	}
	return out, nil
}

// queryPTR 执行反向查询。输入必须是 IPv4/IPv6 地址文本
// （前导零八位段等 [xaddr.Parse] 接受的形式都可以）。
func (c *Client) queryPTR(ctx context.Context, input string, start time.Time) ([]Response, error) {
	a, err := xaddr.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: PTR needs an IP address, got %q", ErrBadQuery, input)
	}

	names, err := c.res.LookupAddr(ctx, a.HostAddr().String())
	duration := time.Since(start)
	if err != nil {
		return []Response{errResponse(RecordPTR, input, duration, err)}, nil
	}
	out := make([]Response, 0, len(names))
	for _, n := range names {
		out = append(out, okResponse(RecordPTR, input, n, duration))
	}
	return out, nil
}

// ReverseName 返回地址的反向解析域名
// （IPv4: d.c.b.a.in-addr.arpa；IPv6: 逐 nibble 的 ip6.arpa）。
// 无效地址返回空字符串。
func ReverseName(ip netip.Addr) string {
	if !ip.IsValid() {
		return ""
	}
	if ip.Is4() {
		b := ip.As4()
		return strconv.Itoa(int(b[3])) + "." + strconv.Itoa(int(b[2])) + "." +
			strconv.Itoa(int(b[1])) + "." + strconv.Itoa(int(b[0])) + ".in-addr.arpa"
	}
	const hexdigit = "0123456789abcdef"
	b := ip.As16()
	buf := make([]byte, 0, 72)
	for i := 15; i >= 0; i-- {
		buf = append(buf, hexdigit[b[i]&0xF], '.', hexdigit[b[i]>>4], '.')
	}
	return string(buf) + "ip6.arpa"
}
