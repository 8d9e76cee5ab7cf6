package xdns

import (
	"context"
	"time"
)

// RecordType 表示 DNS 记录类型。
type RecordType string

// 支持的记录类型。
const (
	RecordA     RecordType = "A"
	RecordAAAA  RecordType = "AAAA"
	RecordCNAME RecordType = "CNAME"
	RecordMX    RecordType = "MX"
	RecordNS    RecordType = "NS"
	RecordPTR   RecordType = "PTR"
	RecordTXT   RecordType = "TXT"
	// RecordAXFR 仅作为类型常量存在；[Client] 对它返回 [ErrUnsupported]。
	RecordAXFR RecordType = "AXFR"
)

// Response 是单条 DNS 查询结果的统一形状。
// 一次查询可能产生多条 Response（一个名字多个 A 记录）。
type Response struct {
	// QueryType 是发起查询的记录类型。
	QueryType RecordType `json:"query_type"`

	// Result 是结果文本（地址、目标名、TXT 内容等）。查询失败时为空。
	Result string `json:"result_str"`

	// Input 是查询输入（名字或地址）。
	Input string `json:"input"`

	// Duration 是本次查询耗时。
	Duration time.Duration `json:"duration"`

	// HasError 表示查询是否失败（NXDOMAIN、超时等）。
	HasError bool `json:"has_error"`

	// ErrorStr 是失败原因文本，仅 HasError 为 true 时非空。
	ErrorStr string `json:"error_str"`

	// Preference 是 MX 记录的优先级，其他记录类型恒为 -1。
	Preference int `json:"preference"`
}

// Resolver 是 DNS 查询能力接口。
// 实现必须把解析层面的失败编码进 [Response]，函数级 error 只表示
// 调用本身不合法；必须尊重 ctx 的取消与截止时间。
type Resolver interface {
	Query(ctx context.Context, name string, qtype RecordType) ([]Response, error)
}

// errResponse 构造一条失败响应。
func errResponse(qtype RecordType, input string, d time.Duration, err error) Response {
	return Response{
		QueryType:  qtype,
		Input:      input,
		Duration:   d,
		HasError:   true,
		ErrorStr:   err.Error(),
		Preference: -1,
	}
}

// okResponse 构造一条成功响应（Preference 默认 -1，MX 路径另行覆盖）。
func okResponse(qtype RecordType, input, result string, d time.Duration) Response {
	return Response{
		QueryType:  qtype,
		Input:      input,
		Result:     result,
		Duration:   d,
		Preference: -1,
	}
}
