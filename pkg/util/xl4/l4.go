package xl4

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Syntax 表示端口规格所属的配置方言。
type Syntax string

// SyntaxASA 是目前唯一支持的方言（ASA 风格算符与服务名表）。
const SyntaxASA Syntax = "asa"

const maxPort = 65535

// Span 表示一个闭区间端口范围 [Lo, Hi]。
type Span struct {
	Lo, Hi int
}

// Object 表示解析后的传输层端口条件：协议加一组互不重叠的端口区间。
// 构造后不可变。
type Object struct {
	// Protocol 是传输层协议名（"tcp" 或 "udp"）。
	Protocol string
	syntax   Syntax
	// spans 按 Lo 升序且互不重叠（normalize 维护）。
	spans []Span
}

// Parse 解析 ASA 风格端口规格。支持的算符：
//   - "eq N"、裸值 "N"（eq 可省略）
//   - "range A B"（含两端）
//   - "lt N"  →  [1, N-1]
//   - "gt N"  →  [N+1, 65535]
//   - "neq N" →  [1, N-1] ∪ [N+1, 65535]
//
// N/A/B 可以是数字或方言服务名（"www"、"domain"）。
// 未知协议或方言返回 [ErrUnsupported]。
func Parse(protocol, portSpec string, syntax Syntax) (*Object, error) {
	if syntax != SyntaxASA {
		return nil, fmt.Errorf("%w: syntax %q", ErrUnsupported, syntax)
	}

	var names map[string]int
	switch protocol {
	case "tcp":
		names = asaTCPPorts
	case "udp":
		names = asaUDPPorts
	default:
		return nil, fmt.Errorf("%w: protocol %q", ErrUnsupported, protocol)
	}

	fields := strings.Fields(portSpec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty port spec", ErrParse)
	}

	o := &Object{Protocol: protocol, syntax: syntax}
	op, args := fields[0], fields[1:]
	switch op {
	case "eq":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrParse, portSpec)
		}
		p, err := lookupPort(args[0], names)
		if err != nil {
			return nil, err
		}
		o.spans = []Span{{p, p}}
	case "range":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrParse, portSpec)
		}
		lo, err := lookupPort(args[0], names)
		if err != nil {
			return nil, err
		}
		hi, err := lookupPort(args[1], names)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: range %d-%d", ErrOutOfRange, lo, hi)
		}
		o.spans = []Span{{lo, hi}}
	case "lt":
		p, err := singleArg(args, names, portSpec)
		if err != nil {
			return nil, err
		}
		if p > 1 {
			o.spans = []Span{{1, p - 1}}
		}
	case "gt":
		p, err := singleArg(args, names, portSpec)
		if err != nil {
			return nil, err
		}
		if p < maxPort {
			o.spans = []Span{{p + 1, maxPort}}
		}
	case "neq":
		p, err := singleArg(args, names, portSpec)
		if err != nil {
			return nil, err
		}
		if p > 1 {
			o.spans = append(o.spans, Span{1, p - 1})
		}
		if p < maxPort {
			o.spans = append(o.spans, Span{p + 1, maxPort})
		}
	default:
		// 裸值等价于省略 "eq"。
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrParse, portSpec)
		}
		p, err := lookupPort(op, names)
		if err != nil {
			return nil, err
		}
		o.spans = []Span{{p, p}}
	}
	return o, nil
}

func singleArg(args []string, names map[string]int, spec string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrParse, spec)
	}
	return lookupPort(args[0], names)
}

// lookupPort 将服务名或数字文本转换为端口号。
func lookupPort(s string, names map[string]int) (int, error) {
	if p, ok := names[s]; ok {
		return p, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown port %q", ErrParse, s)
	}
	if p < 0 || p > maxPort {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, p)
	}
	return p, nil
}

// Matches 报告端口号是否命中任一区间。
func (o *Object) Matches(port int) bool {
	for _, s := range o.spans {
		if port >= s.Lo && port <= s.Hi {
			return true
		}
	}
	return false
}

// Spans 返回端口区间副本（按 Lo 升序）。
func (o *Object) Spans() []Span {
	return slices.Clone(o.spans)
}

// Count 返回命中的端口总数。
func (o *Object) Count() int {
	n := 0
	for _, s := range o.spans {
		n += s.Hi - s.Lo + 1
	}
	return n
}

// Equal 报告两个条件是否等价：协议相同且区间集合相同。
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Protocol == other.Protocol && slices.Equal(o.spans, other.spans)
}

// String 返回 "<L4Object tcp [{21 21}]>" 形式的调试文本。
func (o *Object) String() string {
	return fmt.Sprintf("<L4Object %s %v>", o.Protocol, o.spans)
}
