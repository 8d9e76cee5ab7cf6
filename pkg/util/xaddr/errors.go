package xaddr

import "errors"

var (
	// ErrParse 表示地址文本不符合受支持的语法。
	ErrParse = errors.New("xaddr: invalid address text")

	// ErrOutOfRange 表示数值超出地址族的合法范围（整数构造、算术运算或掩码长度）。
	ErrOutOfRange = errors.New("xaddr: value out of range for address family")

	// ErrHostBits 表示严格模式下输入的主机位非零。
	ErrHostBits = errors.New("xaddr: host bits set")

	// ErrUnsupported 表示该地址族不支持请求的操作（如 IPv6 广播地址）。
	ErrUnsupported = errors.New("xaddr: operation not supported for this address family")

	// ErrVersionMismatch 表示跨地址族的比较或包含判断。
	ErrVersionMismatch = errors.New("xaddr: mismatched IP versions")

	// ErrNilReceiver 表示对 nil 指针调用了反序列化方法。
	ErrNilReceiver = errors.New("xaddr: nil receiver")
)
