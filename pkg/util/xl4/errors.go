package xl4

import "errors"

var (
	// ErrParse 表示端口规格文本无法解析。
	ErrParse = errors.New("xl4: invalid port spec")

	// ErrOutOfRange 表示端口号超出 [0, 65535] 或 range 的右界小于左界。
	ErrOutOfRange = errors.New("xl4: port out of range")

	// ErrUnsupported 表示未知的协议或配置方言。
	ErrUnsupported = errors.New("xl4: unsupported protocol or syntax")
)
