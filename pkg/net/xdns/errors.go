package xdns

import "errors"

var (
	// ErrBadQuery 表示查询输入不合法（空名字、PTR 查询传入非地址等）。
	ErrBadQuery = errors.New("xdns: invalid query input")

	// ErrUnsupported 表示不支持的记录类型（如 AXFR）。
	ErrUnsupported = errors.New("xdns: unsupported record type")
)
