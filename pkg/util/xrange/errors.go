package xrange

import "errors"

var (
	// ErrParse 表示范围文本不符合受支持的文法。
	ErrParse = errors.New("xrange: invalid range text")

	// ErrOrder 表示短横线原子的右界小于左界（如 "9-3"）。
	ErrOrder = errors.New("xrange: descending range bounds")

	// ErrPrefixMismatch 表示 Add/Remove 的参数带有与当前集合不同的前缀。
	ErrPrefixMismatch = errors.New("xrange: mismatched range prefix")
)
