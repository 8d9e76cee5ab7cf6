package xrange

import (
	"fmt"
	"slices"
	"strings"
)

// Add 将 expr 按嵌套范围表达式解析后整体并入集合（集合并语义）。
// expr 可以是纯范围文本（"5-7,11"），也可以带与当前集合一致的前缀
// （"Eth2/5-7"，大小写不敏感）；前缀不一致返回 [ErrPrefixMismatch]。
// 并入后重排去重。向空集合 Add 带前缀的表达式会采纳该前缀。
func (r *Range) Add(expr string) error {
	sub, err := r.parseCompatible(expr)
	if err != nil {
		return err
	}
	if r.Prefix() == "" && sub.Prefix() != "" {
		r.linePrefix = sub.linePrefix
		r.slotPrefix = sub.slotPrefix
	}
	r.idxs = append(r.idxs, sub.idxs...)
	r.normalize()
	return nil
}

// Remove 将 expr 展开后从集合中移除全部匹配的索引（集合差语义）。
// 移除不存在的成员是有意的静默空操作，便于幂等删除；
// 只有 expr 本身解析失败才返回错误。移除后重排去重。
func (r *Range) Remove(expr string) error {
	sub, err := r.parseCompatible(expr)
	if err != nil {
		return err
	}
	r.idxs = slices.DeleteFunc(r.idxs, func(v int) bool {
		return sub.Contains(v)
	})
	r.normalize()
	return nil
}

// parseCompatible 解析 expr 并校验其前缀与当前集合兼容
// （为空，或大小写不敏感地相同，或当前集合为空集合）。
func (r *Range) parseCompatible(expr string) (*Range, error) {
	sub, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if sub.Prefix() != "" && r.Prefix() != "" &&
		!strings.EqualFold(sub.Prefix(), r.Prefix()) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrPrefixMismatch, sub.Prefix(), r.Prefix())
	}
	return sub, nil
}
