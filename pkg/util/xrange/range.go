package xrange

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// rangeRE 匹配首个逗号字段的整体结构：字母/空白线路前缀，
// 以 "/" 结尾的数字槽位路径，然后是首个整数或 start-end 原子。
var rangeRE = regexp.MustCompile(`^(?P<line>[a-zA-Z\s]*)(?P<slot>(?:\d+/)*)(?P<text>\d+(?:\s*-\s*\d+)?)\s*$`)

// Range 表示一组展开后的接口/端口标识符：
// 共享的 线路前缀+槽位前缀，加一个有序去重的数字索引集合。
//
// 零值是空集合。*Range 可变但非并发安全。
type Range struct {
	linePrefix string
	slotPrefix string
	// idxs 始终保持升序且无重复（normalize 维护）。
	idxs []int
}

// Parse 解析范围表达式并展开为显式集合。
// 空字符串返回空集合。结构不匹配返回 [ErrParse]，
// 原子右界小于左界返回 [ErrOrder]。
func Parse(text string) (*Range, error) {
	text = strings.TrimSpace(text)
	r := &Range{}
	if text == "" {
		return r, nil
	}

	atoms := strings.Split(text, ",")
	m := rangeRE.FindStringSubmatch(strings.TrimSpace(atoms[0]))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrParse, text)
	}
	r.linePrefix = m[rangeRE.SubexpIndex("line")]
	r.slotPrefix = m[rangeRE.SubexpIndex("slot")]

	// 首个原子已经剥掉前缀，其余原子本来就是纯数字/短横线文本。
	atoms[0] = m[rangeRE.SubexpIndex("text")]
	for _, atom := range atoms {
		if err := r.expandAtom(atom); err != nil {
			return nil, err
		}
	}
	r.normalize()
	return r, nil
}

// MustParse 与 [Parse] 相同，但失败时 panic。
func MustParse(text string) *Range {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

// expandAtom 将单个 "n" 或 "start-end" 原子展开进索引集合。
// 同一数值允许出现在多个原子中，去重由 normalize 完成。
func (r *Range) expandAtom(atom string) error {
	atom = strings.TrimSpace(atom)
	start, end := atom, atom
	if idx := strings.Index(atom, "-"); idx >= 0 {
		start, end = atom[:idx], atom[idx+1:]
	}
	lo, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return fmt.Errorf("%w: bad atom %q", ErrParse, atom)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return fmt.Errorf("%w: bad atom %q", ErrParse, atom)
	}
	if hi < lo {
		return fmt.Errorf("%w: %q", ErrOrder, atom)
	}
	// 右界内部按 end+1 存放，生成循环用半开区间。
	for i := lo; i < hi+1; i++ {
		r.idxs = append(r.idxs, i)
	}
	return nil
}

// normalize 恢复集合不变量：升序、无重复。
// 每个变更操作结束前都必须调用。
func (r *Range) normalize() {
	slices.Sort(r.idxs)
	r.idxs = slices.Compact(r.idxs)
}

// Prefix 返回共享前缀（线路前缀+槽位前缀），如 "Eth2/"。
func (r *Range) Prefix() string {
	return r.linePrefix + r.slotPrefix
}

// Len 返回集合中的索引数量。
func (r *Range) Len() int {
	return len(r.idxs)
}

// Indexes 返回升序的数字索引副本。
func (r *Range) Indexes() []int {
	return slices.Clone(r.idxs)
}

// Items 返回完整标识符列表，每项为 前缀+索引（如 "Eth2/1"）。
// 顺序与 [Range.Indexes] 一致（数值序，"10" 在 "9" 之后）。
func (r *Range) Items() []string {
	items := make([]string, len(r.idxs))
	prefix := r.Prefix()
	for i, v := range r.idxs {
		items[i] = prefix + strconv.Itoa(v)
	}
	return items
}

// Contains 报告索引 idx 是否在集合中。
func (r *Range) Contains(idx int) bool {
	_, ok := slices.BinarySearch(r.idxs, idx)
	return ok
}

// Equal 报告两个集合是否相等：前缀大小写不敏感地相同，
// 且索引集合相同。与元素曾经的插入顺序无关。
func (r *Range) Equal(other *Range) bool {
	if r == nil || other == nil {
		return r == other
	}
	return strings.EqualFold(r.Prefix(), other.Prefix()) &&
		slices.Equal(r.idxs, other.idxs)
}

// Clone 返回深拷贝，用于跨 goroutine 场景的先克隆后修改。
func (r *Range) Clone() *Range {
	return &Range{
		linePrefix: r.linePrefix,
		slotPrefix: r.slotPrefix,
		idxs:       slices.Clone(r.idxs),
	}
}

// String 返回压缩后的范围文本，空集合返回 "[]"。
func (r *Range) String() string {
	if r.Len() == 0 {
		return "[]"
	}
	return r.Compressed()
}
