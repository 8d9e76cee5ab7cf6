package xrange

import (
	"strconv"
	"strings"
)

// Compressed 返回当前集合的最短等价范围文本。
//
// 贪心合并连续游程：≥3 个连续整数写作 "first-last"；
// 1 或 2 个的游程逐个用逗号列出（"5,6" 不压成 "5-6"，
// 短横线至少要省出一个成员才使用）。共享前缀只在开头出现一次。
// 空集合返回空字符串。
//
// 与 [Parse] 互为往返：Parse("1-3,5,9-11,13") 展开的集合
// 压缩后仍是 "1-3,5,9-11,13"。
func (r *Range) Compressed() string {
	if len(r.idxs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.Prefix())

	i := 0
	for i < len(r.idxs) {
		// 找到以 idxs[i] 开头的最长连续游程 [i, j]。
		j := i
		for j+1 < len(r.idxs) && r.idxs[j+1] == r.idxs[j]+1 {
			j++
		}

		if j-i+1 >= 3 {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(r.idxs[i]))
			sb.WriteByte('-')
			sb.WriteString(strconv.Itoa(r.idxs[j]))
		} else {
			for k := i; k <= j; k++ {
				if k > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(strconv.Itoa(r.idxs[k]))
			}
		}
		i = j + 1
	}
	return sb.String()
}
