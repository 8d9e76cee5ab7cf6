package xaddr

import (
	"cmp"
	"slices"
)

// Compare 比较两个地址的路由排序位置。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
//
// 全序定义（为最长前缀匹配排序设计）：
//  1. 先比网络地址数值
//  2. 网络相同时，短掩码 < 长掩码
//  3. 网络与掩码都相同时，比主机地址数值（区分同网络的不同保留主机位条目）
//
// 该序与相等一致：Compare 返回 0 当且仅当 a == b。
// 跨地址族比较返回 [ErrVersionMismatch]，无效地址返回 [ErrParse]。
func (a Addr) Compare(b Addr) (int, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, ErrParse
	}
	if a.Version() != b.Version() {
		return 0, ErrVersionMismatch
	}
	return a.compareSameFamily(b), nil
}

// compareSameFamily 假定两个地址同族且有效。
// netip.Addr.Compare 对同族地址即为数值序。
func (a Addr) compareSameFamily(b Addr) int {
	if c := a.NetworkAddr().Compare(b.NetworkAddr()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.bits, b.bits); c != 0 {
		return c
	}
	return a.ip.Compare(b.ip)
}

// SortForLPM 将路由表按降序原地排序：自前向后扫描时，
// 第一个 [Addr.Contains] 命中的表项即为目标地址的最长前缀匹配。
//
// 混合地址族的切片也可排序——IPv4 整体排在 IPv6 之前（降序后即 IPv6 在前），
// 仅用于给混合表一个确定的顺序；逐对 [Addr.Compare] 对混合族仍然报错。
func SortForLPM(addrs []Addr) {
	slices.SortFunc(addrs, func(x, y Addr) int {
		if c := cmp.Compare(x.Version(), y.Version()); c != 0 {
			return -c
		}
		return -x.compareSameFamily(y)
	})
}

// LongestMatch 在路由表中查找 target 的最长前缀匹配。
// routes 无需预先排序（内部使用排序副本）；没有任何表项包含 target 时
// 返回 (Addr{}, false)。跨族表项自动跳过。
func LongestMatch(routes []Addr, target Addr) (Addr, bool) {
	sorted := slices.Clone(routes)
	SortForLPM(sorted)
	for _, r := range sorted {
		ok, err := r.Contains(target)
		if err != nil {
			continue
		}
		if ok {
			return r, true
		}
	}
	return Addr{}, false
}
