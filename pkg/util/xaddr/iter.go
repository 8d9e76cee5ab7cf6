package xaddr

import (
	"iter"
	"net/netip"

	"go4.org/netipx"
)

// Hosts 返回网络内全部地址的迭代器，网络地址与广播地址都包含在内
// （与主机位保留的设计对齐，不做排除）。
//
// 迭代是惰性、有限且可重启的：每次 range 都从网络第一个地址重新开始，
// 没有外部资源需要释放。无效地址返回空迭代器。
//
// 注意：大网络（如 IPv6 /64）的完整迭代在计算上不可行，
// 调用方应自行限制消费的数量。
//
// 示例：
//
//	for ip := range xaddr.MustParse("10.1.1.0/30").Hosts() {
//	    fmt.Println(ip)  // 10.1.1.0, 10.1.1.1, 10.1.1.2, 10.1.1.3
//	}
func (a Addr) Hosts() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !a.IsValid() {
			return
		}
		r := netipx.RangeOfPrefix(a.Prefix())
		current := r.From()
		for {
			if !yield(current) {
				return
			}
			if current == r.To() {
				return
			}
			current = current.Next()
		}
	}
}

// CollectHosts 将网络内的地址收集到切片中，最多收集 maxCount 个。
// maxCount ≤ 0 表示不限制数量（大网络慎用）。
func CollectHosts(a Addr, maxCount int) []netip.Addr {
	var result []netip.Addr
	if maxCount > 0 {
		// 预分配上限 1<<20，防止极端 maxCount 导致 OOM。
		limit := maxCount
		if limit > 1<<20 {
			limit = 1 << 20
		}
		result = make([]netip.Addr, 0, limit)
	}
	count := 0
	for ip := range a.Hosts() {
		if maxCount > 0 && count >= maxCount {
			break
		}
		result = append(result, ip)
		count++
	}
	return result
}
