package xaddr

import "go4.org/netipx"

// Contains 报告 other 的网络区间是否完全落在 a 的网络区间内。
//
// 判断永远在网络边界上计算（主机位不参与），否则非对齐输入会得出
// 错误结论。规则：
//   - a 是默认路由（/0）时恒为 true
//   - a 的掩码比 other 长时恒为 false（更具体的网络装不下更宽的网络）
//   - 其余情况比较两个网络区间的首尾地址
//
// 跨地址族返回 [ErrVersionMismatch]，无效地址返回 [ErrParse]。
func (a Addr) Contains(other Addr) (bool, error) {
	if !a.IsValid() || !other.IsValid() {
		return false, ErrParse
	}
	if a.Version() != other.Version() {
		return false, ErrVersionMismatch
	}
	if a.bits == 0 {
		return true, nil
	}
	if a.bits > other.bits {
		return false, nil
	}

	ra := netipx.RangeOfPrefix(a.Prefix())
	rb := netipx.RangeOfPrefix(other.Prefix())
	return ra.From().Compare(rb.From()) <= 0 && ra.To().Compare(rb.To()) >= 0, nil
}

// ContainsAddr 报告 other 的主机地址本身是否落在 a 的网络内，
// 忽略 other 的掩码长度（视作 /32 或 /128 的单地址）。
func (a Addr) ContainsAddr(other Addr) (bool, error) {
	host, err := FromAddrPrefixLen(other.HostAddr(), other.HostAddr().BitLen())
	if err != nil {
		return false, err
	}
	return a.Contains(host)
}
