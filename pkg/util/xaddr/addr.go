package xaddr

import (
	"math/big"
	"net/netip"
)

// Addr 表示一个保留主机位的地址/网络复合值。
//
// Addr 是不可变值类型：
//   - 零值表示无效地址，IsValid() 返回 false
//   - 可直接比较（==）和用作 map key；== 等价于主机地址与掩码长度都相等
//   - 并发安全，无需加锁
//
// 主机地址按原样存储（不屏蔽主机位），网络视图全部按需派生。
type Addr struct {
	// ip 是完整的主机地址。IPv4 统一以纯 IPv4 形式存储（IPv4-mapped 输入会被 Unmap）。
	ip netip.Addr
	// bits 是掩码长度，范围 [0, 32] 或 [0, 128]。
	bits uint8
}

// FromUint32 从 IPv4 的 uint32 表示创建地址，掩码长度为 /32。
// 使用网络字节序（大端）。
func FromUint32(v uint32) Addr {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return Addr{ip: netip.AddrFrom4(b), bits: 32}
}

// FromBigInt 从 [*big.Int] 创建地址，掩码长度为 /32 或 /128。
// 需指定目标 IP 版本；负数或超出版本可表示范围时返回 [ErrOutOfRange]。
func FromBigInt(v *big.Int, ver Version) (Addr, error) {
	if v == nil {
		return Addr{}, ErrOutOfRange
	}
	switch ver {
	case V4:
		if v.Sign() < 0 || v.BitLen() > 32 {
			return Addr{}, ErrOutOfRange
		}
		var b [4]byte
		vBytes := v.Bytes()
		copy(b[4-len(vBytes):], vBytes)
		return Addr{ip: netip.AddrFrom4(b), bits: 32}, nil
	case V6:
		if v.Sign() < 0 || v.BitLen() > 128 {
			return Addr{}, ErrOutOfRange
		}
		var b [16]byte
		vBytes := v.Bytes()
		copy(b[16-len(vBytes):], vBytes)
		return Addr{ip: netip.AddrFrom16(b), bits: 128}, nil
	default:
		return Addr{}, ErrOutOfRange
	}
}

// FromPrefix 从"仅网络"值创建地址：主机地址取网络的第一个地址。
// 无效前缀返回零值。
func FromPrefix(p netip.Prefix) Addr {
	if !p.IsValid() {
		return Addr{}
	}
	m := p.Masked()
	return Addr{ip: m.Addr().Unmap(), bits: uint8(m.Bits())}
}

// FromAddrPrefixLen 按地址+掩码长度直接构造。
// bits 超出地址族范围时返回 [ErrOutOfRange]，无效地址返回 [ErrParse]。
func FromAddrPrefixLen(ip netip.Addr, bits int) (Addr, error) {
	if !ip.IsValid() {
		return Addr{}, ErrParse
	}
	ip = ip.Unmap()
	if bits < 0 || bits > ip.BitLen() {
		return Addr{}, ErrOutOfRange
	}
	return Addr{ip: ip, bits: uint8(bits)}, nil
}

// IsValid 报告 a 是否持有一个已解析的地址。
// 零值 Addr{} 返回 false。
func (a Addr) IsValid() bool {
	return a.ip.IsValid()
}

// Version 返回地址的 IP 版本（V4 或 V6），无效地址返回 V0。
func (a Addr) Version() Version {
	switch {
	case a.ip.Is4():
		return V4
	case a.ip.IsValid():
		return V6
	default:
		return V0
	}
}

// HostAddr 返回完整的主机地址（主机位保留）。
func (a Addr) HostAddr() netip.Addr {
	return a.ip
}

// PrefixLen 返回掩码长度。
func (a Addr) PrefixLen() int {
	return int(a.bits)
}

// Prefix 返回屏蔽主机位后的网络前缀。
// 无效地址返回零值 [netip.Prefix]。
func (a Addr) Prefix() netip.Prefix {
	if !a.IsValid() {
		return netip.Prefix{}
	}
	p, _ := a.ip.Prefix(int(a.bits))
	return p
}

// NetworkAddr 返回网络地址（主机位清零后的第一个地址）。
func (a Addr) NetworkAddr() netip.Addr {
	if !a.IsValid() {
		return netip.Addr{}
	}
	return a.Prefix().Addr()
}

// Network 返回以网络地址为主机地址的新值，掩码长度不变。
// 即 a 的"对齐网络"形式。
func (a Addr) Network() Addr {
	if !a.IsValid() {
		return Addr{}
	}
	return Addr{ip: a.NetworkAddr(), bits: a.bits}
}

// WithPrefixLen 返回掩码长度调整为 bits 的新值，主机地址不变。
// 网络视图随之重建。bits 超出地址族范围时返回 [ErrOutOfRange]。
func (a Addr) WithPrefixLen(bits int) (Addr, error) {
	if !a.IsValid() {
		return Addr{}, ErrParse
	}
	if bits < 0 || bits > a.ip.BitLen() {
		return Addr{}, ErrOutOfRange
	}
	return Addr{ip: a.ip, bits: uint8(bits)}, nil
}

// String 返回 CIDR 形式的主机地址文本（如 "172.16.1.5/24"）。
// 无效地址返回空字符串。
func (a Addr) String() string {
	if !a.IsValid() {
		return ""
	}
	return a.CIDRAddr()
}
