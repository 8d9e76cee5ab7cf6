package xaddr

import (
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// Netmask 返回网络掩码地址（如 /24 对应 255.255.255.0）。
// 无效地址返回零值。
func (a Addr) Netmask() netip.Addr {
	if !a.IsValid() {
		return netip.Addr{}
	}
	if a.ip.Is4() {
		ones := uint64(0xFFFFFFFF) << (32 - int(a.bits)) & 0xFFFFFFFF
		return addrFrom4Bytes(ones)
	}
	var b [16]byte
	fillMask(b[:], int(a.bits))
	return netip.AddrFrom16(b)
}

// Hostmask 返回反掩码（wildcard mask，如 /24 对应 0.0.0.255）。
// 无效地址返回零值。
func (a Addr) Hostmask() netip.Addr {
	m := a.Netmask()
	if !m.IsValid() {
		return netip.Addr{}
	}
	if m.Is4() {
		b := m.As4()
		for i := range b {
			b[i] = ^b[i]
		}
		return netip.AddrFrom4(b)
	}
	b := m.As16()
	for i := range b {
		b[i] = ^b[i]
	}
	return netip.AddrFrom16(b)
}

// Broadcast 返回网络的广播地址（网络内编号最大的地址）。
// IPv6 没有广播概念，返回 [ErrUnsupported]；无效地址返回 [ErrParse]。
func (a Addr) Broadcast() (netip.Addr, error) {
	if !a.IsValid() {
		return netip.Addr{}, ErrParse
	}
	if !a.ip.Is4() {
		return netip.Addr{}, ErrUnsupported
	}
	return netipx.RangeOfPrefix(a.Prefix()).To(), nil
}

// NumHosts 返回网络包含的地址总数 2^(max-bits)，网络地址与广播地址计算在内。
// 无效地址返回零值 big.Int。
func (a Addr) NumHosts() *big.Int {
	if !a.IsValid() {
		return new(big.Int)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(a.ip.BitLen()-int(a.bits)))
}

// NumHostsUint64 是 [Addr.NumHosts] 的无分配快速版本。
// 地址数量超出 uint64（IPv6 掩码短于 /65）或地址无效时返回 (0, false)。
func (a Addr) NumHostsUint64() (uint64, bool) {
	if !a.IsValid() {
		return 0, false
	}
	hostBits := a.ip.BitLen() - int(a.bits)
	if hostBits > 63 {
		return 0, false
	}
	return uint64(1) << hostBits, true
}

// fillMask 将 b 的前 bits 位置 1，其余清零。
func fillMask(b []byte, bits int) {
	for i := range b {
		switch {
		case bits >= 8:
			b[i] = 0xFF
			bits -= 8
		case bits > 0:
			b[i] = 0xFF << (8 - bits)
			bits = 0
		default:
			b[i] = 0
		}
	}
}
