package xaddr

import (
	"encoding/binary"
	"math/big"
	"net/netip"
)

// AsUint32 返回 IPv4 主机地址的 uint32 表示（网络字节序）。
// 非 IPv4 地址返回 (0, false)。
func (a Addr) AsUint32() (uint32, bool) {
	return addrToUint32(a.ip)
}

// NetworkUint32 返回 IPv4 网络地址的 uint32 表示（网络字节序）。
// 非 IPv4 地址返回 (0, false)。
func (a Addr) NetworkUint32() (uint32, bool) {
	return addrToUint32(a.NetworkAddr())
}

// AsBigInt 返回主机地址的 [*big.Int] 表示。
// 无效地址返回零值 big.Int。
func (a Addr) AsBigInt() *big.Int {
	return addrToBigInt(a.ip)
}

// NetworkBigInt 返回网络地址的 [*big.Int] 表示。
// 无效地址返回零值 big.Int。
func (a Addr) NetworkBigInt() *big.Int {
	return addrToBigInt(a.NetworkAddr())
}

func addrToUint32(ip netip.Addr) (uint32, bool) {
	if !ip.Is4() && !ip.Is4In6() {
		return 0, false
	}
	b := ip.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

func addrToBigInt(ip netip.Addr) *big.Int {
	if !ip.IsValid() {
		return new(big.Int)
	}
	if v, ok := addrToUint32(ip); ok {
		return new(big.Int).SetUint64(uint64(v))
	}
	b := ip.As16()
	return new(big.Int).SetBytes(b[:])
}

// addrFrom4Bytes 从 uint64 的低 32 位构建 IPv4 地址。
// 使用字节操作避免 uint64->uint32 类型转换（避免 gosec G115）。
func addrFrom4Bytes(v uint64) netip.Addr {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return netip.AddrFrom4(b)
}
