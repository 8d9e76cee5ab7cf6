package xaddr

import (
	"fmt"
	"math"
	"math/big"
)

// Add 对主机地址整数加 delta，掩码长度保持不变。
// delta 可以为负数表示减法。结果超出 [0, 地址族最大值] 时返回
// [ErrOutOfRange]——不回绕也不截断，溢出是错误。
//
// IPv4 使用 uint64 快速路径（零分配），IPv6 使用 big.Int 运算。
func (a Addr) Add(delta int64) (Addr, error) {
	if !a.IsValid() {
		return Addr{}, ErrParse
	}

	if a.ip.Is4() {
		v, _ := a.AsUint32()
		v64 := uint64(v)
		var result uint64
		if delta >= 0 {
			d64 := uint64(delta)
			if d64 > uint64(^uint32(0))-v64 {
				return Addr{}, fmt.Errorf("%w: IPv4 address overflow (delta=%d)", ErrOutOfRange, delta)
			}
			result = v64 + d64
		} else {
			absDelta := uint64(-delta)
			if absDelta > v64 {
				return Addr{}, fmt.Errorf("%w: IPv4 address underflow (delta=%d)", ErrOutOfRange, delta)
			}
			result = v64 - absDelta
		}
		return Addr{ip: addrFrom4Bytes(result), bits: a.bits}, nil
	}

	bi := a.AsBigInt()
	bi.Add(bi, big.NewInt(delta))
	if bi.Sign() < 0 || bi.BitLen() > 128 {
		return Addr{}, fmt.Errorf("%w: IPv6 address overflow (delta=%d)", ErrOutOfRange, delta)
	}
	next, err := FromBigInt(bi, V6)
	if err != nil {
		return Addr{}, err
	}
	return Addr{ip: next.ip, bits: a.bits}, nil
}

// Sub 对主机地址整数减 delta，等价于 Add(-delta)，掩码长度保持不变。
func (a Addr) Sub(delta int64) (Addr, error) {
	if delta == math.MinInt64 {
		// -delta 不可表示，拆成两步。
		half, err := a.Add(-(delta / 2))
		if err != nil {
			return Addr{}, err
		}
		return half.Add(-(delta / 2))
	}
	return a.Add(-delta)
}
