package xaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// CIDRAddr 返回主机地址的 CIDR 文本（主机位保留，如 "172.16.1.5/24"）。
// 无效地址返回空字符串。
func (a Addr) CIDRAddr() string {
	if !a.IsValid() {
		return ""
	}
	return a.ip.String() + "/" + strconv.Itoa(int(a.bits))
}

// CIDRNet 返回网络的 CIDR 文本（主机位清零，如 "172.16.1.0/24"）。
// 无效地址返回空字符串。
func (a Addr) CIDRNet() string {
	if !a.IsValid() {
		return ""
	}
	return a.Prefix().Masked().String()
}

// ZeroPadded 返回零填充的主机地址文本。
// IPv4: 每段 3 位十进制（"010.001.001.001"），便于文本文件排序。
// IPv6: 完整展开形式（"2001:0db8:0000:...:0001"）。
// 无效地址返回空字符串。
func (a Addr) ZeroPadded() string {
	if !a.IsValid() {
		return ""
	}
	if a.ip.Is4() {
		return zeroPad4(a.ip.As4())
	}
	return a.ip.StringExpanded()
}

// ZeroPaddedNetwork 返回零填充的网络文本，带掩码长度后缀。
// IPv4 示例："010.001.001.000/24"。无效地址返回空字符串。
func (a Addr) ZeroPaddedNetwork() string {
	if !a.IsValid() {
		return ""
	}
	net := a.NetworkAddr()
	if net.Is4() {
		return zeroPad4(net.As4()) + "/" + strconv.Itoa(int(a.bits))
	}
	return net.StringExpanded() + "/" + strconv.Itoa(int(a.bits))
}

// BinaryTuple 返回主机地址的二进制分组。
// IPv4: 4 个 8 位二进制段；IPv6: 8 个 16 位二进制段。
// 无效地址返回 nil。
func (a Addr) BinaryTuple() []string {
	if !a.IsValid() {
		return nil
	}
	if a.ip.Is4() {
		b := a.ip.As4()
		out := make([]string, 4)
		for i, v := range b {
			out[i] = fmt.Sprintf("%08b", v)
		}
		return out
	}
	b := a.ip.As16()
	out := make([]string, 8)
	for i := range out {
		out[i] = fmt.Sprintf("%016b", uint16(b[2*i])<<8|uint16(b[2*i+1]))
	}
	return out
}

// HexTuple 返回主机地址的十六进制分组。
// IPv4: 4 个 2 位十六进制段；IPv6: 8 个 4 位十六进制段。
// 无效地址返回 nil。
func (a Addr) HexTuple() []string {
	if !a.IsValid() {
		return nil
	}
	if a.ip.Is4() {
		b := a.ip.As4()
		out := make([]string, 4)
		for i, v := range b {
			out[i] = fmt.Sprintf("%02x", v)
		}
		return out
	}
	return strings.Split(a.ip.StringExpanded(), ":")
}

// zeroPad4 手写格式化避免 fmt.Sprintf 的反射开销和额外分配。
func zeroPad4(b [4]byte) string {
	var buf [15]byte // "xxx.xxx.xxx.xxx"
	for i := 0; i < 4; i++ {
		off := i * 4
		if i > 0 {
			buf[off-1] = '.'
		}
		buf[off+0] = '0' + b[i]/100
		buf[off+1] = '0' + (b[i]/10)%10
		buf[off+2] = '0' + b[i]%10
	}
	return string(buf[:])
}
