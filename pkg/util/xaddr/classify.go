package xaddr

import (
	"encoding/binary"
	"net/netip"
)

// 分类谓词均作用于主机地址（而非网络地址），与 [net/netip] 的同名方法对齐；
// 仅 IPv4 或仅 IPv6 适用的分类对另一族恒返回 false。

// IsMulticast 报告主机地址是否为多播地址。
//   - IPv4: 224.0.0.0/4
//   - IPv6: ff00::/8
func (a Addr) IsMulticast() bool {
	return a.ip.IsValid() && a.ip.IsMulticast()
}

// IsPrivate 报告主机地址是否为私有地址。
//   - IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16
//   - IPv6: fc00::/7 (Unique Local Addresses)
func (a Addr) IsPrivate() bool {
	return a.ip.IsValid() && a.ip.IsPrivate()
}

// IsLoopback 报告主机地址是否为环回地址（127.0.0.0/8 或 ::1）。
func (a Addr) IsLoopback() bool {
	return a.ip.IsValid() && a.ip.IsLoopback()
}

// IsUnspecified 报告主机地址是否为未指定地址（0.0.0.0 或 ::）。
func (a Addr) IsUnspecified() bool {
	return a.ip.IsValid() && a.ip.IsUnspecified()
}

// IsLinkLocal 报告主机地址是否为链路本地单播地址。
//   - IPv4: 169.254.0.0/16 (APIPA)
//   - IPv6: fe80::/10
func (a Addr) IsLinkLocal() bool {
	return a.ip.IsValid() && a.ip.IsLinkLocalUnicast()
}

// IsSiteLocal 报告主机地址是否为 IPv6 站点本地地址 (fec0::/10)。
// 该地址段已被 RFC 3879 废弃，但旧设备配置中仍会出现。
// 仅适用于 IPv6，IPv4 地址恒返回 false。
func (a Addr) IsSiteLocal() bool {
	if !a.ip.IsValid() || a.ip.Is4() {
		return false
	}
	b := a.ip.As16()
	// fec0::/10：前 10 位为 1111 1110 11
	return b[0] == 0xFE && b[1]&0xC0 == 0xC0
}

// v6Reserved 是 IETF 保留的 IPv6 地址块（RFC 2373/3513 的未分配空间）。
// 全球单播 2000::/3、ULA fc00::/7、链路本地 fe80::/10、站点本地 fec0::/10
// 与多播 ff00::/8 都不在其中。
var v6Reserved = []netip.Prefix{
	netip.MustParsePrefix("::/8"),
	netip.MustParsePrefix("100::/8"),
	netip.MustParsePrefix("200::/7"),
	netip.MustParsePrefix("400::/6"),
	netip.MustParsePrefix("800::/5"),
	netip.MustParsePrefix("1000::/4"),
	netip.MustParsePrefix("4000::/3"),
	netip.MustParsePrefix("6000::/3"),
	netip.MustParsePrefix("8000::/3"),
	netip.MustParsePrefix("a000::/3"),
	netip.MustParsePrefix("c000::/3"),
	netip.MustParsePrefix("e000::/4"),
	netip.MustParsePrefix("f000::/5"),
	netip.MustParsePrefix("f800::/6"),
	netip.MustParsePrefix("fe00::/9"),
}

// IsReserved 报告主机地址是否为保留地址。
//   - IPv4: 240.0.0.0/4 (Class E)
//   - IPv6: IETF 保留地址块（见 v6Reserved）
func (a Addr) IsReserved() bool {
	if !a.ip.IsValid() {
		return false
	}
	if a.ip.Is4() {
		b := a.ip.As4()
		return binary.BigEndian.Uint32(b[:]) >= 0xF0000000
	}
	for _, p := range v6Reserved {
		if p.Contains(a.ip) {
			return true
		}
	}
	return false
}
