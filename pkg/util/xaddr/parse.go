package xaddr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Parse 从字符串解析地址。支持 4 种格式：
//   - 裸地址: "172.16.1.5"（隐含 /32）、"2001:db8::1"（隐含 /128）
//   - CIDR: "172.16.1.5/24"、"2001:db8::1/64"
//   - 空格掩码: "172.16.1.5 255.255.255.0"（仅 IPv4，IOS 接口语法）
//   - 斜线掩码: "172.16.1.5/255.255.255.0"（仅 IPv4）
//
// 前导零八位段（"172.001.001.001"）在存储前归一化为十进制值。
// 主机位按原样保留；输入会自动去除首尾空白。
// 带 IPv6 zone ID 的输入（"fe80::1%eth0"）返回 [ErrParse]。
func Parse(s string) (Addr, error) {
	return parse(s, false)
}

// ParseStrict 与 [Parse] 相同，但要求主机位相对给定掩码长度全部为零，
// 否则返回 [ErrHostBits]。
func ParseStrict(s string) (Addr, error) {
	return parse(s, true)
}

// MustParse 与 [Parse] 相同，但失败时 panic。
// 适用于测试和包级常量初始化。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parse(s string, strict bool) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, fmt.Errorf("%w: empty input", ErrParse)
	}

	addrPart := s
	maskPart := ""
	// IOS 的 "addr mask" 写法：空白分隔的两个字段。
	if fields := strings.Fields(s); len(fields) == 2 {
		addrPart, maskPart = fields[0], fields[1]
	} else if len(fields) != 1 {
		return Addr{}, fmt.Errorf("%w: %q", ErrParse, s)
	} else if idx := strings.Index(s, "/"); idx >= 0 {
		addrPart, maskPart = s[:idx], s[idx+1:]
	}

	ip, err := parseBareAddr(addrPart)
	if err != nil {
		return Addr{}, err
	}

	bits := ip.BitLen()
	if maskPart != "" {
		bits, err = parseMask(maskPart, ip)
		if err != nil {
			return Addr{}, err
		}
	}

	a := Addr{ip: ip, bits: uint8(bits)}
	if strict && a.ip != a.NetworkAddr() {
		return Addr{}, fmt.Errorf("%w: %q has host bits below /%d", ErrHostBits, s, bits)
	}
	return a, nil
}

// parseBareAddr 解析不带掩码的地址文本。
// IPv4 点分形式手工逐段解析以接受前导零（netip.ParseAddr 会拒绝），
// 其余形式回退到标准 [netip.ParseAddr]。
func parseBareAddr(s string) (netip.Addr, error) {
	// 设计决策: 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0）。
	// 网络视图经由 [netip.Prefix] 派生，而 Prefix 会静默丢弃 zone，
	// 保留 zone 会使同一地址的主机视图与网络视图互不相等（严格校验
	// 与排序都会误判）。在 IP 地址字符串中 '%' 仅用作 zone 分隔符，
	// 因此检查 '%' 即可。
	if strings.Contains(s, "%") {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %q", ErrParse, s)
	}

	if parts := strings.Split(s, "."); len(parts) == 4 && !strings.Contains(s, ":") {
		var b [4]byte
		for i, p := range parts {
			// strconv.ParseUint 不接受空段、符号和空白，天然排除 "1.2.3. 4" 一类输入。
			n, err := strconv.ParseUint(p, 10, 8)
			if err != nil {
				return netip.Addr{}, fmt.Errorf("%w: invalid octet %q", ErrParse, p)
			}
			b[i] = byte(n)
		}
		return netip.AddrFrom4(b), nil
	}

	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ip.Unmap(), nil
}

// parseMask 解析掩码字段：点分十进制掩码（仅 IPv4）或十进制掩码长度。
func parseMask(s string, ip netip.Addr) (int, error) {
	if strings.Contains(s, ".") {
		if !ip.Is4() {
			return 0, fmt.Errorf("%w: dotted netmask on non-IPv4 address", ErrParse)
		}
		return parseDottedMask(s)
	}

	// ParseUint 拒绝符号前缀与空白，"+24" 一类输入直接判为语法错误。
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid prefix length %q", ErrParse, s)
	}
	bits := int(n)
	if bits > ip.BitLen() {
		return 0, fmt.Errorf("%w: prefix length /%d exceeds %d-bit address", ErrOutOfRange, bits, ip.BitLen())
	}
	return bits, nil
}

// parseDottedMask 将点分十进制掩码转换为掩码长度，包含连续性校验。
// 非连续掩码（如 "255.0.255.0"）返回 [ErrParse]。
func parseDottedMask(s string) (int, error) {
	m, err := parseBareAddr(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid netmask %q", ErrParse, s)
	}
	if !m.Is4() {
		return 0, fmt.Errorf("%w: invalid netmask %q", ErrParse, s)
	}
	b := m.As4()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	// 合法掩码是前缀全 1 后缀全 0：取反后必须是 2^n - 1。
	inverted := ^v
	if inverted&(inverted+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous netmask %q", ErrParse, s)
	}

	bits := 0
	for v != 0 {
		bits++
		v <<= 1
	}
	return bits, nil
}
