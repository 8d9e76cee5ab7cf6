// Package xaddr 提供保留主机位的 IPv4/IPv6 地址与网络复合值类型。
//
// xaddr 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建。
// 与严格的"仅网络"类型（如 [netip.Prefix].Masked）不同，[Addr] 同时
// 保存完整的主机地址与掩码长度——这是设备配置解析场景的核心需求：
// 一行 "ip address 172.16.1.5 255.255.255.0" 既描述接口所在网络，
// 也描述接口自身的主机地址，两者都不能丢。
//
// # 核心功能
//
//   - parse.go: 解析 "A.B.C.D"、"A.B.C.D/len"、"A.B.C.D mask"、"A.B.C.D/mask"
//     以及带可选 /len 的 IPv6 文本；前导零八位段（"172.001.001.001"）自动归一化
//   - convert.go: uint32/big.Int 与 [Addr] 互转
//   - derive.go: 网络地址、掩码、反掩码、广播地址、主机数量等派生视图
//   - format.go: 零填充字符串、二进制/十六进制分组、CIDR 文本
//   - compare.go: 面向最长前缀匹配排序的严格全序
//   - arith.go: 主机整数加减（溢出报错，不回绕）
//   - contains.go: 基于网络边界的子网包含判断
//   - iter.go: 网络内全部地址的惰性迭代器
//   - classify.go: 多播/私有/保留等分类谓词
//
// # 排序与最长前缀匹配
//
// [Addr.Compare] 定义的全序：先比网络地址，网络相同时短掩码排在长掩码
// 之前，网络与掩码都相同时再比主机地址。按此序降序排列路由表后，
// 自前向后扫描第一个 [Addr.Contains] 命中的表项即为最长前缀匹配：
//
//	routes := []xaddr.Addr{
//	    xaddr.MustParse("0.0.0.0/0"),
//	    xaddr.MustParse("4.0.0.0/8"),
//	    xaddr.MustParse("4.0.0.0/16"),
//	}
//	xaddr.SortForLPM(routes)
//	best, ok := xaddr.LongestMatch(routes, xaddr.MustParse("4.0.1.1"))
//	// best == 4.0.0.0/16
//
// # 主机位语义
//
// [Parse] 默认保留主机位：Parse("172.16.1.5/24") 的主机地址是 172.16.1.5，
// 网络地址派生为 172.16.1.0，两者都可随时取用。[ParseStrict] 在主机位非零
// 时返回 [ErrHostBits]，用于要求输入必须是对齐网络地址的场合。
//
// # 设计决策
//
//   - [Addr] 是可比较值类型（内嵌 [netip.Addr] + 掩码长度），== 即语义相等，
//     可作 map key；网络地址永远从主机地址+掩码长度派生，不单独存储
//   - 构造入口按输入种类显式拆分（文本/uint32/big.Int/[netip.Prefix]），
//     不做运行时类型探测
//   - 掩码长度调整通过 [Addr.WithPrefixLen] 返回新值，算术运算同样返回新值，
//     实例本身不可变，天然并发安全
//   - 跨地址族的 Compare/Contains 返回 [ErrVersionMismatch] 而非给出默认顺序
//   - IPv4 路径使用 uint32/uint64 快速运算，IPv6 使用 big.Int
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xaddr.Parse("300.1.1.1")
//	if errors.Is(err, xaddr.ErrParse) {
//	    // 处理非法文本
//	}
package xaddr
