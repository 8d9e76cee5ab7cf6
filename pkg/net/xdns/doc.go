// Package xdns 提供统一的 DNS 查询能力接口与标准解析器的薄封装。
//
// 设备配置分析经常要顺手验证一条记录（某个名字现在解析到哪、PTR 是否
// 还对得上），xdns 为此定义最小的查询能力：
//
//   - [Resolver]: 能力接口，Query(ctx, name, type) → []Response
//   - [Response]: 统一响应形状（记录类型、结果文本、耗时、错误文本、MX 优先级）
//   - [Client]: 基于标准库 [net.Resolver] 的默认实现，可配置目标服务器与超时
//
// 查询失败（NXDOMAIN、超时等）编码在 [Response.HasError]/[Response.ErrorStr]
// 里返回，而不是函数错误——调用方通常要把"查不到"当作一种结果记录下来。
// 函数级 error 只用于调用本身不合法（空名字、不支持的记录类型）。
//
// 支持 A、AAAA、CNAME、MX、NS、PTR、TXT。AXFR 需要完整的 DNS 报文实现，
// 超出本包的薄封装定位，返回 [ErrUnsupported]。
// 不做缓存，不做重试——需要的话在 [Resolver] 外层自行包装。
//
// 批量查询用 [QueryAll]，内部以有界并发执行：
//
//	client := xdns.NewClient(xdns.WithServer("192.0.2.53"))
//	results, err := xdns.QueryAll(ctx, client, names, xdns.RecordA, 8)
package xdns
