// Package xl4 提供传输层端口规格的解析与匹配。
//
// 设备 ACL 里的端口条件写作逻辑算符形式："eq www"、"range 1024 2048"、
// "lt 1024"、"gt 1023"、"neq 53"，服务名与数字端口可混用。
// xl4 把这种写法解析为端口区间集合并提供匹配判断：
//
//	obj, _ := xl4.Parse("tcp", "range ftp-data ftp", xl4.SyntaxASA)
//	obj.Matches(21)  // true
//
// 区间按 [lo, hi] 跨度存储而非展开成端口列表——"gt 1" 展开是 6 万多项。
// 服务名表目前只提供 ASA 方言（tcp/udp），其他方言返回 [ErrUnsupported]。
package xl4
