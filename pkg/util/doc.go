// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: 地址/网络复合值，主机位保留、最长前缀匹配全序、区间运算
//   - xl4: 传输层端口条件，ASA 风格算符与服务名表
//   - xrange: 接口/端口范围记法，展开、压缩、集合变更
//
// 设计原则：
//   - 不可变值类型优先，变更返回新值
//   - 解析宽松（接受设备配置里的各种写法），输出规范
//   - 哨兵错误可用 errors.Is 判别
package util
