// Package xrange 提供厂商接口范围记法（CiscoRange）的展开与压缩。
//
// 设备配置里的 "Eth2/1-3,5,9-10" 是一组离散接口的紧凑写法。
// xrange 将这种记法展开为显式、去重、按数值排序的标识符序列，
// 也能把任意索引集合压缩回最短的等价范围文本。
//
// # 快速示例
//
// 展开：
//
//	r, _ := xrange.Parse("Eth2/1-3,5,9-10")
//	fmt.Println(r.Items())   // [Eth2/1 Eth2/2 Eth2/3 Eth2/5 Eth2/9 Eth2/10]
//	fmt.Println(r.Indexes()) // [1 2 3 5 9 10]
//
// 压缩：
//
//	r, _ := xrange.Parse("1,3,5,6,7")
//	fmt.Println(r.Compressed())  // "1,3,5-7"
//
// 集合式修改：
//
//	r.Add("11-13")
//	r.Remove("5")
//
// # 文法
//
// 输入形如 <线路前缀><槽位前缀><范围文本>，其中线路前缀是字母和空白
// （"Eth"、"Serial "），槽位前缀是以 "/" 结尾的数字路径（"2/"、"1/2/"），
// 范围文本是逗号分隔的整数或 start-end 原子。原子内 end < start 返回
// [ErrOrder]；整体结构不匹配返回 [ErrParse]。
//
// # 设计决策
//
//   - 索引集合在每次变更后显式重排去重（normalize），排序与去重是
//     文档化的变更契约，不是偶然行为
//   - Add/Remove 是集合并/差语义：参数本身按嵌套范围表达式解析后整体
//     并入或移除。移除不存在的成员是有意的静默空操作（幂等删除）
//   - 压缩只把 ≥3 个连续值的游程合并为 "first-last"；两个相邻值仍写作
//     "5,6" 而非 "5-6"（短横线至少要省出一个成员才值得用）
//   - 排序按数值而非字典序："10" 排在 "9" 之后
//   - 相等比较对前缀大小写不敏感，且与插入顺序无关
//
// *Range 是可变类型但非并发安全；跨 goroutine 使用请先克隆或外部加锁。
package xrange
