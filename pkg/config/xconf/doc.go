// Package xconf 提供工具链的配置文件加载。
//
// 基于 [github.com/knadh/koanf/v2]，支持 YAML 与 JSON，按扩展名自动
// 检测格式。配置按节组织，典型文件：
//
//	resolver:
//	  server: 192.0.2.53
//	  timeout: 2s
//
// 加载后按路径反序列化到各组件自己的 Settings 结构体：
//
//	cfg, _ := xconf.Load("ccputil.yaml")
//	var s xdns.Settings
//	_ = cfg.Unmarshal("resolver", &s)
//
// 本工具链没有常驻进程，不提供热加载/文件监听；需要新配置就重新 Load。
// 预定义错误变量支持 errors.Is 判断。
package xconf
