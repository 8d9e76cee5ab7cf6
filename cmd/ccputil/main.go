// ccputil 是设备配置工具链的命令行前端。
//
// 用法:
//
//	ccputil [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (yaml/json，可选)
//	-v, --verbose  输出调试日志
//
// 命令:
//
//	addr <address>           解析地址并打印全部派生视图
//	range expand <expr>      展开接口范围记法
//	range compress <expr>    压缩为最短等价记法
//	dns <name>               执行 DNS 查询 (--type/--server/--timeout)
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（解析错误、查询失败等）
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "ccputil",
		Usage: "设备配置工具链：地址、接口范围与 DNS 实用命令",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (yaml/json)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "输出调试日志",
			},
		},
		Commands: createCommands(),
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ccputil:", err)
		os.Exit(1)
	}
}

// newLogger 根据 --verbose 构建 slog 实例。
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
