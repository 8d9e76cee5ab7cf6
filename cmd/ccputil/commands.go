package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dataway/ciscoconfparse/pkg/config/xconf"
	"github.com/dataway/ciscoconfparse/pkg/net/xdns"
	"github.com/dataway/ciscoconfparse/pkg/util/xaddr"
	"github.com/dataway/ciscoconfparse/pkg/util/xrange"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createAddrCommand(),
		createRangeCommand(),
		createDNSCommand(),
	}
}

// createAddrCommand 创建 addr 子命令：打印地址的全部派生视图。
func createAddrCommand() *cli.Command {
	return &cli.Command{
		Name:      "addr",
		Aliases:   []string{"a"},
		Usage:     "解析地址并打印派生视图",
		ArgsUsage: "<address>  (如 172.16.1.5/24 或 '10.1.1.1 255.255.255.0')",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("missing address argument")
			}
			// IOS 的 "addr mask" 写法在 shell 里是两个参数，拼回去。
			a, err := xaddr.Parse(strings.Join(cmd.Args().Slice(), " "))
			if err != nil {
				return err
			}
			printAddr(a)
			return nil
		},
	}
}

func printAddr(a xaddr.Addr) {
	fmt.Printf("version:      %s\n", a.Version())
	fmt.Printf("address:      %s\n", a.CIDRAddr())
	fmt.Printf("network:      %s\n", a.CIDRNet())
	fmt.Printf("netmask:      %s\n", a.Netmask())
	fmt.Printf("hostmask:     %s\n", a.Hostmask())
	if bc, err := a.Broadcast(); err == nil {
		fmt.Printf("broadcast:    %s\n", bc)
	}
	fmt.Printf("zero-padded:  %s\n", a.ZeroPadded())
	fmt.Printf("decimal:      %s\n", a.AsBigInt())
	fmt.Printf("hosts:        %s\n", a.NumHosts())
	var labels []string
	for _, p := range []struct {
		flag  bool
		label string
	}{
		{a.IsLoopback(), "loopback"},
		{a.IsUnspecified(), "unspecified"},
		{a.IsPrivate(), "private"},
		{a.IsLinkLocal(), "link-local"},
		{a.IsSiteLocal(), "site-local"},
		{a.IsMulticast(), "multicast"},
		{a.IsReserved(), "reserved"},
	} {
		if p.flag {
			labels = append(labels, p.label)
		}
	}
	if len(labels) > 0 {
		fmt.Printf("class:        %s\n", strings.Join(labels, ","))
	}
}

// createRangeCommand 创建 range 子命令组。
func createRangeCommand() *cli.Command {
	return &cli.Command{
		Name:    "range",
		Aliases: []string{"r"},
		Usage:   "接口范围记法的展开与压缩",
		Commands: []*cli.Command{
			{
				Name:      "expand",
				Usage:     "展开为显式标识符列表",
				ArgsUsage: "<expr>  (如 Eth2/1-3,5,9-10)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					r, err := xrange.Parse(cmd.Args().First())
					if err != nil {
						return err
					}
					for _, item := range r.Items() {
						fmt.Println(item)
					}
					return nil
				},
			},
			{
				Name:      "compress",
				Usage:     "压缩为最短等价记法",
				ArgsUsage: "<expr>  (如 Eth2/1,2,3,5)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					r, err := xrange.Parse(cmd.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(r.Compressed())
					return nil
				},
			},
		},
	}
}

// createDNSCommand 创建 dns 子命令。
// 服务器与超时的默认值可来自配置文件的 resolver 节，命令行参数优先。
func createDNSCommand() *cli.Command {
	return &cli.Command{
		Name:      "dns",
		Usage:     "执行 DNS 查询",
		ArgsUsage: "<name|address>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   "A",
				Usage:   "记录类型 (A/AAAA/CNAME/MX/NS/PTR/TXT)",
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "目标 DNS 服务器",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "查询超时",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("missing query name")
			}

			settings, err := resolverSettings(cmd)
			if err != nil {
				return err
			}

			opts := append(settings.Options(), xdns.WithLogger(newLogger(cmd.Bool("verbose"))))
			client := xdns.NewClient(opts...)

			responses, err := client.Query(ctx, name, xdns.RecordType(strings.ToUpper(cmd.String("type"))))
			if err != nil {
				return err
			}
			for _, r := range responses {
				if r.HasError {
					fmt.Printf("%s\t%s\tERROR: %s\n", r.QueryType, r.Input, r.ErrorStr)
					continue
				}
				if r.Preference >= 0 {
					fmt.Printf("%s\t%s\t%d %s\t%v\n", r.QueryType, r.Input, r.Preference, r.Result, r.Duration.Round(time.Millisecond))
					continue
				}
				fmt.Printf("%s\t%s\t%s\t%v\n", r.QueryType, r.Input, r.Result, r.Duration.Round(time.Millisecond))
			}
			return nil
		},
	}
}

// resolverSettings 合并配置文件与命令行参数（命令行优先）。
func resolverSettings(cmd *cli.Command) (xdns.Settings, error) {
	var s xdns.Settings
	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.Load(path)
		if err != nil {
			return s, err
		}
		if cfg.Has("resolver") {
			if err := cfg.Unmarshal("resolver", &s); err != nil {
				return s, err
			}
		}
	}
	if server := cmd.String("server"); server != "" {
		s.Server = server
	}
	if d := cmd.Duration("timeout"); d > 0 {
		s.Timeout = d
	}
	return s, nil
}
