// ipctl 是 IP 地址工具集的命令行入口。
//
// 用法:
//
//	ipctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   查询服务配置文件路径 (YAML/JSON，可选)
//	-t, --timeout  网络查询超时时间 (默认: 15s)
//	-v, --verbose  输出调试日志到 stderr
//
// 命令:
//
//	classify <addr>       输出地址的版本与分类属性
//	version <addr>        输出地址的 IP 版本 (4/6)
//	expand <addr>         IPv6 完全展开形式
//	compress <addr>       IPv6 最短压缩形式
//	tcform <addr>         IPv6 ThreatConnect 提交格式
//	block <cidr>          输出 CIDR 块的首尾地址、数量与范围
//	enumerate <cidr>      枚举块内全部地址 (--limit 截断)
//	find [text]           从文本提取 IPv4/IPv6 地址（无参数时读 stdin）
//	sum <addr>            IPv4 四段求和
//	random                生成随机地址 (--count, --v6)
//	whois <addr>          查询地址的 whois 风格元数据（需网络）
//	current               查询本机出口地址（需网络）
//	registry              拉取 IANA 特殊地址注册表 (--v6，需网络)
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（无效地址、网络错误等）
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	ipctl classify 192.168.1.1
//	ipctl expand 2001:db8::1
//	ipctl block 10.0.0.0/24
//	ipctl enumerate 192.168.1.0/30
//	cat access.log | ipctl find
//	ipctl -t 5s whois 8.8.8.8
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
)

// defaultTimeout 网络查询的默认超时时间。
const defaultTimeout = 15 * time.Second

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ipctl",
		Usage:   "IP 地址解析、分类、块运算与在线查询工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "查询服务配置文件路径 (YAML/JSON)",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "网络查询超时时间",
				Value:   defaultTimeout,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "输出调试日志到 stderr",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			return coder.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
