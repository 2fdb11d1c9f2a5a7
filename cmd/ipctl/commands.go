package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/democritus-project/democritus-ip-addresses/pkg/lookup/xlookup"
	"github.com/democritus-project/democritus-ip-addresses/pkg/util/xioc"
	"github.com/democritus-project/democritus-ip-addresses/pkg/util/xip"
)

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createClassifyCommand(),
		createVersionCommand(),
		createExpandCommand(),
		createCompressCommand(),
		createTCFormCommand(),
		createBlockCommand(),
		createEnumerateCommand(),
		createFindCommand(),
		createSumCommand(),
		createRandomCommand(),
		createWhoisCommand(),
		createCurrentCommand(),
		createRegistryCommand(),
	}
}

// out 返回命令输出目标，测试时可通过 Root().Writer 捕获。
func out(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// errOut 返回命令的警告输出目标，测试时可通过 Root().ErrWriter 捕获。
func errOut(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// requireArg 取第 0 个位置参数，缺失时返回 usageError。
func requireArg(cmd *cli.Command, name string) (string, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return "", &usageError{msg: fmt.Sprintf("%s 命令需要指定 <%s> 参数", cmd.Name, name)}
	}
	return arg, nil
}

func createClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "输出地址的版本与分类属性",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "addr")
			if err != nil {
				return err
			}
			addr, err := xip.Parse(arg)
			if err != nil {
				return err
			}
			c := xip.Classify(addr)
			w := out(cmd)
			fmt.Fprintf(w, "地址:     %s\n", addr)
			fmt.Fprintf(w, "版本:     %s\n", c.Version)
			fmt.Fprintf(w, "分类:     %s\n", c)
			fmt.Fprintf(w, "私有:     %t\n", c.IsPrivate)
			fmt.Fprintf(w, "公网:     %t\n", c.IsPublic)
			fmt.Fprintf(w, "多播:     %t\n", c.IsMulticast)
			fmt.Fprintf(w, "保留:     %t\n", c.IsReserved)
			fmt.Fprintf(w, "环回:     %t\n", c.IsLoopback)
			fmt.Fprintf(w, "链路本地: %t\n", c.IsLinkLocalUnicast || c.IsLinkLocalMulticast)
			return nil
		},
	}
}

func createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "输出地址的 IP 版本 (4/6)",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "addr")
			if err != nil {
				return err
			}
			v, err := xip.VersionOf(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), v)
			return nil
		},
	}
}

// createFormatCommand 创建单入参单输出的 IPv6 格式化命令。
func createFormatCommand(name, usage string, format func(string) (string, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "addr")
			if err != nil {
				return err
			}
			result, err := format(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), result)
			return nil
		},
	}
}

func createExpandCommand() *cli.Command {
	return createFormatCommand("expand", "IPv6 完全展开形式", xip.ExpandV6)
}

func createCompressCommand() *cli.Command {
	return createFormatCommand("compress", "IPv6 最短压缩形式", xip.CompressV6)
}

func createTCFormCommand() *cli.Command {
	return createFormatCommand("tcform", "IPv6 ThreatConnect 提交格式", xip.ThreatConnectV6)
}

func createBlockCommand() *cli.Command {
	return &cli.Command{
		Name:      "block",
		Usage:     "输出 CIDR 块的首尾地址、数量与范围",
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "cidr")
			if err != nil {
				return err
			}
			p, err := xip.ParseBlock(arg)
			if err != nil {
				return err
			}
			w := out(cmd)
			fmt.Fprintf(w, "块:   %s\n", p)
			fmt.Fprintf(w, "首:   %s\n", xip.BlockFirst(p))
			fmt.Fprintf(w, "尾:   %s\n", xip.BlockLast(p))
			fmt.Fprintf(w, "数量: %s\n", xip.BlockCount(p))
			fmt.Fprintf(w, "范围: %s\n", xip.BlockRange(p))
			return nil
		},
	}
}

func createEnumerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "enumerate",
		Usage:     "枚举块内全部地址",
		ArgsUsage: "<cidr>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "最多输出的地址数量 (0 表示不限制)",
				Value:   256,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "cidr")
			if err != nil {
				return err
			}
			p, err := xip.ParseBlock(arg)
			if err != nil {
				return err
			}
			limit := cmd.Int("limit")
			w := out(cmd)
			n := 0
			for s := range xip.EnumerateStrings(p) {
				if limit > 0 && n >= limit {
					fmt.Fprintf(errOut(cmd), "[已截断: 使用 --limit 0 输出全部 %s 个地址]\n", xip.BlockCount(p))
					break
				}
				fmt.Fprintln(w, s)
				n++
			}
			return nil
		},
	}
}

func createFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "从文本提取 IPv4/IPv6 地址（无参数时读 stdin）",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "typed",
				Usage: "同时输出每个地址的版本",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			text := strings.Join(cmd.Args().Slice(), " ")
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("读取 stdin 失败: %w", err)
				}
				text = string(data)
			}
			w := out(cmd)
			if cmd.Bool("typed") {
				for _, m := range xioc.FindTyped(text) {
					fmt.Fprintf(w, "%s\t%s\n", m.Text, m.Version)
				}
				return nil
			}
			for _, s := range xioc.FindAll(text) {
				fmt.Fprintln(w, s)
			}
			return nil
		},
	}
}

func createSumCommand() *cli.Command {
	return &cli.Command{
		Name:      "sum",
		Usage:     "IPv4 四段求和（辅助识别疑似版本号）",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "addr")
			if err != nil {
				return err
			}
			sum, err := xip.V4Sum(arg)
			if err != nil {
				return err
			}
			versionLike, err := xip.IsPossibleVersionNumber(arg)
			if err != nil {
				return err
			}
			w := out(cmd)
			fmt.Fprintf(w, "和:         %d\n", sum)
			fmt.Fprintf(w, "疑似版本号: %t\n", versionLike)
			return nil
		},
	}
}

func createRandomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "生成随机地址",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "生成数量",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:  "v6",
				Usage: "生成 IPv6 地址（默认 IPv4）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			count := cmd.Int("count")
			if count < 1 {
				return &usageError{msg: "--count 必须 >= 1"}
			}
			addrs := xip.RandomV4(count)
			if cmd.Bool("v6") {
				addrs = xip.RandomV6(count)
			}
			w := out(cmd)
			for _, a := range addrs {
				fmt.Fprintln(w, a)
			}
			return nil
		},
	}
}

// newLookupClient 按全局选项组装查询客户端。
func newLookupClient(cmd *cli.Command) (*xlookup.Client, error) {
	cfg := xlookup.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		format := xlookup.FormatYAML
		if strings.HasSuffix(path, ".json") {
			format = xlookup.FormatJSON
		}
		cfg, err = xlookup.LoadConfig(data, format)
		if err != nil {
			return nil, err
		}
	}

	if t := cmd.Duration("timeout"); t > 0 {
		cfg.Timeout = t
	}

	logger := slog.New(slog.DiscardHandler)
	if cmd.Bool("verbose") {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return xlookup.New(
		xlookup.WithConfig(cfg),
		xlookup.WithLogger(logger),
	), nil
}

func createWhoisCommand() *cli.Command {
	return &cli.Command{
		Name:      "whois",
		Usage:     "查询地址的 whois 风格元数据（需网络）",
		ArgsUsage: "<addr>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arg, err := requireArg(cmd, "addr")
			if err != nil {
				return err
			}
			client, err := newLookupClient(cmd)
			if err != nil {
				return err
			}
			rec, err := client.WhoisString(ctx, arg)
			if err != nil {
				return err
			}
			w := out(cmd)
			fmt.Fprintf(w, "地址:   %s\n", rec.IP)
			fmt.Fprintf(w, "版本:   %s\n", rec.Version)
			fmt.Fprintf(w, "城市:   %s\n", rec.City)
			fmt.Fprintf(w, "地区:   %s\n", rec.Region)
			fmt.Fprintf(w, "国家:   %s\n", rec.Country)
			fmt.Fprintf(w, "时区:   %s\n", rec.Timezone)
			fmt.Fprintf(w, "ASN:    %s\n", rec.ASN)
			fmt.Fprintf(w, "机构:   %s\n", rec.Org)
			return nil
		},
	}
}

func createCurrentCommand() *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "查询本机出口地址（需网络）",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "short",
				Usage: "只输出地址本身",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newLookupClient(cmd)
			if err != nil {
				return err
			}
			rec, err := client.Current(ctx)
			if err != nil {
				return err
			}
			w := out(cmd)
			if cmd.Bool("short") {
				fmt.Fprintln(w, rec.IP)
				return nil
			}
			fmt.Fprintf(w, "地址:   %s\n", rec.IP)
			fmt.Fprintf(w, "主机名: %s\n", rec.Hostname)
			fmt.Fprintf(w, "城市:   %s\n", rec.City)
			fmt.Fprintf(w, "国家:   %s\n", rec.Country)
			fmt.Fprintf(w, "机构:   %s\n", rec.Org)
			return nil
		},
	}
}

func createRegistryCommand() *cli.Command {
	return &cli.Command{
		Name:  "registry",
		Usage: "拉取 IANA 特殊地址注册表（需网络）",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "v6",
				Usage: "拉取 IPv6 注册表（默认 IPv4）",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newLookupClient(cmd)
			if err != nil {
				return err
			}
			var (
				records []xlookup.RegistryRecord
				rerr    error
			)
			if cmd.Bool("v6") {
				records, rerr = client.PrivateV6Registry(ctx)
			} else {
				records, rerr = client.PrivateV4Registry(ctx)
			}
			if rerr != nil {
				return rerr
			}
			w := out(cmd)
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rec.AddressBlock(), rec.Name(), rec.RFC())
			}
			return nil
		},
	}
}
