package xioc

import (
	"net/netip"
	"regexp"
	"strings"

	"github.com/democritus-project/democritus-ip-addresses/pkg/util/xip"
)

// refanger 还原常见的 defang 混淆写法。
var refanger = strings.NewReplacer("[.]", ".", "[:]", ":")

var (
	// ipv4Candidate 匹配四段点分十进制，每段 0–255。
	ipv4Candidate = regexp.MustCompile(`(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(?:\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}`)

	// ipv6Candidate 匹配冒号十六进制词元，含 IPv4-mapped 的点分尾部。
	// 有意宽松：分组数量和缩写合法性由解析校验兜底。
	ipv6Candidate = regexp.MustCompile(`[0-9A-Fa-f:]+(?:\.[0-9]{1,3}){3}|[0-9A-Fa-f]*:[0-9A-Fa-f:]+`)
)

// Match 是一次带版本归属的提取结果。
type Match struct {
	// Text 是还原 defang 后的地址文本。
	Text string

	// Version 标记该地址由哪个提取器产出（V4 或 V6）。
	Version xip.Version
}

// FindIPv4 提取 text 中的全部 IPv4 地址字面量。
// 重复和出现顺序原样保留；无匹配时返回 nil。
func FindIPv4(text string) []string {
	text = refanger.Replace(text)
	var out []string
	for _, loc := range ipv4Candidate.FindAllStringIndex(text, -1) {
		if !bounded(text, loc[0], loc[1], isV4Adjacent) {
			continue
		}
		candidate := text[loc[0]:loc[1]]
		addr, err := netip.ParseAddr(candidate)
		if err != nil || !addr.Is4() {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// FindIPv6 提取 text 中的全部 IPv6 地址字面量（含 IPv4-mapped 形式）。
// 重复和出现顺序原样保留；无匹配时返回 nil。
func FindIPv6(text string) []string {
	text = refanger.Replace(text)
	var out []string
	for _, loc := range ipv6Candidate.FindAllStringIndex(text, -1) {
		if !bounded(text, loc[0], loc[1], isV6Adjacent) {
			continue
		}
		candidate := text[loc[0]:loc[1]]
		addr, err := netip.ParseAddr(candidate)
		if err != nil || !addr.Is6() {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// FindAll 提取 text 中的全部 IP 地址：先 IPv4 结果，后 IPv6 结果。
// 无匹配时返回 nil。
func FindAll(text string) []string {
	results := FindIPv4(text)
	return append(results, FindIPv6(text)...)
}

// FindTyped 提取 text 中的全部 IP 地址并附带版本归属。
// 排序与 [FindAll] 一致：先 IPv4 后 IPv6。
func FindTyped(text string) []Match {
	var matches []Match
	for _, s := range FindIPv4(text) {
		matches = append(matches, Match{Text: s, Version: xip.V4})
	}
	for _, s := range FindIPv6(text) {
		matches = append(matches, Match{Text: s, Version: xip.V6})
	}
	return matches
}

// bounded 检查候选区间 [start, end) 是否与相邻字符构成独立词元。
// adjacent 报告某字符是否会把候选"粘连"进更长的词元。
func bounded(text string, start, end int, adjacent func(byte) bool) bool {
	if start > 0 && adjacent(text[start-1]) {
		return false
	}
	if end < len(text) && adjacent(text[end]) {
		return false
	}
	return true
}

// isV4Adjacent 等价于 (?<![0-9.]) / (?![0-9.]) 环视语义：
// 前后紧邻数字或点的候选属于更长的点分词元。
func isV4Adjacent(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}

// isV6Adjacent 比 IPv4 更严格：十六进制词元与普通单词无法靠字符类区分，
// 因此任何字母数字、冒号或点的粘连都丢弃候选。
func isV6Adjacent(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return true
	case c == ':' || c == '.':
		return true
	}
	return false
}
