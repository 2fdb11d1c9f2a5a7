package xip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionNumberPattern 匹配"数字开头后接 .0. / .1. / .2."的版本号特征。
// Go regexp (RE2) 不支持负向后顾 (?<![0-9.])，
// 用起始锚或非数字非点的边界分组等价模拟。
var versionNumberPattern = regexp.MustCompile(`(?:^|[^0-9.])[0-9]{1,2}\.[0-2]\.`)

// V4Sum 返回点分字符串各段整数之和。
// 例如 "8.8.8.8" 求和为 32（8 + 8 + 8 + 8）。
// 有意不校验各段是否落在 0–255 之间：求和信号只关心数值大小，
// 入参也未必是合法地址。无法解析为整数的段返回 [ErrInvalidOctet]。
func V4Sum(s string) (int, error) {
	total := 0
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidOctet, part, s)
		}
		total += n
	}
	return total, nil
}

// IsPossibleVersionNumber 判断点分字符串是否疑似软件版本号而非 IP 地址。
//
// 实验性函数，函数名中的 Possible 应当严肃对待：任一信号命中即返回 true，
// 结果是推测性的，不应作为最终判定：
//   - 字符串以 1–2 位数字开头且紧跟 ".0." / ".1." / ".2."
//   - 各段数字之和小于 30（足够小的数字组合更像版本号）
//
// 各段无法解析为整数时返回 [ErrInvalidOctet]。
func IsPossibleVersionNumber(s string) (bool, error) {
	if versionNumberPattern.MatchString(s) {
		return true, nil
	}
	sum, err := V4Sum(s)
	if err != nil {
		return false, err
	}
	return sum < 30, nil
}
