package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reTrailingWS = regexp.MustCompile(`[ \t\r]+\n`)
	reTabCR      = regexp.MustCompile(`[\t\r]`)
	rePageFooter = regexp.MustCompile(`(?mi)^[ ]*page[ ]+\d+[ ]+(?:of|/)[ ]*\d+[ ]*$`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
	reMultiSpace = regexp.MustCompile(`[ ]{2,}`)
)

// NormalizeTextBlock 把一页原始文本规范化为标准形式
// 规则：NBSP→空格、制表符/回车→空格、行尾空白折叠、页脚("Page N of M")剔除、
// 连续空行折叠为一个、连续空格折叠为一个、首尾留白剔除
// 幂等：对已规范化的文本再跑一遍不产生任何变化
func NormalizeTextBlock(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\u00A0", " ")
	text = reTabCR.ReplaceAllString(text, " ")
	text = reTrailingWS.ReplaceAllString(text, "\n")
	text = rePageFooter.ReplaceAllString(text, "")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	text = reMultiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// DehyphenateLines 修复断词换行：上一行以连字符结尾且下一行以小写字母开头时，
// 去掉连字符并把两行合并（单词在换行处被折断）
func DehyphenateLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if len(out) > 0 {
			prev := strings.TrimRight(out[len(out)-1], " \t")
			if strings.HasSuffix(prev, "-") && startsWithLower(ln) {
				out[len(out)-1] = strings.TrimSuffix(prev, "-") + strings.TrimLeft(ln, " \t")
				continue
			}
		}
		out = append(out, ln)
	}
	return out
}

func startsWithLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

// joinNonEmpty 过滤空白行后用换行拼接
func joinNonEmpty(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			kept = append(kept, ln)
		}
	}
	return strings.Join(kept, "\n")
}

// countNonSpace 统计非空白字符数，用于稀疏提取判定
func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
