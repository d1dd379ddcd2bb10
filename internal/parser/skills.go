package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reParenthetical = regexp.MustCompile(`\(.*?\)`)
	reSkillSplit    = regexp.MustCompile(`[,;/|\n]`)
	reSkillCharset  = regexp.MustCompile(`^[A-Za-z0-9+#./_\- ]+$`)
	reYearInText    = regexp.MustCompile(`\b\d{4}\b`)
	rePureDigits    = regexp.MustCompile(`^\d+$`)
	reIngEdSuffix   = regexp.MustCompile(`(ing|ed)$`)
	reMonthWord     = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec|January|February|March|April|June|July|August|September|October|November|December)\b`)
)

// looksLikePersonName 2-4个首字母大写的纯字母词、且没有技术词——像人名
func looksLikePersonName(s string) bool {
	words := strings.Fields(strings.TrimSpace(s))
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !isAlphaWord(w) {
			continue
		}
		if !isTitleCaseToken(w) {
			return false
		}
	}
	for _, w := range words {
		if techTerms[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

// isShortTechToken 候选词块是否像一个技术技能
// 否决条件：超4词、字符集越界、句尾句号、日期、停用词/噪声词、纯数字、
// 单词动名词、公司后缀、动词开头、人名形状
func isShortTechToken(tok string) bool {
	t := strings.TrimSpace(tok)
	if t == "" {
		return false
	}
	words := strings.Fields(t)
	if len(words) > 4 {
		return false
	}
	if !reSkillCharset.MatchString(t) {
		return false
	}
	if strings.HasSuffix(t, ".") && len(words) > 3 {
		return false
	}
	if reMonthWord.MatchString(t) || reYearInText.MatchString(t) {
		return false
	}
	lower := strings.ToLower(t)
	if stopWordSet()[lower] || skillJunkKeywords[lower] {
		return false
	}
	if rePureDigits.MatchString(t) {
		return false
	}
	if len(words) == 1 && reIngEdSuffix.MatchString(lower) {
		return false
	}
	for _, w := range words {
		if companySuffixWords[strings.ToLower(w)] {
			return false
		}
	}
	if verbClueWords[strings.ToLower(words[0])] {
		return false
	}
	if looksLikePersonName(t) {
		return false
	}
	return true
}

// canonicalSkillCase 技能的规范大小写
// 缩写表命中或技术词命中→全大写；多词→逐词Title（CI/CD等子词保持大写）；
// 单词→Title
func canonicalSkillCase(val string) string {
	up := strings.ToUpper(val)
	if forceUpperSkills[up] || techTerms[strings.ToLower(val)] {
		return up
	}
	words := strings.Fields(val)
	if len(words) > 1 {
		out := make([]string, len(words))
		for i, w := range words {
			if upperInPhrase[strings.ToLower(w)] {
				out[i] = strings.ToUpper(w)
			} else {
				out[i] = titleCase(w)
			}
		}
		return strings.Join(out, " ")
	}
	return titleCase(val)
}

// ExtractSkills 从技能章节文本中提取技术技能列表
// 词块化：去括号内容→按 ,;/| 切→再按冒号切→剥符号弹头；
// 通过技术词判定的词块做规范化大小写，按小写键保序去重。
// 永不返回nil——没有技能时返回空切片。
func ExtractSkills(text string) []string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleanedLine := reParenthetical.ReplaceAllString(line, "")
		for _, token := range reSkillSplit.Split(cleanedLine, -1) {
			for _, sub := range strings.Split(token, ":") {
				val := strings.Trim(strings.TrimSpace(sub), "-•|")
				if val == "" {
					continue
				}
				if isShortTechToken(val) {
					candidates = append(candidates, canonicalSkillCase(val))
				}
			}
		}
	}

	seen := map[string]bool{}
	result := []string{}
	for _, c := range candidates {
		key := strings.ToLower(c)
		if !seen[key] {
			seen[key] = true
			result = append(result, c)
		}
	}
	return result
}

// titleCase 首字母大写其余小写（只处理ASCII词首）
func titleCase(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// isAlphaWord 纯字母词
func isAlphaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
