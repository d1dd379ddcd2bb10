package parser

import (
	"regexp"
	"strings"
)

// 位置提取的模式表
var (
	// locationSkipPatterns 明显不是位置行的特征：职责描述、章节词、年限、联系方式
	locationSkipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)•.*?(posting|implementation|configuration|support|issues)`),
		regexp.MustCompile(`(?i)\b(experience|skills|education|projects|responsibilities)\b`),
		regexp.MustCompile(`(?i)\b(years?|months?)\b.*\b(experience|exp)\b`),
		regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]+`),
		regexp.MustCompile(`\+?\d[\d\s\-()]{8,}\d`),
	}

	// reLocationLabel 标签形式："Address: Pune, Maharashtra"
	reLocationLabel = regexp.MustCompile(`(?i)\b(Address|Location|City|Residence|Place)\s*:?\s*([A-Za-z\s,]+)`)

	// locationShapePatterns 城市-邦/城市-India 的形状模式
	locationShapePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-z\s]+),\s*([A-Za-z\s]+)\b`),
		regexp.MustCompile(`\b([A-Za-z]+)\s*,\s*(India|INDIA)\b`),
	}

	reCityStateShape = regexp.MustCompile(`^[A-Za-z\s]+,\s*[A-Za-z\s]+$`)
	reNonAlphaSpace  = regexp.MustCompile(`[^A-Za-z\s]`)
)

// matchesLocationSkip 行命中任一排除模式
func matchesLocationSkip(line string) bool {
	for _, re := range locationSkipPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// isValidLocation 候选位置文本校验：辞典命中 或 城市-邦形状；超长一律拒绝
func isValidLocation(loc string) bool {
	loc = strings.TrimSpace(loc)
	if len(loc) > 50 {
		return false
	}
	lower := strings.ToLower(loc)
	for place := range locationGazetteer {
		if strings.Contains(lower, place) {
			return true
		}
	}
	return reCityStateShape.MatchString(loc)
}

// ExtractLocation 提取居住地
// 前15行按 标签形式→城市邦形状 匹配，仍没有则在前10行里扫描裸地名词。
// geocode 参数为历史接口保留：不做任何网络地理编码，校验只依赖内置辞典。
func ExtractLocation(text string, geocode bool) *string {
	_ = geocode
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	labelLimit := len(lines)
	if labelLimit > 15 {
		labelLimit = 15
	}
	for _, line := range lines[:labelLimit] {
		if matchesLocationSkip(line) {
			continue
		}

		if m := reLocationLabel.FindStringSubmatch(line); m != nil {
			loc := strings.TrimSpace(m[2])
			if isValidLocation(loc) {
				return &loc
			}
		}

		for _, re := range locationShapePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			loc := strings.TrimSpace(m[1]) + ", " + strings.TrimSpace(m[2])
			if isValidLocation(loc) {
				return &loc
			}
		}
	}

	// 裸地名扫描：逐词清洗后查辞典
	bareLimit := len(lines)
	if bareLimit > 10 {
		bareLimit = 10
	}
	for _, line := range lines[:bareLimit] {
		if matchesLocationSkip(line) {
			continue
		}
		for _, word := range strings.Fields(line) {
			clean := strings.ToLower(strings.TrimSpace(reNonAlphaSpace.ReplaceAllString(word, "")))
			if len(clean) > 3 && locationGazetteer[clean] {
				loc := strings.Trim(word, " ,.")
				return &loc
			}
		}
	}

	return nil
}
