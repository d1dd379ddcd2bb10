package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// 姓名提取的形状与标签正则
var (
	reEmailAny = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]+`)
	rePhoneAny = regexp.MustCompile(`\+?\d[\d\-\s()]{7,}\d`)
	reURLAny   = regexp.MustCompile(`(?i)(https?://)?(www\.)?(linkedin|github)\.com/[a-z0-9/_-]+`)

	// reNameLabel 标签行："Name: xxx" / "Full Name - xxx"，可带符号弹头
	reNameLabel = regexp.MustCompile(`(?i)^\s*(?:[•*●■▪❖\-–—]?\s*)?(?:name|full\s*name)\s*[:\-–—]\s*(.*)$`)

	// reTitleName 姓名形状：2-6个首字母大写词 / 2-6个全大写词 / 首字母缩写+姓
	reTitleName = regexp.MustCompile(`^((?:[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,5})|(?:[A-Z]{2,}(?:\s+[A-Z]{2,}){1,5})|(?:(?:[A-Z]\.\s*){1,3}[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?))$`)

	// reNameToken 合法姓名词：字母开头，后续允许点、连字符、撇号
	reNameToken = regexp.MustCompile(`^[A-Za-z][A-Za-z.\-']*$`)

	// reNonNameChar 姓名里不允许出现的字符
	reNonNameChar = regexp.MustCompile(`[^A-Za-z .'\-]`)
)

// cleanNameCandidate 折叠空白并剥掉两端符号
func cleanNameCandidate(line string) string {
	cand := strings.TrimSpace(line)
	cand = reInnerSpace.ReplaceAllString(cand, " ")
	return strings.Trim(cand, "•|-_—:;")
}

// isSkipPhrase 判定整行是否为"Resume"/"Curriculum Vitae"之类的文档标签
func isSkipPhrase(line string) bool {
	ll := strings.Trim(strings.ToLower(strings.TrimSpace(line)), "-:•|")
	if ll == "" {
		return false
	}
	if nameSkipPhrases[ll] {
		return true
	}
	// OCR会把词粘连，去空格后再比一次
	return nameSkipPhrases[strings.ReplaceAll(ll, " ", "")]
}

// isNameSectionHeader 判定整行是否为章节标题（小写、去尾冒号后查表）
func isNameSectionHeader(line string) bool {
	ll := strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":")
	return nameSectionHeaders[ll]
}

// isBadNameLine 含联系方式、数字或结构符号的行不可能是姓名行
func isBadNameLine(line string) bool {
	if isSkipPhrase(line) {
		return true
	}
	if reEmailAny.MatchString(line) || rePhoneAny.MatchString(line) || reURLAny.MatchString(line) {
		return true
	}
	for _, r := range line {
		if unicode.IsDigit(r) {
			return true
		}
		if strings.ContainsRune(`/\@#%^*_+=[]{}<>`, r) {
			return true
		}
	}
	return false
}

// hasJobTitleTokens 任一词落在职位词表里即命中
func hasJobTitleTokens(line string) bool {
	for _, t := range strings.Fields(line) {
		if jobTitleWords[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// isNameShape 候选是否符合姓名形状
func isNameShape(s string) bool {
	s = cleanNameCandidate(s)
	if len(s) < 2 || len(s) > 120 {
		return false
	}
	if reNonNameChar.MatchString(s) {
		return false
	}
	return reTitleName.MatchString(s)
}

// normalizeNameTokens 过滤掉非姓名词
func normalizeNameTokens(tokens []string) []string {
	var cleaned []string
	for _, t := range tokens {
		if strings.Trim(t, ".-'") == "" {
			continue
		}
		if !reNameToken.MatchString(t) {
			continue
		}
		cleaned = append(cleaned, t)
	}
	return cleaned
}

// extractFromFirstLineWithRole 策略一：首行形如 "John Smith — Senior Engineer"
// 从左到右累积姓名词，遇到职位词/技术词/数字/全大写长词立即停止
func extractFromFirstLineWithRole(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := cleanNameCandidate(lines[0])
	if first == "" || isBadNameLine(first) {
		return ""
	}

	var nameTokens []string
	for _, t := range strings.Fields(first) {
		upper := strings.ToUpper(t)
		stop := firstLineStopTokens[upper] ||
			strings.ContainsAny(t, "0123456789/") ||
			(t == upper && hasLetter(t) && len(t) > 2) ||
			jobTitleWords[strings.ToLower(t)]
		if stop {
			break
		}
		if !reNameToken.MatchString(t) {
			break
		}
		nameTokens = append(nameTokens, t)
	}

	if len(nameTokens) < 1 || len(nameTokens) > 2 {
		return ""
	}
	candidate := strings.Join(nameTokens, " ")
	if len(nameTokens) == 1 {
		t := nameTokens[0]
		if unicode.IsUpper(rune(t[0])) && !jobTitleWords[strings.ToLower(t)] {
			return candidate
		}
		return ""
	}
	if isNameShape(candidate) {
		return candidate
	}
	return ""
}

// extractFromLabeledBlock 策略二："Name:" 标签行，余文不足时向下借1-2行补齐
func extractFromLabeledBlock(lines []string, idx int) string {
	m := reNameLabel.FindStringSubmatch(lines[idx])
	if m == nil {
		return ""
	}
	remainder := cleanNameCandidate(m[1])

	if remainder == "" || len(strings.Fields(remainder)) < 2 {
		for j := idx + 1; j < idx+3 && j < len(lines); j++ {
			nxt := cleanNameCandidate(lines[j])
			if nxt == "" || isBadNameLine(nxt) || isNameSectionHeader(nxt) {
				continue
			}
			candidate := nxt
			if remainder != "" {
				candidate = strings.TrimSpace(remainder + " " + nxt)
			}
			tokens := normalizeNameTokens(strings.Fields(candidate))
			if len(tokens) >= 2 && len(tokens) <= 6 && !hasJobTitleTokens(candidate) {
				cand := strings.Join(tokens, " ")
				if isNameShape(cand) {
					return cand
				}
			}
		}
	}

	tokens := normalizeNameTokens(strings.Fields(remainder))
	if len(tokens) >= 2 && len(tokens) <= 6 {
		candidate := strings.Join(tokens, " ")
		if !hasJobTitleTokens(candidate) && isNameShape(candidate) {
			return candidate
		}
	}

	// 标签后只有一个词（名字被断行），继续向下拼
	if len(tokens) == 1 {
		for j := idx + 1; j < idx+3 && j < len(lines); j++ {
			nxt := cleanNameCandidate(lines[j])
			if nxt == "" || isBadNameLine(nxt) || isNameSectionHeader(nxt) {
				continue
			}
			merged := append(append([]string{}, tokens...), normalizeNameTokens(strings.Fields(nxt))...)
			if len(merged) > 6 {
				merged = merged[:6]
			}
			if len(merged) >= 2 {
				candidate := strings.Join(merged, " ")
				if !hasJobTitleTokens(candidate) && isNameShape(candidate) {
					return candidate
				}
			}
		}
	}
	return ""
}

// nameScore 策略三的打分函数：形状、词数、大小写形态与位置权重
func nameScore(line string, indexWeight float64) float64 {
	cand := cleanNameCandidate(line)
	tokens := strings.Fields(cand)
	score := 0.0
	if reTitleName.MatchString(cand) {
		score += 4.0
	}
	switch n := len(tokens); {
	case n >= 2 && n <= 3:
		score += 2.0
	case n == 4:
		score += 1.0
	default:
		score -= 1.0
	}
	titleTokens, allCapsTokens := 0, 0
	for _, t := range tokens {
		if isTitleCaseToken(t) {
			titleTokens++
		}
		if len(t) > 1 && t == strings.ToUpper(t) && hasLetter(t) {
			allCapsTokens++
		}
	}
	score += 0.3 * float64(titleTokens)
	score += 0.4 * float64(allCapsTokens)
	if hasJobTitleTokens(cand) {
		score -= 2.5
	}
	if isBadNameLine(cand) {
		score -= 5.0
	}
	return score + indexWeight
}

// ExtractName 分层启发式姓名提取
// 按置信度从高到低依次尝试：首行带职位、标签行、前言打分、宽松兜底、
// 首行形状兜底；全部失败返回 "Unknown"
func ExtractName(text string) string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return "Unknown"
	}

	if name := extractFromFirstLineWithRole(lines); name != "" {
		return name
	}

	limit := len(lines)
	if limit > 40 {
		limit = 40
	}
	for i := 0; i < limit; i++ {
		if reNameLabel.MatchString(lines[i]) {
			if name := extractFromLabeledBlock(lines, i); name != "" {
				return name
			}
		}
	}

	// 前言 = 第一个章节标题之前的行，封顶12行
	var preface []string
	prefaceLimit := len(lines)
	if prefaceLimit > 60 {
		prefaceLimit = 60
	}
	for _, ln := range lines[:prefaceLimit] {
		if isNameSectionHeader(ln) {
			break
		}
		preface = append(preface, ln)
	}
	if len(preface) == 0 {
		preface = lines
	}
	if len(preface) > 12 {
		preface = preface[:12]
	}

	best := ""
	bestScore := 0.0
	haveBest := false
	for idx, ln := range preface {
		cand := cleanNameCandidate(ln)
		if cand == "" || isBadNameLine(cand) || hasJobTitleTokens(cand) ||
			isNameSectionHeader(cand) || isSkipPhrase(cand) {
			continue
		}
		if !isNameShape(cand) {
			continue
		}
		// 越靠前的行越可能是姓名
		sc := nameScore(cand, 2.0-float64(idx)*0.15)
		if !haveBest || sc > bestScore {
			bestScore = sc
			best = cand
			haveBest = true
		}
	}
	if haveBest {
		return best
	}

	// 宽松兜底：前5行里剔除职位词后还剩2-6个姓名词的
	looseLimit := len(preface)
	if looseLimit > 5 {
		looseLimit = 5
	}
	for _, ln := range preface[:looseLimit] {
		if isBadNameLine(ln) || isNameSectionHeader(ln) || isSkipPhrase(ln) {
			continue
		}
		var tokens []string
		for _, t := range normalizeNameTokens(strings.Fields(ln)) {
			if !jobTitleWords[strings.ToLower(t)] {
				tokens = append(tokens, t)
			}
		}
		if len(tokens) >= 2 && len(tokens) <= 6 {
			if len(tokens) > 4 {
				tokens = tokens[:4]
			}
			cand := strings.Join(tokens, " ")
			if !isSkipPhrase(cand) && isNameShape(cand) {
				return cand
			}
		}
	}

	first := cleanNameCandidate(lines[0])
	if isNameShape(first) && !isNameSectionHeader(first) && !isSkipPhrase(first) {
		return first
	}
	return "Unknown"
}

// SelectName 比较两个后端各自提取的姓名并择优
// 一致或对方Unknown取己方；否则取更长的（信息更完整）
func SelectName(a, b string) string {
	if a == b || b == "Unknown" {
		return a
	}
	if a == "Unknown" {
		return b
	}
	if len(a) >= len(b) {
		return a
	}
	return b
}

// isTitleCaseToken 首字母大写、其余小写
func isTitleCaseToken(t string) bool {
	if t == "" {
		return false
	}
	r := []rune(t)
	if !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsLower(c) {
			return false
		}
	}
	return true
}

// hasLetter 至少含一个字母
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
