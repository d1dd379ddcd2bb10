package parser

import (
	"regexp"
	"sort"
	"strings"
)

// refinedSizeDelta 精炼切分器的字号信号：行最大字号须超出文档中位数这么多
const refinedSizeDelta = 1.5

// refinedMaxHeaderWords 精炼切分器的标题行最多允许的词数（比主切分器更严格）
const refinedMaxHeaderWords = 5

// refinedHeaderPatterns 精炼切分器的标题模式表——整行锚定，形状要求更严
var refinedHeaderPatterns = []sectionPattern{
	{SectionSummary, regexp.MustCompile(`(?i)^\s*(summary|profile|professional\s+summary|about\s+me|objective|career\s+objective)\s*:?\s*$`)},
	{SectionExperience, regexp.MustCompile(`(?i)^\s*(experience|work(\s+experience)?|employment|professional(\s+experience)?|career\s+history|sap\s+experience)\s*:?\s*$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^\s*(skills?|skils|technical\s+skills?|key\s+skills?|core\s+competenc(y|ies)|expertise)\s*:?\s*$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^\s*(projects?|project\s+portfolio|works?)\s*:?\s*$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^\s*(education|academic|qualifications?|degree)\s*:?\s*$`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^\s*(certifications?|certificates?|accreditations?|awards?)\s*:?\s*$`)},
	{SectionPersonal, regexp.MustCompile(`(?i)^\s*(personal\s+details|contact|contact\s+info)\s*:?\s*$`)},
}

var (
	reLeadingBullets  = regexp.MustCompile(`^\s*[-•●▪□■–—❖]+\s*`)
	reTrailingBullets = regexp.MustCompile(`\s*[•●▪□■–—❖]+\s*$`)

	rePreambleEmail = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	rePreamblePhone = regexp.MustCompile(`(?:\+91[-\s]?)?[6-9]\d{9}\b`)
)

// matchRefinedHeader 返回整行命中的精炼标题标签
func matchRefinedHeader(text string) (SectionTag, bool) {
	for _, sp := range refinedHeaderPatterns {
		if sp.re.MatchString(text) {
			return sp.tag, true
		}
	}
	return "", false
}

// RefinedSegmenter 精炼章节切分器
// 与主切分器的差异：
//   - 用首页字形的字号中位数做标题判定阈值（加粗 或 字号≥中位数+1.5pt）
//   - 先单独收集全部标题位置（按纵向位置排序），再把正文行归给
//     "正上方最近的标题"，而不是边扫描边改一个游标——对输出顺序
//     不可靠的提取结果更稳
//   - 含 "engineer" 的行不会被当作标题（已知的误报触发词）
//   - 每个内容行都剔除首尾的符号弹头
//
// 管线只消费它的 skills 桶；其余桶同样是公开契约的一部分
type RefinedSegmenter struct{}

// NewRefinedSegmenter 创建精炼切分器
func NewRefinedSegmenter() *RefinedSegmenter {
	return &RefinedSegmenter{}
}

// refinedHeader 标题预收集结果
type refinedHeader struct {
	tag SectionTag
	y   float64 // 全文档自顶向下的纵向位置
}

// Segment 实现Segmenter接口
func (s *RefinedSegmenter) Segment(doc *Document) map[SectionTag]string {
	median := firstPageFontMedian(doc)

	// 预收集：全部标题行及其全局纵向位置
	var headers []refinedHeader
	forEachLineGlobal(doc, func(ln *Line, globalY float64) {
		text := ln.Text()
		if text == "" {
			return
		}
		if tag, ok := matchRefinedHeader(text); ok && isRefinedHeaderLine(text, ln, median) {
			headers = append(headers, refinedHeader{tag: tag, y: globalY})
		}
	})
	sort.SliceStable(headers, func(a, b int) bool { return headers[a].y < headers[b].y })

	// 分配：正文行归给正上方最近的标题，标题之前的内容进preamble
	collected := map[SectionTag][]string{}
	forEachLineGlobal(doc, func(ln *Line, globalY float64) {
		text := ln.Text()
		if text == "" {
			return
		}
		if _, ok := matchRefinedHeader(text); ok && isRefinedHeaderLine(text, ln, median) {
			return
		}

		bucket := SectionPreamble
		for _, hdr := range headers {
			if globalY > hdr.y {
				bucket = hdr.tag
			} else {
				break
			}
		}

		cleaned := cleanRefinedLine(text)
		if cleaned == "" {
			return
		}
		collected[bucket] = append(collected[bucket], cleaned)
	})

	return s.finalize(collected)
}

// finalize 从preamble推导personal/summary桶并组装输出
func (s *RefinedSegmenter) finalize(collected map[SectionTag][]string) map[SectionTag]string {
	out := make(map[SectionTag]string, len(SectionTags)+1)
	for _, tag := range SectionTags {
		out[tag] = ""
	}

	preambleLines := collected[SectionPreamble]
	preambleText := strings.Join(preambleLines, "\n")
	out[SectionPreamble] = preambleText

	email := rePreambleEmail.FindString(preambleText)
	phone := rePreamblePhone.FindString(preambleText)

	// personal桶：第一行 + 邮箱 + 电话，按出现顺序去重
	var personal []string
	if len(preambleLines) > 0 {
		personal = append(personal, preambleLines[0])
	}
	if email != "" {
		personal = append(personal, email)
	}
	if phone != "" {
		personal = append(personal, phone)
	}
	out[SectionPersonal] = strings.Join(dedupOrdered(personal), "\n")

	// summary桶：preamble里超过5个词且不像联系方式的行
	inPersonal := map[string]bool{}
	for _, p := range personal {
		inPersonal[p] = true
	}
	var summary []string
	for _, ln := range preambleLines {
		if email != "" && strings.Contains(ln, email) {
			continue
		}
		if phone != "" && strings.Contains(ln, phone) {
			continue
		}
		lower := strings.ToLower(ln)
		if strings.Contains(lower, "address") || strings.Contains(lower, "india") {
			continue
		}
		if inPersonal[ln] || len(strings.Fields(ln)) <= 5 {
			continue
		}
		summary = append(summary, ln)
	}
	if len(summary) > 0 {
		out[SectionSummary] = strings.Join(summary, "\n")
	} else if len(collected[SectionSummary]) > 0 {
		out[SectionSummary] = strings.Join(collected[SectionSummary], "\n")
	}

	for _, tag := range []SectionTag{SectionExperience, SectionProjects, SectionSkills, SectionEducation, SectionCertifications, SectionLanguages, SectionOthers} {
		if lines := collected[tag]; len(lines) > 0 {
			out[tag] = strings.TrimSpace(strings.Join(lines, "\n"))
		}
	}

	return out
}

// isRefinedHeaderLine 精炼切分器的标题行判定
func isRefinedHeaderLine(text string, ln *Line, median float64) bool {
	if len(strings.Fields(text)) > refinedMaxHeaderWords {
		return false
	}
	// "engineer" 是已知的标题误报触发词（出现在职位名里）
	if strings.Contains(strings.ToLower(text), "engineer") {
		return false
	}
	return ln.Bold() || ln.MaxSize() >= median+refinedSizeDelta
}

// firstPageFontMedian 取首页所有非空Span的字号中位数，缺省11pt
func firstPageFontMedian(doc *Document) float64 {
	if len(doc.Pages) == 0 {
		return 11.0
	}
	var sizes []float64
	for _, ln := range doc.Pages[0].Lines {
		for _, sp := range ln.Spans {
			if strings.TrimSpace(sp.Text) != "" {
				sizes = append(sizes, sp.Size)
			}
		}
	}
	if len(sizes) == 0 {
		return 11.0
	}
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	var median float64
	if len(sizes)%2 == 1 {
		median = sizes[mid]
	} else {
		median = (sizes[mid-1] + sizes[mid]) / 2.0
	}
	if median == 0 {
		return 11.0
	}
	return median
}

// forEachLineGlobal 以全文档统一的自顶向下坐标遍历所有行
func forEachLineGlobal(doc *Document, fn func(ln *Line, globalY float64)) {
	var offset float64
	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		for li := range page.Lines {
			ln := &page.Lines[li]
			fn(ln, offset+ln.Y0)
		}
		offset += page.Height
	}
}

// cleanRefinedLine 剔除首尾符号弹头并折叠空白
func cleanRefinedLine(text string) string {
	text = reLeadingBullets.ReplaceAllString(text, "")
	text = reTrailingBullets.ReplaceAllString(text, "")
	return strings.TrimSpace(reInnerSpace.ReplaceAllString(text, " "))
}

// dedupOrdered 保序去重
func dedupOrdered(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
