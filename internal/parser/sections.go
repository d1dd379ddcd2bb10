package parser

import (
	"regexp"
	"strings"
)

// headerBoostSize 主切分器里超过该字号(pt)的行即便不加粗也可能是章节标题
const headerBoostSize = 11.0

// maxHeaderWords 主切分器的标题行最多允许的词数
const maxHeaderWords = 7

// sectionPattern 标签→标题正则的查找表条目，按固定顺序匹配
type sectionPattern struct {
	tag SectionTag
	re  *regexp.Regexp
}

// sectionPatterns 主切分器的标题模式表
// 数据驱动：扩展章节分类只需加表项，不改控制流
var sectionPatterns = []sectionPattern{
	{SectionEducation, regexp.MustCompile(`(?i)\b(education|academic|qualification|degree)\b`)},
	{SectionExperience, regexp.MustCompile(`(?i)\b(experience|work|employment|job history|professional background)\b`)},
	{SectionSkills, regexp.MustCompile(`(?i)\b(skills?|technical skills|key skills|competencies|expertise|technologies|skills and expertise|core skills)\b`)},
	{SectionProjects, regexp.MustCompile(`(?i)\b(projects|portfolio|works)\b`)},
	{SectionCertifications, regexp.MustCompile(`(?i)\b(certifications|certificates|accreditations)\b`)},
	{SectionSummary, regexp.MustCompile(`(?i)\b(summary|profile|objective|about me|professional summary)\b`)},
	{SectionLanguages, regexp.MustCompile(`(?i)\b(languages?|known languages|spoken languages)\b`)},
}

var reInnerSpace = regexp.MustCompile(`\s+`)

// matchSectionHeader 返回文本命中的章节标签
func matchSectionHeader(text string) (SectionTag, bool) {
	for _, sp := range sectionPatterns {
		if sp.re.MatchString(text) {
			return sp.tag, true
		}
	}
	return "", false
}

// ColumnSegmenter 主章节切分器（分栏感知）
// 按页面中线把块分为左右两栏，先整列处理左栏再处理右栏
// （双栏简历是按栏阅读的，不是按行交错阅读）；
// 标题行依据 加粗/字号 信号加模式匹配识别，标题本身不计入章节内容
type ColumnSegmenter struct{}

// NewColumnSegmenter 创建主切分器
func NewColumnSegmenter() *ColumnSegmenter {
	return &ColumnSegmenter{}
}

// Segment 实现Segmenter接口
// current_section 从 others 起步并贯穿整个文档
func (s *ColumnSegmenter) Segment(doc *Document) map[SectionTag]string {
	collected := map[SectionTag][]string{}
	current := SectionOthers

	for _, page := range doc.Pages {
		midX := page.Width / 2.0

		var leftLines, rightLines []*Line
		for i := range page.Lines {
			ln := &page.Lines[i]
			if ln.X0 < midX {
				leftLines = append(leftLines, ln)
			} else {
				rightLines = append(rightLines, ln)
			}
		}

		// 行已按Y0自顶向下排序，逐栏顺序处理即可
		for _, column := range [][]*Line{leftLines, rightLines} {
			for _, ln := range column {
				text := ln.Text()
				if text == "" {
					continue
				}

				if len(strings.Fields(text)) <= maxHeaderWords {
					if tag, ok := matchSectionHeader(text); ok {
						if ln.Bold() || ln.MaxSize() > headerBoostSize {
							current = tag
							// 标题行本身不进入章节内容
							continue
						}
					}
				}

				collected[current] = append(collected[current], text)
			}
		}
	}

	return finalizeSections(collected)
}

// finalizeSections 清洗行内空白并保证九个固定标签全部出现
func finalizeSections(collected map[SectionTag][]string) map[SectionTag]string {
	out := make(map[SectionTag]string, len(SectionTags))
	for _, tag := range SectionTags {
		var cleaned []string
		for _, ln := range collected[tag] {
			ln = strings.TrimSpace(reInnerSpace.ReplaceAllString(ln, " "))
			if ln != "" {
				cleaned = append(cleaned, ln)
			}
		}
		out[tag] = strings.Join(cleaned, "\n")
	}
	return out
}

// SegmentPlainText 纯文本兜底切分
// 没有样式信号可用时（如 .txt 输入），只按标题模式逐行切分
func SegmentPlainText(text string) map[SectionTag]string {
	collected := map[SectionTag][]string{}
	current := SectionOthers

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if tag, ok := matchSectionHeader(ln); ok && len(strings.Fields(ln)) <= maxHeaderWords {
			current = tag
			continue
		}
		collected[current] = append(collected[current], ln)
	}

	return finalizeSections(collected)
}
