package parser

import (
	"strings"
)

// Span 样式统一的最小文本片段
type Span struct {
	Text string  // 片段文本
	Font string  // 字体名
	Size float64 // 字号(pt)
	Bold bool    // 字体名中含 bold 即视为粗体
}

// Line 一行文本，由若干Span组成
// Y0 为页内自顶向下的纵坐标（PDF原生坐标已翻转），X0 为行起点横坐标
type Line struct {
	Spans []Span
	X0    float64
	Y0    float64
}

// Text 拼接所有Span的文本
func (l *Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}

// Bold 任一Span为粗体则整行视为粗体
func (l *Line) Bold() bool {
	for _, s := range l.Spans {
		if s.Bold {
			return true
		}
	}
	return false
}

// MaxSize 行内最大字号
func (l *Line) MaxSize() float64 {
	var max float64
	for _, s := range l.Spans {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// Page 一页文档：页宽用于左右分栏，行按自顶向下排序
type Page struct {
	Width  float64
	Height float64
	Lines  []Line
}

// Document 带样式标注的分页文档，是两个章节切分器的共同输入
type Document struct {
	Pages []Page
}

// SectionTag 固定闭集的章节标签
type SectionTag string

const (
	SectionSummary        SectionTag = "summary"
	SectionExperience     SectionTag = "experience"
	SectionSkills         SectionTag = "skills"
	SectionProjects       SectionTag = "projects"
	SectionEducation      SectionTag = "education"
	SectionCertifications SectionTag = "certifications"
	SectionPersonal       SectionTag = "personal"
	SectionLanguages      SectionTag = "languages"
	SectionOthers         SectionTag = "others"
	SectionPreamble       SectionTag = "preamble"
)

// SectionTags 输出映射中必须全部出现的九个标签（preamble 仅精炼切分器产出）
var SectionTags = []SectionTag{
	SectionSummary,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionEducation,
	SectionCertifications,
	SectionPersonal,
	SectionLanguages,
	SectionOthers,
}

// Segmenter 章节切分器：把文档切分为 标签→文本 的映射
type Segmenter interface {
	Segment(doc *Document) map[SectionTag]string
}

// IsBoldFont 通过字体名判断粗体
func IsBoldFont(fontName string) bool {
	return strings.Contains(strings.ToLower(fontName), "bold")
}
