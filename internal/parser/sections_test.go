package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLine 构造测试用的单Span行
func makeLine(text string, x, y, size float64, bold bool) Line {
	font := "Helvetica"
	if bold {
		font = "Helvetica-Bold"
	}
	return Line{
		Spans: []Span{{Text: text, Font: font, Size: size, Bold: bold}},
		X0:    x,
		Y0:    y,
	}
}

func singleColumnDoc() *Document {
	return &Document{Pages: []Page{{
		Width:  612,
		Height: 792,
		Lines: []Line{
			makeLine("Rohan Mehta", 72, 60, 16, true),
			makeLine("rohan@example.com | 9876543210", 72, 80, 10, false),
			makeLine("EXPERIENCE", 72, 110, 13, true),
			makeLine("Acme Corp Jan 2019 - Jun 2020", 72, 130, 10, false),
			makeLine("Built data pipelines", 72, 150, 10, false),
			makeLine("SKILLS", 72, 180, 13, true),
			makeLine("Python, SQL, Docker", 72, 200, 10, false),
		},
	}}}
}

func TestColumnSegmenterSegment(t *testing.T) {
	segments := NewColumnSegmenter().Segment(singleColumnDoc())

	t.Run("九个标签全部出现", func(t *testing.T) {
		for _, tag := range SectionTags {
			_, ok := segments[tag]
			assert.True(t, ok, "输出必须包含标签 %s", tag)
		}
	})

	t.Run("标题行不计入内容", func(t *testing.T) {
		assert.NotContains(t, segments[SectionExperience], "EXPERIENCE")
		assert.NotContains(t, segments[SectionSkills], "SKILLS")
	})

	t.Run("标题后的行归入对应章节", func(t *testing.T) {
		assert.Contains(t, segments[SectionExperience], "Acme Corp Jan 2019 - Jun 2020")
		assert.Contains(t, segments[SectionExperience], "Built data pipelines")
		assert.Contains(t, segments[SectionSkills], "Python, SQL, Docker")
	})

	t.Run("首个标题之前的行进others", func(t *testing.T) {
		assert.Contains(t, segments[SectionOthers], "Rohan Mehta")
	})

	t.Run("非粗体普通字号的匹配行不是标题", func(t *testing.T) {
		doc := &Document{Pages: []Page{{
			Width:  612,
			Height: 792,
			Lines: []Line{
				makeLine("gained experience with Docker", 72, 60, 10, false),
			},
		}}}
		out := NewColumnSegmenter().Segment(doc)
		assert.Contains(t, out[SectionOthers], "gained experience with Docker",
			"缺少样式信号时命中模式的行仍是正文")
		assert.Empty(t, out[SectionExperience])
	})
}

func TestColumnSegmenterTwoColumns(t *testing.T) {
	// 左栏 SKILLS，右栏 EXPERIENCE：左栏应整体先于右栏处理
	doc := &Document{Pages: []Page{{
		Width:  612,
		Height: 792,
		Lines: []Line{
			makeLine("SKILLS", 50, 60, 13, true),
			makeLine("EXPERIENCE", 350, 60, 13, true),
			makeLine("Python", 50, 80, 10, false),
			makeLine("Acme Corp 2019 - 2021", 350, 80, 10, false),
		},
	}}}

	segments := NewColumnSegmenter().Segment(doc)
	assert.Contains(t, segments[SectionSkills], "Python")
	assert.Contains(t, segments[SectionExperience], "Acme Corp 2019 - 2021")
	assert.NotContains(t, segments[SectionSkills], "Acme Corp",
		"右栏内容不应交错进左栏的章节")
}

func TestColumnSegmenterSectionPersistsAcrossPages(t *testing.T) {
	doc := &Document{Pages: []Page{
		{
			Width: 612, Height: 792,
			Lines: []Line{
				makeLine("EXPERIENCE", 72, 60, 13, true),
				makeLine("Acme Corp", 72, 80, 10, false),
			},
		},
		{
			Width: 612, Height: 792,
			Lines: []Line{
				makeLine("Beta Ltd second page", 72, 60, 10, false),
			},
		},
	}}

	segments := NewColumnSegmenter().Segment(doc)
	assert.Contains(t, segments[SectionExperience], "Beta Ltd second page",
		"章节游标应跨页保持")
}

func TestSegmentPlainText(t *testing.T) {
	text := strings.Join([]string{
		"Rohan Mehta",
		"EXPERIENCE",
		"Acme Corp Jan 2019 - Jun 2020",
		"SKILLS",
		"Python, SQL",
	}, "\n")

	segments := SegmentPlainText(text)
	assert.Contains(t, segments[SectionExperience], "Acme Corp")
	assert.Contains(t, segments[SectionSkills], "Python, SQL")
	assert.Contains(t, segments[SectionOthers], "Rohan Mehta")
	assert.NotContains(t, segments[SectionSkills], "SKILLS")
}

func TestRefinedSegmenterSegment(t *testing.T) {
	segments := NewRefinedSegmenter().Segment(singleColumnDoc())

	t.Run("技能桶", func(t *testing.T) {
		assert.Contains(t, segments[SectionSkills], "Python, SQL, Docker")
		assert.NotContains(t, segments[SectionSkills], "SKILLS")
	})

	t.Run("preamble派生personal", func(t *testing.T) {
		require.NotEmpty(t, segments[SectionPersonal])
		assert.Contains(t, segments[SectionPersonal], "Rohan Mehta", "preamble首行进personal桶")
		assert.Contains(t, segments[SectionPersonal], "rohan@example.com")
		assert.Contains(t, segments[SectionPersonal], "9876543210")
	})

	t.Run("含engineer的行不是标题", func(t *testing.T) {
		doc := &Document{Pages: []Page{{
			Width: 612, Height: 792,
			Lines: []Line{
				makeLine("Experience Engineer", 72, 60, 16, true),
				makeLine("some body text here", 72, 80, 10, false),
			},
		}}}
		out := NewRefinedSegmenter().Segment(doc)
		assert.Empty(t, out[SectionExperience], "engineer是标题误报触发词")
	})
}

func TestFirstPageFontMedian(t *testing.T) {
	t.Run("空文档默认11pt", func(t *testing.T) {
		assert.Equal(t, 11.0, firstPageFontMedian(&Document{}))
	})

	t.Run("奇数个字号取中位", func(t *testing.T) {
		doc := &Document{Pages: []Page{{
			Lines: []Line{
				makeLine("a", 0, 0, 10, false),
				makeLine("b", 0, 10, 12, false),
				makeLine("c", 0, 20, 14, false),
			},
		}}}
		assert.Equal(t, 12.0, firstPageFontMedian(doc))
	})
}
