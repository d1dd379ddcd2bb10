package parser

import (
	"math"
	"sort"
	"strings"

	"github.com/dslipak/pdf"

	"ai-resume-parser/internal/constants"
)

// extractTextBySpans 跨度重建后端（Backend B）
// 与Backend A完全独立的第二套提取实现：每页先取线性文本，
// 稀疏时从 块→行→跨度 的结构化表示重建，行内跨度文本以单个空格拼接。
// 规范化与去连字符逻辑与Backend A一致；失败时返回空串。
func extractTextBySpans(path string) string {
	var r *pdf.Reader
	var err error
	func() {
		defer func() { _ = recover() }()
		r, err = pdf.Open(path)
	}()
	if err != nil || r == nil {
		return ""
	}

	total := 0
	func() {
		defer func() { _ = recover() }()
		total = r.NumPage()
	}()

	var pagesText []string
	for i := 1; i <= total; i++ {
		func() {
			defer func() { _ = recover() }()
			p := r.Page(i)
			if p.V.IsNull() {
				return
			}

			pageText, _ := p.GetPlainText(nil)
			if countNonSpace(pageText) < constants.SparseTextThreshold {
				if rebuilt := rebuildFromSpans(p); rebuilt != "" {
					pageText = rebuilt
				}
			}

			pagesText = append(pagesText, NormalizeTextBlock(pageText))
		}()
	}

	return joinPagesDehyphenated(pagesText)
}

// rebuildFromSpans 按行归并跨度并以空格连接其文本
func rebuildFromSpans(p pdf.Page) string {
	content := p.Content()
	if len(content.Text) == 0 {
		return ""
	}

	type spanRun struct {
		text string
		x, y float64
	}

	// 先把字形聚成跨度：行键相同且间距小的连续字形属于同一跨度
	var runs []spanRun
	glyphs := content.Text
	sort.SliceStable(glyphs, func(a, b int) bool {
		ka := math.Round(glyphs[a].Y*10) / 10
		kb := math.Round(glyphs[b].Y*10) / 10
		if ka != kb {
			return ka > kb // PDF纵坐标自底向上，大的在页面上方
		}
		return glyphs[a].X < glyphs[b].X
	})

	var cur *spanRun
	var prevEnd float64
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		key := math.Round(g.Y*10) / 10
		if cur != nil && (key != cur.y || g.X-prevEnd > wordGap(g.FontSize)) {
			runs = append(runs, *cur)
			cur = nil
		}
		if cur == nil {
			cur = &spanRun{x: g.X, y: key}
		}
		cur.text += g.S
		prevEnd = g.X + g.W
	}
	if cur != nil {
		runs = append(runs, *cur)
	}

	// 再按行键分组，行内跨度以单个空格拼接
	var lines []string
	var lineParts []string
	var lastY float64
	for i, run := range runs {
		if i > 0 && run.y != lastY {
			lines = append(lines, strings.Join(lineParts, " "))
			lineParts = nil
		}
		lineParts = append(lineParts, run.text)
		lastY = run.y
	}
	if len(lineParts) > 0 {
		lines = append(lines, strings.Join(lineParts, " "))
	}
	return strings.Join(lines, "\n")
}
