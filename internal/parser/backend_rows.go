package parser

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"ai-resume-parser/internal/constants"
)

// tableGapThreshold 同一行内词与词之间超过该间距(pt)视为表格列分隔
const tableGapThreshold = 18.0

// extractTextByRows 行重建后端（Backend A）
// 每页先用库的线性文本模式；结果过于稀疏时退回词级重建：
// 字形纵坐标取整到一位小数归行，行内按横坐标排序，词之间补单个空格。
// 识别到的表格行以竖线分隔附在段落文本之后。
// 任何失败（文件打不开等）都返回空串而不是错误。
func extractTextByRows(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

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
			words := pageWords(p)

			if countNonSpace(pageText) < constants.SparseTextThreshold {
				if rebuilt := rebuildFromWords(words); rebuilt != "" {
					pageText = rebuilt
				}
			}

			for _, row := range tableRows(words) {
				pageText += "\n" + row
			}

			pagesText = append(pagesText, NormalizeTextBlock(pageText))
		}()
	}

	return joinPagesDehyphenated(pagesText)
}

// pageWord 一个重建出来的词及其几何位置
type pageWord struct {
	text string
	x, y float64 // y 已取整到一位小数（自顶向下）
}

// pageWords 从字形流重建词序列
func pageWords(p pdf.Page) []pageWord {
	_, height := pageSize(p)
	content := p.Content()

	type glyphPos struct {
		g   pdf.Text
		key float64
	}
	glyphs := make([]glyphPos, 0, len(content.Text))
	for _, g := range content.Text {
		if g.S == "" {
			continue
		}
		// 纵坐标取整到一位小数作为行键
		key := math.Round((height-g.Y)*10) / 10
		glyphs = append(glyphs, glyphPos{g: g, key: key})
	}
	sort.SliceStable(glyphs, func(a, b int) bool {
		if glyphs[a].key != glyphs[b].key {
			return glyphs[a].key < glyphs[b].key
		}
		return glyphs[a].g.X < glyphs[b].g.X
	})

	var words []pageWord
	var cur *pageWord
	var prevEnd float64
	for idx := range glyphs {
		g := glyphs[idx].g
		key := glyphs[idx].key
		if cur != nil && (key != cur.y || g.X-prevEnd > wordGap(g.FontSize)) {
			words = append(words, *cur)
			cur = nil
		}
		if cur == nil {
			cur = &pageWord{x: g.X, y: key}
		}
		cur.text += g.S
		prevEnd = g.X + g.W
	}
	if cur != nil {
		words = append(words, *cur)
	}
	return words
}

// rebuildFromWords 把词序列按行键重组为文本
func rebuildFromWords(words []pageWord) string {
	if len(words) == 0 {
		return ""
	}
	var lines []string
	var cur []string
	lastY := words[0].y
	for _, w := range words {
		if len(cur) > 0 && w.y != lastY {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
		cur = append(cur, w.text)
		lastY = w.y
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return strings.Join(lines, "\n")
}

// tableRows 识别表格状的行并输出竖线分隔的单元格
// 同一行内至少三个被大间距分开的词块才算一行表格数据
func tableRows(words []pageWord) []string {
	byRow := map[float64][]pageWord{}
	var keys []float64
	for _, w := range words {
		if _, ok := byRow[w.y]; !ok {
			keys = append(keys, w.y)
		}
		byRow[w.y] = append(byRow[w.y], w)
	}
	sort.Float64s(keys)

	var rows []string
	for _, k := range keys {
		row := byRow[k]
		var cells []string
		var cell []string
		for i, w := range row {
			if i > 0 && w.x-rowEnd(row[i-1]) > tableGapThreshold {
				cells = append(cells, strings.Join(cell, " "))
				cell = nil
			}
			cell = append(cell, w.text)
		}
		cells = append(cells, strings.Join(cell, " "))
		if len(cells) >= 3 {
			rows = append(rows, strings.Join(cells, " | "))
		}
	}
	return rows
}

// rowEnd 估算词块的右边界（字形宽度信息在词级已丢失，用字符数近似）
func rowEnd(w pageWord) float64 {
	return w.x + float64(len(w.text))*4.0
}

// joinPagesDehyphenated 把各页规范化文本的行合并、跨页去连字符后拼接
func joinPagesDehyphenated(pagesText []string) string {
	var lines []string
	for _, pt := range pagesText {
		lines = append(lines, strings.Split(pt, "\n")...)
	}
	return joinNonEmpty(DehyphenateLines(lines))
}
