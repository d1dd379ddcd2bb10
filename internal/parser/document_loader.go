package parser

import (
	"fmt"
	"sort"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance 字形归行时允许的纵向偏差(pt)
	rowTolerance = 2.0
	// defaultPageWidth / defaultPageHeight MediaBox缺失时的Letter兜底尺寸
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// LoadDocument 从PDF文件构建带样式标注的文档模型
// 单页解析失败（库panic）只丢弃该页，不影响整个文档
func LoadDocument(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开PDF文件失败: %w", err)
	}
	defer f.Close()

	// 库在畸形PDF上可能panic，页数获取也要保护
	total := 0
	func() {
		defer func() { _ = recover() }()
		total = r.NumPage()
	}()

	doc := &Document{}
	for i := 1; i <= total; i++ {
		func() {
			defer func() { _ = recover() }()
			p := r.Page(i)
			if p.V.IsNull() {
				return
			}
			doc.Pages = append(doc.Pages, buildPage(p))
		}()
	}
	return doc, nil
}

// buildPage 把一页的字形流重组为行与Span
func buildPage(p pdf.Page) Page {
	width, height := pageSize(p)
	page := Page{Width: width, Height: height}

	content := p.Content()
	glyphs := make([]pdf.Text, 0, len(content.Text))
	for _, g := range content.Text {
		if g.S == "" {
			continue
		}
		glyphs = append(glyphs, g)
	}
	if len(glyphs) == 0 {
		return page
	}

	// PDF纵坐标自底向上，翻转为自顶向下再归行
	top := func(g pdf.Text) float64 { return height - g.Y }
	sort.SliceStable(glyphs, func(a, b int) bool {
		if top(glyphs[a]) != top(glyphs[b]) {
			return top(glyphs[a]) < top(glyphs[b])
		}
		return glyphs[a].X < glyphs[b].X
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	lastTop := top(glyphs[0])
	for _, g := range glyphs {
		if len(current) > 0 && top(g)-lastTop > rowTolerance {
			rows = append(rows, current)
			current = nil
		}
		current = append(current, g)
		lastTop = top(g)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	for _, row := range rows {
		sort.SliceStable(row, func(a, b int) bool { return row[a].X < row[b].X })
		line := assembleLine(row, height)
		if line.Text() != "" {
			page.Lines = append(page.Lines, line)
		}
	}
	return page
}

// assembleLine 把同一行的字形合并为Span序列
// 字体或字号变化开启新Span；水平间距超过词距阈值时补一个空格
func assembleLine(row []pdf.Text, pageHeight float64) Line {
	line := Line{
		X0: row[0].X,
		Y0: pageHeight - row[0].Y,
	}

	var cur Span
	var prevEnd float64
	for i, g := range row {
		if i == 0 {
			cur = Span{Font: g.Font, Size: g.FontSize, Bold: IsBoldFont(g.Font)}
		} else {
			gap := g.X - prevEnd
			if g.Font != cur.Font || g.FontSize != cur.Size {
				if gap > wordGap(cur.Size) {
					cur.Text += " "
				}
				line.Spans = append(line.Spans, cur)
				cur = Span{Font: g.Font, Size: g.FontSize, Bold: IsBoldFont(g.Font)}
			} else if gap > wordGap(cur.Size) {
				cur.Text += " "
			}
		}
		cur.Text += g.S
		prevEnd = g.X + g.W
	}
	line.Spans = append(line.Spans, cur)
	return line
}

// wordGap 词边界判定阈值：约为字号的三成
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.5
	}
	return 0.3 * fontSize
}

// pageSize 读取页面MediaBox，属性可能继承自上级Pages节点
func pageSize(p pdf.Page) (float64, float64) {
	mb := p.V.Key("MediaBox")
	if mb.Kind() != pdf.Array {
		// 向上最多走8层，避免畸形文件里的循环引用
		parent := p.V.Key("Parent")
		for depth := 0; depth < 8 && !parent.IsNull(); depth++ {
			mb = parent.Key("MediaBox")
			if mb.Kind() == pdf.Array {
				break
			}
			parent = parent.Key("Parent")
		}
	}
	width, height := defaultPageWidth, defaultPageHeight
	if mb.Kind() == pdf.Array && mb.Len() == 4 {
		w := mb.Index(2).Float64() - mb.Index(0).Float64()
		h := mb.Index(3).Float64() - mb.Index(1).Float64()
		if w > 0 {
			width = w
		}
		if h > 0 {
			height = h
		}
	}
	return width, height
}
