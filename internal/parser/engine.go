package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"ai-resume-parser/internal/logger"
)

// DualEngine 双后端文本提取引擎
// 两个独立实现的后端消费同一份文档，各自产出一份拼接文本；
// 引擎的契约是永远返回"某个字符串"——后端失败时该后端的文本为空串
type DualEngine struct {
	logger zerolog.Logger
}

// EngineOption 引擎的配置选项
type EngineOption func(*DualEngine)

// WithEngineLogger 配置自定义日志记录器
func WithEngineLogger(l zerolog.Logger) EngineOption {
	return func(e *DualEngine) {
		e.logger = l
	}
}

// NewDualEngine 初始化双后端提取引擎
func NewDualEngine(options ...EngineOption) *DualEngine {
	e := &DualEngine{
		logger: logger.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// CombinedTexts 返回两个后端文本的合并结果，以及各后端的单独文本
// 合并文本 = 行重建文本 + 换行 + 跨度重建文本，首尾留白剔除
func (e *DualEngine) CombinedTexts(path string) (combined, rowsText, spansText string) {
	rowsText = extractTextByRows(path)
	spansText = extractTextBySpans(path)

	e.logger.Debug().
		Str("file", path).
		Int("rows_text_len", len(rowsText)).
		Int("spans_text_len", len(spansText)).
		Msg("双后端文本提取完成")

	if rowsText == "" && spansText == "" {
		e.logger.Warn().Str("file", path).Msg("两个提取后端都没有产出文本")
	}

	combined = strings.TrimSpace(rowsText + "\n" + spansText)
	return combined, rowsText, spansText
}
