package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"ai-resume-parser/internal/logger"
	"ai-resume-parser/internal/parser"
	"ai-resume-parser/internal/types"
)

// ResumeProcessor 简历解析组件聚合类
// 把双后端提取引擎、两个章节切分器和各字段提取器编排成一条管线；
// 对外契约是 ProcessResume 永不panic、永远返回一条完整记录
type ResumeProcessor struct {
	engine  *parser.DualEngine
	primary parser.Segmenter
	refined parser.Segmenter
	logger  zerolog.Logger

	// 电话解析的默认地区码（ISO 3166-1 alpha-2）
	defaultPhoneRegion string
}

// ProcessorOption 处理器的配置选项
type ProcessorOption func(*ResumeProcessor)

// WithProcessorLogger 配置自定义日志记录器
func WithProcessorLogger(l zerolog.Logger) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.logger = l
	}
}

// WithDefaultPhoneRegion 配置电话解析的默认地区
func WithDefaultPhoneRegion(region string) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.defaultPhoneRegion = region
	}
}

// WithSegmenters 替换默认的两个章节切分器（测试用）
func WithSegmenters(primary, refined parser.Segmenter) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.primary = primary
		p.refined = refined
	}
}

// NewResumeProcessor 初始化简历处理器
func NewResumeProcessor(options ...ProcessorOption) *ResumeProcessor {
	p := &ResumeProcessor{
		engine:             parser.NewDualEngine(),
		primary:            parser.NewColumnSegmenter(),
		refined:            parser.NewRefinedSegmenter(),
		logger:             logger.Logger,
		defaultPhoneRegion: "IN",
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ProcessResume 端到端解析一份简历文件
// 任何环节出错（包括底层库panic）都不会外泄：统一降级为带error字段的
// 兜底记录，姓名Unknown、技能空列表、经验零值串
func (p *ResumeProcessor) ProcessResume(path string) (record *types.ResumeRecord) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("file", path).
				Interface("panic", r).
				Msg("简历解析过程发生panic，降级为兜底记录")
			record = types.NewFallbackRecord(fmt.Sprint(r))
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return p.processPlainText(path)
	}
	return p.processPDF(path)
}

// processPDF PDF主路径：双后端提文本、双切分器分章节、逐字段提取
func (p *ResumeProcessor) processPDF(path string) *types.ResumeRecord {
	combined, rowsText, spansText := p.engine.CombinedTexts(path)

	// 联系方式优先用行重建后端的文本——线性顺序更可靠
	contactSource := rowsText
	if contactSource == "" {
		contactSource = combined
	}
	spansSource := spansText
	if spansSource == "" {
		spansSource = combined
	}

	info := types.PersonalInfo{
		Name:     parser.SelectName(parser.ExtractName(contactSource), parser.ExtractName(spansSource)),
		Email:    parser.ExtractEmail(contactSource),
		Phone:    parser.ExtractPhone(contactSource, p.defaultPhoneRegion),
		LinkedIn: parser.ExtractLinkedIn(contactSource),
		GitHub:   parser.ExtractGitHub(contactSource),
		Location: parser.ExtractLocation(contactSource, false),
	}

	doc, err := parser.LoadDocument(path)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", path).Msg("布局文档加载失败，降级为兜底记录")
		return types.NewFallbackRecord(err.Error())
	}

	primarySections := p.primary.Segment(doc)
	refinedSections := p.segmentRefinedSafe(doc)

	// 技能只认精炼切分器的桶，空了才回退主切分器
	skillsText := refinedSections[parser.SectionSkills]
	if skillsText == "" {
		skillsText = primarySections[parser.SectionSkills]
	}

	record := &types.ResumeRecord{
		PersonalInfo:    info,
		Skills:          parser.ExtractSkills(skillsText),
		TotalExperience: parser.CalculateTotalExperience(primarySections[parser.SectionExperience]),
	}

	p.logger.Info().
		Str("file", path).
		Str("name", record.PersonalInfo.Name).
		Int("skills", len(record.Skills)).
		Str("total_experience", record.TotalExperience).
		Msg("简历解析完成")

	return record
}

// processPlainText 纯文本路径：没有样式信号，用标题模式切分兜底
func (p *ResumeProcessor) processPlainText(path string) *types.ResumeRecord {
	raw, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", path).Msg("文本文件读取失败，降级为兜底记录")
		return types.NewFallbackRecord(err.Error())
	}

	text := parser.NormalizeTextBlock(string(raw))
	sections := parser.SegmentPlainText(text)

	record := &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			Name:     parser.ExtractName(text),
			Email:    parser.ExtractEmail(text),
			Phone:    parser.ExtractPhone(text, p.defaultPhoneRegion),
			LinkedIn: parser.ExtractLinkedIn(text),
			GitHub:   parser.ExtractGitHub(text),
			Location: parser.ExtractLocation(text, false),
		},
		Skills:          parser.ExtractSkills(sections[parser.SectionSkills]),
		TotalExperience: parser.CalculateTotalExperience(sections[parser.SectionExperience]),
	}

	p.logger.Info().
		Str("file", path).
		Str("name", record.PersonalInfo.Name).
		Int("skills", len(record.Skills)).
		Msg("纯文本简历解析完成")

	return record
}

// segmentRefinedSafe 精炼切分器单独包一层恢复：它失败不应拖垮整条管线
func (p *ResumeProcessor) segmentRefinedSafe(doc *parser.Document) (sections map[parser.SectionTag]string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn().Interface("panic", r).Msg("精炼切分器异常，改用主切分器结果")
			sections = map[parser.SectionTag]string{}
		}
	}()
	return p.refined.Segment(doc)
}
