package extractor // 简历信息提取核心：按字段独立的启发式分析管线

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"resume-insight-go/internal/annotate"
	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/types"
)

// Components 聚合提取器的功能组件依赖，便于集中管理和测试替换
type Components struct {
	// Annotator 语言标注器，必需
	Annotator annotate.Annotator
	// SkillAnnotator 专用技能标注器，可选；为nil时模型来源不产出任何候选
	SkillAnnotator annotate.SkillAnnotator
	// Keywords 词表存储，必需
	Keywords *keywords.Store
}

// Settings 纯配置项，不包含任何业务组件
type Settings struct {
	MaxSkills int            // 技能输出上限
	Logger    zerolog.Logger // 日志记录器
}

// ResumeExtractor 简历提取组件聚合类
// 每次提取接收请求范围的输入并返回全新记录，不持有可变状态，
// 可被多个goroutine以只读方式共享
type ResumeExtractor struct {
	Components
	Settings
}

// ComponentOpt 组件选项，仅改变Components内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项，仅改变Settings内的字段
type SettingOpt func(*Settings)

// WithAnnotator 替换语言标注器
func WithAnnotator(a annotate.Annotator) ComponentOpt {
	return func(c *Components) {
		c.Annotator = a
	}
}

// WithSkillAnnotator 设置专用技能标注器
func WithSkillAnnotator(a annotate.SkillAnnotator) ComponentOpt {
	return func(c *Components) {
		c.SkillAnnotator = a
	}
}

// WithKeywords 替换词表存储
func WithKeywords(store *keywords.Store) ComponentOpt {
	return func(c *Components) {
		c.Keywords = store
	}
}

// WithMaxSkills 设置技能输出上限
func WithMaxSkills(n int) SettingOpt {
	return func(s *Settings) {
		if n > 0 {
			s.MaxSkills = n
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(l zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		s.Logger = l
	}
}

// New 创建简历提取器
// 默认使用prose标注器与内置词表，技能标注器默认缺失
func New(compOpts []ComponentOpt, setOpts []SettingOpt) *ResumeExtractor {
	e := &ResumeExtractor{
		Components: Components{
			Annotator: annotate.NewProseAnnotator(),
		},
		Settings: Settings{
			MaxSkills: 30,
			Logger:    logger.With("extractor"),
		},
	}
	for _, opt := range compOpts {
		opt(&e.Components)
	}
	for _, opt := range setOpts {
		opt(&e.Settings)
	}
	if e.Keywords == nil {
		e.Keywords = keywords.Default()
	}
	return e
}

// Annotate 对原始文本做标注
// 标注器故障时降级为朴素切词文档并附带警告，绝不让整个提取失败
func (e *ResumeExtractor) Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, []string) {
	doc, err := e.Annotator.Annotate(ctx, text)
	if err != nil {
		warn := NewAnnotateError("all", err.Error())
		e.Logger.Warn().Err(err).Msg("标注器故障，降级为朴素切词")
		return annotate.NaiveDocument(text), []string{warn.Error()}
	}
	return doc, nil
}

// ExtractResumeInfo 对标注文档执行全部字段提取，返回聚合记录与告警列表
//
// 各字段提取相互独立且被防御性包装：单个字段的故障只会让该字段
// 保持零值默认并记录告警，不会阻断其它字段的提取。
// 缺数据(没找到名字/邮箱/技能)不是故障，空值本身就是合法结果。
func (e *ResumeExtractor) ExtractResumeInfo(ctx context.Context, doc *types.AnnotatedDocument) (*types.ResumeRecord, []string) {
	record := &types.ResumeRecord{Phone: types.PhoneNotFound}
	var warnings []string

	e.safeField("name", &warnings, func() {
		record.FirstName, record.LastName = ExtractName(doc)
	})
	e.safeField("email", &warnings, func() {
		record.Email = ExtractEmail(doc)
	})
	e.safeField("phone", &warnings, func() {
		record.Phone = ExtractPhone(doc)
	})
	e.safeField("major", &warnings, func() {
		record.DegreeMajor = ExtractMajor(doc, e.Keywords.Majors)
	})
	e.safeField("education", &warnings, func() {
		record.Education = ExtractEducation(doc)
	})
	e.safeField("skills", &warnings, func() {
		record.Skills = e.extractSkills(ctx, doc, &warnings)
	})
	e.safeField("experience", &warnings, func() {
		record.Experience = ClassifyExperience(doc, e.Keywords.Positions)
	})

	record.Score = CalculateScore(record)
	return record, warnings
}

// ExtractFromText 先标注再提取，适合只有原始文本的调用方
func (e *ResumeExtractor) ExtractFromText(ctx context.Context, text string) (*types.ResumeRecord, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	doc, warnings := e.Annotate(ctx, text)
	record, extractWarnings := e.ExtractResumeInfo(ctx, doc)
	return record, append(warnings, extractWarnings...), nil
}

// MatchText 标注文本后执行招聘方技能匹配
func (e *ResumeExtractor) MatchText(ctx context.Context, text string, required []string) (types.SkillMatchResult, []string, error) {
	if err := ctx.Err(); err != nil {
		return types.SkillMatchResult{}, nil, err
	}
	doc, warnings := e.Annotate(ctx, text)
	return MatchSkills(doc, NormalizeRequired(required)), warnings, nil
}

// extractSkills 组合词表来源与可选的模型来源
func (e *ResumeExtractor) extractSkills(ctx context.Context, doc *types.AnnotatedDocument, warnings *[]string) []string {
	vocabMatched := vocabularySkills(doc, e.Keywords.Skills)

	var modelMatched []string
	if e.SkillAnnotator != nil {
		var err error
		modelMatched, err = modelSkills(ctx, e.SkillAnnotator, doc.Text)
		if err != nil {
			// 次级来源故障仅降级：继续用词表结果
			warn := NewSkillModelError(err.Error())
			e.Logger.Warn().Err(err).Msg("技能标注模型故障，仅使用词表来源")
			*warnings = append(*warnings, warn.Error())
		}
	}

	return mergeSkills(vocabMatched, modelMatched, e.MaxSkills)
}

// safeField 防御性执行单个字段的提取
func (e *ResumeExtractor) safeField(field string, warnings *[]string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Warn().Str("field", field).Interface("panic", r).Msg("字段提取异常，保留默认值")
			*warnings = append(*warnings, fmt.Sprintf("字段%s提取异常: %v", field, r))
		}
	}()
	fn()
}
