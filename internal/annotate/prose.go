package annotate

import (
	"context"
	"regexp"
	"sort"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"resume-insight-go/internal/types"
)

// emailPattern 邮箱识别，用于补充EMAIL实体
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// orgLineKeywords 行内出现这些关键词时将该行视为教育/组织机构
var orgLineKeywords = []string{"university", "college", "institute"}

// ProseAnnotator 基于prose库的标注器实现
// prose负责分词、词性标注和PERSON/GPE实体识别；
// 在此基础上用规则补充EMAIL实体和prose未覆盖的ORG实体
type ProseAnnotator struct {
	segment bool // 是否启用prose的分句(提取流程不需要，默认关闭以省时)
}

// ProseOption 标注器配置选项
type ProseOption func(*ProseAnnotator)

// WithSegmentation 启用分句
func WithSegmentation(enabled bool) ProseOption {
	return func(p *ProseAnnotator) {
		p.segment = enabled
	}
}

// NewProseAnnotator 创建prose标注器
func NewProseAnnotator(options ...ProseOption) *ProseAnnotator {
	a := &ProseAnnotator{}
	for _, option := range options {
		option(a)
	}
	return a
}

// Annotate 实现Annotator接口
func (p *ProseAnnotator) Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 空文本直接返回空文档，提取管线对空文档有完整的默认行为
	if strings.TrimSpace(text) == "" {
		return &types.AnnotatedDocument{Text: text}, nil
	}

	opts := []prose.DocOpt{prose.WithSegmentation(p.segment)}
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, err
	}

	annotated := &types.AnnotatedDocument{Text: text}

	for _, tok := range doc.Tokens() {
		annotated.Tokens = append(annotated.Tokens, types.Token{
			Text: tok.Text,
			POS:  tok.Tag,
		})
	}

	// prose实体不带偏移量，这里在原文中顺序定位以恢复span边界
	cursor := 0
	for _, ent := range doc.Entities() {
		start := strings.Index(text[cursor:], ent.Text)
		if start < 0 {
			// 定位失败时退化为从头查找
			start = strings.Index(text, ent.Text)
			if start < 0 {
				continue
			}
		} else {
			start += cursor
		}
		annotated.Entities = append(annotated.Entities, types.Entity{
			Label: types.EntityLabel(ent.Label),
			Text:  ent.Text,
			Start: start,
			End:   start + len(ent.Text),
		})
		cursor = start + len(ent.Text)
	}

	annotated.Entities = append(annotated.Entities, p.ruleEntities(text, annotated.Entities)...)

	// 实体顺序 = 文档顺序，下游名字提取依赖这一点
	sort.SliceStable(annotated.Entities, func(i, j int) bool {
		return annotated.Entities[i].Start < annotated.Entities[j].Start
	})

	return annotated, nil
}

// ruleEntities 规则补充实体：EMAIL span和prose漏掉的ORG行
func (p *ProseAnnotator) ruleEntities(text string, existing []types.Entity) []types.Entity {
	var extra []types.Entity

	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		extra = append(extra, types.Entity{
			Label: types.EntityEmail,
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}

	covered := func(start, end int) bool {
		for _, ent := range existing {
			if ent.Label == types.EntityOrg && start < ent.End && end > ent.Start {
				return true
			}
		}
		return false
	}

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, kw := range orgLineKeywords {
			if strings.Contains(lower, kw) {
				start := offset + strings.Index(line, trimmed)
				end := start + len(trimmed)
				if trimmed != "" && !covered(start, end) {
					extra = append(extra, types.Entity{
						Label: types.EntityOrg,
						Text:  trimmed,
						Start: start,
						End:   end,
					})
				}
				break
			}
		}
		offset += len(line) + 1
	}

	return extra
}
