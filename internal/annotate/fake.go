package annotate

import (
	"context"
	"strings"
	"unicode"

	"resume-insight-go/internal/types"
)

// FakeAnnotator 测试用标注器
// Doc非空时原样返回；否则按空白切词构造一份无实体的朴素文档
type FakeAnnotator struct {
	Doc *types.AnnotatedDocument
	Err error
}

// Annotate 实现Annotator接口
func (f *FakeAnnotator) Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Doc != nil {
		return f.Doc, nil
	}
	return NaiveDocument(text), nil
}

// FakeSkillAnnotator 测试用技能标注器，返回预设实体
type FakeSkillAnnotator struct {
	Entities []types.Entity
	Err      error
}

// AnnotateSkills 实现SkillAnnotator接口
func (f *FakeSkillAnnotator) AnnotateSkills(ctx context.Context, text string) ([]types.Entity, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Entities, nil
}

// NaiveDocument 按空白切词构造标注文档，词性留空，并用规则补充EMAIL实体
// 测试和降级场景共用
func NaiveDocument(text string) *types.AnnotatedDocument {
	doc := &types.AnnotatedDocument{Text: text}
	for _, field := range strings.FieldsFunc(text, unicode.IsSpace) {
		doc.Tokens = append(doc.Tokens, types.Token{Text: field})
	}
	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		doc.Entities = append(doc.Entities, types.Entity{
			Label: types.EntityEmail,
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return doc
}
