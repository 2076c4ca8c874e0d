package annotate

import (
	"context"

	"resume-insight-go/internal/types"
)

//
// 语言标注相关接口
//
// 标注器作为显式注入的依赖传入各提取器，不做进程级单例，
// 以便测试时替换为假实现，也便于多线程下以只读方式复用。
//

// Annotator 语言标注器接口
type Annotator interface {
	// Annotate 对原始文本做一次完整标注，产出只读的标注文档
	Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, error)
}

// SkillAnnotator 专用技能标注器接口(次级来源)
// 该来源是可选的：实现缺失(nil)时技能提取仅依赖词表匹配
type SkillAnnotator interface {
	// AnnotateSkills 返回文本中被标注为SKILL的实体
	AnnotateSkills(ctx context.Context, text string) ([]types.Entity, error)
}
