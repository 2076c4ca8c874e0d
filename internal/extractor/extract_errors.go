package extractor

import (
	"errors"
	"fmt"
)

// 基础错误类型
// 注意：字段提取不到内容不是错误(空值/占位值是合法结果)，
// 这里的错误只描述协作方故障：标注器失败、词表数据源不可用等
var (
	ErrAnnotateFailed           = errors.New("文本标注失败")
	ErrSkillModelUnavailable    = errors.New("技能标注模型不可用")
	ErrKeywordSourceUnavailable = errors.New("词表数据源不可用")
)

// ExtractError 带现场信息的提取错误
type ExtractError struct {
	Field   string // 受影响的字段(name/skills/...)
	Op      string // 失败的操作
	BaseErr error
	Detail  string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (字段:%s, 操作:%s): %s", e.BaseErr, e.Field, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (字段:%s, 操作:%s)", e.BaseErr, e.Field, e.Op)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 支持errors.Is按基础错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewAnnotateError 构造标注失败错误
func NewAnnotateError(field, detail string) error {
	return &ExtractError{Field: field, Op: "annotate", BaseErr: ErrAnnotateFailed, Detail: detail}
}

// NewSkillModelError 构造技能模型失败错误
func NewSkillModelError(detail string) error {
	return &ExtractError{Field: "skills", Op: "annotate_skills", BaseErr: ErrSkillModelUnavailable, Detail: detail}
}
