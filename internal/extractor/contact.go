package extractor

import (
	"regexp"

	"resume-insight-go/internal/types"
)

// phonePattern 电话号码匹配
// 容忍国家码前缀、括号区号以及 -/./空格 分隔符，共10-13位数字；
// 两端的\b保证不会从更长的数字串(证件号、账号)中切出一段当作电话
var phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)

// ExtractEmail 返回首个EMAIL实体的文本，没有则返回空串
func ExtractEmail(doc *types.AnnotatedDocument) string {
	for _, ent := range doc.EntitiesByLabel(types.EntityEmail) {
		return ent.Text
	}
	return ""
}

// ExtractPhone 在原文上做正则搜索，返回首个命中
// 未命中时返回占位值"Not found"(电话是唯一使用哨兵占位的字段，历史行为)
func ExtractPhone(doc *types.AnnotatedDocument) string {
	if match := phonePattern.FindString(doc.Text); match != "" {
		return match
	}
	return types.PhoneNotFound
}
