package extractor

import (
	"strings"

	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/types"
)

// 教育机构识别关键词
var educationOrgKeywords = []string{"university", "college", "institute"}

// ExtractEducation 收集疑似教育机构的ORG实体
// 按文档顺序返回，不去重(同一学校出现两个span时保留两条，历史行为)
func ExtractEducation(doc *types.AnnotatedDocument) []string {
	var institutions []string
	for _, ent := range doc.EntitiesByLabel(types.EntityOrg) {
		lower := strings.ToLower(ent.Text)
		for _, kw := range educationOrgKeywords {
			if strings.Contains(lower, kw) {
				institutions = append(institutions, ent.Text)
				break
			}
		}
	}
	return institutions
}

// ExtractMajor 在文档全文中查找专业词表的首个子串命中
// 词表在加载时已排成最长优先，因此结果是确定性的最长匹配；
// 没有任何命中时返回空串
func ExtractMajor(doc *types.AnnotatedDocument, majors *keywords.KeywordSet) string {
	if majors == nil {
		return ""
	}
	lowerText := strings.ToLower(doc.Text)
	for _, entry := range majors.Entries() {
		if strings.Contains(lowerText, strings.ToLower(entry)) {
			return entry
		}
	}
	return ""
}
