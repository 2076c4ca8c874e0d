package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/types"
)

// TestExtractEducation 收集含教育关键词的ORG实体
func TestExtractEducation(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Text: "ignored",
		Entities: []types.Entity{
			{Label: types.EntityOrg, Text: "Stanford University"},
			{Label: types.EntityOrg, Text: "Acme Corporation"},
			{Label: types.EntityOrg, Text: "National Institute of Technology"},
			{Label: types.EntityOrg, Text: "Boston College"},
		},
	}

	education := ExtractEducation(doc)

	assert.Equal(t, []string{
		"Stanford University",
		"National Institute of Technology",
		"Boston College",
	}, education, "应按文档顺序收集教育机构并排除普通公司")
}

// TestExtractEducationKeepsDuplicates 同一学校出现多次时保留重复项
func TestExtractEducationKeepsDuplicates(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Entities: []types.Entity{
			{Label: types.EntityOrg, Text: "Stanford University"},
			{Label: types.EntityOrg, Text: "Stanford University"},
		},
	}

	education := ExtractEducation(doc)

	assert.Len(t, education, 2, "重复出现的学校应保留多条")
}

// TestExtractEducationEmpty 无教育机构时返回空
func TestExtractEducationEmpty(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Entities: []types.Entity{
			{Label: types.EntityOrg, Text: "Acme Corporation"},
			{Label: types.EntityPerson, Text: "John Smith"},
		},
	}

	assert.Empty(t, ExtractEducation(doc), "没有教育机构时应返回空列表")
}

// TestExtractMajor 专业词表的子串匹配
func TestExtractMajor(t *testing.T) {
	majors := keywords.NewKeywordSet("majors", []string{"Computer Science", "Mathematics"})
	majors.SortLongestFirst()

	doc := &types.AnnotatedDocument{
		Text: "Bachelor of Computer Science, 2020",
	}

	assert.Equal(t, "Computer Science", ExtractMajor(doc, majors), "应命中专业词表项并保留词表写法")
}

// TestExtractMajorLongestFirst 多个词表项都命中时取最长者
func TestExtractMajorLongestFirst(t *testing.T) {
	majors := keywords.NewKeywordSet("majors", []string{"Science", "Computer Science"})
	majors.SortLongestFirst()

	doc := &types.AnnotatedDocument{
		Text: "M.Sc. in computer science",
	}

	assert.Equal(t, "Computer Science", ExtractMajor(doc, majors), "最长优先应压过较短的词表项")
}

// TestExtractMajorNotFound 无命中时返回空串
func TestExtractMajorNotFound(t *testing.T) {
	majors := keywords.NewKeywordSet("majors", []string{"Computer Science"})

	doc := &types.AnnotatedDocument{Text: "experienced plumber"}

	assert.Empty(t, ExtractMajor(doc, majors), "无命中时应返回空串")
	assert.Empty(t, ExtractMajor(doc, nil), "词表缺失时应返回空串")
}
