package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insight-go/internal/types"
)

// TestNormalizeRequired 去空白、转小写、保序去重
func TestNormalizeRequired(t *testing.T) {
	got := NormalizeRequired([]string{" Python ", "SQL", "python", "", "  ", "Docker"})

	assert.Equal(t, []string{"python", "sql", "docker"}, got, "规整结果与预期不符")
}

// TestMatchSkillsPartition Found与Missing是required的不相交保序划分
func TestMatchSkillsPartition(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Text: "Experienced in Python and SQL. Deployed services with Docker.",
	}
	required := []string{"python", "golang", "sql", "rust"}

	result := MatchSkills(doc, required)

	assert.Equal(t, []string{"python", "sql"}, result.Found, "命中组应保持required顺序")
	assert.Equal(t, []string{"golang", "rust"}, result.Missing, "未命中组应保持required顺序")
	assert.Equal(t, required, result.Required)
	assert.Len(t, result.Found, len(required)-len(result.Missing), "两组大小之和应等于required")
	assert.InDelta(t, 50.0, result.MatchRate, 0.001)
}

// TestMatchSkillsOneOfThree 三项必备技能命中一项时匹配率约33.3%
func TestMatchSkillsOneOfThree(t *testing.T) {
	doc := &types.AnnotatedDocument{Text: "Strong python background."}

	result := MatchSkills(doc, []string{"python", "golang", "rust"})

	assert.Equal(t, []string{"python"}, result.Found)
	assert.Equal(t, []string{"golang", "rust"}, result.Missing)
	assert.InDelta(t, 33.3, result.MatchRate, 0.05, "匹配率应约为33.3%%")
}

// TestMatchSkillsWholeWord 子串不算命中
func TestMatchSkillsWholeWord(t *testing.T) {
	doc := &types.AnnotatedDocument{Text: "Built apps in JavaScript only."}

	result := MatchSkills(doc, []string{"java"})

	assert.Empty(t, result.Found, "java不应命中javascript的子串")
	assert.Equal(t, []string{"java"}, result.Missing)
	assert.Zero(t, result.MatchRate)
}

// TestMatchSkillsCaseInsensitive 匹配不区分大小写
func TestMatchSkillsCaseInsensitive(t *testing.T) {
	doc := &types.AnnotatedDocument{Text: "Expert in PYTHON and Sql."}

	result := MatchSkills(doc, NormalizeRequired([]string{"Python", "SQL"}))

	assert.Len(t, result.Found, 2)
	assert.InDelta(t, 100.0, result.MatchRate, 0.001)
}

// TestMatchSkillsEmptyRequired required为空时匹配率定义为0
func TestMatchSkillsEmptyRequired(t *testing.T) {
	doc := &types.AnnotatedDocument{Text: "any text"}

	result := MatchSkills(doc, nil)

	assert.Empty(t, result.Found)
	assert.Empty(t, result.Missing)
	assert.Zero(t, result.MatchRate, "required为空时匹配率应为0而不是NaN")
}
