package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insight-go/internal/types"
)

// TestCalculateScore 四个字段组各25分
func TestCalculateScore(t *testing.T) {
	cases := []struct {
		name   string
		record types.ResumeRecord
		want   int
	}{
		{"空记录", types.ResumeRecord{}, 0},
		{"仅姓名", types.ResumeRecord{FirstName: "John", LastName: "Smith"}, 25},
		{"只有名没有姓不计分", types.ResumeRecord{FirstName: "John"}, 0},
		{"仅邮箱", types.ResumeRecord{Email: "a@b.com"}, 25},
		{"仅专业", types.ResumeRecord{DegreeMajor: "Computer Science"}, 25},
		{"仅技能", types.ResumeRecord{Skills: []string{"python"}}, 25},
		{
			"全字段满分",
			types.ResumeRecord{
				FirstName: "John", LastName: "Smith",
				Email:       "a@b.com",
				DegreeMajor: "Computer Science",
				Skills:      []string{"python"},
			},
			100,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateScore(&tc.record), "评分与预期不符")
		})
	}
}

// TestCalculateScoreIgnoresOtherFields 电话、教育、经验不参与评分
func TestCalculateScoreIgnoresOtherFields(t *testing.T) {
	record := types.ResumeRecord{
		Phone:     "123-456-7890",
		Education: []string{"Stanford University"},
		Experience: types.Experience{
			Level:             types.LevelSenior,
			SuggestedPosition: "Project Manager",
		},
	}

	assert.Zero(t, CalculateScore(&record), "评分只看姓名/邮箱/专业/技能四组")
}
