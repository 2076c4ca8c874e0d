package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/annotate"
	"resume-insight-go/internal/config"
	"resume-insight-go/internal/extractor"
	"resume-insight-go/internal/keywords"
)

func newTestHandler() *ResumeHandler {
	store := keywords.Default()
	ext := extractor.New(
		[]extractor.ComponentOpt{
			extractor.WithAnnotator(&annotate.FakeAnnotator{}),
			extractor.WithKeywords(store),
		},
		nil,
	)
	return NewResumeHandler(config.Default(), ext, nil, store)
}

// TestHandleResumeParseFromText 纯文本路径的简历解析
func TestHandleResumeParseFromText(t *testing.T) {
	h := newTestHandler()

	text := "Jane Doe\njane@example.com\n123-456-7890\npython sql"
	resp, err := h.HandleResumeParse(context.Background(), nil, "", text)
	require.NoError(t, err, "文本解析不应返回错误")
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.RequestUUID, "响应应携带请求UUID")
	require.NotNil(t, resp.Record)
	assert.Equal(t, "jane@example.com", resp.Record.Email)
	assert.Equal(t, "123-456-7890", resp.Record.Phone)
	assert.Contains(t, resp.Record.Skills, "python")
}

// TestHandleResumeParseEmptyText 空文本返回默认记录
func TestHandleResumeParseEmptyText(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleResumeParse(context.Background(), nil, "", "")
	require.NoError(t, err, "空文本不是错误")
	require.NotNil(t, resp.Record)
	assert.Zero(t, resp.Record.Score)
}

// TestHandleSkillMatch 技能匹配请求
func TestHandleSkillMatch(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleSkillMatch(context.Background(), &SkillMatchRequest{
		Text:           "Seasoned python engineer",
		RequiredSkills: []string{"Python", "golang", "rust"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RequestUUID)
	assert.Equal(t, []string{"python"}, resp.Result.Found)
	assert.Equal(t, []string{"golang", "rust"}, resp.Result.Missing)
	assert.InDelta(t, 33.3, resp.Result.MatchRate, 0.05)
}

// TestHandleSuggestSkills 岗位推荐技能查询
func TestHandleSuggestSkills(t *testing.T) {
	h := newTestHandler()

	resp := h.HandleSuggestSkills("Data Scientist")
	assert.Equal(t, "Data Scientist", resp.JobTitle)
	assert.NotEmpty(t, resp.SuggestedSkills, "内置数据应包含data scientist的推荐技能")

	unknown := h.HandleSuggestSkills("astronaut")
	assert.NotNil(t, unknown.SuggestedSkills, "未知岗位应返回空列表而不是nil")
	assert.Empty(t, unknown.SuggestedSkills)
}
