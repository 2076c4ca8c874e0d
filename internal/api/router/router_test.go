package router_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/annotate"
	"resume-insight-go/internal/api/handler"
	"resume-insight-go/internal/api/router"
	"resume-insight-go/internal/config"
	"resume-insight-go/internal/extractor"
	"resume-insight-go/internal/keywords"
)

func newTestEngine() *server.Hertz {
	store := keywords.Default()
	ext := extractor.New(
		[]extractor.ComponentOpt{
			extractor.WithAnnotator(&annotate.FakeAnnotator{}),
			extractor.WithKeywords(store),
		},
		nil,
	)
	resumeHandler := handler.NewResumeHandler(config.Default(), ext, nil, store)

	h := server.New()
	router.RegisterRoutes(h, resumeHandler)
	return h
}

// TestParseRouteWithText JSON文本请求的解析路由
func TestParseRouteWithText(t *testing.T) {
	h := newTestEngine()

	body := []byte(`{"text": "Jane Doe\njane@example.com\npython sql"}`)
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/parse",
		&ut.Body{Body: bytes.NewBuffer(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var parsed handler.ResumeParseResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &parsed), "解析响应失败")
	require.NotNil(t, parsed.Record)
	assert.NotEmpty(t, parsed.RequestUUID)
	assert.Equal(t, "jane@example.com", parsed.Record.Email)
	assert.Contains(t, parsed.Record.Skills, "python")
}

// TestParseRouteEmptyText 空文本不是错误：应返回全默认字段、评分为0的记录
func TestParseRouteEmptyText(t *testing.T) {
	h := newTestEngine()

	body := []byte(`{"text": ""}`)
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/parse",
		&ut.Body{Body: bytes.NewBuffer(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	require.Equal(t, consts.StatusOK, resp.StatusCode(), "空文本请求不应返回错误状态")

	var parsed handler.ResumeParseResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &parsed))
	require.NotNil(t, parsed.Record)
	assert.Zero(t, parsed.Record.Score)
	assert.Empty(t, parsed.Record.Skills)
}

// TestParseRouteNoInput 既无文件也无文本的请求同样返回默认记录
func TestParseRouteNoInput(t *testing.T) {
	h := newTestEngine()

	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/parse", nil)
	resp := w.Result()

	require.Equal(t, consts.StatusOK, resp.StatusCode(), "无输入的解析请求不应返回错误状态")

	var parsed handler.ResumeParseResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &parsed))
	require.NotNil(t, parsed.Record)
	assert.Zero(t, parsed.Record.Score)
}

// TestMatchRoute 技能匹配路由
func TestMatchRoute(t *testing.T) {
	h := newTestEngine()

	body := []byte(`{"text": "python developer", "required_skills": ["python", "golang", "rust"]}`)
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/match",
		&ut.Body{Body: bytes.NewBuffer(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var parsed handler.SkillMatchResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &parsed))
	assert.Equal(t, []string{"python"}, parsed.Result.Found)
	assert.InDelta(t, 33.3, parsed.Result.MatchRate, 0.05)
}

// TestMatchRouteBadBody 非法请求体返回400
func TestMatchRouteBadBody(t *testing.T) {
	h := newTestEngine()

	body := []byte(`not json`)
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/match",
		&ut.Body{Body: bytes.NewBuffer(body), Len: len(body)},
	)

	assert.Equal(t, consts.StatusBadRequest, w.Result().StatusCode())
}

// TestHealthRoute 健康检查
func TestHealthRoute(t *testing.T) {
	h := newTestEngine()

	w := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)

	assert.Equal(t, consts.StatusOK, w.Result().StatusCode())
}
