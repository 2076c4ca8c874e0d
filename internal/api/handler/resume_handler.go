package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/extractor"
	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/parser"
	"resume-insight-go/internal/types"
)

// ResumeHandler 简历处理器，协调PDF提取与字段提取流程
type ResumeHandler struct {
	cfg          *config.Config
	extractor    *extractor.ResumeExtractor
	pdfExtractor parser.TextExtractor
	store        *keywords.Store
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(
	cfg *config.Config,
	ext *extractor.ResumeExtractor,
	pdfExtractor parser.TextExtractor,
	store *keywords.Store,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:          cfg,
		extractor:    ext,
		pdfExtractor: pdfExtractor,
		store:        store,
	}
}

// ResumeParseResponse 简历解析响应
type ResumeParseResponse struct {
	RequestUUID string              `json:"request_uuid"`
	Record      *types.ResumeRecord `json:"record"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// SkillMatchRequest 技能匹配请求
type SkillMatchRequest struct {
	Text           string   `json:"text"`
	RequiredSkills []string `json:"required_skills"`
}

// SkillMatchResponse 技能匹配响应
type SkillMatchResponse struct {
	RequestUUID string                 `json:"request_uuid"`
	Result      types.SkillMatchResult `json:"result"`
	Warnings    []string               `json:"warnings,omitempty"`
}

// SuggestedSkillsResponse 岗位推荐技能响应
type SuggestedSkillsResponse struct {
	JobTitle        string   `json:"job_title"`
	SuggestedSkills []string `json:"suggested_skills"`
}

// HandleResumeParse 处理一次简历解析
// file非nil时走PDF文本提取(此处的失败是错误)；否则直接使用text。
// 文本为空或无法提取出任何字段不是错误：返回全默认字段、评分为0的记录。
func (h *ResumeHandler) HandleResumeParse(ctx context.Context, file io.Reader, filename, text string) (*ResumeParseResponse, error) {
	requestUUID := uuid.NewString()
	log := logger.With("resume_handler")

	if file != nil {
		extracted, _, err := h.pdfExtractor.ExtractFromReader(ctx, file, filename)
		if err != nil {
			return nil, fmt.Errorf("PDF文本提取失败: %w", err)
		}
		text = extracted
	}

	record, warnings, err := h.extractor.ExtractFromText(ctx, text)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("request_uuid", requestUUID).
		Str("filename", filename).
		Int("skills", len(record.Skills)).
		Int("score", record.Score).
		Msg("简历解析完成")

	return &ResumeParseResponse{
		RequestUUID: requestUUID,
		Record:      record,
		Warnings:    warnings,
	}, nil
}

// HandleSkillMatch 处理招聘方技能匹配
func (h *ResumeHandler) HandleSkillMatch(ctx context.Context, req *SkillMatchRequest) (*SkillMatchResponse, error) {
	requestUUID := uuid.NewString()

	required := extractor.NormalizeRequired(req.RequiredSkills)
	result, warnings, err := h.extractor.MatchText(ctx, req.Text, required)
	if err != nil {
		return nil, err
	}

	log := logger.With("resume_handler")
	log.Info().
		Str("request_uuid", requestUUID).
		Int("required", len(result.Required)).
		Int("found", len(result.Found)).
		Float64("match_rate", result.MatchRate).
		Msg("技能匹配完成")

	return &SkillMatchResponse{
		RequestUUID: requestUUID,
		Result:      result,
		Warnings:    warnings,
	}, nil
}

// HandleSuggestSkills 返回指定岗位的推荐技能
// 未知岗位返回空列表而不是错误
func (h *ResumeHandler) HandleSuggestSkills(jobTitle string) *SuggestedSkillsResponse {
	skills := h.store.SuggestedFor(jobTitle)
	if skills == nil {
		skills = []string{}
	}
	return &SuggestedSkillsResponse{
		JobTitle:        jobTitle,
		SuggestedSkills: skills,
	}
}
