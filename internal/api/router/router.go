package router

import (
	"context"
	"encoding/json"

	"resume-insight-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/parse", func(c context.Context, ctx *app.RequestContext) {
		// 优先使用上传的PDF文件，其次使用表单中的纯文本
		fileHeader, err := ctx.FormFile("file")
		if err == nil {
			file, openErr := fileHeader.Open()
			if openErr != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
				return
			}
			defer file.Close()

			resp, parseErr := resumeHandler.HandleResumeParse(c, file, fileHeader.Filename, "")
			if parseErr != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": parseErr.Error()})
				return
			}
			ctx.JSON(consts.StatusOK, resp)
			return
		}

		text := ctx.PostForm("text")
		if text == "" {
			// 也接受 JSON 请求体 {"text": "..."}
			var body struct {
				Text string `json:"text"`
			}
			if jsonErr := json.Unmarshal(ctx.Request.Body(), &body); jsonErr == nil {
				text = body.Text
			}
		}

		// 文本为空不是错误：解析空文本得到全默认字段、评分为0的记录
		resp, parseErr := resumeHandler.HandleResumeParse(c, nil, "", text)
		if parseErr != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": parseErr.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/match", func(c context.Context, ctx *app.RequestContext) {
		var req handler.SkillMatchRequest
		if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
			return
		}

		resp, err := resumeHandler.HandleSkillMatch(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/positions/:title/skills", func(c context.Context, ctx *app.RequestContext) {
		title := ctx.Param("title")
		if title == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少岗位名称"})
			return
		}
		ctx.JSON(consts.StatusOK, resumeHandler.HandleSuggestSkills(title))
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
