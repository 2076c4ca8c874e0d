package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-insight-go/internal/api/handler"
	"resume-insight-go/internal/api/router"
	"resume-insight-go/internal/config"
	"resume-insight-go/internal/extractor"
	"resume-insight-go/internal/keywords"
	appLogger "resume-insight-go/internal/logger"
	"resume-insight-go/internal/parser"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"             //nolint:gochecknoglobals
	serviceName = "resume-insight-go" //nolint:gochecknoglobals
)

// @title Resume Insight API
// @version 1.0
// @description 简历信息提取与技能匹配服务的API文档
// @BasePath /api/v1
func main() {
	// .env不存在不是错误，仅在本地开发时提供便利
	_ = godotenv.Load()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "配置文件路径")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Infof("%s v%s 配置加载成功", serviceName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := keywords.NewStore(cfg.Keywords)
	glog.Info("关键词库初始化成功")

	resumeExtractor := extractor.New(
		[]extractor.ComponentOpt{extractor.WithKeywords(store)},
		[]extractor.SettingOpt{
			extractor.WithMaxSkills(cfg.Extractor.MaxSkills),
			extractor.WithLogger(appLogger.With("extractor")),
		},
	)
	glog.Info("简历提取器初始化成功")

	pdfExtractor, err := parser.NewTextExtractor(ctx, cfg.Parser.Type)
	if err != nil {
		glog.Fatalf("创建PDF提取器失败: %v", err)
	}
	glog.Infof("PDF提取器初始化成功，类型: %s", cfg.Parser.Type)

	resumeHandler := handler.NewResumeHandler(cfg, resumeExtractor, pdfExtractor, store)
	glog.Info("ResumeHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger(cfg *config.Config) {
	appLogger.Init(cfg.Logger)

	// Hertz 的日志也走同一个zerolog实例
	hertzCompatibleLogger := hertzadapter.From(appLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	if cfg.Logger.Level == "debug" {
		glog.SetLevel(glog.LevelDebug)
	} else {
		glog.SetLevel(glog.LevelInfo)
	}
}
