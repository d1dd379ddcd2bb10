package main

import (
	"context"
	"net"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"ai-resume-parser/internal/api/handler"
	"ai-resume-parser/internal/api/router"
	"ai-resume-parser/internal/config"
	"ai-resume-parser/internal/constants"
	appCoreLogger "ai-resume-parser/internal/logger"
	"ai-resume-parser/internal/processor"
	"ai-resume-parser/internal/storage"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径（留空则查找 config.yaml，找不到时用默认配置）")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	// 让Hertz框架日志也走zerolog
	glog.SetLogger(hertzadapter.From(appCoreLogger.Logger))
	glog.Info("配置加载成功")

	if cfg.Parser.ValidateLocations {
		glog.Warn("validate_locations 已开启，但位置校验只使用内置辞典，不做网络地理编码")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager := storage.NewStorage(ctx, cfg)
	defer storageManager.Close()

	resumeProcessor := processor.NewResumeProcessor(
		processor.WithDefaultPhoneRegion(cfg.Parser.DefaultPhoneRegion),
	)
	glog.Info("ResumeProcessor初始化成功")

	resumeHandler := handler.NewResumeHandler(resumeProcessor, storageManager)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	h := server.New(
		server.WithHostPorts(addr),
		server.WithMaxRequestBodySize(constants.MaxUploadBytes),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Infof("HTTP 服务器启动中，监听地址: %s", addr)

	h.Spin()
}
