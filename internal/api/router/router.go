package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"ai-resume-parser/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
// 路由形状与前端契约保持一致：单文件、批量、状态、健康检查
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	h.Use(corsMiddleware())

	h.GET("/", resumeHandler.HandleRoot)
	h.GET("/health", resumeHandler.HandleHealth)
	h.POST("/parse-resume", resumeHandler.HandleParseResume)
	h.POST("/parse-multiple", resumeHandler.HandleParseMultiple)
}

// corsMiddleware 放行跨域请求（前端独立部署）
func corsMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
		ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Response.Header.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if string(ctx.Method()) == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next(c)
	}
}
