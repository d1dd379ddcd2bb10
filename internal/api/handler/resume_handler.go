package handler

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/rs/zerolog"

	"ai-resume-parser/internal/constants"
	"ai-resume-parser/internal/logger"
	"ai-resume-parser/internal/processor"
	"ai-resume-parser/internal/storage"
	"ai-resume-parser/internal/types"
)

// ResumeHandler 简历解析接口的HTTP处理器
// 负责边界事务：文件校验、临时文件生命周期、MD5缓存查询、原件归档；
// 解析本身全部委托给processor
type ResumeHandler struct {
	processor *processor.ResumeProcessor
	storage   *storage.Storage
	logger    zerolog.Logger
}

// HandlerOption 处理器的配置选项
type HandlerOption func(*ResumeHandler)

// WithHandlerLogger 配置自定义日志记录器
func WithHandlerLogger(l zerolog.Logger) HandlerOption {
	return func(h *ResumeHandler) {
		h.logger = l
	}
}

// NewResumeHandler 创建简历解析处理器
func NewResumeHandler(proc *processor.ResumeProcessor, store *storage.Storage, options ...HandlerOption) *ResumeHandler {
	h := &ResumeHandler{
		processor: proc,
		storage:   store,
		logger:    logger.Logger.With().Str("component", "resume_handler").Logger(),
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// HandleRoot GET / 服务状态
func (h *ResumeHandler) HandleRoot(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{
		"message": "AI Resume Parser API is running",
		"status":  "active",
	})
}

// HandleHealth GET /health 健康检查
func (h *ResumeHandler) HandleHealth(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{
		"status":  "healthy",
		"message": "AI Resume Parser is operational",
	})
}

// HandleParseResume POST /parse-resume 单文件解析
func (h *ResumeHandler) HandleParseResume(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"detail": "缺少上传文件字段 file"})
		return
	}

	if msg, ok := validateFilename(fileHeader.Filename); !ok {
		ctx.JSON(consts.StatusBadRequest, utils.H{"detail": msg})
		return
	}
	if fileHeader.Size > constants.MaxUploadBytes {
		ctx.JSON(consts.StatusBadRequest, utils.H{"detail": "文件超过大小限制"})
		return
	}

	tmpPath, fileMD5, err := h.saveToTemp(fileHeader)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("保存上传文件失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{
			"error":             err.Error(),
			"processing_status": "failed",
			"metadata": types.ParseMetadata{
				Filename: fileHeader.Filename,
				FileSize: 0,
			},
		})
		return
	}
	defer os.Remove(tmpPath)

	record := h.parseWithCache(c, tmpPath, fileMD5)

	h.archiveOriginal(c, tmpPath, fileHeader.Filename)

	ctx.JSON(consts.StatusOK, types.ParseResponse{
		PersonalInfo:    record.PersonalInfo,
		Skills:          record.Skills,
		TotalExperience: record.TotalExperience,
		Error:           record.Error,
		Metadata: types.ParseMetadata{
			Filename:         fileHeader.Filename,
			FileSize:         fileHeader.Size,
			ProcessingStatus: "success",
		},
	})
}

// HandleParseMultiple POST /parse-multiple 批量解析
// 单个文件的失败只影响自己的条目，整个请求仍然200
func (h *ResumeHandler) HandleParseMultiple(c context.Context, ctx *app.RequestContext) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"detail": "解析multipart表单失败"})
		return
	}

	files := form.File["files"]
	results := make([]types.BatchFileResult, 0, len(files))

	for _, fileHeader := range files {
		results = append(results, h.parseOneOfBatch(c, fileHeader))
	}

	ctx.JSON(consts.StatusOK, utils.H{"results": results})
}

// parseOneOfBatch 批量接口里处理单个文件，所有失败都折叠进结果条目
func (h *ResumeHandler) parseOneOfBatch(c context.Context, fileHeader *multipart.FileHeader) types.BatchFileResult {
	fail := func(msg string) types.BatchFileResult {
		return types.BatchFileResult{
			Filename: fileHeader.Filename,
			Success:  false,
			Error:    &msg,
		}
	}

	if msg, ok := validateFilename(fileHeader.Filename); !ok {
		return fail(msg)
	}
	if fileHeader.Size > constants.MaxUploadBytes {
		return fail("文件超过大小限制")
	}

	tmpPath, fileMD5, err := h.saveToTemp(fileHeader)
	if err != nil {
		return fail(err.Error())
	}
	defer os.Remove(tmpPath)

	record := h.parseWithCache(c, tmpPath, fileMD5)
	h.archiveOriginal(c, tmpPath, fileHeader.Filename)

	return types.BatchFileResult{
		Filename: fileHeader.Filename,
		Success:  true,
		Data:     record.Flatten(),
	}
}

// parseWithCache 解析一份已落盘的简历，前后挂接Redis缓存
// 缓存命中直接返回；解析成功（非降级记录）才回写缓存
func (h *ResumeHandler) parseWithCache(c context.Context, tmpPath, fileMD5 string) *types.ResumeRecord {
	if h.storage.HasRedis() {
		if cached, err := h.storage.Redis.GetCachedResult(c, fileMD5); err == nil {
			h.logger.Debug().Str("md5", fileMD5).Msg("解析缓存命中")
			return cached
		} else if err != storage.ErrCacheMiss {
			h.logger.Warn().Err(err).Str("md5", fileMD5).Msg("查询解析缓存失败")
		}
	}

	record := h.processor.ProcessResume(tmpPath)

	if h.storage.HasRedis() && record.Error == "" {
		h.storage.Redis.CacheResult(c, fileMD5, record)
	}
	return record
}

// archiveOriginal 把原件归档到对象存储，失败只记日志
func (h *ResumeHandler) archiveOriginal(c context.Context, tmpPath, filename string) {
	if !h.storage.HasMinIO() {
		return
	}
	if _, err := h.storage.MinIO.ArchiveResume(c, tmpPath, filename); err != nil {
		h.logger.Warn().Err(err).Str("filename", filename).Msg("简历原件归档失败")
	}
}

// saveToTemp 把上传内容写入临时文件并顺带计算内容MD5
// 临时文件保留原扩展名——解析器按扩展名选择提取路径
func (h *ResumeHandler) saveToTemp(fileHeader *multipart.FileHeader) (string, string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "resume-*"+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err != nil {
		return "", "", fmt.Errorf("创建临时文件失败: %w", err)
	}

	hasher := md5.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hasher), src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("关闭临时文件失败: %w", err)
	}

	return tmp.Name(), hex.EncodeToString(hasher.Sum(nil)), nil
}

// validateFilename 扩展名两级过滤
// 不在接受名单 → 格式不支持；在名单但没有提取路径（docx/rtf）→ 明确拒绝
func validateFilename(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !constants.AcceptedExtensions[ext] {
		return "Unsupported file type. Please upload PDF, DOCX, TXT, or RTF files.", false
	}
	if !constants.ExtractableExtensions[ext] {
		return fmt.Sprintf("%s 格式暂无提取路径，请上传 PDF 或 TXT", ext), false
	}
	return "", true
}
