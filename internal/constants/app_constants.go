package constants

import "time"

const (
	// SparseTextThreshold 单页原生文本少于该数量的非空白字符时，
	// 视为"稀疏提取"，切换到词级/跨度级重建
	SparseTextThreshold = 20

	// MaxUploadBytes 边界层允许的最大上传体积
	MaxUploadBytes = 20 << 20 // 20 MB

	// ParseCachePrefix 解析结果缓存的Redis Key前缀
	// 格式: resume:parse:{file_md5}
	ParseCachePrefix = "resume:parse:"
	// ParseCacheTTL 解析结果缓存的默认过期时间
	ParseCacheTTL = 7 * 24 * time.Hour
)

// AcceptedExtensions 边界层文件名过滤接受的扩展名
// 其中只有 .pdf 和 .txt 有对应的提取路径；.docx/.rtf 会被明确拒绝（见 handler）
var AcceptedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".rtf":  true,
}

// ExtractableExtensions 核心真正能提取的扩展名
var ExtractableExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
}
