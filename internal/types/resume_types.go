package types

// PersonalInfo 从简历中提取出的个人信息
// 除姓名外的字段在提取失败时为 null（JSON），而不是空字符串
type PersonalInfo struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Location *string `json:"location"`
}

// ResumeRecord 单次解析调用的最终输出
// 形状永远完整：个别字段可以是 null/"Unknown"/空，但记录本身不会缺字段
type ResumeRecord struct {
	PersonalInfo    PersonalInfo `json:"personalInfo"`
	Skills          []string     `json:"skills"`
	TotalExperience string       `json:"total_experience"`
	// Error 仅在降级（fallback）记录中出现
	Error string `json:"error,omitempty"`
}

// ZeroExperience 无任何有效工作区间时的经验时长文案
const ZeroExperience = "0 years and 0 months"

// NewFallbackRecord 构造固定形状的降级记录
// 这是"永不让调用方崩溃"契约的载体：任何内部异常都被转换为这种记录
func NewFallbackRecord(errMsg string) *ResumeRecord {
	return &ResumeRecord{
		PersonalInfo: PersonalInfo{
			Name: "Unknown",
		},
		Skills:          []string{},
		TotalExperience: ZeroExperience,
		Error:           errMsg,
	}
}

// ParseMetadata 边界层附加在解析结果外的元数据
type ParseMetadata struct {
	Filename         string `json:"filename"`
	FileSize         int64  `json:"file_size"`
	ProcessingStatus string `json:"processing_status"`
}

// ParseResponse 单文件解析接口的响应体：核心记录 + 元数据
type ParseResponse struct {
	PersonalInfo    PersonalInfo  `json:"personalInfo"`
	Skills          []string      `json:"skills"`
	TotalExperience string        `json:"total_experience"`
	Error           string        `json:"error,omitempty"`
	Metadata        ParseMetadata `json:"metadata"`
}

// FlatResumeData 批量接口使用的扁平化视图（前端契约）
type FlatResumeData struct {
	Name            string   `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Location        *string  `json:"location"`
	LinkedIn        *string  `json:"linkedin"`
	GitHub          *string  `json:"github"`
	Skills          []string `json:"skills"`
	TotalExperience string   `json:"total_experience"`
}

// BatchFileResult 批量接口中每个文件的处理结果
type BatchFileResult struct {
	Filename string          `json:"filename"`
	Success  bool            `json:"success"`
	Data     *FlatResumeData `json:"data"`
	Error    *string         `json:"error"`
}

// Flatten 把核心记录转为批量接口的扁平视图
func (r *ResumeRecord) Flatten() *FlatResumeData {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return &FlatResumeData{
		Name:            r.PersonalInfo.Name,
		Email:           r.PersonalInfo.Email,
		Phone:           r.PersonalInfo.Phone,
		Location:        r.PersonalInfo.Location,
		LinkedIn:        r.PersonalInfo.LinkedIn,
		GitHub:          r.PersonalInfo.GitHub,
		Skills:          skills,
		TotalExperience: r.TotalExperience,
	}
}
