package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-parser/internal/types"
)

func TestProcessResumeUnreadableFile(t *testing.T) {
	proc := NewResumeProcessor()

	record := proc.ProcessResume(filepath.Join(t.TempDir(), "不存在的文件.pdf"))

	// 永不失败契约：坏输入也要拿到完整形状的记录
	require.NotNil(t, record)
	assert.Equal(t, "Unknown", record.PersonalInfo.Name)
	assert.NotNil(t, record.Skills, "技能必须是空切片而不是nil")
	assert.Empty(t, record.Skills)
	assert.Equal(t, types.ZeroExperience, record.TotalExperience)
	assert.NotEmpty(t, record.Error, "降级记录应携带错误说明")
	assert.Nil(t, record.PersonalInfo.Email)
	assert.Nil(t, record.PersonalInfo.Phone)
}

func TestProcessResumePlainText(t *testing.T) {
	content := `Rohan Mehta
rohan.mehta@example.com
Phone: 98765 43210
Pune, Maharashtra

EXPERIENCE
Acme Corp, Data Engineer, Jan 2019 - Jun 2020

SKILLS
Python, SQL, Docker
`
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	proc := NewResumeProcessor()
	record := proc.ProcessResume(path)

	require.NotNil(t, record)
	assert.Empty(t, record.Error)
	assert.Equal(t, "Rohan Mehta", record.PersonalInfo.Name)
	require.NotNil(t, record.PersonalInfo.Email)
	assert.Equal(t, "rohan.mehta@example.com", *record.PersonalInfo.Email)
	require.NotNil(t, record.PersonalInfo.Phone)
	assert.Equal(t, "+91 98765 43210", *record.PersonalInfo.Phone)
	require.NotNil(t, record.PersonalInfo.Location)
	assert.Contains(t, *record.PersonalInfo.Location, "Pune")
	assert.Contains(t, record.Skills, "PYTHON")
	assert.Contains(t, record.Skills, "SQL")
	assert.Contains(t, record.Skills, "DOCKER")
	assert.Equal(t, "1 years and 5 months", record.TotalExperience)
}

func TestProcessResumeTxtExtensionCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("Amit Patel\nSKILLS\nJava"), 0o644))

	record := NewResumeProcessor().ProcessResume(path)
	require.NotNil(t, record)
	assert.Equal(t, "Amit Patel", record.PersonalInfo.Name)
	assert.Contains(t, record.Skills, "JAVA")
}

func TestWithDefaultPhoneRegion(t *testing.T) {
	proc := NewResumeProcessor(WithDefaultPhoneRegion("US"))
	assert.Equal(t, "US", proc.defaultPhoneRegion)
}
