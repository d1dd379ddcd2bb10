package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	t.Run("首行带职位", func(t *testing.T) {
		text := "John Smith — Senior Software Engineer\njohn@example.com"
		assert.Equal(t, "John Smith", ExtractName(text), "职位词之前的部分应被识别为姓名")
	})

	t.Run("标签行", func(t *testing.T) {
		text := "RESUME\nName: Priya Sharma\nEmail: priya@example.com"
		assert.Equal(t, "Priya Sharma", ExtractName(text))
	})

	t.Run("标签行断行补齐", func(t *testing.T) {
		text := "CURRICULUM VITAE\nFull Name:\nAmit Kumar Patel\nPhone: 9876543210"
		assert.Equal(t, "Amit Kumar Patel", ExtractName(text))
	})

	t.Run("前言打分", func(t *testing.T) {
		text := "SAP ABAP CONSULTANT\nRohan Mehta\nHyderabad\nPROFILE\n..."
		assert.Equal(t, "Rohan Mehta", ExtractName(text), "前言中姓名形状的行应胜出")
	})

	t.Run("文档标签不当姓名", func(t *testing.T) {
		text := "Resume\nCurriculum Vitae"
		assert.Equal(t, "Unknown", ExtractName(text), "Resume/CV之类的文档标签不是姓名")
	})

	t.Run("空文本", func(t *testing.T) {
		assert.Equal(t, "Unknown", ExtractName(""))
		assert.Equal(t, "Unknown", ExtractName("\n\n  \n"))
	})

	t.Run("全大写姓名", func(t *testing.T) {
		text := "ANJALI DESHMUKH\nData Analyst with 5 years experience"
		assert.Equal(t, "ANJALI DESHMUKH", ExtractName(text))
	})
}

func TestSelectName(t *testing.T) {
	// 双后端提取结果的仲裁规则
	assert.Equal(t, "John Smith", SelectName("John Smith", "Unknown"), "对方Unknown时取己方")
	assert.Equal(t, "Jane Doe", SelectName("Unknown", "Jane Doe"), "己方Unknown时取对方")
	assert.Equal(t, "Unknown", SelectName("Unknown", "Unknown"))
	assert.Equal(t, "Amit Kumar Patel", SelectName("Amit Kumar Patel", "Amit Kumar"), "不一致时取更长的")
	assert.Equal(t, "Amit Kumar Patel", SelectName("Amit Kumar", "Amit Kumar Patel"))
	assert.Equal(t, "John Smith", SelectName("John Smith", "John Smith"))
}
