package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	t.Run("大小写变体去重保序", func(t *testing.T) {
		skills := ExtractSkills("Python, python, PYTHON, Java")
		assert.Equal(t, []string{"PYTHON", "JAVA"}, skills, "同一技能的大小写变体只保留首个，技术词统一大写")
	})

	t.Run("标签与括号剥离", func(t *testing.T) {
		skills := ExtractSkills("Languages: Python, Java (5 years)")
		assert.Contains(t, skills, "PYTHON")
		assert.Contains(t, skills, "JAVA")
		assert.NotContains(t, skills, "Languages", "冒号前的标签词是噪声词")
	})

	t.Run("职责句过滤", func(t *testing.T) {
		skills := ExtractSkills("Developed microservices using Docker\nImplemented CI pipelines")
		for _, s := range skills {
			assert.NotContains(t, s, "Developed", "动词开头的职责描述不是技能")
			assert.NotContains(t, s, "Implemented")
		}
	})

	t.Run("日期与公司名过滤", func(t *testing.T) {
		skills := ExtractSkills("Jan 2020\nAcme Technologies\n2019\nKubernetes")
		assert.Equal(t, []string{"KUBERNETES"}, skills)
	})

	t.Run("人名形状过滤", func(t *testing.T) {
		skills := ExtractSkills("Rahul Verma\nApache Kafka")
		assert.NotContains(t, skills, "Rahul Verma", "2-4个首字母大写词且无技术词的像人名")
		assert.Contains(t, skills, "Apache Kafka")
	})

	t.Run("缩写强制大写", func(t *testing.T) {
		skills := ExtractSkills("sql; html, aws")
		assert.Contains(t, skills, "SQL")
		assert.Contains(t, skills, "HTML")
		assert.Contains(t, skills, "AWS")
	})

	t.Run("多词技能逐词Title", func(t *testing.T) {
		skills := ExtractSkills("power bi, rest api")
		assert.Contains(t, skills, "POWER BI", "技术词表命中的多词技能整体大写")
		assert.Contains(t, skills, "REST API")
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		skills := ExtractSkills("")
		assert.NotNil(t, skills, "永远返回切片而不是nil")
		assert.Empty(t, skills)
	})

	t.Run("停用词与软技能过滤", func(t *testing.T) {
		skills := ExtractSkills("and, communication, leadership, teamwork, golang")
		assert.Equal(t, []string{"GOLANG"}, skills)
	})
}
